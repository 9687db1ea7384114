package uls

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/N7DR/fcc-db/pkg/errors"
)

func TestSchemaFieldCounts(t *testing.T) {
	counts := map[Kind]int{
		AM:  18,
		CO:  8,
		EN:  30,
		HD:  59,
		HS:  6,
		LA:  8,
		SC:  9,
		SF:  11,
		FCC: 50,
	}

	for kind, want := range counts {
		s, err := Lookup(kind)
		require.NoError(t, err, "kind %s", kind)
		assert.Equal(t, want, s.NumFields(), "kind %s", kind)
		assert.Len(t, s.FieldNames(), want, "kind %s", kind)
	}
}

func TestSchemaFiles(t *testing.T) {
	for _, kind := range []Kind{AM, CO, EN, HD, HS, LA, SC, SF} {
		s := MustSchema(kind)
		assert.Equal(t, string(kind)+".dat", s.File(), "kind %s", kind)
	}

	// The output layout has no source file.
	assert.Empty(t, MustSchema(FCC).File())
}

func TestFieldIndex(t *testing.T) {
	t.Run("join identifier is second everywhere", func(t *testing.T) {
		for _, kind := range []Kind{AM, CO, EN, HD, HS, LA, SC, SF} {
			s := MustSchema(kind)
			i, ok := s.FieldIndex("Unique System Identifier")
			require.True(t, ok, "kind %s", kind)
			assert.Equal(t, 1, i, "kind %s", kind)
		}
	})

	t.Run("duplicate name resolves first occurrence", func(t *testing.T) {
		s := MustSchema(HD)
		i, ok := s.FieldIndex("Reserved")
		require.True(t, ok)
		assert.Equal(t, 11, i)
	})

	t.Run("unknown name", func(t *testing.T) {
		_, ok := MustSchema(AM).FieldIndex("No Such Field")
		assert.False(t, ok)

		assert.Panics(t, func() {
			MustSchema(AM).MustFieldIndex("No Such Field")
		})
	})
}

func TestLookupUnknownKind(t *testing.T) {
	_, err := Lookup(Kind("ZZ"))
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
}

func TestSchemasCanonicalOrder(t *testing.T) {
	all := Schemas()
	require.Len(t, all, len(Kinds))
	for i, kind := range Kinds {
		assert.Equal(t, kind, all[i].Kind())
	}
}
