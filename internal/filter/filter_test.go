package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/N7DR/fcc-db/pkg/errors"
	"github.com/N7DR/fcc-db/pkg/uls"
)

const today = "2026-08-25"

func TestNewExclusions(t *testing.T) {
	headers := []uls.LicenseHeader{
		{ID: "1", ExpiredDate: "01/01/2020"},                                 // expired
		{ID: "2", ExpiredDate: "08/25/2026"},                                 // expires today: still current
		{ID: "3", ExpiredDate: "12/31/2030"},                                 // future
		{ID: "4", CancellationDate: "06/30/2019"},                            // cancelled
		{ID: "5"},                                                            // no dates at all
		{ID: "6", ExpiredDate: "01/01/2020", CancellationDate: "01/01/2020"}, // both
	}

	ex, err := NewExclusions(headers, today)
	require.NoError(t, err)

	assert.True(t, ex.Excluded("1"))
	assert.False(t, ex.Excluded("2"))
	assert.False(t, ex.Excluded("3"))
	assert.True(t, ex.Excluded("4"))
	assert.False(t, ex.Excluded("5"))
	assert.True(t, ex.Excluded("6"))
	assert.False(t, ex.Excluded("unknown"))

	assert.Equal(t, 2, ex.Expired())
	assert.Equal(t, 2, ex.Cancelled())
}

func TestNewExclusionsMalformedDate(t *testing.T) {
	t.Run("expired", func(t *testing.T) {
		_, err := NewExclusions([]uls.LicenseHeader{{ID: "9", ExpiredDate: "2020-01-01X"}}, today)
		require.Error(t, err)
		assert.True(t, errors.IsBadDate(err))
		assert.Contains(t, err.Error(), "header 9 expired date")
	})

	t.Run("cancellation", func(t *testing.T) {
		_, err := NewExclusions([]uls.LicenseHeader{{ID: "9", CancellationDate: "bad"}}, today)
		require.Error(t, err)
		assert.True(t, errors.IsBadDate(err))
		assert.Contains(t, err.Error(), "cancellation date")
	})
}

func TestApply(t *testing.T) {
	headers := []uls.LicenseHeader{
		{ID: "10", Callsign: "K1A", ExpiredDate: "01/01/2020"},
		{ID: "20", Callsign: "K2B"},
		{ID: "30", Callsign: "K3C"},
	}

	ex, err := NewExclusions(headers, today)
	require.NoError(t, err)

	t.Run("headers", func(t *testing.T) {
		kept := Apply(ex, headers)
		require.Len(t, kept, 2)
		assert.Equal(t, "20", kept[0].ID)
		assert.Equal(t, "30", kept[1].ID)
	})

	t.Run("other streams use the same set", func(t *testing.T) {
		amateurs := []uls.Amateur{{ID: "10"}, {ID: "20"}, {ID: "40"}}
		kept := Apply(ex, amateurs)
		require.Len(t, kept, 2)
		assert.Equal(t, "20", kept[0].ID)
		assert.Equal(t, "40", kept[1].ID)

		comments := []uls.Comment{{ID: "10"}, {ID: "30"}}
		assert.Len(t, Apply(ex, comments), 1)
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Empty(t, Apply(ex, []uls.Entity{}))
	})
}
