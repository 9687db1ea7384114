package pipeline

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/N7DR/fcc-db/pkg/errors"
)

const testToday = "2026-08-25"

// record builds a delimiter-joined line of n fields with the given
// position overrides.
func record(n int, values map[int]string) string {
	fields := make([]string, n)
	for i, v := range values {
		fields[i] = v
	}
	return strings.Join(fields, "|")
}

func am(id, call string) string {
	return record(18, map[int]string{0: "AM", 1: id, 4: call, 5: "E"})
}

func co(id, call, date, desc string) string {
	return record(8, map[int]string{0: "CO", 1: id, 3: call, 4: date, 5: desc, 6: "A"})
}

func en(id, call, name string) string {
	return record(30, map[int]string{0: "EN", 1: id, 4: call, 7: name})
}

func hd(id, call, status, grant, expired string) string {
	return record(59, map[int]string{0: "HD", 1: id, 4: call, 5: status, 6: "HA", 7: grant, 8: expired})
}

func writeExtracts(t *testing.T, files map[string][]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, lines := range files {
		content := ""
		if len(lines) > 0 {
			content = strings.Join(lines, "\n") + "\n"
		}
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
	return dir
}

func TestRun(t *testing.T) {
	dir := writeExtracts(t, map[string][]string{
		"AM.dat": {am("100", "K1ABC"), am("200", "K9OLD"), am("300", "W1AW")},
		"CO.dat": {co("100", "K1ABC", "02/14/2003", "FORMERLY KA1AAA"), co("200", "K9OLD", "", "LAPSED")},
		"EN.dat": {en("100", "K1ABC", "DOE, JANE A"), en("999", "X1X", "NOBODY")},
		"HD.dat": {hd("100", "K1ABC", "A", "01/15/2020", "02/24/2030"), hd("200", "K9OLD", "E", "01/01/1990", "01/01/2000")},
	})

	var buf bytes.Buffer
	err := Run(context.Background(), Options{Dir: dir, Out: &buf, Today: testToday})
	require.NoError(t, err)

	out := buf.String()
	require.True(t, strings.HasSuffix(out, "\n"))

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 2)

	// Callsign order puts K1ABC before W1AW.
	first := strings.Split(lines[0], "|")
	assert.Equal(t, "100", first[0])
	assert.Equal(t, "K1ABC", first[1])
	assert.Equal(t, "E", first[2])
	assert.Equal(t, "2003-02-14", first[13], "comment date in ISO form")
	assert.Equal(t, "FORMERLY KA1AAA", first[14])
	assert.Equal(t, "DOE, JANE A", first[17])
	assert.Equal(t, "A", first[36])
	assert.Equal(t, "HA", first[37])
	assert.Equal(t, "2020-01-15", first[38], "grant date in ISO form")
	assert.Equal(t, "2030-02-24", first[39], "expired date in ISO form")

	second := strings.Split(lines[1], "|")
	assert.Equal(t, "W1AW", second[1])

	// The lapsed license is gone from every stream, and the orphan
	// entity record was skipped without complaint.
	assert.NotContains(t, out, "K9OLD")
	assert.NotContains(t, out, "NOBODY")
}

func TestRunDefaultsToday(t *testing.T) {
	dir := writeExtracts(t, map[string][]string{
		"AM.dat": {am("100", "K1ABC")},
		"CO.dat": {},
		"EN.dat": {},
		"HD.dat": {hd("100", "K1ABC", "A", "01/15/2020", "02/24/2090")},
	})

	var buf bytes.Buffer
	require.NoError(t, Run(context.Background(), Options{Dir: dir, Out: &buf}))
	assert.Contains(t, buf.String(), "K1ABC")
}

func TestRunDropsLicensesWithoutCallsign(t *testing.T) {
	dir := writeExtracts(t, map[string][]string{
		"AM.dat": {am("100", "K1ABC"), am("200", "")},
		"CO.dat": {},
		"EN.dat": {},
		"HD.dat": {},
	})

	var buf bytes.Buffer
	require.NoError(t, Run(context.Background(), Options{Dir: dir, Out: &buf, Today: testToday}))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	assert.Len(t, lines, 1)
}

func TestRunAbortsOnInconsistentExtracts(t *testing.T) {
	t.Run("comment callsign mismatch", func(t *testing.T) {
		dir := writeExtracts(t, map[string][]string{
			"AM.dat": {am("100", "K1ABC")},
			"CO.dat": {co("100", "W9ZZZ", "", "X")},
			"EN.dat": {},
			"HD.dat": {},
		})

		err := Run(context.Background(), Options{Dir: dir, Out: &bytes.Buffer{}, Today: testToday})
		require.Error(t, err)
		assert.True(t, errors.IsMismatch(err))
	})

	t.Run("comment for unknown identifier", func(t *testing.T) {
		dir := writeExtracts(t, map[string][]string{
			"AM.dat": {am("100", "K1ABC")},
			"CO.dat": {co("999", "K1ABC", "", "X")},
			"EN.dat": {},
			"HD.dat": {},
		})

		err := Run(context.Background(), Options{Dir: dir, Out: &bytes.Buffer{}, Today: testToday})
		require.Error(t, err)
		assert.True(t, errors.IsMissingKey(err))
	})

	t.Run("malformed header date", func(t *testing.T) {
		dir := writeExtracts(t, map[string][]string{
			"AM.dat": {am("100", "K1ABC")},
			"CO.dat": {},
			"EN.dat": {},
			"HD.dat": {hd("100", "K1ABC", "A", "", "not-a-date!!")},
		})

		err := Run(context.Background(), Options{Dir: dir, Out: &bytes.Buffer{}, Today: testToday})
		require.Error(t, err)
		assert.True(t, errors.IsBadDate(err))
	})
}

func TestRunMissingExtract(t *testing.T) {
	dir := writeExtracts(t, map[string][]string{
		"AM.dat": {am("100", "K1ABC")},
		"CO.dat": {},
		"EN.dat": {},
	})

	err := Run(context.Background(), Options{Dir: dir, Out: &bytes.Buffer{}, Today: testToday})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HD.dat")
}
