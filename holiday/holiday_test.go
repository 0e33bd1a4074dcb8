package holiday

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"datekit/date"
)

// d is a test helper to construct dates.
func d(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.Local)
}

func keyOf(list []Holiday, name string) string {
	for _, h := range list {
		if h.Name == name {
			return date.Key(h.Date)
		}
	}
	return ""
}

func TestForYearUS(t *testing.T) {
	list, err := ForYear(2026, "US")
	require.NoError(t, err)

	tests := []struct {
		name string
		want string
	}{
		{"New Year's Day", "2026-01-01"},
		{"Martin Luther King Jr. Day", "2026-01-19"},
		{"Presidents' Day", "2026-02-16"},
		{"Memorial Day", "2026-05-25"},
		{"Independence Day", "2026-07-04"},
		{"Labour Day", "2026-09-07"},
		{"Columbus Day", "2026-10-12"},
		{"Veterans Day", "2026-11-11"},
		{"Thanksgiving", "2026-11-26"},
		{"Christmas Day", "2026-12-25"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, keyOf(list, tt.name))
		})
	}
}

func TestForYearCountryHandling(t *testing.T) {
	// Case-insensitive match, default US.
	lower, err := ForYear(2024, "us")
	require.NoError(t, err)
	def, err := ForYear(2024, "")
	require.NoError(t, err)
	assert.Equal(t, len(def), len(lower))

	// UK alias resolves to the GB table.
	uk, err := ForYear(2024, "uk")
	require.NoError(t, err)
	assert.Equal(t, "2024-12-26", keyOf(uk, "Boxing Day"))

	// Unknown codes are a hard error, not an empty list.
	_, err = ForYear(2024, "XX")
	assert.Error(t, err)

	_, err = ForYear(99, "US")
	assert.Error(t, err, "year must have four digits")
}

func TestSetRulesReplacesWholesale(t *testing.T) {
	SetRules("ZZ", []Rule{{Name: "Founding Day", Month: time.March, Day: 3}})
	list, err := ForYear(2024, "zz")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "2024-03-03", date.Key(list[0].Date))

	SetRules("ZZ", []Rule{{Name: "Another Day", Month: time.April, Day: 4}})
	list, err = ForYear(2024, "ZZ")
	require.NoError(t, err)
	require.Len(t, list, 1, "SetRules replaces, never merges")
	assert.Equal(t, "Another Day", list[0].Name)
}

func TestNext(t *testing.T) {
	// Between Christmas and New Year the next US holiday is Jan 1.
	h, err := Next(d(2025, time.December, 26), "US")
	require.NoError(t, err)
	assert.Equal(t, "New Year's Day", h.Name)
	assert.Equal(t, "2026-01-01", date.Key(h.Date))

	// Strictly after: sitting on a holiday returns the following one.
	h, err = Next(d(2026, time.July, 4), "US")
	require.NoError(t, err)
	assert.Equal(t, "Labour Day", h.Name)

	SetRules("ONCE", []Rule{{Name: "Only", Month: time.January, Day: 2}})
	_, err = Next(d(2024, time.December, 31), "ONCE")
	require.NoError(t, err, "next year's holidays are inside the window")

	_, err = Next(d(2024, time.January, 1), "XX")
	assert.Error(t, err)
}

func TestCustomOverlayAndAdhocList(t *testing.T) {
	ResetCustom()
	t.Cleanup(ResetCustom)

	ok, err := IsHoliday(d(2024, time.June, 10))
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, AddCustom("2024-06-10", d(2024, time.June, 11)))

	ok, err = IsHoliday(d(2024, time.June, 10))
	require.NoError(t, err)
	assert.True(t, ok)

	// Ad-hoc list entries count too, custom overlay first.
	ok, err = IsHoliday(d(2024, time.June, 12), "2024-06-12")
	require.NoError(t, err)
	assert.True(t, ok)

	// Country rules are never consulted here: July 4 is not a holiday for
	// IsHoliday unless added explicitly.
	ok, err = IsHoliday(d(2024, time.July, 4))
	require.NoError(t, err)
	assert.False(t, ok)

	// A bad entry surfaces as an error.
	_, err = IsHoliday(d(2024, time.June, 12), "garbage")
	assert.Error(t, err)

	// AddCustom is all-or-nothing.
	err = AddCustom("2024-06-20", "garbage")
	require.Error(t, err)
	ok, err = IsHoliday(d(2024, time.June, 20))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestNthWeekday(t *testing.T) {
	// Third Monday of January 2026 is the 19th.
	assert.Equal(t, "2026-01-19", date.Key(NthWeekday(3, time.Monday, time.January)(2026)))
	// Last Monday of May 2026 is the 25th.
	assert.Equal(t, "2026-05-25", date.Key(NthWeekday(-1, time.Monday, time.May)(2026)))
	// First Monday of September 2025 is the 1st.
	assert.Equal(t, "2025-09-01", date.Key(NthWeekday(1, time.Monday, time.September)(2025)))
}

func TestRuleFileRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rules.yaml")

	SetRules("QQ", []Rule{
		{Name: "Spring Festival", Month: time.April, Day: 1},
		{Name: "Harvest Day", Month: time.September, Day: 15},
	})
	require.NoError(t, SaveRules(path, "QQ"))

	SetRules("QQ", nil)
	require.NoError(t, LoadRules(path))

	list, err := ForYear(2024, "QQ")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "2024-04-01", date.Key(list[0].Date))
	assert.Equal(t, "2024-09-15", date.Key(list[1].Date))
}

func TestLoadRulesValidation(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")

	require.NoError(t, os.WriteFile(path, []byte("country: QV\nrules:\n  - name: Broken\n    month: 13\n    day: 1\n"), 0o600))
	assert.Error(t, LoadRules(path))

	require.NoError(t, os.WriteFile(path, []byte("rules:\n  - name: NoCountry\n    month: 1\n    day: 1\n"), 0o600))
	assert.Error(t, LoadRules(path))

	assert.Error(t, LoadRules(filepath.Join(dir, "missing.yaml")))
}
