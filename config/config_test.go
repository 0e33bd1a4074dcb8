package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"datekit/bizday"
)

func TestLoadFirstRunWritesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)

	// The file now exists with restrictive permissions.
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	// A second load reads the file instead of rewriting it.
	again, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, again)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	cfg := &Config{
		WorkingDays: []int{0, 1, 2, 3, 4},
		Holidays:    []string{"2024-12-25"},
		Country:     "GB",
		WeekStart:   "monday",
	}
	require.NoError(t, cfg.Save(path))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("working_days: [not, numbers"), 0o600))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestNormalize(t *testing.T) {
	cfg := &Config{WeekStart: "wednesday"}
	cfg.Normalize()

	assert.Equal(t, []int{1, 2, 3, 4, 5}, cfg.WorkingDays)
	assert.NotNil(t, cfg.Holidays)
	assert.Equal(t, "US", cfg.Country)
	assert.Equal(t, "sunday", cfg.WeekStart, "unsupported week start falls back")
}

func TestLoadNormalizesPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("country: JP\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "JP", cfg.Country)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, cfg.WorkingDays)
	assert.Equal(t, "sunday", cfg.WeekStart)
}

func TestApply(t *testing.T) {
	bizday.Reset()
	t.Cleanup(func() { bizday.Reset() })

	cfg := &Config{
		WorkingDays: []int{0, 1, 2, 3, 4}, // Sunday through Thursday
		Holidays:    []string{"2024-01-01"},
	}
	require.NoError(t, cfg.Apply())

	// 2024-01-05 is a Friday, now a weekend day; 2024-01-07 a working Sunday.
	assert.False(t, bizday.IsBusinessDay(time.Date(2024, time.January, 5, 0, 0, 0, 0, time.Local)))
	assert.True(t, bizday.IsBusinessDay(time.Date(2024, time.January, 7, 0, 0, 0, 0, time.Local)))
	assert.False(t, bizday.IsBusinessDay(time.Date(2024, time.January, 1, 0, 0, 0, 0, time.Local)), "holiday")
}

func TestApplyRejectsBadValues(t *testing.T) {
	bizday.Reset()
	t.Cleanup(func() { bizday.Reset() })

	cfg := &Config{WorkingDays: []int{9}}
	assert.Error(t, cfg.Apply())

	cfg = &Config{WorkingDays: []int{1, 2, 3, 4, 5}, Holidays: []string{"garbage"}}
	assert.Error(t, cfg.Apply())
}

func TestSaveErrors(t *testing.T) {
	assert.Error(t, Save("", DefaultConfig()))
	assert.Error(t, Save(filepath.Join(t.TempDir(), "c.yaml"), nil))
}
