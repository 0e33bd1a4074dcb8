// Package config loads and saves the calendar configuration file and
// applies it to the process-wide business-day store.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"datekit/bizday"
)

// Config is the top-level calendar configuration.
type Config struct {
	// WorkingDays lists working weekdays as 0 (Sunday) through 6 (Saturday).
	WorkingDays []int `yaml:"working_days" json:"working_days"`

	// Holidays is a list of date strings added to the business-day holiday
	// set (any format date.Parse accepts).
	Holidays []string `yaml:"holidays" json:"holidays"`

	// Country selects the built-in holiday rule table (ISO code, default "US").
	Country string `yaml:"country" json:"country"`

	// WeekStart controls which weekday opens calendar views. Supported
	// values: "sunday" (default) and "monday".
	WeekStart string `yaml:"week_start" json:"week_start"`
}

// DefaultConfig returns an in-memory default configuration.
func DefaultConfig() *Config {
	return &Config{
		WorkingDays: []int{1, 2, 3, 4, 5},
		Holidays:    []string{},
		Country:     "US",
		WeekStart:   "sunday",
	}
}

// Normalize fills missing or out-of-range values with defaults so that
// partially-filled configs still behave correctly.
func (c *Config) Normalize() {
	if len(c.WorkingDays) == 0 {
		c.WorkingDays = []int{1, 2, 3, 4, 5}
	}
	if c.Holidays == nil {
		c.Holidays = []string{}
	}
	if c.Country == "" {
		c.Country = "US"
	}
	switch c.WeekStart {
	case "sunday", "monday":
	default:
		c.WeekStart = "sunday"
	}
}

// Apply pushes the configured working days and holidays into the
// business-day store. Validation happens inside the store; nothing is
// applied when either list is rejected.
func (c *Config) Apply() error {
	days := make([]time.Weekday, 0, len(c.WorkingDays))
	for _, d := range c.WorkingDays {
		days = append(days, time.Weekday(d))
	}
	if _, err := bizday.ConfigureWorkingDays(days); err != nil {
		return err
	}

	dates := make([]any, 0, len(c.Holidays))
	for _, h := range c.Holidays {
		dates = append(dates, h)
	}
	_, err := bizday.ConfigureHolidays(dates)
	return err
}

// Load loads configuration from the given YAML path. A missing file is a
// first run: a default config is written (parent directory created, 0600
// perms) and returned.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, errors.New("config path is empty")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			cfg := DefaultConfig()
			if err := Save(path, cfg); err != nil {
				return cfg, err
			}
			return cfg, nil
		}
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	cfg.Normalize()

	return &cfg, nil
}

// Save writes cfg to path atomically (temp file in the same directory,
// fsync, chmod 0600, rename).
func Save(path string, cfg *Config) error {
	if path == "" {
		return errors.New("config path is empty")
	}
	if cfg == nil {
		return errors.New("config is nil")
	}

	cfg.Normalize()

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".datekit-config-*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmpName, 0o600); err != nil {
		return err
	}
	return os.Rename(tmpName, path)
}

// Save is a convenience method delegating to the package-level Save.
func (c *Config) Save(path string) error {
	return Save(path, c)
}
