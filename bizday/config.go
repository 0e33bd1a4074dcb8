package bizday

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"datekit/date"
)

// Config is a snapshot of the business-day rules: the set of working
// weekdays and the set of holiday day keys. Values handed out by this
// package are always deep copies; mutating one never affects the store.
type Config struct {
	// WorkingDays is deduplicated and sorted ascending (Sunday = 0).
	WorkingDays []time.Weekday
	// Holidays is keyed by canonical YYYY-MM-DD day keys.
	Holidays map[string]struct{}
}

// Clone returns a deep copy of c.
func (c Config) Clone() Config {
	out := Config{
		WorkingDays: append([]time.Weekday(nil), c.WorkingDays...),
		Holidays:    make(map[string]struct{}, len(c.Holidays)),
	}
	for k := range c.Holidays {
		out.Holidays[k] = struct{}{}
	}
	return out
}

func (c Config) isWorking(wd time.Weekday) bool {
	for _, d := range c.WorkingDays {
		if d == wd {
			return true
		}
	}
	return false
}

func defaultConfig() Config {
	return Config{
		WorkingDays: []time.Weekday{
			time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday,
		},
		Holidays: map[string]struct{}{},
	}
}

// The process-wide store. Reads and writes exchange deep copies only, so
// concurrent readers always observe a consistent snapshot.
var (
	storeMu sync.RWMutex
	store   = defaultConfig()
)

// ConfigureWorkingDays replaces the stored working-weekday set. The input
// must be non-empty and every entry must lie in [Sunday, Saturday];
// duplicates are removed and the result is sorted. The new snapshot is
// returned.
func ConfigureWorkingDays(days []time.Weekday) (Config, error) {
	if len(days) == 0 {
		return Config{}, fmt.Errorf("working days cannot be empty")
	}

	seen := map[time.Weekday]struct{}{}
	unique := make([]time.Weekday, 0, len(days))
	for _, d := range days {
		if d < time.Sunday || d > time.Saturday {
			return Config{}, fmt.Errorf("weekday %d out of range 0-6", d)
		}
		if _, dup := seen[d]; dup {
			continue
		}
		seen[d] = struct{}{}
		unique = append(unique, d)
	}
	sort.Slice(unique, func(i, j int) bool { return unique[i] < unique[j] })

	storeMu.Lock()
	defer storeMu.Unlock()
	store.WorkingDays = unique
	return store.Clone(), nil
}

// ConfigureHolidays replaces the stored holiday set wholesale. Every entry
// is parsed up front; a single bad entry aborts the call and leaves the
// store untouched. Keys are derived from local calendar components.
func ConfigureHolidays(dates []any) (Config, error) {
	keys := make(map[string]struct{}, len(dates))
	for _, v := range dates {
		t, err := date.ParseAny(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid holiday %v: %w", v, err)
		}
		keys[date.Key(t)] = struct{}{}
	}

	storeMu.Lock()
	defer storeMu.Unlock()
	store.Holidays = keys
	return store.Clone(), nil
}

// ActiveConfig returns a snapshot of the current store.
func ActiveConfig() Config {
	storeMu.RLock()
	defer storeMu.RUnlock()
	return store.Clone()
}

// Reset restores the default Monday-Friday configuration with no holidays
// and returns the resulting snapshot.
func Reset() Config {
	storeMu.Lock()
	defer storeMu.Unlock()
	store = defaultConfig()
	return store.Clone()
}
