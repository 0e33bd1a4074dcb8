// Package recur generates bounded sequences of dates that follow a named
// recurrence pattern, including business-day-aware weekday/weekend patterns
// and constraint-driven custom patterns.
package recur

import (
	"errors"
	"fmt"
	"time"

	"datekit/bizday"
	"datekit/date"
)

// Pattern is the closed set of supported recurrence patterns.
type Pattern int

const (
	Daily Pattern = iota
	Weekly
	Biweekly
	Monthly
	Quarterly
	Yearly
	Weekdays
	Weekends
	Custom
)

func (p Pattern) String() string {
	switch p {
	case Daily:
		return "daily"
	case Weekly:
		return "weekly"
	case Biweekly:
		return "biweekly"
	case Monthly:
		return "monthly"
	case Quarterly:
		return "quarterly"
	case Yearly:
		return "yearly"
	case Weekdays:
		return "weekdays"
	case Weekends:
		return "weekends"
	case Custom:
		return "custom"
	default:
		return fmt.Sprintf("pattern(%d)", int(p))
	}
}

// PatternFromString maps a pattern name to its Pattern value.
func PatternFromString(s string) (Pattern, error) {
	for p := Daily; p <= Custom; p++ {
		if p.String() == s {
			return p, nil
		}
	}
	return 0, fmt.Errorf("unknown recurrence pattern %q", s)
}

const (
	defaultMaxOccurrences = 100
	// customSearchWindow caps the day-by-day search of the Custom pattern.
	customSearchWindow = 366
	// weekendSearchWindow caps the Weekends pattern scan; with at least one
	// non-working weekday this terminates within a week, the cap exists for
	// all-working-day configurations.
	weekendSearchWindow = 366
)

// ErrWindowExhausted is returned when a bounded candidate search runs out
// of attempts before satisfying the pattern's constraints.
var ErrWindowExhausted = errors.New("no date matching the recurrence constraints within the search window")

// Config governs Generate. The zero value of Interval and MaxOccurrences
// mean 1 and 100 respectively.
type Config struct {
	Pattern  Pattern
	Interval int

	// Constraint sets for the Custom pattern; nil means unconstrained.
	DaysOfWeek   []time.Weekday
	DaysOfMonth  []int
	MonthsOfYear []time.Month

	// EndDate, when non-zero, is the inclusive upper bound for emitted dates.
	EndDate time.Time
	// MaxOccurrences bounds the output length for open-ended configs.
	MaxOccurrences int
}

func (c Config) interval() int {
	if c.Interval <= 0 {
		return 1
	}
	return c.Interval
}

func (c Config) maxOccurrences() int {
	if c.MaxOccurrences <= 0 {
		return defaultMaxOccurrences
	}
	return c.MaxOccurrences
}

func (c Config) validate() error {
	if c.Pattern < Daily || c.Pattern > Custom {
		return fmt.Errorf("unknown recurrence pattern %d", c.Pattern)
	}
	if c.Interval < 0 {
		return fmt.Errorf("interval %d must be positive", c.Interval)
	}
	for _, d := range c.DaysOfWeek {
		if d < time.Sunday || d > time.Saturday {
			return fmt.Errorf("day of week %d out of range 0-6", d)
		}
	}
	for _, d := range c.DaysOfMonth {
		if d < 1 || d > 31 {
			return fmt.Errorf("day of month %d out of range 1-31", d)
		}
	}
	for _, m := range c.MonthsOfYear {
		if m < time.January || m > time.December {
			return fmt.Errorf("month %d out of range 1-12", m)
		}
	}
	return nil
}

// Generate produces the date sequence seeded at start and advanced per
// cfg.Pattern. The start date itself is the first element. Generation stops
// before a candidate past EndDate would be emitted, and unconditionally
// once MaxOccurrences dates have been produced.
//
// For the Custom pattern an exhausted candidate search is a hard error:
// the dates emitted so far are returned together with ErrWindowExhausted.
func Generate(start time.Time, cfg Config) ([]time.Time, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	max := cfg.maxOccurrences()
	dates := make([]time.Time, 0, max)
	dates = append(dates, start)

	cur := start
	for len(dates) < max {
		next, err := advance(cur, cfg)
		if err != nil {
			return dates, err
		}
		if !cfg.EndDate.IsZero() && next.After(cfg.EndDate) {
			break
		}
		cur = next
		dates = append(dates, cur)
	}
	return dates, nil
}

// advance computes the next candidate after cur for the configured pattern.
func advance(cur time.Time, cfg Config) (time.Time, error) {
	switch cfg.Pattern {
	case Daily:
		return date.Add(cur, cfg.interval(), date.Day), nil
	case Weekly:
		return date.Add(cur, 7*cfg.interval(), date.Day), nil
	case Biweekly:
		return date.Add(cur, 14*cfg.interval(), date.Day), nil
	case Monthly:
		return date.Add(cur, cfg.interval(), date.Month), nil
	case Quarterly:
		return date.Add(cur, 3*cfg.interval(), date.Month), nil
	case Yearly:
		return date.Add(cur, cfg.interval(), date.Year), nil
	case Weekdays:
		next := cur
		for i := 0; i < cfg.interval(); i++ {
			var err error
			next, err = bizday.NextBusinessDay(next)
			if err != nil {
				return time.Time{}, err
			}
		}
		return next, nil
	case Weekends:
		next := cur
		for i := 0; i < weekendSearchWindow; i++ {
			next = next.AddDate(0, 0, 1)
			if bizday.IsWeekend(next) {
				return next, nil
			}
		}
		return time.Time{}, ErrWindowExhausted
	case Custom:
		return nextCustom(cur, cfg)
	default:
		return time.Time{}, fmt.Errorf("unknown recurrence pattern %d", cfg.Pattern)
	}
}

// nextCustom advances one day at a time until the candidate satisfies every
// configured constraint set.
func nextCustom(cur time.Time, cfg Config) (time.Time, error) {
	next := cur
	for i := 0; i < customSearchWindow; i++ {
		next = next.AddDate(0, 0, 1)
		if matchesConstraints(next, cfg) {
			return next, nil
		}
	}
	return time.Time{}, ErrWindowExhausted
}

func matchesConstraints(t time.Time, cfg Config) bool {
	if cfg.DaysOfWeek != nil && !containsWeekday(cfg.DaysOfWeek, t.Weekday()) {
		return false
	}
	if cfg.DaysOfMonth != nil && !containsInt(cfg.DaysOfMonth, t.Day()) {
		return false
	}
	if cfg.MonthsOfYear != nil && !containsMonth(cfg.MonthsOfYear, t.Month()) {
		return false
	}
	return true
}

func containsWeekday(s []time.Weekday, v time.Weekday) bool {
	for _, x := range s {
		if x == v {
			return true
		}
	}
	return false
}

func containsInt(s []int, v int) bool {
	for _, x := range s {
		if x == v {
			return true
		}
	}
	return false
}

func containsMonth(s []time.Month, v time.Month) bool {
	for _, x := range s {
		if x == v {
			return true
		}
	}
	return false
}
