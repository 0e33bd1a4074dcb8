// Package holiday computes concrete holiday dates from per-country rule
// tables and answers membership queries against a custom overlay set.
//
// Three holiday notions exist in datekit and are deliberately kept
// separate: the custom overlay and ad-hoc lists consulted by IsHoliday
// here, the country rule tables consulted by ForYear and Next, and the
// business-day configuration's holiday set consulted only by package
// bizday.
package holiday

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"datekit/date"
)

// Rule describes a single holiday for a country. A rule is either fixed
// (Month/Day) or floating (Floating computes the date for a year). Rules
// for astronomically or lunar derived observances are not built in; the
// Floating hook is how callers supply their own.
type Rule struct {
	Name  string
	Month time.Month
	Day   int
	// Floating, when set, takes precedence over Month/Day.
	Floating func(year int) time.Time `yaml:"-"`
}

// Holiday is a rule resolved to a concrete date.
type Holiday struct {
	Name string
	Date time.Time
}

// ErrNoUpcoming is returned by Next when the two-year search window holds
// no holiday after the reference date.
var ErrNoUpcoming = errors.New("no upcoming holiday within two-year window")

var (
	mu     sync.RWMutex
	rules  = builtinRules()
	custom = map[string]struct{}{}
)

// ForYear resolves the holiday rules of a country for the given year, in
// rule-table order. The country code is matched case-insensitively and
// defaults to "US" when empty. An unknown code is a hard error, never an
// empty list.
func ForYear(year int, country string) ([]Holiday, error) {
	if year < 1000 || year > 9999 {
		return nil, fmt.Errorf("year %d must have four digits", year)
	}
	code := normalizeCountry(country)

	mu.RLock()
	list, ok := rules[code]
	mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("no holiday rules for country %q", code)
	}

	out := make([]Holiday, 0, len(list))
	for _, r := range list {
		if r.Floating != nil {
			out = append(out, Holiday{Name: r.Name, Date: r.Floating(year)})
			continue
		}
		d, err := date.New(year, r.Month, r.Day)
		if err != nil {
			return nil, fmt.Errorf("rule %q: %w", r.Name, err)
		}
		out = append(out, Holiday{Name: r.Name, Date: d})
	}
	return out, nil
}

// SetRules replaces a country's rule list wholesale. Any string is accepted
// as a new or replacement country code.
func SetRules(country string, list []Rule) {
	code := normalizeCountry(country)
	mu.Lock()
	defer mu.Unlock()
	rules[code] = append([]Rule(nil), list...)
}

// Next returns the earliest holiday strictly after t, searching t's year
// and the year following it.
func Next(t time.Time, country string) (Holiday, error) {
	year := t.Year()
	thisYear, err := ForYear(year, country)
	if err != nil {
		return Holiday{}, err
	}
	nextYear, err := ForYear(year+1, country)
	if err != nil {
		return Holiday{}, err
	}

	all := append(thisYear, nextYear...)
	sort.Slice(all, func(i, j int) bool { return all[i].Date.Before(all[j].Date) })
	for _, h := range all {
		if h.Date.After(t) {
			return h, nil
		}
	}
	return Holiday{}, ErrNoUpcoming
}

// AddCustom parses each date-like value and adds its day key to the custom
// overlay set. The overlay is additive; a parse failure aborts the whole
// call with nothing applied.
func AddCustom(dates ...any) error {
	keys := make([]string, 0, len(dates))
	for _, v := range dates {
		t, err := date.ParseAny(v)
		if err != nil {
			return fmt.Errorf("invalid custom holiday %v: %w", v, err)
		}
		keys = append(keys, date.Key(t))
	}

	mu.Lock()
	defer mu.Unlock()
	for _, k := range keys {
		custom[k] = struct{}{}
	}
	return nil
}

// ResetCustom clears the custom overlay set.
func ResetCustom() {
	mu.Lock()
	defer mu.Unlock()
	custom = map[string]struct{}{}
}

// IsHoliday reports whether t's calendar day is in the custom overlay set
// or, failing that, in the caller-supplied ad-hoc list. Country rule tables
// and the business-day configuration are not consulted.
func IsHoliday(t time.Time, adhoc ...any) (bool, error) {
	key := date.Key(t)

	mu.RLock()
	_, ok := custom[key]
	mu.RUnlock()
	if ok {
		return true, nil
	}

	for _, v := range adhoc {
		d, err := date.ParseAny(v)
		if err != nil {
			return false, fmt.Errorf("invalid holiday list entry %v: %w", v, err)
		}
		if date.Key(d) == key {
			return true, nil
		}
	}
	return false, nil
}

// Countries returns the known country codes in sorted order.
func Countries() []string {
	mu.RLock()
	defer mu.RUnlock()
	out := make([]string, 0, len(rules))
	for code := range rules {
		out = append(out, code)
	}
	sort.Strings(out)
	return out
}

func normalizeCountry(country string) string {
	code := strings.ToUpper(strings.TrimSpace(country))
	if code == "" {
		return "US"
	}
	return code
}

// NthWeekday builds a floating rule resolver for "the nth weekday of a
// month" observances (n counts from the month's end when negative).
func NthWeekday(n int, wd time.Weekday, month time.Month) func(year int) time.Time {
	return func(year int) time.Time {
		if n > 0 {
			first, _ := date.New(year, month, 1)
			cur := first
			if cur.Weekday() != wd {
				cur = date.NextWeekday(cur, wd)
			}
			return cur.AddDate(0, 0, 7*(n-1))
		}

		last, _ := date.New(year, month, date.DaysInMonth(year, month))
		cur := last
		if cur.Weekday() != wd {
			cur = date.PrevWeekday(cur, wd)
		}
		return cur.AddDate(0, 0, 7*(n+1))
	}
}
