// Package natural resolves a constrained grammar of human date phrases
// ("next friday", "in 2 weeks", "3 days ago") against a base date.
package natural

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"datekit/date"
)

// ErrNoMatch is the lenient-mode signal for an expression outside the
// grammar. Callers test for it with errors.Is.
var ErrNoMatch = errors.New("expression does not match any known date phrase")

// Options controls Parse. The zero value means "relative to now, lenient".
type Options struct {
	// Base is the reference moment; time.Now() when zero.
	Base time.Time
	// Strict makes unmatched expressions a descriptive error instead of
	// the bare ErrNoMatch sentinel.
	Strict bool
}

var (
	reNextWeekday = regexp.MustCompile(`^next\s+(\w+)$`)
	reLastWeekday = regexp.MustCompile(`^last\s+(\w+)$`)
	reIn          = regexp.MustCompile(`^in\s+(\d+)\s+(day|days|week|weeks|month|months|year|years)$`)
	reAgo         = regexp.MustCompile(`^(\d+)\s+(day|days|week|weeks|month|months|year|years)\s+ago$`)
)

var weekdaysByName = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// Parse resolves expr to a concrete date. Matching is case-insensitive
// after trimming surrounding whitespace, and grammar rules are tried in
// priority order: literal phrases, next/last weekday, "in N units",
// "N units ago".
func Parse(expr string, opts Options) (time.Time, error) {
	base := opts.Base
	if base.IsZero() {
		base = time.Now()
	}

	s := strings.ToLower(strings.TrimSpace(expr))

	if t, ok := literal(s, base); ok {
		return t, nil
	}

	if m := reNextWeekday.FindStringSubmatch(s); m != nil {
		if wd, ok := weekdaysByName[m[1]]; ok {
			return date.NextWeekday(base, wd), nil
		}
	}
	if m := reLastWeekday.FindStringSubmatch(s); m != nil {
		if wd, ok := weekdaysByName[m[1]]; ok {
			return date.PrevWeekday(base, wd), nil
		}
	}

	if m := reIn.FindStringSubmatch(s); m != nil {
		n, _ := strconv.Atoi(m[1])
		unit, err := date.UnitFromString(m[2])
		if err != nil {
			return time.Time{}, err
		}
		return date.Add(base, n, unit), nil
	}
	if m := reAgo.FindStringSubmatch(s); m != nil {
		n, _ := strconv.Atoi(m[1])
		unit, err := date.UnitFromString(m[2])
		if err != nil {
			return time.Time{}, err
		}
		return date.Add(base, -n, unit), nil
	}

	if opts.Strict {
		return time.Time{}, fmt.Errorf("cannot parse %q: %w", expr, ErrNoMatch)
	}
	return time.Time{}, ErrNoMatch
}

// literal resolves the fixed phrase table.
func literal(s string, base time.Time) (time.Time, bool) {
	switch s {
	case "now":
		return base, true
	case "today":
		return date.StartOf(base, date.Day), true
	case "tomorrow":
		return date.Add(date.StartOf(base, date.Day), 1, date.Day), true
	case "yesterday":
		return date.Add(date.StartOf(base, date.Day), -1, date.Day), true
	case "next week":
		return date.Add(date.StartOf(base, date.Week), 1, date.Week), true
	case "last week":
		return date.Add(date.StartOf(base, date.Week), -1, date.Week), true
	case "next month":
		return date.Add(date.StartOf(base, date.Month), 1, date.Month), true
	case "last month":
		return date.Add(date.StartOf(base, date.Month), -1, date.Month), true
	case "next year":
		return date.Add(date.StartOf(base, date.Year), 1, date.Year), true
	case "last year":
		return date.Add(date.StartOf(base, date.Year), -1, date.Year), true
	case "beginning of week":
		return date.StartOf(base, date.Week), true
	case "end of week":
		return date.EndOf(base, date.Week), true
	case "beginning of month":
		return date.StartOf(base, date.Month), true
	case "end of month":
		return date.EndOf(base, date.Month), true
	case "beginning of year":
		return date.StartOf(base, date.Year), true
	case "end of year":
		return date.EndOf(base, date.Year), true
	default:
		return time.Time{}, false
	}
}
