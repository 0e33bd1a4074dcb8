// Package date provides the calendar primitives the rest of datekit is
// built on: validated date construction, flexible input parsing, canonical
// day keys and calendar-aligned arithmetic on time.Time values.
//
// All operations are pure; every transformation returns a new time.Time and
// never mutates its input. Day-of-week numbering follows time.Weekday
// (Sunday = 0).
package date

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// KeyLayout is the canonical day-key wire format (local calendar day).
const KeyLayout = "2006-01-02"

// Unit is a calendar unit used by Add, StartOf and EndOf.
type Unit int

const (
	Day Unit = iota
	Week
	Month
	Year
)

func (u Unit) String() string {
	switch u {
	case Day:
		return "day"
	case Week:
		return "week"
	case Month:
		return "month"
	case Year:
		return "year"
	default:
		return "unit(" + strconv.Itoa(int(u)) + ")"
	}
}

// UnitFromString maps a (possibly plural) unit name to a Unit.
func UnitFromString(s string) (Unit, error) {
	switch strings.TrimSuffix(strings.ToLower(strings.TrimSpace(s)), "s") {
	case "day":
		return Day, nil
	case "week":
		return Week, nil
	case "month":
		return Month, nil
	case "year":
		return Year, nil
	default:
		return 0, fmt.Errorf("unknown calendar unit %q", s)
	}
}

// New constructs a date at local midnight, validating that day exists in
// (year, month). There is no rollover: April 31 is an error, not May 1.
func New(year int, month time.Month, day int) (time.Time, error) {
	if month < time.January || month > time.December {
		return time.Time{}, fmt.Errorf("month %d out of range 1-12", month)
	}
	if day < 1 || day > DaysInMonth(year, month) {
		return time.Time{}, fmt.Errorf("day %d does not exist in %04d-%02d", day, year, month)
	}
	return time.Date(year, month, day, 0, 0, 0, 0, time.Local), nil
}

// MustNew is New for statically known-good dates. It panics on error.
func MustNew(year int, month time.Month, day int) time.Time {
	t, err := New(year, month, day)
	if err != nil {
		panic(err)
	}
	return t
}

// Parse parses a date from a string. ISO-8601-like forms and the many
// human formats handled by dateparse are accepted; a string of digits is
// treated as a Unix timestamp in seconds or milliseconds.
func Parse(input string) (time.Time, error) {
	s := strings.TrimSpace(input)
	if s == "" {
		return time.Time{}, errors.New("empty date string")
	}

	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return fromUnix(n), nil
	}

	t, err := dateparse.ParseLocal(s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return t, nil
}

// ParseAny normalizes any supported date-like input: time.Time values are
// returned as-is, strings go through Parse, and integer types are Unix
// timestamps.
func ParseAny(v any) (time.Time, error) {
	switch x := v.(type) {
	case time.Time:
		return x, nil
	case string:
		return Parse(x)
	case int:
		return fromUnix(int64(x)), nil
	case int64:
		return fromUnix(x), nil
	case float64:
		return fromUnix(int64(x)), nil
	default:
		return time.Time{}, fmt.Errorf("unsupported date value of type %T", v)
	}
}

// fromUnix interprets n as seconds, or milliseconds when it is too large to
// be a plausible second count.
func fromUnix(n int64) time.Time {
	const msThreshold = 1e11 // ~5138 AD in seconds; beyond this it is millis
	if n >= msThreshold || n <= -msThreshold {
		return time.UnixMilli(n)
	}
	return time.Unix(n, 0)
}

// Key returns the canonical YYYY-MM-DD day key for t, derived from t's own
// calendar components. Two times on the same local calendar day always map
// to the same key regardless of time-of-day.
func Key(t time.Time) string {
	return t.Format(KeyLayout)
}

// StripTime returns t at midnight of its own calendar day.
func StripTime(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// SameDay reports whether a and b fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// StartOf aligns t to the beginning of the given unit. Weeks start on
// Sunday.
func StartOf(t time.Time, u Unit) time.Time {
	switch u {
	case Day:
		return StripTime(t)
	case Week:
		return StripTime(t.AddDate(0, 0, -int(t.Weekday())))
	case Month:
		return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	case Year:
		return time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, t.Location())
	default:
		return t
	}
}

// EndOf aligns t to the last representable instant of the given unit.
func EndOf(t time.Time, u Unit) time.Time {
	switch u {
	case Day:
		return endOfDay(t)
	case Week:
		return endOfDay(t.AddDate(0, 0, 6-int(t.Weekday())))
	case Month:
		return endOfDay(time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, t.Location()))
	case Year:
		return endOfDay(time.Date(t.Year(), time.December, 31, 0, 0, 0, 0, t.Location()))
	default:
		return t
	}
}

func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}

// Add advances t by n units. Month and year additions are calendar-aware:
// when the source day does not exist in the target month the result clamps
// to the last valid day (Jan 31 + 1 month = Feb 29 or Feb 28), never
// rolling into the following month.
func Add(t time.Time, n int, u Unit) time.Time {
	switch u {
	case Day:
		return t.AddDate(0, 0, n)
	case Week:
		return t.AddDate(0, 0, 7*n)
	case Month:
		return addMonths(t, n)
	case Year:
		return addMonths(t, 12*n)
	default:
		return t
	}
}

func addMonths(t time.Time, n int) time.Time {
	// Anchor on the first of the month so AddDate cannot overflow, then
	// restore the day-of-month clamped to the target month's length.
	first := time.Date(t.Year(), t.Month(), 1, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
	shifted := first.AddDate(0, n, 0)

	day := t.Day()
	if max := DaysInMonth(shifted.Year(), shifted.Month()); day > max {
		day = max
	}
	return time.Date(shifted.Year(), shifted.Month(), day,
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

// NextWeekday returns the next occurrence of wd strictly after t, always
// 1 to 7 days away.
func NextWeekday(t time.Time, wd time.Weekday) time.Time {
	days := (int(wd) - int(t.Weekday()) + 7) % 7
	if days == 0 {
		days = 7
	}
	return t.AddDate(0, 0, days)
}

// PrevWeekday returns the previous occurrence of wd strictly before t.
func PrevWeekday(t time.Time, wd time.Weekday) time.Time {
	days := (int(t.Weekday()) - int(wd) + 7) % 7
	if days == 0 {
		days = 7
	}
	return t.AddDate(0, 0, -days)
}

// DaysInMonth returns the number of days in (year, month).
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 12, 0, 0, 0, time.UTC).Day()
}

// IsLeapYear reports whether year is a Gregorian leap year.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DayOfYear returns t's ordinal day within its year (1-366).
func DayOfYear(t time.Time) int {
	return t.YearDay()
}

// Quarter returns the calendar quarter (1-4) containing t.
func Quarter(t time.Time) int {
	return (int(t.Month())-1)/3 + 1
}
