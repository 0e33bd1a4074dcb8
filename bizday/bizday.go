// Package bizday implements business-day predicates and steppers over a
// configurable set of working weekdays and holiday day keys.
//
// Package-level functions consult the process-wide configuration store; the
// Calendar type carries an explicit Config for callers that need different
// rules side by side.
package bizday

import (
	"errors"
	"fmt"
	"time"

	"datekit/date"
)

// maxScanDays bounds every open-ended day-by-day search. A configuration
// with no reachable business day (every weekday excluded, or every day of a
// long span marked holiday) yields ErrNoBusinessDay instead of a hang.
const maxScanDays = 3660

// ErrNoBusinessDay is returned when a bounded scan finds no qualifying day.
var ErrNoBusinessDay = errors.New("no business day found within scan window")

// Calendar evaluates business-day rules against an explicit configuration.
type Calendar struct {
	cfg Config
}

// NewCalendar returns a Calendar over a deep copy of cfg.
func NewCalendar(cfg Config) *Calendar {
	return &Calendar{cfg: cfg.Clone()}
}

// active returns a Calendar over the current store snapshot.
func active() *Calendar {
	return &Calendar{cfg: ActiveConfig()}
}

// IsWeekend reports whether t's weekday is outside the working set. This is
// configuration-relative: with a Sunday-Thursday working week, Friday and
// Saturday are the weekend.
func (c *Calendar) IsWeekend(t time.Time) bool {
	return !c.cfg.isWorking(t.Weekday())
}

// IsBusinessDay reports whether t is a working weekday that is not in the
// configured holiday set.
func (c *Calendar) IsBusinessDay(t time.Time) bool {
	if c.IsWeekend(t) {
		return false
	}
	_, holiday := c.cfg.Holidays[date.Key(t)]
	return !holiday
}

// AddBusinessDays steps one calendar day at a time in the sign of n,
// consuming a step only on business days. n = 0 returns t unchanged.
func (c *Calendar) AddBusinessDays(t time.Time, n int) (time.Time, error) {
	if n == 0 {
		return t, nil
	}

	step := 1
	remaining := n
	if n < 0 {
		step = -1
		remaining = -n
	}

	cur := t
	idle := 0
	for remaining > 0 {
		cur = cur.AddDate(0, 0, step)
		if c.IsBusinessDay(cur) {
			remaining--
			idle = 0
			continue
		}
		idle++
		if idle > maxScanDays {
			return time.Time{}, ErrNoBusinessDay
		}
	}
	return cur, nil
}

// NextBusinessDay returns the first business day strictly after t.
func (c *Calendar) NextBusinessDay(t time.Time) (time.Time, error) {
	return c.scan(t, 1)
}

// PrevBusinessDay returns the first business day strictly before t.
func (c *Calendar) PrevBusinessDay(t time.Time) (time.Time, error) {
	return c.scan(t, -1)
}

func (c *Calendar) scan(t time.Time, step int) (time.Time, error) {
	cur := t
	for i := 0; i < maxScanDays; i++ {
		cur = cur.AddDate(0, 0, step)
		if c.IsBusinessDay(cur) {
			return cur, nil
		}
	}
	return time.Time{}, ErrNoBusinessDay
}

// DiffBusinessDays counts business days strictly after start, up to and
// including end, both normalized to local midnight. The sign follows the
// direction: positive when end is on or after start.
func (c *Calendar) DiffBusinessDays(start, end time.Time) int {
	from := date.StripTime(start)
	to := date.StripTime(end)

	sign := 1
	if to.Before(from) {
		sign = -1
		from, to = to, from
	}

	count := 0
	for cur := from.AddDate(0, 0, 1); !cur.After(to); cur = cur.AddDate(0, 0, 1) {
		if c.IsBusinessDay(cur) {
			count++
		}
	}
	return sign * count
}

// BusinessDaysInMonth counts the business days in (year, month).
func (c *Calendar) BusinessDaysInMonth(year int, month time.Month) (int, error) {
	days, err := c.ListBusinessDaysInMonth(year, month)
	if err != nil {
		return 0, err
	}
	return len(days), nil
}

// ListBusinessDaysInMonth returns every business day in (year, month) in
// ascending order.
func (c *Calendar) ListBusinessDaysInMonth(year int, month time.Month) ([]time.Time, error) {
	if year < 1000 || year > 9999 {
		return nil, fmt.Errorf("year %d must have four digits", year)
	}
	if month < time.January || month > time.December {
		return nil, fmt.Errorf("month %d out of range 1-12", month)
	}

	first, _ := date.New(year, month, 1)
	out := make([]time.Time, 0, 23)
	for cur := first; cur.Month() == month; cur = cur.AddDate(0, 0, 1) {
		if c.IsBusinessDay(cur) {
			out = append(out, cur)
		}
	}
	return out, nil
}

// IsFirstBusinessDayOfMonth reports whether t is a business day with no
// earlier business day in the same month.
func (c *Calendar) IsFirstBusinessDayOfMonth(t time.Time) bool {
	if !c.IsBusinessDay(t) {
		return false
	}
	day := date.StripTime(t)
	for cur := date.StartOf(t, date.Month); cur.Before(day); cur = cur.AddDate(0, 0, 1) {
		if c.IsBusinessDay(cur) {
			return false
		}
	}
	return true
}

// IsLastBusinessDayOfMonth reports whether t is a business day with no
// later business day in the same month.
func (c *Calendar) IsLastBusinessDayOfMonth(t time.Time) bool {
	if !c.IsBusinessDay(t) {
		return false
	}
	for cur := date.StripTime(t).AddDate(0, 0, 1); cur.Month() == t.Month(); cur = cur.AddDate(0, 0, 1) {
		if c.IsBusinessDay(cur) {
			return false
		}
	}
	return true
}

// Package-level variants over the process-wide configuration.

func IsWeekend(t time.Time) bool     { return active().IsWeekend(t) }
func IsWeekday(t time.Time) bool     { return !active().IsWeekend(t) }
func IsBusinessDay(t time.Time) bool { return active().IsBusinessDay(t) }

func AddBusinessDays(t time.Time, n int) (time.Time, error) {
	return active().AddBusinessDays(t, n)
}

// SubtractBusinessDays is AddBusinessDays with the sign flipped.
func SubtractBusinessDays(t time.Time, n int) (time.Time, error) {
	return active().AddBusinessDays(t, -n)
}

func NextBusinessDay(t time.Time) (time.Time, error) { return active().NextBusinessDay(t) }
func PrevBusinessDay(t time.Time) (time.Time, error) { return active().PrevBusinessDay(t) }

func DiffBusinessDays(start, end time.Time) int { return active().DiffBusinessDays(start, end) }

func BusinessDaysInMonth(year int, month time.Month) (int, error) {
	return active().BusinessDaysInMonth(year, month)
}

func ListBusinessDaysInMonth(year int, month time.Month) ([]time.Time, error) {
	return active().ListBusinessDaysInMonth(year, month)
}

func IsFirstBusinessDayOfMonth(t time.Time) bool { return active().IsFirstBusinessDayOfMonth(t) }
func IsLastBusinessDayOfMonth(t time.Time) bool  { return active().IsLastBusinessDayOfMonth(t) }
