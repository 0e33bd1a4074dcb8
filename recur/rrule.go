package recur

import (
	"fmt"
	"time"

	"github.com/teambition/rrule-go"
)

// rruleOccurrenceCap bounds RRULE expansion for rules without COUNT/UNTIL.
const rruleOccurrenceCap = 5000

// GenerateRRule expands an iCalendar RRULE string anchored at start,
// returning at most count occurrences (capped regardless at a safety
// limit for unbounded rules).
func GenerateRRule(rruleStr string, start time.Time, count int) ([]time.Time, error) {
	r, err := rrule.StrToRRule(rruleStr)
	if err != nil {
		return nil, fmt.Errorf("parse RRULE %q: %w", rruleStr, err)
	}
	r.DTStart(start)

	var set rrule.Set
	set.RRule(r)

	if count <= 0 || count > rruleOccurrenceCap {
		count = rruleOccurrenceCap
	}

	out := make([]time.Time, 0, count)
	next := set.Iterator()
	for len(out) < count {
		t, ok := next()
		if !ok {
			break
		}
		out = append(out, t)
	}
	return out, nil
}

// FromRRule translates an RRULE string into the nearest equivalent Config.
// FREQ, INTERVAL, COUNT, UNTIL and BYDAY are mapped; anything finer grained
// than this package's patterns is rejected rather than approximated.
func FromRRule(rruleStr string) (Config, error) {
	r, err := rrule.StrToRRule(rruleStr)
	if err != nil {
		return Config{}, fmt.Errorf("parse RRULE %q: %w", rruleStr, err)
	}
	opt := r.Options

	var cfg Config
	switch opt.Freq {
	case rrule.DAILY:
		cfg.Pattern = Daily
	case rrule.WEEKLY:
		cfg.Pattern = Weekly
	case rrule.MONTHLY:
		cfg.Pattern = Monthly
	case rrule.YEARLY:
		cfg.Pattern = Yearly
	default:
		return Config{}, fmt.Errorf("RRULE frequency %v has no pattern equivalent", opt.Freq)
	}

	cfg.Interval = opt.Interval
	cfg.MaxOccurrences = opt.Count
	if !opt.Until.IsZero() {
		cfg.EndDate = opt.Until
	}

	if len(opt.Byweekday) > 0 {
		cfg.Pattern = Custom
		for _, wd := range opt.Byweekday {
			cfg.DaysOfWeek = append(cfg.DaysOfWeek, weekdayFromRRule(wd))
		}
	}
	return cfg, nil
}

// ToRRule renders a Config as an RRULE string where the pattern has a
// direct RRULE expression.
func ToRRule(cfg Config) (string, error) {
	opt := rrule.ROption{Interval: cfg.interval(), Count: cfg.maxOccurrences()}
	if !cfg.EndDate.IsZero() {
		opt.Until = cfg.EndDate
	}

	switch cfg.Pattern {
	case Daily:
		opt.Freq = rrule.DAILY
	case Weekly:
		opt.Freq = rrule.WEEKLY
	case Biweekly:
		opt.Freq = rrule.WEEKLY
		opt.Interval = 2 * cfg.interval()
	case Monthly:
		opt.Freq = rrule.MONTHLY
	case Quarterly:
		opt.Freq = rrule.MONTHLY
		opt.Interval = 3 * cfg.interval()
	case Yearly:
		opt.Freq = rrule.YEARLY
	case Custom:
		if len(cfg.DaysOfMonth) > 0 || len(cfg.MonthsOfYear) > 0 {
			return "", fmt.Errorf("custom day-of-month/month constraints are not expressible as RRULE here")
		}
		opt.Freq = rrule.WEEKLY
		for _, wd := range cfg.DaysOfWeek {
			opt.Byweekday = append(opt.Byweekday, weekdayToRRule(wd))
		}
	default:
		return "", fmt.Errorf("pattern %v is not expressible as RRULE", cfg.Pattern)
	}

	r, err := rrule.NewRRule(opt)
	if err != nil {
		return "", err
	}
	return r.String(), nil
}

// rrule-go numbers weekdays Monday=0 after python-dateutil; time.Weekday
// numbers Sunday=0.
func weekdayFromRRule(wd rrule.Weekday) time.Weekday {
	return time.Weekday((wd.Day() + 1) % 7)
}

func weekdayToRRule(wd time.Weekday) rrule.Weekday {
	switch wd {
	case time.Monday:
		return rrule.MO
	case time.Tuesday:
		return rrule.TU
	case time.Wednesday:
		return rrule.WE
	case time.Thursday:
		return rrule.TH
	case time.Friday:
		return rrule.FR
	case time.Saturday:
		return rrule.SA
	default:
		return rrule.SU
	}
}
