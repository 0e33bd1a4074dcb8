package recur

import (
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
)

// CronSchedule expands a standard 5-field cron expression into its next n
// activation times strictly after from.
func CronSchedule(spec string, from time.Time, n int) ([]time.Time, error) {
	if n <= 0 {
		return nil, fmt.Errorf("occurrence count %d must be positive", n)
	}

	sched, err := cron.ParseStandard(spec)
	if err != nil {
		return nil, fmt.Errorf("parse cron %q: %w", spec, err)
	}

	out := make([]time.Time, 0, n)
	cur := from
	for len(out) < n {
		cur = sched.Next(cur)
		if cur.IsZero() {
			break
		}
		out = append(out, cur)
	}
	return out, nil
}
