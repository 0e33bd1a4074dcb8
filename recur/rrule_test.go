package recur

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateRRule(t *testing.T) {
	start := time.Date(2024, time.January, 1, 9, 0, 0, 0, time.UTC)

	dates, err := GenerateRRule("FREQ=DAILY;COUNT=3", start, 0)
	require.NoError(t, err)
	require.Len(t, dates, 3)
	assert.True(t, dates[0].Equal(start))
	assert.True(t, dates[1].Equal(start.AddDate(0, 0, 1)))
	assert.True(t, dates[2].Equal(start.AddDate(0, 0, 2)))

	// The caller's count wins when smaller than the rule's.
	dates, err = GenerateRRule("FREQ=WEEKLY;COUNT=10", start, 4)
	require.NoError(t, err)
	assert.Len(t, dates, 4)

	_, err = GenerateRRule("FREQ=NONSENSE", start, 1)
	assert.Error(t, err)
}

func TestFromRRule(t *testing.T) {
	cfg, err := FromRRule("FREQ=DAILY;INTERVAL=2;COUNT=10")
	require.NoError(t, err)
	assert.Equal(t, Daily, cfg.Pattern)
	assert.Equal(t, 2, cfg.Interval)
	assert.Equal(t, 10, cfg.MaxOccurrences)

	cfg, err = FromRRule("FREQ=WEEKLY;BYDAY=MO,FR")
	require.NoError(t, err)
	assert.Equal(t, Custom, cfg.Pattern, "BYDAY narrows to the custom pattern")
	assert.Equal(t, []time.Weekday{time.Monday, time.Friday}, cfg.DaysOfWeek)

	_, err = FromRRule("FREQ=MINUTELY")
	assert.Error(t, err, "sub-daily frequencies have no pattern equivalent")
}

func TestToRRule(t *testing.T) {
	s, err := ToRRule(Config{Pattern: Daily, Interval: 2, MaxOccurrences: 5})
	require.NoError(t, err)
	assert.Contains(t, s, "FREQ=DAILY")
	assert.Contains(t, s, "INTERVAL=2")
	assert.Contains(t, s, "COUNT=5")

	s, err = ToRRule(Config{Pattern: Biweekly, MaxOccurrences: 5})
	require.NoError(t, err)
	assert.Contains(t, s, "FREQ=WEEKLY")
	assert.Contains(t, s, "INTERVAL=2")

	_, err = ToRRule(Config{Pattern: Weekdays})
	assert.Error(t, err, "business-day patterns are not expressible as RRULE")

	_, err = ToRRule(Config{Pattern: Custom, DaysOfMonth: []int{1}})
	assert.Error(t, err)
}

func TestRRuleRoundTrip(t *testing.T) {
	orig := Config{Pattern: Weekly, Interval: 1, MaxOccurrences: 6}
	s, err := ToRRule(orig)
	require.NoError(t, err)

	back, err := FromRRule(s)
	require.NoError(t, err)
	assert.Equal(t, orig.Pattern, back.Pattern)
	assert.Equal(t, orig.MaxOccurrences, back.MaxOccurrences)
}

func TestCronSchedule(t *testing.T) {
	from := time.Date(2024, time.January, 5, 0, 0, 0, 0, time.UTC)

	// Daily at 09:00.
	times, err := CronSchedule("0 9 * * *", from, 3)
	require.NoError(t, err)
	require.Len(t, times, 3)
	assert.Equal(t, time.Date(2024, time.January, 5, 9, 0, 0, 0, time.UTC), times[0])
	assert.Equal(t, time.Date(2024, time.January, 6, 9, 0, 0, 0, time.UTC), times[1])

	// Mondays only.
	times, err = CronSchedule("0 0 * * 1", from, 2)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, time.January, 8, 0, 0, 0, 0, time.UTC), times[0])
	assert.Equal(t, time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC), times[1])

	_, err = CronSchedule("not cron", from, 1)
	assert.Error(t, err)
	_, err = CronSchedule("0 9 * * *", from, 0)
	assert.Error(t, err)
}
