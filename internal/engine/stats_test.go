package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/neosucpa/GlowMorning/internal"
)

func wakeAt(date string, hour, min int) *internal.DailyRecord {
	d, _ := time.Parse(internal.DateLayout, date)
	wt := time.Date(d.Year(), d.Month(), d.Day(), hour, min, 0, 0, time.UTC)
	return &internal.DailyRecord{Date: date, Wake: true, WakeTime: &wt}
}

func TestWeeklySeries(t *testing.T) {
	records := map[string]*internal.DailyRecord{
		"2024-01-08": wakeAt("2024-01-08", 6, 30),
		"2024-01-10": wakeAt("2024-01-10", 7, 0),
	}

	series := WeeklySeries(records, "2024-01-10", "06:00")
	assert.Len(t, series, 7)

	// trailing 7 days end at today
	assert.Equal(t, "2024-01-04", series[0].Date)
	assert.Equal(t, "2024-01-10", series[6].Date)

	// 2024-01-10 is a Wednesday
	assert.Equal(t, "Wed", series[6].Day)
	assert.True(t, series[6].IsSuccess)
	assert.NotNil(t, series[6].WakeTime)
	assert.InDelta(t, 7.0, *series[6].WakeTime, 0.001)

	// 6:30 -> 6.5 decimal hours
	assert.InDelta(t, 6.5, *series[4].WakeTime, 0.001)

	// unlogged day
	assert.Nil(t, series[5].WakeTime)
	assert.False(t, series[5].IsSuccess)

	for _, p := range series {
		assert.InDelta(t, 6.0, p.TargetTime, 0.001)
	}
}

func TestBestWeekdaysTies(t *testing.T) {
	// 2024-01-08 Mon, 01-15 Mon, 01-10 Wed, 01-17 Wed, 01-12 Fri
	records := map[string]*internal.DailyRecord{
		"2024-01-08": {Date: "2024-01-08", Wake: true},
		"2024-01-15": {Date: "2024-01-15", Wake: true},
		"2024-01-10": {Date: "2024-01-10", Wake: true},
		"2024-01-17": {Date: "2024-01-17", Wake: true},
		"2024-01-12": {Date: "2024-01-12", Wake: true},
		"2024-01-13": {Date: "2024-01-13", Wake: false},
	}

	stats := BestWeekdays(records)
	assert.Equal(t, 2, stats.Counts[time.Monday])
	assert.Equal(t, 2, stats.Counts[time.Wednesday])
	assert.Equal(t, 1, stats.Counts[time.Friday])
	assert.ElementsMatch(t, []string{"Mon", "Wed"}, stats.BestDays)
}

func TestBestWeekdaysEmpty(t *testing.T) {
	stats := BestWeekdays(nil)
	assert.Equal(t, []string{"-"}, stats.BestDays)

	stats = BestWeekdays(map[string]*internal.DailyRecord{
		"2024-01-10": {Date: "2024-01-10", Wake: false},
	})
	assert.Equal(t, []string{"-"}, stats.BestDays)
}

func TestMonthlySuccessRatePastMonth(t *testing.T) {
	records := make(map[string]*internal.DailyRecord)
	// 15 successes in April 2024 (30 days)
	for i := 1; i <= 15; i++ {
		date := time.Date(2024, 4, i, 0, 0, 0, 0, time.UTC).Format(internal.DateLayout)
		records[date] = &internal.DailyRecord{Date: date, Wake: true}
	}

	now := time.Date(2024, 5, 20, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, 50, MonthlySuccessRate(records, 2024, 4, now))
}

func TestMonthlySuccessRateMonthInProgress(t *testing.T) {
	records := map[string]*internal.DailyRecord{
		"2024-05-01": {Date: "2024-05-01", Wake: true},
		"2024-05-02": {Date: "2024-05-02", Wake: true},
		"2024-05-03": {Date: "2024-05-03", Wake: true},
	}

	// 3 successes over 10 elapsed days, not 31
	now := time.Date(2024, 5, 10, 8, 0, 0, 0, time.UTC)
	assert.Equal(t, 30, MonthlySuccessRate(records, 2024, 5, now))
}

func TestMonthlySuccessRateEmpty(t *testing.T) {
	now := time.Date(2024, 5, 10, 8, 0, 0, 0, time.UTC)
	assert.Equal(t, 0, MonthlySuccessRate(nil, 2024, 4, now))
}
