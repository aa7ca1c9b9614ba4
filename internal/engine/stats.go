package engine

import (
	"math"
	"strconv"
	"time"

	"github.com/neosucpa/GlowMorning/internal"
)

var weekdayNames = [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// WeeklyPoint is one bar of the trailing 7-day wake-time chart.
type WeeklyPoint struct {
	Day        string   `json:"day"`
	Date       string   `json:"date"`
	WakeTime   *float64 `json:"wake_time"` // decimal hours, nil when not logged
	IsSuccess  bool     `json:"is_success"`
	TargetTime float64  `json:"target_time"`
}

// WeeklySeries emits the trailing 7 days ending at todayStr. Wake times
// are converted to decimal hours (6:30 -> 6.5) for charting.
func WeeklySeries(records map[string]*internal.DailyRecord, todayStr, targetWakeTime string) []WeeklyPoint {
	today, err := time.Parse(internal.DateLayout, todayStr)
	if err != nil {
		return nil
	}
	target := float64(ToMinutes(targetWakeTime)) / 60

	series := make([]WeeklyPoint, 0, 7)
	for i := 6; i >= 0; i-- {
		d := today.AddDate(0, 0, -i)
		dateStr := d.Format(internal.DateLayout)
		rec := records[dateStr]

		point := WeeklyPoint{
			Day:        weekdayNames[d.Weekday()],
			Date:       dateStr,
			TargetTime: target,
		}
		if rec != nil {
			point.IsSuccess = rec.Wake
			if rec.WakeTime != nil {
				wt := float64(rec.WakeTime.Hour()) + float64(rec.WakeTime.Minute())/60
				point.WakeTime = &wt
			}
		}
		series = append(series, point)
	}
	return series
}

// WeekdayStats buckets all successful days by weekday (0=Sunday).
type WeekdayStats struct {
	Counts   [7]int   `json:"counts"`
	BestDays []string `json:"best_days"` // every weekday tied for the max; ["-"] when empty
}

// BestWeekdays finds the weekday(s) with the most successes. Ties are
// preserved rather than arbitrarily broken.
func BestWeekdays(records map[string]*internal.DailyRecord) WeekdayStats {
	var stats WeekdayStats
	for dateStr, rec := range records {
		if rec == nil || !rec.Wake {
			continue
		}
		d, err := time.Parse(internal.DateLayout, dateStr)
		if err != nil {
			continue
		}
		stats.Counts[d.Weekday()]++
	}

	max := 0
	for _, c := range stats.Counts {
		if c > max {
			max = c
		}
	}
	if max == 0 {
		stats.BestDays = []string{"-"}
		return stats
	}
	for i, c := range stats.Counts {
		if c == max {
			stats.BestDays = append(stats.BestDays, weekdayNames[i])
		}
	}
	return stats
}

// MonthlySuccessRate returns the success percentage for year/month (1-12),
// rounded to the nearest integer. The denominator is the day-of-month for
// the month in progress and the full month length otherwise.
func MonthlySuccessRate(records map[string]*internal.DailyRecord, year, month int, now time.Time) int {
	prefix := strconv.Itoa(year) + "-" + pad2(month)

	successCount := 0
	for dateStr, rec := range records {
		if rec != nil && rec.Wake && len(dateStr) >= 7 && dateStr[:7] == prefix {
			successCount++
		}
	}

	// day 0 of the next month is the last day of this one
	totalDays := time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
	if now.Year() == year && int(now.Month()) == month {
		totalDays = now.Day()
	}
	if totalDays <= 0 {
		return 0
	}
	return int(math.Round(float64(successCount) / float64(totalDays) * 100))
}
