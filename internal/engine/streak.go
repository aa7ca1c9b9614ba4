package engine

import (
	"time"

	"github.com/neosucpa/GlowMorning/internal"
)

// streakLookback caps the backward walk; effectively unbounded for
// realistic histories.
const streakLookback = 365

// savedHoursPerDay is how much of a head start one on-time morning buys.
const savedHoursPerDay = 1.5

// Streak counts consecutive qualifying days walking backward from today.
// Weekend days are skipped entirely when excludeWeekends is set. Today not
// being logged yet never breaks the streak; a miss on any earlier day does.
func Streak(records map[string]*internal.DailyRecord, todayStr string, excludeWeekends bool) int {
	day, err := time.Parse(internal.DateLayout, todayStr)
	if err != nil {
		return 0
	}

	streak := 0
	for i := 0; i < streakLookback; i++ {
		if excludeWeekends {
			wd := day.Weekday()
			if wd == time.Saturday || wd == time.Sunday {
				day = day.AddDate(0, 0, -1)
				continue
			}
		}

		rec := records[day.Format(internal.DateLayout)]
		if rec != nil && rec.Wake {
			streak++
		} else if i > 0 {
			break
		}
		day = day.AddDate(0, 0, -1)
	}
	return streak
}

// TotalSuccessfulDays is the count of days with a registered wake event.
// Always recomputed from the store, never persisted.
func TotalSuccessfulDays(records map[string]*internal.DailyRecord) int {
	total := 0
	for _, rec := range records {
		if rec != nil && rec.Wake {
			total++
		}
	}
	return total
}

// SavedTimeHours converts total successful days into the "hours ahead"
// figure shown on the dashboard.
func SavedTimeHours(totalSuccessfulDays int) float64 {
	return float64(totalSuccessfulDays) * savedHoursPerDay
}
