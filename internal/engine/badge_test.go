package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/neosucpa/GlowMorning/internal"
)

func TestBadgeCatalogShape(t *testing.T) {
	assert.Len(t, Badges, 28)
	seen := make(map[string]bool)
	for _, b := range Badges {
		assert.False(t, seen[b.ID], "duplicate badge id %s", b.ID)
		seen[b.ID] = true
		assert.Contains(t, GroupNames, b.Group)
		assert.Greater(t, b.Condition.Count, 0, "badge %s", b.ID)
	}
}

func TestMaxStreakEverBeatsCurrentStreak(t *testing.T) {
	// A five-day run in the past, then a gap, then two recent days: the
	// current streak is 2 but the badge scan must find the historical 5.
	records := recordsFrom(map[string]bool{
		"2024-01-01": true,
		"2024-01-02": true,
		"2024-01-03": true,
		"2024-01-04": true,
		"2024-01-05": true,
		"2024-01-09": true,
		"2024-01-10": true,
	})

	assert.Equal(t, 2, Streak(records, "2024-01-10", false))
	assert.Equal(t, 5, MaxStreakEver(records))
}

func TestMaxStreakEverCoversCurrentStreak(t *testing.T) {
	// when the active streak is the historical maximum, the badge scan
	// must not undercount it
	records := recordsFrom(map[string]bool{
		"2024-01-08": true,
		"2024-01-09": true,
		"2024-01-10": true,
	})
	current := Streak(records, "2024-01-10", false)
	assert.GreaterOrEqual(t, MaxStreakEver(records), current)
}

func TestMaxStreakEverIgnoresFailedDays(t *testing.T) {
	records := recordsFrom(map[string]bool{
		"2024-01-01": true,
		"2024-01-02": false,
		"2024-01-03": true,
	})
	assert.Equal(t, 1, MaxStreakEver(records))
	assert.Equal(t, 0, MaxStreakEver(nil))
}

func TestEvaluateCountCondition(t *testing.T) {
	records := recordsFrom(map[string]bool{
		"2024-01-01": true,
		"2024-01-02": true,
		"2024-01-03": false,
	})

	p := EvaluateCondition(records, BadgeCondition{Type: CondCount, Count: 1})
	assert.True(t, p.Unlocked)
	assert.Equal(t, 1, p.Current) // clamped at target for display
	assert.Equal(t, 100, p.Percent)

	p = EvaluateCondition(records, BadgeCondition{Type: CondCount, Count: 7})
	assert.False(t, p.Unlocked)
	assert.Equal(t, 2, p.Current)
	assert.Equal(t, 29, p.Percent)
}

func TestEvaluateTimeCountCondition(t *testing.T) {
	records := map[string]*internal.DailyRecord{
		"2024-01-01": wakeAt("2024-01-01", 5, 30),
		"2024-01-02": wakeAt("2024-01-02", 6, 0), // hour 6 is not before 6
		"2024-01-03": wakeAt("2024-01-03", 5, 59),
		"2024-01-04": {Date: "2024-01-04", Wake: true}, // no wake time recorded
	}

	p := EvaluateCondition(records, BadgeCondition{Type: CondTimeCount, Hour: 6, Count: 10})
	assert.Equal(t, 2, p.Current)
	assert.Equal(t, 20, p.Percent)
	assert.False(t, p.Unlocked)
}

func TestEvaluatePhotoAndNoteConditions(t *testing.T) {
	records := map[string]*internal.DailyRecord{
		"2024-01-01": {Date: "2024-01-01", PhotoURL: "photos/a.jpg", MorningNote: "good morning"},
		"2024-01-02": {Date: "2024-01-02", MorningNote: "   "}, // whitespace-only note doesn't count
		"2024-01-03": {Date: "2024-01-03", PhotoURL: "photos/b.jpg"},
	}

	p := EvaluateCondition(records, BadgeCondition{Type: CondPhotoCount, Count: 10})
	assert.Equal(t, 2, p.Current)

	p = EvaluateCondition(records, BadgeCondition{Type: CondNoteCount, Count: 10})
	assert.Equal(t, 1, p.Current)
}

func TestEvaluateAllBadgesNeverPersistsUnlocks(t *testing.T) {
	records := recordsFrom(map[string]bool{
		"2024-01-01": true,
	})

	views := EvaluateAllBadges(records)
	assert.Len(t, views, len(Badges))

	byID := make(map[string]BadgeView, len(views))
	for _, v := range views {
		byID[v.ID] = v
	}
	assert.True(t, byID["FIRST_STEP"].Unlocked)

	// editing history backwards retracts the unlock on the next evaluation
	records["2024-01-01"].Wake = false
	views = EvaluateAllBadges(records)
	for _, v := range views {
		if v.ID == "FIRST_STEP" {
			assert.False(t, v.Unlocked)
		}
	}
}

func TestEvaluateConditionEmptyStore(t *testing.T) {
	for _, ct := range []ConditionType{CondCount, CondStreak, CondTimeCount, CondPhotoCount, CondNoteCount} {
		p := EvaluateCondition(nil, BadgeCondition{Type: ct, Hour: 6, Count: 5})
		assert.Equal(t, 0, p.Current, string(ct))
		assert.False(t, p.Unlocked, string(ct))
	}
}
