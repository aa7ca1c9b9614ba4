package engine

import (
	"math"
	"sort"
	"strings"
	"time"

	"github.com/neosucpa/GlowMorning/internal"
)

// ConditionType selects how a badge's progress value is computed from the
// record store.
type ConditionType string

const (
	CondCount      ConditionType = "count"       // total days with a wake event
	CondStreak     ConditionType = "streak"      // longest consecutive-day run ever
	CondTimeCount  ConditionType = "time_count"  // wakes strictly before an hour of day
	CondPhotoCount ConditionType = "photo_count" // records carrying a photo
	CondNoteCount  ConditionType = "note_count"  // records carrying a non-blank note
)

// BadgeCondition is the tagged condition variant. Hour is only meaningful
// for time_count.
type BadgeCondition struct {
	Type  ConditionType `json:"type"`
	Count int           `json:"count"`
	Hour  int           `json:"hour,omitempty"`
}

// Badge is one achievement definition from the static catalog.
type Badge struct {
	ID          string         `json:"id"`
	Group       string         `json:"group"`
	Tier        int            `json:"tier"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Condition   BadgeCondition `json:"condition"`
	Icon        string         `json:"icon"`
}

// Badge groups.
const (
	GroupBeginning   = "BEGINNING"   // cumulative totals
	GroupConsistency = "CONSISTENCY" // streaks
	GroupEarlyBird   = "EARLY_BIRD"  // wake-time thresholds
	GroupArchivist   = "ARCHIVIST"   // photo/note collection
)

// GroupNames maps group IDs to display names.
var GroupNames = map[string]string{
	GroupBeginning:   "First Steps (totals)",
	GroupConsistency: "The Art of Consistency (streaks)",
	GroupEarlyBird:   "Opening the Dawn (wake times)",
	GroupArchivist:   "The Power of Records (collection)",
}

// Badges is the fixed achievement catalog. Unlock status is never stored;
// it is recomputed from the record store on every evaluation so edits to
// history immediately affect it.
var Badges = []Badge{
	// Beginning: cumulative wake counts.
	{"FIRST_STEP", GroupBeginning, 1, "First Step", "Log your very first morning.", BadgeCondition{Type: CondCount, Count: 1}, "🌱"},
	{"ONE_WEEK_TOTAL", GroupBeginning, 1, "A Week of Mornings", "Log 7 mornings in total.", BadgeCondition{Type: CondCount, Count: 7}, "🧱"},
	{"TWO_WEEKS_TOTAL", GroupBeginning, 2, "Two Weeks Banked", "Log 14 mornings in total.", BadgeCondition{Type: CondCount, Count: 14}, "🏗️"},
	{"FIRST_MONTH_TOTAL", GroupBeginning, 2, "A Month's Journey", "Log 30 mornings in total.", BadgeCondition{Type: CondCount, Count: 30}, "🗓️"},
	{"FIFTY_DAYS_TOTAL", GroupBeginning, 3, "Fifty on Record", "Log 50 mornings in total.", BadgeCondition{Type: CondCount, Count: 50}, "📝"},
	{"HUNDRED_DAYS_TOTAL", GroupBeginning, 3, "A Hundred Days of Grit", "Log 100 mornings in total.", BadgeCondition{Type: CondCount, Count: 100}, "💯"},
	{"YEAR_OF_MORNINGS", GroupBeginning, 3, "A Year of Mornings", "Log 365 mornings in total.", BadgeCondition{Type: CondCount, Count: 365}, "🌏"},

	// Consistency: longest streak ever.
	{"THREE_DAY_STREAK", GroupConsistency, 1, "Past the Three-Day Slump", "Log 3 mornings in a row.", BadgeCondition{Type: CondStreak, Count: 3}, "🐣"},
	{"WEEKLY_STREAK", GroupConsistency, 1, "A Week's Rhythm", "Log 7 mornings in a row.", BadgeCondition{Type: CondStreak, Count: 7}, "🎵"},
	{"TWO_WEEK_STREAK", GroupConsistency, 2, "Two Weeks Deep", "Log 14 mornings in a row.", BadgeCondition{Type: CondStreak, Count: 14}, "🔥"},
	{"MONTHLY_STREAK", GroupConsistency, 2, "A Perfect Month", "Log 30 mornings in a row.", BadgeCondition{Type: CondStreak, Count: 30}, "👑"},
	{"HABIT_FORMED", GroupConsistency, 3, "Habit Formed", "Log 66 mornings in a row.", BadgeCondition{Type: CondStreak, Count: 66}, "🧠"},
	{"HUNDRED_DAY_STREAK", GroupConsistency, 3, "Hundred-Day Miracle", "Log 100 mornings in a row.", BadgeCondition{Type: CondStreak, Count: 100}, "🦄"},
	{"YEAR_STREAK", GroupConsistency, 3, "Birth of a Legend", "Log 365 mornings in a row.", BadgeCondition{Type: CondStreak, Count: 365}, "🏆"},

	// Early bird: wakes before an hour of day.
	{"GOOD_START", GroupEarlyBird, 1, "Fresh Start", "Wake before 8 AM, 5 times.", BadgeCondition{Type: CondTimeCount, Hour: 8, Count: 5}, "🌤️"},
	{"EARLY_START", GroupEarlyBird, 1, "Diligent Morning", "Wake before 7 AM, 5 times.", BadgeCondition{Type: CondTimeCount, Hour: 7, Count: 5}, "⏰"},
	{"SUNRISE_CHASER", GroupEarlyBird, 2, "Sunrise Chaser", "Wake before 6 AM, 10 times.", BadgeCondition{Type: CondTimeCount, Hour: 6, Count: 10}, "🌅"},
	{"MORNING_PERSON", GroupEarlyBird, 2, "Morning Person", "Wake before 6 AM, 30 times.", BadgeCondition{Type: CondTimeCount, Hour: 6, Count: 30}, "🏃"},
	{"MIRACLE_MORNING", GroupEarlyBird, 3, "Miracle Morning", "Wake before 5 AM, 10 times.", BadgeCondition{Type: CondTimeCount, Hour: 5, Count: 10}, "✨"},
	{"5AM_CLUB", GroupEarlyBird, 3, "The 5 AM Club", "Wake before 5 AM, 30 times.", BadgeCondition{Type: CondTimeCount, Hour: 5, Count: 30}, "🧘"},
	{"MASTER_OF_DAWN", GroupEarlyBird, 3, "Master of Dawn", "Wake before 6 AM, 100 times.", BadgeCondition{Type: CondTimeCount, Hour: 6, Count: 100}, "🧙‍♂️"},

	// Archivist: photos and notes.
	{"MEMORY_COLLECTOR", GroupArchivist, 1, "Memory Collector", "Leave 10 records with a photo.", BadgeCondition{Type: CondPhotoCount, Count: 10}, "📸"},
	{"STORYTELLER", GroupArchivist, 1, "Storyteller", "Leave 10 records with a note.", BadgeCondition{Type: CondNoteCount, Count: 10}, "✍️"},
	{"PHOTO_ALBUM", GroupArchivist, 2, "Personal Album", "Leave 30 records with a photo.", BadgeCondition{Type: CondPhotoCount, Count: 30}, "🖼️"},
	{"ESSAYIST", GroupArchivist, 2, "Essayist", "Leave 30 records with a note.", BadgeCondition{Type: CondNoteCount, Count: 30}, "📖"},
	{"VISUAL_DIARY", GroupArchivist, 3, "Visual Diary", "Leave 100 records with a photo.", BadgeCondition{Type: CondPhotoCount, Count: 100}, "🎞️"},
	{"NOVELIST", GroupArchivist, 3, "Novelist", "Leave 100 records with a note.", BadgeCondition{Type: CondNoteCount, Count: 100}, "📚"},
	{"AUTOBIOGRAPHY", GroupArchivist, 3, "Autobiography", "Leave 365 records with a note.", BadgeCondition{Type: CondNoteCount, Count: 365}, "🖋️"},
}

// BadgeProgress is the derived unlock status for one badge.
type BadgeProgress struct {
	Current  int  `json:"current"` // clamped at Target for display
	Target   int  `json:"target"`
	Percent  int  `json:"percent"`
	Unlocked bool `json:"unlocked"`
}

// BadgeView pairs a catalog entry with its evaluated progress.
type BadgeView struct {
	Badge
	BadgeProgress
}

// MaxStreakEver scans the whole history for the longest run of
// consecutive-day wake records, independent of the active streak.
func MaxStreakEver(records map[string]*internal.DailyRecord) int {
	dates := make([]string, 0, len(records))
	for dateStr := range records {
		dates = append(dates, dateStr)
	}
	sort.Strings(dates)

	maxStreak, run := 0, 0
	var prev time.Time
	for _, dateStr := range dates {
		rec := records[dateStr]
		if rec == nil || !rec.Wake {
			continue
		}
		curr, err := time.Parse(internal.DateLayout, dateStr)
		if err != nil {
			continue
		}
		if !prev.IsZero() && int(curr.Sub(prev).Hours()/24) == 1 {
			run++
		} else {
			run = 1
		}
		if run > maxStreak {
			maxStreak = run
		}
		prev = curr
	}
	return maxStreak
}

// EvaluateCondition computes a badge's progress from the record store.
func EvaluateCondition(records map[string]*internal.DailyRecord, cond BadgeCondition) BadgeProgress {
	current := 0

	switch cond.Type {
	case CondCount:
		current = TotalSuccessfulDays(records)
	case CondStreak:
		current = MaxStreakEver(records)
	case CondTimeCount:
		for _, rec := range records {
			if rec != nil && rec.Wake && rec.WakeTime != nil && rec.WakeTime.Hour() < cond.Hour {
				current++
			}
		}
	case CondPhotoCount:
		for _, rec := range records {
			if rec != nil && rec.PhotoURL != "" {
				current++
			}
		}
	case CondNoteCount:
		for _, rec := range records {
			if rec != nil && strings.TrimSpace(rec.MorningNote) != "" {
				current++
			}
		}
	}

	progress := BadgeProgress{Target: cond.Count}
	if cond.Count <= 0 {
		return progress
	}

	progress.Current = current
	if progress.Current > cond.Count {
		progress.Current = cond.Count
	}
	pct := int(math.Round(float64(current) / float64(cond.Count) * 100))
	if pct > 100 {
		pct = 100
	}
	progress.Percent = pct
	progress.Unlocked = current >= cond.Count
	return progress
}

// EvaluateAllBadges evaluates the whole catalog against the store.
func EvaluateAllBadges(records map[string]*internal.DailyRecord) []BadgeView {
	views := make([]BadgeView, 0, len(Badges))
	for _, b := range Badges {
		views = append(views, BadgeView{
			Badge:         b,
			BadgeProgress: EvaluateCondition(records, b.Condition),
		})
	}
	return views
}
