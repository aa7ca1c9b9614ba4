package engine

// Chapter is one milestone band in the long-run progression table.
type Chapter struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Duration    int    `json:"duration"`   // days inside this chapter
	TotalDays   int    `json:"total_days"` // cumulative successful days to finish it
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// Chapters is the fixed progression table. Durations are deliberately
// non-uniform: short early bands to reward the first week, long bands for
// the multi-year tail.
var Chapters = []Chapter{
	{1, "A Small Spark", 3, 3, "Beat the three-day slump. Survive three days and level up.", "🕯️"},
	{2, "Crack of Dawn", 4, 7, "One full week. Proof that you can do this.", "🌥️"},
	{3, "Morning Promise", 7, 14, "Two weeks in. Your daily rhythm is starting to shift.", "🌱"},
	{4, "Rising Sun", 7, 21, "The first habit gate: your brain is adapting.", "🌅"},
	{5, "Steady Light", 9, 30, "A whole month of mornings.", "🌤️"},
	{6, "Unshakable", 20, 50, "The burnout stretch. Push through it.", "🛡️"},
	{7, "The Habit Formed", 16, 66, "The habit sets in. Waking up no longer takes willpower.", "💎"},
	{8, "Hundred-Day Miracle", 34, 100, "The symbolic hundred. A changed person.", "🐻"},
	{9, "Radiant Journey", 80, 180, "Half a year. Hard to knock over now.", "✨"},
	{10, "Golden Morning", 185, 365, "Every season of the year, conquered.", "🏆"},
	{11, "Master of the Sun", 365, 730, "Veteran territory.", "👑"},
	{12, "Infinite Cosmos", 365, 1095, "The hall of fame. The final chapter.", "🌌"},
}

// ChapterProgress is the user's position on the progression table.
type ChapterProgress struct {
	Chapter      Chapter `json:"chapter"`
	Progress     float64 `json:"progress"` // percent within the chapter
	DayInChapter int     `json:"day_in_chapter"`
}

// ChapterFor maps a monotonically increasing total-successful-days counter
// onto the table. Totals beyond the last chapter clamp to it at 100%.
func ChapterFor(totalSuccessfulDays int) ChapterProgress {
	if totalSuccessfulDays <= 0 {
		return ChapterProgress{Chapter: Chapters[0]}
	}

	prevTotal := 0
	for _, ch := range Chapters {
		if totalSuccessfulDays <= ch.TotalDays {
			dayInChapter := totalSuccessfulDays - prevTotal
			return ChapterProgress{
				Chapter:      ch,
				Progress:     float64(dayInChapter) / float64(ch.Duration) * 100,
				DayInChapter: dayInChapter,
			}
		}
		prevTotal = ch.TotalDays
	}

	last := Chapters[len(Chapters)-1]
	return ChapterProgress{Chapter: last, Progress: 100, DayInChapter: last.Duration}
}
