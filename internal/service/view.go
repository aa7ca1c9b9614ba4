package service

import (
	"context"
	"time"

	"github.com/neosucpa/GlowMorning/internal"
	"github.com/neosucpa/GlowMorning/internal/engine"
	"github.com/neosucpa/GlowMorning/internal/storage"
)

// DashboardView is the home-screen payload: current state plus the
// streak/chapter aggregates, all recomputed from the store.
type DashboardView struct {
	Date                string                 `json:"date"`
	Status              engine.WakeStatus      `json:"status"`
	CurrentStreak       int                    `json:"current_streak"`
	TotalSuccessfulDays int                    `json:"total_successful_days"`
	SavedTimeHours      float64                `json:"saved_time_hours"`
	Chapter             engine.ChapterProgress `json:"chapter"`
	Today               *internal.DailyRecord  `json:"today,omitempty"`
}

func BuildDashboard(ctx context.Context, records storage.RecordRepository, settings *internal.Settings, now time.Time) (*DashboardView, error) {
	snapshot, err := records.ListRecords(ctx)
	if err != nil {
		return nil, err
	}

	today := now.Format(internal.DateLayout)
	total := engine.TotalSuccessfulDays(snapshot)

	return &DashboardView{
		Date:                today,
		Status:              engine.WakeStatusAt(now, settings, snapshot[today]),
		CurrentStreak:       engine.Streak(snapshot, today, settings.ExcludeWeekends),
		TotalSuccessfulDays: total,
		SavedTimeHours:      engine.SavedTimeHours(total),
		Chapter:             engine.ChapterFor(total),
		Today:               snapshot[today],
	}, nil
}

// StatsView is the stats-screen payload.
type StatsView struct {
	Weekly      []engine.WeeklyPoint `json:"weekly"`
	Weekdays    engine.WeekdayStats  `json:"weekdays"`
	MonthlyRate int                  `json:"monthly_rate"`
}

func BuildStats(ctx context.Context, records storage.RecordRepository, settings *internal.Settings, now time.Time) (*StatsView, error) {
	snapshot, err := records.ListRecords(ctx)
	if err != nil {
		return nil, err
	}

	today := now.Format(internal.DateLayout)
	return &StatsView{
		Weekly:      engine.WeeklySeries(snapshot, today, settings.TargetWakeTime),
		Weekdays:    engine.BestWeekdays(snapshot),
		MonthlyRate: engine.MonthlySuccessRate(snapshot, now.Year(), int(now.Month()), now),
	}, nil
}

func BuildBadges(ctx context.Context, records storage.RecordRepository) ([]engine.BadgeView, error) {
	snapshot, err := records.ListRecords(ctx)
	if err != nil {
		return nil, err
	}
	return engine.EvaluateAllBadges(snapshot), nil
}

func BuildStatus(ctx context.Context, records storage.RecordRepository, settings *internal.Settings, now time.Time) (*engine.WakeStatus, error) {
	rec, err := records.GetRecord(ctx, now.Format(internal.DateLayout))
	if err != nil {
		return nil, err
	}
	status := engine.WakeStatusAt(now, settings, rec)
	return &status, nil
}
