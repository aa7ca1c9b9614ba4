package service

import (
	"context"
	"time"

	"github.com/neosucpa/GlowMorning/internal"
	"github.com/neosucpa/GlowMorning/internal/storage"
)

type SettingsRequest struct {
	TargetWakeTime       string  `json:"target_wake_time" validate:"required"`
	SleepDurationHours   float64 `json:"sleep_duration_hours" validate:"required,gt=0,lte=16"`
	ExcludeWeekends      bool    `json:"exclude_weekends"`
	Goal                 string  `json:"goal" validate:"omitempty,max=200"`
	MorningTheme         string  `json:"morning_theme" validate:"omitempty,max=50"`
	NotificationsEnabled bool    `json:"notifications_enabled"`
}

func ValidateSettingsRequest(req *SettingsRequest) error {
	if err := validate.Struct(req); err != nil {
		return err
	}
	if _, err := time.Parse("15:04", req.TargetWakeTime); err != nil {
		return ErrInvalidTime
	}
	return nil
}

// UpdateSettings replaces the user-editable fields while preserving the
// onboarding/pledge bookkeeping.
func UpdateSettings(ctx context.Context, repo storage.SettingsRepository, req *SettingsRequest) (*internal.Settings, error) {
	settings, err := repo.GetSettings(ctx)
	if err != nil {
		return nil, err
	}

	settings.TargetWakeTime = req.TargetWakeTime
	settings.SleepDurationHours = req.SleepDurationHours
	settings.ExcludeWeekends = req.ExcludeWeekends
	settings.Goal = req.Goal
	settings.MorningTheme = req.MorningTheme
	settings.NotificationsEnabled = req.NotificationsEnabled
	settings.OnboardingCompleted = true

	if err := repo.SaveSettings(ctx, settings); err != nil {
		return nil, err
	}
	return settings, nil
}
