package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/neosucpa/GlowMorning/internal"
	"github.com/neosucpa/GlowMorning/internal/engine"
	"github.com/neosucpa/GlowMorning/internal/storage"
)

var validate = validator.New()

var (
	ErrInvalidTransition = errors.New("wake transition not valid in current state")
	ErrDayCompleted      = errors.New("record already completed for today")
	ErrContentRequired   = errors.New("a note or photo is required")
	ErrInvalidTime       = errors.New("time must be HH:MM in 24-hour format")
)

type ManualWakeRequest struct {
	Time string `json:"time" validate:"required"`
}

type LogEntryRequest struct {
	Note     string `json:"note" validate:"omitempty,max=100"`
	PhotoURL string `json:"photo_url" validate:"omitempty,max=2048"`
}

func ValidateManualWakeRequest(req *ManualWakeRequest) error {
	if err := validate.Struct(req); err != nil {
		return err
	}
	// Strict here, unlike the engine's soft parsing: a bad manual entry is
	// rejected before anything is persisted.
	if _, err := time.Parse("15:04", req.Time); err != nil {
		return ErrInvalidTime
	}
	return nil
}

func ValidateLogEntryRequest(req *LogEntryRequest) error {
	if err := validate.Struct(req); err != nil {
		return err
	}
	if strings.TrimSpace(req.Note) == "" && req.PhotoURL == "" {
		return ErrContentRequired
	}
	return nil
}

// AutoConfirmWake is the "I woke up" tap, valid only inside the window.
func AutoConfirmWake(ctx context.Context, records storage.RecordRepository, settings *internal.Settings, now time.Time) (*internal.DailyRecord, error) {
	today := now.Format(internal.DateLayout)
	rec, err := records.GetRecord(ctx, today)
	if err != nil {
		return nil, err
	}
	if rec != nil && rec.Completed {
		return nil, ErrDayCompleted
	}

	status := engine.WakeStatusAt(now, settings, rec)
	if !engine.TransitionAllowed(status.State, internal.VerificationPreAuth) {
		return nil, ErrInvalidTransition
	}

	return records.UpsertRecord(ctx, today, engine.AutoConfirmPatch(now))
}

// ManualWake backfills a hand-entered wake time, valid while the window is
// open or after it has been missed.
func ManualWake(ctx context.Context, records storage.RecordRepository, settings *internal.Settings, now time.Time, req *ManualWakeRequest) (*internal.DailyRecord, error) {
	today := now.Format(internal.DateLayout)
	rec, err := records.GetRecord(ctx, today)
	if err != nil {
		return nil, err
	}
	if rec != nil && rec.Completed {
		return nil, ErrDayCompleted
	}

	status := engine.WakeStatusAt(now, settings, rec)
	if !engine.TransitionAllowed(status.State, internal.VerificationManual) {
		return nil, ErrInvalidTransition
	}

	targetMins := engine.ToMinutes(settings.TargetWakeTime)
	return records.UpsertRecord(ctx, today, engine.ManualWakePatch(now, req.Time, targetMins))
}

// DismissAlarm records the alarm-screen dismissal; success stays
// unevaluated until render time.
func DismissAlarm(ctx context.Context, records storage.RecordRepository, now time.Time) (*internal.DailyRecord, error) {
	today := now.Format(internal.DateLayout)
	rec, err := records.GetRecord(ctx, today)
	if err != nil {
		return nil, err
	}
	if rec != nil && rec.Completed {
		return nil, ErrDayCompleted
	}

	return records.UpsertRecord(ctx, today, engine.AlarmDismissPatch(now))
}

// SaveLogEntry stores the day's note/photo. The day flips to completed
// only once both a wake event and log content exist.
func SaveLogEntry(ctx context.Context, records storage.RecordRepository, now time.Time, req *LogEntryRequest) (*internal.DailyRecord, error) {
	today := now.Format(internal.DateLayout)
	rec, err := records.GetRecord(ctx, today)
	if err != nil {
		return nil, err
	}

	note := strings.TrimSpace(req.Note)
	patch := internal.RecordPatch{
		MorningNote: &note,
		PhotoURL:    &req.PhotoURL,
	}
	if rec != nil && rec.Wake {
		completed := true
		patch.Completed = &completed
	}

	return records.UpsertRecord(ctx, today, patch)
}
