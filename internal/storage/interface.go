package storage

import (
	"context"

	"github.com/neosucpa/GlowMorning/internal"
)

// RecordRepository owns the date-keyed daily record store. UpsertRecord is
// the only mutation path: it merges a partial patch into the record for
// that date, creating it on first interaction.
type RecordRepository interface {
	UpsertRecord(ctx context.Context, date string, patch internal.RecordPatch) (*internal.DailyRecord, error)
	// GetRecord returns (nil, nil) when the day has no record; absence is
	// normal, not an error.
	GetRecord(ctx context.Context, date string) (*internal.DailyRecord, error)
	// ListRecords returns a snapshot copy safe to hand to the engine.
	ListRecords(ctx context.Context) (map[string]*internal.DailyRecord, error)
}

// SettingsRepository persists the user's configuration.
type SettingsRepository interface {
	// GetSettings returns defaults when nothing has been saved yet.
	GetSettings(ctx context.Context) (*internal.Settings, error)
	SaveSettings(ctx context.Context, settings *internal.Settings) error
}
