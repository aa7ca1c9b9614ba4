package api

import (
	"time"

	"github.com/neosucpa/GlowMorning/internal"
	"github.com/neosucpa/GlowMorning/internal/storage"
)

// App is the dependency surface handlers draw from. Now is injected so
// every wake-state evaluation is deterministic under test.
type App interface {
	Logger() internal.Logger
	Records() storage.RecordRepository
	SettingsRepo() storage.SettingsRepository
	Now() time.Time
}
