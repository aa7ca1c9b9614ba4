package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/neosucpa/GlowMorning/internal"
)

func newTestStorage(t *testing.T) (*FileStorage, string, string) {
	t.Helper()
	dir := t.TempDir()
	recordsFile := filepath.Join(dir, "records.json")
	settingsFile := filepath.Join(dir, "settings.json")

	logger := internal.NewZapLogger(zap.NewNop().Sugar())
	s, err := NewFileStorage(recordsFile, settingsFile, logger)
	assert.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s, recordsFile, settingsFile
}

func boolPtr(b bool) *bool    { return &b }
func strPtr(s string) *string { return &s }

func TestUpsertCreatesAndMerges(t *testing.T) {
	s, _, _ := newTestStorage(t)
	ctx := context.Background()

	wakeAt := time.Date(2024, 1, 10, 6, 15, 0, 0, time.UTC)
	vt := internal.VerificationPreAuth
	rec, err := s.UpsertRecord(ctx, "2024-01-10", internal.RecordPatch{
		Wake:         boolPtr(true),
		WakeTime:     &wakeAt,
		Verification: &vt,
		IsSuccess:    boolPtr(true),
	})
	assert.NoError(t, err)
	assert.True(t, rec.Wake)
	assert.Equal(t, "2024-01-10", rec.Date)
	assert.False(t, rec.CreatedAt.IsZero())

	// merging a later patch must not clobber untouched fields
	rec, err = s.UpsertRecord(ctx, "2024-01-10", internal.RecordPatch{
		MorningNote: strPtr("saw the sunrise"),
		Completed:   boolPtr(true),
	})
	assert.NoError(t, err)
	assert.True(t, rec.Wake)
	assert.Equal(t, internal.VerificationPreAuth, rec.Verification)
	assert.Equal(t, "saw the sunrise", rec.MorningNote)
	assert.True(t, rec.Completed)
	assert.NotNil(t, rec.WakeTime)
}

func TestGetRecordAbsentIsNotAnError(t *testing.T) {
	s, _, _ := newTestStorage(t)

	rec, err := s.GetRecord(context.Background(), "2030-01-01")
	assert.NoError(t, err)
	assert.Nil(t, rec)
}

func TestListRecordsReturnsIsolatedSnapshot(t *testing.T) {
	s, _, _ := newTestStorage(t)
	ctx := context.Background()

	_, err := s.UpsertRecord(ctx, "2024-01-10", internal.RecordPatch{Wake: boolPtr(true)})
	assert.NoError(t, err)

	snapshot, err := s.ListRecords(ctx)
	assert.NoError(t, err)
	assert.Len(t, snapshot, 1)

	// mutating the snapshot must not leak back into the store
	snapshot["2024-01-10"].Wake = false
	rec, err := s.GetRecord(ctx, "2024-01-10")
	assert.NoError(t, err)
	assert.True(t, rec.Wake)
}

func TestSettingsDefaultsAndRoundtrip(t *testing.T) {
	s, _, _ := newTestStorage(t)
	ctx := context.Background()

	settings, err := s.GetSettings(ctx)
	assert.NoError(t, err)
	assert.Equal(t, "07:00", settings.TargetWakeTime)

	settings.TargetWakeTime = "05:30"
	settings.ExcludeWeekends = true
	assert.NoError(t, s.SaveSettings(ctx, settings))

	got, err := s.GetSettings(ctx)
	assert.NoError(t, err)
	assert.Equal(t, "05:30", got.TargetWakeTime)
	assert.True(t, got.ExcludeWeekends)
}

func TestCloseFlushesAndReloads(t *testing.T) {
	dir := t.TempDir()
	recordsFile := filepath.Join(dir, "records.json")
	settingsFile := filepath.Join(dir, "settings.json")
	logger := internal.NewZapLogger(zap.NewNop().Sugar())

	s, err := NewFileStorage(recordsFile, settingsFile, logger)
	assert.NoError(t, err)

	ctx := context.Background()
	_, err = s.UpsertRecord(ctx, "2024-01-10", internal.RecordPatch{
		Wake:        boolPtr(true),
		MorningNote: strPtr("first light"),
	})
	assert.NoError(t, err)
	assert.NoError(t, s.Close())

	reloaded, err := NewFileStorage(recordsFile, settingsFile, logger)
	assert.NoError(t, err)
	defer reloaded.Close()

	rec, err := reloaded.GetRecord(ctx, "2024-01-10")
	assert.NoError(t, err)
	assert.NotNil(t, rec)
	assert.True(t, rec.Wake)
	assert.Equal(t, "first light", rec.MorningNote)
}
