package storage

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/neosucpa/GlowMorning/internal"
)

// PostgresStorage backs the record store with a daily_records table keyed
// by date and a single-row settings table.
type PostgresStorage struct {
	pool   *pgxpool.Pool
	logger internal.Logger
}

func NewPostgresStorage(dsn string, logger internal.Logger) (*PostgresStorage, error) {
	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		logger.Errorf("failed to connect to postgres: %v", err)
		return nil, err
	}
	return &PostgresStorage{pool: pool, logger: logger}, nil
}

// --- RecordRepository ---

// UpsertRecord does the read-merge-write inside a transaction so the patch
// semantics match the file backend.
func (p *PostgresStorage) UpsertRecord(ctx context.Context, date string, patch internal.RecordPatch) (*internal.DailyRecord, error) {
	tx, err := p.pool.Begin(ctx)
	if err != nil {
		p.logger.Errorf("failed to begin upsert tx: %v", err)
		return nil, err
	}
	defer tx.Rollback(ctx)

	rec, err := scanRecord(tx.QueryRow(ctx, selectRecordSQL+` FOR UPDATE`, date))
	if err != nil {
		return nil, err
	}
	if rec == nil {
		rec = &internal.DailyRecord{Date: date}
	}
	rec.Apply(patch)

	_, err = tx.Exec(ctx, `
		INSERT INTO daily_records
			(date, wake, wake_time, verification_type, is_success, morning_note, photo_url, completed, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, now(), now())
		ON CONFLICT (date) DO UPDATE SET
			wake = $2, wake_time = $3, verification_type = $4, is_success = $5,
			morning_note = $6, photo_url = $7, completed = $8, updated_at = now()`,
		rec.Date, rec.Wake, rec.WakeTime, nullString(string(rec.Verification)),
		rec.IsSuccess, rec.MorningNote, rec.PhotoURL, rec.Completed)
	if err != nil {
		p.logger.Errorf("failed to upsert daily record: %v", err)
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		p.logger.Errorf("failed to commit upsert tx: %v", err)
		return nil, err
	}
	return rec, nil
}

const selectRecordSQL = `
	SELECT date, wake, wake_time, verification_type, is_success,
	       morning_note, photo_url, completed, created_at, updated_at
	FROM daily_records WHERE date = $1`

func (p *PostgresStorage) GetRecord(ctx context.Context, date string) (*internal.DailyRecord, error) {
	rec, err := scanRecord(p.pool.QueryRow(ctx, selectRecordSQL, date))
	if err != nil {
		p.logger.Errorf("failed to query daily record: %v", err)
		return nil, err
	}
	return rec, nil
}

func (p *PostgresStorage) ListRecords(ctx context.Context) (map[string]*internal.DailyRecord, error) {
	rows, err := p.pool.Query(ctx, `
		SELECT date, wake, wake_time, verification_type, is_success,
		       morning_note, photo_url, completed, created_at, updated_at
		FROM daily_records`)
	if err != nil {
		p.logger.Errorf("failed to query daily records: %v", err)
		return nil, err
	}
	defer rows.Close()

	records := make(map[string]*internal.DailyRecord)
	for rows.Next() {
		rec, err := scanRecordRow(rows)
		if err != nil {
			p.logger.Errorf("failed to scan daily record: %v", err)
			return nil, err
		}
		records[rec.Date] = rec
	}
	return records, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecordRow(row rowScanner) (*internal.DailyRecord, error) {
	var rec internal.DailyRecord
	var verification *string
	err := row.Scan(&rec.Date, &rec.Wake, &rec.WakeTime, &verification, &rec.IsSuccess,
		&rec.MorningNote, &rec.PhotoURL, &rec.Completed, &rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if verification != nil {
		rec.Verification = internal.VerificationType(*verification)
	}
	return &rec, nil
}

func scanRecord(row pgx.Row) (*internal.DailyRecord, error) {
	rec, err := scanRecordRow(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return rec, err
}

func nullString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// --- SettingsRepository ---

func (p *PostgresStorage) GetSettings(ctx context.Context) (*internal.Settings, error) {
	row := p.pool.QueryRow(ctx, `
		SELECT target_wake_time, sleep_duration_hours, exclude_weekends, goal,
		       morning_theme, notifications_enabled, onboarding_completed, pledge_signed_at
		FROM settings WHERE id = 1`)

	var s internal.Settings
	err := row.Scan(&s.TargetWakeTime, &s.SleepDurationHours, &s.ExcludeWeekends, &s.Goal,
		&s.MorningTheme, &s.NotificationsEnabled, &s.OnboardingCompleted, &s.PledgeSignedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return internal.DefaultSettings(), nil
	}
	if err != nil {
		p.logger.Errorf("failed to query settings: %v", err)
		return nil, err
	}
	return &s, nil
}

func (p *PostgresStorage) SaveSettings(ctx context.Context, s *internal.Settings) error {
	_, err := p.pool.Exec(ctx, `
		INSERT INTO settings
			(id, target_wake_time, sleep_duration_hours, exclude_weekends, goal,
			 morning_theme, notifications_enabled, onboarding_completed, pledge_signed_at)
		VALUES (1, $1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (id) DO UPDATE SET
			target_wake_time = $1, sleep_duration_hours = $2, exclude_weekends = $3,
			goal = $4, morning_theme = $5, notifications_enabled = $6,
			onboarding_completed = $7, pledge_signed_at = $8`,
		s.TargetWakeTime, s.SleepDurationHours, s.ExcludeWeekends, s.Goal,
		s.MorningTheme, s.NotificationsEnabled, s.OnboardingCompleted, s.PledgeSignedAt)
	if err != nil {
		p.logger.Errorf("failed to save settings: %v", err)
		return err
	}
	return nil
}

// --- Compile-time assertions ---
var _ RecordRepository = (*PostgresStorage)(nil)
var _ SettingsRepository = (*PostgresStorage)(nil)
