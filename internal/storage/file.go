package storage

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"os"
	"sync"
	"time"

	"github.com/neosucpa/GlowMorning/internal"
)

// FileStorage keeps the record store and settings in memory and persists
// them to JSON files through debounced background save workers with
// atomic temp-file writes.
type FileStorage struct {
	records  map[string]*internal.DailyRecord // date -> record
	settings *internal.Settings

	mu               sync.RWMutex
	recordsFile      string
	settingsFile     string
	saveRecordsChan  chan struct{}
	saveSettingsChan chan struct{}
	shutdownChan     chan struct{}
	saveDelay        time.Duration
	logger           internal.Logger
}

func NewFileStorage(recordsFile, settingsFile string, logger internal.Logger) (*FileStorage, error) {
	s := &FileStorage{
		records:          make(map[string]*internal.DailyRecord),
		recordsFile:      recordsFile,
		settingsFile:     settingsFile,
		saveRecordsChan:  make(chan struct{}, 1),
		saveSettingsChan: make(chan struct{}, 1),
		shutdownChan:     make(chan struct{}),
		saveDelay:        500 * time.Millisecond,
		logger:           logger,
	}

	if err := s.loadRecords(); err != nil {
		logger.Errorf("storage: failed to load records: %v", err)
		return nil, err
	}
	if err := s.loadSettings(); err != nil {
		logger.Errorf("storage: failed to load settings: %v", err)
		return nil, err
	}

	go s.saveWorker(s.saveRecordsChan, s.saveRecords, "records")
	go s.saveWorker(s.saveSettingsChan, s.saveSettings, "settings")

	return s, nil
}

func (s *FileStorage) loadRecords() error {
	file, err := os.Open(s.recordsFile)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	defer file.Close()

	var records map[string]*internal.DailyRecord
	if err := json.NewDecoder(file).Decode(&records); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for date, rec := range records {
		if rec == nil {
			continue
		}
		rec.Date = date
		s.records[date] = rec
	}
	return nil
}

func (s *FileStorage) loadSettings() error {
	file, err := os.Open(s.settingsFile)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	defer file.Close()

	var settings internal.Settings
	if err := json.NewDecoder(file).Decode(&settings); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings = &settings
	return nil
}

func atomicWriteFileJSON(filePath string, data interface{}) error {
	tempFile := filePath + ".tmp"
	f, err := os.Create(tempFile)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(data); err != nil {
		f.Close()
		os.Remove(tempFile)
		return err
	}

	if err := f.Sync(); err != nil {
		f.Close()
		os.Remove(tempFile)
		return err
	}

	if err := f.Close(); err != nil {
		os.Remove(tempFile)
		return err
	}

	return os.Rename(tempFile, filePath)
}

func (s *FileStorage) saveRecords() error {
	s.mu.RLock()
	records := make(map[string]*internal.DailyRecord, len(s.records))
	for date, rec := range s.records {
		records[date] = rec.Clone()
	}
	s.mu.RUnlock()

	return atomicWriteFileJSON(s.recordsFile, records)
}

func (s *FileStorage) saveSettings() error {
	s.mu.RLock()
	settings := s.settings
	s.mu.RUnlock()

	if settings == nil {
		return nil
	}
	return atomicWriteFileJSON(s.settingsFile, settings)
}

// saveWorker batches save signals to avoid a disk write per mutation.
func (s *FileStorage) saveWorker(signal <-chan struct{}, save func() error, what string) {
	timer := time.NewTimer(s.saveDelay)
	defer timer.Stop()

	for {
		select {
		case <-signal:
			timer.Reset(s.saveDelay)
		case <-timer.C:
			if err := save(); err != nil {
				s.logger.Errorf("storage: error saving %s: %v", what, err)
			}
		case <-s.shutdownChan:
			return
		}
	}
}

// --- RecordRepository ---

func (s *FileStorage) UpsertRecord(ctx context.Context, date string, patch internal.RecordPatch) (*internal.DailyRecord, error) {
	now := time.Now()

	s.mu.Lock()
	rec, ok := s.records[date]
	if !ok {
		rec = &internal.DailyRecord{Date: date, CreatedAt: now}
		s.records[date] = rec
	}
	rec.Apply(patch)
	rec.UpdatedAt = now
	result := rec.Clone()
	s.mu.Unlock()

	select {
	case s.saveRecordsChan <- struct{}{}:
	default:
	}

	return result, nil
}

func (s *FileStorage) GetRecord(ctx context.Context, date string) (*internal.DailyRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.records[date]
	if !ok {
		return nil, nil
	}
	return rec.Clone(), nil
}

func (s *FileStorage) ListRecords(ctx context.Context) (map[string]*internal.DailyRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snapshot := make(map[string]*internal.DailyRecord, len(s.records))
	for date, rec := range s.records {
		snapshot[date] = rec.Clone()
	}
	return snapshot, nil
}

// --- SettingsRepository ---

func (s *FileStorage) GetSettings(ctx context.Context) (*internal.Settings, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.settings == nil {
		return internal.DefaultSettings(), nil
	}
	settings := *s.settings
	return &settings, nil
}

func (s *FileStorage) SaveSettings(ctx context.Context, settings *internal.Settings) error {
	s.mu.Lock()
	copied := *settings
	s.settings = &copied
	s.mu.Unlock()

	select {
	case s.saveSettingsChan <- struct{}{}:
	default:
	}

	return nil
}

// Close stops the save workers and flushes pending data synchronously.
func (s *FileStorage) Close() error {
	close(s.shutdownChan)

	if err := s.saveRecords(); err != nil {
		return err
	}
	return s.saveSettings()
}

var _ RecordRepository = (*FileStorage)(nil)
var _ SettingsRepository = (*FileStorage)(nil)
