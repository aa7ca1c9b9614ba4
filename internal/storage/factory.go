package storage

import "github.com/neosucpa/GlowMorning/internal"

func NewFileRepositories(recordsFile, settingsFile string, logger internal.Logger) (RecordRepository, SettingsRepository, error) {
	storage, err := NewFileStorage(recordsFile, settingsFile, logger)
	if err != nil {
		return nil, nil, err
	}
	return storage, storage, nil
}

func NewPostgresRepositories(dsn string, logger internal.Logger) (RecordRepository, SettingsRepository, error) {
	storage, err := NewPostgresStorage(dsn, logger)
	if err != nil {
		return nil, nil, err
	}
	return storage, storage, nil
}
