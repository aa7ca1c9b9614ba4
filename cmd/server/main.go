package main

import (
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/neosucpa/GlowMorning/internal"
	"github.com/neosucpa/GlowMorning/internal/api"
	"github.com/neosucpa/GlowMorning/internal/config"
	"github.com/neosucpa/GlowMorning/internal/storage"
)

type app struct {
	logger   internal.Logger
	records  storage.RecordRepository
	settings storage.SettingsRepository
}

func (a *app) Logger() internal.Logger                  { return a.logger }
func (a *app) Records() storage.RecordRepository        { return a.records }
func (a *app) SettingsRepo() storage.SettingsRepository { return a.settings }
func (a *app) Now() time.Time                           { return time.Now() }

func main() {
	cfg := config.Load()

	logger, err := internal.NewLogger(cfg.Env, cfg.LogLevel)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}

	var records storage.RecordRepository
	var settings storage.SettingsRepository
	switch cfg.DBType {
	case "postgres":
		records, settings, err = storage.NewPostgresRepositories(cfg.DBDSN, logger)
	default:
		if _, statErr := os.Stat("data"); os.IsNotExist(statErr) {
			_ = os.Mkdir("data", 0755)
		}
		records, settings, err = storage.NewFileRepositories(cfg.FileRecords, cfg.FileSettings, logger)
	}
	if err != nil {
		logger.Fatalf("failed to init storage: %v", err)
	}

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()
	api.RegisterRoutes(r, &app{logger: logger, records: records, settings: settings})

	logger.Infof("GlowMorning server running on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Fatalf("failed to start server: %v", err)
	}
}
