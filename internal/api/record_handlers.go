package api

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/neosucpa/GlowMorning/internal"
	"github.com/neosucpa/GlowMorning/internal/service"
)

func loadSettings(c *gin.Context, app App) (*internal.Settings, bool) {
	settings, err := app.SettingsRepo().GetSettings(c.Request.Context())
	if err != nil {
		HandleError(c, app.Logger(), err, 500, "Failed to load settings")
		return nil, false
	}
	return settings, true
}

// transitionError maps service sentinels onto HTTP semantics: invalid
// state transitions are conflicts, everything else is a server fault.
func transitionError(c *gin.Context, app App, err error, msg string) {
	switch {
	case errors.Is(err, service.ErrInvalidTransition), errors.Is(err, service.ErrDayCompleted):
		HandleError(c, app.Logger(), err, 409, msg)
	default:
		HandleError(c, app.Logger(), err, 500, msg)
	}
}

// PostWake is the auto-confirm tap inside the wake window.
func PostWake(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		settings, ok := loadSettings(c, app)
		if !ok {
			return
		}

		rec, err := service.AutoConfirmWake(c.Request.Context(), app.Records(), settings, app.Now())
		if err != nil {
			transitionError(c, app, err, "Failed to confirm wake")
			return
		}
		HandleSuccess(c, app.Logger(), rec, nil)
	}
}

// PostManualWake backfills a wake time the user typed in.
func PostManualWake(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req service.ManualWakeRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			HandleError(c, app.Logger(), err, 400, "Invalid JSON")
			return
		}
		if err := service.ValidateManualWakeRequest(&req); err != nil {
			HandleError(c, app.Logger(), err, 400, "Validation failed")
			return
		}

		settings, ok := loadSettings(c, app)
		if !ok {
			return
		}

		rec, err := service.ManualWake(c.Request.Context(), app.Records(), settings, app.Now(), &req)
		if err != nil {
			transitionError(c, app, err, "Failed to record manual wake")
			return
		}
		HandleSuccess(c, app.Logger(), rec, nil)
	}
}

// PostAlarmDismiss is called by the alarm-ringing screen.
func PostAlarmDismiss(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		rec, err := service.DismissAlarm(c.Request.Context(), app.Records(), app.Now())
		if err != nil {
			transitionError(c, app, err, "Failed to dismiss alarm")
			return
		}
		HandleSuccess(c, app.Logger(), rec, nil)
	}
}

// PostLog saves today's morning note and/or photo.
func PostLog(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req service.LogEntryRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			HandleError(c, app.Logger(), err, 400, "Invalid JSON")
			return
		}
		if err := service.ValidateLogEntryRequest(&req); err != nil {
			HandleError(c, app.Logger(), err, 400, "Validation failed")
			return
		}

		rec, err := service.SaveLogEntry(c.Request.Context(), app.Records(), app.Now(), &req)
		if err != nil {
			HandleError(c, app.Logger(), err, 500, "Failed to save log entry")
			return
		}
		HandleSuccess(c, app.Logger(), rec, nil)
	}
}

func GetRecords(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		records, err := app.Records().ListRecords(c.Request.Context())
		if err != nil {
			HandleError(c, app.Logger(), err, 500, "Failed to fetch records")
			return
		}
		HandleSuccess(c, app.Logger(), records, nil)
	}
}

func GetRecordByDate(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		date := c.Param("date")
		rec, err := app.Records().GetRecord(c.Request.Context(), date)
		if err != nil {
			HandleError(c, app.Logger(), err, 500, "Failed to fetch record")
			return
		}
		if rec == nil {
			HandleError(c, app.Logger(), errors.New(date), 404, "No record for date")
			return
		}
		HandleSuccess(c, app.Logger(), rec, nil)
	}
}
