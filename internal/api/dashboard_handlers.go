package api

import (
	"github.com/gin-gonic/gin"

	"github.com/neosucpa/GlowMorning/internal/service"
)

// GetStatus returns the five-state wake classification for right now.
func GetStatus(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		settings, ok := loadSettings(c, app)
		if !ok {
			return
		}

		status, err := service.BuildStatus(c.Request.Context(), app.Records(), settings, app.Now())
		if err != nil {
			HandleError(c, app.Logger(), err, 500, "Failed to evaluate wake status")
			return
		}
		HandleSuccess(c, app.Logger(), status, nil)
	}
}

func GetDashboard(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		settings, ok := loadSettings(c, app)
		if !ok {
			return
		}

		view, err := service.BuildDashboard(c.Request.Context(), app.Records(), settings, app.Now())
		if err != nil {
			HandleError(c, app.Logger(), err, 500, "Failed to build dashboard")
			return
		}
		HandleSuccess(c, app.Logger(), view, nil)
	}
}

func GetStats(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		settings, ok := loadSettings(c, app)
		if !ok {
			return
		}

		view, err := service.BuildStats(c.Request.Context(), app.Records(), settings, app.Now())
		if err != nil {
			HandleError(c, app.Logger(), err, 500, "Failed to build stats")
			return
		}
		HandleSuccess(c, app.Logger(), view, nil)
	}
}

func GetBadges(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		badges, err := service.BuildBadges(c.Request.Context(), app.Records())
		if err != nil {
			HandleError(c, app.Logger(), err, 500, "Failed to evaluate badges")
			return
		}
		HandleSuccess(c, app.Logger(), badges, nil)
	}
}
