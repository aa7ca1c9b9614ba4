package api

import (
	"github.com/gin-gonic/gin"

	"github.com/neosucpa/GlowMorning/internal/service"
)

func GetSettings(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		settings, ok := loadSettings(c, app)
		if !ok {
			return
		}
		HandleSuccess(c, app.Logger(), settings, nil)
	}
}

func PutSettings(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req service.SettingsRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			HandleError(c, app.Logger(), err, 400, "Invalid JSON")
			return
		}
		if err := service.ValidateSettingsRequest(&req); err != nil {
			HandleError(c, app.Logger(), err, 400, "Validation failed")
			return
		}

		settings, err := service.UpdateSettings(c.Request.Context(), app.SettingsRepo(), &req)
		if err != nil {
			HandleError(c, app.Logger(), err, 500, "Failed to save settings")
			return
		}
		HandleSuccess(c, app.Logger(), settings, nil)
	}
}
