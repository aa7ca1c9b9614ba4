package api

import "github.com/gin-gonic/gin"

// RegisterRoutes wires the engine's HTTP surface onto the router.
func RegisterRoutes(r *gin.Engine, app App) {
	r.Use(RequestIDMiddleware())

	v := r.Group("/api")
	{
		v.GET("/status", GetStatus(app))
		v.GET("/dashboard", GetDashboard(app))
		v.GET("/stats", GetStats(app))
		v.GET("/badges", GetBadges(app))

		v.POST("/wake", PostWake(app))
		v.POST("/wake/manual", PostManualWake(app))
		v.POST("/alarm/dismiss", PostAlarmDismiss(app))
		v.POST("/log", PostLog(app))

		v.GET("/records", GetRecords(app))
		v.GET("/records/:date", GetRecordByDate(app))

		v.GET("/settings", GetSettings(app))
		v.PUT("/settings", PutSettings(app))
	}
}
