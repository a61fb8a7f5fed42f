package routes

import (
	"challan_tracker/internal/controllers"
	"challan_tracker/internal/middleware"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func AdminRoutes(r *gin.Engine, db *gorm.DB) {
	oc := controllers.NewOfficerController(db)
	rc := controllers.NewReportController(db)
	cc := controllers.NewCameraController(db)
	hc := controllers.NewHealthController(db)

	admin := r.Group("/admin")
	admin.Use(middleware.RequireAuth(db), middleware.AdminOnly())
	{
		admin.GET("/officers", oc.List)
		admin.POST("/officers", oc.Create)
		admin.PUT("/officers/:id", oc.Update)
		admin.DELETE("/officers/:id", oc.Delete)

		admin.GET("/stats", rc.Stats)
		admin.GET("/violations-by-type", rc.ViolationsByType)
		admin.GET("/violations-by-location", rc.ViolationsByLocation)

		admin.GET("/cameras", cc.List)
		admin.POST("/cameras", cc.Create)

		admin.GET("/system-health", hc.SystemHealth)
	}
}
