package routes

import (
	"challan_tracker/internal/controllers"
	"challan_tracker/internal/middleware"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func VehicleRoutes(r *gin.Engine, db *gorm.DB) {
	vc := controllers.NewVehicleController(db)

	vehicles := r.Group("/vehicles")
	{
		vehicles.POST("", middleware.RequireAuth(db), vc.Create)
		vehicles.GET("", middleware.RequireAuth(db), vc.List)

		// Public owner lookup
		vehicles.GET("/:vehicle_no", vc.GetByNumber)
	}
}
