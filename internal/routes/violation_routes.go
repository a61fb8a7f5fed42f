package routes

import (
	"challan_tracker/internal/controllers"
	"challan_tracker/internal/middleware"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func ViolationRoutes(r *gin.Engine, db *gorm.DB) {
	vc := controllers.NewViolationController(db)

	violations := r.Group("/violations")
	{
		violations.POST("", middleware.RequireAuth(db), middleware.OfficerOnly(), vc.Create)
		violations.GET("", middleware.RequireAuth(db), middleware.OfficerOnly(), vc.ListMine)
		violations.GET("/all", middleware.RequireAuth(db), middleware.AdminOnly(), vc.ListAll)

		// Public lookup, no auth
		violations.GET("/:vehicle_no", vc.CheckByVehicle)
	}
}
