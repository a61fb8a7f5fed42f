package routes

import (
	"challan_tracker/internal/controllers"
	"challan_tracker/internal/middleware"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func ChallanRoutes(r *gin.Engine, db *gorm.DB) {
	cc := controllers.NewChallanController(db)

	challans := r.Group("/challans")
	{
		challans.POST("", middleware.RequireAuth(db), cc.Create)
		challans.GET("", middleware.RequireAuth(db), cc.List)

		// Public routes: vehicle owners check and settle fines without
		// an account
		challans.GET("/check/:vehicle_no", cc.CheckByVehicle)
		challans.PUT("/:id/pay", cc.Pay)
	}
}
