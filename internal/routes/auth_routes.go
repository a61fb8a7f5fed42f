package routes

import (
	"challan_tracker/internal/controllers"
	"challan_tracker/internal/middleware"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func AuthRoutes(r *gin.Engine, db *gorm.DB) {
	ac := controllers.NewAuthController(db)

	auth := r.Group("/auth")
	{
		auth.POST("/register", ac.Register)
		auth.POST("/login", ac.Login)
		auth.GET("/me", middleware.RequireAuth(db), ac.Me)
	}
}
