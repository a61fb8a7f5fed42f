package routes

import (
	"net/http"

	"challan_tracker/internal/middleware"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func DashboardRoutes(r *gin.Engine, db *gorm.DB) {
	dashboard := r.Group("/dashboard")
	dashboard.Use(middleware.RequireAuth(db))
	{
		dashboard.GET("/officer", middleware.OfficerOnly(), func(c *gin.Context) {
			officer := middleware.CurrentOfficer(c)
			c.JSON(http.StatusOK, gin.H{
				"message": "Welcome to Officer Dashboard",
				"officer": officer.Name,
			})
		})

		dashboard.GET("/admin", middleware.AdminOnly(), func(c *gin.Context) {
			officer := middleware.CurrentOfficer(c)
			c.JSON(http.StatusOK, gin.H{
				"message": "Welcome to Admin Dashboard",
				"officer": officer.Name,
			})
		})
	}
}
