package routes

import (
	ginlog "github.com/gin-contrib/logger"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRouter assembles the full route surface over the given store
// handle.
func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.New()

	// Request logging + panic recovery
	r.Use(ginlog.SetLogger())
	r.Use(gin.Recovery())

	AuthRoutes(r, db)
	ViolationRoutes(r, db)
	ChallanRoutes(r, db)
	VehicleRoutes(r, db)
	AdminRoutes(r, db)
	DashboardRoutes(r, db)

	return r
}
