package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"challan_tracker/internal/models"
)

// ReportController feeds the admin dashboard. Counts are computed
// fresh per request from the full record set; fine at this scale.
type ReportController struct {
	db *gorm.DB
}

func NewReportController(db *gorm.DB) *ReportController {
	return &ReportController{db: db}
}

type typeCount struct {
	Type  models.ViolationType `json:"type"`
	Count int64                `json:"count"`
}

type locationCount struct {
	Location string `json:"location"`
	Count    int64  `json:"count"`
}

// Stats returns entity totals for the dashboard header cards.
func (rc *ReportController) Stats(c *gin.Context) {
	var officers, violations, challans, unpaid int64

	counts := []struct {
		query *gorm.DB
		dest  *int64
	}{
		{rc.db.Model(&models.Officer{}), &officers},
		{rc.db.Model(&models.Violation{}), &violations},
		{rc.db.Model(&models.Challan{}), &challans},
		{rc.db.Model(&models.Challan{}).Where("status = ?", models.ChallanUnpaid), &unpaid},
	}
	for _, count := range counts {
		if err := count.query.Count(count.dest).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute stats: " + err.Error()})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"officers":        officers,
		"violations":      violations,
		"challans":        challans,
		"unpaid_challans": unpaid,
	})
}

// ViolationsByType returns grouped counts for the type chart.
func (rc *ReportController) ViolationsByType(c *gin.Context) {
	var rows []typeCount
	if err := rc.db.Model(&models.Violation{}).
		Select("type, COUNT(*) AS count").
		Group("type").
		Scan(&rows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to aggregate violations: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, rows)
}

// ViolationsByLocation returns grouped counts for the location chart.
func (rc *ReportController) ViolationsByLocation(c *gin.Context) {
	var rows []locationCount
	if err := rc.db.Model(&models.Violation{}).
		Select("location, COUNT(*) AS count").
		Group("location").
		Scan(&rows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to aggregate violations: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, rows)
}
