package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"challan_tracker/internal/middleware"
	"challan_tracker/internal/models"
)

type ViolationController struct {
	db *gorm.DB
}

func NewViolationController(db *gorm.DB) *ViolationController {
	return &ViolationController{db: db}
}

type violationInput struct {
	VehicleNo string     `json:"vehicle_no" binding:"required"`
	Type      string     `json:"type" binding:"required"`
	Timestamp *time.Time `json:"timestamp"`
	ImageURL  string     `json:"image_url"`
	Location  string     `json:"location" binding:"required"`
}

// Create records a new violation owned by the calling officer.
func (vc *ViolationController) Create(c *gin.Context) {
	var input violationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	vtype := models.ViolationType(input.Type)
	if !vtype.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid violation type"})
		return
	}

	timestamp := time.Now()
	if input.Timestamp != nil {
		timestamp = *input.Timestamp
	}

	officer := middleware.CurrentOfficer(c)
	violation := models.Violation{
		VehicleNo: input.VehicleNo,
		Type:      vtype,
		Timestamp: timestamp,
		ImageURL:  input.ImageURL,
		Location:  input.Location,
		OfficerID: officer.ID,
	}

	if err := vc.db.Create(&violation).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create violation: " + err.Error()})
		return
	}

	c.JSON(http.StatusCreated, violation)
}

// ListMine returns violations recorded at the calling officer's own
// location.
func (vc *ViolationController) ListMine(c *gin.Context) {
	officer := middleware.CurrentOfficer(c)
	if officer.Location == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Officer location not found"})
		return
	}

	var violations []models.Violation
	if err := vc.db.Where("location = ?", officer.Location).Find(&violations).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch violations: " + err.Error()})
		return
	}

	logrus.WithFields(logrus.Fields{
		"officer":  officer.Name,
		"location": officer.Location,
		"found":    len(violations),
	}).Info("officer violations lookup")

	c.JSON(http.StatusOK, violations)
}

// ListAll is the admin view over every violation, with an optional
// exact-match vehicle_no filter.
func (vc *ViolationController) ListAll(c *gin.Context) {
	query := vc.db
	if vehicleNo := c.Query("vehicle_no"); vehicleNo != "" {
		query = query.Where("vehicle_no = ?", vehicleNo).Order("timestamp DESC")
	}

	var violations []models.Violation
	if err := query.Find(&violations).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch violations: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, violations)
}

// CheckByVehicle is the public lookup by vehicle number, newest first.
// Zero matches is a soft-empty message payload, not an error.
func (vc *ViolationController) CheckByVehicle(c *gin.Context) {
	vehicleNo := c.Param("vehicle_no")

	var violations []models.Violation
	if err := vc.db.Where("vehicle_no = ?", vehicleNo).Order("timestamp DESC").Find(&violations).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch violations: " + err.Error()})
		return
	}

	if len(violations) == 0 {
		c.JSON(http.StatusOK, gin.H{"message": "No violations found for this vehicle"})
		return
	}

	c.JSON(http.StatusOK, violations)
}
