package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"challan_tracker/internal/models"
)

type ChallanController struct {
	db *gorm.DB
}

func NewChallanController(db *gorm.DB) *ChallanController {
	return &ChallanController{db: db}
}

type challanInput struct {
	ViolationID uint       `json:"violation_id" binding:"required"`
	Amount      float64    `json:"amount" binding:"required"`
	IssueDate   *time.Time `json:"issue_date"`
}

// Create issues a challan against an existing violation. The existence
// check and the insert run in one transaction so a challan can never
// land without its violation.
func (cc *ChallanController) Create(c *gin.Context) {
	var input challanInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	issueDate := time.Now()
	if input.IssueDate != nil {
		issueDate = *input.IssueDate
	}

	var challan models.Challan
	err := cc.db.Transaction(func(tx *gorm.DB) error {
		var violation models.Violation
		if err := tx.First(&violation, input.ViolationID).Error; err != nil {
			return err
		}
		challan = models.Challan{
			ViolationID: violation.ID,
			Amount:      input.Amount,
			Status:      models.ChallanUnpaid,
			IssueDate:   issueDate,
		}
		return tx.Create(&challan).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Violation not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create challan: " + err.Error()})
		return
	}

	c.JSON(http.StatusCreated, challan)
}

// List returns every challan with its violation resolved.
func (cc *ChallanController) List(c *gin.Context) {
	var challans []models.Challan
	if err := cc.db.Preload("Violation").Find(&challans).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch challans: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, challans)
}

// CheckByVehicle is the public lookup: fetch challans, resolve each
// referenced violation, keep only those whose violation matches the
// vehicle. Zero matches is a soft-empty message, not an error.
func (cc *ChallanController) CheckByVehicle(c *gin.Context) {
	vehicleNo := c.Param("vehicle_no")

	var challans []models.Challan
	if err := cc.db.Preload("Violation").Find(&challans).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch challans: " + err.Error()})
		return
	}

	var matched []models.Challan
	for _, challan := range challans {
		if challan.Violation != nil && challan.Violation.VehicleNo == vehicleNo {
			matched = append(matched, challan)
		}
	}

	if len(matched) == 0 {
		c.JSON(http.StatusOK, gin.H{"message": "No challans found for this vehicle"})
		return
	}

	c.JSON(http.StatusOK, matched)
}

// Pay marks a challan paid. The gateway round trip happens on the
// client; this endpoint records the outcome.
func (cc *ChallanController) Pay(c *gin.Context) {
	id := c.Param("id")

	var challan models.Challan
	if err := cc.db.First(&challan, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Challan not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database error: " + err.Error()})
		return
	}

	challan.Status = models.ChallanPaid
	if err := cc.db.Save(&challan).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not update challan: " + err.Error()})
		return
	}

	logrus.WithField("challan_id", challan.ID).Info("challan paid")

	c.JSON(http.StatusOK, gin.H{"message": "Challan paid successfully", "challan": challan})
}
