package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"challan_tracker/internal/models"
)

type VehicleController struct {
	db *gorm.DB
}

func NewVehicleController(db *gorm.DB) *VehicleController {
	return &VehicleController{db: db}
}

// Create registers vehicle ownership reference data. Records are
// append-only; there is no update or delete.
func (vc *VehicleController) Create(c *gin.Context) {
	var input struct {
		VehicleNo    string `json:"vehicle_no" binding:"required"`
		OwnerName    string `json:"owner_name" binding:"required"`
		OwnerContact string `json:"owner_contact"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var existing models.Vehicle
	if err := vc.db.Where("vehicle_no = ?", input.VehicleNo).First(&existing).Error; err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Vehicle already registered"})
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database error: " + err.Error()})
		return
	}

	vehicle := models.Vehicle{
		VehicleNo:    input.VehicleNo,
		OwnerName:    input.OwnerName,
		OwnerContact: input.OwnerContact,
	}
	if err := vc.db.Create(&vehicle).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create vehicle: " + err.Error()})
		return
	}

	c.JSON(http.StatusCreated, vehicle)
}

// List returns every registered vehicle.
func (vc *VehicleController) List(c *gin.Context) {
	var vehicles []models.Vehicle
	if err := vc.db.Find(&vehicles).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch vehicles: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, vehicles)
}

// GetByNumber is the public owner lookup by vehicle number.
func (vc *VehicleController) GetByNumber(c *gin.Context) {
	var vehicle models.Vehicle
	if err := vc.db.Where("vehicle_no = ?", c.Param("vehicle_no")).First(&vehicle).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Vehicle not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database error: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, vehicle)
}
