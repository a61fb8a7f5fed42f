package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"challan_tracker/internal/models"
)

// OfficerController covers admin provisioning of accounts. Self-service
// registration lives in AuthController.
type OfficerController struct {
	db *gorm.DB
}

func NewOfficerController(db *gorm.DB) *OfficerController {
	return &OfficerController{db: db}
}

// List returns every officer; password hashes never serialize.
func (oc *OfficerController) List(c *gin.Context) {
	var officers []models.Officer
	if err := oc.db.Find(&officers).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch officers: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, officers)
}

type provisionInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
	Location string `json:"location"`
}

// Create provisions a new officer or admin account.
func (oc *OfficerController) Create(c *gin.Context) {
	var input provisionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.Name == "" || input.Email == "" || input.Password == "" || input.Location == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "All fields (name, email, password, location) are required"})
		return
	}

	var existing models.Officer
	if err := oc.db.Where("email = ?", input.Email).First(&existing).Error; err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Email already exists"})
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database error: " + err.Error()})
		return
	}

	role := models.RoleOfficer
	if input.Role == string(models.RoleAdmin) {
		role = models.RoleAdmin
	}

	officer := models.Officer{
		Name:     input.Name,
		Email:    input.Email,
		Role:     role,
		Location: input.Location,
	}
	if err := officer.SetPassword(input.Password); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not hash password"})
		return
	}

	if err := oc.db.Create(&officer).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create officer: " + err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": string(role) + " created successfully"})
}

// Update applies a partial edit. The password is re-hashed only when a
// new one is supplied; other updates never touch the stored hash.
func (oc *OfficerController) Update(c *gin.Context) {
	var input provisionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var officer models.Officer
	if err := oc.db.First(&officer, c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Officer not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database error: " + err.Error()})
		return
	}

	if input.Name != "" {
		officer.Name = input.Name
	}
	if input.Email != "" {
		officer.Email = input.Email
	}
	if role := models.Role(input.Role); role.Valid() {
		officer.Role = role
	}
	if input.Location != "" {
		officer.Location = input.Location
	}
	if input.Password != "" {
		if err := officer.SetPassword(input.Password); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not hash password"})
			return
		}
	}

	if err := oc.db.Save(&officer).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not update officer: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Officer updated successfully", "officer": officer})
}

// Delete removes an officer account. Outstanding tokens for the
// account die at the middleware's identity load, not here.
func (oc *OfficerController) Delete(c *gin.Context) {
	if err := oc.db.Delete(&models.Officer{}, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not delete officer: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Officer deleted successfully"})
}
