package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"challan_tracker/internal/middleware"
	"challan_tracker/internal/models"
)

type AuthController struct {
	db *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{db: db}
}

type registerInput struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role"`
}

// Register creates an officer account and returns it with a fresh
// token.
func (ac *AuthController) Register(c *gin.Context) {
	var input registerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	role, ok := models.ParseRole(input.Role)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid role"})
		return
	}

	var existing models.Officer
	err := ac.db.Where("email = ?", input.Email).First(&existing).Error
	if err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Officer already exists"})
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database error: " + err.Error()})
		return
	}

	officer := models.Officer{
		Name:  input.Name,
		Email: input.Email,
		Role:  role,
	}
	if err := officer.SetPassword(input.Password); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not hash password"})
		return
	}

	if err := ac.db.Create(&officer).Error; err != nil {
		// Backstop for the register/register race on the unique index.
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			c.JSON(http.StatusConflict, gin.H{"message": "Officer already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create officer: " + err.Error()})
		return
	}

	token, err := middleware.GenerateToken(officer.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not generate token"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"_id":   officer.ID,
		"name":  officer.Name,
		"email": officer.Email,
		"role":  officer.Role,
		"token": token,
	})
}

// Login verifies credentials. Unknown email and wrong password produce
// the same generic response so accounts cannot be enumerated.
func (ac *AuthController) Login(c *gin.Context) {
	var body struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var officer models.Officer
	if err := ac.db.Where("email = ?", body.Email).First(&officer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid email or password"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "database error: " + err.Error()})
		}
		return
	}

	if !officer.MatchPassword(body.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid email or password"})
		return
	}

	token, err := middleware.GenerateToken(officer.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"_id":   officer.ID,
		"name":  officer.Name,
		"email": officer.Email,
		"role":  officer.Role,
		"token": token,
	})
}

// Me returns the profile of the officer attached by RequireAuth.
func (ac *AuthController) Me(c *gin.Context) {
	officer := middleware.CurrentOfficer(c)
	c.JSON(http.StatusOK, gin.H{
		"_id":      officer.ID,
		"name":     officer.Name,
		"email":    officer.Email,
		"role":     officer.Role,
		"location": officer.Location,
	})
}
