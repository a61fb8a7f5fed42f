package controllers

import (
	"encoding/binary"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"challan_tracker/internal/models"

	"github.com/twpayne/go-geom"
	gjson "github.com/twpayne/go-geom/encoding/geojson"
	"github.com/twpayne/go-geom/encoding/wkb"
)

// CameraController manages fixed enforcement camera installations.
type CameraController struct {
	db *gorm.DB
}

func NewCameraController(db *gorm.DB) *CameraController {
	return &CameraController{db: db}
}

// CameraResponse mirrors models.Camera with the geometry rendered as a
// GeoJSON string for API output.
type CameraResponse struct {
	ID          uint      `json:"ID"`
	CreatedAt   time.Time `json:"CreatedAt"`
	UpdatedAt   time.Time `json:"UpdatedAt"`
	Code        string    `json:"code"`
	Location    string    `json:"location"`
	Description string    `json:"description"`
	Geometry    string    `json:"geometry"`
}

func toCameraResponse(camera models.Camera) CameraResponse {
	jsonGeom, _ := convertWKBToGeoJSON(camera.Geometry)
	return CameraResponse{
		ID:          camera.ID,
		CreatedAt:   camera.CreatedAt,
		UpdatedAt:   camera.UpdatedAt,
		Code:        camera.Code,
		Location:    camera.Location,
		Description: camera.Description,
		Geometry:    jsonGeom,
	}
}

// parseAndConvertGeometry parses a GeoJSON string into a geom.T and
// returns WKB bytes for storage.
func parseAndConvertGeometry(raw string) ([]byte, error) {
	if raw == "" {
		return nil, nil
	}
	var g geom.T
	if err := gjson.Unmarshal([]byte(raw), &g); err != nil {
		return nil, err
	}
	return wkb.Marshal(g, binary.LittleEndian)
}

// convertWKBToGeoJSON converts stored WKB bytes into a GeoJSON string.
func convertWKBToGeoJSON(wkbBytes []byte) (string, error) {
	if len(wkbBytes) == 0 {
		return "", nil
	}
	g, err := wkb.Unmarshal(wkbBytes)
	if err != nil {
		return "", err
	}
	b, err := gjson.Marshal(g)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Create registers a camera with its installation point as GeoJSON.
func (cc *CameraController) Create(c *gin.Context) {
	var input struct {
		Code        string `json:"code" binding:"required"`
		Location    string `json:"location" binding:"required"`
		Description string `json:"description"`
		Geometry    string `json:"geometry"` // GeoJSON point
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid camera input: " + err.Error()})
		return
	}

	var existing models.Camera
	if err := cc.db.Where("code = ?", input.Code).First(&existing).Error; err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Camera code already registered"})
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database error: " + err.Error()})
		return
	}

	wkbGeom, err := parseAndConvertGeometry(input.Geometry)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid geometry: " + err.Error()})
		return
	}

	camera := models.Camera{
		Code:        input.Code,
		Location:    input.Location,
		Description: input.Description,
		Geometry:    wkbGeom,
	}
	if err := cc.db.Create(&camera).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create camera: " + err.Error()})
		return
	}

	c.JSON(http.StatusCreated, toCameraResponse(camera))
}

// List returns every camera with geometry as GeoJSON.
func (cc *CameraController) List(c *gin.Context) {
	var cameras []models.Camera
	if err := cc.db.Find(&cameras).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch cameras: " + err.Error()})
		return
	}

	responses := make([]CameraResponse, 0, len(cameras))
	for _, camera := range cameras {
		responses = append(responses, toCameraResponse(camera))
	}

	c.JSON(http.StatusOK, responses)
}
