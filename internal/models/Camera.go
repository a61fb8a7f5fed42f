// internal/models/camera.go
package models

import (
	"gorm.io/gorm"
)

// Camera is a fixed enforcement camera installation. Its point
// geometry is stored as WKB (SRID 4326); the API speaks GeoJSON.
type Camera struct {
	gorm.Model
	Code        string `json:"code" gorm:"unique"`
	Location    string `json:"location"`
	Description string `json:"description"`
	Geometry    []byte `json:"-" gorm:"type:bytea"`
}
