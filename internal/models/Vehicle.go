// internal/models/vehicle.go
package models

import (
	"gorm.io/gorm"
)

// Vehicle is static ownership reference data, append-only in practice.
type Vehicle struct {
	gorm.Model
	VehicleNo    string `json:"vehicle_no" gorm:"unique"`
	OwnerName    string `json:"owner_name"`
	OwnerContact string `json:"owner_contact"`
}
