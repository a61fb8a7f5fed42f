// internal/models/violation.go
package models

import (
	"time"

	"gorm.io/gorm"
)

// ViolationType is the closed set of recorded infraction types.
type ViolationType string

const (
	ViolationOverspeed ViolationType = "overspeed"
	ViolationRedlight  ViolationType = "redlight"
	ViolationSeatbelt  ViolationType = "seatbelt"
)

func (t ViolationType) Valid() bool {
	switch t {
	case ViolationOverspeed, ViolationRedlight, ViolationSeatbelt:
		return true
	default:
		return false
	}
}

// Violation is a recorded traffic infraction tied to a vehicle number.
// Records are immutable once created; there is no update endpoint.
type Violation struct {
	gorm.Model
	VehicleNo string        `json:"vehicle_no"`
	Type      ViolationType `json:"type"`
	Timestamp time.Time     `json:"timestamp"`
	ImageURL  string        `json:"image_url"`
	Location  string        `json:"location"`
	OfficerID uint          `json:"officer_id"`
}
