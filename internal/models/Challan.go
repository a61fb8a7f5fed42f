// internal/models/challan.go
package models

import (
	"time"

	"gorm.io/gorm"
)

// ChallanStatus tracks payment state. The only transition is
// unpaid -> paid.
type ChallanStatus string

const (
	ChallanUnpaid ChallanStatus = "unpaid"
	ChallanPaid   ChallanStatus = "paid"
)

// Challan is a fine referencing exactly one violation.
type Challan struct {
	gorm.Model
	ViolationID uint          `json:"violation_id"`
	Violation   *Violation    `json:"violation,omitempty" gorm:"foreignKey:ViolationID"`
	Amount      float64       `json:"amount"`
	Status      ChallanStatus `json:"status" gorm:"default:'unpaid'"`
	IssueDate   time.Time     `json:"issue_date"`
}
