package models

import (
	"time"

	"github.com/google/uuid"
)

// ComplianceItem represents one obligation on a SPAC's compliance checklist.
type ComplianceItem struct {
	ID            uuid.UUID  `json:"id" db:"id"`
	SPACID        uuid.UUID  `json:"spac_id" db:"spac_id"`
	Title         string     `json:"title" db:"title"`
	Category      string     `json:"category" db:"category"`
	Status        string     `json:"status" db:"status"`
	DueDate       *time.Time `json:"due_date" db:"due_date"`
	CompletedDate *time.Time `json:"completed_date" db:"completed_date"`
	CreatedAt     time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at" db:"updated_at"`
}

// Compliance item statuses
const (
	CompliancePending    = "PENDING"
	ComplianceInProgress = "IN_PROGRESS"
	ComplianceCompliant  = "COMPLIANT"
	ComplianceOverdue    = "OVERDUE"
	ComplianceWaived     = "WAIVED"
)

// Compliance categories
const (
	ComplianceCategorySEC        = "SEC"
	ComplianceCategoryExchange   = "EXCHANGE"
	ComplianceCategoryGovernance = "GOVERNANCE"
	ComplianceCategoryTax        = "TAX"
)
