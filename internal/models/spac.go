package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/spacos/spac-os-api/internal/rules"
)

// SPAC represents a blank-check company working through its deal lifecycle.
// Status values come from rules.SPACTransitions; the lifecycle date fields are
// stamped by the service layer when the matching status is entered.
type SPAC struct {
	ID                  uuid.UUID  `json:"id" db:"id"`
	Name                string     `json:"name" db:"name"`
	Ticker              string     `json:"ticker" db:"ticker"`
	CIK                 string     `json:"cik" db:"cik"`
	SponsorID           *uuid.UUID `json:"sponsor_id" db:"sponsor_id"`
	Status              string     `json:"status" db:"status"`
	TrustAmount         float64    `json:"trust_amount" db:"trust_amount"`
	TargetSectors       StringList `json:"target_sectors" db:"target_sectors"`
	TargetGeographies   StringList `json:"target_geographies" db:"target_geographies"`
	IPODate             *time.Time `json:"ipo_date" db:"ipo_date"`
	CombinationDeadline *time.Time `json:"combination_deadline" db:"combination_deadline"`
	LOISignedAt         *time.Time `json:"loi_signed_at" db:"loi_signed_at"`
	DAAnnouncedAt       *time.Time `json:"da_announced_at" db:"da_announced_at"`
	CompletedAt         *time.Time `json:"completed_at" db:"completed_at"`
	LiquidatedAt        *time.Time `json:"liquidated_at" db:"liquidated_at"`
	CreatedAt           time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at" db:"updated_at"`
}

// AcquisitionCriteria assembles the plain-data criteria the fit calculator
// reads from a SPAC record.
func (s *SPAC) AcquisitionCriteria() rules.AcquisitionCriteria {
	return rules.AcquisitionCriteria{
		TrustAmount:       s.TrustAmount,
		TargetSectors:     s.TargetSectors,
		TargetGeographies: s.TargetGeographies,
	}
}

// CapTableEntry represents one holder line of a SPAC's capitalization table.
type CapTableEntry struct {
	ID         uuid.UUID `json:"id" db:"id"`
	SPACID     uuid.UUID `json:"spac_id" db:"spac_id"`
	HolderName string    `json:"holder_name" db:"holder_name"`
	ShareClass string    `json:"share_class" db:"share_class"`
	Shares     int64     `json:"shares" db:"shares"`
	Percent    float64   `json:"percent" db:"percent"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time `json:"updated_at" db:"updated_at"`
}

// Share classes
const (
	ShareClassA       = "CLASS_A"
	ShareClassB       = "CLASS_B"
	ShareClassWarrant = "WARRANT"
	ShareClassRight   = "RIGHT"
	ShareClassUnit    = "UNIT"
)
