package models

import (
	"time"

	"github.com/google/uuid"
)

// Filing represents one SEC filing tracked through its internal workflow.
// Status values come from rules.FilingTransitions. FiledDate is stamped when
// the filing enters FILED, EffectiveDate when it enters EFFECTIVE.
type Filing struct {
	ID              uuid.UUID  `json:"id" db:"id"`
	SPACID          uuid.UUID  `json:"spac_id" db:"spac_id"`
	FilingType      string     `json:"filing_type" db:"filing_type"`
	Status          string     `json:"status" db:"status"`
	AccessionNumber string     `json:"accession_number" db:"accession_number"`
	Description     string     `json:"description" db:"description"`
	DueDate         *time.Time `json:"due_date" db:"due_date"`
	FiledDate       *time.Time `json:"filed_date" db:"filed_date"`
	EffectiveDate   *time.Time `json:"effective_date" db:"effective_date"`
	CreatedAt       time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at" db:"updated_at"`
}

// Common SEC form types tracked for SPAC deals
const (
	FormS1      = "S-1"
	FormS4      = "S-4"
	Form8K      = "8-K"
	Form10K     = "10-K"
	Form10Q     = "10-Q"
	FormDEF14A  = "DEF 14A"
	Form425     = "425"
	FormSuper8K = "SUPER 8-K"
)
