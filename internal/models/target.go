package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/spacos/spac-os-api/internal/rules"
)

// Target represents a prospective acquisition company under evaluation.
// Revenue and EBITDA are nil until research fills them in; EBITDA may be
// negative.
type Target struct {
	ID             uuid.UUID       `json:"id" db:"id"`
	OrganizationID *uuid.UUID      `json:"organization_id" db:"organization_id"`
	Name           string          `json:"name" db:"name"`
	Description    string          `json:"description" db:"description"`
	Revenue        *float64        `json:"revenue" db:"revenue"`
	EBITDA         *float64        `json:"ebitda" db:"ebitda"`
	IndustryFocus  StringList      `json:"industry_focus" db:"industry_focus"`
	GeographyFocus StringList      `json:"geography_focus" db:"geography_focus"`
	Headquarters   string          `json:"headquarters" db:"headquarters"`
	Stakes         OwnershipStakes `json:"stakes" db:"stakes"`
	CreatedAt      time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at" db:"updated_at"`
}

// Profile assembles the plain-data view of the target the fit calculator reads.
func (t *Target) Profile() rules.TargetProfile {
	return rules.TargetProfile{
		Revenue:        t.Revenue,
		EBITDA:         t.EBITDA,
		IndustryFocus:  t.IndustryFocus,
		GeographyFocus: t.GeographyFocus,
		Headquarters:   t.Headquarters,
		Stakes:         t.Stakes,
	}
}

// FitScoreRecord is a persisted fit score for one (target, SPAC) pair.
// Recalculation overwrites the record in place; no history is kept.
type FitScoreRecord struct {
	ID             uuid.UUID `json:"id" db:"id"`
	TargetID       uuid.UUID `json:"target_id" db:"target_id"`
	SPACID         uuid.UUID `json:"spac_id" db:"spac_id"`
	SizeScore      int       `json:"size_score" db:"size_score"`
	SectorScore    int       `json:"sector_score" db:"sector_score"`
	GeographyScore int       `json:"geography_score" db:"geography_score"`
	OwnershipScore int       `json:"ownership_score" db:"ownership_score"`
	OverallScore   int       `json:"overall_score" db:"overall_score"`
	Summary        string    `json:"summary" db:"summary"`
	Recommendation string    `json:"recommendation" db:"recommendation"`
	CalculatedAt   time.Time `json:"calculated_at" db:"calculated_at"`
}
