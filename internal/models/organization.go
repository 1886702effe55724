package models

import (
	"time"

	"github.com/google/uuid"
)

// Organization represents a firm involved in deals: sponsors, banks, counsel,
// auditors, and target operating companies.
type Organization struct {
	ID           uuid.UUID `json:"id" db:"id"`
	Name         string    `json:"name" db:"name"`
	OrgType      string    `json:"org_type" db:"org_type"`
	Website      string    `json:"website" db:"website"`
	Description  string    `json:"description" db:"description"`
	Headquarters string    `json:"headquarters" db:"headquarters"`
	ContactEmail string    `json:"contact_email" db:"contact_email"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// Organization types
const (
	OrgTypePEFirm         = "PE_FIRM"
	OrgTypeInvestmentBank = "INVESTMENT_BANK"
	OrgTypeLawFirm        = "LAW_FIRM"
	OrgTypeAuditor        = "AUDITOR"
	OrgTypeSponsor        = "SPONSOR"
	OrgTypeTargetCompany  = "TARGET_COMPANY"
)

// KnownOrgType reports whether a string is one of the enumerated org types.
func KnownOrgType(orgType string) bool {
	switch orgType {
	case OrgTypePEFirm, OrgTypeInvestmentBank, OrgTypeLawFirm,
		OrgTypeAuditor, OrgTypeSponsor, OrgTypeTargetCompany:
		return true
	}
	return false
}
