package repository

import (
	"time"

	"github.com/google/uuid"
	"github.com/spacos/spac-os-api/internal/models"
)

// OrganizationRepository defines the interface for organization data access
type OrganizationRepository interface {
	GetByID(id uuid.UUID) (*models.Organization, error)
	Create(org *models.Organization) error
	Update(org *models.Organization) error
	Delete(id uuid.UUID) error
	GetAll(filters OrganizationFilters) ([]models.Organization, error)
}

// SPACRepository defines the interface for SPAC data access
type SPACRepository interface {
	GetByID(id uuid.UUID) (*models.SPAC, error)
	GetByTicker(ticker string) (*models.SPAC, error)
	Create(spac *models.SPAC) error
	Update(spac *models.SPAC) error
	Delete(id uuid.UUID) error
	GetAll(filters SPACFilters) ([]models.SPAC, error)
	CountByStatus() (map[string]int, error)

	// Cap table
	GetCapTable(spacID uuid.UUID) ([]models.CapTableEntry, error)
	UpsertCapTableEntry(entry *models.CapTableEntry) error
	DeleteCapTableEntry(id uuid.UUID) error
}

// TargetRepository defines the interface for acquisition target data access
type TargetRepository interface {
	GetByID(id uuid.UUID) (*models.Target, error)
	Create(target *models.Target) error
	Update(target *models.Target) error
	Delete(id uuid.UUID) error
	GetAll(filters TargetFilters) ([]models.Target, error)
}

// FitScoreRepository defines the interface for fit score persistence.
// Scores are keyed by (target_id, spac_id); Upsert overwrites any prior score
// for the pair.
type FitScoreRepository interface {
	Upsert(score *models.FitScoreRecord) error
	GetByPair(targetID, spacID uuid.UUID) (*models.FitScoreRecord, error)
	GetByTarget(targetID uuid.UUID) ([]models.FitScoreRecord, error)
	GetBySPAC(spacID uuid.UUID) ([]models.FitScoreRecord, error)
	GetRecent(limit int) ([]models.FitScoreRecord, error)
}

// FilingRepository defines the interface for SEC filing data access
type FilingRepository interface {
	GetByID(id uuid.UUID) (*models.Filing, error)
	Create(filing *models.Filing) error
	Update(filing *models.Filing) error
	Delete(id uuid.UUID) error
	GetAll(filters FilingFilters) ([]models.Filing, error)
	ExistsByAccession(spacID uuid.UUID, accessionNumber string) (bool, error)
	CountByStatus() (map[string]int, error)
}

// ComplianceRepository defines the interface for compliance checklist access
type ComplianceRepository interface {
	GetByID(id uuid.UUID) (*models.ComplianceItem, error)
	Create(item *models.ComplianceItem) error
	Update(item *models.ComplianceItem) error
	Delete(id uuid.UUID) error
	GetBySPAC(spacID uuid.UUID) ([]models.ComplianceItem, error)
	GetDueBefore(deadline time.Time) ([]models.ComplianceItem, error)
}

// TrustRepository defines the interface for trust account data access
type TrustRepository interface {
	GetAccountBySPAC(spacID uuid.UUID) (*models.TrustAccount, error)
	CreateAccount(account *models.TrustAccount) error
	UpdateAccount(account *models.TrustAccount) error
	CreateTransaction(tx *models.TrustTransaction) error
	GetTransactions(accountID uuid.UUID) ([]models.TrustTransaction, error)
	TotalBalance() (float64, error)
}

// UserRepository defines the interface for user data access
type UserRepository interface {
	GetByID(id uuid.UUID) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	Create(user *models.User) error
	Update(user *models.User) error
	Delete(id uuid.UUID) error
}

// TransactionManager defines the interface for database transaction management
type TransactionManager interface {
	WithTransaction(fn func(repos *Repositories) error) error
}

// Repositories groups all repository interfaces
type Repositories struct {
	Organization OrganizationRepository
	SPAC         SPACRepository
	Target       TargetRepository
	FitScore     FitScoreRepository
	Filing       FilingRepository
	Compliance   ComplianceRepository
	Trust        TrustRepository
	User         UserRepository
	Tx           TransactionManager
}

// OrganizationFilters defines filters for querying organizations
type OrganizationFilters struct {
	OrgType []string
	Search  string
	Limit   int
	Offset  int
}

// SPACFilters defines filters for querying SPACs
type SPACFilters struct {
	Status         []string
	SponsorID      *uuid.UUID
	Search         string
	DeadlineBefore *time.Time
	Limit          int
	Offset         int
}

// TargetFilters defines filters for querying targets
type TargetFilters struct {
	Sector     string
	Geography  string
	MinRevenue *float64
	Search     string
	Limit      int
	Offset     int
}

// FilingFilters defines filters for querying filings
type FilingFilters struct {
	SPACID     *uuid.UUID
	Status     []string
	FilingType []string
	Limit      int
	Offset     int
}
