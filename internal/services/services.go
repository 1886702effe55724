package services

import (
	"context"
	"database/sql"

	"github.com/spacos/spac-os-api/internal/edgar"
	"github.com/spacos/spac-os-api/internal/models"
	"github.com/spacos/spac-os-api/internal/repository"
	"github.com/spacos/spac-os-api/pkg/config"
)

// Services contains all application services
type Services struct {
	Organization OrganizationService
	SPAC         SPACService
	Target       TargetService
	Filing       FilingService
	Compliance   ComplianceService
	Trust        TrustService
	Dashboard    DashboardService
	Auth         AuthService
}

// OrganizationService defines the interface for organization business logic
type OrganizationService interface {
	GetByID(id string) (*models.Organization, error)
	GetAll(filters repository.OrganizationFilters) ([]models.Organization, error)
	Create(org *models.Organization) error
	Update(org *models.Organization) error
	Delete(id string) error
}

// SPACService defines the interface for SPAC business logic
type SPACService interface {
	GetByID(id string) (*models.SPAC, error)
	GetByTicker(ticker string) (*models.SPAC, error)
	GetAll(filters repository.SPACFilters) ([]models.SPAC, error)
	Create(spac *models.SPAC) error
	Update(spac *models.SPAC) error
	Delete(id string) error

	// UpdateStatus validates the requested lifecycle transition and stamps
	// the date fields tied to the arrived-at status.
	UpdateStatus(id, requested string) (*models.SPAC, error)

	// Cap table
	GetCapTable(id string) ([]models.CapTableEntry, error)
	UpsertCapTableEntry(spacID string, entry *models.CapTableEntry) error
	DeleteCapTableEntry(entryID string) error
}

// TargetService defines the interface for acquisition target business logic
type TargetService interface {
	GetByID(id string) (*models.Target, error)
	GetAll(filters repository.TargetFilters) ([]models.Target, error)
	Create(target *models.Target) error
	Update(target *models.Target) error
	Delete(id string) error

	// CalculateFit scores a target against a SPAC's acquisition criteria and
	// upserts the persisted score for the pair.
	CalculateFit(targetID, spacID string) (*models.FitScoreRecord, error)
	GetFitScores(targetID string) ([]models.FitScoreRecord, error)
}

// FilingService defines the interface for SEC filing business logic
type FilingService interface {
	GetByID(id string) (*models.Filing, error)
	GetAll(filters repository.FilingFilters) ([]models.Filing, error)
	Create(filing *models.Filing) error
	Update(filing *models.Filing) error
	Delete(id string) error

	// UpdateStatus validates the requested workflow transition, stamping the
	// filed date on FILED and the effective date on EFFECTIVE.
	UpdateStatus(id, requested string) (*models.Filing, error)

	// SyncFromEDGAR pulls the filing index for the SPAC's CIK and records any
	// filings not yet tracked. Returns the number of new filings.
	SyncFromEDGAR(ctx context.Context, spacID string) (int, error)
}

// ComplianceService defines the interface for compliance checklist logic
type ComplianceService interface {
	GetBySPAC(spacID string) ([]models.ComplianceItem, error)
	Create(item *models.ComplianceItem) error
	Update(item *models.ComplianceItem) error
	Delete(id string) error
	Complete(id string) (*models.ComplianceItem, error)
	GetUpcoming(days int) ([]models.ComplianceItem, error)
}

// TrustService defines the interface for trust account logic
type TrustService interface {
	GetAccount(spacID string) (*models.TrustAccount, error)
	CreateAccount(account *models.TrustAccount) error
	GetTransactions(spacID string) ([]models.TrustTransaction, error)

	// RecordTransaction appends a movement and updates the account balance
	// atomically.
	RecordTransaction(spacID string, tx *models.TrustTransaction) (*models.TrustAccount, error)
}

// DashboardService defines the interface for dashboard aggregation
type DashboardService interface {
	Summary() (*DashboardSummary, error)
}

// AuthService defines the interface for authentication business logic
type AuthService interface {
	Login(email, password string) (*models.LoginResponse, error)
	Register(req *models.RegisterRequest) (*models.User, error)
	ValidateToken(token string) (*models.User, error)
	RefreshToken(token string) (*models.LoginResponse, error)
}

// DashboardSummary aggregates the headline numbers for the dashboard
type DashboardSummary struct {
	SPACsByStatus      map[string]int          `json:"spacs_by_status"`
	FilingsByStatus    map[string]int          `json:"filings_by_status"`
	TotalTrustBalance  float64                 `json:"total_trust_balance"`
	UpcomingCompliance []models.ComplianceItem `json:"upcoming_compliance"`
	RecentFitScores    []models.FitScoreRecord `json:"recent_fit_scores"`
}

// NewServices creates a new Services instance with all dependencies
func NewServices(db *sql.DB, cfg *config.Config) *Services {
	repos := repository.NewRepositories(db)
	edgarClient := edgar.NewClient(cfg)

	return &Services{
		Organization: newOrganizationService(repos),
		SPAC:         newSPACService(repos),
		Target:       newTargetService(repos),
		Filing:       newFilingService(repos, edgarClient),
		Compliance:   newComplianceService(repos),
		Trust:        newTrustService(repos),
		Dashboard:    newDashboardService(repos),
		Auth:         newAuthService(repos, cfg),
	}
}

// NewTargetService creates a standalone target service over existing repos
func NewTargetService(repos *repository.Repositories) TargetService {
	return newTargetService(repos)
}
