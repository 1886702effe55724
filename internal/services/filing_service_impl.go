package services

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spacos/spac-os-api/internal/edgar"
	apperrors "github.com/spacos/spac-os-api/internal/errors"
	"github.com/spacos/spac-os-api/internal/models"
	"github.com/spacos/spac-os-api/internal/repository"
	"github.com/spacos/spac-os-api/internal/rules"
)

type filingService struct {
	repos *repository.Repositories
	edgar *edgar.Client
}

func newFilingService(repos *repository.Repositories, edgarClient *edgar.Client) *filingService {
	return &filingService{repos: repos, edgar: edgarClient}
}

func (s *filingService) GetByID(id string) (*models.Filing, error) {
	filingID, err := uuid.Parse(id)
	if err != nil {
		return nil, apperrors.InvalidInput("invalid filing ID format", err)
	}

	filing, err := s.repos.Filing.GetByID(filingID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound("filing not found", err)
		}
		return nil, apperrors.DatabaseError("failed to get filing", err)
	}
	return filing, nil
}

func (s *filingService) GetAll(filters repository.FilingFilters) ([]models.Filing, error) {
	if filters.Limit <= 0 || filters.Limit > 100 {
		filters.Limit = 50
	}
	filings, err := s.repos.Filing.GetAll(filters)
	if err != nil {
		return nil, apperrors.DatabaseError("failed to list filings", err)
	}
	return filings, nil
}

func (s *filingService) Create(filing *models.Filing) error {
	if strings.TrimSpace(filing.FilingType) == "" {
		return apperrors.ValidationError("filing type is required", nil)
	}
	if _, err := s.repos.SPAC.GetByID(filing.SPACID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return apperrors.NotFound("SPAC not found", err)
		}
		return apperrors.DatabaseError("failed to get SPAC", err)
	}

	// New filings start at the head of the workflow
	if filing.Status == "" {
		filing.Status = rules.FilingDrafting
	}
	if !rules.FilingTransitions.Known(filing.Status) {
		return apperrors.ValidationError("unknown filing status "+filing.Status, nil)
	}

	if err := s.repos.Filing.Create(filing); err != nil {
		return apperrors.DatabaseError("failed to create filing", err)
	}
	return nil
}

func (s *filingService) Update(filing *models.Filing) error {
	existing, err := s.repos.Filing.GetByID(filing.ID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return apperrors.NotFound("filing not found", err)
		}
		return apperrors.DatabaseError("failed to get filing", err)
	}

	// Status changes go through UpdateStatus so the workflow table applies
	filing.Status = existing.Status

	if err := s.repos.Filing.Update(filing); err != nil {
		return apperrors.DatabaseError("failed to update filing", err)
	}
	return nil
}

func (s *filingService) Delete(id string) error {
	filingID, err := uuid.Parse(id)
	if err != nil {
		return apperrors.InvalidInput("invalid filing ID format", err)
	}
	if err := s.repos.Filing.Delete(filingID); err != nil {
		return apperrors.DatabaseError("failed to delete filing", err)
	}
	return nil
}

// UpdateStatus moves a filing through its workflow. FILED stamps the filed
// date and EFFECTIVE the effective date, each only on first arrival so a
// comment-and-amend loop keeps the original dates.
func (s *filingService) UpdateStatus(id, requested string) (*models.Filing, error) {
	filingID, err := uuid.Parse(id)
	if err != nil {
		return nil, apperrors.InvalidInput("invalid filing ID format", err)
	}

	filing, err := s.repos.Filing.GetByID(filingID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound("filing not found", err)
		}
		return nil, apperrors.DatabaseError("failed to get filing", err)
	}

	if err := rules.Validate(rules.EntityFiling, filing.Status, requested); err != nil {
		return nil, apperrors.InvalidTransition(err.Error(), err)
	}

	now := time.Now()
	filing.Status = requested
	switch requested {
	case rules.FilingFiled:
		if filing.FiledDate == nil {
			filing.FiledDate = &now
		}
	case rules.FilingEffective:
		if filing.EffectiveDate == nil {
			filing.EffectiveDate = &now
		}
	}

	if err := s.repos.Filing.Update(filing); err != nil {
		return nil, apperrors.DatabaseError("failed to update filing status", err)
	}
	return filing, nil
}

// SyncFromEDGAR pulls the EDGAR filing index for the SPAC's CIK and records
// filings we have not seen before. Synced filings arrive already FILED; the
// accession number is the dedupe key.
func (s *filingService) SyncFromEDGAR(ctx context.Context, spacID string) (int, error) {
	id, err := uuid.Parse(spacID)
	if err != nil {
		return 0, apperrors.InvalidInput("invalid SPAC ID format", err)
	}

	spac, err := s.repos.SPAC.GetByID(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, apperrors.NotFound("SPAC not found", err)
		}
		return 0, apperrors.DatabaseError("failed to get SPAC", err)
	}
	if spac.CIK == "" {
		return 0, apperrors.ValidationError("SPAC has no CIK on record", nil)
	}

	records, err := s.edgar.FetchFilings(ctx, spac.CIK)
	if err != nil {
		return 0, apperrors.ServiceError("failed to fetch EDGAR filings", err)
	}

	created := 0
	for _, record := range records {
		if record.AccessionNumber == "" {
			continue
		}
		exists, err := s.repos.Filing.ExistsByAccession(id, record.AccessionNumber)
		if err != nil {
			return created, apperrors.DatabaseError("failed to check filing", err)
		}
		if exists {
			continue
		}

		filedDate := record.FiledDate
		filing := &models.Filing{
			SPACID:          id,
			FilingType:      record.FormType,
			Status:          rules.FilingFiled,
			AccessionNumber: record.AccessionNumber,
			Description:     record.Description,
			FiledDate:       &filedDate,
		}
		if err := s.repos.Filing.Create(filing); err != nil {
			return created, apperrors.DatabaseError("failed to create filing", err)
		}
		created++
	}
	return created, nil
}
