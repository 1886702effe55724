package services

import (
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	apperrors "github.com/spacos/spac-os-api/internal/errors"
	"github.com/spacos/spac-os-api/internal/models"
	"github.com/spacos/spac-os-api/internal/repository"
)

type complianceService struct {
	repos *repository.Repositories
}

func newComplianceService(repos *repository.Repositories) *complianceService {
	return &complianceService{repos: repos}
}

func (s *complianceService) GetBySPAC(spacID string) ([]models.ComplianceItem, error) {
	id, err := uuid.Parse(spacID)
	if err != nil {
		return nil, apperrors.InvalidInput("invalid SPAC ID format", err)
	}
	items, err := s.repos.Compliance.GetBySPAC(id)
	if err != nil {
		return nil, apperrors.DatabaseError("failed to list compliance items", err)
	}
	return items, nil
}

func (s *complianceService) Create(item *models.ComplianceItem) error {
	if strings.TrimSpace(item.Title) == "" {
		return apperrors.ValidationError("compliance item title is required", nil)
	}
	if _, err := s.repos.SPAC.GetByID(item.SPACID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return apperrors.NotFound("SPAC not found", err)
		}
		return apperrors.DatabaseError("failed to get SPAC", err)
	}
	if item.Status == "" {
		item.Status = models.CompliancePending
	}
	if err := s.repos.Compliance.Create(item); err != nil {
		return apperrors.DatabaseError("failed to create compliance item", err)
	}
	return nil
}

func (s *complianceService) Update(item *models.ComplianceItem) error {
	if strings.TrimSpace(item.Title) == "" {
		return apperrors.ValidationError("compliance item title is required", nil)
	}
	if _, err := s.repos.Compliance.GetByID(item.ID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return apperrors.NotFound("compliance item not found", err)
		}
		return apperrors.DatabaseError("failed to get compliance item", err)
	}
	if err := s.repos.Compliance.Update(item); err != nil {
		return apperrors.DatabaseError("failed to update compliance item", err)
	}
	return nil
}

func (s *complianceService) Delete(id string) error {
	itemID, err := uuid.Parse(id)
	if err != nil {
		return apperrors.InvalidInput("invalid compliance item ID format", err)
	}
	if err := s.repos.Compliance.Delete(itemID); err != nil {
		return apperrors.DatabaseError("failed to delete compliance item", err)
	}
	return nil
}

// Complete marks an item compliant and stamps the completion date.
func (s *complianceService) Complete(id string) (*models.ComplianceItem, error) {
	itemID, err := uuid.Parse(id)
	if err != nil {
		return nil, apperrors.InvalidInput("invalid compliance item ID format", err)
	}

	item, err := s.repos.Compliance.GetByID(itemID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound("compliance item not found", err)
		}
		return nil, apperrors.DatabaseError("failed to get compliance item", err)
	}

	if item.Status == models.ComplianceCompliant {
		return item, nil
	}

	now := time.Now()
	item.Status = models.ComplianceCompliant
	item.CompletedDate = &now

	if err := s.repos.Compliance.Update(item); err != nil {
		return nil, apperrors.DatabaseError("failed to update compliance item", err)
	}
	return item, nil
}

// GetUpcoming returns open items due within the given number of days.
func (s *complianceService) GetUpcoming(days int) ([]models.ComplianceItem, error) {
	if days <= 0 {
		days = 30
	}
	deadline := time.Now().AddDate(0, 0, days)
	items, err := s.repos.Compliance.GetDueBefore(deadline)
	if err != nil {
		return nil, apperrors.DatabaseError("failed to list upcoming compliance items", err)
	}
	return items, nil
}
