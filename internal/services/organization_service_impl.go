package services

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	apperrors "github.com/spacos/spac-os-api/internal/errors"
	"github.com/spacos/spac-os-api/internal/models"
	"github.com/spacos/spac-os-api/internal/repository"
)

type organizationService struct {
	repos *repository.Repositories
}

func newOrganizationService(repos *repository.Repositories) *organizationService {
	return &organizationService{repos: repos}
}

func (s *organizationService) GetByID(id string) (*models.Organization, error) {
	orgID, err := uuid.Parse(id)
	if err != nil {
		return nil, apperrors.InvalidInput("invalid organization ID format", err)
	}

	org, err := s.repos.Organization.GetByID(orgID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound("organization not found", err)
		}
		return nil, apperrors.DatabaseError("failed to get organization", err)
	}
	return org, nil
}

func (s *organizationService) GetAll(filters repository.OrganizationFilters) ([]models.Organization, error) {
	if filters.Limit <= 0 || filters.Limit > 100 {
		filters.Limit = 50
	}
	orgs, err := s.repos.Organization.GetAll(filters)
	if err != nil {
		return nil, apperrors.DatabaseError("failed to list organizations", err)
	}
	return orgs, nil
}

func (s *organizationService) Create(org *models.Organization) error {
	if err := validateOrganization(org); err != nil {
		return err
	}
	if err := s.repos.Organization.Create(org); err != nil {
		return apperrors.DatabaseError("failed to create organization", err)
	}
	return nil
}

func (s *organizationService) Update(org *models.Organization) error {
	if err := validateOrganization(org); err != nil {
		return err
	}
	if _, err := s.repos.Organization.GetByID(org.ID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return apperrors.NotFound("organization not found", err)
		}
		return apperrors.DatabaseError("failed to get organization", err)
	}
	if err := s.repos.Organization.Update(org); err != nil {
		return apperrors.DatabaseError("failed to update organization", err)
	}
	return nil
}

func (s *organizationService) Delete(id string) error {
	orgID, err := uuid.Parse(id)
	if err != nil {
		return apperrors.InvalidInput("invalid organization ID format", err)
	}
	if err := s.repos.Organization.Delete(orgID); err != nil {
		return apperrors.DatabaseError("failed to delete organization", err)
	}
	return nil
}

func validateOrganization(org *models.Organization) error {
	if strings.TrimSpace(org.Name) == "" {
		return apperrors.ValidationError("organization name is required", nil)
	}
	if !models.KnownOrgType(org.OrgType) {
		return apperrors.ValidationError(fmt.Sprintf("unknown organization type %q", org.OrgType), nil)
	}
	return nil
}
