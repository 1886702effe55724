package services

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	apperrors "github.com/spacos/spac-os-api/internal/errors"
	"github.com/spacos/spac-os-api/internal/models"
	"github.com/spacos/spac-os-api/internal/repository"
	"github.com/spacos/spac-os-api/internal/rules"
)

type spacService struct {
	repos *repository.Repositories
}

func newSPACService(repos *repository.Repositories) *spacService {
	return &spacService{repos: repos}
}

func (s *spacService) GetByID(id string) (*models.SPAC, error) {
	spacID, err := uuid.Parse(id)
	if err != nil {
		return nil, apperrors.InvalidInput("invalid SPAC ID format", err)
	}

	spac, err := s.repos.SPAC.GetByID(spacID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound("SPAC not found", err)
		}
		return nil, apperrors.DatabaseError("failed to get SPAC", err)
	}
	return spac, nil
}

func (s *spacService) GetByTicker(ticker string) (*models.SPAC, error) {
	ticker = strings.ToUpper(strings.TrimSpace(ticker))
	if ticker == "" {
		return nil, apperrors.InvalidInput("ticker is required", nil)
	}

	spac, err := s.repos.SPAC.GetByTicker(ticker)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound(fmt.Sprintf("no SPAC with ticker %s", ticker), err)
		}
		return nil, apperrors.DatabaseError("failed to get SPAC", err)
	}
	return spac, nil
}

func (s *spacService) GetAll(filters repository.SPACFilters) ([]models.SPAC, error) {
	if filters.Limit <= 0 || filters.Limit > 100 {
		filters.Limit = 50
	}
	spacs, err := s.repos.SPAC.GetAll(filters)
	if err != nil {
		return nil, apperrors.DatabaseError("failed to list SPACs", err)
	}
	return spacs, nil
}

func (s *spacService) Create(spac *models.SPAC) error {
	if strings.TrimSpace(spac.Name) == "" {
		return apperrors.ValidationError("SPAC name is required", nil)
	}
	spac.Ticker = strings.ToUpper(strings.TrimSpace(spac.Ticker))

	// New SPACs always enter the lifecycle at its start
	if spac.Status == "" {
		spac.Status = rules.SPACSearching
	}
	if !rules.SPACTransitions.Known(spac.Status) {
		return apperrors.ValidationError(fmt.Sprintf("unknown SPAC status %q", spac.Status), nil)
	}

	if err := s.repos.SPAC.Create(spac); err != nil {
		return apperrors.DatabaseError("failed to create SPAC", err)
	}
	return nil
}

func (s *spacService) Update(spac *models.SPAC) error {
	existing, err := s.repos.SPAC.GetByID(spac.ID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return apperrors.NotFound("SPAC not found", err)
		}
		return apperrors.DatabaseError("failed to get SPAC", err)
	}

	// Status changes go through UpdateStatus so the transition table applies
	spac.Status = existing.Status
	spac.Ticker = strings.ToUpper(strings.TrimSpace(spac.Ticker))

	if err := s.repos.SPAC.Update(spac); err != nil {
		return apperrors.DatabaseError("failed to update SPAC", err)
	}
	return nil
}

func (s *spacService) Delete(id string) error {
	spacID, err := uuid.Parse(id)
	if err != nil {
		return apperrors.InvalidInput("invalid SPAC ID format", err)
	}
	if err := s.repos.SPAC.Delete(spacID); err != nil {
		return apperrors.DatabaseError("failed to delete SPAC", err)
	}
	return nil
}

// UpdateStatus moves a SPAC to a new lifecycle status. The transition table is
// the only authority on which moves are allowed; on arrival the matching date
// field is stamped exactly once.
func (s *spacService) UpdateStatus(id, requested string) (*models.SPAC, error) {
	spacID, err := uuid.Parse(id)
	if err != nil {
		return nil, apperrors.InvalidInput("invalid SPAC ID format", err)
	}

	spac, err := s.repos.SPAC.GetByID(spacID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound("SPAC not found", err)
		}
		return nil, apperrors.DatabaseError("failed to get SPAC", err)
	}

	if err := rules.Validate(rules.EntitySPAC, spac.Status, requested); err != nil {
		return nil, apperrors.InvalidTransition(err.Error(), err)
	}

	now := time.Now()
	spac.Status = requested
	switch requested {
	case rules.SPACLOISigned:
		spac.LOISignedAt = &now
	case rules.SPACDAAnnounced:
		spac.DAAnnouncedAt = &now
	case rules.SPACCompleted:
		spac.CompletedAt = &now
	case rules.SPACLiquidated:
		spac.LiquidatedAt = &now
	}

	if err := s.repos.SPAC.Update(spac); err != nil {
		return nil, apperrors.DatabaseError("failed to update SPAC status", err)
	}
	return spac, nil
}

func (s *spacService) GetCapTable(id string) ([]models.CapTableEntry, error) {
	spacID, err := uuid.Parse(id)
	if err != nil {
		return nil, apperrors.InvalidInput("invalid SPAC ID format", err)
	}
	entries, err := s.repos.SPAC.GetCapTable(spacID)
	if err != nil {
		return nil, apperrors.DatabaseError("failed to get cap table", err)
	}
	return entries, nil
}

func (s *spacService) UpsertCapTableEntry(spacID string, entry *models.CapTableEntry) error {
	id, err := uuid.Parse(spacID)
	if err != nil {
		return apperrors.InvalidInput("invalid SPAC ID format", err)
	}
	if strings.TrimSpace(entry.HolderName) == "" {
		return apperrors.ValidationError("holder name is required", nil)
	}
	if entry.Shares < 0 {
		return apperrors.ValidationError("shares cannot be negative", nil)
	}
	if entry.Percent < 0 || entry.Percent > 100 {
		return apperrors.ValidationError("percent must be between 0 and 100", nil)
	}

	entry.SPACID = id
	if err := s.repos.SPAC.UpsertCapTableEntry(entry); err != nil {
		return apperrors.DatabaseError("failed to save cap table entry", err)
	}
	return nil
}

func (s *spacService) DeleteCapTableEntry(entryID string) error {
	id, err := uuid.Parse(entryID)
	if err != nil {
		return apperrors.InvalidInput("invalid entry ID format", err)
	}
	if err := s.repos.SPAC.DeleteCapTableEntry(id); err != nil {
		return apperrors.DatabaseError("failed to delete cap table entry", err)
	}
	return nil
}
