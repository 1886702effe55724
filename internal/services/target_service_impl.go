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
	"github.com/spacos/spac-os-api/internal/rules"
)

type targetService struct {
	repos      *repository.Repositories
	calculator *rules.FitCalculator
}

func newTargetService(repos *repository.Repositories) *targetService {
	return &targetService{
		repos:      repos,
		calculator: rules.NewFitCalculator(),
	}
}

func (s *targetService) GetByID(id string) (*models.Target, error) {
	targetID, err := uuid.Parse(id)
	if err != nil {
		return nil, apperrors.InvalidInput("invalid target ID format", err)
	}

	target, err := s.repos.Target.GetByID(targetID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound("target not found", err)
		}
		return nil, apperrors.DatabaseError("failed to get target", err)
	}
	return target, nil
}

func (s *targetService) GetAll(filters repository.TargetFilters) ([]models.Target, error) {
	if filters.Limit <= 0 || filters.Limit > 100 {
		filters.Limit = 50
	}
	targets, err := s.repos.Target.GetAll(filters)
	if err != nil {
		return nil, apperrors.DatabaseError("failed to list targets", err)
	}
	return targets, nil
}

func (s *targetService) Create(target *models.Target) error {
	if err := validateTarget(target); err != nil {
		return err
	}
	if err := s.repos.Target.Create(target); err != nil {
		return apperrors.DatabaseError("failed to create target", err)
	}
	return nil
}

func (s *targetService) Update(target *models.Target) error {
	if err := validateTarget(target); err != nil {
		return err
	}
	if _, err := s.repos.Target.GetByID(target.ID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return apperrors.NotFound("target not found", err)
		}
		return apperrors.DatabaseError("failed to get target", err)
	}
	if err := s.repos.Target.Update(target); err != nil {
		return apperrors.DatabaseError("failed to update target", err)
	}
	return nil
}

func validateTarget(target *models.Target) error {
	if strings.TrimSpace(target.Name) == "" {
		return apperrors.ValidationError("target name is required", nil)
	}
	if target.Revenue != nil && *target.Revenue < 0 {
		return apperrors.ValidationError("revenue cannot be negative", nil)
	}
	for _, stake := range target.Stakes {
		if stake.Percent < 0 || stake.Percent > 100 {
			return apperrors.ValidationError("stake percent must be between 0 and 100", nil)
		}
	}
	return nil
}

func (s *targetService) Delete(id string) error {
	targetID, err := uuid.Parse(id)
	if err != nil {
		return apperrors.InvalidInput("invalid target ID format", err)
	}
	if err := s.repos.Target.Delete(targetID); err != nil {
		return apperrors.DatabaseError("failed to delete target", err)
	}
	return nil
}

// CalculateFit scores a target against a SPAC's stated criteria and persists
// the result. Recalculating the same pair overwrites the previous score.
func (s *targetService) CalculateFit(targetID, spacID string) (*models.FitScoreRecord, error) {
	tID, err := uuid.Parse(targetID)
	if err != nil {
		return nil, apperrors.InvalidInput("invalid target ID format", err)
	}
	sID, err := uuid.Parse(spacID)
	if err != nil {
		return nil, apperrors.InvalidInput("invalid SPAC ID format", err)
	}

	target, err := s.repos.Target.GetByID(tID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound("target not found", err)
		}
		return nil, apperrors.DatabaseError("failed to get target", err)
	}

	spac, err := s.repos.SPAC.GetByID(sID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound("SPAC not found", err)
		}
		return nil, apperrors.DatabaseError("failed to get SPAC", err)
	}

	score := s.calculator.Calculate(target.Profile(), spac.AcquisitionCriteria())

	record := &models.FitScoreRecord{
		TargetID:       tID,
		SPACID:         sID,
		SizeScore:      score.SizeScore,
		SectorScore:    score.SectorScore,
		GeographyScore: score.GeographyScore,
		OwnershipScore: score.OwnershipScore,
		OverallScore:   score.OverallScore,
		Summary:        score.Summary,
		Recommendation: score.Recommendation,
		CalculatedAt:   time.Now(),
	}

	if err := s.repos.FitScore.Upsert(record); err != nil {
		return nil, apperrors.DatabaseError("failed to save fit score", err)
	}
	return record, nil
}

func (s *targetService) GetFitScores(targetID string) ([]models.FitScoreRecord, error) {
	tID, err := uuid.Parse(targetID)
	if err != nil {
		return nil, apperrors.InvalidInput("invalid target ID format", err)
	}
	scores, err := s.repos.FitScore.GetByTarget(tID)
	if err != nil {
		return nil, apperrors.DatabaseError("failed to get fit scores", err)
	}
	return scores, nil
}
