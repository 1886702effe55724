package services

import (
	"testing"
	"time"

	"github.com/google/uuid"
	apperrors "github.com/spacos/spac-os-api/internal/errors"
	"github.com/spacos/spac-os-api/internal/models"
	"github.com/spacos/spac-os-api/internal/repository"
	"github.com/spacos/spac-os-api/internal/rules"
)

func newTestFilingService(filings ...*models.Filing) (*filingService, *fakeFilingRepo) {
	repo := newFakeFilingRepo(filings...)
	repos := &repository.Repositories{Filing: repo}
	return newFilingService(repos, nil), repo
}

func TestFilingUpdateStatusStampsFiledDate(t *testing.T) {
	filing := &models.Filing{
		ID:         uuid.New(),
		SPACID:     uuid.New(),
		FilingType: models.FormS4,
		Status:     rules.FilingBoardApproval,
	}
	service, _ := newTestFilingService(filing)

	updated, err := service.UpdateStatus(filing.ID.String(), rules.FilingFiled)
	if err != nil {
		t.Fatalf("UpdateStatus returned error: %v", err)
	}
	if updated.FiledDate == nil {
		t.Error("FiledDate not stamped on entering FILED")
	}
	if updated.EffectiveDate != nil {
		t.Error("EffectiveDate stamped before EFFECTIVE")
	}
}

func TestFilingUpdateStatusKeepsOriginalFiledDate(t *testing.T) {
	original := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	filing := &models.Filing{
		ID:         uuid.New(),
		SPACID:     uuid.New(),
		FilingType: models.FormS4,
		Status:     rules.FilingSECComment,
		FiledDate:  &original,
	}
	service, _ := newTestFilingService(filing)

	// Comment loop: respond, then the response goes effective
	if _, err := service.UpdateStatus(filing.ID.String(), rules.FilingResponseFiled); err != nil {
		t.Fatalf("to RESPONSE_FILED: %v", err)
	}
	updated, err := service.UpdateStatus(filing.ID.String(), rules.FilingEffective)
	if err != nil {
		t.Fatalf("to EFFECTIVE: %v", err)
	}

	if !updated.FiledDate.Equal(original) {
		t.Errorf("FiledDate changed during comment loop: %v", updated.FiledDate)
	}
	if updated.EffectiveDate == nil {
		t.Error("EffectiveDate not stamped on entering EFFECTIVE")
	}
}

func TestFilingUpdateStatusRejectsSkippingReview(t *testing.T) {
	filing := &models.Filing{
		ID:         uuid.New(),
		SPACID:     uuid.New(),
		FilingType: models.FormS1,
		Status:     rules.FilingDrafting,
	}
	service, repo := newTestFilingService(filing)

	_, err := service.UpdateStatus(filing.ID.String(), rules.FilingFiled)
	appErr, ok := err.(*apperrors.AppError)
	if !ok || appErr.Code != apperrors.ErrCodeInvalidTransition {
		t.Fatalf("expected INVALID_TRANSITION, got %v", err)
	}
	if stored := repo.filings[filing.ID]; stored.Status != rules.FilingDrafting {
		t.Errorf("persisted status changed to %s after rejected transition", stored.Status)
	}
}
