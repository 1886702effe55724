package services

import (
	"testing"

	"github.com/google/uuid"
	apperrors "github.com/spacos/spac-os-api/internal/errors"
	"github.com/spacos/spac-os-api/internal/models"
	"github.com/spacos/spac-os-api/internal/repository"
	"github.com/spacos/spac-os-api/internal/rules"
)

func newTestSPACService(spacs ...*models.SPAC) (*spacService, *fakeSPACRepo) {
	repo := newFakeSPACRepo(spacs...)
	repos := &repository.Repositories{SPAC: repo}
	return newSPACService(repos), repo
}

func TestUpdateStatusAllowedTransition(t *testing.T) {
	spac := &models.SPAC{ID: uuid.New(), Name: "Apex Acquisition Corp", Status: rules.SPACSearching}
	service, repo := newTestSPACService(spac)

	updated, err := service.UpdateStatus(spac.ID.String(), rules.SPACLOISigned)
	if err != nil {
		t.Fatalf("UpdateStatus returned error: %v", err)
	}
	if updated.Status != rules.SPACLOISigned {
		t.Errorf("status = %s, want %s", updated.Status, rules.SPACLOISigned)
	}
	if updated.LOISignedAt == nil {
		t.Error("LOISignedAt was not stamped on entering LOI_SIGNED")
	}
	if stored := repo.spacs[spac.ID]; stored.Status != rules.SPACLOISigned {
		t.Errorf("persisted status = %s, want %s", stored.Status, rules.SPACLOISigned)
	}
}

func TestUpdateStatusRejectsInvalidTransition(t *testing.T) {
	spac := &models.SPAC{ID: uuid.New(), Name: "Apex Acquisition Corp", Status: rules.SPACSearching}
	service, repo := newTestSPACService(spac)

	_, err := service.UpdateStatus(spac.ID.String(), rules.SPACCompleted)
	if err == nil {
		t.Fatal("expected error for SEARCHING -> COMPLETED")
	}

	appErr, ok := err.(*apperrors.AppError)
	if !ok {
		t.Fatalf("expected *AppError, got %T", err)
	}
	if appErr.Code != apperrors.ErrCodeInvalidTransition {
		t.Errorf("error code = %s, want %s", appErr.Code, apperrors.ErrCodeInvalidTransition)
	}

	// Rejected request must not touch the record
	if stored := repo.spacs[spac.ID]; stored.Status != rules.SPACSearching {
		t.Errorf("persisted status changed to %s after rejected transition", stored.Status)
	}
}

func TestUpdateStatusRejectsMoveOutOfTerminal(t *testing.T) {
	spac := &models.SPAC{ID: uuid.New(), Name: "Apex Acquisition Corp", Status: rules.SPACCompleted}
	service, _ := newTestSPACService(spac)

	if _, err := service.UpdateStatus(spac.ID.String(), rules.SPACSearching); err == nil {
		t.Fatal("expected error moving out of terminal status COMPLETED")
	}
}

func TestUpdateStatusStampsCompletionDates(t *testing.T) {
	cases := []struct {
		name    string
		path    []string
		check   func(t *testing.T, spac *models.SPAC)
	}{
		{
			name: "completed stamps CompletedAt",
			path: []string{rules.SPACLOISigned, rules.SPACDAAnnounced, rules.SPACSECReview, rules.SPACShareholderVote, rules.SPACClosing, rules.SPACCompleted},
			check: func(t *testing.T, spac *models.SPAC) {
				if spac.CompletedAt == nil {
					t.Error("CompletedAt not stamped")
				}
				if spac.DAAnnouncedAt == nil {
					t.Error("DAAnnouncedAt not stamped")
				}
			},
		},
		{
			name: "liquidated stamps LiquidatedAt",
			path: []string{rules.SPACLiquidating, rules.SPACLiquidated},
			check: func(t *testing.T, spac *models.SPAC) {
				if spac.LiquidatedAt == nil {
					t.Error("LiquidatedAt not stamped")
				}
				if spac.CompletedAt != nil {
					t.Error("CompletedAt stamped on liquidation path")
				}
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			spac := &models.SPAC{ID: uuid.New(), Name: "Apex Acquisition Corp", Status: rules.SPACSearching}
			service, repo := newTestSPACService(spac)

			for _, status := range tc.path {
				if _, err := service.UpdateStatus(spac.ID.String(), status); err != nil {
					t.Fatalf("transition to %s failed: %v", status, err)
				}
			}
			tc.check(t, repo.spacs[spac.ID])
		})
	}
}

func TestUpdateStatusUnknownSPAC(t *testing.T) {
	service, _ := newTestSPACService()

	_, err := service.UpdateStatus(uuid.New().String(), rules.SPACLOISigned)
	appErr, ok := err.(*apperrors.AppError)
	if !ok || appErr.Code != apperrors.ErrCodeNotFound {
		t.Errorf("expected NOT_FOUND error, got %v", err)
	}
}

func TestUpdateStatusBadID(t *testing.T) {
	service, _ := newTestSPACService()

	_, err := service.UpdateStatus("not-a-uuid", rules.SPACLOISigned)
	appErr, ok := err.(*apperrors.AppError)
	if !ok || appErr.Code != apperrors.ErrCodeInvalidInput {
		t.Errorf("expected INVALID_INPUT error, got %v", err)
	}
}
