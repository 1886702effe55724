package services

import (
	"testing"

	"github.com/google/uuid"
	apperrors "github.com/spacos/spac-os-api/internal/errors"
	"github.com/spacos/spac-os-api/internal/models"
	"github.com/spacos/spac-os-api/internal/repository"
)

func newTestTrustService(accounts ...*models.TrustAccount) (*trustService, *fakeTrustRepo) {
	repo := newFakeTrustRepo(accounts...)
	repos := &repository.Repositories{Trust: repo}
	repos.Tx = &fakeTxManager{repos: repos}
	return newTrustService(repos), repo
}

func TestRecordTransactionUpdatesBalance(t *testing.T) {
	spacID := uuid.New()
	account := &models.TrustAccount{ID: uuid.New(), SPACID: spacID, Balance: 100_000_000}
	service, repo := newTestTrustService(account)

	updated, err := service.RecordTransaction(spacID.String(), &models.TrustTransaction{
		TxType: models.TrustInterest,
		Amount: 250_000,
	})
	if err != nil {
		t.Fatalf("RecordTransaction returned error: %v", err)
	}

	if updated.Balance != 100_250_000 {
		t.Errorf("balance = %f, want 100250000", updated.Balance)
	}
	if len(repo.transactions) != 1 {
		t.Fatalf("recorded %d transactions, want 1", len(repo.transactions))
	}
	if repo.transactions[0].AccountID != account.ID {
		t.Error("transaction not linked to the account")
	}
	if repo.transactions[0].OccurredAt.IsZero() {
		t.Error("OccurredAt not defaulted")
	}
}

func TestRecordTransactionRejectsOverdraw(t *testing.T) {
	spacID := uuid.New()
	account := &models.TrustAccount{ID: uuid.New(), SPACID: spacID, Balance: 1_000_000}
	service, repo := newTestTrustService(account)

	_, err := service.RecordTransaction(spacID.String(), &models.TrustTransaction{
		TxType: models.TrustRedemption,
		Amount: -2_000_000,
	})
	appErr, ok := err.(*apperrors.AppError)
	if !ok || appErr.Code != apperrors.ErrCodeValidationError {
		t.Fatalf("expected VALIDATION_ERROR, got %v", err)
	}
	if len(repo.transactions) != 0 {
		t.Error("overdrawing transaction was recorded")
	}
	if repo.accounts[spacID].Balance != 1_000_000 {
		t.Error("balance changed after rejected transaction")
	}
}

func TestRecordTransactionRejectsPositiveRedemption(t *testing.T) {
	spacID := uuid.New()
	account := &models.TrustAccount{ID: uuid.New(), SPACID: spacID, Balance: 1_000_000}
	service, _ := newTestTrustService(account)

	_, err := service.RecordTransaction(spacID.String(), &models.TrustTransaction{
		TxType: models.TrustRedemption,
		Amount: 500_000,
	})
	if err == nil {
		t.Fatal("expected error for positive redemption amount")
	}
}

func TestRecordTransactionUnknownType(t *testing.T) {
	service, _ := newTestTrustService()

	_, err := service.RecordTransaction(uuid.New().String(), &models.TrustTransaction{
		TxType: "WIRE",
		Amount: 100,
	})
	appErr, ok := err.(*apperrors.AppError)
	if !ok || appErr.Code != apperrors.ErrCodeValidationError {
		t.Errorf("expected VALIDATION_ERROR, got %v", err)
	}
}
