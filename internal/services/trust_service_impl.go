package services

import (
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	apperrors "github.com/spacos/spac-os-api/internal/errors"
	"github.com/spacos/spac-os-api/internal/models"
	"github.com/spacos/spac-os-api/internal/repository"
)

type trustService struct {
	repos *repository.Repositories
}

func newTrustService(repos *repository.Repositories) *trustService {
	return &trustService{repos: repos}
}

func (s *trustService) GetAccount(spacID string) (*models.TrustAccount, error) {
	id, err := uuid.Parse(spacID)
	if err != nil {
		return nil, apperrors.InvalidInput("invalid SPAC ID format", err)
	}
	account, err := s.repos.Trust.GetAccountBySPAC(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound("no trust account for SPAC", err)
		}
		return nil, apperrors.DatabaseError("failed to get trust account", err)
	}
	return account, nil
}

func (s *trustService) CreateAccount(account *models.TrustAccount) error {
	if account.Balance < 0 {
		return apperrors.ValidationError("trust balance cannot be negative", nil)
	}
	if _, err := s.repos.SPAC.GetByID(account.SPACID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return apperrors.NotFound("SPAC not found", err)
		}
		return apperrors.DatabaseError("failed to get SPAC", err)
	}
	if err := s.repos.Trust.CreateAccount(account); err != nil {
		return apperrors.DatabaseError("failed to create trust account", err)
	}
	return nil
}

func (s *trustService) GetTransactions(spacID string) ([]models.TrustTransaction, error) {
	account, err := s.GetAccount(spacID)
	if err != nil {
		return nil, err
	}
	txs, err := s.repos.Trust.GetTransactions(account.ID)
	if err != nil {
		return nil, apperrors.DatabaseError("failed to list trust transactions", err)
	}
	return txs, nil
}

// RecordTransaction appends a trust movement and adjusts the account balance
// in one database transaction, so a crash cannot leave the ledger and balance
// disagreeing.
func (s *trustService) RecordTransaction(spacID string, tx *models.TrustTransaction) (*models.TrustAccount, error) {
	id, err := uuid.Parse(spacID)
	if err != nil {
		return nil, apperrors.InvalidInput("invalid SPAC ID format", err)
	}
	if !models.KnownTrustTxType(tx.TxType) {
		return nil, apperrors.ValidationError("unknown trust transaction type "+tx.TxType, nil)
	}
	if tx.Amount == 0 {
		return nil, apperrors.ValidationError("transaction amount cannot be zero", nil)
	}
	if tx.TxType == models.TrustRedemption && tx.Amount > 0 {
		return nil, apperrors.ValidationError("redemptions must carry a negative amount", nil)
	}
	if tx.OccurredAt.IsZero() {
		tx.OccurredAt = time.Now()
	}

	var updated *models.TrustAccount
	err = s.repos.Tx.WithTransaction(func(repos *repository.Repositories) error {
		account, err := repos.Trust.GetAccountBySPAC(id)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return apperrors.NotFound("no trust account for SPAC", err)
			}
			return apperrors.DatabaseError("failed to get trust account", err)
		}

		if account.Balance+tx.Amount < 0 {
			return apperrors.ValidationError("transaction would overdraw the trust account", nil)
		}

		tx.AccountID = account.ID
		if err := repos.Trust.CreateTransaction(tx); err != nil {
			return apperrors.DatabaseError("failed to record trust transaction", err)
		}

		account.Balance += tx.Amount
		if err := repos.Trust.UpdateAccount(account); err != nil {
			return apperrors.DatabaseError("failed to update trust balance", err)
		}

		updated = account
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}
