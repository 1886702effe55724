package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spacos/spac-os-api/internal/models"
)

// trustRepository implements TrustRepository
type trustRepository struct {
	db dbExecutor
}

// NewTrustRepository creates a new trust repository
func NewTrustRepository(db dbExecutor) TrustRepository {
	return &trustRepository{db: db}
}

// GetAccountBySPAC retrieves the trust account for a SPAC
func (r *trustRepository) GetAccountBySPAC(spacID uuid.UUID) (*models.TrustAccount, error) {
	query := `
		SELECT id, spac_id, trustee, balance, per_share_value, created_at, updated_at
		FROM trust_accounts WHERE spac_id = $1
	`

	account := &models.TrustAccount{}
	err := r.db.QueryRow(query, spacID).Scan(
		&account.ID, &account.SPACID, &account.Trustee, &account.Balance,
		&account.PerShareValue, &account.CreatedAt, &account.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("trust account not found: %w", err)
		}
		return nil, fmt.Errorf("failed to get trust account: %w", err)
	}
	return account, nil
}

// CreateAccount creates a trust account
func (r *trustRepository) CreateAccount(account *models.TrustAccount) error {
	if account.ID == uuid.Nil {
		account.ID = uuid.New()
	}

	now := time.Now()
	account.CreatedAt = now
	account.UpdatedAt = now

	query := `
		INSERT INTO trust_accounts (id, spac_id, trustee, balance, per_share_value, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.Exec(query,
		account.ID, account.SPACID, account.Trustee, account.Balance,
		account.PerShareValue, account.CreatedAt, account.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create trust account: %w", err)
	}
	return nil
}

// UpdateAccount updates a trust account
func (r *trustRepository) UpdateAccount(account *models.TrustAccount) error {
	account.UpdatedAt = time.Now()

	query := `
		UPDATE trust_accounts SET
			trustee = $2, balance = $3, per_share_value = $4, updated_at = $5
		WHERE id = $1
	`

	result, err := r.db.Exec(query,
		account.ID, account.Trustee, account.Balance, account.PerShareValue,
		account.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update trust account: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("trust account not found")
	}
	return nil
}

// CreateTransaction records one movement on a trust account
func (r *trustRepository) CreateTransaction(tx *models.TrustTransaction) error {
	if tx.ID == uuid.Nil {
		tx.ID = uuid.New()
	}
	if tx.OccurredAt.IsZero() {
		tx.OccurredAt = time.Now()
	}
	tx.CreatedAt = time.Now()

	query := `
		INSERT INTO trust_transactions (id, account_id, tx_type, amount, memo, occurred_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.Exec(query,
		tx.ID, tx.AccountID, tx.TxType, tx.Amount, tx.Memo, tx.OccurredAt,
		tx.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create trust transaction: %w", err)
	}
	return nil
}

// GetTransactions retrieves all transactions for an account, newest first
func (r *trustRepository) GetTransactions(accountID uuid.UUID) ([]models.TrustTransaction, error) {
	query := `
		SELECT id, account_id, tx_type, amount, memo, occurred_at, created_at
		FROM trust_transactions
		WHERE account_id = $1
		ORDER BY occurred_at DESC
	`

	rows, err := r.db.Query(query, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to query trust transactions: %w", err)
	}
	defer rows.Close()

	var txs []models.TrustTransaction
	for rows.Next() {
		var tx models.TrustTransaction
		err := rows.Scan(
			&tx.ID, &tx.AccountID, &tx.TxType, &tx.Amount, &tx.Memo,
			&tx.OccurredAt, &tx.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan trust transaction: %w", err)
		}
		txs = append(txs, tx)
	}

	return txs, nil
}

// TotalBalance sums every trust account balance
func (r *trustRepository) TotalBalance() (float64, error) {
	var total float64
	if err := r.db.QueryRow(`SELECT COALESCE(SUM(balance), 0) FROM trust_accounts`).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to total trust balances: %w", err)
	}
	return total, nil
}
