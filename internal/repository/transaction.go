package repository

import (
	"database/sql"
	"fmt"
)

// transactionManager implements TransactionManager
type transactionManager struct {
	db *sql.DB
}

// NewTransactionManager creates a new transaction manager
func NewTransactionManager(db *sql.DB) TransactionManager {
	return &transactionManager{db: db}
}

// WithTransaction executes a function within a database transaction
func (tm *transactionManager) WithTransaction(fn func(repos *Repositories) error) error {
	tx, err := tm.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	// Create repositories bound to the transaction
	repos := &Repositories{
		Organization: NewOrganizationRepository(tx),
		SPAC:         NewSPACRepository(tx),
		Target:       NewTargetRepository(tx),
		FitScore:     NewFitScoreRepository(tx),
		Filing:       NewFilingRepository(tx),
		Compliance:   NewComplianceRepository(tx),
		Trust:        NewTrustRepository(tx),
		User:         NewUserRepository(tx),
		Tx:           tm,
	}

	err = fn(repos)
	if err != nil {
		if rollbackErr := tx.Rollback(); rollbackErr != nil {
			return fmt.Errorf("transaction failed: %v, rollback failed: %w", err, rollbackErr)
		}
		return fmt.Errorf("transaction failed: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// dbExecutor is an interface that both *sql.DB and *sql.Tx implement
type dbExecutor interface {
	Query(query string, args ...interface{}) (*sql.Rows, error)
	QueryRow(query string, args ...interface{}) *sql.Row
	Exec(query string, args ...interface{}) (sql.Result, error)
}

// NewRepositories creates a new repository collection
func NewRepositories(db *sql.DB) *Repositories {
	return &Repositories{
		Organization: NewOrganizationRepository(db),
		SPAC:         NewSPACRepository(db),
		Target:       NewTargetRepository(db),
		FitScore:     NewFitScoreRepository(db),
		Filing:       NewFilingRepository(db),
		Compliance:   NewComplianceRepository(db),
		Trust:        NewTrustRepository(db),
		User:         NewUserRepository(db),
		Tx:           NewTransactionManager(db),
	}
}
