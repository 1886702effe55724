package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spacos/spac-os-api/internal/models"
)

// complianceRepository implements ComplianceRepository
type complianceRepository struct {
	db dbExecutor
}

// NewComplianceRepository creates a new compliance repository
func NewComplianceRepository(db dbExecutor) ComplianceRepository {
	return &complianceRepository{db: db}
}

const complianceColumns = `id, spac_id, title, category, status, due_date,
	   completed_date, created_at, updated_at`

func scanComplianceItem(row interface{ Scan(...interface{}) error }) (*models.ComplianceItem, error) {
	item := &models.ComplianceItem{}
	err := row.Scan(
		&item.ID, &item.SPACID, &item.Title, &item.Category, &item.Status,
		&item.DueDate, &item.CompletedDate, &item.CreatedAt, &item.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return item, nil
}

// GetByID retrieves a compliance item by ID
func (r *complianceRepository) GetByID(id uuid.UUID) (*models.ComplianceItem, error) {
	query := `SELECT ` + complianceColumns + ` FROM compliance_items WHERE id = $1`

	item, err := scanComplianceItem(r.db.QueryRow(query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("compliance item not found: %w", err)
		}
		return nil, fmt.Errorf("failed to get compliance item: %w", err)
	}
	return item, nil
}

// Create creates a new compliance item
func (r *complianceRepository) Create(item *models.ComplianceItem) error {
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}

	now := time.Now()
	item.CreatedAt = now
	item.UpdatedAt = now

	query := `
		INSERT INTO compliance_items (` + complianceColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.db.Exec(query,
		item.ID, item.SPACID, item.Title, item.Category, item.Status,
		item.DueDate, item.CompletedDate, item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create compliance item: %w", err)
	}
	return nil
}

// Update updates an existing compliance item
func (r *complianceRepository) Update(item *models.ComplianceItem) error {
	item.UpdatedAt = time.Now()

	query := `
		UPDATE compliance_items SET
			spac_id = $2, title = $3, category = $4, status = $5,
			due_date = $6, completed_date = $7, updated_at = $8
		WHERE id = $1
	`

	result, err := r.db.Exec(query,
		item.ID, item.SPACID, item.Title, item.Category, item.Status,
		item.DueDate, item.CompletedDate, item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update compliance item: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("compliance item not found")
	}
	return nil
}

// Delete deletes a compliance item
func (r *complianceRepository) Delete(id uuid.UUID) error {
	result, err := r.db.Exec(`DELETE FROM compliance_items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete compliance item: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("compliance item not found")
	}
	return nil
}

// GetBySPAC retrieves the compliance checklist for a SPAC
func (r *complianceRepository) GetBySPAC(spacID uuid.UUID) ([]models.ComplianceItem, error) {
	query := `SELECT ` + complianceColumns + ` FROM compliance_items WHERE spac_id = $1 ORDER BY due_date NULLS LAST`
	return r.queryItems(query, spacID)
}

// GetDueBefore retrieves open items due before a deadline
func (r *complianceRepository) GetDueBefore(deadline time.Time) ([]models.ComplianceItem, error) {
	query := `
		SELECT ` + complianceColumns + `
		FROM compliance_items
		WHERE due_date <= $1 AND status NOT IN ($2, $3)
		ORDER BY due_date
	`
	return r.queryItems(query, deadline, models.ComplianceCompliant, models.ComplianceWaived)
}

func (r *complianceRepository) queryItems(query string, args ...interface{}) ([]models.ComplianceItem, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query compliance items: %w", err)
	}
	defer rows.Close()

	var items []models.ComplianceItem
	for rows.Next() {
		item, err := scanComplianceItem(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan compliance item: %w", err)
		}
		items = append(items, *item)
	}

	return items, nil
}
