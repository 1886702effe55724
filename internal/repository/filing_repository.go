package repository

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spacos/spac-os-api/internal/models"
)

// filingRepository implements FilingRepository
type filingRepository struct {
	db dbExecutor
}

// NewFilingRepository creates a new filing repository
func NewFilingRepository(db dbExecutor) FilingRepository {
	return &filingRepository{db: db}
}

const filingColumns = `id, spac_id, filing_type, status, accession_number,
	   description, due_date, filed_date, effective_date, created_at, updated_at`

func scanFiling(row interface{ Scan(...interface{}) error }) (*models.Filing, error) {
	filing := &models.Filing{}
	err := row.Scan(
		&filing.ID, &filing.SPACID, &filing.FilingType, &filing.Status,
		&filing.AccessionNumber, &filing.Description, &filing.DueDate,
		&filing.FiledDate, &filing.EffectiveDate, &filing.CreatedAt,
		&filing.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return filing, nil
}

// GetByID retrieves a filing by ID
func (r *filingRepository) GetByID(id uuid.UUID) (*models.Filing, error) {
	query := `SELECT ` + filingColumns + ` FROM filings WHERE id = $1`

	filing, err := scanFiling(r.db.QueryRow(query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("filing not found: %w", err)
		}
		return nil, fmt.Errorf("failed to get filing: %w", err)
	}
	return filing, nil
}

// Create creates a new filing
func (r *filingRepository) Create(filing *models.Filing) error {
	if filing.ID == uuid.Nil {
		filing.ID = uuid.New()
	}

	now := time.Now()
	filing.CreatedAt = now
	filing.UpdatedAt = now

	query := `
		INSERT INTO filings (` + filingColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := r.db.Exec(query,
		filing.ID, filing.SPACID, filing.FilingType, filing.Status,
		filing.AccessionNumber, filing.Description, filing.DueDate,
		filing.FiledDate, filing.EffectiveDate, filing.CreatedAt,
		filing.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create filing: %w", err)
	}
	return nil
}

// Update updates an existing filing
func (r *filingRepository) Update(filing *models.Filing) error {
	filing.UpdatedAt = time.Now()

	query := `
		UPDATE filings SET
			spac_id = $2, filing_type = $3, status = $4, accession_number = $5,
			description = $6, due_date = $7, filed_date = $8,
			effective_date = $9, updated_at = $10
		WHERE id = $1
	`

	result, err := r.db.Exec(query,
		filing.ID, filing.SPACID, filing.FilingType, filing.Status,
		filing.AccessionNumber, filing.Description, filing.DueDate,
		filing.FiledDate, filing.EffectiveDate, filing.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update filing: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("filing not found")
	}
	return nil
}

// Delete deletes a filing
func (r *filingRepository) Delete(id uuid.UUID) error {
	result, err := r.db.Exec(`DELETE FROM filings WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete filing: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("filing not found")
	}
	return nil
}

// GetAll retrieves filings with filters
func (r *filingRepository) GetAll(filters FilingFilters) ([]models.Filing, error) {
	query := `SELECT ` + filingColumns + ` FROM filings`

	var whereClauses []string
	var args []interface{}
	argIndex := 1

	if filters.SPACID != nil {
		whereClauses = append(whereClauses, fmt.Sprintf("spac_id = $%d", argIndex))
		args = append(args, *filters.SPACID)
		argIndex++
	}

	if len(filters.Status) > 0 {
		placeholders := make([]string, len(filters.Status))
		for i, status := range filters.Status {
			placeholders[i] = fmt.Sprintf("$%d", argIndex)
			args = append(args, status)
			argIndex++
		}
		whereClauses = append(whereClauses, fmt.Sprintf("status IN (%s)", strings.Join(placeholders, ",")))
	}

	if len(filters.FilingType) > 0 {
		placeholders := make([]string, len(filters.FilingType))
		for i, filingType := range filters.FilingType {
			placeholders[i] = fmt.Sprintf("$%d", argIndex)
			args = append(args, filingType)
			argIndex++
		}
		whereClauses = append(whereClauses, fmt.Sprintf("filing_type IN (%s)", strings.Join(placeholders, ",")))
	}

	if len(whereClauses) > 0 {
		query += " WHERE " + strings.Join(whereClauses, " AND ")
	}

	query += " ORDER BY updated_at DESC"

	if filters.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d", argIndex)
		args = append(args, filters.Limit)
		argIndex++
	}

	if filters.Offset > 0 {
		query += fmt.Sprintf(" OFFSET $%d", argIndex)
		args = append(args, filters.Offset)
	}

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query filings: %w", err)
	}
	defer rows.Close()

	var filings []models.Filing
	for rows.Next() {
		filing, err := scanFiling(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan filing: %w", err)
		}
		filings = append(filings, *filing)
	}

	return filings, nil
}

// ExistsByAccession reports whether a filing with the accession number is
// already tracked for the SPAC. Used to dedupe EDGAR syncs.
func (r *filingRepository) ExistsByAccession(spacID uuid.UUID, accessionNumber string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM filings WHERE spac_id = $1 AND accession_number = $2)`

	if err := r.db.QueryRow(query, spacID, accessionNumber).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check filing existence: %w", err)
	}
	return exists, nil
}

// CountByStatus returns the number of filings in each workflow status
func (r *filingRepository) CountByStatus() (map[string]int, error) {
	rows, err := r.db.Query(`SELECT status, COUNT(*) FROM filings GROUP BY status`)
	if err != nil {
		return nil, fmt.Errorf("failed to count filings by status: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var status string
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("failed to scan status count: %w", err)
		}
		counts[status] = count
	}

	return counts, nil
}
