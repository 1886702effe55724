package repository

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spacos/spac-os-api/internal/models"
)

// targetRepository implements TargetRepository
type targetRepository struct {
	db dbExecutor
}

// NewTargetRepository creates a new target repository
func NewTargetRepository(db dbExecutor) TargetRepository {
	return &targetRepository{db: db}
}

const targetColumns = `id, organization_id, name, description, revenue, ebitda,
	   industry_focus, geography_focus, headquarters, stakes, created_at, updated_at`

func scanTarget(row interface{ Scan(...interface{}) error }) (*models.Target, error) {
	target := &models.Target{}
	err := row.Scan(
		&target.ID, &target.OrganizationID, &target.Name, &target.Description,
		&target.Revenue, &target.EBITDA, &target.IndustryFocus,
		&target.GeographyFocus, &target.Headquarters, &target.Stakes,
		&target.CreatedAt, &target.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return target, nil
}

// GetByID retrieves a target by ID
func (r *targetRepository) GetByID(id uuid.UUID) (*models.Target, error) {
	query := `SELECT ` + targetColumns + ` FROM targets WHERE id = $1`

	target, err := scanTarget(r.db.QueryRow(query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("target not found: %w", err)
		}
		return nil, fmt.Errorf("failed to get target: %w", err)
	}
	return target, nil
}

// Create creates a new target
func (r *targetRepository) Create(target *models.Target) error {
	if target.ID == uuid.Nil {
		target.ID = uuid.New()
	}

	now := time.Now()
	target.CreatedAt = now
	target.UpdatedAt = now

	query := `
		INSERT INTO targets (` + targetColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	_, err := r.db.Exec(query,
		target.ID, target.OrganizationID, target.Name, target.Description,
		target.Revenue, target.EBITDA, target.IndustryFocus,
		target.GeographyFocus, target.Headquarters, target.Stakes,
		target.CreatedAt, target.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create target: %w", err)
	}
	return nil
}

// Update updates an existing target
func (r *targetRepository) Update(target *models.Target) error {
	target.UpdatedAt = time.Now()

	query := `
		UPDATE targets SET
			organization_id = $2, name = $3, description = $4, revenue = $5,
			ebitda = $6, industry_focus = $7, geography_focus = $8,
			headquarters = $9, stakes = $10, updated_at = $11
		WHERE id = $1
	`

	result, err := r.db.Exec(query,
		target.ID, target.OrganizationID, target.Name, target.Description,
		target.Revenue, target.EBITDA, target.IndustryFocus,
		target.GeographyFocus, target.Headquarters, target.Stakes,
		target.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update target: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("target not found")
	}
	return nil
}

// Delete deletes a target
func (r *targetRepository) Delete(id uuid.UUID) error {
	result, err := r.db.Exec(`DELETE FROM targets WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete target: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("target not found")
	}
	return nil
}

// GetAll retrieves targets with filters
func (r *targetRepository) GetAll(filters TargetFilters) ([]models.Target, error) {
	query := `SELECT ` + targetColumns + ` FROM targets`

	var whereClauses []string
	var args []interface{}
	argIndex := 1

	// industry_focus and geography_focus are JSON arrays; match tags by text
	if filters.Sector != "" {
		whereClauses = append(whereClauses, fmt.Sprintf("industry_focus::text ILIKE $%d", argIndex))
		args = append(args, "%"+filters.Sector+"%")
		argIndex++
	}

	if filters.Geography != "" {
		whereClauses = append(whereClauses, fmt.Sprintf("geography_focus::text ILIKE $%d", argIndex))
		args = append(args, "%"+filters.Geography+"%")
		argIndex++
	}

	if filters.MinRevenue != nil {
		whereClauses = append(whereClauses, fmt.Sprintf("revenue >= $%d", argIndex))
		args = append(args, *filters.MinRevenue)
		argIndex++
	}

	if filters.Search != "" {
		whereClauses = append(whereClauses, fmt.Sprintf("(name ILIKE $%d OR description ILIKE $%d)", argIndex, argIndex))
		args = append(args, "%"+filters.Search+"%")
		argIndex++
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
		return nil, fmt.Errorf("failed to query targets: %w", err)
	}
	defer rows.Close()

	var targets []models.Target
	for rows.Next() {
		target, err := scanTarget(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan target: %w", err)
		}
		targets = append(targets, *target)
	}

	return targets, nil
}
