package repository

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spacos/spac-os-api/internal/models"
)

// organizationRepository implements OrganizationRepository
type organizationRepository struct {
	db dbExecutor
}

// NewOrganizationRepository creates a new organization repository
func NewOrganizationRepository(db dbExecutor) OrganizationRepository {
	return &organizationRepository{db: db}
}

const orgColumns = `id, name, org_type, website, description, headquarters,
	   contact_email, created_at, updated_at`

func scanOrganization(row interface{ Scan(...interface{}) error }) (*models.Organization, error) {
	org := &models.Organization{}
	err := row.Scan(
		&org.ID, &org.Name, &org.OrgType, &org.Website, &org.Description,
		&org.Headquarters, &org.ContactEmail, &org.CreatedAt, &org.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return org, nil
}

// GetByID retrieves an organization by ID
func (r *organizationRepository) GetByID(id uuid.UUID) (*models.Organization, error) {
	query := `SELECT ` + orgColumns + ` FROM organizations WHERE id = $1`

	org, err := scanOrganization(r.db.QueryRow(query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("organization not found: %w", err)
		}
		return nil, fmt.Errorf("failed to get organization: %w", err)
	}
	return org, nil
}

// Create creates a new organization
func (r *organizationRepository) Create(org *models.Organization) error {
	if org.ID == uuid.Nil {
		org.ID = uuid.New()
	}

	now := time.Now()
	org.CreatedAt = now
	org.UpdatedAt = now

	query := `
		INSERT INTO organizations (` + orgColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.db.Exec(query,
		org.ID, org.Name, org.OrgType, org.Website, org.Description,
		org.Headquarters, org.ContactEmail, org.CreatedAt, org.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create organization: %w", err)
	}
	return nil
}

// Update updates an existing organization
func (r *organizationRepository) Update(org *models.Organization) error {
	org.UpdatedAt = time.Now()

	query := `
		UPDATE organizations SET
			name = $2, org_type = $3, website = $4, description = $5,
			headquarters = $6, contact_email = $7, updated_at = $8
		WHERE id = $1
	`

	result, err := r.db.Exec(query,
		org.ID, org.Name, org.OrgType, org.Website, org.Description,
		org.Headquarters, org.ContactEmail, org.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update organization: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("organization not found")
	}
	return nil
}

// Delete deletes an organization
func (r *organizationRepository) Delete(id uuid.UUID) error {
	result, err := r.db.Exec(`DELETE FROM organizations WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete organization: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("organization not found")
	}
	return nil
}

// GetAll retrieves organizations with filters
func (r *organizationRepository) GetAll(filters OrganizationFilters) ([]models.Organization, error) {
	query := `SELECT ` + orgColumns + ` FROM organizations`

	var whereClauses []string
	var args []interface{}
	argIndex := 1

	if len(filters.OrgType) > 0 {
		placeholders := make([]string, len(filters.OrgType))
		for i, orgType := range filters.OrgType {
			placeholders[i] = fmt.Sprintf("$%d", argIndex)
			args = append(args, orgType)
			argIndex++
		}
		whereClauses = append(whereClauses, fmt.Sprintf("org_type IN (%s)", strings.Join(placeholders, ",")))
	}

	if filters.Search != "" {
		whereClauses = append(whereClauses, fmt.Sprintf("(name ILIKE $%d OR description ILIKE $%d)", argIndex, argIndex))
		args = append(args, "%"+filters.Search+"%")
		argIndex++
	}

	if len(whereClauses) > 0 {
		query += " WHERE " + strings.Join(whereClauses, " AND ")
	}

	query += " ORDER BY name"

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
		return nil, fmt.Errorf("failed to query organizations: %w", err)
	}
	defer rows.Close()

	var orgs []models.Organization
	for rows.Next() {
		org, err := scanOrganization(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan organization: %w", err)
		}
		orgs = append(orgs, *org)
	}

	return orgs, nil
}
