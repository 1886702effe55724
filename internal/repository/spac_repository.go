package repository

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spacos/spac-os-api/internal/models"
)

// spacRepository implements SPACRepository
type spacRepository struct {
	db dbExecutor
}

// NewSPACRepository creates a new SPAC repository
func NewSPACRepository(db dbExecutor) SPACRepository {
	return &spacRepository{db: db}
}

const spacColumns = `id, name, ticker, cik, sponsor_id, status, trust_amount,
	   target_sectors, target_geographies, ipo_date, combination_deadline,
	   loi_signed_at, da_announced_at, completed_at, liquidated_at,
	   created_at, updated_at`

func scanSPAC(row interface{ Scan(...interface{}) error }) (*models.SPAC, error) {
	spac := &models.SPAC{}
	err := row.Scan(
		&spac.ID, &spac.Name, &spac.Ticker, &spac.CIK, &spac.SponsorID,
		&spac.Status, &spac.TrustAmount, &spac.TargetSectors,
		&spac.TargetGeographies, &spac.IPODate, &spac.CombinationDeadline,
		&spac.LOISignedAt, &spac.DAAnnouncedAt, &spac.CompletedAt,
		&spac.LiquidatedAt, &spac.CreatedAt, &spac.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return spac, nil
}

// GetByID retrieves a SPAC by ID
func (r *spacRepository) GetByID(id uuid.UUID) (*models.SPAC, error) {
	query := `SELECT ` + spacColumns + ` FROM spacs WHERE id = $1`

	spac, err := scanSPAC(r.db.QueryRow(query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("spac not found: %w", err)
		}
		return nil, fmt.Errorf("failed to get spac: %w", err)
	}
	return spac, nil
}

// GetByTicker retrieves a SPAC by ticker symbol
func (r *spacRepository) GetByTicker(ticker string) (*models.SPAC, error) {
	query := `SELECT ` + spacColumns + ` FROM spacs WHERE ticker = $1`

	spac, err := scanSPAC(r.db.QueryRow(query, ticker))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("spac with ticker %s not found: %w", ticker, err)
		}
		return nil, fmt.Errorf("failed to get spac: %w", err)
	}
	return spac, nil
}

// Create creates a new SPAC
func (r *spacRepository) Create(spac *models.SPAC) error {
	if spac.ID == uuid.Nil {
		spac.ID = uuid.New()
	}

	now := time.Now()
	spac.CreatedAt = now
	spac.UpdatedAt = now

	query := `
		INSERT INTO spacs (` + spacColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
	`

	_, err := r.db.Exec(query,
		spac.ID, spac.Name, spac.Ticker, spac.CIK, spac.SponsorID,
		spac.Status, spac.TrustAmount, spac.TargetSectors,
		spac.TargetGeographies, spac.IPODate, spac.CombinationDeadline,
		spac.LOISignedAt, spac.DAAnnouncedAt, spac.CompletedAt,
		spac.LiquidatedAt, spac.CreatedAt, spac.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create spac: %w", err)
	}
	return nil
}

// Update updates an existing SPAC
func (r *spacRepository) Update(spac *models.SPAC) error {
	spac.UpdatedAt = time.Now()

	query := `
		UPDATE spacs SET
			name = $2, ticker = $3, cik = $4, sponsor_id = $5, status = $6,
			trust_amount = $7, target_sectors = $8, target_geographies = $9,
			ipo_date = $10, combination_deadline = $11, loi_signed_at = $12,
			da_announced_at = $13, completed_at = $14, liquidated_at = $15,
			updated_at = $16
		WHERE id = $1
	`

	result, err := r.db.Exec(query,
		spac.ID, spac.Name, spac.Ticker, spac.CIK, spac.SponsorID,
		spac.Status, spac.TrustAmount, spac.TargetSectors,
		spac.TargetGeographies, spac.IPODate, spac.CombinationDeadline,
		spac.LOISignedAt, spac.DAAnnouncedAt, spac.CompletedAt,
		spac.LiquidatedAt, spac.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update spac: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("spac not found")
	}
	return nil
}

// Delete deletes a SPAC
func (r *spacRepository) Delete(id uuid.UUID) error {
	result, err := r.db.Exec(`DELETE FROM spacs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete spac: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("spac not found")
	}
	return nil
}

// GetAll retrieves SPACs with filters
func (r *spacRepository) GetAll(filters SPACFilters) ([]models.SPAC, error) {
	query := `SELECT ` + spacColumns + ` FROM spacs`

	var whereClauses []string
	var args []interface{}
	argIndex := 1

	if len(filters.Status) > 0 {
		placeholders := make([]string, len(filters.Status))
		for i, status := range filters.Status {
			placeholders[i] = fmt.Sprintf("$%d", argIndex)
			args = append(args, status)
			argIndex++
		}
		whereClauses = append(whereClauses, fmt.Sprintf("status IN (%s)", strings.Join(placeholders, ",")))
	}

	if filters.SponsorID != nil {
		whereClauses = append(whereClauses, fmt.Sprintf("sponsor_id = $%d", argIndex))
		args = append(args, *filters.SponsorID)
		argIndex++
	}

	if filters.Search != "" {
		whereClauses = append(whereClauses, fmt.Sprintf("(name ILIKE $%d OR ticker ILIKE $%d)", argIndex, argIndex))
		args = append(args, "%"+filters.Search+"%")
		argIndex++
	}

	if filters.DeadlineBefore != nil {
		whereClauses = append(whereClauses, fmt.Sprintf("combination_deadline <= $%d", argIndex))
		args = append(args, *filters.DeadlineBefore)
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
		return nil, fmt.Errorf("failed to query spacs: %w", err)
	}
	defer rows.Close()

	var spacs []models.SPAC
	for rows.Next() {
		spac, err := scanSPAC(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan spac: %w", err)
		}
		spacs = append(spacs, *spac)
	}

	return spacs, nil
}

// CountByStatus returns the number of SPACs in each lifecycle status
func (r *spacRepository) CountByStatus() (map[string]int, error) {
	rows, err := r.db.Query(`SELECT status, COUNT(*) FROM spacs GROUP BY status`)
	if err != nil {
		return nil, fmt.Errorf("failed to count spacs by status: %w", err)
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

// GetCapTable retrieves the cap table entries for a SPAC
func (r *spacRepository) GetCapTable(spacID uuid.UUID) ([]models.CapTableEntry, error) {
	query := `
		SELECT id, spac_id, holder_name, share_class, shares, percent, created_at, updated_at
		FROM cap_table_entries
		WHERE spac_id = $1
		ORDER BY shares DESC
	`

	rows, err := r.db.Query(query, spacID)
	if err != nil {
		return nil, fmt.Errorf("failed to query cap table: %w", err)
	}
	defer rows.Close()

	var entries []models.CapTableEntry
	for rows.Next() {
		var entry models.CapTableEntry
		err := rows.Scan(
			&entry.ID, &entry.SPACID, &entry.HolderName, &entry.ShareClass,
			&entry.Shares, &entry.Percent, &entry.CreatedAt, &entry.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan cap table entry: %w", err)
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

// UpsertCapTableEntry inserts or replaces one holder line, keyed by
// (spac_id, holder_name, share_class)
func (r *spacRepository) UpsertCapTableEntry(entry *models.CapTableEntry) error {
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}

	now := time.Now()
	entry.CreatedAt = now
	entry.UpdatedAt = now

	query := `
		INSERT INTO cap_table_entries (id, spac_id, holder_name, share_class, shares, percent, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (spac_id, holder_name, share_class) DO UPDATE SET
			shares = EXCLUDED.shares,
			percent = EXCLUDED.percent,
			updated_at = EXCLUDED.updated_at
	`

	_, err := r.db.Exec(query,
		entry.ID, entry.SPACID, entry.HolderName, entry.ShareClass,
		entry.Shares, entry.Percent, entry.CreatedAt, entry.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert cap table entry: %w", err)
	}
	return nil
}

// DeleteCapTableEntry removes one holder line
func (r *spacRepository) DeleteCapTableEntry(id uuid.UUID) error {
	result, err := r.db.Exec(`DELETE FROM cap_table_entries WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete cap table entry: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("cap table entry not found")
	}
	return nil
}
