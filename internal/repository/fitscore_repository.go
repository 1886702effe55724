package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spacos/spac-os-api/internal/models"
)

// fitScoreRepository implements FitScoreRepository
type fitScoreRepository struct {
	db dbExecutor
}

// NewFitScoreRepository creates a new fit score repository
func NewFitScoreRepository(db dbExecutor) FitScoreRepository {
	return &fitScoreRepository{db: db}
}

const fitScoreColumns = `id, target_id, spac_id, size_score, sector_score,
	   geography_score, ownership_score, overall_score, summary, recommendation, calculated_at`

func scanFitScore(row interface{ Scan(...interface{}) error }) (*models.FitScoreRecord, error) {
	score := &models.FitScoreRecord{}
	err := row.Scan(
		&score.ID, &score.TargetID, &score.SPACID, &score.SizeScore,
		&score.SectorScore, &score.GeographyScore, &score.OwnershipScore,
		&score.OverallScore, &score.Summary, &score.Recommendation,
		&score.CalculatedAt,
	)
	if err != nil {
		return nil, err
	}
	return score, nil
}

// Upsert stores a fit score, replacing any prior score for the same
// (target, spac) pair. Recalculation is idempotent; last write wins.
func (r *fitScoreRepository) Upsert(score *models.FitScoreRecord) error {
	if score.ID == uuid.Nil {
		score.ID = uuid.New()
	}
	if score.CalculatedAt.IsZero() {
		score.CalculatedAt = time.Now()
	}

	query := `
		INSERT INTO fit_scores (` + fitScoreColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (target_id, spac_id) DO UPDATE SET
			size_score = EXCLUDED.size_score,
			sector_score = EXCLUDED.sector_score,
			geography_score = EXCLUDED.geography_score,
			ownership_score = EXCLUDED.ownership_score,
			overall_score = EXCLUDED.overall_score,
			summary = EXCLUDED.summary,
			recommendation = EXCLUDED.recommendation,
			calculated_at = EXCLUDED.calculated_at
	`

	_, err := r.db.Exec(query,
		score.ID, score.TargetID, score.SPACID, score.SizeScore,
		score.SectorScore, score.GeographyScore, score.OwnershipScore,
		score.OverallScore, score.Summary, score.Recommendation,
		score.CalculatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert fit score: %w", err)
	}
	return nil
}

// GetByPair retrieves the score for one (target, spac) pair
func (r *fitScoreRepository) GetByPair(targetID, spacID uuid.UUID) (*models.FitScoreRecord, error) {
	query := `SELECT ` + fitScoreColumns + ` FROM fit_scores WHERE target_id = $1 AND spac_id = $2`

	score, err := scanFitScore(r.db.QueryRow(query, targetID, spacID))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("fit score not found: %w", err)
		}
		return nil, fmt.Errorf("failed to get fit score: %w", err)
	}
	return score, nil
}

// GetByTarget retrieves all scores for a target, best first
func (r *fitScoreRepository) GetByTarget(targetID uuid.UUID) ([]models.FitScoreRecord, error) {
	query := `SELECT ` + fitScoreColumns + ` FROM fit_scores WHERE target_id = $1 ORDER BY overall_score DESC`
	return r.queryScores(query, targetID)
}

// GetBySPAC retrieves all scores for a SPAC, best first
func (r *fitScoreRepository) GetBySPAC(spacID uuid.UUID) ([]models.FitScoreRecord, error) {
	query := `SELECT ` + fitScoreColumns + ` FROM fit_scores WHERE spac_id = $1 ORDER BY overall_score DESC`
	return r.queryScores(query, spacID)
}

// GetRecent retrieves the most recently calculated scores
func (r *fitScoreRepository) GetRecent(limit int) ([]models.FitScoreRecord, error) {
	query := `SELECT ` + fitScoreColumns + ` FROM fit_scores ORDER BY calculated_at DESC LIMIT $1`
	return r.queryScores(query, limit)
}

func (r *fitScoreRepository) queryScores(query string, args ...interface{}) ([]models.FitScoreRecord, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query fit scores: %w", err)
	}
	defer rows.Close()

	var scores []models.FitScoreRecord
	for rows.Next() {
		score, err := scanFitScore(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan fit score: %w", err)
		}
		scores = append(scores, *score)
	}

	return scores, nil
}
