package services

import (
	"testing"

	"github.com/google/uuid"
	apperrors "github.com/spacos/spac-os-api/internal/errors"
	"github.com/spacos/spac-os-api/internal/models"
	"github.com/spacos/spac-os-api/internal/repository"
	"github.com/spacos/spac-os-api/internal/rules"
)

func float64Ptr(v float64) *float64 { return &v }

func TestCalculateFitPersistsScore(t *testing.T) {
	spac := &models.SPAC{
		ID:                uuid.New(),
		Name:              "Apex Acquisition Corp",
		Status:            rules.SPACSearching,
		TrustAmount:       50_000_000,
		TargetSectors:     models.StringList{"Healthcare"},
		TargetGeographies: models.StringList{"North America"},
	}
	target := &models.Target{
		ID:             uuid.New(),
		Name:           "MedCore Diagnostics",
		Revenue:        float64Ptr(100_000_000),
		IndustryFocus:  models.StringList{"Healthcare Services"},
		GeographyFocus: models.StringList{"North America"},
	}

	fitScores := newFakeFitScoreRepo()
	repos := &repository.Repositories{
		SPAC:     newFakeSPACRepo(spac),
		Target:   newFakeTargetRepo(target),
		FitScore: fitScores,
	}
	service := newTargetService(repos)

	record, err := service.CalculateFit(target.ID.String(), spac.ID.String())
	if err != nil {
		t.Fatalf("CalculateFit returned error: %v", err)
	}

	// EV 300M on 50M trust is a 6x ratio, inside the preferred band
	if record.SizeScore != 90 {
		t.Errorf("size score = %d, want 90", record.SizeScore)
	}
	if record.SectorScore != 90 {
		t.Errorf("sector score = %d, want 90", record.SectorScore)
	}
	if record.GeographyScore != 90 {
		t.Errorf("geography score = %d, want 90", record.GeographyScore)
	}
	if record.OwnershipScore != 70 {
		t.Errorf("ownership score = %d, want 70", record.OwnershipScore)
	}
	if record.Recommendation == "" || record.Summary == "" {
		t.Error("summary and recommendation must be populated")
	}
	if record.CalculatedAt.IsZero() {
		t.Error("CalculatedAt not stamped")
	}

	key := pairKey{targetID: target.ID, spacID: spac.ID}
	if _, ok := fitScores.scores[key]; !ok {
		t.Error("score was not persisted for the pair")
	}
}

func TestCalculateFitOverwritesPriorScore(t *testing.T) {
	spac := &models.SPAC{ID: uuid.New(), Name: "Apex Acquisition Corp", TrustAmount: 50_000_000}
	target := &models.Target{ID: uuid.New(), Name: "MedCore Diagnostics"}

	fitScores := newFakeFitScoreRepo()
	repos := &repository.Repositories{
		SPAC:     newFakeSPACRepo(spac),
		Target:   newFakeTargetRepo(target),
		FitScore: fitScores,
	}
	service := newTargetService(repos)

	first, err := service.CalculateFit(target.ID.String(), spac.ID.String())
	if err != nil {
		t.Fatalf("first CalculateFit: %v", err)
	}
	second, err := service.CalculateFit(target.ID.String(), spac.ID.String())
	if err != nil {
		t.Fatalf("second CalculateFit: %v", err)
	}

	if len(fitScores.scores) != 1 {
		t.Errorf("stored %d scores for one pair, want 1", len(fitScores.scores))
	}
	if first.ID != second.ID {
		t.Error("recalculation created a new record instead of overwriting")
	}
	if first.OverallScore != second.OverallScore {
		t.Errorf("identical inputs scored differently: %d then %d", first.OverallScore, second.OverallScore)
	}
}

func TestCalculateFitMissingTarget(t *testing.T) {
	spac := &models.SPAC{ID: uuid.New(), Name: "Apex Acquisition Corp"}
	repos := &repository.Repositories{
		SPAC:     newFakeSPACRepo(spac),
		Target:   newFakeTargetRepo(),
		FitScore: newFakeFitScoreRepo(),
	}
	service := newTargetService(repos)

	_, err := service.CalculateFit(uuid.New().String(), spac.ID.String())
	appErr, ok := err.(*apperrors.AppError)
	if !ok || appErr.Code != apperrors.ErrCodeNotFound {
		t.Errorf("expected NOT_FOUND error, got %v", err)
	}
}

func TestCreateTargetValidation(t *testing.T) {
	repos := &repository.Repositories{Target: newFakeTargetRepo()}
	service := newTargetService(repos)

	cases := []struct {
		name   string
		target models.Target
	}{
		{"empty name", models.Target{}},
		{"negative revenue", models.Target{Name: "MedCore", Revenue: float64Ptr(-1)}},
		{"stake over 100 percent", models.Target{
			Name:   "MedCore",
			Stakes: models.OwnershipStakes{{OwnerType: "PE_FIRM", OwnerName: "Summit", Percent: 120}},
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := service.Create(&tc.target)
			appErr, ok := err.(*apperrors.AppError)
			if !ok || appErr.Code != apperrors.ErrCodeValidationError {
				t.Errorf("expected VALIDATION_ERROR, got %v", err)
			}
		})
	}
}
