package rules

import (
	"fmt"
	"math"
	"strings"
)

// Overall score weights per sub-score.
const (
	sizeWeight      = 0.30
	sectorWeight    = 0.30
	geographyWeight = 0.20
	ownershipWeight = 0.20
)

// Recommendation tiers for the overall score.
const (
	strongFitThreshold   = 75
	moderateFitThreshold = 50
)

// OwnershipStake is a single tracked owner of a target company.
type OwnershipStake struct {
	OwnerType string  `json:"owner_type"`
	OwnerName string  `json:"owner_name"`
	Percent   float64 `json:"percent"`
}

// TargetProfile carries the target company attributes the calculator reads.
// Revenue and EBITDA are nil when not yet researched.
type TargetProfile struct {
	Revenue        *float64         `json:"revenue"`
	EBITDA         *float64         `json:"ebitda"`
	IndustryFocus  []string         `json:"industry_focus"`
	GeographyFocus []string         `json:"geography_focus"`
	Headquarters   string           `json:"headquarters"`
	Stakes         []OwnershipStake `json:"stakes"`
}

// AcquisitionCriteria carries a SPAC's stated acquisition criteria.
type AcquisitionCriteria struct {
	TrustAmount       float64  `json:"trust_amount"`
	TargetSectors     []string `json:"target_sectors"`
	TargetGeographies []string `json:"target_geographies"`
}

// FitScore is the computed compatibility rating between a target and a SPAC.
// All scores are integers in [0, 100].
type FitScore struct {
	SizeScore      int    `json:"size_score"`
	SectorScore    int    `json:"sector_score"`
	GeographyScore int    `json:"geography_score"`
	OwnershipScore int    `json:"ownership_score"`
	OverallScore   int    `json:"overall_score"`
	Summary        string `json:"summary"`
	Recommendation string `json:"recommendation"`
}

// FitCalculator computes target/SPAC fit scores. It is pure and stateless:
// identical inputs always produce identical output, and missing optional data
// degrades to documented neutral defaults instead of failing.
type FitCalculator struct{}

// NewFitCalculator creates a new fit calculator instance.
func NewFitCalculator() *FitCalculator {
	return &FitCalculator{}
}

// Calculate scores a target against a SPAC's acquisition criteria.
func (f *FitCalculator) Calculate(target TargetProfile, criteria AcquisitionCriteria) FitScore {
	score := FitScore{
		SizeScore:      f.sizeScore(target, criteria),
		SectorScore:    f.sectorScore(target, criteria),
		GeographyScore: f.geographyScore(target, criteria),
		OwnershipScore: f.ownershipScore(target),
	}

	overall := sizeWeight*float64(score.SizeScore) +
		sectorWeight*float64(score.SectorScore) +
		geographyWeight*float64(score.GeographyScore) +
		ownershipWeight*float64(score.OwnershipScore)
	score.OverallScore = int(math.Round(overall))

	score.Summary = f.summarize(score)
	score.Recommendation = f.recommend(score.OverallScore)
	return score
}

// sizeScore compares estimated enterprise value against the SPAC's trust
// amount. Targets between 2x and 6x trust are the sweet spot for a typical
// business combination.
func (f *FitCalculator) sizeScore(target TargetProfile, criteria AcquisitionCriteria) int {
	if target.Revenue == nil || *target.Revenue <= 0 || criteria.TrustAmount <= 0 {
		return 50
	}

	estimatedEV := *target.Revenue * 3
	ratio := estimatedEV / criteria.TrustAmount

	switch {
	case ratio >= 2 && ratio <= 6:
		return 90
	case ratio >= 1 && ratio <= 8:
		return 70
	default:
		return 30
	}
}

func (f *FitCalculator) sectorScore(target TargetProfile, criteria AcquisitionCriteria) int {
	if len(criteria.TargetSectors) == 0 || len(target.IndustryFocus) == 0 {
		return 50
	}
	if tagsOverlap(criteria.TargetSectors, target.IndustryFocus) {
		return 90
	}
	return 30
}

func (f *FitCalculator) geographyScore(target TargetProfile, criteria AcquisitionCriteria) int {
	if len(criteria.TargetGeographies) > 0 && len(target.GeographyFocus) > 0 {
		if tagsOverlap(criteria.TargetGeographies, target.GeographyFocus) {
			return 90
		}
		return 30
	}
	// Partial credit when the SPAC states no geography preference but the
	// target at least has a known headquarters.
	if len(criteria.TargetGeographies) == 0 && strings.TrimSpace(target.Headquarters) != "" {
		return 60
	}
	return 50
}

func (f *FitCalculator) ownershipScore(target TargetProfile) int {
	// PE-backed targets are treated as easier to transact regardless of how
	// small the tracked sponsor stake is.
	for _, stake := range target.Stakes {
		if isFinancialSponsor(stake.OwnerType) {
			return 85
		}
	}

	total := 0.0
	for _, stake := range target.Stakes {
		total += stake.Percent
	}

	switch {
	case total == 0:
		return 70
	case total > 90:
		return 80
	case total > 50:
		return 60
	default:
		return 50
	}
}

func (f *FitCalculator) summarize(score FitScore) string {
	return fmt.Sprintf(
		"Size fit is %s (%d/100), sector alignment is %s (%d/100), geographic alignment is %s (%d/100), ownership structure is %s (%d/100).",
		sizeLabel(score.SizeScore), score.SizeScore,
		alignmentLabel(score.SectorScore), score.SectorScore,
		alignmentLabel(score.GeographyScore), score.GeographyScore,
		ownershipLabel(score.OwnershipScore), score.OwnershipScore,
	)
}

func (f *FitCalculator) recommend(overall int) string {
	switch {
	case overall >= strongFitThreshold:
		return "Strong fit - recommend prioritizing"
	case overall >= moderateFitThreshold:
		return "Moderate fit - explore with due diligence on weak areas"
	default:
		return "Limited fit - consider only if strategic rationale compelling"
	}
}

func sizeLabel(score int) string {
	switch {
	case score >= 70:
		return "good"
	case score >= 50:
		return "moderate"
	default:
		return "poor"
	}
}

func alignmentLabel(score int) string {
	switch {
	case score >= 70:
		return "strong"
	case score >= 50:
		return "moderate"
	default:
		return "limited"
	}
}

func ownershipLabel(score int) string {
	switch {
	case score >= 70:
		return "favorable"
	case score >= 50:
		return "workable"
	default:
		return "unclear"
	}
}

// tagsOverlap reports whether any tag from one list contains or is contained
// by any tag from the other, case-insensitively.
func tagsOverlap(a, b []string) bool {
	for _, left := range a {
		left = strings.ToLower(strings.TrimSpace(left))
		if left == "" {
			continue
		}
		for _, right := range b {
			right = strings.ToLower(strings.TrimSpace(right))
			if right == "" {
				continue
			}
			if strings.Contains(left, right) || strings.Contains(right, left) {
				return true
			}
		}
	}
	return false
}

// isFinancialSponsor reports whether an owner type marks a PE or financial
// sponsor owner.
func isFinancialSponsor(ownerType string) bool {
	switch strings.ToUpper(strings.TrimSpace(ownerType)) {
	case "PE_FIRM", "PRIVATE_EQUITY", "FINANCIAL_SPONSOR":
		return true
	default:
		return false
	}
}
