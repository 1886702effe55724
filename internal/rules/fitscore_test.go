package rules

import (
	"math"
	"reflect"
	"strings"
	"testing"
)

func floatPtr(v float64) *float64 {
	return &v
}

func TestSizeScore(t *testing.T) {
	calc := NewFitCalculator()

	tests := []struct {
		name     string
		revenue  *float64
		trust    float64
		expected int
	}{
		{"ratio in sweet spot", floatPtr(50_000_000), 40_000_000, 90},       // EV 150M, ratio 3.75
		{"ratio acceptable high", floatPtr(100_000_000), 40_000_000, 70},    // EV 300M, ratio 7.5
		{"ratio acceptable low", floatPtr(20_000_000), 40_000_000, 70},      // EV 60M, ratio 1.5
		{"ratio far too large", floatPtr(1_000_000_000), 40_000_000, 30},    // ratio 75
		{"ratio far too small", floatPtr(5_000_000), 100_000_000, 30},       // ratio 0.15
		{"revenue missing", nil, 40_000_000, 50},
		{"revenue zero", floatPtr(0), 40_000_000, 50},
		{"trust missing", floatPtr(100_000_000), 0, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target := TargetProfile{Revenue: tt.revenue}
			criteria := AcquisitionCriteria{TrustAmount: tt.trust}
			if got := calc.Calculate(target, criteria).SizeScore; got != tt.expected {
				t.Errorf("size score = %d, want %d", got, tt.expected)
			}
		})
	}
}

func TestSectorScore(t *testing.T) {
	calc := NewFitCalculator()

	tests := []struct {
		name     string
		industry []string
		sectors  []string
		expected int
	}{
		{"case-insensitive substring overlap", []string{"Healthcare"}, []string{"healthcare services"}, 90},
		{"overlap the other direction", []string{"consumer tech platforms"}, []string{"Tech"}, 90},
		{"no overlap", []string{"Mining"}, []string{"Software", "Fintech"}, 30},
		{"target has no industry focus", nil, []string{"Software"}, 50},
		{"spac has no sector criteria", []string{"Software"}, nil, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target := TargetProfile{IndustryFocus: tt.industry}
			criteria := AcquisitionCriteria{TargetSectors: tt.sectors}
			if got := calc.Calculate(target, criteria).SectorScore; got != tt.expected {
				t.Errorf("sector score = %d, want %d", got, tt.expected)
			}
		})
	}
}

func TestGeographyScore(t *testing.T) {
	calc := NewFitCalculator()

	tests := []struct {
		name      string
		targetGeo []string
		hq        string
		spacGeo   []string
		expected  int
	}{
		{"overlap", []string{"North America"}, "", []string{"north america", "Europe"}, 90},
		{"no overlap", []string{"Southeast Asia"}, "", []string{"Europe"}, 30},
		{"spac silent but target has headquarters", nil, "Austin, TX", nil, 60},
		{"spac silent and no location signal at all", nil, "", nil, 50},
		{"spac has criteria but target has no geography tags", nil, "Austin, TX", []string{"Europe"}, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target := TargetProfile{GeographyFocus: tt.targetGeo, Headquarters: tt.hq}
			criteria := AcquisitionCriteria{TargetGeographies: tt.spacGeo}
			if got := calc.Calculate(target, criteria).GeographyScore; got != tt.expected {
				t.Errorf("geography score = %d, want %d", got, tt.expected)
			}
		})
	}
}

func TestOwnershipScore(t *testing.T) {
	calc := NewFitCalculator()

	tests := []struct {
		name     string
		stakes   []OwnershipStake
		expected int
	}{
		{"no tracked stakes", nil, 70},
		{"pe-backed wins regardless of tiny stake", []OwnershipStake{
			{OwnerType: "PE_FIRM", OwnerName: "Summit Ridge Capital", Percent: 30},
		}, 85},
		{"pe owner type matched case-insensitively", []OwnershipStake{
			{OwnerType: "pe_firm", Percent: 1},
		}, 85},
		{"clear majority control", []OwnershipStake{
			{OwnerType: "FOUNDER", Percent: 60},
			{OwnerType: "EMPLOYEE", Percent: 35},
		}, 80},
		{"fragmented ownership", []OwnershipStake{
			{OwnerType: "FOUNDER", Percent: 40},
			{OwnerType: "ANGEL", Percent: 20},
		}, 60},
		{"mostly untracked", []OwnershipStake{
			{OwnerType: "FOUNDER", Percent: 30},
		}, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target := TargetProfile{Stakes: tt.stakes}
			if got := calc.Calculate(target, AcquisitionCriteria{}).OwnershipScore; got != tt.expected {
				t.Errorf("ownership score = %d, want %d", got, tt.expected)
			}
		})
	}
}

func TestOverallScoreIsWeightedSum(t *testing.T) {
	calc := NewFitCalculator()

	target := TargetProfile{
		Revenue:       floatPtr(100_000_000),
		IndustryFocus: []string{"Healthcare"},
		Headquarters:  "Boston, MA",
		Stakes:        []OwnershipStake{{OwnerType: "PE_FIRM", Percent: 55}},
	}
	criteria := AcquisitionCriteria{
		TrustAmount:   40_000_000,
		TargetSectors: []string{"healthcare services"},
	}

	score := calc.Calculate(target, criteria)

	// 0.3*70 + 0.3*90 + 0.2*60 + 0.2*85 = 77
	expected := int(math.Round(0.3*float64(score.SizeScore) +
		0.3*float64(score.SectorScore) +
		0.2*float64(score.GeographyScore) +
		0.2*float64(score.OwnershipScore)))
	if score.OverallScore != expected {
		t.Errorf("overall = %d, want weighted sum %d", score.OverallScore, expected)
	}
	if score.OverallScore != 77 {
		t.Errorf("overall = %d, want 77", score.OverallScore)
	}

	for name, sub := range map[string]int{
		"size":      score.SizeScore,
		"sector":    score.SectorScore,
		"geography": score.GeographyScore,
		"ownership": score.OwnershipScore,
		"overall":   score.OverallScore,
	} {
		if sub < 0 || sub > 100 {
			t.Errorf("%s score %d out of [0, 100]", name, sub)
		}
	}
}

func TestCalculateIsDeterministic(t *testing.T) {
	calc := NewFitCalculator()

	target := TargetProfile{
		Revenue:        floatPtr(80_000_000),
		EBITDA:         floatPtr(-2_000_000),
		IndustryFocus:  []string{"Fintech", "Payments"},
		GeographyFocus: []string{"Europe"},
		Headquarters:   "Berlin",
		Stakes:         []OwnershipStake{{OwnerType: "FOUNDER", Percent: 62}},
	}
	criteria := AcquisitionCriteria{
		TrustAmount:       50_000_000,
		TargetSectors:     []string{"financial technology"},
		TargetGeographies: []string{"europe", "uk"},
	}

	first := calc.Calculate(target, criteria)
	second := calc.Calculate(target, criteria)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("expected identical results for identical inputs: %+v vs %+v", first, second)
	}
}

func TestRecommendationTiers(t *testing.T) {
	calc := NewFitCalculator()

	strong := calc.Calculate(TargetProfile{
		Revenue:        floatPtr(150_000_000),
		IndustryFocus:  []string{"Healthcare"},
		GeographyFocus: []string{"North America"},
		Stakes:         []OwnershipStake{{OwnerType: "PE_FIRM", Percent: 80}},
	}, AcquisitionCriteria{
		TrustAmount:       100_000_000,
		TargetSectors:     []string{"healthcare"},
		TargetGeographies: []string{"north america"},
	})
	if strong.OverallScore < 75 || !strings.HasPrefix(strong.Recommendation, "Strong fit") {
		t.Errorf("expected strong recommendation, got %d %q", strong.OverallScore, strong.Recommendation)
	}

	moderate := calc.Calculate(TargetProfile{}, AcquisitionCriteria{})
	if moderate.OverallScore < 50 || moderate.OverallScore >= 75 ||
		!strings.HasPrefix(moderate.Recommendation, "Moderate fit") {
		t.Errorf("expected moderate recommendation, got %d %q", moderate.OverallScore, moderate.Recommendation)
	}

	limited := calc.Calculate(TargetProfile{
		Revenue:       floatPtr(5_000_000_000),
		IndustryFocus: []string{"Mining"},
		GeographyFocus: []string{
			"Australia",
		},
		Stakes: []OwnershipStake{{OwnerType: "FOUNDER", Percent: 20}},
	}, AcquisitionCriteria{
		TrustAmount:       40_000_000,
		TargetSectors:     []string{"Software"},
		TargetGeographies: []string{"North America"},
	})
	if limited.OverallScore >= 50 || !strings.HasPrefix(limited.Recommendation, "Limited fit") {
		t.Errorf("expected limited recommendation, got %d %q", limited.OverallScore, limited.Recommendation)
	}

	if !strings.Contains(strong.Summary, "sector alignment is strong") {
		t.Errorf("summary should name the sector bucket, got %q", strong.Summary)
	}
}
