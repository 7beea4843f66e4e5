package models

import (
	"strings"
	"time"
)

// ProductKind is the pack-count classification derived from a product
// name. Unlike ProductCategory it drives the pull-value math.
type ProductKind string

const (
	KindBoosterBox36    ProductKind = "booster_box_36"
	KindBoosterBox18    ProductKind = "booster_box_18"
	KindEliteTrainerBox ProductKind = "elite_trainer_box"
	KindSingleBooster   ProductKind = "single_booster"

	// KindUnknown marks products whose name matched no rule. They are
	// analyzed with the 36-pack booster-box defaults, but stay
	// distinguishable from products actually classified as booster boxes.
	KindUnknown ProductKind = "unknown"
)

// ClassifyProductKind determines the product kind from its name.
func ClassifyProductKind(name string) ProductKind {
	lower := strings.ToLower(name)

	switch {
	case strings.Contains(lower, "elite trainer") || strings.Contains(lower, "etb"):
		return KindEliteTrainerBox
	case strings.Contains(lower, "booster box"):
		if strings.Contains(lower, "18") {
			return KindBoosterBox18
		}
		return KindBoosterBox36
	case strings.Contains(lower, "booster") && !strings.Contains(lower, "box"):
		return KindSingleBooster
	default:
		return KindUnknown
	}
}

// PacksPerUnit returns how many packs one unit of this kind contains.
func (k ProductKind) PacksPerUnit() int {
	switch k {
	case KindEliteTrainerBox:
		return 8
	case KindBoosterBox18:
		return 18
	case KindSingleBooster:
		return 1
	default:
		// KindBoosterBox36 and the unknown default
		return 36
	}
}

// PullMultiplier returns the expected-yield multiplier for this kind.
// The multipliers approximate duplicates and condition variance, they do
// not simulate per-card draw odds.
func (k ProductKind) PullMultiplier() float64 {
	switch k {
	case KindEliteTrainerBox:
		return 0.65
	case KindBoosterBox18:
		return 0.70
	case KindSingleBooster:
		return 0.80
	default:
		return 0.75
	}
}

// AnalysisResult is the investment signal for one product. It is a pure
// function of the product and card inputs and is never mutated after
// creation.
type AnalysisResult struct {
	SetName            string          `json:"set_name"`
	ProductName        string          `json:"product_name"`
	Category           ProductCategory `json:"category"`
	Kind               ProductKind     `json:"product_type"`
	PacksPerUnit       int             `json:"packs_per_unit"`
	CurrentPrice       float64         `json:"current_price"`
	EstimatedPullValue float64         `json:"estimated_pull_value"`
	ROIPercent         float64         `json:"roi_percentage"`
	RiskScore          float64         `json:"risk_score"`
	ReleasedAt         string          `json:"release_date"`
	ImageURL           string          `json:"image_url"`
	URL                string          `json:"url"`
}

// SetOutcome records what happened for one requested set. Err is non-nil
// when the set could not be processed at all; the run still continues
// with the remaining sets.
type SetOutcome struct {
	SetName string           `json:"set_name"`
	Results []AnalysisResult `json:"results"`
	Err     error            `json:"-"`
}

// Summary aggregates a finished run.
type Summary struct {
	TotalProducts    int             `json:"total_products"`
	PositiveROICount int             `json:"positive_roi_count"`
	AverageROI       float64         `json:"average_roi"`
	AverageRisk      float64         `json:"average_risk"`
	Best             *AnalysisResult `json:"best_opportunity"`
}

// AnalysisReport is the full output of one analysis run: the flat result
// list sorted by ROI descending, the per-set outcomes, and the summary.
type AnalysisReport struct {
	Results     []AnalysisResult `json:"results"`
	Outcomes    []SetOutcome     `json:"outcomes"`
	Summary     Summary          `json:"summary"`
	GeneratedAt time.Time        `json:"generated_at"`
}
