package services

import (
	"math"
	"time"

	"github.com/codyseavey/tcg-roi/internal/models"
)

const daysPerMonth = 30.44

// Analyzer turns a product and its set's top cards into an investment
// signal. It is stateless apart from the injectable clock.
type Analyzer struct {
	now func() time.Time
}

func NewAnalyzer() *Analyzer {
	return &Analyzer{now: time.Now}
}

// Analyze scores one product against the set's top cards. Returns nil
// when the product has no strictly-positive price; such products are
// excluded, not errored. The result is a pure function of the inputs
// and the clock.
func (a *Analyzer) Analyze(product models.Product, topCards []models.Card) *models.AnalysisResult {
	if product.Price == nil || *product.Price <= 0 {
		return nil
	}
	currentPrice := *product.Price

	kind := models.ClassifyProductKind(product.Name)
	packs := kind.PacksPerUnit()

	estimated := a.estimatedPullValue(topCards, kind, packs)
	roi := roiPercent(estimated, currentPrice)
	risk := a.riskScore(currentPrice, product.ReleasedAt, kind)

	return &models.AnalysisResult{
		SetName:            product.SetName,
		ProductName:        product.Name,
		Category:           product.Category,
		Kind:               kind,
		PacksPerUnit:       packs,
		CurrentPrice:       currentPrice,
		EstimatedPullValue: estimated,
		ROIPercent:         roi,
		RiskScore:          risk,
		ReleasedAt:         product.ReleasedAt,
		ImageURL:           product.ImageURL,
		URL:                product.URL,
	}
}

// estimatedPullValue is the mean of the positive card prices, scaled by
// the kind's pull multiplier and the pack count.
func (a *Analyzer) estimatedPullValue(topCards []models.Card, kind models.ProductKind, packs int) float64 {
	if len(topCards) == 0 || packs <= 0 {
		return 0
	}

	var total float64
	var count int
	for _, card := range topCards {
		if price, ok := BestPrice(card.Prices); ok {
			total += price
			count++
		}
	}
	if count == 0 {
		return 0
	}

	avg := total / float64(count)
	return round2(avg * kind.PullMultiplier() * float64(packs))
}

// roiPercent is ((estimated - price) / price) * 100. Zero when the price
// is non-positive; Analyze already filters those, this is a floor.
func roiPercent(estimated, currentPrice float64) float64 {
	if currentPrice <= 0 {
		return 0
	}
	return round2((estimated - currentPrice) / currentPrice * 100)
}

// riskScore builds a 1.0-5.0 heuristic from set age, price level, and
// product type, starting from a 3.0 mid-scale.
func (a *Analyzer) riskScore(currentPrice float64, releasedAt string, kind models.ProductKind) float64 {
	risk := 3.0

	if releasedAt != "" {
		release, err := time.Parse("2006-01-02", releasedAt)
		if err != nil {
			risk += 0.2
		} else {
			ageMonths := a.now().Sub(release).Hours() / 24 / daysPerMonth
			switch {
			case ageMonths < 6:
				risk += 0.5
			case ageMonths < 18:
				risk -= 0.5
			case ageMonths > 36:
				risk += 1.0
			}
		}
	}

	switch {
	case currentPrice > 300:
		risk += 1.0
	case currentPrice > 150:
		risk += 0.5
	case currentPrice < 50:
		risk += 0.3
	}

	// Fewer packs per unit means more variance.
	if kind == models.KindEliteTrainerBox {
		risk += 0.3
	}

	risk = math.Max(1.0, math.Min(5.0, risk))
	return round1(risk)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
