package services

import (
	"log"
	"sort"
	"time"

	"github.com/codyseavey/tcg-roi/internal/metrics"
	"github.com/codyseavey/tcg-roi/internal/models"
)

// AnalysisService orchestrates a full run over a list of requested sets.
// Sets are processed sequentially; a failing set is recorded and skipped,
// never fatal.
type AnalysisService struct {
	cards    *CardService
	products *ProductService
	analyzer *Analyzer
}

func NewAnalysisService(cards *CardService, products *ProductService, analyzer *Analyzer) *AnalysisService {
	return &AnalysisService{
		cards:    cards,
		products: products,
		analyzer: analyzer,
	}
}

// Run analyzes every requested set and returns the report: all results
// sorted by ROI descending (stable on ties), the per-set outcomes, and
// summary statistics.
func (s *AnalysisService) Run(setNames []string, limitPerSet int) models.AnalysisReport {
	start := time.Now()

	outcomes := make([]models.SetOutcome, 0, len(setNames))
	var results []models.AnalysisResult

	for _, name := range setNames {
		outcome := s.analyzeSet(name, limitPerSet)
		if outcome.Err != nil {
			log.Printf("Analysis: set %q failed: %v", name, outcome.Err)
			metrics.AnalysisSetFailuresTotal.Inc()
		}
		outcomes = append(outcomes, outcome)
		results = append(results, outcome.Results...)
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].ROIPercent > results[j].ROIPercent
	})

	report := models.AnalysisReport{
		Results:     results,
		Outcomes:    outcomes,
		Summary:     summarize(results),
		GeneratedAt: time.Now(),
	}

	metrics.AnalysisRunsTotal.Inc()
	metrics.AnalysisRunDuration.Observe(time.Since(start).Seconds())
	metrics.ProductsAnalyzedTotal.Add(float64(len(results)))

	log.Printf("Analysis: run complete, %d products from %d sets in %v",
		len(results), len(setNames), time.Since(start).Round(time.Millisecond))

	return report
}

// analyzeSet processes one set: products, top cards, then one analysis
// per trainer box and booster box. Uncategorized products are skipped.
func (s *AnalysisService) analyzeSet(setName string, limitPerSet int) models.SetOutcome {
	outcome := models.SetOutcome{SetName: setName}

	buckets, err := s.products.ProductsFor(setName)
	if err != nil {
		outcome.Err = err
		return outcome
	}

	topCards, err := s.cards.TopCards(setName, limitPerSet)
	if err != nil {
		outcome.Err = err
		return outcome
	}

	for _, product := range buckets.TrainerBoxes {
		if result := s.analyzer.Analyze(product, topCards); result != nil {
			outcome.Results = append(outcome.Results, *result)
		}
	}
	for _, product := range buckets.BoosterBoxes {
		if result := s.analyzer.Analyze(product, topCards); result != nil {
			outcome.Results = append(outcome.Results, *result)
		}
	}

	log.Printf("Analysis: %q produced %d results (%d trainer boxes, %d booster boxes, %d top cards)",
		setName, len(outcome.Results), len(buckets.TrainerBoxes), len(buckets.BoosterBoxes), len(topCards))

	return outcome
}

// summarize computes aggregate statistics; averages are rounded to one
// decimal. Best is the first (highest-ROI) result.
func summarize(results []models.AnalysisResult) models.Summary {
	summary := models.Summary{TotalProducts: len(results)}
	if len(results) == 0 {
		return summary
	}

	var roiTotal, riskTotal float64
	for _, r := range results {
		if r.ROIPercent > 0 {
			summary.PositiveROICount++
		}
		roiTotal += r.ROIPercent
		riskTotal += r.RiskScore
	}

	summary.AverageROI = round1(roiTotal / float64(len(results)))
	summary.AverageRisk = round1(riskTotal / float64(len(results)))

	best := results[0]
	summary.Best = &best

	return summary
}
