// Command analyze performs a one-shot ROI analysis over the configured
// watchlist and prints the ranked opportunities.
package main

import (
	"fmt"
	"log"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/codyseavey/tcg-roi/internal/catalog"
	"github.com/codyseavey/tcg-roi/internal/config"
	"github.com/codyseavey/tcg-roi/internal/services"
)

const topDisplayCount = 15

func main() {
	cfg := config.Load()

	if cfg.RapidAPIKey == "" {
		log.Fatal("RAPIDAPI_KEY is not set")
	}

	client := catalog.NewClient(cfg.RapidAPIKey)
	if err := client.Ping(); err != nil {
		log.Fatalf("Cannot reach catalog API: %v", err)
	}

	resolver := services.NewSetResolver(client)
	cardService := services.NewCardService(client, resolver, services.CardStrategy(cfg.CardStrategy))
	productService := services.NewProductService(client)
	analysisService := services.NewAnalysisService(cardService, productService, services.NewAnalyzer())

	sets := cfg.Watchlist
	if len(os.Args) > 1 {
		sets = os.Args[1:]
	}

	log.Printf("Analyzing %d sets...", len(sets))
	report := analysisService.Run(sets, cfg.TopCardLimit)

	if len(report.Results) == 0 {
		log.Println("No results. Check the API key and the requested set names.")
		for _, o := range report.Outcomes {
			if o.Err != nil {
				log.Printf("  %s: %v", o.SetName, o.Err)
			}
		}
		os.Exit(1)
	}

	fmt.Printf("\nTOP %d INVESTMENT OPPORTUNITIES\n", topDisplayCount)
	fmt.Println(strings.Repeat("=", 80))

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "#\tPRODUCT\tPRICE\tEST. PULL\tROI %\tRISK\tSET")
	for i, r := range report.Results {
		if i == topDisplayCount {
			break
		}
		fmt.Fprintf(w, "%d\t%s\t%.2f\t%.2f\t%.2f\t%.1f\t%s\n",
			i+1, r.ProductName, r.CurrentPrice, r.EstimatedPullValue, r.ROIPercent, r.RiskScore, r.SetName)
	}
	w.Flush()

	s := report.Summary
	fmt.Println()
	fmt.Println(strings.Repeat("=", 80))
	fmt.Printf("Products analyzed: %d\n", s.TotalProducts)
	fmt.Printf("Positive ROI: %d\n", s.PositiveROICount)
	fmt.Printf("Average ROI: %.1f%%\n", s.AverageROI)
	fmt.Printf("Average risk: %.1f/5\n", s.AverageRisk)
	if s.Best != nil {
		fmt.Printf("Best opportunity: %s (%.2f%% ROI, risk %.1f)\n",
			s.Best.ProductName, s.Best.ROIPercent, s.Best.RiskScore)
	}

	for _, o := range report.Outcomes {
		if o.Err != nil {
			fmt.Printf("Skipped %q: %v\n", o.SetName, o.Err)
		}
	}
}
