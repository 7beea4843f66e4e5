package services

import (
	"encoding/json"
	"sort"
	"strconv"

	"github.com/codyseavey/tcg-roi/internal/models"
)

// priceCandidate is one (source, field) pair in the extraction priority
// list.
type priceCandidate struct {
	source string
	field  string
}

// pricePriority is tried in order before the generic scan. Cardmarket's
// near-mint low is the most trustworthy signal, then its averages, then
// TCGPlayer from market price down to high.
var pricePriority = []priceCandidate{
	{"cardmarket", "lowest_near_mint"},
	{"cardmarket", "30_days_average"},
	{"cardmarket", "7_days_average"},
	{"cardmarket", "1_day_average"},
	{"tcg_player", "market_price"},
	{"tcg_player", "mid_price"},
	{"tcg_player", "low_price"},
	{"tcg_player", "high_price"},
}

// BestPrice extracts the best usable price from a quote bag. It walks
// the priority list first and accepts the first strictly-positive value;
// if nothing there qualifies, it scans every field of every source in
// sorted order. Returns (0, false) when no field holds a positive number.
func BestPrice(quotes models.PriceQuotes) (float64, bool) {
	if len(quotes) == 0 {
		return 0, false
	}

	for _, cand := range pricePriority {
		fields, ok := quotes[cand.source]
		if !ok {
			continue
		}
		if price, ok := coercePrice(fields[cand.field]); ok {
			return price, true
		}
	}

	// Generic fallback: sorted source and field order keeps the scan
	// deterministic across runs.
	sources := make([]string, 0, len(quotes))
	for source := range quotes {
		sources = append(sources, source)
	}
	sort.Strings(sources)

	for _, source := range sources {
		fields := quotes[source]
		names := make([]string, 0, len(fields))
		for name := range fields {
			names = append(names, name)
		}
		sort.Strings(names)

		for _, name := range names {
			if price, ok := coercePrice(fields[name]); ok {
				return price, true
			}
		}
	}

	return 0, false
}

// coercePrice converts a raw quote field to a strictly-positive float.
// Null, non-numeric, zero, and negative values are all rejected.
func coercePrice(v any) (float64, bool) {
	var price float64

	switch val := v.(type) {
	case float64:
		price = val
	case float32:
		price = float64(val)
	case int:
		price = float64(val)
	case int64:
		price = float64(val)
	case json.Number:
		f, err := val.Float64()
		if err != nil {
			return 0, false
		}
		price = f
	case string:
		f, err := strconv.ParseFloat(val, 64)
		if err != nil {
			return 0, false
		}
		price = f
	default:
		return 0, false
	}

	if price <= 0 {
		return 0, false
	}
	return price, true
}

// extractedPrice returns the product price as a pointer, nil when no
// usable quote exists.
func extractedPrice(quotes models.PriceQuotes) *float64 {
	price, ok := BestPrice(quotes)
	if !ok {
		return nil
	}
	return &price
}
