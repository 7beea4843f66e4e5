package services

import (
	"testing"

	"github.com/codyseavey/tcg-roi/internal/models"
)

func TestBestPricePriorityOrder(t *testing.T) {
	tests := []struct {
		name   string
		quotes models.PriceQuotes
		want   float64
	}{
		{
			name: "cardmarket near mint wins over everything",
			quotes: models.PriceQuotes{
				"cardmarket": {"lowest_near_mint": 12.5, "30_days_average": 14.0},
				"tcg_player": {"market_price": 11.0},
			},
			want: 12.5,
		},
		{
			name: "null near mint falls through to 30 day average",
			quotes: models.PriceQuotes{
				"cardmarket": {"lowest_near_mint": nil, "30_days_average": 14.0},
				"tcg_player": {"market_price": 11.0},
			},
			want: 14.0,
		},
		{
			name: "no cardmarket falls through to tcg market price",
			quotes: models.PriceQuotes{
				"tcg_player": {"market_price": 11.0, "high_price": 25.0},
			},
			want: 11.0,
		},
		{
			name: "zero values are skipped along the priority list",
			quotes: models.PriceQuotes{
				"cardmarket": {"lowest_near_mint": 0.0},
				"tcg_player": {"market_price": 0.0, "mid_price": 8.75},
			},
			want: 8.75,
		},
		{
			name: "string prices are coerced",
			quotes: models.PriceQuotes{
				"cardmarket": {"lowest_near_mint": "15.5"},
			},
			want: 15.5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := BestPrice(tt.quotes)
			if !ok {
				t.Fatal("expected a price, got none")
			}
			if got != tt.want {
				t.Errorf("BestPrice() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBestPriceGenericFallback(t *testing.T) {
	// Only a non-priority field holds a positive value; the generic scan
	// must still find it.
	quotes := models.PriceQuotes{
		"cardmarket": {"lowest_near_mint": nil, "trend": 9.99},
	}

	got, ok := BestPrice(quotes)
	if !ok {
		t.Fatal("expected generic fallback to find a price")
	}
	if got != 9.99 {
		t.Errorf("BestPrice() = %v, want 9.99", got)
	}
}

func TestBestPriceGenericFallbackDeterministic(t *testing.T) {
	// Several non-priority fields qualify; the sorted scan must always
	// pick the same one.
	quotes := models.PriceQuotes{
		"zzz_source": {"a_field": 5.0},
		"aaa_source": {"z_field": 3.0, "b_field": 7.0},
	}

	for i := 0; i < 10; i++ {
		got, ok := BestPrice(quotes)
		if !ok {
			t.Fatal("expected a price")
		}
		if got != 7.0 {
			t.Fatalf("BestPrice() = %v, want 7.0 (aaa_source/b_field)", got)
		}
	}
}

func TestBestPriceNone(t *testing.T) {
	tests := []struct {
		name   string
		quotes models.PriceQuotes
	}{
		{"nil bag", nil},
		{"empty bag", models.PriceQuotes{}},
		{
			"all null",
			models.PriceQuotes{
				"cardmarket": {"lowest_near_mint": nil, "30_days_average": nil},
				"tcg_player": {"market_price": nil},
			},
		},
		{
			"non numeric and negative",
			models.PriceQuotes{
				"cardmarket": {"lowest_near_mint": "n/a", "trend": -3.5},
				"tcg_player": {"market_price": false},
			},
		},
		{
			"all zero",
			models.PriceQuotes{
				"cardmarket": {"lowest_near_mint": 0.0},
				"tcg_player": {"market_price": 0},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := BestPrice(tt.quotes)
			if ok {
				t.Errorf("expected no price, got %v", got)
			}
			if got != 0 {
				t.Errorf("price should be zero when absent, got %v", got)
			}
		})
	}
}

func TestExtractedPrice(t *testing.T) {
	if p := extractedPrice(models.PriceQuotes{"cardmarket": {"lowest": 42.0}}); p == nil || *p != 42.0 {
		t.Errorf("extractedPrice() = %v, want 42.0", p)
	}
	if p := extractedPrice(models.PriceQuotes{"cardmarket": {"lowest": nil}}); p != nil {
		t.Errorf("extractedPrice() = %v, want nil", *p)
	}
}
