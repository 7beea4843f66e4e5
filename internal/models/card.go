package models

// PriceQuotes maps a marketplace source (e.g. "cardmarket", "tcg_player")
// to that source's price fields. Field values come straight from the
// catalog JSON and may be numbers, strings, or null.
type PriceQuotes map[string]map[string]any

// Card is a single card within a set, carrying its raw price quotes.
type Card struct {
	Name    string      `json:"name"`
	SetName string      `json:"set_name"`
	Prices  PriceQuotes `json:"prices"`
}
