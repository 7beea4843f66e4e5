package models

// SetDescriptor is a card set (episode) as reported by the catalog service.
// Descriptors are fetched wholesale and never mutated locally.
type SetDescriptor struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	Slug       string `json:"slug"`
	ReleasedAt string `json:"released_at"` // ISO date, may be empty
	CardsTotal int    `json:"cards_total"`
}

// SetCandidate pairs a descriptor with a match confidence in (0, 1].
// Candidates preserve upstream order for equal scores.
type SetCandidate struct {
	Set   SetDescriptor `json:"set"`
	Score float64       `json:"score"`
}
