package services

import "github.com/codyseavey/tcg-roi/internal/models"

// Wire shapes for the catalog list endpoints. Only the fields the
// analysis needs are decoded.

type episodePayload struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	Slug       string `json:"slug"`
	ReleasedAt string `json:"released_at"`
	CardsTotal int    `json:"cards_total"`
}

func (e episodePayload) toSetDescriptor() models.SetDescriptor {
	return models.SetDescriptor{
		ID:         e.ID,
		Name:       e.Name,
		Slug:       e.Slug,
		ReleasedAt: e.ReleasedAt,
		CardsTotal: e.CardsTotal,
	}
}

type cardPayload struct {
	Name    string             `json:"name"`
	Prices  models.PriceQuotes `json:"prices"`
	Episode episodePayload     `json:"episode"`
}

func (c cardPayload) toCard() models.Card {
	return models.Card{
		Name:    c.Name,
		SetName: c.Episode.Name,
		Prices:  c.Prices,
	}
}

type productPayload struct {
	Name     string             `json:"name"`
	Slug     string             `json:"slug"`
	Image    string             `json:"image"`
	TCGGoURL string             `json:"tcggo_url"`
	Prices   models.PriceQuotes `json:"prices"`
	Episode  episodePayload     `json:"episode"`
}

func (p productPayload) toProduct() models.Product {
	return models.Product{
		Name:       p.Name,
		Category:   models.ClassifyProduct(p.Name),
		Price:      extractedPrice(p.Prices),
		SetName:    p.Episode.Name,
		ReleasedAt: p.Episode.ReleasedAt,
		ImageURL:   p.Image,
		URL:        p.TCGGoURL,
	}
}
