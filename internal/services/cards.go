package services

import (
	"fmt"
	"log"
	"sort"
	"strconv"

	"github.com/codyseavey/tcg-roi/internal/catalog"
	"github.com/codyseavey/tcg-roi/internal/models"
)

const (
	cardPageSize = 20

	// maxCardPages bounds per-set card pagination; exceeding it keeps
	// whatever was collected instead of failing.
	maxCardPages = 50

	cardSearchPageSize = 50
)

// CardStrategy selects how top cards are retrieved for a set.
type CardStrategy string

const (
	// CardStrategyResolve resolves the set first, then pages through
	// every card tagged with its identifier. Complete but many round
	// trips.
	CardStrategyResolve CardStrategy = "resolve"

	// CardStrategySearch issues a single text search for the set name.
	// One round trip, but may miss cards that don't match the literal
	// term.
	CardStrategySearch CardStrategy = "search"
)

// CardService retrieves and ranks the most valuable cards of a set.
type CardService struct {
	fetcher  catalog.Fetcher
	resolver *SetResolver
	strategy CardStrategy
}

// NewCardService creates a card service using the given retrieval
// strategy. An unrecognized strategy falls back to resolve-then-page.
func NewCardService(fetcher catalog.Fetcher, resolver *SetResolver, strategy CardStrategy) *CardService {
	if strategy != CardStrategySearch {
		strategy = CardStrategyResolve
	}
	return &CardService{
		fetcher:  fetcher,
		resolver: resolver,
		strategy: strategy,
	}
}

// TopCards returns up to limit cards of the set ordered by extracted
// price descending. Cards without a usable price are dropped. A set that
// cannot be resolved yields an empty slice, not an error.
func (s *CardService) TopCards(setName string, limit int) ([]models.Card, error) {
	if limit <= 0 {
		return nil, nil
	}

	var cards []models.Card
	switch s.strategy {
	case CardStrategySearch:
		found, err := s.searchCards(setName)
		if err != nil {
			return nil, err
		}
		cards = found
	default:
		set, found, err := s.resolver.Resolve(setName)
		if err != nil {
			return nil, err
		}
		if !found {
			return nil, nil
		}
		cards = s.allCardsForSet(set.ID)
	}

	return rankCards(cards, limit), nil
}

// allCardsForSet pages through every card of a set. Page fetch errors
// truncate to best effort; partial data still ranks.
func (s *CardService) allCardsForSet(setID int) []models.Card {
	var all []models.Card

	for page := 0; page < maxCardPages; page++ {
		env, err := s.fetcher.Fetch("/cards", map[string]string{
			"episode_id": strconv.Itoa(setID),
			"page":       strconv.Itoa(page),
			"per_page":   strconv.Itoa(cardPageSize),
		})
		if err != nil {
			log.Printf("Card service: page %d for set %d failed: %v", page, setID, err)
			break
		}

		var payload []cardPayload
		if err := env.DecodeData(&payload); err != nil {
			log.Printf("Card service: decode page %d for set %d failed: %v", page, setID, err)
			break
		}
		if len(payload) == 0 {
			break
		}

		for _, c := range payload {
			all = append(all, c.toCard())
		}

		if env.Paging.Current >= env.Paging.Total {
			break
		}
	}

	return all
}

// searchCards issues one text search for the set name.
func (s *CardService) searchCards(setName string) ([]models.Card, error) {
	env, err := s.fetcher.Fetch("/cards", map[string]string{
		"search":   setName,
		"per_page": strconv.Itoa(cardSearchPageSize),
	})
	if err != nil {
		return nil, fmt.Errorf("search cards for %q: %w", setName, err)
	}

	var payload []cardPayload
	if err := env.DecodeData(&payload); err != nil {
		return nil, fmt.Errorf("decode card search for %q: %w", setName, err)
	}

	cards := make([]models.Card, 0, len(payload))
	for _, c := range payload {
		cards = append(cards, c.toCard())
	}
	return cards, nil
}

// rankCards keeps strictly-positive-priced cards, sorts them by price
// descending with upstream order breaking ties, and truncates to limit.
func rankCards(cards []models.Card, limit int) []models.Card {
	type pricedCard struct {
		card  models.Card
		price float64
	}

	priced := make([]pricedCard, 0, len(cards))
	for _, card := range cards {
		if price, ok := BestPrice(card.Prices); ok {
			priced = append(priced, pricedCard{card: card, price: price})
		}
	}

	sort.SliceStable(priced, func(i, j int) bool {
		return priced[i].price > priced[j].price
	})

	if len(priced) > limit {
		priced = priced[:limit]
	}

	top := make([]models.Card, len(priced))
	for i, p := range priced {
		top[i] = p.card
	}
	return top
}
