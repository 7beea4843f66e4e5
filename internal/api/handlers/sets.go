package handlers

import (
	"net/http"
	"sort"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/codyseavey/tcg-roi/internal/services"
)

type SetHandler struct {
	resolver *services.SetResolver
	cards    *services.CardService
	products *services.ProductService
}

func NewSetHandler(resolver *services.SetResolver, cards *services.CardService, products *services.ProductService) *SetHandler {
	return &SetHandler{
		resolver: resolver,
		cards:    cards,
		products: products,
	}
}

// ListSets returns every known set, newest release first.
func (h *SetHandler) ListSets(c *gin.Context) {
	sets, err := h.resolver.ListSets()
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	sort.SliceStable(sets, func(i, j int) bool {
		return sets[i].ReleasedAt > sets[j].ReleasedAt
	})

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"total_sets": len(sets),
		"sets":       sets,
	})
}

// ResolveSet returns ranked resolution candidates for a set name.
func (h *SetHandler) ResolveSet(c *gin.Context) {
	name := c.Param("name")

	candidates, err := h.resolver.ResolveCandidates(name)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	if len(candidates) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "no matching set"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"candidates": candidates,
	})
}

// TopCards returns the most valuable cards of a set, price descending.
func (h *SetHandler) TopCards(c *gin.Context) {
	name := c.Param("name")

	limit := 20
	if v, err := strconv.Atoi(c.Query("limit")); err == nil && v > 0 {
		limit = v
	}

	cards, err := h.cards.TopCards(name, limit)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"count":   len(cards),
		"cards":   cards,
	})
}

// Products returns the set's sealed products, bucketed by category.
func (h *SetHandler) Products(c *gin.Context) {
	name := c.Param("name")

	buckets, err := h.products.ProductsFor(name)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":       true,
		"trainer_boxes": buckets.TrainerBoxes,
		"booster_boxes": buckets.BoosterBoxes,
		"all":           buckets.All,
	})
}
