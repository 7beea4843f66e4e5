package services

import (
	"fmt"
	"strconv"

	"github.com/codyseavey/tcg-roi/internal/catalog"
	"github.com/codyseavey/tcg-roi/internal/models"
)

const productSearchPageSize = 50

// ProductService retrieves sealed products for a set and partitions
// them by category.
type ProductService struct {
	fetcher catalog.Fetcher
}

func NewProductService(fetcher catalog.Fetcher) *ProductService {
	return &ProductService{fetcher: fetcher}
}

// ProductsFor searches the catalog for products matching the set name
// and buckets them. Trainer-box and booster-box buckets are disjoint;
// unrecognized products appear only in All.
func (s *ProductService) ProductsFor(setName string) (models.ProductBuckets, error) {
	env, err := s.fetcher.Fetch("/products", map[string]string{
		"search":   setName,
		"per_page": strconv.Itoa(productSearchPageSize),
	})
	if err != nil {
		return models.ProductBuckets{}, fmt.Errorf("search products for %q: %w", setName, err)
	}

	var payload []productPayload
	if err := env.DecodeData(&payload); err != nil {
		return models.ProductBuckets{}, fmt.Errorf("decode product search for %q: %w", setName, err)
	}

	var buckets models.ProductBuckets
	for _, p := range payload {
		product := p.toProduct()
		buckets.All = append(buckets.All, product)

		switch product.Category {
		case models.CategoryTrainerBox:
			buckets.TrainerBoxes = append(buckets.TrainerBoxes, product)
		case models.CategoryBoosterBox:
			buckets.BoosterBoxes = append(buckets.BoosterBoxes, product)
		}
	}

	return buckets, nil
}
