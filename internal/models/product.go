package models

import "strings"

// ProductCategory buckets a sealed product by what its name says it is.
type ProductCategory string

const (
	CategoryTrainerBox ProductCategory = "Elite Trainer Box"
	CategoryBoosterBox ProductCategory = "Booster Box"
	CategoryOther      ProductCategory = "Other"
)

// ClassifyProduct derives the category from the product name.
// "elite trainer box"/"etb" wins over "booster box", so a product can
// never land in both boxed buckets.
func ClassifyProduct(name string) ProductCategory {
	lower := strings.ToLower(name)

	if strings.Contains(lower, "elite trainer box") || strings.Contains(lower, "etb") {
		return CategoryTrainerBox
	}
	if strings.Contains(lower, "booster box") && !strings.Contains(lower, "elite trainer") {
		return CategoryBoosterBox
	}
	return CategoryOther
}

// Product is a sealed product from the catalog search. Price is nil when
// no usable quote could be extracted; such products are excluded from
// analysis rather than errored.
type Product struct {
	Name       string          `json:"name"`
	Category   ProductCategory `json:"category"`
	Price      *float64        `json:"price"`
	SetName    string          `json:"set_name"`
	ReleasedAt string          `json:"released_at"`
	ImageURL   string          `json:"image_url"`
	URL        string          `json:"url"`
}

// ProductBuckets is the result of a product search, partitioned by
// category. All always contains every returned product.
type ProductBuckets struct {
	TrainerBoxes []Product `json:"trainer_boxes"`
	BoosterBoxes []Product `json:"booster_boxes"`
	All          []Product `json:"all"`
}
