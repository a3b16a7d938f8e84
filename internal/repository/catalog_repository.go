package repository

import (
	"sneaker-shop/internal/entity"
)

// DefaultSneakers is the catalog the shop starts with when no database is configured.
var DefaultSneakers = []entity.Sneaker{
	{
		ID:          1,
		Name:        "Nike Air Max",
		Description: "Classic sneakers",
		Price:       732.0,
		ImageURL:    "mainsneakers",
		Category:    "Popular",
		IsPopular:   true,
		Quantity:    1,
	},
	{
		ID:          2,
		Name:        "Adidas Ultraboost",
		Description: "Running shoes",
		Price:       850.0,
		ImageURL:    "mainsneakers",
		Category:    "Popular",
		Quantity:    1,
	},
	{
		ID:          3,
		Name:        "Abibas Crossovok",
		Description: "mega chill",
		Price:       999.0,
		ImageURL:    "mainsneakers",
		Category:    "Outdoor",
		IsPopular:   true,
		Quantity:    1,
	},
}

// CatalogRepository holds the seeded sneakers. It is never mutated after
// construction, so reads need no locking.
type CatalogRepository struct {
	sneakers []entity.Sneaker
	byID     map[int]int
}

func NewCatalogRepository(sneakers []entity.Sneaker) *CatalogRepository {
	r := &CatalogRepository{
		sneakers: append([]entity.Sneaker{}, sneakers...),
		byID:     make(map[int]int, len(sneakers)),
	}
	for i, s := range r.sneakers {
		r.byID[s.ID] = i
	}
	return r
}

// GetSneakers returns a copy of the catalog in store order.
func (r *CatalogRepository) GetSneakers() []entity.Sneaker {
	return append([]entity.Sneaker{}, r.sneakers...)
}

func (r *CatalogRepository) GetSneakerByID(id int) (entity.Sneaker, bool) {
	i, ok := r.byID[id]
	if !ok {
		return entity.Sneaker{}, false
	}
	return r.sneakers[i], true
}

func (r *CatalogRepository) Exists(id int) bool {
	_, ok := r.byID[id]
	return ok
}
