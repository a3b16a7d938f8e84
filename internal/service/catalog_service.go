package service

import (
	"context"
	"fmt"
	"sneaker-shop/internal/entity"
	"sneaker-shop/internal/repository"
	"strings"
)

const popularKey = "sneakers:popular"

// CatalogCache stores computed catalog query results.
type CatalogCache interface {
	Get(ctx context.Context, key string) ([]entity.Sneaker, bool, error)
	Set(ctx context.Context, key string, sneakers []entity.Sneaker) error
}

type CatalogService struct {
	catalog *repository.CatalogRepository
	cache   CatalogCache
}

// NewCatalogService creates a new instance of CatalogService. cache may be nil.
func NewCatalogService(catalog *repository.CatalogRepository, cache CatalogCache) *CatalogService {
	return &CatalogService{
		catalog: catalog,
		cache:   cache,
	}
}

// ListAll returns the whole catalog in store order.
func (s *CatalogService) ListAll(ctx context.Context) []entity.Sneaker {
	return s.catalog.GetSneakers()
}

// ListPopular returns the sneakers flagged as popular.
func (s *CatalogService) ListPopular(ctx context.Context) []entity.Sneaker {
	return s.cached(ctx, popularKey, s.popular)
}

// ListByCategory matches the category name case-insensitively.
func (s *CatalogService) ListByCategory(ctx context.Context, category string) ([]entity.Sneaker, error) {
	if category == "" {
		return nil, fmt.Errorf("%w: category parameter is required", ErrBadRequest)
	}

	return s.cached(ctx, categoryKey(category), func() []entity.Sneaker {
		return s.byCategory(category)
	}), nil
}

// Search matches query as a case-insensitive substring of name or description.
// An empty query matches everything. Search results are not cached since the
// key space is caller-controlled.
func (s *CatalogService) Search(ctx context.Context, query string) []entity.Sneaker {
	if query == "" {
		return s.ListAll(ctx)
	}

	q := strings.ToLower(query)
	return s.filter(func(sn entity.Sneaker) bool {
		return strings.Contains(strings.ToLower(sn.Name), q) ||
			strings.Contains(strings.ToLower(sn.Description), q)
	})
}

// PreWarmCache writes the popular list and every category to the cache,
// replacing whatever an earlier process left under the same keys.
func (s *CatalogService) PreWarmCache(ctx context.Context) {
	if s.cache == nil {
		return
	}

	s.store(ctx, popularKey, s.popular())
	seen := map[string]bool{}
	for _, sn := range s.catalog.GetSneakers() {
		category := strings.ToLower(sn.Category)
		if category == "" || seen[category] {
			continue
		}
		seen[category] = true
		s.store(ctx, categoryKey(category), s.byCategory(category))
	}
	logger.Info().Msgf("Catalog cache warmed with %d categories", len(seen))
}

func categoryKey(category string) string {
	return fmt.Sprintf("sneakers:category:%s", strings.ToLower(category))
}

func (s *CatalogService) popular() []entity.Sneaker {
	return s.filter(func(sn entity.Sneaker) bool { return sn.IsPopular })
}

func (s *CatalogService) byCategory(category string) []entity.Sneaker {
	return s.filter(func(sn entity.Sneaker) bool { return strings.EqualFold(sn.Category, category) })
}

func (s *CatalogService) filter(keep func(entity.Sneaker) bool) []entity.Sneaker {
	out := []entity.Sneaker{}
	for _, sn := range s.catalog.GetSneakers() {
		if keep(sn) {
			out = append(out, sn)
		}
	}
	return out
}

func (s *CatalogService) cached(ctx context.Context, key string, compute func() []entity.Sneaker) []entity.Sneaker {
	if s.cache == nil {
		return compute()
	}

	sneakers, ok, err := s.cache.Get(ctx, key)
	if err != nil {
		logger.Error().Err(err).Msgf("Error getting %s from cache", key)
	}
	if ok {
		return sneakers
	}

	sneakers = compute()
	s.store(ctx, key, sneakers)
	return sneakers
}

func (s *CatalogService) store(ctx context.Context, key string, sneakers []entity.Sneaker) {
	if err := s.cache.Set(ctx, key, sneakers); err != nil {
		logger.Error().Err(err).Msgf("Error setting %s in cache", key)
	}
}
