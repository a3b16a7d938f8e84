package service

import (
	"context"
	"errors"
	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"sneaker-shop/internal/cache"
	"sneaker-shop/internal/entity"
	"sneaker-shop/internal/repository"
	"testing"
	"time"
)

type mapCache struct {
	data   map[string][]entity.Sneaker
	gets   int
	getErr error
}

func newMapCache() *mapCache {
	return &mapCache{data: map[string][]entity.Sneaker{}}
}

func (c *mapCache) Get(ctx context.Context, key string) ([]entity.Sneaker, bool, error) {
	c.gets++
	if c.getErr != nil {
		return nil, false, c.getErr
	}
	v, ok := c.data[key]
	return v, ok, nil
}

func (c *mapCache) Set(ctx context.Context, key string, sneakers []entity.Sneaker) error {
	c.data[key] = sneakers
	return nil
}

func ids(sneakers []entity.Sneaker) []int {
	out := []int{}
	for _, s := range sneakers {
		out = append(out, s.ID)
	}
	return out
}

func TestCatalogService_Lists(t *testing.T) {
	ctx := context.Background()
	svc := NewCatalogService(repository.NewCatalogRepository(repository.DefaultSneakers), nil)

	assert.Equal(t, []int{1, 2, 3}, ids(svc.ListAll(ctx)))
	assert.Equal(t, []int{1, 3}, ids(svc.ListPopular(ctx)))

	byCategory, err := svc.ListByCategory(ctx, "popular")
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, ids(byCategory))

	byCategory, err = svc.ListByCategory(ctx, "OUTDOOR")
	require.NoError(t, err)
	assert.Equal(t, []int{3}, ids(byCategory))

	byCategory, err = svc.ListByCategory(ctx, "Outdo")
	require.NoError(t, err)
	assert.Empty(t, byCategory, "category match is exact")

	_, err = svc.ListByCategory(ctx, "")
	assert.ErrorIs(t, err, ErrBadRequest)
}

func TestCatalogService_Search(t *testing.T) {
	ctx := context.Background()
	svc := NewCatalogService(repository.NewCatalogRepository(repository.DefaultSneakers), nil)

	assert.Equal(t, []int{1}, ids(svc.Search(ctx, "air")))
	assert.Equal(t, []int{2}, ids(svc.Search(ctx, "RUNNING")))
	assert.Equal(t, []int{3}, ids(svc.Search(ctx, "chill")))
	assert.Equal(t, []int{1, 2, 3}, ids(svc.Search(ctx, "")))
	assert.Empty(t, svc.Search(ctx, "boots"))
}

func TestCatalogService_UsesCache(t *testing.T) {
	ctx := context.Background()
	mc := newMapCache()
	svc := NewCatalogService(repository.NewCatalogRepository(repository.DefaultSneakers), mc)

	svc.PreWarmCache(ctx)
	assert.Contains(t, mc.data, "sneakers:popular")
	assert.Contains(t, mc.data, "sneakers:category:popular")
	assert.Contains(t, mc.data, "sneakers:category:outdoor")

	mc.data["sneakers:category:outdoor"] = []entity.Sneaker{{ID: 42}}
	got, err := svc.ListByCategory(ctx, "Outdoor")
	require.NoError(t, err)
	assert.Equal(t, []int{42}, ids(got), "cached result is served")
}

func TestCatalogService_SearchSkipsCache(t *testing.T) {
	ctx := context.Background()
	mc := newMapCache()
	svc := NewCatalogService(repository.NewCatalogRepository(repository.DefaultSneakers), mc)

	assert.Equal(t, []int{1}, ids(svc.Search(ctx, "air")))
	assert.Equal(t, []int{1}, ids(svc.Search(ctx, "AIR")))
	assert.Zero(t, mc.gets)
	assert.Empty(t, mc.data)
}

func TestCatalogService_PreWarmReplacesStaleEntries(t *testing.T) {
	ctx := context.Background()
	mc := newMapCache()
	mc.data["sneakers:popular"] = []entity.Sneaker{{ID: 1, IsPopular: true}}
	mc.data["sneakers:category:outdoor"] = []entity.Sneaker{{ID: 3, Category: "Outdoor"}}

	restocked := []entity.Sneaker{
		{ID: 7, Name: "Puma Suede", Price: 420, Category: "Outdoor", IsPopular: true, Quantity: 1},
	}
	svc := NewCatalogService(repository.NewCatalogRepository(restocked), mc)
	svc.PreWarmCache(ctx)

	assert.Equal(t, []int{7}, ids(svc.ListPopular(ctx)))
	outdoor, err := svc.ListByCategory(ctx, "outdoor")
	require.NoError(t, err)
	assert.Equal(t, []int{7}, ids(outdoor))
}

func TestCatalogService_PreWarmReplacesStaleRedisEntries(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	previous := NewCatalogService(
		repository.NewCatalogRepository(repository.DefaultSneakers),
		cache.NewCatalogCache(rdb, time.Minute),
	)
	previous.PreWarmCache(ctx)
	require.True(t, mr.Exists("sneakers:popular"))

	restocked := []entity.Sneaker{
		{ID: 7, Name: "Puma Suede", Price: 420, Category: "Outdoor", IsPopular: true, Quantity: 1},
		{ID: 8, Name: "Vans Old Skool", Price: 380, Category: "Skate", Quantity: 1},
	}
	svc := NewCatalogService(
		repository.NewCatalogRepository(restocked),
		cache.NewCatalogCache(rdb, time.Minute),
	)
	svc.PreWarmCache(ctx)

	assert.Equal(t, []int{7, 8}, ids(svc.ListAll(ctx)))
	assert.Equal(t, []int{7}, ids(svc.ListPopular(ctx)))
	outdoor, err := svc.ListByCategory(ctx, "Outdoor")
	require.NoError(t, err)
	assert.Equal(t, []int{7}, ids(outdoor))
}

func TestCatalogService_CacheErrorFallsThrough(t *testing.T) {
	ctx := context.Background()
	mc := newMapCache()
	mc.getErr = errors.New("redis down")
	svc := NewCatalogService(repository.NewCatalogRepository(repository.DefaultSneakers), mc)

	assert.Equal(t, []int{1, 3}, ids(svc.ListPopular(ctx)))
	assert.Equal(t, 1, mc.gets)
}
