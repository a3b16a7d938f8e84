package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"github.com/go-redis/redis/v8"
	"sneaker-shop/internal/entity"
	"time"
)

// CatalogCache keeps catalog query results in Redis as JSON with a TTL.
type CatalogCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewCatalogCache(rdb *redis.Client, ttl time.Duration) *CatalogCache {
	return &CatalogCache{
		rdb: rdb,
		ttl: ttl,
	}
}

// Get returns false when the key is absent.
func (c *CatalogCache) Get(ctx context.Context, key string) ([]entity.Sneaker, bool, error) {
	data, err := c.rdb.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, err
	}

	var sneakers []entity.Sneaker
	if err := json.Unmarshal([]byte(data), &sneakers); err != nil {
		return nil, false, fmt.Errorf("unmarshal %s: %w", key, err)
	}
	return sneakers, true, nil
}

func (c *CatalogCache) Set(ctx context.Context, key string, sneakers []entity.Sneaker) error {
	data, err := json.Marshal(sneakers)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, key, data, c.ttl).Err()
}
