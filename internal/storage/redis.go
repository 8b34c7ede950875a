package storage

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"zomighty/internal/domain"
)

// RedisCache keeps restaurant-with-menu reads off the database. Entries are
// invalidated whenever the catalog changes, so a stale TTL only matters
// after a missed invalidation.
type RedisCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{Client: client, TTL: ttl}
}

func (c *RedisCache) RestaurantKey(id int) string {
	return "restaurant:" + strconv.Itoa(id)
}

func (c *RedisCache) GetRestaurant(ctx context.Context, key string) (*domain.Restaurant, error) {
	data, err := c.Client.Get(ctx, key).Bytes()
	if err != nil {
		return nil, err
	}
	var rest domain.Restaurant
	if err := json.Unmarshal(data, &rest); err != nil {
		return nil, err
	}
	return &rest, nil
}

func (c *RedisCache) SetRestaurant(ctx context.Context, key string, rest *domain.Restaurant) error {
	data, err := json.Marshal(rest)
	if err != nil {
		return err
	}
	return c.Client.Set(ctx, key, data, c.TTL).Err()
}

func (c *RedisCache) Invalidate(ctx context.Context, key string) error {
	return c.Client.Del(ctx, key).Err()
}
