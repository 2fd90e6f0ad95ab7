package cache

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"

	"ms-events/internal/models"
)

const keyPrefix = "winners:"

// Cache is a read-through Redis cache for winners records, keyed by event
// id. Misses and Redis being down both surface as a plain miss so the
// service can always fall back to the store.
type Cache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewCache(client *redis.Client) *Cache {
	return &Cache{
		Client: client,
		TTL:    cacheTTL(),
	}
}

// cacheTTL reads WINNERS_CACHE_TTL_MINUTES, defaulting to 10 minutes.
func cacheTTL() time.Duration {
	defaultTTL := 10 * time.Minute

	ttlStr := os.Getenv("WINNERS_CACHE_TTL_MINUTES")
	if ttlStr == "" {
		return defaultTTL
	}
	ttlMin, err := strconv.Atoi(ttlStr)
	if err != nil || ttlMin <= 0 {
		return defaultTTL
	}
	return time.Duration(ttlMin) * time.Minute
}

// Get returns the cached winners for an event, or found=false on a miss.
func (c *Cache) Get(eventID string) (*models.Winners, bool) {
	val, err := c.Client.Get(context.Background(), keyPrefix+eventID).Result()
	if err != nil {
		// redis.Nil is an ordinary miss; anything else degrades to one
		return nil, false
	}

	var winners models.Winners
	if err := json.Unmarshal([]byte(val), &winners); err != nil {
		return nil, false
	}
	return &winners, true
}

// Set stores the winners record under its event key with the cache TTL.
func (c *Cache) Set(winners models.Winners) error {
	data, err := json.Marshal(winners)
	if err != nil {
		return err
	}
	return c.Client.Set(context.Background(), keyPrefix+winners.EventID, data, c.TTL).Err()
}

// Invalidate drops the cached entry for an event.
func (c *Cache) Invalidate(eventID string) error {
	err := c.Client.Del(context.Background(), keyPrefix+eventID).Err()
	if err != nil && !errors.Is(err, redis.Nil) {
		return err
	}
	return nil
}
