package patients

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const cacheKeyPrefix = "patient:"

// Cache is a read-through Redis cache for patient records. A nil *Cache is
// valid and always misses, so the repository works without Redis.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCache creates a patient cache with the given TTL.
func NewCache(client *redis.Client, ttl time.Duration) *Cache {
	if client == nil {
		return nil
	}
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &Cache{client: client, ttl: ttl}
}

func (c *Cache) key(id string) string {
	return cacheKeyPrefix + id
}

// cacheEntry carries the raw plan field alongside the patient, which the
// Patient JSON shape itself deliberately omits.
type cacheEntry struct {
	Patient Patient `json:"patient"`
	PlanRaw string  `json:"planRaw"`
}

// Get returns the cached patient, or (nil, nil) on a miss.
func (c *Cache) Get(ctx context.Context, id string) (*Patient, error) {
	if c == nil {
		return nil, nil
	}
	data, err := c.client.Get(ctx, c.key(id)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("patients: cache get: %w", err)
	}
	var entry cacheEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		// A stale or corrupted entry is just a miss.
		return nil, nil
	}
	entry.Patient.PlanRaw = entry.PlanRaw
	return &entry.Patient, nil
}

// Set stores a patient under the cache TTL.
func (c *Cache) Set(ctx context.Context, p *Patient) error {
	if c == nil || p == nil {
		return nil
	}
	data, err := json.Marshal(cacheEntry{Patient: *p, PlanRaw: p.PlanRaw})
	if err != nil {
		return fmt.Errorf("patients: cache set: %w", err)
	}
	if err := c.client.Set(ctx, c.key(p.ID), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("patients: cache set: %w", err)
	}
	return nil
}

// Invalidate drops the cached entry, called after a successful plan persist.
func (c *Cache) Invalidate(ctx context.Context, id string) error {
	if c == nil {
		return nil
	}
	if err := c.client.Del(ctx, c.key(id)).Err(); err != nil {
		return fmt.Errorf("patients: cache invalidate: %w", err)
	}
	return nil
}
