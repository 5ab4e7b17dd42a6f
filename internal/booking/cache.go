package booking

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

const cacheKeyPrefix = "bookingpage:"

// PageCache is a read-through cache over a Repository for page lookups.
// Pages are immutable once created, so cached entries never go stale and
// no invalidation is needed; the TTL only bounds memory use.
//
// Only FindBySlug is cached. SlugExists must observe live store state
// (the allocator depends on it) and Insert passes straight through.
type PageCache struct {
	next Repository
	rdb  *redis.Client
	ttl  time.Duration
}

func NewPageCache(next Repository, rdb *redis.Client, ttl time.Duration) *PageCache {
	return &PageCache{next: next, rdb: rdb, ttl: ttl}
}

func (c *PageCache) Insert(ctx context.Context, page *Page) error {
	return c.next.Insert(ctx, page)
}

func (c *PageCache) SlugExists(ctx context.Context, slug string) (bool, error) {
	return c.next.SlugExists(ctx, slug)
}

func (c *PageCache) FindBySlug(ctx context.Context, slug string) (*Page, error) {
	key := cacheKeyPrefix + slug

	if raw, err := c.rdb.Get(ctx, key).Bytes(); err == nil {
		var page Page
		if err := json.Unmarshal(raw, &page); err == nil {
			return &page, nil
		}
		// Corrupt entry: fall through to the store and rewrite it.
	}

	page, err := c.next.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	if raw, err := json.Marshal(page); err == nil {
		// Best effort; a failed cache write must not fail the lookup.
		_ = c.rdb.Set(ctx, key, raw, c.ttl).Err()
	}
	return page, nil
}
