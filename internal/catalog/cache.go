package catalog

import (
	"context"
	"sync"
	"time"

	"motodesign/pkg/models"
)

// CollectionFetcher fetches the full normalized collection. *Client
// satisfies it.
type CollectionFetcher interface {
	FetchCollection(ctx context.Context) ([]models.Record, error)
}

// CollectionCache holds one snapshot of the collection for its TTL so
// every page view does not re-walk the store. The snapshot is treated as
// immutable by all readers; the query engine copies, never mutates.
type CollectionCache struct {
	fetcher CollectionFetcher
	ttl     time.Duration

	mu        sync.Mutex
	records   []models.Record
	fetchedAt time.Time
}

func NewCollectionCache(fetcher CollectionFetcher, ttl time.Duration) *CollectionCache {
	return &CollectionCache{fetcher: fetcher, ttl: ttl}
}

// Collection returns the cached snapshot, refetching when it is stale.
// A fetch failure with no snapshot available propagates the error; a
// stale snapshot is never served in place of an error surfaced upstream.
func (c *CollectionCache) Collection(ctx context.Context) ([]models.Record, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.records != nil && time.Since(c.fetchedAt) < c.ttl {
		return c.records, nil
	}

	records, err := c.fetcher.FetchCollection(ctx)
	if err != nil {
		return nil, err
	}

	c.records = records
	c.fetchedAt = time.Now()
	return records, nil
}

// Invalidate drops the snapshot so the next read refetches.
func (c *CollectionCache) Invalidate() {
	c.mu.Lock()
	c.records = nil
	c.fetchedAt = time.Time{}
	c.mu.Unlock()
}
