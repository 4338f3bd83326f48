// Package memo caches asset content by identity.
package memo

import (
	"context"
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.trai.ch/pack/internal/core/domain"
	"go.trai.ch/zerr"
	"golang.org/x/sync/singleflight"
)

// DefaultSize is the number of snapshots kept when no size is given.
const DefaultSize = 4096

// ProduceFunc produces the content of one asset.
type ProduceFunc func(ctx context.Context) (domain.Content, error)

// Stats counts cache outcomes.
type Stats struct {
	Hits   int64
	Misses int64
}

// Cache stores content snapshots keyed by identity.
//
// Concurrent Get calls for the same identity share a single production.
// Errors are never cached. Invalidation during a production prevents its
// result from being stored.
type Cache struct {
	entries      *lru.Cache[domain.Ident, domain.Content]
	requestGroup singleflight.Group
	generation   atomic.Uint64

	hits   atomic.Int64
	misses atomic.Int64
}

// New creates a Cache holding at most size snapshots.
func New(size int) (*Cache, error) {
	if size <= 0 {
		size = DefaultSize
	}
	entries, err := lru.New[domain.Ident, domain.Content](size)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to create content cache")
	}
	return &Cache{entries: entries}, nil
}

// Get returns the cached content for id, calling produce on a miss.
func (c *Cache) Get(ctx context.Context, id domain.Ident, produce ProduceFunc) (domain.Content, error) {
	if content, ok := c.entries.Get(id); ok {
		c.hits.Add(1)
		return content, nil
	}

	result, err, _ := c.requestGroup.Do(id.Digest(), func() (any, error) {
		// A flight that finished between our lookup and Do already stored the value.
		if content, ok := c.entries.Get(id); ok {
			c.hits.Add(1)
			return content, nil
		}

		c.misses.Add(1)
		generation := c.generation.Load()
		content, err := produce(ctx)
		if err != nil {
			return nil, err
		}
		if c.generation.Load() == generation {
			c.entries.Add(id, content)
		}
		return content, nil
	})
	if err != nil {
		return domain.Content{}, err
	}

	return result.(domain.Content), nil
}

// Peek returns the cached content for id without producing it.
func (c *Cache) Peek(id domain.Ident) (domain.Content, bool) {
	return c.entries.Peek(id)
}

// Invalidate drops the snapshots of the given identities.
func (c *Cache) Invalidate(ids ...domain.Ident) {
	c.generation.Add(1)
	for _, id := range ids {
		c.entries.Remove(id)
	}
}

// Purge drops every snapshot.
func (c *Cache) Purge() {
	c.generation.Add(1)
	c.entries.Purge()
}

// Len returns the number of cached snapshots.
func (c *Cache) Len() int {
	return c.entries.Len()
}

// Stats returns the hit and miss counters.
func (c *Cache) Stats() Stats {
	return Stats{Hits: c.hits.Load(), Misses: c.misses.Load()}
}
