package showroom

import (
	"context"
	"strconv"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/eringen/showroom/cms"
)

// ContentSource is what the site reads from the CMS.
type ContentSource interface {
	PostsByCategory(ctx context.Context, category string, count int) ([]cms.Node, error)
	PostBySlug(ctx context.Context, slug string) (cms.Node, error)
	PostContent(ctx context.Context, slug string) (string, error)
	Certificate(ctx context.Context, category, number string) (cms.Node, error)
}

// ContentCache is an in-memory cache of CMS query results with TTL.
// Failed queries are never cached, concurrent misses for the same key share
// one query, and certificate lookups always go to the source. A caller whose
// context ends stops waiting, but the shared query carries on for the rest.
type ContentCache struct {
	src ContentSource
	ttl time.Duration
	now func() time.Time

	mu      sync.RWMutex
	entries map[string]cacheEntry
	gen     uint64

	group singleflight.Group
}

type cacheEntry struct {
	value   any
	fetched time.Time
}

// NewContentCache caches src for ttl. A ttl of zero or less disables caching.
func NewContentCache(src ContentSource, ttl time.Duration) *ContentCache {
	return &ContentCache{
		src:     src,
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]cacheEntry),
	}
}

// Invalidate clears the cache so the next read triggers a fresh load.
// Queries already in flight are not stored.
func (c *ContentCache) Invalidate() {
	c.mu.Lock()
	c.entries = make(map[string]cacheEntry)
	c.gen++
	c.mu.Unlock()
}

// Len returns the number of cached results, fresh or stale.
func (c *ContentCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

func (c *ContentCache) lookup(key string) (any, uint64, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.entries[key]
	if !ok || c.now().Sub(e.fetched) >= c.ttl {
		return nil, c.gen, false
	}
	return e.value, c.gen, true
}

func (c *ContentCache) store(key string, gen uint64, v any) {
	c.mu.Lock()
	if gen == c.gen {
		c.entries[key] = cacheEntry{value: v, fetched: c.now()}
	}
	c.mu.Unlock()
}

func (c *ContentCache) get(ctx context.Context, key string, load func(context.Context) (any, error)) (any, error) {
	if c.ttl <= 0 {
		return load(ctx)
	}
	if v, _, ok := c.lookup(key); ok {
		return v, nil
	}
	// The shared load outlives any one caller: a visitor who goes away must
	// not fail the others waiting on the same key. The source bounds it with
	// its own timeout.
	shared := context.WithoutCancel(ctx)
	ch := c.group.DoChan(key, func() (any, error) {
		v, gen, ok := c.lookup(key)
		if ok {
			return v, nil
		}
		v, err := load(shared)
		if err != nil {
			return nil, err
		}
		c.store(key, gen, v)
		return v, nil
	})
	select {
	case r := <-ch:
		return r.Val, r.Err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Posts returns up to count posts in category, newest first.
func (c *ContentCache) Posts(ctx context.Context, category string, count int) ([]cms.Node, error) {
	key := "posts:" + category + ":" + strconv.Itoa(count)
	v, err := c.get(ctx, key, func(ctx context.Context) (any, error) {
		return c.src.PostsByCategory(ctx, category, count)
	})
	if err != nil {
		return nil, err
	}
	return v.([]cms.Node), nil
}

// Post returns the post with the given slug.
func (c *ContentCache) Post(ctx context.Context, slug string) (cms.Node, error) {
	v, err := c.get(ctx, "post:"+slug, func(ctx context.Context) (any, error) {
		return c.src.PostBySlug(ctx, slug)
	})
	if err != nil {
		return cms.Node{}, err
	}
	return v.(cms.Node), nil
}

// Gallery returns the HTML content of the post with the given slug.
func (c *ContentCache) Gallery(ctx context.Context, slug string) (string, error) {
	v, err := c.get(ctx, "gallery:"+slug, func(ctx context.Context) (any, error) {
		return c.src.PostContent(ctx, slug)
	})
	if err != nil {
		return "", err
	}
	return v.(string), nil
}

// Certificate looks a certificate up without caching.
func (c *ContentCache) Certificate(ctx context.Context, category, number string) (cms.Node, error) {
	return c.src.Certificate(ctx, category, number)
}
