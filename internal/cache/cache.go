// Package cache keeps derived query results (place lists, single places,
// review lists) until a mutation marks them stale.
//
// Entries are keyed by a family (the query shape) plus the query parameters.
// Mutations invalidate either one exact key or a whole family, so no filter
// variant of a query can survive a relevant write.
package cache

import (
	"context"
	"strconv"
	"strings"
	"sync"
	"time"

	"safespot/internal/metrics"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/sync/singleflight"
)

// Query families.
const (
	FamilyPlaces  = "places"
	FamilyPlace   = "place"
	FamilyReviews = "reviews"
)

const sep = "|"

// Key identifies one cached query result.
type Key struct {
	Family string
	Params []string
}

func NewKey(family string, params ...string) Key {
	return Key{Family: family, Params: params}
}

func (k Key) String() string {
	return k.Family + sep + strings.Join(k.Params, sep)
}

type Config struct {
	Size int
	TTL  time.Duration
}

type Cache struct {
	entries *expirable.LRU[string, any]
	group   singleflight.Group

	mu   sync.Mutex
	gens map[string]uint64
}

func New(cfg Config) *Cache {
	size := cfg.Size
	if size <= 0 {
		size = 512
	}
	return &Cache{
		entries: expirable.NewLRU[string, any](size, nil, cfg.TTL),
		gens:    make(map[string]uint64),
	}
}

func (c *Cache) generation(family string) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.gens[family]
}

func (c *Cache) get(key Key) (any, bool) {
	v, ok := c.entries.Get(key.String())
	outcome := "miss"
	if ok {
		outcome = "hit"
	}
	metrics.CacheLookups.WithLabelValues(key.Family, outcome).Inc()
	return v, ok
}

// store keeps v unless the family was invalidated after gen was read.
func (c *Cache) store(key Key, gen uint64, v any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.gens[key.Family] != gen {
		return
	}
	c.entries.Add(key.String(), v)
}

// Invalidate marks one exact query result stale.
func (c *Cache) Invalidate(key Key) {
	c.mu.Lock()
	c.gens[key.Family]++
	c.entries.Remove(key.String())
	c.mu.Unlock()

	metrics.CacheInvalidations.WithLabelValues(key.Family).Inc()
}

// InvalidateFamily marks every cached variant of a query shape stale.
func (c *Cache) InvalidateFamily(family string) {
	prefix := family + sep

	c.mu.Lock()
	c.gens[family]++
	for _, k := range c.entries.Keys() {
		if strings.HasPrefix(k, prefix) {
			c.entries.Remove(k)
		}
	}
	c.mu.Unlock()

	metrics.CacheInvalidations.WithLabelValues(family).Inc()
}

// Len reports how many results are currently cached.
func (c *Cache) Len() int {
	return c.entries.Len()
}

// Load returns the cached result for key or runs fetch, caching its result
// on success. Concurrent misses on the same key share one fetch. Errors are
// never cached.
//
// The shared fetch is detached from the cancellation of whichever caller
// started it; each caller stops waiting when its own ctx is done.
func Load[T any](ctx context.Context, c *Cache, key Key, fetch func(context.Context) (T, error)) (T, error) {
	var zero T
	if v, ok := c.get(key); ok {
		return v.(T), nil
	}

	gen := c.generation(key.Family)
	flight := key.String() + sep + strconv.FormatUint(gen, 10)
	fetchCtx := context.WithoutCancel(ctx)

	ch := c.group.DoChan(flight, func() (any, error) {
		res, err := fetch(fetchCtx)
		if err != nil {
			return nil, err
		}
		c.store(key, gen, res)
		return res, nil
	})

	select {
	case <-ctx.Done():
		return zero, ctx.Err()
	case r := <-ch:
		if r.Err != nil {
			return zero, r.Err
		}
		return r.Val.(T), nil
	}
}
