// internal/catalog/cached.go
//
// Read-through cache in front of a Retriever.
//
// Context
// -------
// Carousels on busy pages ask for the same handful of products over and
// over.  CachedRetriever keeps recently fetched records in an LRU for a
// short TTL and collapses concurrent misses for the same SKU set into one
// upstream call with singleflight.
//
// Notes
// -----
//   - SKUs absent from the upstream answer are not cached; a product that
//     appears in the catalog later is picked up on the next request.
//   - The shared upstream call runs detached from any one caller's
//     context and is bounded by FetchTimeout instead.  Each caller still
//     stops waiting when its own context ends.
//   - Products are copied on the way in and on the way out, so callers
//     may modify what they receive.
//   - Oxford commas, two spaces after periods.
package catalog

import (
	"context"
	"sort"
	"strings"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/yanizio/adept-commerce/internal/cache"
	"github.com/yanizio/adept-commerce/internal/metrics"
)

// FetchTimeout bounds one shared upstream fetch.
const FetchTimeout = 30 * time.Second

type cached struct {
	product Product
	exp     time.Time
}

// CachedRetriever decorates a Retriever with an in-memory LRU.
type CachedRetriever struct {
	next    Retriever
	lru     *cache.LRU[string, cached]
	ttl     time.Duration
	timeout time.Duration
	sfg     singleflight.Group
	now     func() time.Time
}

// NewCachedRetriever caches up to size products for ttl each.
func NewCachedRetriever(next Retriever, size int, ttl time.Duration) *CachedRetriever {
	return &CachedRetriever{
		next:    next,
		lru:     cache.New[string, cached](size),
		ttl:     ttl,
		timeout: FetchTimeout,
		now:     time.Now,
	}
}

// FetchProducts implements Retriever.
func (c *CachedRetriever) FetchProducts(ctx context.Context, skus []string) ([]Product, error) {
	now := c.now()
	out := make([]Product, 0, len(skus))
	var misses []string
	for _, sku := range skus {
		if ent, ok := c.lru.Get(sku); ok {
			if now.Before(ent.exp) {
				out = append(out, ent.product.Clone())
				continue
			}
			c.lru.Remove(sku)
		}
		misses = append(misses, sku)
	}
	metrics.CatalogCacheHitsTotal.Add(float64(len(out)))
	if len(misses) == 0 {
		return out, nil
	}
	metrics.CatalogCacheMissesTotal.Add(float64(len(misses)))

	fetched, err := c.fetch(ctx, misses)
	if err != nil {
		return nil, err
	}
	for _, p := range fetched {
		out = append(out, p.Clone())
	}
	return out, nil
}

// fetch loads misses through singleflight.  The leader's result is cached
// before it is handed to any waiter.
func (c *CachedRetriever) fetch(ctx context.Context, misses []string) ([]Product, error) {
	sort.Strings(misses)
	key := strings.Join(misses, "\x00")

	ch := c.sfg.DoChan(key, func() (any, error) {
		fctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.timeout)
		defer cancel()

		fetched, err := c.next.FetchProducts(fctx, misses)
		if err != nil {
			return nil, err
		}
		exp := c.now().Add(c.ttl)
		for _, p := range fetched {
			c.lru.Add(p.Sku, cached{product: p.Clone(), exp: exp})
		}
		return fetched, nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.([]Product), nil
	}
}

// ResolveURLKey forwards to the wrapped Retriever when it can resolve url
// keys.  Resolutions are not cached; the product fetch that follows is.
func (c *CachedRetriever) ResolveURLKey(ctx context.Context, urlKey string) (string, error) {
	if r, ok := c.next.(URLKeyResolver); ok {
		return r.ResolveURLKey(ctx, urlKey)
	}
	return "", ErrNotFound
}
