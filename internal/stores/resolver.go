package stores

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/lucvieira/gamedeals-backend/pkg/logger"
)

// Fetcher retrieves the store list from the upstream API.
type Fetcher interface {
	FetchStores(ctx context.Context) ([]Store, error)
}

// Resolver turns store ids into display names while fetching the upstream
// store list at most once. The cache is permanent for the lifetime of the
// process: after the first successful or fallback resolution there is no
// expiry and no invalidation.
type Resolver struct {
	fetcher Fetcher
	logg    *logger.Logger

	group  singleflight.Group
	mu     sync.RWMutex
	stores []Store
}

// NewResolver builds a store resolver over the provided fetcher.
func NewResolver(fetcher Fetcher, logg *logger.Logger) (*Resolver, error) {
	if fetcher == nil {
		return nil, fmt.Errorf("store fetcher required")
	}
	if logg == nil {
		return nil, fmt.Errorf("logger required")
	}
	return &Resolver{fetcher: fetcher, logg: logg}, nil
}

// Stores returns the cached store list, fetching it on first use. Concurrent
// first-time callers coalesce into a single upstream request. A fetch
// failure resolves to the hardcoded fallback table and is never surfaced as
// an error.
func (r *Resolver) Stores(ctx context.Context) []Store {
	r.mu.RLock()
	if len(r.stores) > 0 {
		cached := r.stores
		r.mu.RUnlock()
		return cached
	}
	r.mu.RUnlock()

	v, _, _ := r.group.Do("stores", func() (any, error) {
		r.mu.RLock()
		if len(r.stores) > 0 {
			cached := r.stores
			r.mu.RUnlock()
			return cached, nil
		}
		r.mu.RUnlock()

		fetched, err := r.fetcher.FetchStores(context.WithoutCancel(ctx))
		if err != nil {
			r.logg.Error(ctx, "store list fetch failed, caching fallback table", err)
			fetched = Fallback()
		}

		r.mu.Lock()
		r.stores = fetched
		r.mu.Unlock()
		return fetched, nil
	})
	return v.([]Store)
}

// StoreName resolves a store id to its display name, or a synthesized
// placeholder when the id is unknown. It always returns a usable string.
func (r *Resolver) StoreName(ctx context.Context, storeID string) string {
	for _, s := range r.Stores(ctx) {
		if s.StoreID == storeID {
			return s.StoreName
		}
	}
	return fmt.Sprintf("Store %s", storeID)
}

// ActiveStores returns only the stores offered as filter choices.
func (r *Resolver) ActiveStores(ctx context.Context) []Store {
	all := r.Stores(ctx)
	active := make([]Store, 0, len(all))
	for _, s := range all {
		if s.Active() {
			active = append(active, s)
		}
	}
	return active
}
