package scrub

import (
	"context"
	"fmt"
	"time"

	"go.trai.ch/transit/internal/core/domain"
	"go.trai.ch/transit/internal/core/ports"
	"go.trai.ch/transit/internal/engine/cache"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

// prefetchParallelism bounds concurrent neighbor fetches.
const prefetchParallelism = 2

// Prefetcher warms the position tier for a symmetric window of periods
// around a committed date. It is strictly an optimization: every neighbor
// fetch is independent, failures are absorbed, and a key already present
// in the store is never fetched again while it stays cached.
type Prefetcher struct {
	client   ports.Ephemeris
	store    *cache.PositionStore
	log      ports.Logger
	radius   int
	inflight singleflight.Group
}

// NewPrefetcher creates a Prefetcher with the given window radius.
func NewPrefetcher(client ports.Ephemeris, store *cache.PositionStore, log ports.Logger, radius int) *Prefetcher {
	if radius < 0 {
		radius = domain.DefaultPrefetchRadius
	}
	return &Prefetcher{
		client: client,
		store:  store,
		log:    log,
		radius: radius,
	}
}

// Warm fetches positions for the periods within radius of center that are
// not already cached. It blocks until the window is processed; callers
// run it on their own goroutine.
func (p *Prefetcher) Warm(ctx context.Context, keyer *domain.Keyer, center time.Time, profile domain.Profile) {
	var g errgroup.Group
	g.SetLimit(prefetchParallelism)

	for off := -p.radius; off <= p.radius; off++ {
		if off == 0 {
			continue
		}
		date := keyer.AddPeriods(center, off)
		key := keyer.Key(date)
		if _, ok := p.store.Cached(key); ok {
			continue
		}
		g.Go(func() error {
			p.warmOne(ctx, key, date, profile)
			return nil
		})
	}
	_ = g.Wait()
}

// warmOne fetches and stores a single neighbor. Concurrent warms for the
// same key collapse into one fetch via singleflight.
func (p *Prefetcher) warmOne(ctx context.Context, key domain.CacheKey, date time.Time, profile domain.Profile) {
	_, _, _ = p.inflight.Do(string(key), func() (any, error) {
		if _, ok := p.store.Cached(key); ok {
			return nil, nil
		}
		ps, err := p.client.FetchPositions(ctx, date, profile)
		if err != nil {
			// Best effort only. A failed neighbor never delays or fails
			// the others and is not surfaced.
			if ctx.Err() == nil && p.log != nil {
				p.log.Info(fmt.Sprintf("prefetch skipped %s", date.Format("2006-01")))
			}
			return nil, nil
		}
		// Re-check before writing so a concurrent real fetch for the same
		// key is not overwritten. Values for a fixed key are deterministic,
		// so last-writer-wins would also be acceptable.
		if _, ok := p.store.Cached(key); !ok {
			p.store.Store(key, ps)
		}
		return nil, nil
	})
}
