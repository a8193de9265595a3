// Package scrub implements the interactive scrub engine: a debounced,
// cancellable fetch pipeline over two bounded cache tiers, with local
// synthesis so the displayed snapshot is never blank while dragging.
package scrub

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.trai.ch/transit/internal/core/domain"
	"go.trai.ch/transit/internal/core/ports"
	"go.trai.ch/transit/internal/engine/cache"
	"go.trai.ch/zerr"
)

// Controller orchestrates an interactive scrub session.
//
// While the user drags, every step resolves synchronously: snapshot tier
// hit, else position tier hit plus synthesis against the last committed
// baseline, else the displayed snapshot carried forward with only its date
// replaced. Once interaction pauses for the debounce window, a real fetch
// commits the target date, overwrites both tiers and becomes the new
// baseline. Starting a new interaction cancels the pending timer and any
// in-flight fetch; a superseded completion is dropped even when it would
// have been fresher, so the view never jumps back to a stale target.
type Controller struct {
	client    ports.Ephemeris
	log       ports.Logger
	positions *cache.PositionStore
	snapshots *cache.SnapshotStore
	prefetch  *Prefetcher
	window    time.Duration

	root     context.Context
	shutdown context.CancelFunc

	mu      sync.Mutex
	keyer   *domain.Keyer
	profile domain.Profile
	target  time.Time

	// generation counts scrub lineages. A fetch completion is applied only
	// if the generation it was started under is still current; cancellation
	// makes superseded fetches return early, the generation check makes
	// their results inert even if they slip through.
	generation  uint64
	timer       *time.Timer
	cancelFetch context.CancelFunc

	baseline    domain.Snapshot
	display     domain.Snapshot
	hasBaseline bool
	hasDisplay  bool
	fetching    bool
	errMsg      string
}

// NewController creates a scrub controller. It returns
// ErrTimezoneUnavailable when the profile's reference timezone cannot be
// resolved; the caller should treat that as "not ready" rather than a fault.
func NewController(
	client ports.Ephemeris,
	log ports.Logger,
	positions *cache.PositionStore,
	snapshots *cache.SnapshotStore,
	prefetch *Prefetcher,
	profile domain.Profile,
	window time.Duration,
) (*Controller, error) {
	keyer, err := domain.NewKeyer(profile)
	if err != nil {
		return nil, err
	}
	if window <= 0 {
		window = domain.DefaultDebounceWindow
	}
	root, shutdown := context.WithCancel(context.Background())
	return &Controller{
		client:    client,
		log:       log,
		positions: positions,
		snapshots: snapshots,
		prefetch:  prefetch,
		window:    window,
		root:      root,
		shutdown:  shutdown,
		keyer:     keyer,
		profile:   profile,
	}, nil
}

// Bootstrap performs the initial fetch for the period containing now and
// installs it as baseline and display. Until it succeeds once, Display
// reports no snapshot. Cancellation of ctx is normal shutdown and returns
// nil; any other fetch failure is surfaced via Err and returned.
func (c *Controller) Bootstrap(ctx context.Context, now time.Time) error {
	c.mu.Lock()
	if c.keyer == nil {
		c.mu.Unlock()
		return domain.ErrNotReady
	}
	date := c.keyer.PeriodStart(now)
	c.generation++
	gen := c.generation
	c.target = date
	c.fetching = true
	profile := c.profile
	key := c.keyer.Key(date)
	c.mu.Unlock()

	snap, err := c.client.FetchSnapshot(ctx, date, profile)

	c.mu.Lock()
	defer c.mu.Unlock()
	if gen == c.generation {
		c.fetching = false
	}
	if err != nil {
		if errors.Is(err, context.Canceled) {
			// Quitting mid-bootstrap is routine, not a failure.
			return nil
		}
		if gen == c.generation {
			c.errMsg = err.Error()
		}
		return zerr.Wrap(err, domain.ErrBootstrapFailed.Error())
	}
	if gen != c.generation {
		// A reset or scrub superseded the bootstrap; drop the result.
		return nil
	}
	c.applyCommittedLocked(key, snap)
	c.warmLocked(date)
	return nil
}

// Scrub moves the target to the period containing date and returns the
// best immediately-available snapshot for it. It cancels any pending
// debounce timer and in-flight fetch for the previous target, and arms a
// fresh debounce timer unless the snapshot tier already holds a real
// result for the new key. Starting a new interaction dismisses a surfaced
// fetch error.
func (c *Controller) Scrub(date time.Time) domain.Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.keyer == nil {
		return c.display
	}

	date = c.keyer.PeriodStart(date)
	c.target = date
	c.generation++
	gen := c.generation
	c.stopPendingLocked()
	c.errMsg = ""

	key := c.keyer.Key(date)

	if snap, ok := c.snapshots.Cached(key); ok {
		// A real result is already cached: display it, no fetch needed.
		c.display = snap
		c.hasDisplay = true
		return c.display
	}

	switch ps, ok := c.positions.Cached(key); {
	case ok && c.hasBaseline:
		c.display = domain.Synthesize(c.baseline, ps, date)
		c.hasDisplay = true
	case c.hasDisplay:
		// Last resort: carry the previous display forward so the view is
		// never blank mid-drag.
		c.display = c.display.CarriedTo(date)
	}

	c.timer = time.AfterFunc(c.window, func() {
		c.commit(gen, date)
	})
	return c.display
}

// Step scrubs by n periods relative to the current target.
func (c *Controller) Step(n int) domain.Snapshot {
	c.mu.Lock()
	target := c.target
	keyer := c.keyer
	c.mu.Unlock()

	if keyer == nil {
		return c.Scrub(target)
	}
	return c.Scrub(keyer.AddPeriods(target, n))
}

// commit runs when the debounce window elapses with gen still current.
// It performs the real fetch for date and applies the result unless the
// lineage has been superseded in the meantime.
func (c *Controller) commit(gen uint64, date time.Time) {
	c.mu.Lock()
	if gen != c.generation || c.keyer == nil {
		c.mu.Unlock()
		return
	}
	ctx, cancel := context.WithCancel(c.root)
	c.cancelFetch = cancel
	c.fetching = true
	profile := c.profile
	key := c.keyer.Key(date)
	c.mu.Unlock()
	defer cancel()

	snap, err := c.client.FetchSnapshot(ctx, date, profile)

	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.generation {
		// Superseded while in flight: drop the result, success or not.
		return
	}
	c.fetching = false
	c.cancelFetch = nil
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return
		}
		c.errMsg = err.Error()
		c.log.Warn("snapshot fetch failed, keeping last good snapshot")
		return
	}
	c.applyCommittedLocked(key, snap)
	c.errMsg = ""
	c.warmLocked(date)
}

// applyCommittedLocked installs a real fetch result: it overwrites both
// tiers for its key and becomes the new baseline for synthesis.
func (c *Controller) applyCommittedLocked(key domain.CacheKey, snap domain.Snapshot) {
	c.snapshots.Store(key, snap)
	c.positions.Store(key, snap.Positions)
	c.baseline = snap
	c.hasBaseline = true
	c.display = snap
	c.hasDisplay = true
}

// warmLocked kicks off best-effort prefetching around date.
func (c *Controller) warmLocked(date time.Time) {
	if c.prefetch == nil {
		return
	}
	keyer, profile := c.keyer, c.profile
	go c.prefetch.Warm(c.root, keyer, date, profile)
}

// stopPendingLocked cancels the pending debounce timer and any in-flight
// fetch for the superseded target.
func (c *Controller) stopPendingLocked() {
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	if c.cancelFetch != nil {
		c.cancelFetch()
		c.cancelFetch = nil
	}
	c.fetching = false
}

// Reset clears both cache tiers and installs a new profile keyspace.
// The displayed snapshot is retained so the view does not go blank; the
// caller is expected to bootstrap again. Returns ErrTimezoneUnavailable
// when the new profile cannot derive keys, leaving the controller in the
// not-ready state.
func (c *Controller) Reset(profile domain.Profile) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.generation++
	c.stopPendingLocked()
	c.positions.Reset()
	c.snapshots.Reset()
	c.hasBaseline = false
	c.errMsg = ""
	c.profile = profile

	keyer, err := domain.NewKeyer(profile)
	if err != nil {
		c.keyer = nil
		return err
	}
	c.keyer = keyer
	return nil
}

// Close cancels all background work. The controller must not be used
// afterwards.
func (c *Controller) Close() {
	c.mu.Lock()
	c.generation++
	c.stopPendingLocked()
	c.mu.Unlock()
	c.shutdown()
}

// Display returns the current display snapshot. The second return is
// false only before the first successful bootstrap.
func (c *Controller) Display() (domain.Snapshot, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.display, c.hasDisplay
}

// Target returns the current scrub target date.
func (c *Controller) Target() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.target
}

// Fetching reports whether a real fetch is currently in flight, for a
// subtle busy indicator that never hides content.
func (c *Controller) Fetching() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.fetching
}

// Err returns the surfaced fetch error message, empty when none. The
// message is dismissed by the next interaction or successful commit.
func (c *Controller) Err() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.errMsg
}

// Ready reports whether the controller can derive cache keys.
func (c *Controller) Ready() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.keyer != nil
}
