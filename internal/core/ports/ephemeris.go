// Package ports defines the interfaces between the engine core and its
// adapters.
package ports

import (
	"context"
	"time"

	"go.trai.ch/transit/internal/core/domain"
)

// Ephemeris is the remote computation boundary. Both operations are
// idempotent from the caller's perspective: repeating the same date and
// profile returns an equivalent result, so re-invoking after a failure or
// cancellation is always safe.
//
// Failures are classified with the domain sentinels
// (ErrEphemerisUnavailable, ErrEphemerisRejected); context cancellation is
// passed through untouched and must never be surfaced as a failure.
//
//go:generate mockgen -source=ephemeris.go -destination=mocks/mock_ephemeris.go -package=mocks
type Ephemeris interface {
	// FetchPositions computes the raw per-body positions for the period
	// containing date. It is the cheap operation used by prefetching.
	FetchPositions(ctx context.Context, date time.Time, profile domain.Profile) (domain.PositionSet, error)

	// FetchSnapshot computes the fully derived snapshot for the period
	// containing date. It is the expensive operation used by commit fetches.
	FetchSnapshot(ctx context.Context, date time.Time, profile domain.Profile) (domain.Snapshot, error)
}
