package domain

import "time"

// PeriodMarkers designate the bodies currently ruling the period.
// They change on a much slower cadence than raw positions, which is why
// synthesis may carry them forward between real fetches.
type PeriodMarkers struct {
	Primary   Body
	Secondary Body
}

// TransitEvent is an upcoming transition with a countdown relative to the
// snapshot's target date.
type TransitEvent struct {
	Label   string
	Body    Body
	ExactAt time.Time
	// Remaining is ExactAt minus the snapshot's target date. It is the only
	// field synthesis recomputes; the event set itself never changes locally.
	Remaining time.Duration
}

// Snapshot is the fully derived state for one date. It is immutable: every
// transformation constructs a new Snapshot rather than mutating in place.
type Snapshot struct {
	Date      time.Time
	Positions PositionSet
	Aspects   []Aspect
	Markers   PeriodMarkers
	Events    []TransitEvent

	// MarkersAsOf is the date of the real fetch the markers came from.
	// Synthesis carries it forward so callers can judge marker staleness.
	MarkersAsOf time.Time

	// Approximate marks snapshots produced by local synthesis or carry-forward
	// rather than by a real fetch. Approximate snapshots are displayable but
	// are never written to the snapshot cache tier.
	Approximate bool
}

// recomputeRemaining rebuilds the event list with countdowns re-derived
// from the given target date. The event set is unchanged.
func recomputeRemaining(events []TransitEvent, target time.Time) []TransitEvent {
	out := make([]TransitEvent, len(events))
	for i, ev := range events {
		ev.Remaining = ev.ExactAt.Sub(target)
		out[i] = ev
	}
	return out
}

// MarkersStale reports whether the carried period markers are older than
// bound relative to the snapshot date. Carrying markers forward is an
// intentional accuracy/latency trade-off; this bound makes the window
// explicit for callers that want to hint at it.
func (s Snapshot) MarkersStale(bound time.Duration) bool {
	if s.MarkersAsOf.IsZero() || bound <= 0 {
		return false
	}
	return s.Date.Sub(s.MarkersAsOf) > bound
}

// CarriedTo returns a copy of the snapshot re-dated to target, with event
// countdowns recomputed. It is the last-resort display path while scrubbing:
// positions and aspects are knowingly stale, but the view is never blank.
func (s Snapshot) CarriedTo(target time.Time) Snapshot {
	s.Date = target
	s.Events = recomputeRemaining(s.Events, target)
	s.Approximate = true
	return s
}
