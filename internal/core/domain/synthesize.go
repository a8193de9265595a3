package domain

import "time"

// Synthesize produces an approximate snapshot for target from a previous real
// snapshot and freshly cached positions, without any I/O.
//
// The new positions are adopted verbatim and the aspect set is recomputed
// from them locally. Period markers are carried forward unchanged from prev:
// they move on a much slower cadence than positions, so the previous markers
// remain a reasonable approximation until the next real fetch lands. Event
// countdowns are re-derived from target; which events are upcoming does not
// change.
//
// The result is a legitimate interim snapshot. It is marked Approximate and
// must not be written to the snapshot cache tier; only real fetch results
// are persisted there.
func Synthesize(prev Snapshot, positions PositionSet, target time.Time) Snapshot {
	return Snapshot{
		Date:        target,
		Positions:   positions,
		Aspects:     ComputeAspects(positions),
		Markers:     prev.Markers,
		MarkersAsOf: prev.MarkersAsOf,
		Events:      recomputeRemaining(prev.Events, target),
		Approximate: true,
	}
}
