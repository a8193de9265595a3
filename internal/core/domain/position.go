package domain

import "time"

// Position holds the raw positional data for a single body on a given date.
type Position struct {
	Body       Body
	Longitude  float64
	Sign       Sign
	Retrograde bool
}

// PositionSet is the cheap-to-compute subset of a snapshot: the raw
// per-body positions for one date. It is immutable once constructed.
type PositionSet struct {
	Date      time.Time
	Positions []Position
}

// NewPositionSet builds a PositionSet for the given date, normalizing
// longitudes and deriving signs.
func NewPositionSet(date time.Time, positions []Position) PositionSet {
	normalized := make([]Position, len(positions))
	for i, p := range positions {
		p.Longitude = NormalizeLongitude(p.Longitude)
		p.Sign = SignOf(p.Longitude)
		normalized[i] = p
	}
	return PositionSet{Date: date, Positions: normalized}
}

// Lookup returns the position of the given body, if present.
func (ps PositionSet) Lookup(body Body) (Position, bool) {
	for _, p := range ps.Positions {
		if p.Body == body {
			return p, true
		}
	}
	return Position{}, false
}

// IsZero reports whether the set holds no positions.
func (ps PositionSet) IsZero() bool {
	return len(ps.Positions) == 0
}
