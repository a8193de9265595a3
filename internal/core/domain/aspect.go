package domain

import "math"

// AspectKind classifies the angular relationship between two bodies.
type AspectKind string

const (
	// Conjunction is an angular separation near 0 degrees.
	Conjunction AspectKind = "conjunction"
	// Sextile is an angular separation near 60 degrees.
	Sextile AspectKind = "sextile"
	// Square is an angular separation near 90 degrees.
	Square AspectKind = "square"
	// Trine is an angular separation near 120 degrees.
	Trine AspectKind = "trine"
	// Opposition is an angular separation near 180 degrees.
	Opposition AspectKind = "opposition"
)

// DefaultOrb is the maximum deviation in degrees from the exact angle
// for an aspect to be considered active.
const DefaultOrb = 6.0

// aspectAngles maps each aspect kind to its exact angle, in detection order.
var aspectAngles = []struct {
	kind  AspectKind
	angle float64
}{
	{Conjunction, 0},
	{Sextile, 60},
	{Square, 90},
	{Trine, 120},
	{Opposition, 180},
}

// Aspect is an active pairwise relationship between two bodies.
// A is always the body that sorts earlier in Bodies order.
type Aspect struct {
	A    Body
	B    Body
	Kind AspectKind
	// Orb is the deviation from the exact angle, in degrees.
	Orb float64
}

// Separation returns the angular separation between two longitudes,
// folded into [0, 180].
func Separation(a, b float64) float64 {
	d := math.Abs(NormalizeLongitude(a) - NormalizeLongitude(b))
	if d > 180 {
		d = 360 - d
	}
	return d
}

// ComputeAspects derives the active aspect set from raw positions alone.
// It is pure and cheap, which is what makes local snapshot synthesis
// possible without a service round trip.
func ComputeAspects(ps PositionSet) []Aspect {
	var aspects []Aspect
	for i := 0; i < len(ps.Positions); i++ {
		for j := i + 1; j < len(ps.Positions); j++ {
			a, b := ps.Positions[i], ps.Positions[j]
			sep := Separation(a.Longitude, b.Longitude)
			for _, def := range aspectAngles {
				orb := math.Abs(sep - def.angle)
				if orb <= DefaultOrb {
					aspects = append(aspects, Aspect{
						A:    a.Body,
						B:    b.Body,
						Kind: def.kind,
						Orb:  orb,
					})
					break
				}
			}
		}
	}
	return aspects
}
