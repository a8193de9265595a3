// Package domain contains the core domain types for the transit engine:
// tracked bodies, position sets, snapshots, cache key derivation and
// local snapshot synthesis.
package domain

import "math"

// Body identifies a tracked celestial body.
type Body string

const (
	// Sun is the Sun.
	Sun Body = "sun"
	// Moon is the Moon.
	Moon Body = "moon"
	// Mercury is the planet Mercury.
	Mercury Body = "mercury"
	// Venus is the planet Venus.
	Venus Body = "venus"
	// Mars is the planet Mars.
	Mars Body = "mars"
	// Jupiter is the planet Jupiter.
	Jupiter Body = "jupiter"
	// Saturn is the planet Saturn.
	Saturn Body = "saturn"
	// Uranus is the planet Uranus.
	Uranus Body = "uranus"
	// Neptune is the planet Neptune.
	Neptune Body = "neptune"
	// Pluto is the dwarf planet Pluto.
	Pluto Body = "pluto"
)

// Bodies lists all tracked bodies in display order.
var Bodies = []Body{Sun, Moon, Mercury, Venus, Mars, Jupiter, Saturn, Uranus, Neptune, Pluto}

// Glyph returns the astronomical symbol for the body.
func (b Body) Glyph() string {
	switch b {
	case Sun:
		return "☉"
	case Moon:
		return "☽"
	case Mercury:
		return "☿"
	case Venus:
		return "♀"
	case Mars:
		return "♂"
	case Jupiter:
		return "♃"
	case Saturn:
		return "♄"
	case Uranus:
		return "♅"
	case Neptune:
		return "♆"
	case Pluto:
		return "♇"
	default:
		return "?"
	}
}

// Sign is one of the twelve zodiac signs, derived from ecliptic longitude.
type Sign uint8

const (
	// Aries spans longitudes [0, 30).
	Aries Sign = iota
	// Taurus spans longitudes [30, 60).
	Taurus
	// Gemini spans longitudes [60, 90).
	Gemini
	// Cancer spans longitudes [90, 120).
	Cancer
	// Leo spans longitudes [120, 150).
	Leo
	// Virgo spans longitudes [150, 180).
	Virgo
	// Libra spans longitudes [180, 210).
	Libra
	// Scorpio spans longitudes [210, 240).
	Scorpio
	// Sagittarius spans longitudes [240, 270).
	Sagittarius
	// Capricorn spans longitudes [270, 300).
	Capricorn
	// Aquarius spans longitudes [300, 330).
	Aquarius
	// Pisces spans longitudes [330, 360).
	Pisces
)

var signNames = [...]string{
	"Aries", "Taurus", "Gemini", "Cancer", "Leo", "Virgo",
	"Libra", "Scorpio", "Sagittarius", "Capricorn", "Aquarius", "Pisces",
}

var signGlyphs = [...]string{"♈", "♉", "♊", "♋", "♌", "♍", "♎", "♏", "♐", "♑", "♒", "♓"}

// String returns the sign name.
func (s Sign) String() string {
	if int(s) < len(signNames) {
		return signNames[s]
	}
	return "Unknown"
}

// Glyph returns the zodiac symbol for the sign.
func (s Sign) Glyph() string {
	if int(s) < len(signGlyphs) {
		return signGlyphs[s]
	}
	return "?"
}

// SignOf derives the zodiac sign from an ecliptic longitude in degrees.
// The longitude is normalized into [0, 360) first.
func SignOf(longitude float64) Sign {
	return Sign(int(NormalizeLongitude(longitude)/30) % 12)
}

// NormalizeLongitude wraps a longitude in degrees into [0, 360).
// Runs in constant time for any magnitude.
func NormalizeLongitude(longitude float64) float64 {
	l := math.Mod(longitude, 360)
	if l < 0 {
		l += 360
	}
	if l >= 360 {
		// A tiny negative remainder can round up to exactly 360.
		l = 0
	}
	return l
}
