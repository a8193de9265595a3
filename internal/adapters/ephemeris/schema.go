package ephemeris

import (
	"time"

	"go.trai.ch/transit/internal/core/domain"
)

// Wire types for the transit service JSON API. Aspects are intentionally
// absent: they are derived locally from positions so cached and freshly
// fetched snapshots agree with synthesized ones.

type wirePosition struct {
	Body       string  `json:"body"`
	Longitude  float64 `json:"longitude"`
	Retrograde bool    `json:"retrograde"`
}

type wireMarkers struct {
	Primary   string `json:"primary"`
	Secondary string `json:"secondary"`
}

type wireEvent struct {
	Label   string    `json:"label"`
	Body    string    `json:"body"`
	ExactAt time.Time `json:"exact_at"`
}

type positionsResponse struct {
	Date      string         `json:"date"`
	Positions []wirePosition `json:"positions"`
}

type snapshotResponse struct {
	Date        string         `json:"date"`
	Positions   []wirePosition `json:"positions"`
	Markers     wireMarkers    `json:"markers"`
	MarkersAsOf time.Time      `json:"markers_as_of"`
	Events      []wireEvent    `json:"events"`
}

const wireDateLayout = "2006-01-02"

var knownBodies = func() map[string]domain.Body {
	m := make(map[string]domain.Body, len(domain.Bodies))
	for _, b := range domain.Bodies {
		m[string(b)] = b
	}
	return m
}()

// toPositions converts wire positions to domain positions, dropping bodies
// this client does not model so newer service revisions stay compatible.
func toPositions(wire []wirePosition) []domain.Position {
	out := make([]domain.Position, 0, len(wire))
	for _, p := range wire {
		body, ok := knownBodies[p.Body]
		if !ok {
			continue
		}
		out = append(out, domain.Position{
			Body:       body,
			Longitude:  p.Longitude,
			Retrograde: p.Retrograde,
		})
	}
	return out
}

func toEvents(wire []wireEvent, date time.Time) []domain.TransitEvent {
	out := make([]domain.TransitEvent, 0, len(wire))
	for _, e := range wire {
		body, ok := knownBodies[e.Body]
		if !ok {
			continue
		}
		out = append(out, domain.TransitEvent{
			Label:     e.Label,
			Body:      body,
			ExactAt:   e.ExactAt,
			Remaining: e.ExactAt.Sub(date),
		})
	}
	return out
}
