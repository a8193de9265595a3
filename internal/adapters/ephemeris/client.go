// Package ephemeris implements the Ephemeris port against the transit
// service's JSON API.
package ephemeris

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.trai.ch/transit/internal/core/domain"
	"go.trai.ch/zerr"
)

const (
	httpClientTimeout = 30 * time.Second
	tracerName        = "transit/ephemeris"
)

// Client talks to the transit service over HTTP. Each fetch runs inside a
// span so slow requests show up in traces with their target period.
type Client struct {
	baseURL    string
	httpClient *http.Client
	tracer     trace.Tracer
}

// NewClient creates a Client for the given service base URL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: httpClientTimeout,
		},
		tracer: otel.Tracer(tracerName),
	}
}

// FetchPositions retrieves the raw body positions for the period containing
// date. Signs are derived locally.
func (c *Client) FetchPositions(ctx context.Context, date time.Time, profile domain.Profile) (domain.PositionSet, error) {
	ctx, span := c.tracer.Start(ctx, "ephemeris.fetch_positions",
		trace.WithAttributes(attribute.String("period", date.Format("2006-01"))))
	defer span.End()

	var resp positionsResponse
	if err := c.get(ctx, "/v1/positions", date, profile, &resp); err != nil {
		span.SetStatus(codes.Error, err.Error())
		return domain.PositionSet{}, err
	}
	return domain.NewPositionSet(date, toPositions(resp.Positions)), nil
}

// FetchSnapshot retrieves the full snapshot for the period containing date.
// Aspects are computed locally from the returned positions so real and
// synthesized snapshots agree on geometry.
func (c *Client) FetchSnapshot(ctx context.Context, date time.Time, profile domain.Profile) (domain.Snapshot, error) {
	ctx, span := c.tracer.Start(ctx, "ephemeris.fetch_snapshot",
		trace.WithAttributes(attribute.String("period", date.Format("2006-01"))))
	defer span.End()

	var resp snapshotResponse
	if err := c.get(ctx, "/v1/snapshot", date, profile, &resp); err != nil {
		span.SetStatus(codes.Error, err.Error())
		return domain.Snapshot{}, err
	}

	positions := domain.NewPositionSet(date, toPositions(resp.Positions))
	markersAsOf := resp.MarkersAsOf
	if markersAsOf.IsZero() {
		markersAsOf = date
	}
	return domain.Snapshot{
		Date:      date,
		Positions: positions,
		Aspects:   domain.ComputeAspects(positions),
		Markers: domain.PeriodMarkers{
			Primary:   knownBodies[resp.Markers.Primary],
			Secondary: knownBodies[resp.Markers.Secondary],
		},
		MarkersAsOf: markersAsOf,
		Events:      toEvents(resp.Events, date),
	}, nil
}

// get issues a request against path and decodes the JSON response into out.
func (c *Client) get(ctx context.Context, path string, date time.Time, profile domain.Profile, out any) error {
	query := url.Values{}
	query.Set("date", date.Format(wireDateLayout))
	query.Set("birth", profile.BirthDate)
	query.Set("lat", strconv.FormatFloat(profile.Latitude, 'f', -1, 64))
	query.Set("lon", strconv.FormatFloat(profile.Longitude, 'f', -1, 64))
	query.Set("tz", profile.Timezone)
	target := c.baseURL + path + "?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, http.NoBody)
	if err != nil {
		return zerr.Wrap(err, domain.ErrEphemerisUnavailable.Error())
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// Keeps cancellation inspectable through the chain so a superseded
		// fetch is not mistaken for an outage.
		return zerr.Wrap(err, domain.ErrEphemerisUnavailable.Error())
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode >= http.StatusBadRequest && resp.StatusCode < http.StatusInternalServerError {
		rejected := zerr.With(domain.ErrEphemerisRejected, "status_code", resp.StatusCode)
		return zerr.With(rejected, "period", date.Format("2006-01"))
	}
	if resp.StatusCode != http.StatusOK {
		unavailable := zerr.With(domain.ErrEphemerisUnavailable, "status_code", resp.StatusCode)
		return zerr.With(unavailable, "period", date.Format("2006-01"))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return zerr.Wrap(err, domain.ErrEphemerisUnavailable.Error())
	}
	if err := json.Unmarshal(body, out); err != nil {
		return zerr.Wrap(err, domain.ErrEphemerisDecodeFailed.Error())
	}
	return nil
}
