package domain

import (
	"fmt"
	"time"

	"github.com/cespare/xxhash/v2"
)

// CacheKey is a stable string key for one scrub period under one profile.
// Keys from different profiles or reference timezones never collide: the
// profile fingerprint prefix makes them a disjoint keyspace rather than a
// patched one.
type CacheKey string

// periodLayout is the granularity of the scrub control: one key per
// calendar month in the reference timezone.
const periodLayout = "2006-01"

// Keyer derives cache keys from dates under a fixed reference timezone and
// profile. Construction fails when the timezone cannot be resolved; callers
// must then refuse to key at all, since no caching beats mis-keyed caching
// across timezone offsets.
type Keyer struct {
	loc         *time.Location
	fingerprint string
}

// NewKeyer builds a Keyer for the given profile. It returns
// ErrTimezoneUnavailable when the profile's reference timezone cannot be
// loaded.
func NewKeyer(profile Profile) (*Keyer, error) {
	if profile.Timezone == "" {
		return nil, ErrTimezoneUnavailable
	}
	loc, err := time.LoadLocation(profile.Timezone)
	if err != nil {
		return nil, ErrTimezoneUnavailable
	}
	return &Keyer{
		loc:         loc,
		fingerprint: fingerprint(profile),
	}, nil
}

// fingerprint hashes the profile inputs that make two dates comparable.
// Any change to them yields a different prefix and therefore a fresh keyspace.
func fingerprint(p Profile) string {
	h := xxhash.New()
	_, _ = fmt.Fprintf(h, "%s|%.6f|%.6f|%s", p.BirthDate, p.Latitude, p.Longitude, p.Timezone)
	return fmt.Sprintf("%016x", h.Sum64())
}

// Key derives the cache key for the period containing date. It is a pure,
// total function of its inputs: two dates in the same calendar month under
// the same reference timezone always produce an identical key.
func (k *Keyer) Key(date time.Time) CacheKey {
	return CacheKey(k.fingerprint + ":" + date.In(k.loc).Format(periodLayout))
}

// PeriodStart normalizes a date to the first instant of its period in the
// reference timezone. Scrub stepping operates on normalized dates so that
// month-length differences cannot skew successive steps.
func (k *Keyer) PeriodStart(date time.Time) time.Time {
	d := date.In(k.loc)
	return time.Date(d.Year(), d.Month(), 1, 0, 0, 0, 0, k.loc)
}

// AddPeriods steps a normalized date by n periods.
func (k *Keyer) AddPeriods(date time.Time, n int) time.Time {
	return k.PeriodStart(date).AddDate(0, n, 0)
}

// Location returns the reference timezone.
func (k *Keyer) Location() *time.Location {
	return k.loc
}
