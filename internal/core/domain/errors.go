package domain

import "go.trai.ch/zerr"

var (
	// ErrTimezoneUnavailable is returned when the profile's reference timezone
	// cannot be resolved. Without it no cache key may be derived.
	ErrTimezoneUnavailable = zerr.New("reference timezone unavailable")

	// ErrNotReady is returned when the engine is asked to run before the
	// profile carries the required reference inputs. This is an expected
	// precondition, surfaced as a distinct state rather than a fault.
	ErrNotReady = zerr.New("profile is missing reference inputs")

	// ErrEphemerisUnavailable is returned for transient network or service
	// failures of the remote computation.
	ErrEphemerisUnavailable = zerr.New("ephemeris service unavailable")

	// ErrEphemerisRejected is returned when the remote computation rejects
	// the request parameters.
	ErrEphemerisRejected = zerr.New("ephemeris service rejected the request")

	// ErrEphemerisDecodeFailed is returned when a service response cannot be
	// decoded.
	ErrEphemerisDecodeFailed = zerr.New("failed to decode ephemeris response")

	// ErrConfigNotFound is returned when no transit.yaml can be found.
	ErrConfigNotFound = zerr.New("could not find transit.yaml")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrInvalidDate is returned when a user-supplied date cannot be parsed.
	ErrInvalidDate = zerr.New("invalid date, expected YYYY-MM")

	// ErrWatcherStartFailed is returned when the profile watcher cannot start.
	ErrWatcherStartFailed = zerr.New("failed to start profile watcher")

	// ErrBootstrapFailed is returned when the initial snapshot fetch fails.
	ErrBootstrapFailed = zerr.New("failed to bootstrap snapshot engine")
)
