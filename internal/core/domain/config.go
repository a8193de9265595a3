package domain

import "time"

// Profile holds the user's reference inputs. They parameterize every remote
// computation, so changing any of them invalidates the entire cache keyspace.
type Profile struct {
	// BirthDate is the reference birth date in YYYY-MM-DD form.
	BirthDate string
	Latitude  float64
	Longitude float64
	// Timezone is the IANA identifier of the reference timezone.
	Timezone string
}

// Ready reports whether the profile carries enough data to derive cache
// keys. An unready profile is an expected precondition, not a fault.
func (p Profile) Ready() bool {
	return p.Timezone != "" && p.BirthDate != ""
}

// ConfigFileName is the name of the configuration file discovered by
// walking upward from the working directory.
const ConfigFileName = "transit.yaml"

// Engine tuning defaults.
const (
	// DefaultCacheCapacity bounds each cache tier independently.
	DefaultCacheCapacity = 24
	// DefaultDebounceWindow is the pause after the last scrub input before
	// a real fetch is committed.
	DefaultDebounceWindow = 200 * time.Millisecond
	// DefaultPrefetchRadius is the symmetric window of neighboring periods
	// warmed after a committed fetch.
	DefaultPrefetchRadius = 3
	// DefaultMarkerStaleness bounds how long carried-forward period markers
	// are considered fresh. The carry-forward is an intentional
	// accuracy/latency trade-off; this bound makes the staleness window
	// explicit and configurable.
	DefaultMarkerStaleness = 90 * 24 * time.Hour
)

// Settings holds the engine tuning knobs.
type Settings struct {
	PositionCapacity int
	SnapshotCapacity int
	DebounceWindow   time.Duration
	PrefetchRadius   int
	MarkerStaleness  time.Duration
}

// DefaultSettings returns the engine defaults.
func DefaultSettings() Settings {
	return Settings{
		PositionCapacity: DefaultCacheCapacity,
		SnapshotCapacity: DefaultCacheCapacity,
		DebounceWindow:   DefaultDebounceWindow,
		PrefetchRadius:   DefaultPrefetchRadius,
		MarkerStaleness:  DefaultMarkerStaleness,
	}
}

// Config is the loaded application configuration.
type Config struct {
	Profile    Profile
	ServiceURL string
	Settings   Settings
	// Path is the file the configuration was loaded from. The watcher uses
	// it to trigger an engine reset when the profile changes on disk.
	Path string
}
