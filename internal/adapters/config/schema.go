package config

// File represents the structure of the transit.yaml configuration file.
type File struct {
	Version string      `yaml:"version"`
	Profile ProfileDTO  `yaml:"profile"`
	Service ServiceDTO  `yaml:"service"`
	Engine  SettingsDTO `yaml:"engine"`
}

// ProfileDTO holds the user's reference inputs.
type ProfileDTO struct {
	BirthDate string  `yaml:"birthDate"`
	Latitude  float64 `yaml:"latitude"`
	Longitude float64 `yaml:"longitude"`
	Timezone  string  `yaml:"timezone"`
}

// ServiceDTO configures the transit service endpoint.
type ServiceDTO struct {
	URL string `yaml:"url"`
}

// SettingsDTO holds the optional engine tuning knobs. Zero values fall
// back to the engine defaults.
type SettingsDTO struct {
	PositionCapacity int    `yaml:"positionCapacity"`
	SnapshotCapacity int    `yaml:"snapshotCapacity"`
	DebounceWindow   string `yaml:"debounceWindow"`
	PrefetchRadius   int    `yaml:"prefetchRadius"`
	MarkerStaleness  string `yaml:"markerStaleness"`
}
