// Package config provides the configuration loader for transit.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.trai.ch/transit/internal/core/domain"
	"go.trai.ch/transit/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// defaultServiceURL is used when the config file does not name a service.
const defaultServiceURL = "https://api.transit.trai.ch"

// Loader implements ports.ConfigLoader using a YAML file discovered by
// walking upward from the working directory.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load reads the configuration file found at or above cwd. A missing or
// incomplete profile is not an error here: the caller inspects
// Profile.Ready and renders the not-ready state.
func (l *Loader) Load(cwd string) (*domain.Config, error) {
	configPath, err := l.findConfiguration(cwd)
	if err != nil {
		return nil, err
	}

	// #nosec G304 -- configPath is discovered relative to the caller's cwd
	raw, err := os.ReadFile(configPath)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	var file File
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, zerr.Wrap(err, domain.ErrConfigParseFailed.Error())
	}

	cfg := &domain.Config{
		Profile: domain.Profile{
			BirthDate: file.Profile.BirthDate,
			Latitude:  file.Profile.Latitude,
			Longitude: file.Profile.Longitude,
			Timezone:  file.Profile.Timezone,
		},
		ServiceURL: file.Service.URL,
		Settings:   l.resolveSettings(file.Engine),
		Path:       configPath,
	}
	if cfg.ServiceURL == "" {
		cfg.ServiceURL = defaultServiceURL
	}
	return cfg, nil
}

func (l *Loader) findConfiguration(cwd string) (string, error) {
	currentDir := cwd
	for {
		configPath := filepath.Join(currentDir, domain.ConfigFileName)
		if _, err := os.Stat(configPath); err == nil {
			return configPath, nil
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root
			break
		}
		currentDir = parentDir
	}
	return "", zerr.With(domain.ErrConfigNotFound, "cwd", cwd)
}

// resolveSettings merges the file's engine section over the defaults.
// Invalid duration strings are warned about and ignored rather than
// failing the load.
func (l *Loader) resolveSettings(dto SettingsDTO) domain.Settings {
	settings := domain.DefaultSettings()

	if dto.PositionCapacity > 0 {
		settings.PositionCapacity = dto.PositionCapacity
	}
	if dto.SnapshotCapacity > 0 {
		settings.SnapshotCapacity = dto.SnapshotCapacity
	}
	if dto.PrefetchRadius > 0 {
		settings.PrefetchRadius = dto.PrefetchRadius
	}
	if d, ok := l.parseDuration("engine.debounceWindow", dto.DebounceWindow); ok {
		settings.DebounceWindow = d
	}
	if d, ok := l.parseDuration("engine.markerStaleness", dto.MarkerStaleness); ok {
		settings.MarkerStaleness = d
	}
	return settings
}

func (l *Loader) parseDuration(field, value string) (time.Duration, bool) {
	if value == "" {
		return 0, false
	}
	d, err := time.ParseDuration(value)
	if err != nil || d <= 0 {
		if l.Logger != nil {
			l.Logger.Warn(fmt.Sprintf("ignoring invalid %s %q", field, value))
		}
		return 0, false
	}
	return d, true
}
