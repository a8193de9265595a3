package ports

import "go.trai.ch/transit/internal/core/domain"

// ConfigLoader loads the application configuration for a working directory.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load discovers and parses the configuration starting at cwd.
	Load(cwd string) (*domain.Config, error)
}
