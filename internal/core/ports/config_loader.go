package ports

import "go.trai.ch/reqs/internal/core/domain"

// ConfigLoader defines the interface for loading the per-package configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the configuration file from root. A missing file yields zero Options.
	Load(root string) (domain.Options, error)
}
