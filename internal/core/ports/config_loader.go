// Package ports defines the core interfaces for the application.
package ports

import "go.trai.ch/casgen/internal/core/domain"

// ConfigLoader defines the interface for loading the cache configuration.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the configuration file at path into a topology bounded by limits.
	// It fails if the file cannot be opened or a record is malformed; references
	// between records are not checked.
	Load(path string, limits domain.Limits) (*domain.Topology, error)
}
