package ports

import "go.trai.ch/casgen/internal/core/domain"

// TopologyExporter serializes a resolved configuration for inspection.
type TopologyExporter interface {
	Export(topo *domain.Topology, bindings []domain.Binding) ([]byte, error)
}
