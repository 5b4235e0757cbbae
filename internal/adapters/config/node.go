package config

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/casgen/internal/core/ports"
)

const (
	// NodeID is the unique identifier for the configuration loader Graft node.
	NodeID graft.ID = "adapter.config_loader"

	// ExporterNodeID is the unique identifier for the topology exporter Graft node.
	ExporterNodeID graft.ID = "adapter.config_exporter"
)

func init() {
	graft.Register(graft.Node[ports.ConfigLoader]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ConfigLoader, error) {
			return NewLoader(NewOSFS()), nil
		},
	})

	graft.Register(graft.Node[ports.TopologyExporter]{
		ID:        ExporterNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.TopologyExporter, error) {
			return NewYAMLExporter(), nil
		},
	})
}
