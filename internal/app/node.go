package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/casgen/internal/adapters/config"   //nolint:depguard // Wired in app layer
	"go.trai.ch/casgen/internal/adapters/fs"       //nolint:depguard // Wired in app layer
	"go.trai.ch/casgen/internal/adapters/logger"   //nolint:depguard // Wired in app layer
	"go.trai.ch/casgen/internal/adapters/settings" //nolint:depguard // Wired in app layer
	"go.trai.ch/casgen/internal/core/domain"
	"go.trai.ch/casgen/internal/core/ports"
	"go.trai.ch/casgen/internal/engine/generator"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			config.ExporterNodeID,
			generator.NodeID,
			fs.OutputNodeID,
			logger.NodeID,
			settings.NodeID,
		},
		Run: runAppNode,
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			app, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewComponents(app, log), nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	exporter, err := graft.Dep[ports.TopologyExporter](ctx)
	if err != nil {
		return nil, err
	}

	gen, err := graft.Dep[*generator.Generator](ctx)
	if err != nil {
		return nil, err
	}

	outputs, err := graft.Dep[ports.OutputFactory](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	s, err := graft.Dep[domain.Settings](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, gen, outputs, exporter, log, s), nil
}
