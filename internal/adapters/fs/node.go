package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/casgen/internal/core/ports"
)

const (
	// OutputNodeID is the unique identifier for the output factory Graft node.
	OutputNodeID graft.ID = "adapter.fs.output"

	// HasherNodeID is the unique identifier for the hasher Graft node.
	HasherNodeID graft.ID = "adapter.fs.hasher"
)

func init() {
	graft.Register(graft.Node[ports.OutputFactory]{
		ID:        OutputNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.OutputFactory, error) {
			return NewOutputFactory(), nil
		},
	})

	graft.Register(graft.Node[ports.Hasher]{
		ID:        HasherNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Hasher, error) {
			return NewHasher(), nil
		},
	})
}
