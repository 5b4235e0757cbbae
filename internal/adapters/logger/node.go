package logger

import (
	"context"
	"io"
	"os"

	"github.com/grindlemire/graft"
	"go.trai.ch/casgen/internal/adapters/settings"
	"go.trai.ch/casgen/internal/core/domain"
	"go.trai.ch/casgen/internal/core/ports"
)

// NodeID is the unique identifier for the logger Graft node.
const NodeID graft.ID = "adapter.logger"

func init() {
	graft.Register(NewNode(os.Stderr))
}

// NewNode returns the logger node with human-readable output sent to stderr.
// Callers that own a different writer install it with graft.Patch.
func NewNode(stderr io.Writer) graft.Node[ports.Logger] {
	return graft.Node[ports.Logger]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{settings.NodeID},
		Run: func(ctx context.Context) (ports.Logger, error) {
			s, err := graft.Dep[domain.Settings](ctx)
			if err != nil {
				return nil, err
			}
			return Open(s.KmsgPath, stderr), nil
		},
	}
}
