package parser

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/reqs/internal/core/ports"
)

// NodeID is the unique identifier for the import extractor Graft node.
const NodeID graft.ID = "adapter.parser"

func init() {
	graft.Register(graft.Node[ports.ImportExtractor]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ImportExtractor, error) {
			return NewCachingExtractor(NewExtractor(), DefaultCacheSize)
		},
	})
}
