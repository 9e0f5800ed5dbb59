package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/reqs/internal/core/ports"
)

const (
	// WalkerNodeID is the unique identifier for the walker Graft node.
	WalkerNodeID graft.ID = "adapter.fs.walker"
	// ListerNodeID is the unique identifier for the file lister Graft node.
	ListerNodeID graft.ID = "adapter.fs.lister"
	// ResolverNodeID is the unique identifier for the module resolver Graft node.
	ResolverNodeID graft.ID = "adapter.fs.resolver"
	// ReaderNodeID is the unique identifier for the source reader Graft node.
	ReaderNodeID graft.ID = "adapter.fs.reader"
)

func init() {
	graft.Register(graft.Node[*Walker]{
		ID:        WalkerNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Walker, error) {
			return NewWalker(), nil
		},
	})

	graft.Register(graft.Node[ports.FileLister]{
		ID:        ListerNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{WalkerNodeID},
		Run: func(ctx context.Context) (ports.FileLister, error) {
			walker, err := graft.Dep[*Walker](ctx)
			if err != nil {
				return nil, err
			}
			return NewLister(walker), nil
		},
	})

	graft.Register(graft.Node[ports.ModuleResolver]{
		ID:        ResolverNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ModuleResolver, error) {
			return NewResolver(), nil
		},
	})

	graft.Register(graft.Node[ports.SourceReader]{
		ID:        ReaderNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.SourceReader, error) {
			return NewReader(), nil
		},
	})
}
