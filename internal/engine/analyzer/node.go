package analyzer

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/reqs/internal/adapters/fs"
	"go.trai.ch/reqs/internal/adapters/logger"
	"go.trai.ch/reqs/internal/adapters/manifest"
	"go.trai.ch/reqs/internal/adapters/parser"
	"go.trai.ch/reqs/internal/adapters/telemetry"
	"go.trai.ch/reqs/internal/core/ports"
)

// NodeID is the unique identifier for the analyzer Graft node.
const NodeID graft.ID = "engine.analyzer"

func init() {
	graft.Register(graft.Node[*Analyzer]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			manifest.NodeID,
			fs.ResolverNodeID,
			fs.ListerNodeID,
			fs.ReaderNodeID,
			parser.NodeID,
			telemetry.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Analyzer, error) {
			manifests, err := graft.Dep[ports.ManifestLoader](ctx)
			if err != nil {
				return nil, err
			}
			resolver, err := graft.Dep[ports.ModuleResolver](ctx)
			if err != nil {
				return nil, err
			}
			lister, err := graft.Dep[ports.FileLister](ctx)
			if err != nil {
				return nil, err
			}
			reader, err := graft.Dep[ports.SourceReader](ctx)
			if err != nil {
				return nil, err
			}
			extractor, err := graft.Dep[ports.ImportExtractor](ctx)
			if err != nil {
				return nil, err
			}
			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return New(manifests, resolver, lister, reader, extractor, tracer, log), nil
		},
	})
}
