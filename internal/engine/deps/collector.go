// Package deps collects the external package names imported by a set of files.
package deps

import (
	"context"
	"sync"

	"go.trai.ch/reqs/internal/core/domain"
	"golang.org/x/sync/errgroup"
)

// SpecifierSource returns the import specifiers of a file.
type SpecifierSource interface {
	Specifiers(ctx context.Context, path string) ([]string, error)
}

// Options tune a collection.
type Options struct {
	// Builtins are module names provided by the runtime.
	Builtins domain.Builtins
	// Workers bounds the files processed concurrently.
	Workers int
	// Warn, when set, receives unreadable files instead of failing the collection.
	Warn func(error)
}

// Collector extracts package names from import specifiers.
type Collector struct {
	source SpecifierSource
}

// NewCollector creates a Collector.
func NewCollector(source SpecifierSource) *Collector {
	return &Collector{source: source}
}

// Collect returns the external package names imported by files.
// Local and builtin specifiers are discarded.
func (c *Collector) Collect(ctx context.Context, files domain.FileSet, opts Options) (domain.NameSet, error) {
	builtins := opts.Builtins
	if builtins == nil {
		builtins = domain.NodeBuiltins
	}

	var mu sync.Mutex
	names := domain.NewSet[string]()

	g, gctx := errgroup.WithContext(ctx)
	if opts.Workers > 0 {
		g.SetLimit(opts.Workers)
	}

	for _, file := range files.Sorted() {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			specs, err := c.source.Specifiers(gctx, file)
			if err != nil {
				if opts.Warn == nil {
					return err
				}
				opts.Warn(err)
				return nil
			}

			var found []string
			for _, spec := range specs {
				if kind, name := domain.ClassifySpecifier(spec, builtins); kind == domain.SpecifierExternal {
					found = append(found, name)
				}
			}

			mu.Lock()
			for _, name := range found {
				names.Add(name)
			}
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return names, nil
}
