// Package closure computes the set of files reachable from entry points through local imports.
package closure

import (
	"context"
	"path/filepath"
	"slices"
	"sync"

	"go.trai.ch/reqs/internal/core/domain"
	"go.trai.ch/reqs/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// SpecifierSource returns the import specifiers of a file.
type SpecifierSource interface {
	Specifiers(ctx context.Context, path string) ([]string, error)
}

// Options tune a closure build.
type Options struct {
	// Extensions are tried by the resolver after the built-in ones.
	Extensions []string
	// Workers bounds the files processed concurrently in a round.
	Workers int
	// Warn, when set, receives unresolvable imports and unreadable files
	// instead of failing the build.
	Warn func(error)
}

// Builder walks local imports breadth-first.
type Builder struct {
	source   SpecifierSource
	resolver ports.ModuleResolver
}

// NewBuilder creates a Builder.
func NewBuilder(source SpecifierSource, resolver ports.ModuleResolver) *Builder {
	return &Builder{source: source, resolver: resolver}
}

// visited is the set of files already admitted into the closure.
type visited struct {
	mu    sync.Mutex
	files domain.FileSet
}

// admit marks files as visited and returns those that were not visited before.
func (v *visited) admit(files ...string) []string {
	v.mu.Lock()
	defer v.mu.Unlock()

	fresh := make([]string, 0, len(files))
	for _, f := range files {
		if v.files.Add(f) {
			fresh = append(fresh, f)
		}
	}
	return fresh
}

// Build returns seeds plus every file reachable from them through local imports.
func (b *Builder) Build(ctx context.Context, seeds []string, opts Options) (domain.FileSet, error) {
	seen := &visited{files: domain.NewSet[string]()}
	frontier := seen.admit(seeds...)

	workers := opts.Workers
	if workers <= 0 {
		workers = 1
	}

	for len(frontier) > 0 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		var (
			mu   sync.Mutex
			next []string
		)

		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(workers)

		for _, file := range frontier {
			g.Go(func() error {
				targets, err := b.edges(gctx, file, opts)
				if err != nil {
					return err
				}

				fresh := seen.admit(targets...)
				mu.Lock()
				next = append(next, fresh...)
				mu.Unlock()
				return nil
			})
		}

		if err := g.Wait(); err != nil {
			return nil, err
		}

		slices.Sort(next)
		frontier = next
	}

	return seen.files, nil
}

// edges returns the files that file imports locally.
func (b *Builder) edges(ctx context.Context, file string, opts Options) ([]string, error) {
	specs, err := b.source.Specifiers(ctx, file)
	if err != nil {
		if opts.Warn == nil {
			return nil, err
		}
		opts.Warn(err)
		return nil, nil
	}

	local := make([]string, 0, len(specs))
	for _, spec := range specs {
		if domain.IsLocal(spec) && !slices.Contains(local, spec) {
			local = append(local, spec)
		}
	}
	if len(local) == 0 {
		return nil, nil
	}

	targets := make([]string, len(local))
	baseDir := filepath.Dir(file)

	g, gctx := errgroup.WithContext(ctx)
	for i, spec := range local {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			target, err := b.resolver.Resolve(spec, baseDir, opts.Extensions)
			if err != nil {
				err = zerr.With(zerr.Wrap(err, "unresolved import in "+file), "from", file)
				if opts.Warn == nil {
					return err
				}
				opts.Warn(err)
				return nil
			}
			targets[i] = target
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return slices.DeleteFunc(targets, func(t string) bool { return t == "" }), nil
}
