// Package analyzer compares the dependencies a package declares with the ones it imports.
package analyzer

import (
	"context"
	"fmt"
	"os"
	"slices"
	"sync"

	"go.trai.ch/reqs/internal/core/domain"
	"go.trai.ch/reqs/internal/core/ports"
	"go.trai.ch/reqs/internal/engine/closure"
	"go.trai.ch/reqs/internal/engine/deps"
	"go.trai.ch/reqs/internal/engine/imports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Analyzer runs a full analysis of one package.
type Analyzer struct {
	manifests ports.ManifestLoader
	resolver  ports.ModuleResolver
	lister    ports.FileLister
	reader    ports.SourceReader
	extractor ports.ImportExtractor
	tracer    ports.Tracer
	logger    ports.Logger
}

// New creates an Analyzer.
func New(
	manifests ports.ManifestLoader,
	resolver ports.ModuleResolver,
	lister ports.FileLister,
	reader ports.SourceReader,
	extractor ports.ImportExtractor,
	tracer ports.Tracer,
	logger ports.Logger,
) *Analyzer {
	return &Analyzer{
		manifests: manifests,
		resolver:  resolver,
		lister:    lister,
		reader:    reader,
		extractor: extractor,
		tracer:    tracer,
		logger:    logger,
	}
}

// warnings records problems skipped in best-effort mode.
type warnings struct {
	mu     sync.Mutex
	seen   domain.Set[string]
	logger ports.Logger
}

func (w *warnings) add(err error) {
	msg := err.Error()

	w.mu.Lock()
	fresh := w.seen.Add(msg)
	w.mu.Unlock()

	if fresh && w.logger != nil {
		w.logger.Warn(msg)
	}
}

// run holds the state of a single Analyze call.
type run struct {
	root  string
	opts  domain.Options
	index *imports.Index
	warn  func(error)
}

// Analyze loads the manifest below root, computes the main closure and the
// project files, and classifies the declared dependencies.
// Either a complete report or exactly one error is returned.
func (a *Analyzer) Analyze(ctx context.Context, root string, opts domain.Options) (*domain.Report, error) {
	ctx, span := a.tracer.Start(ctx, "analyze")
	defer span.End()

	report, err := a.analyze(ctx, root, opts)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	span.SetAttribute("obsolete", len(report.Obsolete))
	span.SetAttribute("misplaced", len(report.MisplacedDeps)+len(report.MisplacedDevDeps))
	return report, nil
}

func (a *Analyzer) analyze(ctx context.Context, root string, opts domain.Options) (*domain.Report, error) {
	root, err := validateRoot(root)
	if err != nil {
		return nil, err
	}

	opts = opts.WithDefaults()
	w := &warnings{seen: domain.NewSet[string](), logger: a.logger}
	r := &run{
		root:  root,
		opts:  opts,
		index: imports.NewIndex(a.reader, a.extractor, opts.Extensions),
	}
	if opts.BestEffort {
		r.warn = w.add
	}

	manifest, err := a.loadManifest(ctx, r)
	if err != nil {
		return nil, err
	}

	mainFiles, err := a.mainClosure(ctx, r, manifest)
	if err != nil {
		return nil, err
	}

	allFiles, err := a.enumerate(ctx, r, mainFiles)
	if err != nil {
		return nil, err
	}

	mainDeps, allDeps, err := a.extract(ctx, r, mainFiles, allFiles)
	if err != nil {
		return nil, err
	}

	c := domain.Classify(manifest.Dependencies, manifest.DevDependencies, mainDeps, allDeps, opts.Policy())

	return domain.NewReport(root, manifest.Name, c, mainFiles, allFiles, w.seen.Sorted()), nil
}

func validateRoot(root string) (string, error) {
	abs, err := domain.NormalizePath(root)
	if err != nil {
		return "", zerr.With(fmt.Errorf("%w: %w", domain.ErrInvalidRoot, err), "path", root)
	}

	info, err := os.Stat(abs)
	if err != nil {
		return "", zerr.With(fmt.Errorf("%w: %w", domain.ErrInvalidRoot, err), "path", abs)
	}
	if !info.IsDir() {
		return "", zerr.With(fmt.Errorf("%w: %s", domain.ErrInvalidRoot, abs), "path", abs)
	}
	return abs, nil
}

func (a *Analyzer) loadManifest(ctx context.Context, r *run) (*domain.Manifest, error) {
	_, span := a.tracer.Start(ctx, "manifest")
	defer span.End()

	m, err := a.manifests.Load(r.root)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	span.SetAttribute("dependencies", m.Dependencies.Len())
	span.SetAttribute("devDependencies", m.DevDependencies.Len())
	span.SetAttribute("entries", m.EntryPoints)
	return m, nil
}

// mainClosure resolves the entry points and follows their local imports.
func (a *Analyzer) mainClosure(ctx context.Context, r *run, m *domain.Manifest) (domain.FileSet, error) {
	ctx, span := a.tracer.Start(ctx, "closure")
	defer span.End()

	seeds := make([]string, 0, len(m.EntryPoints))
	for _, entry := range m.EntryPoints {
		spec := entry
		if !domain.IsLocal(spec) {
			spec = "./" + spec
		}

		file, err := a.resolver.Resolve(spec, r.root, r.opts.Extensions)
		if err != nil {
			err = zerr.With(zerr.Wrap(err, "entry point "+entry), "entry", entry)
			if r.warn == nil {
				span.RecordError(err)
				return nil, err
			}
			r.warn(err)
			continue
		}
		if !slices.Contains(seeds, file) {
			seeds = append(seeds, file)
		}
	}

	builder := closure.NewBuilder(r.index, a.resolver)
	files, err := builder.Build(ctx, seeds, closure.Options{
		Extensions: r.opts.Extensions,
		Workers:    r.opts.Workers(),
		Warn:       r.warn,
	})
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	span.SetAttribute("files", files.Len())
	return files, nil
}

// enumerate lists the project files and adds the main closure to them.
func (a *Analyzer) enumerate(ctx context.Context, r *run, mainFiles domain.FileSet) (domain.FileSet, error) {
	ctx, span := a.tracer.Start(ctx, "enumerate")
	defer span.End()

	listed, err := a.lister.List(ctx, r.root, r.opts.ExcludeDirs, r.opts.Extensions)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	all := domain.NewSet(listed...).Union(mainFiles)
	span.SetAttribute("files", all.Len())
	return all, nil
}

// extract collects the package names imported by the main closure and by all files.
func (a *Analyzer) extract(
	ctx context.Context,
	r *run,
	mainFiles, allFiles domain.FileSet,
) (mainDeps, allDeps domain.NameSet, err error) {
	ctx, span := a.tracer.Start(ctx, "extract")
	defer span.End()

	collector := deps.NewCollector(r.index)
	opts := deps.Options{
		Builtins: domain.NodeBuiltins,
		Workers:  r.opts.Workers(),
		Warn:     r.warn,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		mainDeps, err = collector.Collect(gctx, mainFiles, opts)
		return err
	})
	g.Go(func() error {
		var err error
		allDeps, err = collector.Collect(gctx, allFiles, opts)
		return err
	})

	if err := g.Wait(); err != nil {
		span.RecordError(err)
		return nil, nil, err
	}

	span.SetAttribute("mainDeps", mainDeps.Len())
	span.SetAttribute("allDeps", allDeps.Len())
	span.SetAttribute("parsed", r.index.Len())
	return mainDeps, allDeps, nil
}
