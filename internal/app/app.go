// Package app implements the application layer for reqs.
package app

import (
	"context"
	"io"
	"path/filepath"
	"strconv"
	"time"

	"go.trai.ch/reqs/internal/adapters/detector"
	"go.trai.ch/reqs/internal/adapters/report"
	"go.trai.ch/reqs/internal/adapters/watcher"
	"go.trai.ch/reqs/internal/core/domain"
	"go.trai.ch/reqs/internal/core/ports"
	"go.trai.ch/zerr"
)

// DefaultDebounce is how long watch mode waits for changes to settle.
const DefaultDebounce = 200 * time.Millisecond

// Analyzer produces a report for a package root.
type Analyzer interface {
	Analyze(ctx context.Context, root string, opts domain.Options) (*domain.Report, error)
}

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	analyzer     Analyzer
	logger       ports.Logger
	watchers     ports.WatcherFactory
	debounce     time.Duration
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	analyzer Analyzer,
	log ports.Logger,
	watchers ports.WatcherFactory,
) *App {
	return &App{
		configLoader: loader,
		analyzer:     analyzer,
		logger:       log,
		watchers:     watchers,
		debounce:     DefaultDebounce,
	}
}

// WithDebounce sets the window watch mode waits for changes to settle.
func (a *App) WithDebounce(d time.Duration) *App {
	a.debounce = d
	return a
}

// CheckOptions configure Check and Watch.
type CheckOptions struct {
	// Overrides are layered on top of the defaults and the config file.
	Overrides domain.Options
	// JSON selects the machine-readable report.
	JSON bool
	// Verbose includes the file and dependency sets.
	Verbose bool
	// Strict makes Check fail with domain.ErrIssuesFound when the report has issues.
	Strict bool
	// OutputMode is one of "auto", "pretty" or "plain".
	OutputMode string
}

// Check analyzes the package at root and writes the report to w.
func (a *App) Check(ctx context.Context, root string, opts CheckOptions, w io.Writer) error {
	r, err := a.analyze(ctx, root, opts)
	if err != nil {
		return err
	}

	if err := a.renderer(opts).Render(w, r); err != nil {
		return zerr.Wrap(err, "failed to write report")
	}

	if opts.Strict && r.HasIssues() {
		return domain.ErrIssuesFound
	}
	return nil
}

// Watch runs Check, then re-runs it whenever a relevant file below root changes.
// A report is written only when its findings differ from the previous one.
// Analysis failures are logged and watching continues. Watch returns nil when ctx is done.
func (a *App) Watch(ctx context.Context, root string, opts CheckOptions, w io.Writer) error {
	effective, err := a.options(root, opts.Overrides)
	if err != nil {
		return err
	}

	abs, err := domain.NormalizePath(root)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to resolve package root"), "path", root)
	}

	fsWatcher, err := a.watchers(effective.ExcludeDirs)
	if err != nil {
		return zerr.Wrap(err, "failed to create file watcher")
	}
	defer func() { _ = fsWatcher.Stop() }()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if err := fsWatcher.Start(ctx, abs); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to watch package root"), "path", abs)
	}

	rerun := make(chan struct{}, 1)
	debouncer := watcher.NewDebouncer(a.debounce, func(paths []string) {
		a.logger.Debug("changed: " + filepath.Base(paths[0]) + moreSuffix(len(paths)-1))
		select {
		case rerun <- struct{}{}:
		default:
		}
	})
	defer debouncer.Stop()

	go func() {
		for change := range fsWatcher.Changes() {
			if relevant(change.Path, effective.Extensions) {
				debouncer.Add(change.Path)
			}
		}
	}()

	var last uint64
	check := func() {
		r, err := a.analyze(ctx, abs, opts)
		if err != nil {
			if ctx.Err() == nil {
				a.logger.Error(err)
			}
			last = 0
			return
		}
		if fp := r.Fingerprint(); fp != last {
			last = fp
			if err := a.renderer(opts).Render(w, r); err != nil {
				a.logger.Error(zerr.Wrap(err, "failed to write report"))
			}
		}
	}

	check()
	a.logger.Info("watching " + abs + " for changes")

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-rerun:
			check()
		}
	}
}

// analyze loads the effective options for root and runs the analyzer.
func (a *App) analyze(ctx context.Context, root string, opts CheckOptions) (*domain.Report, error) {
	effective, err := a.options(root, opts.Overrides)
	if err != nil {
		return nil, err
	}
	return a.analyzer.Analyze(ctx, root, effective)
}

// options merges defaults, the config file at root, and overrides, in that order.
func (a *App) options(root string, overrides domain.Options) (domain.Options, error) {
	fromFile, err := a.configLoader.Load(root)
	if err != nil {
		return domain.Options{}, err
	}
	return domain.DefaultOptions().Merge(fromFile).Merge(overrides), nil
}

func (a *App) renderer(opts CheckOptions) ports.ReportRenderer {
	mode := detector.ResolveMode(detector.DetectEnvironment(), opts.OutputMode)
	return report.NewRenderer(report.Options{
		JSON:    opts.JSON,
		Plain:   mode == detector.ModePlain,
		Verbose: opts.Verbose,
	})
}

// relevant reports whether a change to path can alter the report.
func relevant(path string, extensions []string) bool {
	switch filepath.Base(path) {
	case domain.ManifestFileName, domain.ConfigFileName:
		return true
	}
	return filepath.Ext(path) == "" || domain.HasExtension(path, extensions)
}

func moreSuffix(n int) string {
	if n <= 0 {
		return ""
	}
	return " and " + strconv.Itoa(n) + " more"
}
