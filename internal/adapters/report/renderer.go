package report

import "go.trai.ch/reqs/internal/core/ports"

// Options selects a renderer.
type Options struct {
	JSON    bool
	Plain   bool
	Verbose bool
}

// NewRenderer returns the renderer matching opts.
func NewRenderer(opts Options) ports.ReportRenderer {
	if opts.JSON {
		return NewJSONRenderer(opts.Verbose)
	}
	return NewTextRenderer(opts.Plain, opts.Verbose)
}
