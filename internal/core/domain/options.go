package domain

import (
	"runtime"
	"slices"
)

// Options control a single analysis run.
type Options struct {
	// ExcludeDirs are directory names (or filepath.Match patterns) skipped during enumeration.
	ExcludeDirs []string
	// Extensions are the file extensions treated as parseable source.
	Extensions []string
	// Exempt names are never reported as obsolete.
	Exempt []string
	// BestEffort skips unresolvable imports and unreadable files, recording warnings.
	BestEffort bool
	// Concurrency bounds the number of files processed at once. Zero means runtime.NumCPU().
	Concurrency int
}

// DefaultOptions returns the options used when nothing is configured.
func DefaultOptions() Options {
	return Options{
		ExcludeDirs: []string{"node_modules", "components", "fixtures", "fixture"},
		Extensions:  []string{".js", ".cjs", ".mjs", ".jsx"},
		Exempt:      slices.Clone(DefaultExemptions),
	}
}

// Merge layers other on top of o. List fields are combined without duplicates,
// BestEffort is enabled if either side enables it, and a positive Concurrency in
// other replaces the one in o.
func (o Options) Merge(other Options) Options {
	out := Options{
		ExcludeDirs: appendUnique(slices.Clone(o.ExcludeDirs), other.ExcludeDirs...),
		Extensions:  appendUnique(slices.Clone(o.Extensions), other.Extensions...),
		Exempt:      appendUnique(slices.Clone(o.Exempt), other.Exempt...),
		BestEffort:  o.BestEffort || other.BestEffort,
		Concurrency: o.Concurrency,
	}
	if other.Concurrency > 0 {
		out.Concurrency = other.Concurrency
	}
	return out
}

// WithDefaults fills every empty list field from DefaultOptions, so the zero
// Options value analyzes like an unconfigured run.
func (o Options) WithDefaults() Options {
	def := DefaultOptions()
	if len(o.ExcludeDirs) == 0 {
		o.ExcludeDirs = def.ExcludeDirs
	}
	if len(o.Extensions) == 0 {
		o.Extensions = def.Extensions
	}
	if len(o.Exempt) == 0 {
		o.Exempt = def.Exempt
	}
	return o
}

// Workers returns the effective concurrency bound.
func (o Options) Workers() int {
	if o.Concurrency > 0 {
		return o.Concurrency
	}
	return runtime.NumCPU()
}

// Policy returns the classification policy described by the options.
func (o Options) Policy() Policy {
	return Policy{Exempt: NewSet(o.Exempt...)}
}

func appendUnique(dst []string, values ...string) []string {
	for _, v := range values {
		if v != "" && !slices.Contains(dst, v) {
			dst = append(dst, v)
		}
	}
	return dst
}
