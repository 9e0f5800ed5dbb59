package domain

import (
	"strconv"

	"github.com/cespare/xxhash/v2"
)

// Report is the result of analyzing one package.
type Report struct {
	// Root is the absolute package root.
	Root string
	// Name is the package name from the manifest.
	Name string

	Obsolete         []string
	MisplacedDeps    []string
	MisplacedDevDeps []string

	// Main holds the files of the main closure.
	Main []string
	// All holds every source file considered, including the main closure.
	All []string

	MainDeps []string
	AllDeps  []string
	DevDeps  []string

	// Warnings are the problems skipped in best-effort mode.
	Warnings []string
}

// NewReport assembles a report from a classification and the file sets it was computed from.
func NewReport(root, name string, c Classification, main, all FileSet, warnings []string) *Report {
	if warnings == nil {
		warnings = []string{}
	}
	return &Report{
		Root:             root,
		Name:             name,
		Obsolete:         c.Obsolete.Sorted(),
		MisplacedDeps:    c.MisplacedDeps.Sorted(),
		MisplacedDevDeps: c.MisplacedDevDeps.Sorted(),
		Main:             main.Sorted(),
		All:              all.Sorted(),
		MainDeps:         c.MainDeps.Sorted(),
		AllDeps:          c.AllDeps.Sorted(),
		DevDeps:          c.DevDeps.Sorted(),
		Warnings:         warnings,
	}
}

// HasIssues reports whether any dependency is obsolete or misplaced.
func (r *Report) HasIssues() bool {
	return len(r.Obsolete)+len(r.MisplacedDeps)+len(r.MisplacedDevDeps) > 0
}

// Fingerprint hashes the classification and warnings.
// Two reports with the same findings have the same fingerprint.
func (r *Report) Fingerprint() uint64 {
	d := xxhash.New()
	for i, group := range [][]string{r.Obsolete, r.MisplacedDeps, r.MisplacedDevDeps, r.Warnings} {
		_, _ = d.WriteString(strconv.Itoa(i))
		_, _ = d.WriteString(":")
		for _, v := range group {
			_, _ = d.WriteString(v)
			_, _ = d.Write([]byte{0})
		}
	}
	return d.Sum64()
}
