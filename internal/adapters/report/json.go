package report

import (
	"encoding/json"
	"io"

	"go.trai.ch/reqs/internal/core/domain"
	"go.trai.ch/reqs/internal/core/ports"
)

var _ ports.ReportRenderer = (*JSONRenderer)(nil)

// jsonReport is the machine-readable form of a report.
type jsonReport struct {
	Root             string   `json:"root"`
	Name             string   `json:"name,omitempty"`
	Obsolete         []string `json:"obsolete"`
	MisplacedDeps    []string `json:"misplacedDeps"`
	MisplacedDevDeps []string `json:"misplacedDevDeps"`
	Warnings         []string `json:"warnings"`
}

// jsonVerboseReport adds the file and dependency sets.
type jsonVerboseReport struct {
	jsonReport
	Main     []string `json:"main"`
	All      []string `json:"all"`
	MainDeps []string `json:"mainDeps"`
	AllDeps  []string `json:"allDeps"`
	DevDeps  []string `json:"devDeps"`
}

// JSONRenderer writes a report as indented JSON.
type JSONRenderer struct {
	verbose bool
}

// NewJSONRenderer creates a JSON renderer. With verbose, file and dependency sets are included.
func NewJSONRenderer(verbose bool) *JSONRenderer {
	return &JSONRenderer{verbose: verbose}
}

// Render writes r to w followed by a newline.
func (j *JSONRenderer) Render(w io.Writer, r *domain.Report) error {
	dto := jsonReport{
		Root:             r.Root,
		Name:             r.Name,
		Obsolete:         nonNil(r.Obsolete),
		MisplacedDeps:    nonNil(r.MisplacedDeps),
		MisplacedDevDeps: nonNil(r.MisplacedDevDeps),
		Warnings:         nonNil(r.Warnings),
	}

	var v any = dto
	if j.verbose {
		v = jsonVerboseReport{
			jsonReport: dto,
			Main:       nonNil(r.Main),
			All:        nonNil(r.All),
			MainDeps:   nonNil(r.MainDeps),
			AllDeps:    nonNil(r.AllDeps),
			DevDeps:    nonNil(r.DevDeps),
		}
	}

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = w.Write(append(data, '\n'))
	return err
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
