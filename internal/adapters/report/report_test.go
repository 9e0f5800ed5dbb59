package report_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/reqs/internal/adapters/report"
	"go.trai.ch/reqs/internal/core/domain"
)

func cleanReport() *domain.Report {
	return &domain.Report{
		Root:             "/work/pkg",
		Name:             "pkg",
		Obsolete:         []string{},
		MisplacedDeps:    []string{},
		MisplacedDevDeps: []string{},
		Main:             []string{"/work/pkg/index.js"},
		All:              []string{"/work/pkg/index.js", "/work/pkg/test/index.js"},
		MainDeps:         []string{"lodash"},
		AllDeps:          []string{"lodash", "tape"},
		DevDeps:          []string{"tape"},
		Warnings:         []string{},
	}
}

func problemReport() *domain.Report {
	return &domain.Report{
		Root:             "/work/pkg",
		Name:             "pkg",
		Obsolete:         []string{"left-pad", "request"},
		MisplacedDeps:    []string{"tape"},
		MisplacedDevDeps: []string{"chalk"},
		Main:             []string{"/work/pkg/index.js", "/work/pkg/lib/cli.js"},
		All:              []string{"/work/pkg/index.js", "/work/pkg/lib/cli.js", "/work/pkg/test/index.js"},
		MainDeps:         []string{"chalk"},
		AllDeps:          []string{"chalk", "tape"},
		DevDeps:          []string{"chalk"},
		Warnings:         []string{`cannot find "./gone" from /work/pkg/index.js`},
	}
}

func TestTextRenderer_Golden(t *testing.T) {
	tests := []struct {
		name    string
		report  *domain.Report
		verbose bool
	}{
		{name: "text_clean", report: cleanReport()},
		{name: "text_issues", report: problemReport()},
		{name: "text_issues_verbose", report: problemReport(), verbose: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, report.NewTextRenderer(true, tt.verbose).Render(&buf, tt.report))

			g := goldie.New(t)
			g.Assert(t, tt.name, buf.Bytes())
		})
	}
}

func TestTextRenderer_WithoutName(t *testing.T) {
	r := cleanReport()
	r.Name = ""

	var buf bytes.Buffer
	require.NoError(t, report.NewTextRenderer(true, false).Render(&buf, r))
	assert.Contains(t, buf.String(), "/work/pkg\n")
}

func TestJSONRenderer(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.NewJSONRenderer(false).Render(&buf, problemReport()))

	var got map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))

	assert.Equal(t, []any{"left-pad", "request"}, got["obsolete"])
	assert.Equal(t, []any{"tape"}, got["misplacedDeps"])
	assert.Equal(t, []any{"chalk"}, got["misplacedDevDeps"])
	assert.Len(t, got["warnings"], 1)
	assert.NotContains(t, got, "main")
	assert.NotContains(t, got, "devDeps")
	assert.True(t, bytes.HasSuffix(buf.Bytes(), []byte("}\n")))
}

func TestJSONRenderer_Verbose(t *testing.T) {
	r := cleanReport()
	r.Obsolete = nil
	r.Warnings = nil
	r.DevDeps = nil

	var buf bytes.Buffer
	require.NoError(t, report.NewJSONRenderer(true).Render(&buf, r))

	var got map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))

	assert.Equal(t, []any{}, got["obsolete"])
	assert.Equal(t, []any{}, got["warnings"])
	assert.Equal(t, []any{}, got["devDeps"])
	assert.Equal(t, []any{"/work/pkg/index.js"}, got["main"])
	assert.Equal(t, []any{"lodash", "tape"}, got["allDeps"])
}

func TestNewRenderer(t *testing.T) {
	assert.IsType(t, &report.JSONRenderer{}, report.NewRenderer(report.Options{JSON: true, Plain: true}))
	assert.IsType(t, &report.TextRenderer{}, report.NewRenderer(report.Options{Plain: true}))
}
