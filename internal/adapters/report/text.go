// Package report renders analysis reports for people and for machines.
package report

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"go.trai.ch/reqs/internal/core/domain"
	"go.trai.ch/reqs/internal/core/ports"
	"go.trai.ch/reqs/internal/ui/output"
	"go.trai.ch/reqs/internal/ui/style"
)

var _ ports.ReportRenderer = (*TextRenderer)(nil)

type section struct {
	title string
	hint  string
	names []string
}

// TextRenderer writes a human-readable report.
type TextRenderer struct {
	profile func() termenv.Profile
	verbose bool
}

// NewTextRenderer creates a renderer with colors chosen from the environment.
// When plain is set, no escape sequences are written.
func NewTextRenderer(plain, verbose bool) *TextRenderer {
	profile := output.ColorProfile
	if plain {
		profile = output.PlainProfile
	}
	return &TextRenderer{profile: profile, verbose: verbose}
}

// Render writes r to w.
func (t *TextRenderer) Render(w io.Writer, r *domain.Report) error {
	out := output.NewWithProfile(w, t.profile)
	var b strings.Builder

	header := r.Root
	if r.Name != "" {
		header = r.Name + " " + out.String("("+r.Root+")").Foreground(color(style.Mist)).String()
	}
	b.WriteString(out.String(header).Bold().String())
	b.WriteString("\n")

	for _, s := range []section{
		{title: "obsolete dependencies", hint: "declared but never imported", names: r.Obsolete},
		{
			title: "misplaced dependencies",
			hint:  "declared in dependencies but only imported outside the main entry points; move to devDependencies",
			names: r.MisplacedDeps,
		},
		{
			title: "misplaced devDependencies",
			hint:  "declared in devDependencies but imported from the main entry points; move to dependencies",
			names: r.MisplacedDevDeps,
		},
	} {
		writeSection(&b, out, s)
	}

	if t.verbose {
		b.WriteString("\n")
		writeList(&b, out, "main files", relativeTo(r.Root, r.Main))
		writeList(&b, out, "all files", relativeTo(r.Root, r.All))
		writeList(&b, out, "main dependencies", r.MainDeps)
		writeList(&b, out, "all dependencies", r.AllDeps)
		writeList(&b, out, "dev dependencies", r.DevDeps)
	}

	if len(r.Warnings) > 0 {
		b.WriteString("\n")
		for _, warning := range r.Warnings {
			b.WriteString(out.String(style.Warning + " " + warning).Foreground(color(style.Yellow)).String())
			b.WriteString("\n")
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func writeSection(b *strings.Builder, out *termenv.Output, s section) {
	if len(s.names) == 0 {
		b.WriteString(out.String(style.Check + " no " + s.title).Foreground(color(style.Green)).String())
		b.WriteString("\n")
		return
	}

	title := fmt.Sprintf("%s %s (%d)", style.Cross, s.title, len(s.names))
	b.WriteString(out.String(title).Foreground(color(style.Red)).Bold().String())
	b.WriteString("\n")
	for _, name := range s.names {
		b.WriteString("    - " + name + "\n")
	}
	b.WriteString("  " + out.String(s.hint).Foreground(color(style.Slate)).Faint().String())
	b.WriteString("\n")
}

func writeList(b *strings.Builder, out *termenv.Output, title string, items []string) {
	b.WriteString(out.String(fmt.Sprintf("%s (%d)", title, len(items))).Foreground(color(style.Iris)).String())
	b.WriteString("\n")
	for _, item := range items {
		b.WriteString("    " + style.Dot + " " + item + "\n")
	}
}

func relativeTo(root string, files []string) []string {
	rel := make([]string, 0, len(files))
	for _, f := range files {
		if r, err := filepath.Rel(root, f); err == nil {
			f = filepath.ToSlash(r)
		}
		rel = append(rel, f)
	}
	return rel
}

func color(c lipgloss.Color) termenv.Color {
	return termenv.RGBColor(string(c))
}
