package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"go.trai.ch/reqs/internal/ui/output"
	"go.trai.ch/reqs/internal/ui/style"
)

// PrettyHandler is a slog.Handler writing one colored line per record.
// Errors, warnings and debug lines carry an icon; info lines are plain.
type PrettyHandler struct {
	out   *termenv.Output
	level slog.Leveler
	attrs []string
	group string
}

// NewPrettyHandler creates a new PrettyHandler writing to w.
// A *slog.LevelVar passed in opts keeps controlling the level after creation.
func NewPrettyHandler(w io.Writer, opts *slog.HandlerOptions) *PrettyHandler {
	if w == nil {
		w = os.Stderr
	}

	var level slog.Leveler = slog.LevelInfo
	if opts != nil && opts.Level != nil {
		level = opts.Level
	}

	return &PrettyHandler{out: output.New(w), level: level}
}

// Enabled reports whether records at level are written.
func (h *PrettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle writes r.
//
//nolint:gocritic // slog.Handler interface requires slog.Record by value
func (h *PrettyHandler) Handle(_ context.Context, r slog.Record) error {
	icon, color := levelStyle(r.Level)

	var line strings.Builder
	if icon != "" {
		line.WriteString(icon + " ")
	}
	line.WriteString(r.Message)

	for _, attr := range h.attrs {
		line.WriteString(" " + attr)
	}
	r.Attrs(func(attr slog.Attr) bool {
		line.WriteString(" " + qualify(h.group, attr))
		return true
	})

	styled := h.out.String(line.String()).Foreground(termenv.RGBColor(string(color)))
	_, err := io.WriteString(h.out, styled.String()+"\n")
	return err
}

// WithAttrs returns a handler that appends attrs to every record.
func (h *PrettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	next := h.clone()
	for _, attr := range attrs {
		next.attrs = append(next.attrs, qualify(h.group, attr))
	}
	return next
}

// WithGroup returns a handler that prefixes later attribute keys with name.
func (h *PrettyHandler) WithGroup(name string) slog.Handler {
	next := h.clone()
	if name != "" {
		next.group = qualifyKey(h.group, name)
	}
	return next
}

func (h *PrettyHandler) clone() *PrettyHandler {
	return &PrettyHandler{
		out:   h.out,
		level: h.level,
		attrs: append([]string(nil), h.attrs...),
		group: h.group,
	}
}

func levelStyle(level slog.Level) (string, lipgloss.Color) {
	switch {
	case level >= slog.LevelError:
		return style.Cross, style.Red
	case level >= slog.LevelWarn:
		return style.Warning, style.Yellow
	case level >= slog.LevelInfo:
		return "", style.Slate
	default:
		return style.Dot, style.Mist
	}
}

func qualify(group string, attr slog.Attr) string {
	return qualifyKey(group, attr.Key) + "=" + attr.Value.String()
}

func qualifyKey(group, key string) string {
	if group == "" {
		return key
	}
	return group + "." + key
}
