// Package config provides the configuration loader for reqs.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/reqs/internal/core/domain"
	"go.trai.ch/reqs/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using a YAML file at the package root.
type Loader struct {
	Logger   ports.Logger
	Filename string
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger, Filename: domain.ConfigFileName}
}

// Load reads the configuration from root. A missing file is not an error.
func (l *Loader) Load(root string) (domain.Options, error) {
	path := filepath.Join(root, l.Filename)

	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if errors.Is(err, os.ErrNotExist) {
		return domain.Options{}, nil
	}
	if err != nil {
		return domain.Options{}, zerr.With(fmt.Errorf("%w: %w", domain.ErrConfigRead, err), "path", path)
	}

	var file Reqsfile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return domain.Options{}, zerr.With(fmt.Errorf("%w: %w", domain.ErrConfigParse, err), "path", path)
	}

	if file.Concurrency < 0 {
		return domain.Options{}, zerr.With(
			fmt.Errorf("%w: concurrency must not be negative", domain.ErrConfigParse),
			"path", path,
		)
	}

	exts, err := canonicalizeExtensions(file.Extensions)
	if err != nil {
		return domain.Options{}, zerr.With(fmt.Errorf("%w: %w", domain.ErrConfigParse, err), "path", path)
	}

	if l.Logger != nil {
		l.Logger.Debug("loaded configuration from " + path)
	}

	return domain.Options{
		ExcludeDirs: trimAll(file.Exclude),
		Extensions:  exts,
		Exempt:      trimAll(file.Exempt),
		BestEffort:  file.BestEffort,
		Concurrency: file.Concurrency,
	}, nil
}

// canonicalizeExtensions accepts "ts" and ".ts" alike and rejects empty entries.
func canonicalizeExtensions(exts []string) ([]string, error) {
	out := make([]string, 0, len(exts))
	for _, ext := range exts {
		ext = strings.TrimSpace(ext)
		if ext == "" || ext == "." {
			return nil, zerr.New("empty extension")
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		out = append(out, ext)
	}
	return out, nil
}

func trimAll(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
