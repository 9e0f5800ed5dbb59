package fs

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"go.trai.ch/reqs/internal/core/domain"
	"go.trai.ch/reqs/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ModuleResolver = (*Resolver)(nil)

// NodeExtensions are the extensions Node.js tries when a required file has none.
var NodeExtensions = []string{".js", ".json", ".node"}

// Resolver resolves local specifiers the way Node.js require does:
// exact file, file plus extension, directory main from package.json, directory index.
type Resolver struct{}

// NewResolver creates a new Resolver.
func NewResolver() *Resolver {
	return &Resolver{}
}

// Resolve returns the file that specifier refers to when imported from baseDir.
func (r *Resolver) Resolve(specifier, baseDir string, extensions []string) (string, error) {
	target := filepath.FromSlash(specifier)
	if !filepath.IsAbs(target) {
		target = filepath.Join(baseDir, target)
	}

	target, err := domain.NormalizePath(target)
	if err != nil {
		return "", r.notFound(specifier, baseDir, err)
	}

	exts := appendMissing(NodeExtensions, extensions)

	dirOnly := strings.HasSuffix(specifier, "/") || specifier == "." || specifier == ".."
	if !dirOnly {
		if path, ok := loadAsFile(target, exts); ok {
			return path, nil
		}
	}
	if path, ok := loadAsDirectory(target, exts); ok {
		return path, nil
	}

	return "", r.notFound(specifier, baseDir, nil)
}

func (r *Resolver) notFound(specifier, baseDir string, cause error) error {
	err := fmt.Errorf("%w: cannot find %q", domain.ErrResolution, specifier)
	if cause != nil {
		err = fmt.Errorf("%w: %w", err, cause)
	}
	return zerr.With(zerr.With(err, "specifier", specifier), "base", baseDir)
}

func loadAsFile(path string, exts []string) (string, bool) {
	if isFile(path) {
		return path, true
	}
	for _, ext := range exts {
		if candidate := path + ext; isFile(candidate) {
			return candidate, true
		}
	}
	return "", false
}

func loadAsDirectory(dir string, exts []string) (string, bool) {
	if !isDir(dir) {
		return "", false
	}

	if main := packageMain(dir); main != "" {
		target := filepath.Join(dir, filepath.FromSlash(main))
		if path, ok := loadAsFile(target, exts); ok {
			return path, true
		}
		if path, ok := loadIndex(target, exts); ok {
			return path, true
		}
	}

	return loadIndex(dir, exts)
}

func loadIndex(dir string, exts []string) (string, bool) {
	for _, ext := range exts {
		if candidate := filepath.Join(dir, "index"+ext); isFile(candidate) {
			return candidate, true
		}
	}
	return "", false
}

// packageMain returns the main field of dir/package.json, or "" when there is none.
func packageMain(dir string) string {
	data, err := os.ReadFile(filepath.Join(dir, domain.ManifestFileName))
	if err != nil {
		return ""
	}
	var pkg struct {
		Main string `json:"main"`
	}
	if err := json.Unmarshal(data, &pkg); err != nil {
		return ""
	}
	return strings.TrimSpace(pkg.Main)
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func appendMissing(base, extra []string) []string {
	out := slices.Clone(base)
	for _, e := range extra {
		if !slices.Contains(out, e) {
			out = append(out, e)
		}
	}
	return out
}
