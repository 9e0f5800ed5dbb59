// Package manifest reads package.json files.
package manifest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strings"

	"go.trai.ch/reqs/internal/core/domain"
	"go.trai.ch/reqs/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ManifestLoader = (*Loader)(nil)

// packageJSON is the subset of package.json that reqs reads.
// Dependency versions are kept raw: only the names matter.
type packageJSON struct {
	Name            string                     `json:"name"`
	Main            string                     `json:"main"`
	Bin             json.RawMessage            `json:"bin"`
	Dependencies    map[string]json.RawMessage `json:"dependencies"`
	DevDependencies map[string]json.RawMessage `json:"devDependencies"`
}

// Loader implements ports.ManifestLoader.
type Loader struct {
	Filename string
}

// NewLoader creates a new Loader reading package.json.
func NewLoader() *Loader {
	return &Loader{Filename: domain.ManifestFileName}
}

// Load reads and parses the manifest in root.
func (l *Loader) Load(root string) (*domain.Manifest, error) {
	file := filepath.Join(root, l.Filename)

	data, err := os.ReadFile(file) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.With(fmt.Errorf("%w: %w", domain.ErrManifest, err), "path", file)
	}

	var pkg packageJSON
	if err := json.Unmarshal(data, &pkg); err != nil {
		return nil, zerr.With(fmt.Errorf("%w: %w", domain.ErrManifest, err), "path", file)
	}

	bins, err := binTargets(pkg.Bin)
	if err != nil {
		return nil, zerr.With(fmt.Errorf("%w: %w", domain.ErrManifest, err), "path", file)
	}

	main := strings.TrimSpace(pkg.Main)
	if main == "" {
		main = domain.DefaultEntryPoint
	}

	entries := []string{cleanEntry(main)}
	for _, bin := range bins {
		if e := cleanEntry(bin); !slices.Contains(entries, e) {
			entries = append(entries, e)
		}
	}

	return &domain.Manifest{
		Name:            pkg.Name,
		Dependencies:    names(pkg.Dependencies),
		DevDependencies: names(pkg.DevDependencies),
		EntryPoints:     entries,
	}, nil
}

// binTargets accepts both forms of the bin field: a single path, or a map of
// command name to path. Map targets are returned in command name order.
func binTargets(raw json.RawMessage) ([]string, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil, nil
	}

	var single string
	if err := json.Unmarshal(raw, &single); err == nil {
		if strings.TrimSpace(single) == "" {
			return nil, nil
		}
		return []string{single}, nil
	}

	var byName map[string]string
	if err := json.Unmarshal(raw, &byName); err != nil {
		return nil, zerr.New("bin must be a string or an object of strings")
	}

	cmds := make([]string, 0, len(byName))
	for cmd := range byName {
		cmds = append(cmds, cmd)
	}
	slices.Sort(cmds)

	targets := make([]string, 0, len(cmds))
	for _, cmd := range cmds {
		if t := strings.TrimSpace(byName[cmd]); t != "" {
			targets = append(targets, t)
		}
	}
	return targets, nil
}

// cleanEntry normalizes a manifest path to a root-relative slash path without a leading "./".
// A trailing slash survives so the entry still resolves as a directory only.
func cleanEntry(entry string) string {
	raw := filepath.ToSlash(strings.TrimSpace(entry))
	cleaned := path.Clean(raw)
	if strings.HasSuffix(raw, "/") && cleaned != "." && cleaned != "/" {
		cleaned += "/"
	}
	return strings.TrimPrefix(cleaned, "./")
}

func names(deps map[string]json.RawMessage) domain.NameSet {
	set := domain.NewSet[string]()
	for name := range deps {
		set.Add(name)
	}
	return set
}
