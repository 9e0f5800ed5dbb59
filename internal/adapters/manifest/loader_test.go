package manifest_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/reqs/internal/adapters/manifest"
	"go.trai.ch/reqs/internal/core/domain"
)

func writeManifest(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, domain.ManifestFileName), []byte(content), 0o600))
	return dir
}

func TestLoader_Load(t *testing.T) {
	tests := []struct {
		name        string
		content     string
		wantEntries []string
		wantDeps    []string
		wantDevDeps []string
	}{
		{
			name:        "defaults main to index.js",
			content:     `{"name": "pkg", "dependencies": {"lodash": "^4.0.0"}, "devDependencies": {"mocha": "*"}}`,
			wantEntries: []string{"index.js"},
			wantDeps:    []string{"lodash"},
			wantDevDeps: []string{"mocha"},
		},
		{
			name:        "explicit main",
			content:     `{"main": "./lib/main.js"}`,
			wantEntries: []string{"lib/main.js"},
			wantDeps:    []string{},
			wantDevDeps: []string{},
		},
		{
			name:        "trailing slash kept on main",
			content:     `{"main": "./lib//"}`,
			wantEntries: []string{"lib/"},
			wantDeps:    []string{},
			wantDevDeps: []string{},
		},
		{
			name:        "empty main falls back",
			content:     `{"main": "  "}`,
			wantEntries: []string{"index.js"},
			wantDeps:    []string{},
			wantDevDeps: []string{},
		},
		{
			name:        "bin as string",
			content:     `{"main": "index.js", "bin": "./bin/cli.js"}`,
			wantEntries: []string{"index.js", "bin/cli.js"},
			wantDeps:    []string{},
			wantDevDeps: []string{},
		},
		{
			name:        "bin as map sorted by command",
			content:     `{"bin": {"zeta": "bin/z.js", "alpha": "./bin/a.js", "dup": "index.js"}}`,
			wantEntries: []string{"index.js", "bin/a.js", "bin/z.js"},
			wantDeps:    []string{},
			wantDevDeps: []string{},
		},
		{
			name:        "null bin",
			content:     `{"bin": null}`,
			wantEntries: []string{"index.js"},
			wantDeps:    []string{},
			wantDevDeps: []string{},
		},
		{
			name:        "non-string dependency values are tolerated",
			content:     `{"dependencies": {"a": {"version": "1"}, "b": 2}}`,
			wantEntries: []string{"index.js"},
			wantDeps:    []string{"a", "b"},
			wantDevDeps: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := manifest.NewLoader().Load(writeManifest(t, tt.content))
			require.NoError(t, err)

			assert.Equal(t, tt.wantEntries, m.EntryPoints)
			assert.Equal(t, tt.wantDeps, m.Dependencies.Sorted())
			assert.Equal(t, tt.wantDevDeps, m.DevDependencies.Sorted())
		})
	}
}

func TestLoader_Load_Name(t *testing.T) {
	m, err := manifest.NewLoader().Load(writeManifest(t, `{"name": "@scope/thing"}`))
	require.NoError(t, err)
	assert.Equal(t, "@scope/thing", m.Name)
}

func TestLoader_Load_Errors(t *testing.T) {
	t.Run("missing", func(t *testing.T) {
		_, err := manifest.NewLoader().Load(t.TempDir())
		require.ErrorIs(t, err, domain.ErrManifest)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("invalid json", func(t *testing.T) {
		_, err := manifest.NewLoader().Load(writeManifest(t, `{"name": `))
		require.ErrorIs(t, err, domain.ErrManifest)
	})

	t.Run("invalid bin", func(t *testing.T) {
		_, err := manifest.NewLoader().Load(writeManifest(t, `{"bin": [1, 2]}`))
		require.ErrorIs(t, err, domain.ErrManifest)
	})

	t.Run("dependencies not an object", func(t *testing.T) {
		_, err := manifest.NewLoader().Load(writeManifest(t, `{"dependencies": ["lodash"]}`))
		require.ErrorIs(t, err, domain.ErrManifest)
	})
}
