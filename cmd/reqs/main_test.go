package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/grindlemire/graft"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/reqs/internal/app"
	"go.trai.ch/reqs/internal/core/domain"
	"go.trai.ch/reqs/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

type stubAnalyzer struct {
	report *domain.Report
	err    error
}

func (s stubAnalyzer) Analyze(context.Context, string, domain.Options) (*domain.Report, error) {
	return s.report, s.err
}

func provide(t *testing.T, analyzer app.Analyzer, configure func(*mocks.MockLogger)) ComponentProvider {
	t.Helper()
	ctrl := gomock.NewController(t)

	loader := mocks.NewMockConfigLoader(ctrl)
	loader.EXPECT().Load(gomock.Any()).Return(domain.Options{}, nil).AnyTimes()

	logger := mocks.NewMockLogger(ctrl)
	if configure != nil {
		configure(logger)
	}

	return func(context.Context) (*app.Components, error) {
		return &app.Components{
			App:    app.New(loader, analyzer, logger, nil),
			Logger: logger,
		}, nil
	}
}

func cleanReport() *domain.Report {
	return &domain.Report{Root: "/pkg", Obsolete: []string{}, MisplacedDeps: []string{}, MisplacedDevDeps: []string{}}
}

func TestRun_Version(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), []string{"version"}, &stdout, &stderr, provide(t, stubAnalyzer{}, nil))

	assert.Equal(t, 0, code)
	assert.Contains(t, stdout.String(), "reqs version dev")
}

func TestRun_Check(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), []string{"check", "--output-mode", "plain"}, &stdout, &stderr,
		provide(t, stubAnalyzer{report: cleanReport()}, nil))

	assert.Equal(t, 0, code)
	assert.Contains(t, stdout.String(), "✓ no obsolete dependencies")
}

func TestRun_StrictIssuesAreNotLogged(t *testing.T) {
	r := cleanReport()
	r.Obsolete = []string{"chalk"}

	var stdout, stderr bytes.Buffer
	code := run(context.Background(), []string{"check", "--strict", "-o", "plain"}, &stdout, &stderr,
		provide(t, stubAnalyzer{report: r}, nil))

	assert.Equal(t, 1, code)
	assert.Contains(t, stdout.String(), "chalk")
}

func TestRun_ErrorIsLogged(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), []string{"check"}, &stdout, &stderr,
		provide(t, stubAnalyzer{err: domain.ErrManifest}, func(l *mocks.MockLogger) {
			l.EXPECT().Error(gomock.Any()).Do(func(err error) {
				assert.ErrorIs(t, err, domain.ErrManifest)
			})
		}))

	assert.Equal(t, 1, code)
	assert.Empty(t, stdout.String())
}

func TestRun_ProviderError(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), []string{"check"}, &stdout, &stderr, func(context.Context) (*app.Components, error) {
		return nil, errors.New("wiring failed")
	})

	assert.Equal(t, 1, code)
	assert.Equal(t, "Error: wiring failed\n", stderr.String())
}

func TestRun_Wired(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "package.json"),
		[]byte(`{"dependencies": {"chalk": "*", "lodash": "*"}}`), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(root, "index.js"), []byte(`require('lodash')`), 0o600))

	var stdout, stderr bytes.Buffer
	code := run(context.Background(), []string{"check", root, "--json"}, &stdout, &stderr, func(ctx context.Context) (*app.Components, error) {
		c, _, err := graft.ExecuteFor[*app.Components](ctx)
		return c, err
	})

	require.Equal(t, 0, code, stderr.String())
	assert.Contains(t, stdout.String(), `"obsolete": [
    "chalk"
  ]`)
}
