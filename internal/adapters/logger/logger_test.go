package logger_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/reqs/internal/adapters/logger"
	"go.trai.ch/reqs/internal/core/domain"
	"go.trai.ch/zerr"
)

// newTestLogger creates a logger writing to a buffer without ANSI escape codes.
func newTestLogger(t *testing.T) (*logger.Logger, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	lg := logger.New().(*logger.Logger)
	lg.SetOutput(buf)
	return lg, buf
}

func TestLogger_Levels(t *testing.T) {
	tests := []struct {
		name       string
		log        func(*logger.Logger)
		verbose    bool
		goldenName string
	}{
		{name: "info", log: func(l *logger.Logger) { l.Info("some message") }, goldenName: "info_basic"},
		{name: "info multiline", log: func(l *logger.Logger) { l.Info("line1\nline2") }, goldenName: "info_multiline"},
		{name: "warn", log: func(l *logger.Logger) { l.Warn("some warning") }, goldenName: "warn_basic"},
		{name: "debug hidden", log: func(l *logger.Logger) { l.Debug("debug detail") }, goldenName: "debug_hidden"},
		{name: "debug verbose", log: func(l *logger.Logger) { l.Debug("debug detail") }, verbose: true, goldenName: "debug_verbose"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lg, buf := newTestLogger(t)
			lg.SetVerbose(tt.verbose)
			tt.log(lg)

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, buf.Bytes())
		})
	}
}

func TestLogger_Error(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		goldenName string
	}{
		{
			name:       "simple error",
			err:        os.ErrPermission,
			goldenName: "error_simple",
		},
		{
			name:       "multiline error",
			err:        errors.New("yaml: unmarshal errors:\n  line 3: field excludes not found"),
			goldenName: "error_multiline",
		},
		{
			name: "zerr chain",
			err: zerr.Wrap(
				zerr.Wrap(
					errors.New("database connection failed"),
					"failed to load user data",
				),
				"failed to process request",
			),
			goldenName: "error_chain_zerr",
		},
		{
			name: "domain error with metadata",
			err: zerr.With(
				zerr.With(fmt.Errorf("%w: cannot find %q", domain.ErrResolution, "./missing"), "specifier", "./missing"),
				"from", "/pkg/index.js",
			),
			goldenName: "error_domain_metadata",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lg, buf := newTestLogger(t)
			lg.Error(tt.err)

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, buf.Bytes())
		})
	}
}

func TestLogger_Error_Nil(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.Error(nil)
	assert.Empty(t, buf.String())
}

func TestLogger_JSON(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.SetJSON(true)

	lg.Warn("careful")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "WARN", record["level"])
	assert.Equal(t, "careful", record["msg"])

	buf.Reset()
	lg.Error(domain.ErrIssuesFound)

	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "ERROR", record["level"])
	assert.Equal(t, map[string]any{"msg": "dependency issues found"}, record["error"])
}

func TestLogger_SetOutputNil(t *testing.T) {
	lg, _ := newTestLogger(t)
	assert.NotPanics(t, func() { lg.SetOutput(nil) })
}

func TestFromEnv(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	tests := []struct {
		name      string
		value     string
		wantDebug bool
		wantJSON  bool
	}{
		{name: "empty", value: ""},
		{name: "debug", value: "debug", wantDebug: true},
		{name: "json and debug", value: " JSON , debug", wantDebug: true, wantJSON: true},
		{name: "unknown ignored", value: "trace"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			lg := logger.FromEnv(tt.value)
			lg.SetOutput(buf)

			lg.Debug("probe")
			if !tt.wantDebug {
				assert.Empty(t, buf.String())
				lg.Info("probe")
			}
			require.NotEmpty(t, buf.String())
			assert.Equal(t, tt.wantJSON, json.Valid(bytes.TrimSpace(buf.Bytes())))
		})
	}
}
