package commands_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/reqs/cmd/reqs/commands"
	"go.trai.ch/reqs/internal/app"
	"go.trai.ch/reqs/internal/build"
	"go.trai.ch/reqs/internal/core/domain"
)

type mockApp struct {
	method string
	root   string
	opts   app.CheckOptions
	err    error
}

func (m *mockApp) Check(_ context.Context, root string, opts app.CheckOptions, _ io.Writer) error {
	m.method, m.root, m.opts = "check", root, opts
	return m.err
}

func (m *mockApp) Watch(_ context.Context, root string, opts app.CheckOptions, _ io.Writer) error {
	m.method, m.root, m.opts = "watch", root, opts
	return m.err
}

type logSettings struct {
	verbose, json bool
}

func (l *logSettings) SetVerbose(enable bool) { l.verbose = enable }
func (l *logSettings) SetJSON(enable bool)    { l.json = enable }

func TestCommands_Check(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		mock := &mockApp{}
		cli := commands.New(mock, nil)
		cli.SetArgs([]string{"check"})

		require.NoError(t, cli.Execute(context.Background()))
		assert.Equal(t, "check", mock.method)
		assert.Equal(t, ".", mock.root)
		assert.Equal(t, "auto", mock.opts.OutputMode)
		assert.Empty(t, mock.opts.Overrides.ExcludeDirs)
		assert.Empty(t, mock.opts.Overrides.Exempt)
		assert.Zero(t, mock.opts.Overrides.Concurrency)
		assert.False(t, mock.opts.Overrides.BestEffort)
		assert.False(t, mock.opts.JSON)
		assert.False(t, mock.opts.Strict)
	})

	t.Run("wires flags correctly", func(t *testing.T) {
		mock := &mockApp{}
		logs := &logSettings{}
		cli := commands.New(mock, logs)
		cli.SetArgs([]string{
			"check", "./pkg",
			"--json", "--best-effort", "--strict", "--verbose",
			"--exclude", "dist", "--exclude", "build,out",
			"--exempt", "ava",
			"--concurrency", "3",
			"--output-mode", "plain",
		})

		require.NoError(t, cli.Execute(context.Background()))
		assert.Equal(t, "./pkg", mock.root)
		assert.Equal(t, app.CheckOptions{
			Overrides: domain.Options{
				ExcludeDirs: []string{"dist", "build", "out"},
				Exempt:      []string{"ava"},
				BestEffort:  true,
				Concurrency: 3,
			},
			JSON:       true,
			Verbose:    true,
			Strict:     true,
			OutputMode: "plain",
		}, mock.opts)
		assert.True(t, logs.verbose)
		assert.True(t, logs.json)
	})

	t.Run("rejects extra arguments", func(t *testing.T) {
		cli := commands.New(&mockApp{}, nil)
		cli.SetArgs([]string{"check", "a", "b"})
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

		require.Error(t, cli.Execute(context.Background()))
	})

	t.Run("returns app errors", func(t *testing.T) {
		cli := commands.New(&mockApp{err: errors.New("simulated error")}, nil)
		cli.SetArgs([]string{"check"})

		err := cli.Execute(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "simulated error")
	})
}

func TestCommands_Watch(t *testing.T) {
	mock := &mockApp{}
	cli := commands.New(mock, nil)
	cli.SetArgs([]string{"watch", "pkg", "-v", "--exempt", "ava"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Equal(t, "watch", mock.method)
	assert.Equal(t, "pkg", mock.root)
	assert.True(t, mock.opts.Verbose)
	assert.False(t, mock.opts.Strict)
	assert.Equal(t, []string{"ava"}, mock.opts.Overrides.Exempt)
}

func TestCommands_Version(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "subcommand", args: []string{"version"}},
		{name: "flag", args: []string{"--version"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cli := commands.New(&mockApp{}, nil)
			buf := new(bytes.Buffer)
			cli.SetOutput(buf, buf)
			cli.SetArgs(tt.args)

			require.NoError(t, cli.Execute(context.Background()))
			assert.Contains(t, buf.String(), "version "+build.Version)
			assert.Contains(t, buf.String(), "commit: "+build.Commit)
		})
	}
}
