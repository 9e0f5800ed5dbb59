// Package commands implements the CLI commands for reqs.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/reqs/internal/app"
	"go.trai.ch/reqs/internal/build"
)

// Application represents the application logic interface.
type Application interface {
	Check(ctx context.Context, root string, opts app.CheckOptions, w io.Writer) error
	Watch(ctx context.Context, root string, opts app.CheckOptions, w io.Writer) error
}

// LogSettings is implemented by loggers whose verbosity and format can change at runtime.
type LogSettings interface {
	SetVerbose(enable bool)
	SetJSON(enable bool)
}

// CLI represents the command line interface for reqs.
type CLI struct {
	app     Application
	logs    LogSettings
	rootCmd *cobra.Command
}

// New creates a new CLI instance with the given app. logs may be nil.
func New(a Application, logs LogSettings) *CLI {
	rootCmd := &cobra.Command{
		Use:           "reqs",
		Short:         "Find obsolete and misplaced dependencies in a JavaScript package",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	c := &CLI{
		app:     a,
		logs:    logs,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newCheckCmd())
	rootCmd.AddCommand(c.newWatchCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}
