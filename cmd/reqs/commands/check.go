package commands

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.trai.ch/reqs/internal/app"
	"go.trai.ch/reqs/internal/core/domain"
)

func (c *CLI) newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [path]",
		Short: "Report obsolete and misplaced dependencies",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := c.checkOptions(cmd.Flags())
			return c.app.Check(cmd.Context(), rootArg(args), opts, cmd.OutOrStdout())
		},
	}
	addCheckFlags(cmd.Flags())
	cmd.Flags().Bool("strict", false, "Exit with status 1 when any issue is found")
	return cmd
}

func (c *CLI) newWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch [path]",
		Short: "Check, then check again whenever the package changes",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := c.checkOptions(cmd.Flags())
			return c.app.Watch(cmd.Context(), rootArg(args), opts, cmd.OutOrStdout())
		},
	}
	addCheckFlags(cmd.Flags())
	return cmd
}

func addCheckFlags(flags *pflag.FlagSet) {
	flags.Bool("json", false, "Print the report as JSON")
	flags.Bool("best-effort", false, "Skip unresolvable imports and unreadable files instead of failing")
	flags.StringSlice("exclude", nil, "Additional directory names to skip (repeatable)")
	flags.StringSlice("exempt", nil, "Additional dependencies never reported as obsolete (repeatable)")
	flags.Int("concurrency", 0, "Maximum files processed at once (default: number of CPUs)")
	flags.BoolP("verbose", "v", false, "Include file and dependency sets, and debug logs")
	flags.StringP("output-mode", "o", "auto", "Output mode: auto, pretty, or plain")
}

// checkOptions reads the flags shared by check and watch and applies the log settings.
func (c *CLI) checkOptions(flags *pflag.FlagSet) app.CheckOptions {
	jsonOut, _ := flags.GetBool("json")
	bestEffort, _ := flags.GetBool("best-effort")
	exclude, _ := flags.GetStringSlice("exclude")
	exempt, _ := flags.GetStringSlice("exempt")
	concurrency, _ := flags.GetInt("concurrency")
	verbose, _ := flags.GetBool("verbose")
	outputMode, _ := flags.GetString("output-mode")
	strict, _ := flags.GetBool("strict")

	if c.logs != nil {
		c.logs.SetVerbose(verbose)
		c.logs.SetJSON(jsonOut)
	}

	return app.CheckOptions{
		Overrides: domain.Options{
			ExcludeDirs: exclude,
			Exempt:      exempt,
			BestEffort:  bestEffort,
			Concurrency: concurrency,
		},
		JSON:       jsonOut,
		Verbose:    verbose,
		Strict:     strict,
		OutputMode: outputMode,
	}
}

func rootArg(args []string) string {
	if len(args) == 0 {
		return "."
	}
	return args[0]
}
