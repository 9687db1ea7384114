package app

import (
	"context"
	"os"

	"github.com/spf13/cobra"
)

// Execute runs the fcc-db CLI application with the given arguments.
// This is the main entry point called from main.go.
func (a *App) Execute(ctx context.Context, args []string) error {
	rootCmd := a.createRootCommand()
	rootCmd.SetArgs(args)
	return rootCmd.ExecuteContext(ctx)
}

// createRootCommand creates the root cobra command with all subcommands.
// The root command itself runs the merge, so the everyday invocation is
// just "fcc-db <directory>".
func (a *App) createRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "fcc-db [directory]",
		Short:   "Merge FCC amateur radio license extracts into one database",
		Version: a.version,
		Long: `fcc-db merges the weekly FCC Universal Licensing System extracts for
the amateur service (AM.dat, CO.dat, EN.dat, HD.dat) into a single
pipe-delimited database, one record per license, ordered by callsign.

Licenses that expired or were cancelled before the reference date are
dropped, and records that contradict each other across the extracts
abort the merge. The directory argument names where the extract files
live; it defaults to the current directory.`,
		Args:              cobra.MaximumNArgs(1),
		PersistentPreRunE: a.setupCommand,
		RunE:              a.runMerge,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}

	// Global flags. Defaults come from the loaded config so environment
	// and config file values survive flag registration.
	rootCmd.PersistentFlags().StringVar(&a.config.ConfigFile, "config", "", "config file (default is $HOME/.fcc-db.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&a.config.Verbose, "verbose", "v", a.config.Verbose, "verbose output (shortcut for --log-level=debug)")
	rootCmd.PersistentFlags().BoolVarP(&a.config.Quiet, "quiet", "q", a.config.Quiet, "minimal output (shortcut for --log-level=warn)")
	rootCmd.PersistentFlags().BoolVar(&a.config.NoColor, "no-color", a.config.NoColor, "disable colored output")
	rootCmd.PersistentFlags().StringVar(&a.config.LogLevel, "log-level", a.config.LogLevel, "log level: trace, debug, info, warn, error (overrides -v/-q)")
	rootCmd.PersistentFlags().StringVar(&a.config.LogFormat, "log-format", a.config.LogFormat, "log format: auto, console, json")

	// Merge flags
	rootCmd.Flags().StringVarP(&a.config.Output, "output", "o", a.config.Output, "write the merged database to this file instead of stdout")
	rootCmd.Flags().StringVar(&a.config.Date, "date", a.config.Date, "reference date for expiry decisions (YYYY-MM-DD, default today)")

	// Customize version output to match the version subcommand
	rootCmd.SetVersionTemplate("fcc-db {{.Version}}\n")

	a.registerCommands(rootCmd)

	return rootCmd
}

// setupCommand is called before any command runs. Flags have been parsed
// into the config by now, so the logger is rebuilt to honor them.
func (a *App) setupCommand(_ *cobra.Command, _ []string) error {
	logger := NewLogger(a.config)
	a.logger = &logger
	return nil
}

// registerCommands registers all subcommands with the root command.
func (a *App) registerCommands(rootCmd *cobra.Command) {
	rootCmd.AddCommand(a.NewSchemasCommand())
	rootCmd.AddCommand(a.NewVersionCommand())
}

// ExitOnError is a helper that prints an error and exits with status 1.
// This is meant to be used in main.go for top-level error handling.
func ExitOnError(err error) {
	if err != nil {
		//nolint:errcheck // Ignoring write error since we're exiting anyway
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}
