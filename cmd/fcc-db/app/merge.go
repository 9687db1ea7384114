package app

import (
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/N7DR/fcc-db/internal/pipeline"
	"github.com/N7DR/fcc-db/pkg/dates"
	"github.com/N7DR/fcc-db/pkg/errors"
	"github.com/N7DR/fcc-db/pkg/logging"
)

// runMerge implements the root command: merge the extracts found in the
// directory argument and write the unified database.
func (a *App) runMerge(cmd *cobra.Command, args []string) error {
	dir := a.config.Directory
	if len(args) == 1 {
		dir = args[0]
	}

	today := a.config.Date
	if today != "" && !dates.ValidISO(today) {
		return &errors.ConfigError{Component: "date", Message: "not a YYYY-MM-DD date: " + today}
	}

	// Every run gets its own identifier so interleaved log lines from
	// concurrent loads stay attributable.
	ctx := logging.WithLogger(cmd.Context(), a.logger)
	ctx = logging.WithRunID(ctx, uuid.NewString())

	out := cmd.OutOrStdout()
	var closeOut func() error
	if a.config.Output != "" && a.config.Output != "-" {
		f, err := os.Create(a.config.Output)
		if err != nil {
			return errors.WrapIO("create", a.config.Output, err)
		}
		out = f
		closeOut = f.Close
	}

	err := pipeline.Run(ctx, pipeline.Options{Dir: dir, Out: out, Today: today})
	if closeOut != nil {
		if cerr := closeOut(); err == nil && cerr != nil {
			err = errors.WrapIO("close", a.config.Output, cerr)
		}
	}
	return err
}
