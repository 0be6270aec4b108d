package cmd

import (
	"os"

	"github.com/jonboulle/clockwork"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"projectsnap/pkg/combine"
)

// runSnapshot takes the snapshot and prints the summary, also when some
// parts could not be written.
func runSnapshot(cmd *cobra.Command, _ []string) error {
	args := snapArgs
	args.SelfName = os.Args[0]

	opts := combine.Options{
		Fs:    afero.NewOsFs(),
		Clock: clockwork.NewRealClock(),
	}
	if term.IsTerminal(int(os.Stderr.Fd())) {
		opts.Progress = newProgressBar
	}

	report, err := combine.Run(args, opts, logger)
	if report != nil {
		printSummary(cmd.OutOrStdout(), report)
	}
	return err
}
