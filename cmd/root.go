package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"projectsnap/pkg/combine"
	"projectsnap/pkg/logging"
	"projectsnap/pkg/rules"
	"projectsnap/pkg/version"
)

var (
	logger   = zap.NewNop()
	snapArgs combine.Arguments
)

// RootCmd is the base command. Without a subcommand it takes a snapshot.
var RootCmd = &cobra.Command{
	Use:   version.AppName,
	Short: "Snapshot a project's source into a few balanced text documents",
	Long: `projectsnap walks a project directory, keeps the files worth reading and
writes them into concatenated_scripts_part<N>.txt files of similar size, together
with an annotated directory tree and an index of which file went where.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if !snapArgs.Debug {
			return nil
		}
		debugLogger, err := logging.New(true, version.AppName, version.Get().Version)
		if err != nil {
			return fmt.Errorf("failed to initialize debug logger: %w", err)
		}
		logger = debugLogger
		return nil
	},
	RunE: runSnapshot,
}

func init() {
	RootCmd.Flags().IntVarP(&snapArgs.Parts, "parts", "n", rules.DefaultParts, "Number of output documents")
	RootCmd.Flags().StringVarP(&snapArgs.Root, "root", "r", ".", "Project directory to snapshot")
	RootCmd.PersistentFlags().BoolVar(&snapArgs.Debug, "debug", false, "Enable debug logging")
}

// Execute runs the root command with the given logger. --debug swaps in a
// development logger, which also becomes the global one.
func Execute(l *zap.Logger) error {
	if l != nil {
		logger = l
	}
	return RootCmd.Execute()
}
