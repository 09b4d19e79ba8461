package commands

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	log     zerolog.Logger
)

func Execute() error {
	root := &cobra.Command{
		Use:          "outbox",
		Short:        "Inspect outgoing-request marshalling for the E2EE engine",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := zerolog.WarnLevel
			if verbose {
				level = zerolog.DebugLevel
			}
			log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
				With().Timestamp().Logger().Level(level)
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log conversion details to stderr")

	root.AddCommand(convertCmd(), sampleCmd(), kindsCmd())
	return root.Execute()
}
