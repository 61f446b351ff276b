package cli

import (
	"github.com/spf13/cobra"

	"value-synth/internal/codec"
	"value-synth/logging"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose  bool
	Format   string // "text" | "json" | "yaml"
	LogLevel string // level of the verbose log

}

// NewRootCommand creates the root command for the synth CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "synth",
		Short: "synth - type-directed random values",
		Long:  "Generate fully populated random instances of Go types for tests and fixtures.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if _, err := codec.ParseFormat(opts.Format); err != nil {
				return WrapExitError(ExitCommandError, "invalid format", err)
			}
			if _, err := logging.ParseLevel(opts.LogLevel); err != nil {
				return WrapExitError(ExitCommandError, "invalid log level", err)
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (text|json|yaml)")
	cmd.PersistentFlags().StringVar(&opts.LogLevel, "log-level", "debug", "verbose log level (debug|info|warn|error)")

	cmd.AddCommand(NewTypesCommand(opts))
	cmd.AddCommand(NewGenerateCommand(opts))
	cmd.AddCommand(NewFixturesCommand(opts))

	return cmd
}
