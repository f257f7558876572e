package cmd

import (
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gnoswap-labs/mainterm/collatz"
)

const defaultTimeout = 5 * time.Minute

var (
	cfgFile   string
	timeout   time.Duration
	verbosity int
	debug     bool

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:              "mainterm [intervals...]",
	Short:            "mainterm - prove that the Collatz main term sends rational intervals into (0, 1]",
	TraverseChildren: true, // Prioritize subcommands
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		logger, err = newLogger(debug)
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func Execute() error {
	return rootCmd.Execute()
}

// newLogger only lets warnings through unless debug output is requested;
// the trace printed with -v is the normal way to follow a proof.
func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	return config.Build()
}

func init() {
	// Assigned here rather than in the literal to avoid an initialization
	// cycle through proveCmd and loadConfig.
	rootCmd.Run = func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			_ = cmd.Help()
			return
		}
		// Format: mainterm [interval ...] => behaves like the prove subcommand
		proveCmd.Run(proveCmd, args)
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", collatz.DefaultConfigPath, "Path to the configuration file")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", defaultTimeout, "Stop unfinished proofs after this long")
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Print the working set every round (-vv adds every stage)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(proveCmd)
	rootCmd.AddCommand(splitCmd)
	rootCmd.AddCommand(sweepCmd)
	rootCmd.AddCommand(watchCmd)
}
