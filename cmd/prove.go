package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gnoswap-labs/mainterm/collatz"
	"github.com/gnoswap-labs/mainterm/formatter"
	"github.com/gnoswap-labs/mainterm/internal"
	tt "github.com/gnoswap-labs/mainterm/internal/types"
)

var (
	maxIterations   int
	workers         int
	proveJSONOutput bool
	outPath         string
)

var proveCmd = &cobra.Command{
	Use:   "prove [intervals...]",
	Short: "Prove open-closed intervals, or those listed in the configuration file",
	Run: func(cmd *cobra.Command, args []string) {
		config, err := loadConfig(cmd)
		if err != nil {
			logger.Fatal("Failed to load configuration", zap.Error(err))
		}

		exprs := args
		if len(exprs) == 0 {
			exprs = config.Intervals
		}
		if len(exprs) == 0 {
			fmt.Println("error: Please provide intervals or list them in the configuration file")
			os.Exit(1)
		}

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		reports, err := runProofs(ctx, logger, config, exprs, nil)
		if err != nil {
			logger.Error("Error proving intervals", zap.Error(err))
			os.Exit(1)
		}

		if err := printReports(os.Stdout, reports, proveJSONOutput, outPath); err != nil {
			logger.Error("Error printing reports", zap.Error(err))
			os.Exit(1)
		}

		if !allProved(reports) {
			os.Exit(1)
		}
	},
}

func init() {
	proveCmd.Flags().IntVar(&maxIterations, "max-iterations", 0, "Give up on an interval after this many rounds (0 means no limit)")
	proveCmd.Flags().IntVar(&workers, "workers", 0, "Number of intervals proved at once (0 means one per CPU)")
	proveCmd.Flags().BoolVar(&proveJSONOutput, "json", false, "Output reports in JSON format")
	proveCmd.Flags().StringVarP(&outPath, "output", "o", "", "Output path (when using JSON)")
}

// loadConfig reads the configuration file and applies the flags the user
// set explicitly on top of it.
func loadConfig(cmd *cobra.Command) (collatz.Config, error) {
	config, err := collatz.LoadConfig(cfgFile)
	if err != nil {
		return config, err
	}
	if cmd.Flags().Changed("max-iterations") {
		config.MaxIterations = maxIterations
	}
	if cmd.Flags().Changed("workers") {
		config.Workers = workers
	}
	if rootCmd.PersistentFlags().Changed("verbose") {
		config.Verbose = verbosity
	}
	return config, config.Validate()
}

// runProofs proves exprs with an engine built from config. Traces are
// written to stdout, so a verbose run proves one interval at a time and
// shows no progress bar.
func runProofs(ctx context.Context, logger *zap.Logger, config collatz.Config, exprs []string, cache *internal.Cache) ([]tt.Report, error) {
	engine, err := collatz.NewCached(logger, config, os.Stdout, cache)
	if err != nil {
		return nil, err
	}

	opts := collatz.BatchOptions{Workers: config.Workers, Progress: os.Stderr}
	if config.Verbose > 0 {
		opts = collatz.BatchOptions{Workers: 1}
	}
	return collatz.ProcessIntervals(ctx, logger, engine, exprs, opts, collatz.ProcessInterval)
}

func printReports(w io.Writer, reports []tt.Report, isJSON bool, jsonOutput string) error {
	if !isJSON {
		// text output
		fmt.Fprint(w, formatter.GenerateReport(reports))
		fmt.Fprintln(w, formatter.Summary(reports))
		return nil
	}

	// JSON output
	d, err := json.Marshal(reports)
	if err != nil {
		return fmt.Errorf("error marshalling reports to JSON: %w", err)
	}
	if jsonOutput == "" {
		fmt.Fprintln(w, string(d))
		return nil
	}

	f, err := os.Create(jsonOutput)
	if err != nil {
		return fmt.Errorf("error creating JSON output file: %w", err)
	}
	defer f.Close()

	if _, err := f.Write(d); err != nil {
		return fmt.Errorf("error writing JSON output file: %w", err)
	}
	return nil
}

func allProved(reports []tt.Report) bool {
	for _, r := range reports {
		if !r.Proved() {
			return false
		}
	}
	return true
}
