package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gnoswap-labs/mainterm/collatz"
)

var (
	sweepFrom  string
	sweepTo    string
	sweepWidth string
)

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Prove (from, to] in consecutive chunks of the given width",
	Run: func(cmd *cobra.Command, args []string) {
		chunks, err := collatz.SweepChunks(sweepFrom, sweepTo, sweepWidth)
		if err != nil {
			logger.Error("Error building sweep", zap.Error(err))
			os.Exit(1)
		}

		config, err := loadConfig(cmd)
		if err != nil {
			logger.Fatal("Failed to load configuration", zap.Error(err))
		}

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		reports, err := runProofs(ctx, logger, config, chunks, nil)
		if err != nil {
			logger.Error("Error proving intervals", zap.Error(err))
			os.Exit(1)
		}

		if err := printReports(os.Stdout, reports, proveJSONOutput, outPath); err != nil {
			logger.Error("Error printing reports", zap.Error(err))
			os.Exit(1)
		}

		if !allProved(reports) {
			fmt.Printf("sweep of (%s, %s] is incomplete\n", sweepFrom, sweepTo)
			os.Exit(1)
		}
	},
}

func init() {
	sweepCmd.Flags().StringVar(&sweepFrom, "from", "0", "Lower end of the range (excluded)")
	sweepCmd.Flags().StringVar(&sweepTo, "to", "", "Upper end of the range (included)")
	sweepCmd.Flags().StringVar(&sweepWidth, "width", "1", "Width of every chunk")
	sweepCmd.Flags().IntVar(&maxIterations, "max-iterations", 0, "Give up on a chunk after this many rounds (0 means no limit)")
	sweepCmd.Flags().IntVar(&workers, "workers", 0, "Number of chunks proved at once (0 means one per CPU)")
	sweepCmd.Flags().BoolVar(&proveJSONOutput, "json", false, "Output reports in JSON format")
	sweepCmd.Flags().StringVarP(&outPath, "output", "o", "", "Output path (when using JSON)")
	_ = sweepCmd.MarkFlagRequired("to")
}
