package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gnoswap-labs/mainterm/internal"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Prove the configured intervals again every time the configuration file changes",
	Run: func(cmd *cobra.Command, args []string) {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		// proofs survive reloads; a changed round limit is honored by Cache.Get
		cache := internal.NewCache()
		run := func() {
			config, err := loadConfig(cmd)
			if err != nil {
				logger.Error("Error loading configuration", zap.String("file", cfgFile), zap.Error(err))
				return
			}

			runCtx, cancel := context.WithTimeout(ctx, timeout)
			defer cancel()

			reports, err := runProofs(runCtx, logger, config, config.Intervals, cache)
			if err != nil {
				logger.Error("Error proving intervals", zap.Error(err))
				return
			}
			if err := printReports(os.Stdout, reports, false, ""); err != nil {
				logger.Error("Error printing reports", zap.Error(err))
			}
		}

		run()
		fmt.Printf("watching %s for changes\n", cfgFile)
		if err := internal.WatchFile(ctx, logger, cfgFile, run); err != nil && !errors.Is(err, context.Canceled) {
			logger.Fatal("Error watching configuration", zap.Error(err))
		}
	},
}

func init() {
	watchCmd.Flags().IntVar(&maxIterations, "max-iterations", 0, "Give up on an interval after this many rounds (0 means no limit)")
	watchCmd.Flags().IntVar(&workers, "workers", 0, "Number of intervals proved at once (0 means one per CPU)")
}
