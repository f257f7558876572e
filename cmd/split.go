package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gnoswap-labs/mainterm/collatz"
	"github.com/gnoswap-labs/mainterm/formatter"
)

var splitCmd = &cobra.Command{
	Use:   "split <interval>",
	Short: "Break an open-closed interval at the integers it straddles",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		engine, err := collatz.New(logger, collatz.DefaultConfig(), nil)
		if err != nil {
			logger.Fatal("Failed to initialize proof engine", zap.Error(err))
		}

		iv, pieces, err := engine.Split(args[0])
		if err != nil {
			logger.Error("Error splitting interval", zap.String("interval", args[0]), zap.Error(err))
			os.Exit(1)
		}
		fmt.Print(formatter.FormatPieces(iv, pieces))
	},
}
