package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/epforgpl/senat-cli/internal/config"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "senat-cli",
	Short: "Scraper for the Polish Senate website",
	Long:  "Reads senators, sittings, votings and transcripts from senat.gov.pl into typed JSON records, caching every page it fetches.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := checkFormat(cmd); err != nil {
			return err
		}

		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = c

		if err := config.InitLogger(cfg.Log); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().String("out", "", "write output to this file instead of stdout")
	rootCmd.PersistentFlags().String("format", formatJSON, "output format (json, table)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
