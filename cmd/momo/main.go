// Command momo parses mobile-money SMS backup exports into per-category
// JSON documents, loads them into SQLite, and serves the stored record sets
// over a read-only HTTP API.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/noel-odero/momo-analysis/internal/config"
)

const version = "0.1.0"

var (
	flagConfig  string
	flagDBPath  string
	flagDataDir string

	logger zerolog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "momo",
	Short: "Mobile-money SMS transaction analysis",
	Long: `momo turns an exported SMS backup into structured transaction data:
classify messages into transaction categories, extract typed fields,
export per-category JSON, load it into SQLite, and serve it over HTTP.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("momo %s\n", version)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "momo.yaml", "config file path")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "database path (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "export directory (overrides config)")

	rootCmd.AddCommand(parseCmd, loadCmd, serveCmd, versionCmd)
}

// resolveConfig layers CLI flags over the file/env/default resolution.
func resolveConfig() (config.Config, error) {
	cfg, err := config.Resolve(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagDBPath != "" {
		cfg.DBPath = flagDBPath
	}
	if flagDataDir != "" {
		cfg.DataDir = flagDataDir
	}
	return cfg, nil
}

func main() {
	logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}).
		With().Timestamp().Logger()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
