package main

import (
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/noel-odero/momo-analysis/internal/api"
	"github.com/noel-odero/momo-analysis/internal/store"
)

var flagListen string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the stored record sets over a read-only HTTP API",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagListen, "listen", "", "listen address (overrides config)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig()
	if err != nil {
		return err
	}
	if flagListen != "" {
		cfg.ListenAddr = flagListen
	}

	s, err := store.Open(store.Config{Path: cfg.DBPath}, logger)
	if err != nil {
		return fmt.Errorf("opening store: %w", err)
	}
	defer s.Close()

	server := api.NewServer(s, logger)
	logger.Info().Str("addr", cfg.ListenAddr).Msg("serving read API")

	if err := http.ListenAndServe(cfg.ListenAddr, server.Handler()); err != nil {
		return fmt.Errorf("serving: %w", err)
	}
	return nil
}
