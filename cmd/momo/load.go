package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/noel-odero/momo-analysis/internal/store"
)

var loadCmd = &cobra.Command{
	Use:   "load",
	Short: "Load exported per-category JSON into the SQLite store",
	Long: `Load reads each category's exported JSON document from the data
directory and inserts its records. Insertion is idempotent on the category's
transaction identifier: records already stored are skipped as duplicates, so
re-running load after a fresh parse is always safe.`,
	Args: cobra.NoArgs,
	RunE: runLoad,
}

func runLoad(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig()
	if err != nil {
		return err
	}

	runID := uuid.NewString()
	log := logger.With().Str("run_id", runID).Logger()

	s, err := store.Open(store.Config{Path: cfg.DBPath}, log)
	if err != nil {
		return fmt.Errorf("opening store: %w", err)
	}
	defer s.Close()

	results, err := s.LoadDir(cmd.Context(), cfg.DataDir)
	if err != nil {
		return fmt.Errorf("load run failed: %w", err)
	}

	fmt.Printf("Run %s\n\n", runID)
	fmt.Printf("%-40s %8s %10s %8s\n", "category", "inserted", "duplicates", "rejected")
	for _, r := range results {
		fmt.Printf("%-40s %8d %10d %8d\n", r.Category, r.Inserted, r.Duplicates, r.Rejected)
	}
	return nil
}
