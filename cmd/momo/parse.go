package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/noel-odero/momo-analysis/internal/pipeline"
)

var parseCmd = &cobra.Command{
	Use:   "parse [backup.xml]",
	Short: "Classify and extract an SMS backup into per-category JSON",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runParse,
}

func runParse(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig()
	if err != nil {
		return err
	}
	if len(args) == 1 {
		cfg.Source = args[0]
	}

	runner := pipeline.NewRunner(pipeline.Config{
		SourcePath: cfg.Source,
		DataDir:    cfg.DataDir,
	}, logger)

	report, err := runner.Run(cmd.Context())
	if err != nil {
		return fmt.Errorf("parse run failed: %w", err)
	}

	fmt.Print(report.Format())
	return nil
}
