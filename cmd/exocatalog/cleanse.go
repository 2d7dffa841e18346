// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pdiddy/exocatalog/internal/catalog"
	"github.com/pdiddy/exocatalog/internal/cleanse"
	"github.com/pdiddy/exocatalog/internal/store"
)

var cleanseCmd = &cobra.Command{
	Use:   "cleanse",
	Short: "Consolidate duplicate observations and derive planet metrics",
	Long: `Cleanse reads the raw catalog CSV, checks its row count against
--expected-rows, keeps the nearest and most complete observation of each
planet, derives physical metrics, and writes the cleansed CSV.

With --backfill, fields missing from the kept row are filled from the
planet's other observations. With --store, the result also replaces the
contents of the planet database used by planets, export, and report.`,
	RunE: runCleanse,
}

func init() {
	cleanseCmd.Flags().String("input", "", "raw catalog CSV (default data/raw/ps.csv)")
	cleanseCmd.Flags().String("output", "", "cleansed CSV (default data/cleansed/planets.csv)")
	cleanseCmd.Flags().Int("expected-rows", 0, "number of data rows the raw catalog must contain")
	cleanseCmd.Flags().Bool("backfill", false, "fill missing fields from duplicate observations")
	cleanseCmd.Flags().Int("workers", 0, "parallel derivation workers (0 = CPU count)")
	cleanseCmd.Flags().Bool("store", false, "save the result to the planet database")

	bindFlags(cleanseCmd, map[string]string{
		"input":         "catalog.input_path",
		"output":        "catalog.output_path",
		"expected-rows": "cleanse.expected_rows",
		"backfill":      "cleanse.backfill",
		"workers":       "cleanse.workers",
	})

	rootCmd.AddCommand(cleanseCmd)
}

func runCleanse(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cfg.Cleanse.ExpectedRows <= 0 {
		return fmt.Errorf("expected row count required: pass --expected-rows or set cleanse.expected_rows")
	}

	table, err := catalog.ReadFile(cfg.Catalog.InputPath)
	if err != nil {
		return err
	}

	res, err := cleanse.New(cfg.Cleanse, logger).Run(cmd.Context(), table)
	if err != nil {
		return err
	}

	if err := catalog.WriteFile(cfg.Catalog.OutputPath, res.Records); err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Read %d rows, kept %d planets, dropped %d duplicates\n",
		res.RawRows, len(res.Records), res.Dropped)
	if res.Backfilled > 0 {
		fmt.Fprintf(out, "Backfilled %d fields from duplicate rows\n", res.Backfilled)
	}
	fmt.Fprintf(out, "Wrote %s\n", cfg.Catalog.OutputPath)

	saveToStore, _ := cmd.Flags().GetBool("store")
	if !saveToStore {
		return nil
	}

	s, err := store.NewStore(cfg.Store)
	if err != nil {
		return err
	}
	defer s.Close()

	run := store.NewRun(res.RawRows, res.Dropped)
	if err := s.Save(cmd.Context(), run, res.Records); err != nil {
		return err
	}
	logger.Info("run saved", zap.String("run_id", run.ID), zap.String("data_dir", cfg.Store.DataDir))
	fmt.Fprintf(out, "Saved run %s to %s\n", run.ID, cfg.Store.DataDir)
	return nil
}
