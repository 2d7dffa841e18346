// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"github.com/spf13/cobra"

	"github.com/pdiddy/exocatalog/internal/report"
	"github.com/pdiddy/exocatalog/internal/store"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Summarise the stored planets",
	Long: `Report prints planet counts per habitability and composition class, and
how many host stars have one, two, or more planets, both for all planets
and for planets in their star's habitable zone.`,
	RunE: runReport,
}

func init() {
	rootCmd.AddCommand(reportCmd)
}

func runReport(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	if _, err := s.LatestRun(cmd.Context()); err != nil {
		return err
	}
	records, err := s.Query(cmd.Context(), store.QueryOptions{MaxResults: -1})
	if err != nil {
		return err
	}
	return report.Summarize(records).Write(cmd.OutOrStdout())
}
