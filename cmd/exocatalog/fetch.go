// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"net/http"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/exocatalog/internal/fetch"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Download the planetary systems table from the exoplanet archive",
	Long: `Fetch downloads the archive's planetary systems table as CSV and writes
it atomically to the configured path. The row count it prints is the
value to pass to cleanse as --expected-rows.`,
	RunE: runFetch,
}

func init() {
	fetchCmd.Flags().String("url", "", "catalog CSV endpoint (default: archive TAP query)")
	fetchCmd.Flags().String("output", "", "path for the downloaded CSV (default data/raw/ps.csv)")
	fetchCmd.Flags().Duration("timeout", 0, "HTTP request timeout (default 5m)")
	fetchCmd.Flags().Int("max-retries", 0, "retries when the archive is busy (default 5)")

	bindFlags(fetchCmd, map[string]string{
		"url":         "fetch.url",
		"output":      "fetch.output_path",
		"timeout":     "fetch.timeout",
		"max-retries": "fetch.max_retries",
	})

	rootCmd.AddCommand(fetchCmd)
}

func runFetch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	client := &http.Client{Timeout: cfg.Fetch.Timeout}
	res, err := fetch.Download(cmd.Context(), client, cfg.Fetch, logger)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Downloaded %d rows (%d bytes) to %s\n", res.Rows, res.Bytes, res.Path)
	fmt.Fprintf(cmd.OutOrStdout(), "Next: exocatalog cleanse --input %s --expected-rows %d\n", res.Path, res.Rows)
	return nil
}

// bindFlags binds each named flag on cmd to a viper key. Flags only take
// effect when set, so config file and environment values still apply.
func bindFlags(cmd *cobra.Command, keys map[string]string) {
	for flag, key := range keys {
		if err := viper.BindPFlag(key, cmd.Flags().Lookup(flag)); err != nil {
			panic(fmt.Sprintf("binding flag %s: %v", flag, err))
		}
	}
}
