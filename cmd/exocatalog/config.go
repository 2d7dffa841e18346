// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/pdiddy/exocatalog/internal/fetch"
)

const (
	defaultTimeout   = 5 * time.Minute
	defaultUserAgent = "exocatalog/0.1"
	defaultRetries   = 5
	defaultRawPath   = "data/raw/ps.csv"
	defaultOutPath   = "data/cleansed/planets.csv"
)

// envKeyReplacer maps nested keys such as cleanse.expected_rows to
// EXOCATALOG_CLEANSE_EXPECTED_ROWS.
var envKeyReplacer = strings.NewReplacer(".", "_")

func setDefaults() {
	viper.SetDefault("fetch.url", fetch.DefaultURL)
	viper.SetDefault("fetch.timeout", defaultTimeout)
	viper.SetDefault("fetch.user_agent", defaultUserAgent)
	viper.SetDefault("fetch.max_retries", defaultRetries)
	viper.SetDefault("fetch.output_path", defaultRawPath)

	viper.SetDefault("catalog.input_path", defaultRawPath)
	viper.SetDefault("catalog.output_path", defaultOutPath)

	viper.SetDefault("cleanse.expected_rows", 0)
	viper.SetDefault("cleanse.backfill", false)
	viper.SetDefault("cleanse.workers", 0)

	viper.SetDefault("store.data_dir", "data")
	viper.SetDefault("store.max_results", 50)
}
