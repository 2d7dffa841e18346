// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds shared HTTP settings used by stages that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout" mapstructure:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "exocatalog/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent" mapstructure:"user_agent"`
}

// FetchConfig holds settings for downloading the raw catalog.
type FetchConfig struct {
	HTTPConfig `yaml:",inline" mapstructure:",squash"`

	// URL is the catalog CSV endpoint.
	URL string `json:"url" yaml:"url" mapstructure:"url"`

	// OutputPath is where the downloaded CSV is written.
	OutputPath string `json:"output_path" yaml:"output_path" mapstructure:"output_path"`

	// MaxRetries bounds retries on HTTP 429 (default 5).
	MaxRetries int `json:"max_retries" yaml:"max_retries" mapstructure:"max_retries"`
}

// CatalogConfig locates the pipeline's input and output tables.
type CatalogConfig struct {
	// InputPath is the raw catalog CSV.
	InputPath string `json:"input_path" yaml:"input_path" mapstructure:"input_path"`

	// OutputPath is the cleansed CSV written after a run.
	OutputPath string `json:"output_path" yaml:"output_path" mapstructure:"output_path"`
}

// CleanseConfig holds settings for the cleansing pipeline.
type CleanseConfig struct {
	// ExpectedRows is the raw row count the caller expects. A mismatch
	// aborts the run before any processing.
	ExpectedRows int `json:"expected_rows" yaml:"expected_rows" mapstructure:"expected_rows"`

	// Backfill fills missing fields of each canonical row from its
	// duplicates, in rank order.
	Backfill bool `json:"backfill" yaml:"backfill" mapstructure:"backfill"`

	// Workers bounds the derivation pass. Zero uses the CPU count.
	Workers int `json:"workers" yaml:"workers" mapstructure:"workers"`
}

// StoreConfig holds settings for the canonical planet store.
type StoreConfig struct {
	// DataDir contains exocatalog.db and export files.
	DataDir string `json:"data_dir" yaml:"data_dir" mapstructure:"data_dir"`

	// MaxResults is the default query limit (default 50).
	MaxResults int `json:"max_results" yaml:"max_results" mapstructure:"max_results"`
}

// PipelineConfig groups all stage configurations.
type PipelineConfig struct {
	Fetch   FetchConfig   `json:"fetch" yaml:"fetch" mapstructure:"fetch"`
	Catalog CatalogConfig `json:"catalog" yaml:"catalog" mapstructure:"catalog"`
	Cleanse CleanseConfig `json:"cleanse" yaml:"cleanse" mapstructure:"cleanse"`
	Store   StoreConfig   `json:"store" yaml:"store" mapstructure:"store"`
}
