// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package fetch downloads the raw planetary systems table from the
// exoplanet archive so the cleansing pipeline can run offline.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/pdiddy/exocatalog/internal/catalog"
	"github.com/pdiddy/exocatalog/internal/httputil"
	"github.com/pdiddy/exocatalog/pkg/types"
)

// DefaultURL queries the archive's TAP service for the full planetary
// systems table as CSV.
const DefaultURL = "https://exoplanetarchive.ipac.caltech.edu/TAP/sync?query=select+*+from+ps&format=csv"

// Result describes a completed download.
type Result struct {
	Path  string
	Bytes int64

	// Rows is the number of data rows in the downloaded table. Pass it to
	// the cleanse stage as the expected row count.
	Rows int
}

// Download fetches cfg.URL into cfg.OutputPath. The file is written to a
// temporary name and renamed into place, so a failed download never
// replaces a good catalog.
func Download(ctx context.Context, client *http.Client, cfg types.FetchConfig, logger *zap.Logger) (Result, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	url := cfg.URL
	if url == "" {
		url = DefaultURL
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return Result{}, fmt.Errorf("creating request: %w", err)
	}
	if cfg.UserAgent != "" {
		req.Header.Set("User-Agent", cfg.UserAgent)
	}
	req.Header.Set("Accept", "text/csv")

	logger.Info("downloading catalog", zap.String("url", url))
	resp, err := httputil.DoWithRetry(ctx, client, req, cfg.MaxRetries, logger)
	if err != nil {
		return Result{}, fmt.Errorf("HTTP request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Result{}, fmt.Errorf("HTTP %d from %s", resp.StatusCode, url)
	}

	if err := os.MkdirAll(filepath.Dir(cfg.OutputPath), 0o755); err != nil {
		return Result{}, fmt.Errorf("creating output directory: %w", err)
	}
	tmpFile, err := os.CreateTemp(filepath.Dir(cfg.OutputPath), ".fetch-*.tmp")
	if err != nil {
		return Result{}, fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	n, copyErr := io.Copy(tmpFile, resp.Body)
	closeErr := tmpFile.Close()
	if copyErr != nil {
		os.Remove(tmpPath)
		return Result{}, fmt.Errorf("writing download: %w", copyErr)
	}
	if closeErr != nil {
		os.Remove(tmpPath)
		return Result{}, fmt.Errorf("closing temp file: %w", closeErr)
	}

	table, err := catalog.ReadFile(tmpPath)
	if err != nil {
		os.Remove(tmpPath)
		return Result{}, fmt.Errorf("validating download: %w", err)
	}

	if err := os.Rename(tmpPath, cfg.OutputPath); err != nil {
		os.Remove(tmpPath)
		return Result{}, fmt.Errorf("renaming temp file: %w", err)
	}

	res := Result{Path: cfg.OutputPath, Bytes: n, Rows: table.Len()}
	logger.Info("catalog downloaded",
		zap.String("path", res.Path),
		zap.Int64("bytes", res.Bytes),
		zap.Int("rows", res.Rows),
	)
	return res, nil
}
