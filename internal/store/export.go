// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/exocatalog/pkg/types"
)

// Export is the document written by ExportYAML and ExportJSON.
type Export struct {
	Run     Run                           `json:"run" yaml:"run"`
	Planets []types.CanonicalPlanetRecord `json:"planets" yaml:"planets"`
}

func (s *Store) export(ctx context.Context, opts QueryOptions) (Export, error) {
	run, err := s.LatestRun(ctx)
	if err != nil {
		return Export{}, err
	}
	opts.MaxResults = -1
	planets, err := s.Query(ctx, opts)
	if err != nil {
		return Export{}, fmt.Errorf("querying for export: %w", err)
	}
	return Export{Run: run, Planets: planets}, nil
}

// ExportYAML writes the stored planets to dataDir/export.yaml and returns
// the path. It supports the same filters as Query.
func (s *Store) ExportYAML(ctx context.Context, opts QueryOptions) (string, error) {
	doc, err := s.export(ctx, opts)
	if err != nil {
		return "", err
	}
	data, err := yaml.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("marshaling YAML: %w", err)
	}
	path := filepath.Join(s.dataDir, "export.yaml")
	return path, os.WriteFile(path, data, 0o644)
}

// ExportJSON writes the stored planets to dataDir/export.json and returns
// the path. It supports the same filters as Query.
func (s *Store) ExportJSON(ctx context.Context, opts QueryOptions) (string, error) {
	doc, err := s.export(ctx, opts)
	if err != nil {
		return "", err
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshaling JSON: %w", err)
	}
	path := filepath.Join(s.dataDir, "export.json")
	return path, os.WriteFile(path, data, 0o644)
}
