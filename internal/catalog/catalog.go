// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package catalog reads raw exoplanet archive CSV exports and writes the
// cleansed planet table.
package catalog

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdiddy/exocatalog/pkg/types"
)

// commentPrefix marks the archive's metadata lines at the top of an export.
const commentPrefix = "#"

// Read parses a CSV export into a RawTable. Leading comment lines and blank
// lines are skipped; the first remaining record is the header.
func Read(r io.Reader) (types.RawTable, error) {
	body, err := stripComments(r)
	if err != nil {
		return types.RawTable{}, fmt.Errorf("reading catalog: %w", err)
	}

	cr := csv.NewReader(body)

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return types.RawTable{}, fmt.Errorf("reading catalog: no header row")
	}
	if err != nil {
		return types.RawTable{}, fmt.Errorf("reading catalog header: %w", err)
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}

	table := types.RawTable{Header: header}
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return types.RawTable{}, fmt.Errorf("reading catalog: %w", err)
		}
		table.Rows = append(table.Rows, rec)
	}
	return table, nil
}

// ReadFile reads the CSV export at path.
func ReadFile(path string) (types.RawTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return types.RawTable{}, fmt.Errorf("opening catalog: %w", err)
	}
	defer f.Close()
	return Read(f)
}

// stripComments drops leading "#" lines so the CSV reader sees the header
// first. Comment lines after the header are data and left alone.
func stripComments(r io.Reader) (io.Reader, error) {
	br := bufio.NewReader(r)
	for {
		line, err := br.ReadBytes('\n')
		trimmed := bytes.TrimSpace(line)
		if len(trimmed) > 0 && !bytes.HasPrefix(trimmed, []byte(commentPrefix)) {
			return io.MultiReader(bytes.NewReader(line), br), nil
		}
		if errors.Is(err, io.EOF) {
			return bytes.NewReader(nil), nil
		}
		if err != nil {
			return nil, err
		}
	}
}

// Header returns the output table header.
func Header() []string {
	header := make([]string, 0, len(types.Columns)+len(types.MetricColumns))
	for _, col := range types.Columns {
		header = append(header, col.Name)
	}
	for _, col := range types.MetricColumns {
		header = append(header, col.Name)
	}
	return header
}

// Write emits records as CSV: renamed catalog columns, then derived
// columns. Missing values are empty cells.
func Write(w io.Writer, records []types.CanonicalPlanetRecord) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header()); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for i := range records {
		if err := cw.Write(recordCells(&records[i])); err != nil {
			return fmt.Errorf("writing %s: %w", records[i].Name(), err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteFile writes records to path, replacing it atomically.
func WriteFile(path string, records []types.CanonicalPlanetRecord) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}
	tmp := path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("creating output: %w", err)
	}
	if err := Write(f, records); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("closing output: %w", err)
	}
	return os.Rename(tmp, path)
}

func recordCells(rec *types.CanonicalPlanetRecord) []string {
	cells := make([]string, 0, len(types.Columns)+len(types.MetricColumns))
	for _, col := range types.Columns {
		cells = append(cells, col.Format(&rec.Observation))
	}
	for _, col := range types.MetricColumns {
		cells = append(cells, col.Format(&rec.Metrics))
	}
	return cells
}
