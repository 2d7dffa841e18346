// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package cleanse turns a raw exoplanet catalog into one canonical record
// per planet with derived physical metrics. A run validates the row count,
// projects and renames the catalog columns, consolidates duplicate rows,
// and derives metrics for each retained row.
package cleanse

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/pdiddy/exocatalog/internal/consolidate"
	"github.com/pdiddy/exocatalog/pkg/types"
)

var (
	// ErrRowCountMismatch means the raw table does not have the expected
	// number of rows.
	ErrRowCountMismatch = errors.New("raw row count mismatch")

	// ErrMissingColumn means a required catalog column is absent.
	ErrMissingColumn = errors.New("missing catalog column")

	// ErrDuplicatePlanet means consolidation produced a repeated planet
	// name. It indicates a bug, not bad input.
	ErrDuplicatePlanet = errors.New("duplicate planet after consolidation")
)

// Result is the outcome of one pipeline run.
type Result struct {
	// RawRows is the number of rows read.
	RawRows int

	// Records holds one record per planet, nearest and most complete first.
	Records []types.CanonicalPlanetRecord

	// Dropped is the number of duplicate rows discarded.
	Dropped int

	// Backfilled is the number of fields filled from duplicate rows.
	Backfilled int
}

// Pipeline runs the cleansing stages. It holds no state between runs; Run
// can be repeated on the same input.
type Pipeline struct {
	cfg    types.CleanseConfig
	logger *zap.Logger
}

// New returns a Pipeline. A nil logger discards log output.
func New(cfg types.CleanseConfig, logger *zap.Logger) *Pipeline {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Pipeline{cfg: cfg, logger: logger}
}

// CheckRowCount fails with ErrRowCountMismatch unless actual equals
// expected.
func CheckRowCount(actual, expected int) error {
	if actual != expected {
		return fmt.Errorf("%w: read %d rows, expected %d", ErrRowCountMismatch, actual, expected)
	}
	return nil
}

// Run executes the pipeline over table. Structural problems (row count,
// missing columns, unparseable cells) abort before any record is produced.
func (p *Pipeline) Run(ctx context.Context, table types.RawTable) (Result, error) {
	if err := CheckRowCount(table.Len(), p.cfg.ExpectedRows); err != nil {
		return Result{}, err
	}
	p.logger.Info("raw catalog read", zap.Int("rows", table.Len()))

	rows, err := Project(table)
	if err != nil {
		return Result{}, fmt.Errorf("projecting columns: %w", err)
	}
	return p.Cleanse(ctx, rows)
}

// Cleanse consolidates already projected rows and derives their metrics.
func (p *Pipeline) Cleanse(ctx context.Context, rows []types.RawObservationRow) (Result, error) {
	groups := consolidate.Consolidate(rows)
	records := make([]types.CanonicalPlanetRecord, len(groups))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.workerCount(len(groups)))
	for i := range groups {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			records[i] = p.buildRecord(groups[i])
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Result{}, fmt.Errorf("deriving metrics: %w", err)
	}

	if err := checkUnique(records); err != nil {
		return Result{}, err
	}

	res := Result{
		RawRows: len(rows),
		Records: records,
		Dropped: len(rows) - len(records),
	}
	for i := range records {
		res.Backfilled += len(records[i].Backfilled)
	}

	p.logger.Info("catalog cleansed",
		zap.Int("raw_rows", res.RawRows),
		zap.Int("planets", len(res.Records)),
		zap.Int("dropped", res.Dropped),
		zap.Int("backfilled_fields", res.Backfilled),
	)
	return res, nil
}

func (p *Pipeline) buildRecord(g consolidate.Group) types.CanonicalPlanetRecord {
	row := g.Canonical.Row
	var filled []string
	if p.cfg.Backfill {
		row, filled = consolidate.Backfill(g)
		if len(filled) > 0 {
			p.logger.Debug("backfilled from duplicates",
				zap.String("planet", row.PlanetName),
				zap.Strings("columns", filled),
			)
		}
	}
	return types.CanonicalPlanetRecord{
		Observation:   row,
		MissingFields: g.Canonical.MissingFields,
		Duplicates:    len(g.Siblings),
		Backfilled:    filled,
		Metrics:       Derive(row),
	}
}

func (p *Pipeline) workerCount(n int) int {
	if p.cfg.Workers > 0 {
		return max(min(p.cfg.Workers, n), 1)
	}
	return max(min(runtime.NumCPU(), n), 1)
}

func checkUnique(records []types.CanonicalPlanetRecord) error {
	seen := make(map[string]struct{}, len(records))
	for i := range records {
		name := records[i].Name()
		if _, ok := seen[name]; ok {
			return fmt.Errorf("%w: %q", ErrDuplicatePlanet, name)
		}
		seen[name] = struct{}{}
	}
	return nil
}
