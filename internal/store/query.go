// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/pdiddy/exocatalog/pkg/types"
)

// QueryOptions holds filters for planet queries. Empty fields do not filter.
type QueryOptions struct {
	// Host filters by host star name.
	Host string

	Habitability types.Habitability
	Composition  types.Composition

	// MaxResults limits result count. Zero uses the store default; a
	// negative value returns every match.
	MaxResults int
}

// Query returns stored planets matching opts in rank order: nearest and
// most complete first.
func (s *Store) Query(ctx context.Context, opts QueryOptions) ([]types.CanonicalPlanetRecord, error) {
	maxResults := opts.MaxResults
	if maxResults == 0 {
		maxResults = s.maxResults
	}

	var (
		qb   strings.Builder
		args []any
	)
	qb.WriteString(selectPlanets())
	qb.WriteString(` WHERE 1=1`)

	if opts.Host != "" {
		qb.WriteString(` AND name_of_host_star = ?`)
		args = append(args, opts.Host)
	}
	if opts.Habitability != "" {
		qb.WriteString(` AND is_planet_habitable = ?`)
		args = append(args, string(opts.Habitability))
	}
	if opts.Composition != "" {
		qb.WriteString(` AND planet_composition = ?`)
		args = append(args, string(opts.Composition))
	}

	qb.WriteString(` ORDER BY rank LIMIT ?`)
	args = append(args, maxResults)

	rows, err := s.db.QueryContext(ctx, qb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("querying planets: %w", err)
	}
	defer rows.Close()

	var results []types.CanonicalPlanetRecord
	for rows.Next() {
		rec, err := scanPlanet(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, rec)
	}
	return results, rows.Err()
}

// Get returns the stored record for one planet.
func (s *Store) Get(ctx context.Context, name string) (types.CanonicalPlanetRecord, error) {
	row := s.db.QueryRowContext(ctx, selectPlanets()+` WHERE name_of_planet = ?`, name)
	rec, err := scanPlanet(row)
	if errors.Is(err, sql.ErrNoRows) {
		return types.CanonicalPlanetRecord{}, fmt.Errorf("planet %q: %w", name, ErrNotFound)
	}
	return rec, err
}

func selectPlanets() string {
	return `SELECT missing_fields, duplicates, backfilled, ` +
		strings.Join(planetColumns(), ", ") + ` FROM planets`
}

type scanner interface {
	Scan(dest ...any) error
}

func scanPlanet(sc scanner) (types.CanonicalPlanetRecord, error) {
	var (
		rec        types.CanonicalPlanetRecord
		backfilled sql.NullString
	)
	dest := []any{&rec.MissingFields, &rec.Duplicates, &backfilled}
	for _, c := range types.Columns {
		dest = append(dest, c.ScanTarget(&rec.Observation))
	}
	for _, c := range types.MetricColumns {
		dest = append(dest, c.ScanTarget(&rec.Metrics))
	}

	if err := sc.Scan(dest...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return rec, err
		}
		return rec, fmt.Errorf("scanning planet: %w", err)
	}
	if backfilled.Valid {
		if err := json.Unmarshal([]byte(backfilled.String), &rec.Backfilled); err != nil {
			return rec, fmt.Errorf("decoding backfilled columns: %w", err)
		}
	}
	return rec, nil
}
