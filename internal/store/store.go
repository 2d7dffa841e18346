// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package store persists canonical planet records in a local SQLite
// database and exports them as YAML or JSON.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/exocatalog/pkg/types"
)

const (
	dbFile            = "exocatalog.db"
	defaultMaxResults = 50
)

// ErrNotFound is returned when a planet or run does not exist.
var ErrNotFound = errors.New("not found")

// Run records one pipeline execution whose output is in the store.
type Run struct {
	ID      string    `json:"id" yaml:"id"`
	Started time.Time `json:"started" yaml:"started"`
	RawRows int       `json:"raw_rows" yaml:"raw_rows"`
	Planets int       `json:"planets" yaml:"planets"`
	Dropped int       `json:"dropped" yaml:"dropped"`
}

// NewRun returns a Run with a fresh ID, started now.
func NewRun(rawRows, dropped int) Run {
	return Run{
		ID:      uuid.NewString(),
		Started: time.Now().UTC(),
		RawRows: rawRows,
		Dropped: dropped,
	}
}

// Store manages the planet database.
type Store struct {
	db         *sql.DB
	dataDir    string
	maxResults int
}

// NewStore opens or creates the database at dataDir/exocatalog.db and
// creates the schema if it does not exist.
func NewStore(cfg types.StoreConfig) (*Store, error) {
	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(cfg.DataDir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = defaultMaxResults
	}

	s := &Store{
		db:         db,
		dataDir:    cfg.DataDir,
		maxResults: maxResults,
	}

	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// planetColumns lists the planets table columns after the bookkeeping
// ones, in the order used by inserts and selects.
func planetColumns() []string {
	cols := make([]string, 0, len(types.Columns)+len(types.MetricColumns))
	for _, c := range types.Columns {
		cols = append(cols, c.Name)
	}
	for _, c := range types.MetricColumns {
		cols = append(cols, c.Name)
	}
	return cols
}

func (s *Store) createSchema() error {
	var planets strings.Builder
	planets.WriteString(`CREATE TABLE IF NOT EXISTS planets (
			rank INTEGER NOT NULL,
			run_id TEXT NOT NULL REFERENCES runs(id),
			missing_fields INTEGER NOT NULL,
			duplicates INTEGER NOT NULL,
			backfilled TEXT`)
	for _, c := range types.Columns {
		switch {
		case c.Name == "name_of_planet":
			planets.WriteString(",\n\t\t\tname_of_planet TEXT PRIMARY KEY")
		case c.Kind == types.KindText:
			fmt.Fprintf(&planets, ",\n\t\t\t%s TEXT NOT NULL", c.Name)
		case c.Kind == types.KindInt:
			fmt.Fprintf(&planets, ",\n\t\t\t%s INTEGER", c.Name)
		default:
			fmt.Fprintf(&planets, ",\n\t\t\t%s REAL", c.Name)
		}
	}
	for _, c := range types.MetricColumns {
		switch c.ScanTarget(&types.DerivedMetrics{}).(type) {
		case *types.NullFloat:
			fmt.Fprintf(&planets, ",\n\t\t\t%s REAL", c.Name)
		default:
			fmt.Fprintf(&planets, ",\n\t\t\t%s TEXT NOT NULL", c.Name)
		}
	}
	planets.WriteString("\n\t\t)")

	statements := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id TEXT PRIMARY KEY,
			started TEXT NOT NULL,
			raw_rows INTEGER NOT NULL,
			planets INTEGER NOT NULL,
			dropped INTEGER NOT NULL
		)`,
		planets.String(),
		`CREATE INDEX IF NOT EXISTS idx_planets_rank ON planets(rank)`,
		`CREATE INDEX IF NOT EXISTS idx_planets_host ON planets(name_of_host_star)`,
		`CREATE INDEX IF NOT EXISTS idx_planets_habitable ON planets(is_planet_habitable)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Save replaces the stored planets with records and records run. Records
// keep their slice order as rank. The whole save is one transaction, so a
// failed save leaves the previous run intact.
func (s *Store) Save(ctx context.Context, run Run, records []types.CanonicalPlanetRecord) error {
	run.Planets = len(records)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM planets`); err != nil {
		return fmt.Errorf("clearing planets: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO runs (id, started, raw_rows, planets, dropped) VALUES (?, ?, ?, ?, ?)`,
		run.ID, run.Started.UTC().Format(time.RFC3339Nano), run.RawRows, run.Planets, run.Dropped,
	)
	if err != nil {
		return fmt.Errorf("inserting run: %w", err)
	}

	cols := planetColumns()
	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(cols)+5), ", ")
	stmt, err := tx.PrepareContext(ctx, fmt.Sprintf(
		`INSERT INTO planets (rank, run_id, missing_fields, duplicates, backfilled, %s) VALUES (%s)`,
		strings.Join(cols, ", "), placeholders,
	))
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for i := range records {
		rec := &records[i]
		args := make([]any, 0, len(cols)+5)

		var backfilled sql.NullString
		if len(rec.Backfilled) > 0 {
			data, _ := json.Marshal(rec.Backfilled)
			backfilled = sql.NullString{String: string(data), Valid: true}
		}
		args = append(args, i, run.ID, rec.MissingFields, rec.Duplicates, backfilled)
		for _, c := range types.Columns {
			args = append(args, c.SQLValue(&rec.Observation))
		}
		for _, c := range types.MetricColumns {
			args = append(args, c.SQLValue(&rec.Metrics))
		}

		if _, err := stmt.ExecContext(ctx, args...); err != nil {
			return fmt.Errorf("inserting planet %s: %w", rec.Name(), err)
		}
	}

	return tx.Commit()
}

// LatestRun returns the most recently saved run.
func (s *Store) LatestRun(ctx context.Context) (Run, error) {
	var (
		run     Run
		started string
	)
	err := s.db.QueryRowContext(ctx,
		`SELECT id, started, raw_rows, planets, dropped FROM runs ORDER BY started DESC LIMIT 1`,
	).Scan(&run.ID, &started, &run.RawRows, &run.Planets, &run.Dropped)
	if errors.Is(err, sql.ErrNoRows) {
		return Run{}, fmt.Errorf("no runs recorded: %w", ErrNotFound)
	}
	if err != nil {
		return Run{}, fmt.Errorf("looking up latest run: %w", err)
	}
	run.Started, err = time.Parse(time.RFC3339Nano, started)
	if err != nil {
		return Run{}, fmt.Errorf("parsing run start time: %w", err)
	}
	return run, nil
}
