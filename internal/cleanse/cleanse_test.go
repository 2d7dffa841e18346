// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package cleanse

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/pdiddy/exocatalog/pkg/types"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// --- test helpers ---

func catalogHeader() []string {
	header := make([]string, len(types.Columns))
	for i, col := range types.Columns {
		header[i] = col.Catalog
	}
	return header
}

// baseCells returns an Earth-like planet around a Sun-like star.
func baseCells(name string, distancePc string) map[string]string {
	return map[string]string{
		"pl_name": name, "hostname": name + " host", "discoverymethod": "Transit",
		"disc_year": "2016", "soltype": "Published Confirmed",
		"pl_orbper": "365.25", "pl_orbpererr1": "0.1", "pl_orbpererr2": "-0.1",
		"pl_orbsmax": "1.0", "pl_orbsmaxerr1": "0.01", "pl_orbsmaxerr2": "-0.01",
		"pl_rade": "1.0", "pl_radj": "0.0892", "pl_bmasse": "1.0", "pl_bmassj": "0.00315",
		"pl_eqt": "255", "pl_eqterr1": "5", "pl_eqterr2": "-5",
		"st_teff": "5772", "st_tefferr1": "10", "st_tefferr2": "-10",
		"st_rad": "1.0", "st_raderr1": "0.01", "st_raderr2": "-0.01",
		"st_mass": "1.0", "st_masserr1": "0.01", "st_masserr2": "-0.01",
		"sy_dist": distancePc, "sy_disterr1": "0.1", "sy_disterr2": "-0.1",
	}
}

func tableOf(rows ...map[string]string) types.RawTable {
	header := catalogHeader()
	t := types.RawTable{Header: header}
	for _, r := range rows {
		cells := make([]string, len(header))
		for i, h := range header {
			cells[i] = r[h]
		}
		t.Rows = append(t.Rows, cells)
	}
	return t
}

func without(cells map[string]string, keys ...string) map[string]string {
	out := make(map[string]string, len(cells))
	for k, v := range cells {
		out[k] = v
	}
	for _, k := range keys {
		delete(out, k)
	}
	return out
}

func run(t *testing.T, cfg types.CleanseConfig, table types.RawTable) Result {
	t.Helper()
	res, err := New(cfg, nil).Run(context.Background(), table)
	require.NoError(t, err)
	return res
}

// --- tests ---

func TestRunEndToEnd(t *testing.T) {
	// 50 ly and 10 ly expressed in parsecs.
	const at50ly, at10ly = "15.33", "3.066"
	table := tableOf(
		without(baseCells("Kepler-1b", at50ly), "st_rad"),
		baseCells("Kepler-1b", at50ly),
		baseCells("Kepler-2b", at10ly),
	)

	res := run(t, types.CleanseConfig{ExpectedRows: 3}, table)

	require.Len(t, res.Records, 2)
	assert.Equal(t, 3, res.RawRows)
	assert.Equal(t, 1, res.Dropped)
	assert.Equal(t, "Kepler-2b", res.Records[0].Name())
	assert.Equal(t, "Kepler-1b", res.Records[1].Name())

	kepler1 := res.Records[1]
	assert.Equal(t, 1, kepler1.Observation.Index)
	assert.Equal(t, 0, kepler1.MissingFields)
	assert.Equal(t, 1, kepler1.Duplicates)
	assert.True(t, kepler1.Observation.StellarRadius.Valid)

	ly, ok := kepler1.Metrics.DistanceLightYears.Get()
	require.True(t, ok)
	assert.InDelta(t, 50.0, ly, 0.01)
}

func TestRunDerivesEarthLikeMetrics(t *testing.T) {
	res := run(t, types.CleanseConfig{ExpectedRows: 1}, tableOf(baseCells("Earth analog", "1")))
	m := res.Records[0].Metrics

	assert.Equal(t, types.Habitable, m.Habitability)
	assert.Equal(t, types.CompositionRocky, m.Composition)
	assert.Equal(t, types.Some(5.972e24), m.PlanetMassKg)
	assert.Equal(t, types.Some(6371.0), m.PlanetActualRadiusKm)
	assert.Equal(t, types.Some(695700.0), m.StellarActualRadiusKm)

	lum, _ := m.StellarLuminositySolar.Get()
	assert.InDelta(t, 0.994, lum, 0.001)
	rel, _ := m.GravityRelativeToEarth.Get()
	assert.InDelta(t, 1.0, rel, 0.001)

	errMax, _ := m.DistanceLightYearsErrorMax.Get()
	assert.InDelta(t, 0.3261563776976, errMax, 1e-12)
}

func TestRunMissingTemperaturePropagates(t *testing.T) {
	res := run(t, types.CleanseConfig{ExpectedRows: 1}, tableOf(without(baseCells("p", "5"), "st_teff")))
	m := res.Records[0].Metrics

	assert.False(t, m.StellarLuminositySolar.Valid)
	assert.False(t, m.HabitableZoneInnerAU.Valid)
	assert.False(t, m.HabitableZoneOuterAU.Valid)
	assert.Equal(t, types.HabitabilityUnknown, m.Habitability)

	// Unrelated chains are unaffected.
	assert.True(t, m.StellarActualRadiusKm.Valid)
	assert.True(t, m.PlanetDensity.Valid)
}

func TestRunMissingOrbitIsUnknown(t *testing.T) {
	res := run(t, types.CleanseConfig{ExpectedRows: 1}, tableOf(without(baseCells("p", "5"), "pl_orbsmax")))
	assert.Equal(t, types.HabitabilityUnknown, res.Records[0].Metrics.Habitability)
}

func TestRunMissingMassLeavesPhysicsMissing(t *testing.T) {
	res := run(t, types.CleanseConfig{ExpectedRows: 1}, tableOf(without(baseCells("p", "5"), "pl_bmasse")))
	m := res.Records[0].Metrics

	assert.False(t, m.PlanetMassKg.Valid)
	assert.False(t, m.PlanetDensity.Valid)
	assert.False(t, m.PlanetActualRadiusKm.Valid)
	assert.False(t, m.SurfaceGravity.Valid)
	assert.Equal(t, types.CompositionUnknown, m.Composition)
}

func TestRunRowCountMismatch(t *testing.T) {
	_, err := New(types.CleanseConfig{ExpectedRows: 2}, nil).Run(context.Background(), tableOf(baseCells("p", "1")))
	require.ErrorIs(t, err, ErrRowCountMismatch)
	assert.Contains(t, err.Error(), "read 1 rows, expected 2")
}

func TestRunMissingColumn(t *testing.T) {
	table := tableOf(baseCells("p", "1"))
	table.Header[3] = "discovery_year"

	_, err := New(types.CleanseConfig{ExpectedRows: 1}, nil).Run(context.Background(), table)
	require.ErrorIs(t, err, ErrMissingColumn)
	assert.Contains(t, err.Error(), "disc_year")
}

func TestRunUnparseableCell(t *testing.T) {
	cells := baseCells("p", "1")
	cells["st_teff"] = "hot"

	_, err := New(types.CleanseConfig{ExpectedRows: 1}, nil).Run(context.Background(), tableOf(cells))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row 1")
	assert.Contains(t, err.Error(), "st_teff")
}

func TestRunBackfill(t *testing.T) {
	table := tableOf(
		without(baseCells("p", "1"), "st_teff", "pl_eqt"),
		without(baseCells("p", "2"), "pl_eqt"),
	)

	plain := run(t, types.CleanseConfig{ExpectedRows: 2}, table)
	assert.Equal(t, types.HabitabilityUnknown, plain.Records[0].Metrics.Habitability)
	assert.Empty(t, plain.Records[0].Backfilled)

	filled := run(t, types.CleanseConfig{ExpectedRows: 2, Backfill: true}, table)
	rec := filled.Records[0]
	assert.Equal(t, 0, rec.Observation.Index)
	assert.Equal(t, []string{"stellar_effective_temperature_black_body_radiation"}, rec.Backfilled)
	assert.Equal(t, types.Habitable, rec.Metrics.Habitability)
	assert.Equal(t, 2, rec.MissingFields)
	assert.Equal(t, 1, filled.Backfilled)
}

func TestRunIsRepeatable(t *testing.T) {
	table := tableOf(baseCells("a", "3"), baseCells("b", "1"), baseCells("a", "2"))
	p := New(types.CleanseConfig{ExpectedRows: 3, Workers: 2}, nil)

	first, err := p.Run(context.Background(), table)
	require.NoError(t, err)
	second, err := p.Run(context.Background(), table)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestRunManyPlanetsUnique(t *testing.T) {
	var rows []map[string]string
	for i := range 200 {
		name := "planet-" + strings.Repeat("x", i%7) + string(rune('a'+i%26))
		rows = append(rows, baseCells(name, "4"))
	}
	res := run(t, types.CleanseConfig{ExpectedRows: len(rows)}, tableOf(rows...))

	seen := map[string]bool{}
	for _, r := range res.Records {
		require.False(t, seen[r.Name()], "duplicate %s", r.Name())
		seen[r.Name()] = true
	}
	assert.Equal(t, len(seen), len(res.Records))
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(types.CleanseConfig{ExpectedRows: 1}, nil).Run(ctx, tableOf(baseCells("p", "1")))
	require.ErrorIs(t, err, context.Canceled)
}

func TestRunLogsSummary(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	p := New(types.CleanseConfig{ExpectedRows: 2}, zap.New(core))

	_, err := p.Run(context.Background(), tableOf(baseCells("p", "1"), baseCells("p", "1")))
	require.NoError(t, err)

	entries := logs.FilterMessage("catalog cleansed").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.EqualValues(t, 1, fields["planets"])
	assert.EqualValues(t, 1, fields["dropped"])
}

func TestProjectIgnoresExtraColumnsAndOrder(t *testing.T) {
	table := tableOf(baseCells("p", "1"))
	table.Header = append([]string{"rowid"}, table.Header...)
	for i := range table.Rows {
		table.Rows[i] = append([]string{"99"}, table.Rows[i]...)
	}

	rows, err := Project(table)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "p", rows[0].PlanetName)
	assert.Equal(t, types.SomeInt(2016), rows[0].DiscoveryYear)
	assert.Equal(t, types.Some(1.0), rows[0].Distance)
}

func TestCheckRowCount(t *testing.T) {
	require.NoError(t, CheckRowCount(3, 3))
	require.ErrorIs(t, CheckRowCount(3, 4), ErrRowCountMismatch)
}
