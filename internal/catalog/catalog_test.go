// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/exocatalog/pkg/types"
)

const sampleExport = `# This file was produced by the NASA Exoplanet Archive
# COLUMN pl_name:        Planet Name
#
pl_name,hostname,sy_dist
"Proxima Cen b",Proxima Cen,1.30119
HD 219134 b,HD 219134,
`

func TestReadSkipsCommentHeader(t *testing.T) {
	table, err := Read(strings.NewReader(sampleExport))
	require.NoError(t, err)

	assert.Equal(t, []string{"pl_name", "hostname", "sy_dist"}, table.Header)
	require.Equal(t, 2, table.Len())
	assert.Equal(t, []string{"Proxima Cen b", "Proxima Cen", "1.30119"}, table.Rows[0])
	assert.Equal(t, "", table.Rows[1][2])
}

func TestReadStripsByteOrderMark(t *testing.T) {
	table, err := Read(strings.NewReader("\ufeffpl_name,hostname\na,b\n"))
	require.NoError(t, err)
	assert.Equal(t, "pl_name", table.Header[0])
}

func TestReadNoTrailingNewline(t *testing.T) {
	table, err := Read(strings.NewReader("pl_name\nx"))
	require.NoError(t, err)
	assert.Equal(t, 1, table.Len())
}

func TestReadEmpty(t *testing.T) {
	_, err := Read(strings.NewReader("# only comments\n\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no header row")
}

func TestReadRaggedRow(t *testing.T) {
	_, err := Read(strings.NewReader("a,b\n1,2\n3\n"))
	require.Error(t, err)
}

func TestReadFileMissing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "nope.csv"))
	require.Error(t, err)
}

func sampleRecord() types.CanonicalPlanetRecord {
	return types.CanonicalPlanetRecord{
		Observation: types.RawObservationRow{
			PlanetName:    "Proxima Cen b",
			HostName:      "Proxima Cen",
			DiscoveryYear: types.SomeInt(2016),
			Distance:      types.Some(1.30119),
		},
		Metrics: types.DerivedMetrics{
			DistanceLightYears: types.Some(4.2439),
			Composition:        types.CompositionRocky,
			Habitability:       types.HabitabilityUnknown,
		},
	}
}

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, []types.CanonicalPlanetRecord{sampleRecord()}))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)

	header := rows[0]
	assert.Len(t, header, len(types.Columns)+len(types.MetricColumns))
	assert.Equal(t, "name_of_planet", header[0])

	cell := func(name string) string {
		for i, h := range header {
			if h == name {
				return rows[1][i]
			}
		}
		t.Fatalf("column %s not in header", name)
		return ""
	}
	assert.Equal(t, "Proxima Cen b", cell("name_of_planet"))
	assert.Equal(t, "2016", cell("disc_year"))
	assert.Equal(t, "1.30119", cell("distance_to_system_in_parsecs"))
	assert.Equal(t, "4.2439", cell("distance_to_system_in_light_years"))
	assert.Equal(t, "rocky", cell("planet_composition"))
	assert.Equal(t, "unknown", cell("is_planet_habitable"))
	assert.Equal(t, "", cell("planet_mass_in_kg"))
	assert.Equal(t, "", cell("stellar_radius"))
}

func TestWriteFileReplacesAtomically(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "cleaned.csv")
	require.NoError(t, WriteFile(path, []types.CanonicalPlanetRecord{sampleRecord()}))
	require.NoError(t, WriteFile(path, nil))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(string(data), "\n"))

	_, err = os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err))
}
