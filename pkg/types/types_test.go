// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"
)

func TestSomeRejectsNonFinite(t *testing.T) {
	for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		assert.False(t, Some(v).Valid, "%v", v)
	}
	assert.True(t, Some(0).Valid)
}

func TestNullFloatMapPropagatesMissing(t *testing.T) {
	double := func(v float64) float64 { return v * 2 }

	assert.Equal(t, Some(3), Some(1.5).Map(double))
	assert.Equal(t, None(), None().Map(double))
	assert.Equal(t, None(), Some(math.MaxFloat64).Map(double), "overflow becomes missing")
}

func TestNullFloatString(t *testing.T) {
	assert.Equal(t, "", None().String())
	assert.Equal(t, "0.1", Some(0.1).String())
	assert.Equal(t, "5.972e+24", Some(5.972e24).String())
}

func TestNullFloatEncoding(t *testing.T) {
	type doc struct {
		A NullFloat `json:"a" yaml:"a"`
		B NullFloat `json:"b" yaml:"b"`
		C NullInt   `json:"c" yaml:"c"`
	}
	in := doc{A: Some(1.25), C: SomeInt(2016)}

	data, err := json.Marshal(in)
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":1.25,"b":null,"c":2016}`, string(data))

	var fromJSON doc
	require.NoError(t, json.Unmarshal(data, &fromJSON))
	assert.Equal(t, in, fromJSON)

	y, err := yaml.Marshal(in)
	require.NoError(t, err)
	assert.Equal(t, "a: 1.25\nb: null\nc: 2016\n", string(y))

	var fromYAML doc
	require.NoError(t, yaml.Unmarshal(y, &fromYAML))
	assert.Equal(t, in, fromYAML)
}

func TestColumnsAreUnique(t *testing.T) {
	require.Len(t, Columns, 30)
	seenCatalog := make(map[string]bool)
	seenName := make(map[string]bool)
	for _, c := range Columns {
		assert.False(t, seenCatalog[c.Catalog], "duplicate catalog column %s", c.Catalog)
		assert.False(t, seenName[c.Name], "duplicate column %s", c.Name)
		seenCatalog[c.Catalog] = true
		seenName[c.Name] = true
	}
	for _, m := range MetricColumns {
		assert.False(t, seenName[m.Name], "metric column %s shadows an input column", m.Name)
	}
}

func TestColumnParse(t *testing.T) {
	year, ok := ColumnByName("disc_year")
	require.True(t, ok)
	dist, ok := ColumnByName("distance_to_system_in_parsecs")
	require.True(t, ok)
	host, ok := ColumnByName("name_of_host_star")
	require.True(t, ok)

	tests := []struct {
		name    string
		col     Column
		cell    string
		want    string
		wantErr string
	}{
		{"integer", year, "2014", "2014", ""},
		{"integer written as float", year, "2014.0", "2014", ""},
		{"fractional integer", year, "2014.5", "", `column disc_year: parsing "2014.5" as integer`},
		{"float", dist, " 1.30119 ", "1.30119", ""},
		{"blank float", dist, "  ", "", ""},
		{"bad float", dist, "far", "", `column sy_dist: parsing "far" as number`},
		{"text trimmed", host, " Kepler-22 ", "Kepler-22", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var r RawObservationRow
			err := tt.col.Parse(&r, tt.cell)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, tt.col.Format(&r))
		})
	}
}

func TestMissingFields(t *testing.T) {
	var r RawObservationRow
	assert.Equal(t, len(Columns), MissingFields(&r))

	r.PlanetName = "Kepler-22 b"
	r.HostName = "   "
	r.Distance = Some(0)
	r.DiscoveryYear = SomeInt(2011)
	assert.Equal(t, len(Columns)-3, MissingFields(&r), "blank text is missing, zero is present")
}

func TestCopyFrom(t *testing.T) {
	src := RawObservationRow{StellarTeff: Some(5518), SolutionType: "Published Confirmed"}
	var dst RawObservationRow
	for _, name := range []string{"stellar_effective_temperature_black_body_radiation", "solution_type"} {
		c, ok := ColumnByName(name)
		require.True(t, ok)
		c.CopyFrom(&dst, &src)
	}
	assert.Equal(t, src, dst)
}
