// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package units

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pdiddy/exocatalog/pkg/types"
)

func TestConversions(t *testing.T) {
	tests := []struct {
		name string
		fn   func(float64) float64
		in   float64
		want float64
	}{
		{"parsec to light years", ParsecsToLightYears, 1, 3.261563776976},
		{"solar radii to km", SolarRadiiToKm, 1, 695700},
		{"earth masses to kg", EarthMassesToKg, 1, 5.972e24},
		{"earth radii to km", EarthRadiiToKm, 1, 6371},
		{"zero stays zero", EarthRadiiToKm, 0, 0},
		{"negative passes through", ParsecsToLightYears, -2, -6.523127553952},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, tt.fn(tt.in), 1e-9*max(1, abs(tt.want)))
		})
	}
}

func TestExactReferenceValues(t *testing.T) {
	assert.Equal(t, 5.972e24, EarthMassesToKg(1.0))
	assert.Equal(t, 695700.0, SolarRadiiToKm(1.0))
}

func TestMissingPropagates(t *testing.T) {
	for name, fn := range map[string]func(types.NullFloat) types.NullFloat{
		"distance":       Distance,
		"stellar radius": StellarRadius,
		"planet mass":    PlanetMass,
		"planet radius":  PlanetRadius,
	} {
		t.Run(name, func(t *testing.T) {
			assert.False(t, fn(types.None()).Valid)
		})
	}
}

func TestNullableConversion(t *testing.T) {
	got := Distance(types.Some(10))
	v, ok := got.Get()
	assert.True(t, ok)
	assert.InDelta(t, 32.61563776976, v, 1e-9)
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
