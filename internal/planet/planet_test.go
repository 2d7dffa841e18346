// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package planet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/exocatalog/pkg/types"
)

func TestDeriveEarth(t *testing.T) {
	p := Derive(types.Some(5.972e24), types.Some(1))

	radius, ok := p.ActualRadiusKm.Get()
	require.True(t, ok)
	assert.Equal(t, 6371.0, radius)

	density, ok := p.Density.Get()
	require.True(t, ok)
	assert.InDelta(t, 5513.26, density, 0.01)
	assert.Equal(t, types.CompositionRocky, p.Composition)

	g, ok := p.SurfaceGravity.Get()
	require.True(t, ok)
	assert.InDelta(t, 9.81, g, 0.01)

	rel, ok := p.RelativeGravity.Get()
	require.True(t, ok)
	assert.InDelta(t, 1.0, rel, 0.001)
}

func TestDeriveActualRadius(t *testing.T) {
	// HD 219134 b
	p := Derive(types.Some(4.74*5.972e24), types.Some(1.602))
	radius, ok := p.ActualRadiusKm.Get()
	require.True(t, ok)
	assert.InDelta(t, 10206.342, radius, 1e-6)
}

func TestDeriveMissingInputs(t *testing.T) {
	tests := []struct {
		name   string
		mass   types.NullFloat
		radius types.NullFloat
	}{
		{"missing mass", types.None(), types.Some(1)},
		{"missing radius", types.Some(5.972e24), types.None()},
		{"both missing", types.None(), types.None()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Derive(tt.mass, tt.radius)
			assert.Equal(t, Physics{}, p)
		})
	}
}

func TestDeriveZeroRadius(t *testing.T) {
	p := Derive(types.Some(5.972e24), types.Some(0))
	assert.True(t, p.ActualRadiusKm.Valid)
	assert.False(t, p.Density.Valid)
	assert.False(t, p.SurfaceGravity.Valid)
	assert.False(t, p.RelativeGravity.Valid)
	assert.Equal(t, types.CompositionUnknown, p.Composition)
}

func TestClassify(t *testing.T) {
	tests := []struct {
		density types.NullFloat
		want    types.Composition
	}{
		{types.Some(0), types.CompositionGas},
		{types.Some(1326), types.CompositionGas},
		{types.Some(2999), types.CompositionGas},
		{types.Some(3000), types.CompositionRocky},
		{types.Some(3001), types.CompositionRocky},
		{types.Some(5514), types.CompositionRocky},
		{types.Some(7900), types.CompositionRocky},
		{types.Some(7901), types.CompositionIron},
		{types.None(), types.CompositionUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.density.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.density))
		})
	}
}
