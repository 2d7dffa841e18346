// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package planet derives bulk physical properties of a planet from its
// mass and its radius relative to Earth.
package planet

import (
	"math"

	"github.com/pdiddy/exocatalog/internal/units"
	"github.com/pdiddy/exocatalog/pkg/types"
)

const (
	// GravitationalConstant is G in m^3 kg^-1 s^-2.
	GravitationalConstant = 6.67e-11

	// EarthGravity is standard surface gravity in m/s^2.
	EarthGravity = 9.807

	// GasDensityLimit and IronDensityLimit bound the rocky band in kg/m^3.
	GasDensityLimit  = 3000.0
	IronDensityLimit = 7900.0
)

// Physics holds the derived planetary quantities.
type Physics struct {
	ActualRadiusKm types.NullFloat

	// Density is in kg/m^3.
	Density     types.NullFloat
	Composition types.Composition

	// SurfaceGravity is in m/s^2.
	SurfaceGravity  types.NullFloat
	RelativeGravity types.NullFloat
}

// Derive computes actual radius, density, composition, and surface gravity.
// massKg is the planet mass in kg; radiusEarth its radius in Earth radii.
// Every output is missing when either input is. A non-positive radius
// leaves density, composition, and gravity missing.
func Derive(massKg, radiusEarth types.NullFloat) Physics {
	var p Physics
	p.ActualRadiusKm = units.PlanetRadius(radiusEarth)

	m, ok := massKg.Get()
	if !ok {
		return Physics{}
	}
	re, ok := radiusEarth.Get()
	if !ok {
		return Physics{}
	}
	if re <= 0 {
		return p
	}

	radiusM := re * units.EarthRadiusKm * 1000
	volume := 4.0 / 3.0 * math.Pi * math.Pow(radiusM, 3)
	p.Density = types.Some(m / volume)
	p.Composition = Classify(p.Density)

	g := GravitationalConstant * m / (radiusM * radiusM)
	p.SurfaceGravity = types.Some(g)
	p.RelativeGravity = types.Some(g / EarthGravity)
	return p
}

// Classify maps bulk density to a composition class. Densities below 3000
// are gas, above 7900 iron-dense, and the closed band [3000, 7900] rocky.
func Classify(density types.NullFloat) types.Composition {
	d, ok := density.Get()
	switch {
	case !ok:
		return types.CompositionUnknown
	case d < GasDensityLimit:
		return types.CompositionGas
	case d > IronDensityLimit:
		return types.CompositionIron
	default:
		return types.CompositionRocky
	}
}
