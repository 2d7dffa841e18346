// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package units converts catalog-relative units into physical units.
// Every function is pure; missing inputs give missing outputs.
package units

import "github.com/pdiddy/exocatalog/pkg/types"

const (
	// LightYearsPerParsec is one parsec in light years, to 13 s.f.
	LightYearsPerParsec = 3.261563776976

	// SolarRadiusKm is the mean radius of the Sun in km.
	SolarRadiusKm = 695700.0

	// EarthMassKg is the mass of the Earth in kg.
	EarthMassKg = 5.972e24

	// EarthRadiusKm is the mean volumetric radius of the Earth in km.
	EarthRadiusKm = 6371.0
)

func ParsecsToLightYears(pc float64) float64 { return pc * LightYearsPerParsec }

func SolarRadiiToKm(r float64) float64 { return r * SolarRadiusKm }

func EarthMassesToKg(m float64) float64 { return m * EarthMassKg }

func EarthRadiiToKm(r float64) float64 { return r * EarthRadiusKm }

// Distance converts a distance in parsecs to light years.
func Distance(pc types.NullFloat) types.NullFloat { return pc.Map(ParsecsToLightYears) }

// StellarRadius converts a radius in solar radii to km.
func StellarRadius(r types.NullFloat) types.NullFloat { return r.Map(SolarRadiiToKm) }

// PlanetMass converts a mass in Earth masses to kg.
func PlanetMass(m types.NullFloat) types.NullFloat { return m.Map(EarthMassesToKg) }

// PlanetRadius converts a radius in Earth radii to km.
func PlanetRadius(r types.NullFloat) types.NullFloat { return r.Map(EarthRadiiToKm) }
