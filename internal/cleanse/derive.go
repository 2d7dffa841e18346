// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package cleanse

import (
	"github.com/pdiddy/exocatalog/internal/planet"
	"github.com/pdiddy/exocatalog/internal/stellar"
	"github.com/pdiddy/exocatalog/internal/units"
	"github.com/pdiddy/exocatalog/pkg/types"
)

// Derive computes the derived metrics for one row. The chain runs in
// dependency order: unit conversion, stellar radius, luminosity and
// habitable zone, habitability flag, planet mass, then density,
// composition, and gravity.
func Derive(row types.RawObservationRow) types.DerivedMetrics {
	var m types.DerivedMetrics

	m.DistanceLightYears = units.Distance(row.Distance)
	m.DistanceLightYearsErrorMax = units.Distance(row.DistanceErrMax)
	m.DistanceLightYearsErrorMin = units.Distance(row.DistanceErrMin)

	m.StellarActualRadiusKm = units.StellarRadius(row.StellarRadius)
	zone := stellar.Luminosity(m.StellarActualRadiusKm, row.StellarTeff)
	m.StellarLuminositySolar = zone.Luminosity
	m.HabitableZoneInnerAU = zone.InnerAU
	m.HabitableZoneOuterAU = zone.OuterAU
	m.Habitability = stellar.Classify(zone, row.SemiMajorAxis)

	m.PlanetMassKg = units.PlanetMass(row.MassEarth)
	phys := planet.Derive(m.PlanetMassKg, row.RadiusEarth)
	m.PlanetActualRadiusKm = phys.ActualRadiusKm
	m.PlanetDensity = phys.Density
	m.Composition = phys.Composition
	m.SurfaceGravity = phys.SurfaceGravity
	m.GravityRelativeToEarth = phys.RelativeGravity

	return m
}
