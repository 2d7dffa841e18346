// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package stellar derives a host star's luminosity and habitable zone and
// classifies whether a planet orbits inside that zone.
package stellar

import (
	"math"

	"github.com/pdiddy/exocatalog/pkg/types"
)

const (
	// StefanBoltzmann is the Stefan-Boltzmann constant in W m^-2 K^-4.
	StefanBoltzmann = 5.67e-8

	// SolarLuminosityW is the Sun's luminosity in watts.
	SolarLuminosityW = 3.850753858550298e26

	// InnerFlux and OuterFlux are the relative stellar fluxes bounding
	// liquid-water conditions.
	InnerFlux = 1.1
	OuterFlux = 0.53
)

// HabitableZone is a star's luminosity and the orbital band, in AU, where
// liquid water could persist.
type HabitableZone struct {
	// Luminosity is relative to the Sun.
	Luminosity types.NullFloat
	InnerAU    types.NullFloat
	OuterAU    types.NullFloat
}

// Luminosity computes relative luminosity from the Stefan-Boltzmann law and
// the habitable-zone bounds from a simple inverse-square flux model.
// radiusKm is the stellar radius in km, teffK the effective temperature.
// Any missing input, or a luminosity that is not a finite non-negative
// number, leaves every output missing.
func Luminosity(radiusKm, teffK types.NullFloat) HabitableZone {
	r, ok := radiusKm.Get()
	if !ok {
		return HabitableZone{}
	}
	t, ok := teffK.Get()
	if !ok {
		return HabitableZone{}
	}

	// km^2 to m^2.
	area := 4 * math.Pi * r * r * 1e6
	watts := StefanBoltzmann * area * math.Pow(t, 4)
	rel := watts / SolarLuminosityW
	if math.IsNaN(rel) || math.IsInf(rel, 0) || rel < 0 {
		return HabitableZone{}
	}

	return HabitableZone{
		Luminosity: types.Some(rel),
		InnerAU:    types.Some(math.Sqrt(rel / InnerFlux)),
		OuterAU:    types.Some(math.Sqrt(rel / OuterFlux)),
	}
}
