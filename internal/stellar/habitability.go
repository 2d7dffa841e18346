// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package stellar

import "github.com/pdiddy/exocatalog/pkg/types"

// Classify reports whether orbitAU lies within [inner, outer], inclusive.
// orbitAU is the catalog's widest orbital radius. If any input is missing
// the result is HabitabilityUnknown, never NotHabitable.
func Classify(zone HabitableZone, orbitAU types.NullFloat) types.Habitability {
	inner, ok := zone.InnerAU.Get()
	if !ok {
		return types.HabitabilityUnknown
	}
	outer, ok := zone.OuterAU.Get()
	if !ok {
		return types.HabitabilityUnknown
	}
	d, ok := orbitAU.Get()
	if !ok {
		return types.HabitabilityUnknown
	}
	if inner <= d && d <= outer {
		return types.Habitable
	}
	return types.NotHabitable
}
