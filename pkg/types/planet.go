// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Composition is the bulk-density class of a planet.
type Composition string

const (
	// CompositionUnknown means density could not be computed.
	CompositionUnknown Composition = ""
	CompositionGas     Composition = "gas"
	CompositionRocky   Composition = "rocky"
	CompositionIron    Composition = "iron-dense"
)

// Habitability records whether a planet's orbit lies inside its star's
// habitable zone. Unknown is distinct from not-habitable: it means the
// comparison could not be made.
type Habitability string

const (
	HabitabilityUnknown Habitability = "unknown"
	NotHabitable        Habitability = "not-habitable"
	Habitable           Habitability = "habitable"
)

// DerivedMetrics holds the quantities computed from a canonical row.
type DerivedMetrics struct {
	DistanceLightYears         NullFloat `json:"distance_to_system_in_light_years" yaml:"distance_to_system_in_light_years"`
	DistanceLightYearsErrorMax NullFloat `json:"distance_to_system_in_light_years_error_max" yaml:"distance_to_system_in_light_years_error_max"`
	DistanceLightYearsErrorMin NullFloat `json:"distance_to_system_in_light_years_error_min" yaml:"distance_to_system_in_light_years_error_min"`

	PlanetMassKg         NullFloat   `json:"planet_mass_in_kg" yaml:"planet_mass_in_kg"`
	PlanetActualRadiusKm NullFloat   `json:"planet_actual_radius" yaml:"planet_actual_radius"`
	PlanetDensity        NullFloat   `json:"planet_density" yaml:"planet_density"`
	Composition          Composition `json:"planet_composition,omitempty" yaml:"planet_composition,omitempty"`

	StellarActualRadiusKm  NullFloat `json:"stellar_actual_radius" yaml:"stellar_actual_radius"`
	StellarLuminositySolar NullFloat `json:"stars_luminosity_relative_to_sun" yaml:"stars_luminosity_relative_to_sun"`
	HabitableZoneInnerAU   NullFloat `json:"habitability_zone_inner" yaml:"habitability_zone_inner"`
	HabitableZoneOuterAU   NullFloat `json:"habitability_zone_outer" yaml:"habitability_zone_outer"`

	Habitability Habitability `json:"is_planet_habitable" yaml:"is_planet_habitable"`

	// SurfaceGravity is in m/s^2.
	SurfaceGravity         NullFloat `json:"acceleration_due_to_gravity" yaml:"acceleration_due_to_gravity"`
	GravityRelativeToEarth NullFloat `json:"gravity_compared_to_earth" yaml:"gravity_compared_to_earth"`
}

// CanonicalPlanetRecord is the single retained representative of a planet
// after consolidation, with its derived metrics attached.
type CanonicalPlanetRecord struct {
	Observation RawObservationRow `json:"observation" yaml:"observation"`

	// MissingFields is the missing-field count used to rank this row against
	// its duplicates.
	MissingFields int `json:"missing_fields" yaml:"missing_fields"`

	// Duplicates is the number of other raw rows reported for this planet.
	Duplicates int `json:"duplicates" yaml:"duplicates"`

	// Backfilled lists the columns filled in from duplicate rows, if any.
	Backfilled []string `json:"backfilled,omitempty" yaml:"backfilled,omitempty"`

	Metrics DerivedMetrics `json:"metrics" yaml:"metrics"`
}

// Name returns the planet name, the record's unique key.
func (r *CanonicalPlanetRecord) Name() string {
	return r.Observation.PlanetName
}
