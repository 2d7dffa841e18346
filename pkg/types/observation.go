// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// RawObservationRow is one catalog entry: a single reported measurement set
// for a planet. Several rows may describe the same planet; PlanetName is the
// identity key. Rows are never modified once read.
type RawObservationRow struct {
	// Index is the zero-based position of the row in the input. It is the
	// final tie-breaker when ranking duplicates.
	Index int `json:"-" yaml:"-"`

	PlanetName      string  `json:"name_of_planet" yaml:"name_of_planet"`
	HostName        string  `json:"name_of_host_star" yaml:"name_of_host_star"`
	DiscoveryMethod string  `json:"discoverymethod" yaml:"discoverymethod"`
	DiscoveryYear   NullInt `json:"disc_year" yaml:"disc_year"`
	SolutionType    string  `json:"solution_type" yaml:"solution_type"`

	// OrbitalPeriod is in days.
	OrbitalPeriod       NullFloat `json:"orbital_period" yaml:"orbital_period"`
	OrbitalPeriodErrMax NullFloat `json:"orbital_period_error_max" yaml:"orbital_period_error_max"`
	OrbitalPeriodErrMin NullFloat `json:"orbital_period_error_min" yaml:"orbital_period_error_min"`

	// SemiMajorAxis is the widest orbital radius in AU.
	SemiMajorAxis       NullFloat `json:"orbital_period_widest_radius_in_AU" yaml:"orbital_period_widest_radius_in_AU"`
	SemiMajorAxisErrMax NullFloat `json:"orbital_period_widest_radius_in_AU_error_max" yaml:"orbital_period_widest_radius_in_AU_error_max"`
	SemiMajorAxisErrMin NullFloat `json:"orbital_period_widest_radius_in_AU_error_min" yaml:"orbital_period_widest_radius_in_AU_error_min"`

	RadiusEarth   NullFloat `json:"planet_radius_compared_to_earth" yaml:"planet_radius_compared_to_earth"`
	RadiusJupiter NullFloat `json:"planet_radius_compared_to_jupiter" yaml:"planet_radius_compared_to_jupiter"`
	MassEarth     NullFloat `json:"planet_mass_compared_to_earth" yaml:"planet_mass_compared_to_earth"`
	MassJupiter   NullFloat `json:"planet_mass_compared_to_jupiter" yaml:"planet_mass_compared_to_jupiter"`

	// EquilibriumTemp is in Kelvin.
	EquilibriumTemp       NullFloat `json:"equilibrium_temperature_K" yaml:"equilibrium_temperature_K"`
	EquilibriumTempErrMax NullFloat `json:"equilibrium_temperature_K_error_max" yaml:"equilibrium_temperature_K_error_max"`
	EquilibriumTempErrMin NullFloat `json:"equilibrium_temperature_K_error_min" yaml:"equilibrium_temperature_K_error_min"`

	// StellarTeff is the stellar effective temperature in Kelvin.
	StellarTeff       NullFloat `json:"stellar_effective_temperature_black_body_radiation" yaml:"stellar_effective_temperature_black_body_radiation"`
	StellarTeffErrMax NullFloat `json:"stellar_effective_temperature_black_body_radiation_error_max" yaml:"stellar_effective_temperature_black_body_radiation_error_max"`
	StellarTeffErrMin NullFloat `json:"stellar_effective_temperature_black_body_radiation_error_min" yaml:"stellar_effective_temperature_black_body_radiation_error_min"`

	// StellarRadius is in solar radii.
	StellarRadius       NullFloat `json:"stellar_radius" yaml:"stellar_radius"`
	StellarRadiusErrMax NullFloat `json:"stellar_radius_error_max" yaml:"stellar_radius_error_max"`
	StellarRadiusErrMin NullFloat `json:"stellar_radius_error_min" yaml:"stellar_radius_error_min"`

	// StellarMass is in solar masses.
	StellarMass       NullFloat `json:"mass_of_star_compared_to_sol" yaml:"mass_of_star_compared_to_sol"`
	StellarMassErrMax NullFloat `json:"mass_of_star_compared_to_sol_error_max" yaml:"mass_of_star_compared_to_sol_error_max"`
	StellarMassErrMin NullFloat `json:"mass_of_star_compared_to_sol_error_min" yaml:"mass_of_star_compared_to_sol_error_min"`

	// Distance is the distance to the system in parsecs, as catalogued.
	Distance       NullFloat `json:"distance_to_system_in_parsecs" yaml:"distance_to_system_in_parsecs"`
	DistanceErrMax NullFloat `json:"distance_to_system_in_parsecs_error_max" yaml:"distance_to_system_in_parsecs_error_max"`
	DistanceErrMin NullFloat `json:"distance_to_system_in_parsecs_error_min" yaml:"distance_to_system_in_parsecs_error_min"`
}
