// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"fmt"
	"strconv"
	"strings"
)

// ColumnKind is the value type held by a catalog column.
type ColumnKind int

const (
	KindText ColumnKind = iota
	KindInt
	KindFloat
)

// Column describes one projected catalog column: its name in the source
// catalog, its self-describing output name, and how to reach the field on a
// RawObservationRow.
type Column struct {
	// Catalog is the archive column name (e.g. "pl_name").
	Catalog string

	// Name is the renamed, self-describing column (e.g. "name_of_planet").
	Name string

	Kind ColumnKind

	text    func(*RawObservationRow) *string
	integer func(*RawObservationRow) *NullInt
	float   func(*RawObservationRow) *NullFloat
}

func textColumn(catalog, name string, f func(*RawObservationRow) *string) Column {
	return Column{Catalog: catalog, Name: name, Kind: KindText, text: f}
}

func intColumn(catalog, name string, f func(*RawObservationRow) *NullInt) Column {
	return Column{Catalog: catalog, Name: name, Kind: KindInt, integer: f}
}

func floatColumn(catalog, name string, f func(*RawObservationRow) *NullFloat) Column {
	return Column{Catalog: catalog, Name: name, Kind: KindFloat, float: f}
}

// Columns is the projected column set, in catalog order. It is the single
// source of truth for projection, renaming, missing-field counting, and
// output layout.
var Columns = []Column{
	textColumn("pl_name", "name_of_planet", func(r *RawObservationRow) *string { return &r.PlanetName }),
	textColumn("hostname", "name_of_host_star", func(r *RawObservationRow) *string { return &r.HostName }),
	textColumn("discoverymethod", "discoverymethod", func(r *RawObservationRow) *string { return &r.DiscoveryMethod }),
	intColumn("disc_year", "disc_year", func(r *RawObservationRow) *NullInt { return &r.DiscoveryYear }),
	textColumn("soltype", "solution_type", func(r *RawObservationRow) *string { return &r.SolutionType }),
	floatColumn("pl_orbper", "orbital_period", func(r *RawObservationRow) *NullFloat { return &r.OrbitalPeriod }),
	floatColumn("pl_orbpererr1", "orbital_period_error_max", func(r *RawObservationRow) *NullFloat { return &r.OrbitalPeriodErrMax }),
	floatColumn("pl_orbpererr2", "orbital_period_error_min", func(r *RawObservationRow) *NullFloat { return &r.OrbitalPeriodErrMin }),
	floatColumn("pl_orbsmax", "orbital_period_widest_radius_in_AU", func(r *RawObservationRow) *NullFloat { return &r.SemiMajorAxis }),
	floatColumn("pl_orbsmaxerr1", "orbital_period_widest_radius_in_AU_error_max", func(r *RawObservationRow) *NullFloat { return &r.SemiMajorAxisErrMax }),
	floatColumn("pl_orbsmaxerr2", "orbital_period_widest_radius_in_AU_error_min", func(r *RawObservationRow) *NullFloat { return &r.SemiMajorAxisErrMin }),
	floatColumn("pl_rade", "planet_radius_compared_to_earth", func(r *RawObservationRow) *NullFloat { return &r.RadiusEarth }),
	floatColumn("pl_radj", "planet_radius_compared_to_jupiter", func(r *RawObservationRow) *NullFloat { return &r.RadiusJupiter }),
	floatColumn("pl_bmasse", "planet_mass_compared_to_earth", func(r *RawObservationRow) *NullFloat { return &r.MassEarth }),
	floatColumn("pl_bmassj", "planet_mass_compared_to_jupiter", func(r *RawObservationRow) *NullFloat { return &r.MassJupiter }),
	floatColumn("pl_eqt", "equilibrium_temperature_K", func(r *RawObservationRow) *NullFloat { return &r.EquilibriumTemp }),
	floatColumn("pl_eqterr1", "equilibrium_temperature_K_error_max", func(r *RawObservationRow) *NullFloat { return &r.EquilibriumTempErrMax }),
	floatColumn("pl_eqterr2", "equilibrium_temperature_K_error_min", func(r *RawObservationRow) *NullFloat { return &r.EquilibriumTempErrMin }),
	floatColumn("st_teff", "stellar_effective_temperature_black_body_radiation", func(r *RawObservationRow) *NullFloat { return &r.StellarTeff }),
	floatColumn("st_tefferr1", "stellar_effective_temperature_black_body_radiation_error_max", func(r *RawObservationRow) *NullFloat { return &r.StellarTeffErrMax }),
	floatColumn("st_tefferr2", "stellar_effective_temperature_black_body_radiation_error_min", func(r *RawObservationRow) *NullFloat { return &r.StellarTeffErrMin }),
	floatColumn("st_rad", "stellar_radius", func(r *RawObservationRow) *NullFloat { return &r.StellarRadius }),
	floatColumn("st_raderr1", "stellar_radius_error_max", func(r *RawObservationRow) *NullFloat { return &r.StellarRadiusErrMax }),
	floatColumn("st_raderr2", "stellar_radius_error_min", func(r *RawObservationRow) *NullFloat { return &r.StellarRadiusErrMin }),
	floatColumn("st_mass", "mass_of_star_compared_to_sol", func(r *RawObservationRow) *NullFloat { return &r.StellarMass }),
	floatColumn("st_masserr1", "mass_of_star_compared_to_sol_error_max", func(r *RawObservationRow) *NullFloat { return &r.StellarMassErrMax }),
	floatColumn("st_masserr2", "mass_of_star_compared_to_sol_error_min", func(r *RawObservationRow) *NullFloat { return &r.StellarMassErrMin }),
	floatColumn("sy_dist", "distance_to_system_in_parsecs", func(r *RawObservationRow) *NullFloat { return &r.Distance }),
	floatColumn("sy_disterr1", "distance_to_system_in_parsecs_error_max", func(r *RawObservationRow) *NullFloat { return &r.DistanceErrMax }),
	floatColumn("sy_disterr2", "distance_to_system_in_parsecs_error_min", func(r *RawObservationRow) *NullFloat { return &r.DistanceErrMin }),
}

// ColumnByName returns the column with the given renamed name.
func ColumnByName(name string) (Column, bool) {
	for _, c := range Columns {
		if c.Name == name {
			return c, true
		}
	}
	return Column{}, false
}

// Missing reports whether the column has no value on r. Text columns are
// missing when blank.
func (c Column) Missing(r *RawObservationRow) bool {
	switch c.Kind {
	case KindText:
		return strings.TrimSpace(*c.text(r)) == ""
	case KindInt:
		return !c.integer(r).Valid
	default:
		return !c.float(r).Valid
	}
}

// Format renders the column value on r as a table cell. Missing values
// render as "".
func (c Column) Format(r *RawObservationRow) string {
	switch c.Kind {
	case KindText:
		return *c.text(r)
	case KindInt:
		return c.integer(r).String()
	default:
		return c.float(r).String()
	}
}

// Parse sets the column on r from a table cell. Blank cells leave the value
// missing.
func (c Column) Parse(r *RawObservationRow, cell string) error {
	cell = strings.TrimSpace(cell)
	if c.Kind == KindText {
		*c.text(r) = cell
		return nil
	}
	if cell == "" {
		return nil
	}
	switch c.Kind {
	case KindInt:
		v, err := strconv.ParseInt(cell, 10, 64)
		if err != nil {
			// Some exports write whole years as "2014.0".
			f, ferr := strconv.ParseFloat(cell, 64)
			if ferr != nil || f != float64(int64(f)) {
				return fmt.Errorf("column %s: parsing %q as integer: %w", c.Catalog, cell, err)
			}
			v = int64(f)
		}
		*c.integer(r) = SomeInt(v)
	default:
		v, err := strconv.ParseFloat(cell, 64)
		if err != nil {
			return fmt.Errorf("column %s: parsing %q as number: %w", c.Catalog, cell, err)
		}
		*c.float(r) = Some(v)
	}
	return nil
}

// CopyFrom copies the column value from src to dst.
func (c Column) CopyFrom(dst, src *RawObservationRow) {
	switch c.Kind {
	case KindText:
		*c.text(dst) = *c.text(src)
	case KindInt:
		*c.integer(dst) = *c.integer(src)
	default:
		*c.float(dst) = *c.float(src)
	}
}

// MissingFields counts the projected columns that have no value on r.
func MissingFields(r *RawObservationRow) int {
	n := 0
	for _, c := range Columns {
		if c.Missing(r) {
			n++
		}
	}
	return n
}

// SQLValue returns the column value on r for use as a query argument.
// Missing numbers become NULL; text is stored as-is.
func (c Column) SQLValue(r *RawObservationRow) any {
	switch c.Kind {
	case KindText:
		return *c.text(r)
	case KindInt:
		return *c.integer(r)
	default:
		return *c.float(r)
	}
}

// ScanTarget returns a pointer to the column's field on r for sql.Rows.Scan.
func (c Column) ScanTarget(r *RawObservationRow) any {
	switch c.Kind {
	case KindText:
		return c.text(r)
	case KindInt:
		return c.integer(r)
	default:
		return c.float(r)
	}
}

// MetricColumn describes one derived output column.
type MetricColumn struct {
	Name  string
	field func(*DerivedMetrics) any
}

// MetricColumns lists the derived columns in output order.
var MetricColumns = []MetricColumn{
	{"distance_to_system_in_light_years", func(m *DerivedMetrics) any { return &m.DistanceLightYears }},
	{"distance_to_system_in_light_years_error_max", func(m *DerivedMetrics) any { return &m.DistanceLightYearsErrorMax }},
	{"distance_to_system_in_light_years_error_min", func(m *DerivedMetrics) any { return &m.DistanceLightYearsErrorMin }},
	{"planet_mass_in_kg", func(m *DerivedMetrics) any { return &m.PlanetMassKg }},
	{"planet_actual_radius", func(m *DerivedMetrics) any { return &m.PlanetActualRadiusKm }},
	{"planet_density", func(m *DerivedMetrics) any { return &m.PlanetDensity }},
	{"planet_composition", func(m *DerivedMetrics) any { return &m.Composition }},
	{"stellar_actual_radius", func(m *DerivedMetrics) any { return &m.StellarActualRadiusKm }},
	{"stars_luminosity_relative_to_sun", func(m *DerivedMetrics) any { return &m.StellarLuminositySolar }},
	{"habitability_zone_inner", func(m *DerivedMetrics) any { return &m.HabitableZoneInnerAU }},
	{"habitability_zone_outer", func(m *DerivedMetrics) any { return &m.HabitableZoneOuterAU }},
	{"is_planet_habitable", func(m *DerivedMetrics) any { return &m.Habitability }},
	{"acceleration_due_to_gravity", func(m *DerivedMetrics) any { return &m.SurfaceGravity }},
	{"gravity_compared_to_earth", func(m *DerivedMetrics) any { return &m.GravityRelativeToEarth }},
}

// Format renders the metric on m as a table cell.
func (c MetricColumn) Format(m *DerivedMetrics) string {
	switch v := c.field(m).(type) {
	case *NullFloat:
		return v.String()
	case *Composition:
		return string(*v)
	case *Habitability:
		return string(*v)
	}
	return ""
}

// SQLValue returns the metric on m for use as a query argument.
func (c MetricColumn) SQLValue(m *DerivedMetrics) any {
	switch v := c.field(m).(type) {
	case *NullFloat:
		return *v
	case *Composition:
		return string(*v)
	case *Habitability:
		return string(*v)
	}
	return nil
}

// ScanTarget returns a pointer to the metric's field on m.
func (c MetricColumn) ScanTarget(m *DerivedMetrics) any {
	return c.field(m)
}
