// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report summarises a cleansed planet catalog: how many planets
// fall in each habitability and composition class, and how planets are
// distributed across their host stars.
package report

import (
	"fmt"
	"io"
	"maps"
	"slices"

	"github.com/pdiddy/exocatalog/pkg/types"
)

// Bin is one row of a planets-per-host frequency table: Hosts host stars
// each have exactly Planets planets.
type Bin struct {
	Planets int `json:"planets" yaml:"planets"`
	Hosts   int `json:"hosts" yaml:"hosts"`
}

// Summary holds catalog-wide counts.
type Summary struct {
	Planets      int                        `json:"planets" yaml:"planets"`
	Hosts        int                        `json:"hosts" yaml:"hosts"`
	Habitability map[types.Habitability]int `json:"habitability" yaml:"habitability"`
	Composition  map[types.Composition]int  `json:"composition" yaml:"composition"`

	// PlanetsPerHost counts host stars by number of planets.
	PlanetsPerHost []Bin `json:"planets_per_host" yaml:"planets_per_host"`

	// HabitablePerHost counts host stars with at least one habitable
	// planet by number of habitable planets.
	HabitablePerHost []Bin `json:"habitable_per_host" yaml:"habitable_per_host"`
}

// Summarize computes a Summary over records.
func Summarize(records []types.CanonicalPlanetRecord) Summary {
	s := Summary{
		Planets:      len(records),
		Habitability: make(map[types.Habitability]int),
		Composition:  make(map[types.Composition]int),
	}

	perHost := make(map[string]int)
	habitablePerHost := make(map[string]int)
	for i := range records {
		rec := &records[i]
		s.Habitability[rec.Metrics.Habitability]++
		s.Composition[rec.Metrics.Composition]++

		host := rec.Observation.HostName
		perHost[host]++
		if rec.Metrics.Habitability == types.Habitable {
			habitablePerHost[host]++
		}
	}

	s.Hosts = len(perHost)
	s.PlanetsPerHost = histogram(perHost)
	s.HabitablePerHost = histogram(habitablePerHost)
	return s
}

// histogram turns per-host counts into bins ordered by planet count.
func histogram(perHost map[string]int) []Bin {
	freq := make(map[int]int)
	for _, n := range perHost {
		freq[n]++
	}
	bins := make([]Bin, 0, len(freq))
	for _, n := range slices.Sorted(maps.Keys(freq)) {
		bins = append(bins, Bin{Planets: n, Hosts: freq[n]})
	}
	return bins
}

// Write prints the summary as plain text.
func (s Summary) Write(w io.Writer) error {
	ew := &errWriter{w: w}

	ew.printf("Planets: %d\n", s.Planets)
	ew.printf("Host stars: %d\n", s.Hosts)

	ew.printf("\nHabitability:\n")
	for _, h := range []types.Habitability{types.Habitable, types.NotHabitable, types.HabitabilityUnknown} {
		ew.printf("  %-14s %d\n", h, s.Habitability[h])
	}

	ew.printf("\nComposition:\n")
	for _, c := range []types.Composition{types.CompositionGas, types.CompositionRocky, types.CompositionIron, types.CompositionUnknown} {
		label := string(c)
		if c == types.CompositionUnknown {
			label = "unknown"
		}
		ew.printf("  %-14s %d\n", label, s.Composition[c])
	}

	writeBins(ew, "Planets per host star", s.PlanetsPerHost)
	writeBins(ew, "Habitable planets per host star", s.HabitablePerHost)
	return ew.err
}

func writeBins(ew *errWriter, title string, bins []Bin) {
	ew.printf("\n%s:\n", title)
	if len(bins) == 0 {
		ew.printf("  (none)\n")
		return
	}
	for _, b := range bins {
		ew.printf("  %3d planet(s): %d host(s)\n", b.Planets, b.Hosts)
	}
}

// errWriter keeps the first write error so the caller checks once.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...any) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}
