// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package consolidate reduces overlapping catalog rows to one canonical row
// per planet. Rows are ranked nearest-first, then most-complete-first, and
// the first row seen for each planet name is kept.
package consolidate

import (
	"cmp"
	"slices"

	"github.com/pdiddy/exocatalog/pkg/types"
)

// Candidate is a raw row together with its ranking signal.
type Candidate struct {
	Row types.RawObservationRow

	// MissingFields counts the projected columns absent from Row.
	MissingFields int
}

// Group is the set of rows reported for one planet. Canonical is the
// best-ranked row; Siblings holds the rest in rank order.
type Group struct {
	Canonical Candidate
	Siblings  []Candidate
}

// Name returns the planet name shared by the group.
func (g Group) Name() string {
	return g.Canonical.Row.PlanetName
}

// Rank pairs every row with its missing-field count and sorts the result by
// distance ascending, then missing-field count ascending, then input index.
// Rows without a distance sort after every row that has one. The input is
// not modified.
func Rank(rows []types.RawObservationRow) []Candidate {
	ranked := make([]Candidate, len(rows))
	for i := range rows {
		ranked[i] = Candidate{
			Row:           rows[i],
			MissingFields: types.MissingFields(&rows[i]),
		}
	}
	slices.SortStableFunc(ranked, compareCandidates)
	return ranked
}

func compareCandidates(a, b Candidate) int {
	if c := compareDistance(a.Row.Distance, b.Row.Distance); c != 0 {
		return c
	}
	if c := cmp.Compare(a.MissingFields, b.MissingFields); c != 0 {
		return c
	}
	return cmp.Compare(a.Row.Index, b.Row.Index)
}

// compareDistance orders known distances ascending and puts missing
// distances last, as if they were +Inf.
func compareDistance(a, b types.NullFloat) int {
	switch {
	case a.Valid && b.Valid:
		return cmp.Compare(a.Float64, b.Float64)
	case a.Valid:
		return -1
	case b.Valid:
		return 1
	default:
		return 0
	}
}

// Consolidate ranks rows and groups them by planet name. Groups are
// returned in the rank order of their canonical rows, so planet names are
// unique in the result.
func Consolidate(rows []types.RawObservationRow) []Group {
	ranked := Rank(rows)

	seen := make(map[string]int, len(ranked))
	var groups []Group
	for _, c := range ranked {
		if i, ok := seen[c.Row.PlanetName]; ok {
			groups[i].Siblings = append(groups[i].Siblings, c)
			continue
		}
		seen[c.Row.PlanetName] = len(groups)
		groups = append(groups, Group{Canonical: c})
	}
	return groups
}

// Backfill returns a copy of the canonical row in which every missing
// column is filled from the first sibling, in rank order, that has it. The
// planet name is never replaced. The names of the filled columns are
// returned in column order.
func Backfill(g Group) (types.RawObservationRow, []string) {
	row := g.Canonical.Row
	var filled []string
	for _, col := range types.Columns {
		if col.Name == "name_of_planet" || !col.Missing(&row) {
			continue
		}
		for i := range g.Siblings {
			sib := &g.Siblings[i].Row
			if col.Missing(sib) {
				continue
			}
			col.CopyFrom(&row, sib)
			filled = append(filled, col.Name)
			break
		}
	}
	return row, filled
}
