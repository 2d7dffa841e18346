// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// RawTable is a loaded catalog before projection: the header row and the
// data rows as text cells, in input order.
type RawTable struct {
	Header []string
	Rows   [][]string
}

// Len returns the number of data rows.
func (t RawTable) Len() int {
	return len(t.Rows)
}
