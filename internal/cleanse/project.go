// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package cleanse

import (
	"fmt"
	"strings"

	"github.com/pdiddy/exocatalog/pkg/types"
)

// Project selects the catalog columns from table and renames them into
// RawObservationRows. Every column in types.Columns must be present in the
// header; extra columns are ignored. Row indexes record input order.
func Project(table types.RawTable) ([]types.RawObservationRow, error) {
	positions := make(map[string]int, len(table.Header))
	for i, h := range table.Header {
		name := strings.TrimSpace(h)
		if _, dup := positions[name]; !dup {
			positions[name] = i
		}
	}

	index := make([]int, len(types.Columns))
	var missing []string
	for i, col := range types.Columns {
		pos, ok := positions[col.Catalog]
		if !ok {
			missing = append(missing, col.Catalog)
			continue
		}
		index[i] = pos
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingColumn, strings.Join(missing, ", "))
	}

	rows := make([]types.RawObservationRow, len(table.Rows))
	for n, cells := range table.Rows {
		row := types.RawObservationRow{Index: n}
		for i, col := range types.Columns {
			cell := ""
			if index[i] < len(cells) {
				cell = cells[index[i]]
			}
			if err := col.Parse(&row, cell); err != nil {
				return nil, fmt.Errorf("row %d: %w", n+1, err)
			}
		}
		rows[n] = row
	}
	return rows, nil
}
