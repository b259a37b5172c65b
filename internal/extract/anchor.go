// Package extract implements the anchor-based field extraction engine:
// label-anchored header lookup, relative value resolution, product table
// detection, and assembly of the flattened output records.
package extract

import (
	"strings"

	"github.com/cimax123/asistente-contable/internal/grid"
)

// Location is a grid coordinate, or unresolved when no anchor matched.
type Location struct {
	Row, Col int
	Resolved bool
}

// Unresolved is the zero Location, returned when no cell matches.
var Unresolved = Location{}

// Find scans the grid in row-major order and returns the first cell whose
// normalized text equals one of the keywords, or contains a keyword as a
// whole space-bounded token. Document headers list labels before body
// content, so first-match-wins is the intended tie-break.
func Find(g *grid.CellGrid, keywords []string) Location {
	normalized := make([]string, len(keywords))
	for i, kw := range keywords {
		normalized[i] = grid.Normalize(kw)
	}
	for row := 0; row < g.Rows(); row++ {
		for col := 0; col < g.Cols(row); col++ {
			cell := grid.Normalize(g.Cell(row, col))
			if cell == "" {
				continue
			}
			for _, kw := range normalized {
				if matches(cell, kw) {
					return Location{Row: row, Col: col, Resolved: true}
				}
			}
		}
	}
	return Unresolved
}

// matches reports an exact normalized match or a token-boundary containment.
// Space-padding both sides rejects substrings of longer words, e.g. cell
// "DESCRIPCIONADICIONAL" does not match keyword "DESCRIPCION".
func matches(cell, keyword string) bool {
	if cell == keyword {
		return true
	}
	return strings.Contains(" "+cell+" ", " "+keyword+" ")
}
