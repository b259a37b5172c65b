// Package grid wraps a raw spreadsheet cell grid with uniform, bounds-safe
// string access and the normalized comparison form used by anchor matching.
package grid

import (
	"fmt"
	"strings"
)

// CellGrid is an immutable, 0-indexed, row-major view over one document's
// cells. Rows may be ragged at the source; access past a short row or past
// the grid reads as blank.
type CellGrid struct {
	rows [][]string
}

// New builds a grid from rows of already-stringified cells.
func New(rows [][]string) *CellGrid {
	return &CellGrid{rows: rows}
}

// FromValues builds a grid from rows of arbitrary scalar cell values,
// coercing each to its string form at the boundary.
func FromValues(rows [][]any) *CellGrid {
	out := make([][]string, len(rows))
	for i, row := range rows {
		out[i] = make([]string, len(row))
		for j, v := range row {
			out[i][j] = coerce(v)
		}
	}
	return &CellGrid{rows: out}
}

// Rows reports the number of rows in the grid.
func (g *CellGrid) Rows() int {
	return len(g.rows)
}

// Cols reports the width of the given row, 0 when out of bounds.
func (g *CellGrid) Cols(row int) int {
	if row < 0 || row >= len(g.rows) {
		return 0
	}
	return len(g.rows[row])
}

// Cell returns the trimmed string form of the cell at (row, col), or the
// empty string when the coordinates fall outside the grid.
func (g *CellGrid) Cell(row, col int) string {
	if row < 0 || row >= len(g.rows) {
		return ""
	}
	r := g.rows[row]
	if col < 0 || col >= len(r) {
		return ""
	}
	return strings.TrimSpace(r[col])
}

func coerce(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		// Trim excel's float noise on integral numerics.
		if t == float64(int64(t)) {
			return fmt.Sprintf("%d", int64(t))
		}
		return fmt.Sprintf("%v", t)
	default:
		return fmt.Sprintf("%v", t)
	}
}

var accentReplacer = strings.NewReplacer(
	"Á", "A", "É", "E", "Í", "I", "Ó", "O", "Ú", "U",
	"á", "a", "é", "e", "í", "i", "ó", "o", "ú", "u",
)

// Normalize produces the comparison key for anchor matching: trimmed,
// accent-stripped, uppercased.
func Normalize(text string) string {
	return strings.ToUpper(accentReplacer.Replace(strings.TrimSpace(text)))
}
