package extract

import (
	"regexp"
	"strings"

	"github.com/cimax123/asistente-contable/constants"
	"github.com/cimax123/asistente-contable/internal/entity"
	"github.com/cimax123/asistente-contable/internal/grid"
)

// Resolve locates an anchor for the keywords and reads the cell at the
// given offset from it. Labels and values sit adjacent either horizontally
// (label | value) or vertically (label above value); each caller picks the
// offset its field uses by document convention. Orientation is never
// auto-detected.
//
// The sentinel comes back when the anchor is unresolved, the target falls
// outside the grid, or the target cell is blank.
func Resolve(g *grid.CellGrid, keywords []string, rowOffset, colOffset int) entity.Field {
	loc := Find(g, keywords)
	if !loc.Resolved {
		return entity.NotAvailable()
	}
	return valueAt(g, loc.Row+rowOffset, loc.Col+colOffset)
}

// ResolveBelow reads the cell directly under the anchor, the most common
// layout in these documents.
func ResolveBelow(g *grid.CellGrid, keywords []string) entity.Field {
	return Resolve(g, keywords, 1, 0)
}

// ResolveRight reads the cell directly right of the anchor.
func ResolveRight(g *grid.CellGrid, keywords []string) entity.Field {
	return Resolve(g, keywords, 0, 1)
}

func valueAt(g *grid.CellGrid, row, col int) entity.Field {
	if row < 0 || col < 0 || row >= g.Rows() {
		return entity.NotAvailable()
	}
	v := g.Cell(row, col)
	if v == "" {
		return entity.NotAvailable()
	}
	return entity.FieldOf(v)
}

// ResolveDate composes the document date from three independent anchors.
// If any part is missing the whole date is unavailable. The month token is
// mapped through the numeric/abbreviation table; unmapped tokens pass
// through unchanged.
func ResolveDate(g *grid.CellGrid) entity.Field {
	day := ResolveBelow(g, constants.DayKeywords)
	month := ResolveBelow(g, constants.MonthKeywords)
	year := ResolveBelow(g, constants.YearKeywords)
	if !day.Found || !month.Found || !year.Found {
		return entity.NotAvailable()
	}
	token := grid.Normalize(month.Value)
	name := constants.MonthName(token)
	if name == token {
		// Unmapped token: keep the cell's original spelling.
		name = month.Value
	}
	return entity.FieldOf(day.Value + " de " + name + " de " + year.Value)
}

var saleConditionSep = regexp.MustCompile(`\s*[-–]\s*`)

// SplitSaleCondition splits a combined sale-condition value into the
// sale-type prefix and incoterm suffix. Without a dash-like separator the
// whole value is the sale type and the incoterm stays unavailable.
func SplitSaleCondition(combined entity.Field) (saleType, incoterm entity.Field) {
	if !combined.Found {
		return entity.NotAvailable(), entity.NotAvailable()
	}
	parts := saleConditionSep.Split(combined.Value, 2)
	if len(parts) < 2 || strings.TrimSpace(parts[1]) == "" {
		return entity.FieldOf(strings.TrimSpace(parts[0])), entity.NotAvailable()
	}
	return entity.FieldOf(strings.TrimSpace(parts[0])), entity.FieldOf(strings.TrimSpace(parts[1]))
}

// ResolveCurrency reads the currency from its own anchor, falling back to
// the cell one column right of the TOTAL FOB anchor. Some layouts only name
// the currency next to the grand total.
func ResolveCurrency(g *grid.CellGrid) entity.Field {
	if cur := ResolveBelow(g, constants.CurrencyKeywords); cur.Found {
		return cur
	}
	return ResolveRight(g, constants.TotalFOBKeywords)
}
