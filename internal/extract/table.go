package extract

import (
	"strings"

	"github.com/cimax123/asistente-contable/constants"
	"github.com/cimax123/asistente-contable/internal/entity"
	"github.com/cimax123/asistente-contable/internal/grid"
)

// tableColumns maps each product-table concern to a column index, -1 when
// the document has no such column.
type tableColumns struct {
	quantity    int
	description int
	unitPrice   int
	lineTotal   int
}

// DetectProducts locates the item table and walks its rows. A header row
// qualifies only when it carries both a quantity and a description column;
// either marker alone elsewhere in the grid does not. Returns an empty
// slice when no qualifying header exists; callers treat that as "no table".
func DetectProducts(g *grid.CellGrid) []entity.ProductLine {
	headerRow, cols := findTableHeader(g)
	if headerRow < 0 {
		return nil
	}

	var products []entity.ProductLine
	for row := headerRow + 1; row < g.Rows(); row++ {
		desc := g.Cell(row, cols.description)
		norm := grid.Normalize(desc)
		// Hard sequential scan: a blank spacer row inside a real table
		// terminates extraction here. Known, accepted behavior.
		if desc == "" || strings.Contains(norm, "TOTAL") ||
			strings.Contains(norm, "OBSERVACIONES") || strings.Contains(norm, "NOTES") {
			break
		}

		p := entity.ProductLine{Description: desc}
		if cols.quantity >= 0 {
			p.Quantity = ParseNumeric(g.Cell(row, cols.quantity))
		}
		if cols.unitPrice >= 0 {
			p.UnitPrice = ParseNumeric(g.Cell(row, cols.unitPrice))
		}
		if cols.lineTotal >= 0 {
			p.LineTotal = ParseNumeric(g.Cell(row, cols.lineTotal))
		}
		if p.LineTotal == 0 {
			p.LineTotal = p.Quantity * p.UnitPrice
		}
		products = append(products, p)
	}
	return products
}

// findTableHeader returns the first row where quantity and description
// column markers co-occur, together with the column assignment for that
// row. Each column index is assigned to at most one concern.
func findTableHeader(g *grid.CellGrid) (int, tableColumns) {
	for row := 0; row < g.Rows(); row++ {
		cols := tableColumns{quantity: -1, description: -1, unitPrice: -1, lineTotal: -1}
		for col := 0; col < g.Cols(row); col++ {
			cell := grid.Normalize(g.Cell(row, col))
			if cell == "" {
				continue
			}
			switch {
			case cols.quantity < 0 && matchesAny(cell, constants.QuantityColumns):
				cols.quantity = col
			case cols.description < 0 && matchesAny(cell, constants.DescriptionColumns):
				cols.description = col
			case cols.unitPrice < 0 && matchesAny(cell, constants.UnitPriceColumns):
				cols.unitPrice = col
			case cols.lineTotal < 0 && matchesAny(cell, constants.LineTotalColumns):
				cols.lineTotal = col
			}
		}
		if cols.quantity >= 0 && cols.description >= 0 {
			return row, cols
		}
	}
	return -1, tableColumns{}
}

func matchesAny(cell string, keywords []string) bool {
	for _, kw := range keywords {
		if matches(cell, grid.Normalize(kw)) {
			return true
		}
	}
	return false
}
