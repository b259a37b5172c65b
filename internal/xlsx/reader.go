// Package xlsx binds the extraction engine to xlsx workbooks: a grid
// provider and package-internal fragment provider on the input side, and a
// flattened-record writer on the output side.
package xlsx

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/cimax123/asistente-contable/internal/common"
	"github.com/cimax123/asistente-contable/internal/grid"
)

// ReadGrid loads the first sheet of the workbook at path as a cell grid.
// Raw cell values are requested so numeric cells keep their stored form
// instead of their display format.
func ReadGrid(path string) (*grid.CellGrid, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, common.NewAppError("OPEN_DOCUMENT", fmt.Sprintf("opening %s", path), common.ErrMalformedDocument)
	}
	defer func() { _ = f.Close() }()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, common.NewAppError("NO_SHEETS", fmt.Sprintf("no sheets in %s", path), common.ErrMalformedDocument)
	}

	rows, err := f.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, common.NewAppError("READ_SHEET", fmt.Sprintf("reading %s", path), common.ErrMalformedDocument)
	}
	return grid.New(rows), nil
}

// ReadColumn returns the workbook's header row and the values of the named
// column (classification input). The header row is row 1; the column is
// matched by exact header text.
func ReadColumn(path, column string) ([]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, common.NewAppError("OPEN_DOCUMENT", fmt.Sprintf("opening %s", path), common.ErrMalformedDocument)
	}
	defer func() { _ = f.Close() }()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, common.NewAppError("NO_SHEETS", fmt.Sprintf("no sheets in %s", path), common.ErrMalformedDocument)
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, common.NewAppError("READ_SHEET", fmt.Sprintf("reading %s", path), common.ErrMalformedDocument)
	}
	if len(rows) == 0 {
		return nil, common.NewAppError("EMPTY_SHEET", fmt.Sprintf("no rows in %s", path), common.ErrInvalidInput)
	}

	colIdx := -1
	for i, h := range rows[0] {
		if h == column {
			colIdx = i
			break
		}
	}
	if colIdx < 0 {
		return nil, common.NewAppError("MISSING_COLUMN", fmt.Sprintf("column %q not found in %s", column, path), common.ErrInvalidInput)
	}

	values := make([]string, 0, len(rows)-1)
	for _, row := range rows[1:] {
		v := ""
		if colIdx < len(row) {
			v = row[colIdx]
		}
		values = append(values, v)
	}
	return values, nil
}
