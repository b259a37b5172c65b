package classify

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/cimax123/asistente-contable/internal/common"
)

// LoadExamples reads a company training workbook. The file has no header
// row and positional columns: account number, description, account name.
// Rows missing a description or account name are skipped.
func LoadExamples(path string) ([]Example, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, common.NewAppError("OPEN_TRAINING", fmt.Sprintf("opening %s", path), common.ErrMalformedDocument)
	}
	defer func() { _ = f.Close() }()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, common.NewAppError("NO_SHEETS", fmt.Sprintf("no sheets in %s", path), common.ErrMalformedDocument)
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, common.NewAppError("READ_TRAINING", fmt.Sprintf("reading %s", path), common.ErrMalformedDocument)
	}

	var examples []Example
	for _, row := range rows {
		if len(row) < 3 {
			continue
		}
		desc := strings.TrimSpace(row[1])
		label := strings.TrimSpace(row[2])
		if desc == "" || label == "" {
			continue
		}
		examples = append(examples, Example{
			Text:  strings.ToLower(desc),
			Label: label,
		})
	}
	return examples, nil
}
