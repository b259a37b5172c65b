package xlsx

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/cimax123/asistente-contable/internal/entity"
)

const resultSheet = "Registros"

var resultHeaders = []string{
	"Documento",
	"Cliente",
	"Expediente",
	"Fecha",
	"Tipo Venta",
	"Incoterm",
	"Puerto Embarque",
	"Puerto Destino",
	"Moneda",
	"Forma de Pago",
	"Tipo Cambio",
	"Observaciones",
	"Cantidad",
	"Descripcion",
	"Precio Unitario",
	"Total Linea",
}

// WriteRecords writes the flattened output records to an xlsx workbook,
// one row per record, header fields repeated per product line.
func WriteRecords(path string, records []entity.OutputRecord) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	index, err := f.NewSheet(resultSheet)
	if err != nil {
		return fmt.Errorf("create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	_ = f.DeleteSheet("Sheet1")

	for i, h := range resultHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(resultSheet, cell, h)
	}

	for i, rec := range records {
		row := i + 2
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(resultSheet, cell, v)
		}
		h := rec.Header
		write(1, rec.SourceDocument)
		write(2, h.Client.String())
		write(3, h.ExpReference.String())
		write(4, h.Date.String())
		write(5, h.SaleType.String())
		write(6, h.Incoterm.String())
		write(7, h.LoadPort.String())
		write(8, h.DestinationPort.String())
		write(9, h.Currency.String())
		write(10, h.PaymentTerms.String())
		write(11, h.ExchangeRate.String())
		write(12, h.Observation.String())
		if rec.HasProduct {
			write(13, rec.Product.Quantity)
			write(14, rec.Product.Description)
			write(15, rec.Product.UnitPrice)
			write(16, rec.Product.LineTotal)
		}
	}

	// Widen the text-heavy columns
	_ = f.SetColWidth(resultSheet, "A", "A", 28)
	_ = f.SetColWidth(resultSheet, "B", "B", 26)
	_ = f.SetColWidth(resultSheet, "D", "D", 22)
	_ = f.SetColWidth(resultSheet, "L", "L", 48)
	_ = f.SetColWidth(resultSheet, "N", "N", 34)

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("xlsx write: %w", err)
	}
	return nil
}

// WriteClassified copies the input rows and appends the suggested-account
// column produced by the classifier.
func WriteClassified(inPath, outPath, suggestedHeader string, labels []string) error {
	f, err := excelize.OpenFile(inPath)
	if err != nil {
		return fmt.Errorf("open input: %w", err)
	}
	defer func() { _ = f.Close() }()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return fmt.Errorf("no sheets in %s", inPath)
	}
	sheet := sheets[0]
	rows, err := f.GetRows(sheet)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	if len(rows) == 0 {
		return fmt.Errorf("no rows in %s", inPath)
	}

	col := len(rows[0]) + 1
	cell, _ := excelize.CoordinatesToCellName(col, 1)
	_ = f.SetCellValue(sheet, cell, suggestedHeader)
	for i, label := range labels {
		cell, _ := excelize.CoordinatesToCellName(col, i+2)
		_ = f.SetCellValue(sheet, cell, label)
	}

	if err := f.SaveAs(outPath); err != nil {
		return fmt.Errorf("xlsx write: %w", err)
	}
	return nil
}
