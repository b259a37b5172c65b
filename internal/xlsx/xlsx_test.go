package xlsx

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/cimax123/asistente-contable/internal/common"
	"github.com/cimax123/asistente-contable/internal/entity"
)

func writeTestWorkbook(t *testing.T, cells map[string]any) string {
	t.Helper()
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()
	for axis, v := range cells {
		require.NoError(t, f.SetCellValue("Sheet1", axis, v))
	}
	path := filepath.Join(t.TempDir(), "test.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestReadGrid(t *testing.T) {
	path := writeTestWorkbook(t, map[string]any{
		"A1": "CLIENTE",
		"A2": "ACME EXPORT",
		"B2": 1500,
	})

	g, err := ReadGrid(path)
	require.NoError(t, err)
	assert.Equal(t, "CLIENTE", g.Cell(0, 0))
	assert.Equal(t, "ACME EXPORT", g.Cell(1, 0))
	assert.Equal(t, "1500", g.Cell(1, 1))
}

func TestReadGridMalformed(t *testing.T) {
	bad := filepath.Join(t.TempDir(), "bad.xlsx")
	require.NoError(t, os.WriteFile(bad, []byte("not a zip archive"), 0o644))

	_, err := ReadGrid(bad)
	assert.ErrorIs(t, err, common.ErrMalformedDocument)

	_, err = ReadGrid(filepath.Join(t.TempDir(), "missing.xlsx"))
	assert.ErrorIs(t, err, common.ErrMalformedDocument)
}

func TestReadFragmentsSharedStrings(t *testing.T) {
	path := writeTestWorkbook(t, map[string]any{
		"A1": "BAJO CONDICION DE ACEPTACION FINAL",
		"B1": "CLIENTE",
		"C1": "CLIENTE", // duplicate collapses
	})

	frags, err := ReadFragments(path)
	require.NoError(t, err)
	assert.Contains(t, frags, "BAJO CONDICION DE ACEPTACION FINAL")

	count := 0
	for _, f := range frags {
		if f == "CLIENTE" {
			count++
		}
	}
	assert.Equal(t, 1, count, "fragments are deduplicated")

	// Stable across repeated reads.
	again, err := ReadFragments(path)
	require.NoError(t, err)
	assert.Equal(t, frags, again)
}

func TestReadFragmentsMalformed(t *testing.T) {
	_, err := ReadFragments(filepath.Join(t.TempDir(), "missing.xlsx"))
	assert.ErrorIs(t, err, common.ErrMalformedDocument)
}

func TestReadColumn(t *testing.T) {
	path := writeTestWorkbook(t, map[string]any{
		"A1": "Fecha", "B1": "Glosa",
		"A2": "2024-01-02", "B2": "compra oficina",
		"A3": "2024-01-03", "B3": "venta productos",
	})

	values, err := ReadColumn(path, "Glosa")
	require.NoError(t, err)
	assert.Equal(t, []string{"compra oficina", "venta productos"}, values)

	_, err = ReadColumn(path, "NoExiste")
	assert.ErrorIs(t, err, common.ErrInvalidInput)
}

func TestWriteRecordsRoundTrip(t *testing.T) {
	records := []entity.OutputRecord{
		{
			SourceDocument: "factura.xlsx",
			Header: entity.HeaderRecord{
				Client:   entity.FieldOf("ACME"),
				Currency: entity.FieldOf("USD"),
			},
			HasProduct: true,
			Product: entity.ProductLine{
				Quantity:    1000,
				Description: "CAJAS DE ARANDANOS",
				UnitPrice:   15,
				LineTotal:   15000,
			},
		},
		{
			SourceDocument: "otra.xlsx",
			Header:         entity.HeaderRecord{Client: entity.FieldOf("BETA")},
		},
	}

	out := filepath.Join(t.TempDir(), "registros.xlsx")
	require.NoError(t, WriteRecords(out, records))

	f, err := excelize.OpenFile(out)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows(resultSheet)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, resultHeaders, rows[0][:len(resultHeaders)])
	assert.Equal(t, "factura.xlsx", rows[1][0])
	assert.Equal(t, "ACME", rows[1][1])
	assert.Equal(t, "N/A", rows[1][3], "unresolved date renders the sentinel")
	assert.Equal(t, "CAJAS DE ARANDANOS", rows[1][13])
	assert.Equal(t, "otra.xlsx", rows[2][0])
}

func TestWriteClassified(t *testing.T) {
	in := writeTestWorkbook(t, map[string]any{
		"A1": "Glosa",
		"A2": "compra oficina",
		"A3": "venta productos",
	})
	out := filepath.Join(t.TempDir(), "resultado.xlsx")

	require.NoError(t, WriteClassified(in, out, "cuenta_sugerida", []string{"gastos", "ingresos"}))

	f, err := excelize.OpenFile(out)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows("Sheet1")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "cuenta_sugerida", rows[0][1])
	assert.Equal(t, "gastos", rows[1][1])
	assert.Equal(t, "ingresos", rows[2][1])
}
