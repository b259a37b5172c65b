package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cimax123/asistente-contable/internal/entity"
)

func TestAssembleNoProducts(t *testing.T) {
	header := entity.HeaderRecord{Client: entity.FieldOf("ACME")}
	records := Assemble(header, nil, "factura.xlsx")

	require.Len(t, records, 1)
	assert.Equal(t, "factura.xlsx", records[0].SourceDocument)
	assert.Equal(t, "ACME", records[0].Header.Client.Value)
	assert.False(t, records[0].HasProduct)
}

func TestAssembleRepeatsHeaderPerProduct(t *testing.T) {
	header := entity.HeaderRecord{
		Client:   entity.FieldOf("ACME"),
		Currency: entity.FieldOf("USD"),
	}
	products := []entity.ProductLine{
		{Description: "CAJAS A", Quantity: 10, UnitPrice: 2, LineTotal: 20},
		{Description: "CAJAS B", Quantity: 5, UnitPrice: 4, LineTotal: 20},
	}
	records := Assemble(header, products, "factura.xlsx")

	require.Len(t, records, 2)
	for i, rec := range records {
		assert.Equal(t, header, rec.Header, "record %d carries identical header fields", i)
		assert.True(t, rec.HasProduct)
		assert.Equal(t, products[i], rec.Product)
	}
}
