package extract

import (
	"github.com/cimax123/asistente-contable/constants"
	"github.com/cimax123/asistente-contable/internal/entity"
	"github.com/cimax123/asistente-contable/internal/grid"
)

// ExtractHeader resolves every header field from the cell grid. Offsets
// follow the layout conventions of the source documents: most labels sit
// above their value, reference and ports keep the value on the same row.
func ExtractHeader(g *grid.CellGrid) entity.HeaderRecord {
	saleType, incoterm := SplitSaleCondition(ResolveBelow(g, constants.SaleConditionKeywords))
	return entity.HeaderRecord{
		Client:          ResolveBelow(g, constants.ClientKeywords),
		ExpReference:    ResolveRight(g, constants.ExpReferenceKeywords),
		Date:            ResolveDate(g),
		SaleType:        saleType,
		Incoterm:        incoterm,
		LoadPort:        ResolveRight(g, constants.LoadPortKeywords),
		DestinationPort: ResolveRight(g, constants.DestinationPortKeywords),
		Currency:        ResolveCurrency(g),
		PaymentTerms:    ResolveBelow(g, constants.PaymentTermsKeywords),
		ExchangeRate:    ResolveRight(g, constants.ExchangeRateKeywords),
		Observation:     ResolveBelow(g, constants.ObservationKeywords),
	}
}
