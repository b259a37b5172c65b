package extract

import (
	"github.com/cimax123/asistente-contable/internal/entity"
)

// Assemble flattens one document into output records: one per product line,
// each carrying an identical copy of the header, or a single header-only
// record when no table was detected.
func Assemble(header entity.HeaderRecord, products []entity.ProductLine, sourceID string) []entity.OutputRecord {
	if len(products) == 0 {
		return []entity.OutputRecord{{
			SourceDocument: sourceID,
			Header:         header,
		}}
	}
	records := make([]entity.OutputRecord, 0, len(products))
	for _, p := range products {
		records = append(records, entity.OutputRecord{
			SourceDocument: sourceID,
			Header:         header,
			HasProduct:     true,
			Product:        p,
		})
	}
	return records
}
