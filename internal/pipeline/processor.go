// Package pipeline runs the per-document extraction flow over a batch:
// structured grid extraction first, raw-fragment mining as the fallback
// signal source, then assembly into the flattened output records.
package pipeline

import (
	"context"
	"log/slog"
	"path/filepath"

	"github.com/cimax123/asistente-contable/internal/entity"
	"github.com/cimax123/asistente-contable/internal/extract"
	"github.com/cimax123/asistente-contable/internal/fragments"
	"github.com/cimax123/asistente-contable/internal/grid"
	"github.com/cimax123/asistente-contable/internal/xlsx"
)

// DocumentError records one document that could not be processed. The
// batch keeps going past it.
type DocumentError struct {
	Path string
	Err  error
}

type Processor struct {
	Logger *slog.Logger

	// Providers are swappable for tests.
	ReadGrid      func(path string) (*grid.CellGrid, error)
	ReadFragments func(path string) ([]string, error)
}

func NewProcessor(logger *slog.Logger) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{
		Logger:        logger,
		ReadGrid:      xlsx.ReadGrid,
		ReadFragments: xlsx.ReadFragments,
	}
}

// Process extracts every document in batch order. Output preserves that
// order; a failed document is reported and skipped, never aborting the
// rest of the batch.
func (p *Processor) Process(ctx context.Context, paths []string) ([]entity.OutputRecord, []DocumentError) {
	var records []entity.OutputRecord
	var errs []DocumentError
	for _, path := range paths {
		if ctx.Err() != nil {
			break
		}
		recs, err := p.ProcessDocument(path)
		if err != nil {
			p.Logger.Warn("pipeline.document.failed", "path", path, "error", err)
			errs = append(errs, DocumentError{Path: path, Err: err})
			continue
		}
		records = append(records, recs...)
	}
	p.Logger.Info("pipeline.batch.done",
		"documents", len(paths), "records", len(records), "failed", len(errs),
	)
	return records, errs
}

// ProcessDocument extracts one document: header fields and product table
// from the cell grid, supplemented by package-internal fragments. The
// fragment-sourced sale condition wins over the structured cell value;
// exchange rate and observation only fill in when the grid had nothing.
func (p *Processor) ProcessDocument(path string) ([]entity.OutputRecord, error) {
	g, err := p.ReadGrid(path)
	if err != nil {
		return nil, err
	}

	header := extract.ExtractHeader(g)
	products := extract.DetectProducts(g)

	frags, err := p.ReadFragments(path)
	if err != nil {
		// Structured extraction stands on its own; mining is best-effort.
		p.Logger.Warn("pipeline.fragments.unavailable", "path", path, "error", err)
	} else {
		if cond := fragments.SaleCondition(frags); cond.Found {
			header.SaleType, header.Incoterm = extract.SplitSaleCondition(cond)
		}
		header.ExchangeRate = header.ExchangeRate.Or(fragments.ExchangeRate(frags))
		header.Observation = header.Observation.Or(fragments.Observation(frags))
	}

	records := extract.Assemble(header, products, filepath.Base(path))
	p.Logger.Info("pipeline.document.ok",
		"path", path, "products", len(products), "records", len(records),
	)
	return records, nil
}
