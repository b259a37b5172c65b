// Package fragments mines text fragments recovered from a document
// package's internals (shared strings, drawing text, comments). Some
// documents keep critical text in floating shapes rather than cells; this
// path recovers it when the structured grid has nothing, trading precision
// for coverage: it yields the matched text, not a parsed value.
package fragments

import (
	"strings"

	"github.com/cimax123/asistente-contable/constants"
	"github.com/cimax123/asistente-contable/internal/entity"
	"github.com/cimax123/asistente-contable/internal/grid"
)

// minObservationLen filters out labels and short captions when hunting for
// the free-text observation.
const minObservationLen = 30

// Observation returns the first fragment long enough to be a free-text
// note and free of letterhead boilerplate. Fragment order is the
// provider's stable first-seen order, so the result is deterministic.
func Observation(frags []string) entity.Field {
	for _, f := range frags {
		if len(f) <= minObservationLen {
			continue
		}
		if containsAny(grid.Normalize(f), constants.BoilerplateMarkers) {
			continue
		}
		return entity.FieldOf(f)
	}
	return entity.NotAvailable()
}

// FindPhrase returns the first fragment whose normalized text contains any
// of the given markers.
func FindPhrase(frags []string, markers []string) entity.Field {
	for _, f := range frags {
		if containsAny(grid.Normalize(f), markers) {
			return entity.FieldOf(f)
		}
	}
	return entity.NotAvailable()
}

// SaleCondition mines the sale-condition phrase from the fragment set.
func SaleCondition(frags []string) entity.Field {
	return FindPhrase(frags, constants.SaleConditionMarkers)
}

// ExchangeRate mines the exchange-rate phrase from the fragment set.
func ExchangeRate(frags []string) entity.Field {
	return FindPhrase(frags, constants.ExchangeRateMarkers)
}

func containsAny(normalized string, markers []string) bool {
	for _, m := range markers {
		if strings.Contains(normalized, grid.Normalize(m)) {
			return true
		}
	}
	return false
}
