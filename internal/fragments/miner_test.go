package fragments

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cimax123/asistente-contable/constants"
)

var sampleFragments = []string{
	"SOCIEDAD ANONIMA EXPORT CORP",
	"BAJO CONDICION DE ACEPTACION FINAL DEL CLIENTE",
	"short",
}

func TestFindPhraseSaleCondition(t *testing.T) {
	got := FindPhrase(sampleFragments, constants.SaleConditionMarkers)
	assert.True(t, got.Found)
	assert.Equal(t, "BAJO CONDICION DE ACEPTACION FINAL DEL CLIENTE", got.Value)
}

func TestFindPhraseNoMatch(t *testing.T) {
	assert.False(t, FindPhrase([]string{"nothing relevant"}, constants.ExchangeRateMarkers).Found)
	assert.False(t, FindPhrase(nil, constants.ExchangeRateMarkers).Found)
}

func TestFindPhraseAccentInsensitive(t *testing.T) {
	frags := []string{"Mercadería entregada bajo condición de venta"}
	assert.True(t, FindPhrase(frags, constants.SaleConditionMarkers).Found)
}

func TestObservationSkipsBoilerplate(t *testing.T) {
	got := Observation(sampleFragments)
	assert.True(t, got.Found)
	assert.Equal(t, "BAJO CONDICION DE ACEPTACION FINAL DEL CLIENTE", got.Value,
		"the SOCIEDAD fragment is boilerplate, the short one too short")
}

func TestObservationFirstSurvivorWins(t *testing.T) {
	frags := []string{
		"PRIMERA OBSERVACION LO SUFICIENTEMENTE LARGA",
		"SEGUNDA OBSERVACION TAMBIEN LO SUFICIENTEMENTE LARGA",
	}
	assert.Equal(t, frags[0], Observation(frags).Value)
}

func TestObservationNothingSurvives(t *testing.T) {
	frags := []string{
		"short",
		"COMMERCIAL INVOICE NUMBER 0001 FOR EXPORT SHIPMENT",
		"BANK ACCOUNT DETAILS FOR WIRE TRANSFER PAYMENTS",
	}
	assert.False(t, Observation(frags).Found)
}

func TestExchangeRate(t *testing.T) {
	frags := []string{"TIPO CAMBIO REFERENCIAL 3.75"}
	assert.Equal(t, "TIPO CAMBIO REFERENCIAL 3.75", ExchangeRate(frags).Value)
}
