package classify

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cimax123/asistente-contable/internal/common"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func trainingSet() []Example {
	return []Example{
		{Text: "compra oficina", Label: "gastos"},
		{Text: "pago luz", Label: "gastos"},
		{Text: "compra sillas", Label: "gastos"},
		{Text: "venta productos", Label: "ingresos"},
		{Text: "venta servicios", Label: "ingresos"},
	}
}

func TestTrainAndPredict(t *testing.T) {
	model, err := Train(trainingSet(), discardLogger())
	require.NoError(t, err)
	assert.Equal(t, []string{"gastos", "ingresos"}, model.Labels())

	got := model.Predict([]string{"compra escritorio", "venta mercaderia"})
	assert.Equal(t, []string{"gastos", "ingresos"}, got)
}

func TestTrainFiltersRareLabels(t *testing.T) {
	examples := append(trainingSet(), Example{Text: "prestamo bancario", Label: "pasivos"})
	model, err := Train(examples, discardLogger())
	require.NoError(t, err)
	assert.NotContains(t, model.Labels(), "pasivos",
		"a label with a single example is dropped")
}

func TestTrainInsufficientData(t *testing.T) {
	_, err := Train([]Example{{Text: "compra oficina", Label: "gastos"}}, discardLogger())
	assert.ErrorIs(t, err, common.ErrInsufficientData)

	_, err = Train(nil, discardLogger())
	assert.ErrorIs(t, err, common.ErrInsufficientData)
}

func TestPredictUnknownTextStillAnswers(t *testing.T) {
	model, err := Train(trainingSet(), discardLogger())
	require.NoError(t, err)

	got := model.Predict([]string{"zzz qqq"})
	require.Len(t, got, 1)
	assert.Contains(t, model.Labels(), got[0])
}

func TestPredictDeterministic(t *testing.T) {
	model, err := Train(trainingSet(), discardLogger())
	require.NoError(t, err)

	texts := []string{"compra oficina", "venta productos"}
	first := model.Predict(texts)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, model.Predict(texts))
	}
}
