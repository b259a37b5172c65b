package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cimax123/asistente-contable/internal/grid"
)

func TestFindCaseAndAccentInsensitive(t *testing.T) {
	for _, cellText := range []string{"cliente", "CLIENTE", "Cliénte"} {
		g := grid.New([][]string{
			{"", ""},
			{"", cellText},
		})
		loc := Find(g, []string{"CLIENTE"})
		assert.True(t, loc.Resolved, "cell %q should match", cellText)
		assert.Equal(t, 1, loc.Row)
		assert.Equal(t, 1, loc.Col)
	}
}

func TestFindRowMajorFirstMatchWins(t *testing.T) {
	g := grid.New([][]string{
		{"", "CLIENTE"},
		{"CLIENTE", ""},
	})
	loc := Find(g, []string{"CLIENTE"})
	assert.Equal(t, Location{Row: 0, Col: 1, Resolved: true}, loc)

	// Deterministic across repeated calls.
	assert.Equal(t, loc, Find(g, []string{"CLIENTE"}))
}

func TestFindTokenBoundary(t *testing.T) {
	g := grid.New([][]string{{"DESCRIPCIONADICIONAL"}})
	assert.False(t, Find(g, []string{"DESCRIPCION"}).Resolved,
		"substring of a longer word must not match")

	g = grid.New([][]string{{"DESCRIPCION ADICIONAL"}})
	assert.True(t, Find(g, []string{"DESCRIPCION"}).Resolved,
		"whole word inside cell text must match")
}

func TestFindKeywordVariants(t *testing.T) {
	g := grid.New([][]string{{"SOLD TO"}})
	loc := Find(g, []string{"CLIENTE", "CUSTOMER", "SOLD TO"})
	assert.True(t, loc.Resolved)
}

func TestFindEmptyGrid(t *testing.T) {
	assert.False(t, Find(grid.New(nil), []string{"CLIENTE"}).Resolved)
	assert.False(t, Find(grid.New([][]string{}), []string{"CLIENTE"}).Resolved)
}
