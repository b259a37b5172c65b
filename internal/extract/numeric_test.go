package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseNumeric(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"$1,500.00", 1500},
		{"1000", 1000},
		{"15.00", 15},
		{"USD 12,345.67", 12345.67},
		{"-250.5", -250.5},
		{"", 0},
		{"abc", 0},
		{"--", 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseNumeric(tt.in), "input %q", tt.in)
	}
}
