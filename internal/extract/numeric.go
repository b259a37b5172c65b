package extract

import (
	"strconv"
	"strings"
)

// ParseNumeric coerces a raw cell value to a float. Currency symbols and
// other decoration are stripped, thousands-separator commas removed, and
// anything that still fails to parse degrades to 0. This is deliberately
// not a locale-aware parser; comma-as-decimal inputs lose their comma too.
func ParseNumeric(raw string) float64 {
	var b strings.Builder
	for _, r := range raw {
		switch {
		case r >= '0' && r <= '9', r == '.', r == ',', r == '-':
			b.WriteRune(r)
		}
	}
	cleaned := strings.ReplaceAll(b.String(), ",", "")
	f, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0
	}
	return f
}
