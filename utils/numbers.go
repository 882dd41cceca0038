// utils/numbers.go
package utils

import (
	"math"
	"strconv"
	"strings"
)

// ParseAmount coerces raw user input to a number. Anything unparseable,
// NaN or infinite becomes 0 so it can never poison the totals.
func ParseAmount(raw string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
