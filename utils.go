package colladarender

import (
	"math"
	"path/filepath"
	"strings"
)

func clamp[V float64 | float32 | int](value, min, max V) V {
	if value < min {
		return min
	} else if value > max {
		return max
	}
	return value
}

// finiteOr returns value, or fallback if value is NaN or infinite.
func finiteOr(value, fallback float64) float64 {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return fallback
	}
	return value
}

// extension returns the lower-cased extension of the given path, including the leading dot.
func extension(path string) string {
	return strings.ToLower(filepath.Ext(path))
}
