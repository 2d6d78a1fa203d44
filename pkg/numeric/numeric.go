// Package numeric holds the coercion and rounding helpers shared by every
// snapshot builder. Metric derivation is defensive: malformed metadata values
// degrade to "absent" rather than failing an entire snapshot, so all parsing
// goes through Parse, which makes missing/invalid vs. zero explicit.
package numeric

import (
	"math"
	"strconv"
	"strings"
)

// Parse coerces an arbitrary metadata value into a float64.
// The second return value reports whether the input was a usable finite number;
// a false result means missing or malformed, never zero.
func Parse(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return 0, false
		}
		return n, true
	case float32:
		return Parse(float64(n))
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case string:
		s := strings.TrimSpace(n)
		if s == "" {
			return 0, false
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return 0, false
		}
		return f, true
	case bool:
		if n {
			return 1, true
		}
		return 0, true
	default:
		return 0, false
	}
}

// ParseOr coerces v, falling back to def when it is missing or malformed.
func ParseOr(v any, def float64) float64 {
	f, ok := Parse(v)
	if !ok {
		return def
	}
	return f
}

// Round rounds half away from zero to the given number of decimal places.
func Round(v float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.Round(v*scale) / scale
}

// Clamp bounds v into [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ClampInt bounds v into [lo, hi].
func ClampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Mean returns the average of vs, or 0 when empty. The second return value
// reports whether any samples existed.
func Mean(vs []float64) (float64, bool) {
	if len(vs) == 0 {
		return 0, false
	}
	var sum float64
	for _, v := range vs {
		sum += v
	}
	return sum / float64(len(vs)), true
}
