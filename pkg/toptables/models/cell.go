// Package models defines data structures for survey report tables.
package models

import (
	"math"
	"strconv"
	"strings"
)

// Value is a single cell value. It holds an int64, a float64, a bool, a
// string, or nil for an empty cell.
type Value = any

// Float returns v as a float64.
// The second result is false for strings, nil, and any other type.
func Float(v Value) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int64:
		return float64(n), true
	case int:
		return float64(n), true
	}
	return 0, false
}

// Missing reports whether v is an empty cell or a NaN.
func Missing(v Value) bool {
	if v == nil {
		return true
	}
	f, ok := v.(float64)
	return ok && math.IsNaN(f)
}

// Text renders v the way it is shown in a worksheet cell.
// Empty cells render as "".
func Text(v Value) string {
	switch n := v.(type) {
	case nil:
		return ""
	case string:
		return n
	case int64:
		return strconv.FormatInt(n, 10)
	case int:
		return strconv.Itoa(n)
	case float64:
		return formatFloat(n)
	case bool:
		if n {
			return "True"
		}
		return "False"
	}
	return ""
}

// formatFloat renders f in shortest round-trip form: exponent notation below
// 1e-4 or from 1e16 up, otherwise positional with at least one decimal.
func formatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}

	if abs := math.Abs(f); abs != 0 && (abs < 1e-4 || abs >= 1e16) {
		return strconv.FormatFloat(f, 'e', -1, 64)
	}
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
