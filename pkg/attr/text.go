package attr

import (
	"math"
	"strconv"
)

// TextOf returns the attribute text of a scalar or coercible value.
// Absent, Present and containers have no single text and are rejected.
func TextOf(v Value) (string, error) {
	switch v.(type) {
	case nil, Absent, Present, List, Set, Map:
		kind := KindOf(v)
		return "", shapeErr("", kind, ErrInvalidShape, "%s has no text form", kind)
	}
	return scalarText("", v)
}

func scalarText(name string, v Value) (string, error) {
	switch val := v.(type) {
	case String:
		return string(val), nil
	case Symbol:
		return string(val), nil
	case Int:
		return strconv.FormatInt(int64(val), 10), nil
	case Uint:
		return strconv.FormatUint(uint64(val), 10), nil
	case Float:
		return formatFloat(name, float64(val))
	case Coercible:
		if val.V == nil {
			return "", coercionErr(name, nil)
		}
		return val.V.AttributeText(), nil
	}
	return "", coercionErr(name, v)
}

// formatFloat renders the shortest decimal that parses back to f.
// Integral floats have no fractional part ("10", not "10.0"). Very small and
// very large magnitudes switch to exponent form, matching encoding/json.
func formatFloat(name string, f float64) (string, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return "", shapeErr(name, KindFloat, ErrInvalidShape, "float %v has no attribute text", f)
	}
	abs := math.Abs(f)
	format := byte('f')
	if abs != 0 && (abs < 1e-6 || abs >= 1e21) {
		format = 'e'
	}
	return strconv.FormatFloat(f, format, -1, 64), nil
}
