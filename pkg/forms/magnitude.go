package forms

import (
	"math"

	"github.com/matzehuels/unitwiz/pkg/errors"
)

// Magnitudes normalizes a magnitude argument to a slice of float64.
// array is false for scalars. Accepted types are the Go integer and float
// kinds and slices of float64, float32 and int.
func Magnitudes(m any) (values []float64, array bool, err error) {
	switch v := m.(type) {
	case float64:
		values = []float64{v}
	case float32:
		values = []float64{float64(v)}
	case int:
		values = []float64{float64(v)}
	case int8:
		values = []float64{float64(v)}
	case int16:
		values = []float64{float64(v)}
	case int32:
		values = []float64{float64(v)}
	case int64:
		values = []float64{float64(v)}
	case uint:
		values = []float64{float64(v)}
	case uint8:
		values = []float64{float64(v)}
	case uint16:
		values = []float64{float64(v)}
	case uint32:
		values = []float64{float64(v)}
	case uint64:
		values = []float64{float64(v)}
	case []float64:
		values, array = append([]float64(nil), v...), true
	case []float32:
		values, array = make([]float64, len(v)), true
		for i, x := range v {
			values[i] = float64(x)
		}
	case []int:
		values, array = make([]float64, len(v)), true
		for i, x := range v {
			values[i] = float64(x)
		}
	default:
		return nil, false, errors.New(errors.ErrCodeTypeMismatch, "magnitude must be a number or a slice of numbers, got %T", m)
	}
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, false, errors.New(errors.ErrCodeTypeMismatch, "magnitude must be finite")
		}
	}
	return values, array, nil
}

// Pack returns values[0] for scalars and a copy of values for arrays.
func Pack(values []float64, array bool) any {
	if !array && len(values) == 1 {
		return values[0]
	}
	return append([]float64{}, values...)
}

// Apply returns a new slice with fn applied to every value.
func Apply(values []float64, fn func(float64) float64) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = fn(v)
	}
	return out
}

// Scale returns a new slice with every value multiplied by f.
func Scale(values []float64, f float64) []float64 {
	return Apply(values, func(v float64) float64 { return v * f })
}

// Equal reports whether a and b have the same length and values.
func Equal(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Close reports whether every pair of values satisfies
// |a-b| <= atol + rtol*|b|.
func Close(a, b []float64, rtol, atol float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if math.Abs(a[i]-b[i]) > atol+rtol*math.Abs(b[i]) {
			return false
		}
	}
	return true
}
