// Package dimension models physical dimensions as integer exponent vectors
// over the base quantities: length, mass, time, temperature, amount of
// substance, electric current, luminous intensity and plane angle.
//
// Two units are compatible exactly when their dimensions are equal. A
// Dimension is a plain array, so == compares dimensions and they can key maps:
//
//	dimension.Force == dimension.Mass.Mul(dimension.Acceleration) // true
//	d, _ := dimension.Parse("[M] [L]^2 [T]^-2")                   // dimension.Energy
package dimension

import (
	"fmt"
	"strconv"
	"strings"
)

// Base identifies one fundamental physical base quantity.
type Base int

// Base quantities, in canonical order.
const (
	BaseLength Base = iota
	BaseMass
	BaseTime
	BaseTemperature
	BaseSubstance
	BaseCurrent
	BaseLuminosity
	BaseAngle

	// NumBases is the number of base quantities tracked by a Dimension.
	NumBases = 8
)

var baseSymbols = [NumBases]string{"L", "M", "T", "K", "mol", "A", "Cd", "rad"}

// siSymbols are the coherent SI base units for each base quantity.
var siSymbols = [NumBases]string{"m", "kg", "s", "K", "mol", "A", "cd", "rad"}

// Symbol returns the bracket-free symbol of the base, e.g. "L".
func (b Base) Symbol() string {
	if b < 0 || int(b) >= NumBases {
		return fmt.Sprintf("Base(%d)", int(b))
	}
	return baseSymbols[b]
}

// String returns the bracketed symbol, e.g. "[L]".
func (b Base) String() string {
	return "[" + b.Symbol() + "]"
}

// SIUnit returns the symbol of the SI base unit for b ("m", "kg", ...).
func (b Base) SIUnit() string {
	if b < 0 || int(b) >= NumBases {
		return ""
	}
	return siSymbols[b]
}

// Bases returns all base quantities in canonical order.
func Bases() []Base {
	out := make([]Base, NumBases)
	for i := range out {
		out[i] = Base(i)
	}
	return out
}

// Dimension is a vector of integer exponents over the base quantities.
// The zero value is dimensionless. Dimensions are comparable and can be
// used as map keys.
type Dimension [NumBases]int

// Dimensionless is the zero dimension.
var Dimensionless Dimension

// Of returns the dimension consisting of a single base raised to power.
func Of(b Base, power int) Dimension {
	var d Dimension
	d[b] = power
	return d
}

// Exponent returns the exponent of base b.
func (d Dimension) Exponent(b Base) int {
	return d[b]
}

// Mul returns the dimension of a product.
func (d Dimension) Mul(o Dimension) Dimension {
	for i := range d {
		d[i] += o[i]
	}
	return d
}

// Div returns the dimension of a quotient.
func (d Dimension) Div(o Dimension) Dimension {
	for i := range d {
		d[i] -= o[i]
	}
	return d
}

// Pow returns d raised to an integer power.
func (d Dimension) Pow(n int) Dimension {
	for i := range d {
		d[i] *= n
	}
	return d
}

// IsDimensionless reports whether every exponent is zero.
func (d Dimension) IsDimensionless() bool {
	return d == Dimensionless
}

// IsBase reports whether d is a single base quantity with exponent 1,
// returning that base.
func (d Dimension) IsBase() (Base, bool) {
	found := -1
	for i, e := range d {
		if e == 0 {
			continue
		}
		if e != 1 || found >= 0 {
			return 0, false
		}
		found = i
	}
	if found < 0 {
		return 0, false
	}
	return Base(found), true
}

// Component is one non-zero base exponent of a Dimension.
type Component struct {
	Base  Base
	Power int
}

// Components returns the non-zero exponents in canonical order.
func (d Dimension) Components() []Component {
	var out []Component
	for i, e := range d {
		if e != 0 {
			out = append(out, Component{Base: Base(i), Power: e})
		}
	}
	return out
}

// Map returns the exponents keyed by bracketed base symbol, including
// zero entries, e.g. {"[L]": 1, "[M]": 0, ...}.
func (d Dimension) Map() map[string]int {
	m := make(map[string]int, NumBases)
	for i, e := range d {
		m[Base(i).String()] = e
	}
	return m
}

// FromMap builds a Dimension from exponents keyed by base symbol, with or
// without brackets ("[L]" or "L"). Missing keys are zero.
func FromMap(m map[string]int) (Dimension, error) {
	var d Dimension
	for k, e := range m {
		b, ok := lookupBase(strings.Trim(k, "[]"))
		if !ok {
			return Dimensionless, fmt.Errorf("unknown base dimension %q", k)
		}
		d[b] = e
	}
	return d, nil
}

// String renders d as bracketed base symbols, e.g. "[M] [L]^2 [T]^-2".
// The zero dimension renders as "dimensionless".
func (d Dimension) String() string {
	if d.IsDimensionless() {
		return "dimensionless"
	}
	parts := make([]string, 0, NumBases)
	// Mass first reads more naturally for derived mechanical quantities.
	for _, b := range []Base{BaseMass, BaseLength, BaseTime, BaseCurrent, BaseTemperature, BaseSubstance, BaseLuminosity, BaseAngle} {
		e := d[b]
		switch {
		case e == 0:
		case e == 1:
			parts = append(parts, b.String())
		default:
			parts = append(parts, b.String()+"^"+strconv.Itoa(e))
		}
	}
	return strings.Join(parts, " ")
}

// SIExpression renders d as a product of SI base units, e.g. "kg m^2 s^-2".
// The zero dimension renders as the empty string.
func (d Dimension) SIExpression() string {
	parts := make([]string, 0, NumBases)
	for _, c := range d.Components() {
		if c.Power == 1 {
			parts = append(parts, c.Base.SIUnit())
			continue
		}
		parts = append(parts, c.Base.SIUnit()+"^"+strconv.Itoa(c.Power))
	}
	return strings.Join(parts, " ")
}

func lookupBase(sym string) (Base, bool) {
	for i, s := range baseSymbols {
		if s == sym {
			return Base(i), true
		}
	}
	return 0, false
}
