package gonum

import (
	"math"

	"gonum.org/v1/gonum/unit"

	"github.com/matzehuels/unitwiz/pkg/codec"
)

// symbol is one entry of the symbol table: the SI value of the unit and its
// dimensions. Prefixable symbols accept SI prefixes ("km", "kJ").
type symbol struct {
	value      float64
	dims       unit.Dimensions
	prefixable bool
}

var (
	dimL = unit.LengthDim
	dimM = unit.MassDim
	dimT = unit.TimeDim
	dimI = unit.CurrentDim
	dimK = unit.TemperatureDim
	dimN = unit.MoleDim
	dimJ = unit.LuminousIntensityDim
	dimA = unit.AngleDim
)

const calorie = 4.184

var symbols = map[string]symbol{
	// SI base units. The kilogram is reached through "g" with a prefix.
	"m":   {1, unit.Dimensions{dimL: 1}, true},
	"g":   {1e-3, unit.Dimensions{dimM: 1}, true},
	"s":   {1, unit.Dimensions{dimT: 1}, true},
	"A":   {1, unit.Dimensions{dimI: 1}, true},
	"K":   {1, unit.Dimensions{dimK: 1}, true},
	"mol": {1, unit.Dimensions{dimN: 1}, true},
	"cd":  {1, unit.Dimensions{dimJ: 1}, true},
	"rad": {1, unit.Dimensions{dimA: 1}, true},

	// Derived SI units
	"Hz": {1, unit.Dimensions{dimT: -1}, true},
	"N":  {1, unit.Dimensions{dimM: 1, dimL: 1, dimT: -2}, true},
	"Pa": {1, unit.Dimensions{dimM: 1, dimL: -1, dimT: -2}, true},
	"J":  {1, unit.Dimensions{dimM: 1, dimL: 2, dimT: -2}, true},
	"W":  {1, unit.Dimensions{dimM: 1, dimL: 2, dimT: -3}, true},
	"C":  {1, unit.Dimensions{dimI: 1, dimT: 1}, true},
	"V":  {1, unit.Dimensions{dimM: 1, dimL: 2, dimT: -3, dimI: -1}, true},
	"Ω":  {1, unit.Dimensions{dimM: 1, dimL: 2, dimT: -3, dimI: -2}, true},
	"F":  {1, unit.Dimensions{dimM: -1, dimL: -2, dimT: 4, dimI: 2}, true},
	"T":  {1, unit.Dimensions{dimM: 1, dimT: -2, dimI: -1}, true},
	"Wb": {1, unit.Dimensions{dimM: 1, dimL: 2, dimT: -2, dimI: -1}, true},

	// Accepted non-SI units
	"L":   {1e-3, unit.Dimensions{dimL: 3}, true},
	"l":   {1e-3, unit.Dimensions{dimL: 3}, true},
	"eV":  {1.602176634e-19, unit.Dimensions{dimM: 1, dimL: 2, dimT: -2}, true},
	"cal": {calorie, unit.Dimensions{dimM: 1, dimL: 2, dimT: -2}, true},
	"Wh":  {3600, unit.Dimensions{dimM: 1, dimL: 2, dimT: -2}, true},
	"bar": {1e5, unit.Dimensions{dimM: 1, dimL: -1, dimT: -2}, true},
	"t":   {1e3, unit.Dimensions{dimM: 1}, false},
	"min": {60, unit.Dimensions{dimT: 1}, false},
	"h":   {3600, unit.Dimensions{dimT: 1}, false},
	"d":   {86400, unit.Dimensions{dimT: 1}, false},
	"deg": {math.Pi / 180, unit.Dimensions{dimA: 1}, false},
	"°":   {math.Pi / 180, unit.Dimensions{dimA: 1}, false},
	"Å":   {1e-10, unit.Dimensions{dimL: 1}, false},
	"atm": {101325, unit.Dimensions{dimM: 1, dimL: -1, dimT: -2}, false},

	// Imperial units
	"in": {0.0254, unit.Dimensions{dimL: 1}, false},
	"ft": {0.3048, unit.Dimensions{dimL: 1}, false},
	"yd": {0.9144, unit.Dimensions{dimL: 1}, false},
	"mi": {1609.344, unit.Dimensions{dimL: 1}, false},
	"lb": {0.45359237, unit.Dimensions{dimM: 1}, false},
	"oz": {0.028349523125, unit.Dimensions{dimM: 1}, false},
}

// names maps spelled-out unit names to symbols.
var names = map[string]string{
	"meter": "m", "metre": "m", "gram": "g", "second": "s", "ampere": "A",
	"kelvin": "K", "mole": "mol", "candela": "cd", "radian": "rad",
	"hertz": "Hz", "newton": "N", "pascal": "Pa", "joule": "J", "watt": "W",
	"coulomb": "C", "volt": "V", "ohm": "Ω", "farad": "F", "tesla": "T",
	"weber": "Wb", "liter": "L", "litre": "L", "calorie": "cal",
	"tonne": "t", "minute": "min", "hour": "h", "day": "d", "degree": "deg",
	"angstrom": "Å", "inch": "in", "foot": "ft", "feet": "ft", "yard": "yd",
	"mile": "mi", "pound": "lb", "ounce": "oz",
	"meters": "m", "metres": "m", "grams": "g", "seconds": "s",
	"joules": "J", "watts": "W", "newtons": "N", "minutes": "min",
	"hours": "h", "days": "d", "degrees": "deg", "inches": "in",
	"miles": "mi", "pounds": "lb",
	"ohms": "Ω",
}

// lookup resolves a symbol or name, with an optional SI prefix, to its SI
// value and dimensions.
func lookup(s string) (float64, unit.Dimensions, bool) {
	if sym, ok := resolve(s); ok {
		return sym.value, sym.dims, true
	}
	p, base, ok := codec.SplitPrefix(s, func(c string) bool {
		sym, ok := resolve(c)
		return ok && sym.prefixable
	})
	if !ok {
		return 0, nil, false
	}
	sym, _ := resolve(base)
	return p.Factor * sym.value, sym.dims, true
}

func resolve(s string) (symbol, bool) {
	if sym, ok := symbols[s]; ok {
		return sym, true
	}
	if alias, ok := names[s]; ok {
		return symbols[alias], true
	}
	return symbol{}, false
}
