// Package lindhe adapts github.com/martinlindhe/unit to the forms.Adapter
// contract.
//
// The library models every physical kind (length, energy, temperature, ...)
// as its own Go type with typed unit constants. The adapter keeps a fixed
// table of unit symbols, each bound to a kind and to conversion factors taken
// from those constants. A quantity is a magnitude followed by one symbol:
//
//	10 m
//	36 km/h
//	25 degC
//
// Compound expressions outside the table are not understood.
package lindhe

import (
	"math"
	"sort"
	"strings"
	"time"

	"github.com/martinlindhe/unit"

	"github.com/matzehuels/unitwiz/pkg/codec"
	"github.com/matzehuels/unitwiz/pkg/dimension"
	"github.com/matzehuels/unitwiz/pkg/errors"
	"github.com/matzehuels/unitwiz/pkg/forms"
	"github.com/matzehuels/unitwiz/pkg/observability"
)

// Unit is a lindhe-form unit. The empty symbol is the dimensionless unit.
type Unit struct {
	symbol string
}

// Quantity is a lindhe-form quantity. Values are expressed in Unit.
type Quantity struct {
	values []float64
	array  bool
	unit   Unit
}

// String returns the table symbol.
func (u Unit) String() string { return u.symbol }

// Kind names the library type the unit belongs to, e.g. "length" or
// "temperature". It is empty for the dimensionless unit.
func (u Unit) Kind() string {
	if e, ok := table[u.symbol]; ok {
		return e.kind
	}
	return ""
}

// String renders the quantity, e.g. "36 km/h".
func (q Quantity) String() string {
	return codec.FormatQuantity(codec.FormatMagnitude(q.values, q.array), q.unit.symbol)
}

// Symbols returns every unit symbol the adapter understands, sorted.
func Symbols() []string {
	out := make([]string, 0, len(table))
	for s := range table {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

// Adapter implements forms.Adapter for martinlindhe/unit.
type Adapter struct{}

// New creates a lindhe adapter.
func New() *Adapter { return &Adapter{} }

// Form returns forms.Lindhe.
func (a *Adapter) Form() forms.Form { return forms.Lindhe }

// Probe checks the library's length and temperature scales.
func (a *Adapter) Probe() error {
	if ft := float64(unit.Mile / unit.Foot); math.Abs(ft-5280) > 1e-9 {
		return errors.New(errors.ErrCodeLoad, "lindhe: 1 mi is %v ft", ft)
	}
	if m := float64(unit.Kilometer / unit.Meter); math.Abs(m-1000) > 1e-9 {
		return errors.New(errors.ErrCodeLoad, "lindhe: 1 km is %v m", m)
	}
	if k := unit.FromCelsius(0).Kelvin(); math.Abs(k-273.15) > 1e-9 {
		return errors.New(errors.ErrCodeLoad, "lindhe: 0 degC is %v K", k)
	}
	return nil
}

// ParseQuantity parses a magnitude followed by one table symbol.
func (a *Adapter) ParseQuantity(text string) (any, error) {
	start := time.Now()
	q, err := parseQuantity(text)
	observability.Conversion().OnParse(string(forms.Lindhe), text, time.Since(start), err)
	if err != nil {
		return nil, err
	}
	return q, nil
}

func parseQuantity(text string) (Quantity, error) {
	values, array, rest, err := codec.SplitMagnitude(text)
	if err != nil {
		return Quantity{}, errors.Parse(string(forms.Lindhe), text, err)
	}
	if values == nil {
		values = []float64{1}
	}
	if rest == "" {
		return Quantity{values: values, array: array}, nil
	}
	u, err := find(text, rest)
	if err != nil {
		return Quantity{}, err
	}
	return Quantity{values: values, array: array, unit: u}, nil
}

// ParseUnit parses one table symbol.
func (a *Adapter) ParseUnit(text string) (any, error) {
	s := strings.TrimSpace(text)
	if s == "" {
		return nil, errors.Parse(string(forms.Lindhe), text, errors.New(errors.ErrCodeParse, "empty unit"))
	}
	u, err := find(text, s)
	if err != nil {
		return nil, err
	}
	return u, nil
}

func find(text, symbol string) (Unit, error) {
	canonical, _, ok := lookup(symbol)
	if !ok {
		return Unit{}, errors.Parse(string(forms.Lindhe), text, errors.New(errors.ErrCodeParse, "unknown unit %q", symbol))
	}
	return Unit{symbol: canonical}, nil
}

// MakeQuantity pairs a magnitude with a Unit or a unit symbol.
func (a *Adapter) MakeQuantity(magnitude any, u any) (any, error) {
	values, array, err := forms.Magnitudes(magnitude)
	if err != nil {
		return nil, err
	}
	un, err := a.asUnit(u)
	if err != nil {
		return nil, err
	}
	return Quantity{values: values, array: array, unit: un}, nil
}

func (a *Adapter) asUnit(u any) (Unit, error) {
	switch v := u.(type) {
	case Unit:
		return v, nil
	case string:
		parsed, err := a.ParseUnit(v)
		if err != nil {
			return Unit{}, err
		}
		return parsed.(Unit), nil
	}
	return Unit{}, errors.New(errors.ErrCodeTypeMismatch, "lindhe: %T is not a unit", u).WithForm(string(forms.Lindhe))
}

func asQuantity(q any) (Quantity, error) {
	v, ok := q.(Quantity)
	if !ok {
		return Quantity{}, errors.New(errors.ErrCodeTypeMismatch, "lindhe: %T is not a quantity", q).WithForm(string(forms.Lindhe))
	}
	return v, nil
}

// Magnitude returns float64 or []float64.
func (a *Adapter) Magnitude(q any) (any, error) {
	v, err := asQuantity(q)
	if err != nil {
		return nil, err
	}
	return forms.Pack(v.values, v.array), nil
}

// Unit returns the Unit of a quantity.
func (a *Adapter) Unit(q any) (any, error) {
	v, err := asQuantity(q)
	if err != nil {
		return nil, err
	}
	return v.unit, nil
}

// IsQuantity reports whether x is a Quantity.
func (a *Adapter) IsQuantity(x any) bool {
	_, ok := x.(Quantity)
	return ok
}

// IsUnit reports whether x is a Unit.
func (a *Adapter) IsUnit(x any) bool {
	_, ok := x.(Unit)
	return ok
}

// String renders a Quantity or Unit.
func (a *Adapter) String(x any) (string, error) {
	switch v := x.(type) {
	case Quantity:
		return v.String(), nil
	case Unit:
		return v.String(), nil
	}
	return "", errors.New(errors.ErrCodeTypeMismatch, "lindhe: %T is not a quantity or unit", x).WithForm(string(forms.Lindhe))
}

// Convert re-expresses q in u. Both units must be of the same kind.
func (a *Adapter) Convert(q any, u any) (any, error) {
	start := time.Now()
	v, err := asQuantity(q)
	if err != nil {
		return nil, err
	}
	to, err := a.asUnit(u)
	if err != nil {
		return nil, err
	}
	out, err := convert(v, to)
	observability.Conversion().OnConvert(string(forms.Lindhe), v.unit.symbol, to.symbol, time.Since(start), err)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func convert(q Quantity, to Unit) (Quantity, error) {
	if q.unit.symbol == "" || to.symbol == "" {
		if q.unit.symbol == to.symbol {
			return q, nil
		}
		return Quantity{}, mismatch(q.unit, to)
	}
	src, dst := table[q.unit.symbol], table[to.symbol]
	if src.kind != dst.kind {
		return Quantity{}, mismatch(q.unit, to)
	}
	values := make([]float64, len(q.values))
	for i, v := range q.values {
		values[i] = dst.fromSI(src.toSI(v))
	}
	return Quantity{values: values, array: q.array, unit: to}, nil
}

func mismatch(from, to Unit) error {
	return errors.New(errors.ErrCodeDimensionMismatch, "cannot convert %q to %q", from.symbol, to.symbol).WithForm(string(forms.Lindhe))
}

// Dimension returns the dimension of a Quantity or Unit.
func (a *Adapter) Dimension(x any) (dimension.Dimension, error) {
	switch v := x.(type) {
	case Quantity:
		return table[v.unit.symbol].dim, nil
	case Unit:
		return table[v.symbol].dim, nil
	}
	return dimension.Dimensionless, errors.New(errors.ErrCodeTypeMismatch, "lindhe: %T is not a quantity or unit", x).WithForm(string(forms.Lindhe))
}

// ToBase converts q to the coherent SI unit of its kind.
func (a *Adapter) ToBase(q any) (forms.Base, error) {
	v, err := asQuantity(q)
	if err != nil {
		return forms.Base{}, err
	}
	if v.unit.symbol == "" {
		return forms.Base{Values: append([]float64(nil), v.values...), Array: v.array}, nil
	}
	e := table[v.unit.symbol]
	return forms.Base{Values: forms.Apply(v.values, e.toSI), Array: v.array, Dimension: e.dim}, nil
}

// FromBase builds a quantity in the SI unit of b's dimension. It fails with
// UNSUPPORTED_DIMENSION when the library has no kind for it.
func (a *Adapter) FromBase(b forms.Base) (any, error) {
	if b.Dimension.IsDimensionless() {
		return Quantity{values: append([]float64(nil), b.Values...), array: b.Array}, nil
	}
	symbol, ok := siSymbols[b.Dimension]
	if !ok {
		return nil, errors.New(errors.ErrCodeUnsupportedDimension, "lindhe cannot express dimension %s", b.Dimension).WithForm(string(forms.Lindhe))
	}
	e := table[symbol]
	return Quantity{values: forms.Apply(b.Values, e.fromSI), array: b.Array, unit: Unit{symbol: symbol}}, nil
}

// Ensure Adapter implements forms.Adapter.
var _ forms.Adapter = (*Adapter)(nil)
