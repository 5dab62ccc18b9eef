// Package gonum adapts gonum.org/v1/gonum/unit to the forms.Adapter contract.
//
// Units are parsed with the full codec grammar and resolved against a symbol
// table with SI prefixes. Each Unit keeps its SI scale as a gonum *unit.Unit,
// so dimension checks and compound algebra run through gonum. Temperatures
// are absolute; offset scales such as degrees Celsius are not supported.
package gonum

import (
	"math"
	"time"

	"gonum.org/v1/gonum/unit"

	"github.com/matzehuels/unitwiz/pkg/codec"
	"github.com/matzehuels/unitwiz/pkg/dimension"
	"github.com/matzehuels/unitwiz/pkg/errors"
	"github.com/matzehuels/unitwiz/pkg/forms"
	"github.com/matzehuels/unitwiz/pkg/observability"
)

// Unit is a gonum-form unit: the factors it was written with and the SI
// value of one such unit.
type Unit struct {
	factors []codec.Factor
	si      *unit.Unit
}

// Quantity is a gonum-form quantity. Values are expressed in Unit.
type Quantity struct {
	values []float64
	array  bool
	unit   Unit
}

// String renders the unit, e.g. "kg m^2 s^-2".
func (u Unit) String() string { return codec.FormatFactors(u.factors) }

// SI returns the SI value of one unit as a gonum unit. The result is a copy.
func (u Unit) SI() *unit.Unit { return clone(u.si) }

// String renders the quantity, e.g. "6.276 kJ".
func (q Quantity) String() string {
	return codec.FormatQuantity(codec.FormatMagnitude(q.values, q.array), q.unit.String())
}

// SI returns each value of the quantity as a gonum unit in SI base units.
func (q Quantity) SI() []*unit.Unit {
	out := make([]*unit.Unit, len(q.values))
	for i, v := range q.values {
		out[i] = unit.New(v*q.unit.si.Value(), q.unit.si.Dimensions())
	}
	return out
}

func clone(u *unit.Unit) *unit.Unit {
	return unit.New(u.Value(), u.Dimensions())
}

// Adapter implements forms.Adapter and forms.Composer for gonum.
type Adapter struct {
	cache codec.Cache
}

// New creates a gonum adapter with an expression cache.
func New() *Adapter {
	return &Adapter{cache: codec.NewMemoryCache(0)}
}

// Form returns forms.Gonum.
func (a *Adapter) Form() forms.Form { return forms.Gonum }

// Probe checks that gonum agrees with the symbol table on a known
// conversion.
func (a *Adapter) Probe() error {
	km, err := a.ParseUnit("km")
	if err != nil {
		return err
	}
	m := unit.New(1, unit.Dimensions{unit.LengthDim: 1})
	if !unit.DimensionsMatch(km.(Unit).si, m) || km.(Unit).si.Value() != 1000 {
		return errors.New(errors.ErrCodeLoad, "gonum: unexpected scale for km")
	}
	return nil
}

// ParseQuantity parses "1.5 kcal", "[1, 2] m/s" or a bare magnitude.
func (a *Adapter) ParseQuantity(text string) (any, error) {
	start := time.Now()
	q, err := a.parseQuantity(text)
	observability.Conversion().OnParse(string(forms.Gonum), text, time.Since(start), err)
	if err != nil {
		return nil, err
	}
	return q, nil
}

func (a *Adapter) parseQuantity(text string) (Quantity, error) {
	expr, err := codec.Cached(a.cache, text)
	if err != nil {
		return Quantity{}, errors.Parse(string(forms.Gonum), text, err)
	}
	u, err := a.unitOf(text, expr.Factors)
	if err != nil {
		return Quantity{}, err
	}
	values, array := expr.Values, expr.Array
	if values == nil {
		values = []float64{1}
	}
	return Quantity{values: append([]float64(nil), values...), array: array, unit: u}, nil
}

// ParseUnit parses a unit expression such as "kJ" or "J/(mol K)".
func (a *Adapter) ParseUnit(text string) (any, error) {
	expr, err := codec.Cached(a.cache, text)
	if err == nil && expr.HasMagnitude() {
		err = errors.New(errors.ErrCodeParse, "unexpected magnitude")
	}
	if err != nil {
		return nil, errors.Parse(string(forms.Gonum), text, err)
	}
	return a.unitOf(text, expr.Factors)
}

// unitOf resolves factors into a Unit.
func (a *Adapter) unitOf(text string, factors []codec.Factor) (Unit, error) {
	si := unit.New(1, unit.Dimensions{})
	for _, f := range factors {
		value, d, ok := lookup(f.Symbol)
		if !ok {
			return Unit{}, errors.Parse(string(forms.Gonum), text, errors.New(errors.ErrCodeParse, "unknown unit %q", f.Symbol))
		}
		raise(si, unit.New(value, d), f.Power)
	}
	return Unit{factors: append([]codec.Factor(nil), factors...), si: si}, nil
}

// raise multiplies acc in place by u^power.
func raise(acc, u *unit.Unit, power int) {
	for ; power > 0; power-- {
		acc.Mul(u)
	}
	for ; power < 0; power++ {
		acc.Div(u)
	}
}

// MakeQuantity pairs a magnitude with a Unit or a unit expression.
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
	return Unit{}, errors.New(errors.ErrCodeTypeMismatch, "gonum: %T is not a unit", u).WithForm(string(forms.Gonum))
}

func asQuantity(q any) (Quantity, error) {
	v, ok := q.(Quantity)
	if !ok {
		return Quantity{}, errors.New(errors.ErrCodeTypeMismatch, "gonum: %T is not a quantity", q).WithForm(string(forms.Gonum))
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
	return "", errors.New(errors.ErrCodeTypeMismatch, "gonum: %T is not a quantity or unit", x).WithForm(string(forms.Gonum))
}

// Convert re-expresses q in u.
func (a *Adapter) Convert(q any, u any) (any, error) {
	start := time.Now()
	out, from, to, err := a.convert(q, u)
	observability.Conversion().OnConvert(string(forms.Gonum), from, to, time.Since(start), err)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (a *Adapter) convert(q any, u any) (Quantity, string, string, error) {
	v, err := asQuantity(q)
	if err != nil {
		return Quantity{}, "", "", err
	}
	to, err := a.asUnit(u)
	if err != nil {
		return Quantity{}, v.unit.String(), "", err
	}
	if !unit.DimensionsMatch(v.unit.si, to.si) {
		return Quantity{}, v.unit.String(), to.String(), errors.New(errors.ErrCodeDimensionMismatch,
			"cannot convert %q to %q", v.unit.String(), to.String()).WithForm(string(forms.Gonum))
	}
	factor := decimalRatio(v.unit.si.Value() / to.si.Value())
	return Quantity{values: forms.Scale(v.values, factor), array: v.array, unit: to}, v.unit.String(), to.String(), nil
}

// Dimension returns the dimension of a Quantity or Unit.
func (a *Adapter) Dimension(x any) (dimension.Dimension, error) {
	switch v := x.(type) {
	case Quantity:
		return toDimension(v.unit.si)
	case Unit:
		return toDimension(v.si)
	}
	return dimension.Dimensionless, errors.New(errors.ErrCodeTypeMismatch, "gonum: %T is not a quantity or unit", x).WithForm(string(forms.Gonum))
}

// bases maps gonum dimensions to base quantities.
var bases = map[unit.Dimension]dimension.Base{
	unit.LengthDim:            dimension.BaseLength,
	unit.MassDim:              dimension.BaseMass,
	unit.TimeDim:              dimension.BaseTime,
	unit.TemperatureDim:       dimension.BaseTemperature,
	unit.MoleDim:              dimension.BaseSubstance,
	unit.CurrentDim:           dimension.BaseCurrent,
	unit.LuminousIntensityDim: dimension.BaseLuminosity,
	unit.AngleDim:             dimension.BaseAngle,
}

func toDimension(u *unit.Unit) (dimension.Dimension, error) {
	var d dimension.Dimension
	for gd, p := range u.Dimensions() {
		b, ok := bases[gd]
		if !ok {
			return dimension.Dimensionless, errors.New(errors.ErrCodeUnsupportedDimension, "gonum: unknown dimension %v", gd).WithForm(string(forms.Gonum))
		}
		d[b] += p
	}
	return d, nil
}

func fromDimension(d dimension.Dimension) unit.Dimensions {
	out := unit.Dimensions{}
	for gd, b := range bases {
		if p := d.Exponent(b); p != 0 {
			out[gd] = p
		}
	}
	return out
}

// ToBase returns q in coherent SI base units.
func (a *Adapter) ToBase(q any) (forms.Base, error) {
	v, err := asQuantity(q)
	if err != nil {
		return forms.Base{}, err
	}
	d, err := toDimension(v.unit.si)
	if err != nil {
		return forms.Base{}, err
	}
	return forms.Base{Values: forms.Scale(v.values, v.unit.si.Value()), Array: v.array, Dimension: d}, nil
}

// FromBase builds a quantity in the coherent SI unit of b's dimension,
// e.g. "kg m^2 s^-2" for energy.
func (a *Adapter) FromBase(b forms.Base) (any, error) {
	return Quantity{values: append([]float64(nil), b.Values...), array: b.Array, unit: siUnit(b.Dimension)}, nil
}

// siUnit returns the coherent SI unit of d.
func siUnit(d dimension.Dimension) Unit {
	var factors []codec.Factor
	for _, c := range d.Components() {
		factors = append(factors, codec.Factor{Symbol: c.Base.SIUnit(), Power: c.Power})
	}
	return Unit{factors: factors, si: unit.New(1, fromDimension(d))}
}

// Compose multiplies gonum units raised to integer powers.
func (a *Adapter) Compose(parts []forms.UnitPower) (any, error) {
	si := unit.New(1, unit.Dimensions{})
	var factors []codec.Factor
	for _, p := range parts {
		u, err := a.asUnit(p.Unit)
		if err != nil {
			return nil, err
		}
		raise(si, u.si, p.Power)
		for _, f := range u.factors {
			factors = append(factors, codec.Factor{Symbol: f.Symbol, Power: f.Power * p.Power})
		}
	}
	return Unit{factors: codec.Normalize(factors), si: si}, nil
}

// Ensure Adapter implements the form interfaces.
var (
	_ forms.Adapter  = (*Adapter)(nil)
	_ forms.Composer = (*Adapter)(nil)
)

// decimalRatio snaps a conversion factor that is a power of ten up to
// rounding, such as the ratio of two SI prefixes, to that power of ten.
func decimalRatio(f float64) float64 {
	if f <= 0 || math.IsInf(f, 0) {
		return f
	}
	p := math.Pow10(int(math.Round(math.Log10(f))))
	if math.Abs(f-p) <= 1e-12*p {
		return p
	}
	return f
}
