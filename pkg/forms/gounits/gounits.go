// Package gounits adapts github.com/bcicen/go-units to the forms.Adapter
// contract.
//
// go-units knows units by name or symbol and groups them by quantity
// ("length", "energy", ...). It has no compound unit algebra, so a quantity
// is a magnitude followed by exactly one unit name the library can find:
//
//	10 m
//	3 kilometer
//	25 celsius
//
// Conversions, including offset temperature scales, are delegated to the
// library. The dimension of a unit is derived from its quantity category.
package gounits

import (
	"math"
	"strings"
	"time"

	units "github.com/bcicen/go-units"

	"github.com/matzehuels/unitwiz/pkg/codec"
	"github.com/matzehuels/unitwiz/pkg/dimension"
	"github.com/matzehuels/unitwiz/pkg/errors"
	"github.com/matzehuels/unitwiz/pkg/forms"
	"github.com/matzehuels/unitwiz/pkg/observability"
)

// Unit is a gounits-form unit. The zero Unit with dimensionless set stands
// for a pure number.
type Unit struct {
	u             units.Unit
	dimensionless bool
}

// Quantity is a gounits-form quantity. Values are expressed in Unit.
type Quantity struct {
	values []float64
	array  bool
	unit   Unit
}

// Native returns the underlying go-units unit. ok is false for the
// dimensionless unit.
func (u Unit) Native() (units.Unit, bool) { return u.u, !u.dimensionless }

// String renders the unit by symbol when the symbol finds the same unit
// again, otherwise by name.
func (u Unit) String() string {
	if u.dimensionless {
		return ""
	}
	if sym := u.u.Symbol; sym != "" {
		if back, err := units.Find(sym); err == nil && back.Name == u.u.Name {
			return sym
		}
	}
	return u.u.Name
}

// String renders the quantity, e.g. "10 m".
func (q Quantity) String() string {
	return codec.FormatQuantity(codec.FormatMagnitude(q.values, q.array), q.unit.String())
}

// Values returns the quantity as go-units values. It is nil for
// dimensionless quantities.
func (q Quantity) Values() []units.Value {
	if q.unit.dimensionless {
		return nil
	}
	out := make([]units.Value, len(q.values))
	for i, v := range q.values {
		out[i] = units.NewValue(v, q.unit.u)
	}
	return out
}

// baseUnit is the go-units unit used to reach SI base units for one
// dimension; factor is the SI value of one such unit.
type baseUnit struct {
	unit   units.Unit
	factor float64
}

// Adapter implements forms.Adapter for go-units.
type Adapter struct {
	bases map[dimension.Dimension]baseUnit
}

// New creates a gounits adapter. Base units are resolved once, up front.
func New() *Adapter {
	a := &Adapter{bases: make(map[dimension.Dimension]baseUnit)}
	for d, candidates := range baseCandidates {
		for _, c := range candidates {
			u, err := units.Find(c.name)
			if err != nil {
				continue
			}
			if got, ok := categoryDimension(u); !ok || got != d {
				continue
			}
			a.bases[d] = baseUnit{unit: u, factor: c.factor}
			break
		}
	}
	return a
}

// Form returns forms.GoUnits.
func (a *Adapter) Form() forms.Form { return forms.GoUnits }

// Probe checks that go-units resolves and converts lengths.
func (a *Adapter) Probe() error {
	base, ok := a.bases[dimension.Length]
	if !ok {
		return errors.New(errors.ErrCodeLoad, "gounits: no base unit for length")
	}
	km, err := units.Find("kilometer")
	if err != nil {
		return errors.Wrap(errors.ErrCodeLoad, err, "gounits: cannot find kilometer")
	}
	v, err := units.NewValue(1, km).Convert(base.unit)
	if err != nil {
		return errors.Wrap(errors.ErrCodeLoad, err, "gounits: cannot convert kilometer")
	}
	if math.Abs(v.Float()*base.factor-1000) > 1e-9 {
		return errors.New(errors.ErrCodeLoad, "gounits: 1 kilometer converted to %v m", v.Float()*base.factor)
	}
	return nil
}

// ParseQuantity parses a magnitude followed by one unit name or symbol.
func (a *Adapter) ParseQuantity(text string) (any, error) {
	start := time.Now()
	q, err := a.parseQuantity(text)
	observability.Conversion().OnParse(string(forms.GoUnits), text, time.Since(start), err)
	if err != nil {
		return nil, err
	}
	return q, nil
}

func (a *Adapter) parseQuantity(text string) (Quantity, error) {
	values, array, rest, err := codec.SplitMagnitude(text)
	if err != nil {
		return Quantity{}, errors.Parse(string(forms.GoUnits), text, err)
	}
	if values == nil {
		values = []float64{1}
	}
	if rest == "" {
		return Quantity{values: values, array: array, unit: Unit{dimensionless: true}}, nil
	}
	u, err := find(text, rest)
	if err != nil {
		return Quantity{}, err
	}
	return Quantity{values: values, array: array, unit: u}, nil
}

// ParseUnit parses one unit name or symbol.
func (a *Adapter) ParseUnit(text string) (any, error) {
	s := strings.TrimSpace(text)
	if s == "" {
		return nil, errors.Parse(string(forms.GoUnits), text, errors.New(errors.ErrCodeParse, "empty unit"))
	}
	u, err := find(text, s)
	if err != nil {
		return nil, err
	}
	return u, nil
}

func find(text, name string) (Unit, error) {
	u, err := units.Find(name)
	if err != nil {
		return Unit{}, errors.Parse(string(forms.GoUnits), text, err)
	}
	return Unit{u: u}, nil
}

// MakeQuantity pairs a magnitude with a Unit or a unit name.
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
	return Unit{}, errors.New(errors.ErrCodeTypeMismatch, "gounits: %T is not a unit", u).WithForm(string(forms.GoUnits))
}

func asQuantity(q any) (Quantity, error) {
	v, ok := q.(Quantity)
	if !ok {
		return Quantity{}, errors.New(errors.ErrCodeTypeMismatch, "gounits: %T is not a quantity", q).WithForm(string(forms.GoUnits))
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
	return "", errors.New(errors.ErrCodeTypeMismatch, "gounits: %T is not a quantity or unit", x).WithForm(string(forms.GoUnits))
}

// Convert re-expresses q in u using go-units conversions.
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
	observability.Conversion().OnConvert(string(forms.GoUnits), v.unit.String(), to.String(), time.Since(start), err)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func convert(q Quantity, to Unit) (Quantity, error) {
	mismatch := func(cause error) error {
		return errors.Wrap(errors.ErrCodeDimensionMismatch, cause, "cannot convert %q to %q", q.unit.String(), to.String()).WithForm(string(forms.GoUnits))
	}
	if q.unit.dimensionless || to.dimensionless {
		if q.unit.dimensionless && to.dimensionless {
			return q, nil
		}
		return Quantity{}, mismatch(nil)
	}
	values := make([]float64, len(q.values))
	for i, v := range q.values {
		out, err := units.NewValue(v, q.unit.u).Convert(to.u)
		if err != nil {
			return Quantity{}, mismatch(err)
		}
		values[i] = out.Float()
	}
	return Quantity{values: values, array: q.array, unit: to}, nil
}

// Dimension returns the dimension of a Quantity or Unit, derived from the
// go-units quantity category.
func (a *Adapter) Dimension(x any) (dimension.Dimension, error) {
	var u Unit
	switch v := x.(type) {
	case Quantity:
		u = v.unit
	case Unit:
		u = v
	default:
		return dimension.Dimensionless, errors.New(errors.ErrCodeTypeMismatch, "gounits: %T is not a quantity or unit", x).WithForm(string(forms.GoUnits))
	}
	return unitDimension(u)
}

func unitDimension(u Unit) (dimension.Dimension, error) {
	if u.dimensionless {
		return dimension.Dimensionless, nil
	}
	d, ok := categoryDimension(u.u)
	if !ok {
		return dimension.Dimensionless, errors.New(errors.ErrCodeUnsupportedDimension,
			"gounits: quantity %q of unit %q has no physical dimension", string(u.u.Quantity), u.u.Name).WithForm(string(forms.GoUnits))
	}
	return d, nil
}

// ToBase converts q to the base unit of its category and scales it to SI.
func (a *Adapter) ToBase(q any) (forms.Base, error) {
	v, err := asQuantity(q)
	if err != nil {
		return forms.Base{}, err
	}
	d, err := unitDimension(v.unit)
	if err != nil {
		return forms.Base{}, err
	}
	if v.unit.dimensionless {
		return forms.Base{Values: append([]float64(nil), v.values...), Array: v.array}, nil
	}
	base, err := a.base(d)
	if err != nil {
		return forms.Base{}, err
	}
	out, err := convert(v, Unit{u: base.unit})
	if err != nil {
		return forms.Base{}, err
	}
	return forms.Base{Values: forms.Scale(out.values, base.factor), Array: v.array, Dimension: d}, nil
}

// FromBase builds a quantity in the base unit of b's dimension. It fails
// with UNSUPPORTED_DIMENSION when go-units has no category for it.
func (a *Adapter) FromBase(b forms.Base) (any, error) {
	if b.Dimension.IsDimensionless() {
		return Quantity{values: append([]float64(nil), b.Values...), array: b.Array, unit: Unit{dimensionless: true}}, nil
	}
	base, err := a.base(b.Dimension)
	if err != nil {
		return nil, err
	}
	return Quantity{values: forms.Scale(b.Values, 1/base.factor), array: b.Array, unit: Unit{u: base.unit}}, nil
}

func (a *Adapter) base(d dimension.Dimension) (baseUnit, error) {
	base, ok := a.bases[d]
	if !ok {
		return baseUnit{}, errors.New(errors.ErrCodeUnsupportedDimension, "gounits cannot express dimension %s", d).WithForm(string(forms.GoUnits))
	}
	return base, nil
}

// Ensure Adapter implements forms.Adapter.
var _ forms.Adapter = (*Adapter)(nil)
