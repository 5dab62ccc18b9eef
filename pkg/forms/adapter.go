package forms

import (
	"github.com/matzehuels/unitwiz/pkg/dimension"
)

// Adapter exposes one backend library through the common capability set.
//
// Quantities and units are passed around as the adapter's own native types
// behind any; the rest of the system only inspects them through these
// methods. Every method that receives an object of the wrong kind fails with
// TYPE_MISMATCH, and every method that parses text fails with PARSE_ERROR
// carrying the text and the form.
type Adapter interface {
	// Form returns the identifier of this adapter.
	Form() Form

	// Probe checks that the backend library works. Discovery records the
	// result; a failing probe means the form is not found.
	Probe() error

	// ParseQuantity reads a magnitude and unit expression.
	ParseQuantity(text string) (any, error)

	// ParseUnit reads a unit expression without a magnitude.
	ParseUnit(text string) (any, error)

	// MakeQuantity pairs a magnitude (float64, int or a slice of them) with a
	// unit of this form.
	MakeQuantity(magnitude any, unit any) (any, error)

	// Magnitude returns float64 for scalar quantities and []float64 for arrays.
	Magnitude(q any) (any, error)

	// Unit returns the unit of a quantity.
	Unit(q any) (any, error)

	// IsQuantity reports whether x is a quantity owned by this adapter.
	IsQuantity(x any) bool

	// IsUnit reports whether x is a unit owned by this adapter.
	IsUnit(x any) bool

	// String renders a quantity or unit in text this adapter parses back.
	String(x any) (string, error)

	// Convert re-expresses q in unit. Incompatible dimensions fail with
	// DIMENSION_MISMATCH.
	Convert(q any, unit any) (any, error)

	// Dimension returns the dimension of a quantity or unit.
	Dimension(x any) (dimension.Dimension, error)

	// ToBase expresses q in coherent SI base units.
	ToBase(q any) (Base, error)

	// FromBase builds a quantity from a value in coherent SI base units.
	// It fails with UNSUPPORTED_DIMENSION when the form cannot represent
	// the dimension.
	FromBase(b Base) (any, error)
}

// Composer is implemented by adapters whose backend supports compound unit
// algebra.
type Composer interface {
	// Compose multiplies units raised to integer powers into one unit.
	Compose(factors []UnitPower) (any, error)
}

// UnitPower is a unit of some adapter raised to an integer power.
type UnitPower struct {
	Unit  any
	Power int
}

// Base is a form-independent quantity: a magnitude in coherent SI base units
// together with its dimension.
type Base struct {
	Values    []float64
	Array     bool
	Dimension dimension.Dimension
}

// ScalarBase returns a scalar Base.
func ScalarBase(v float64, d dimension.Dimension) Base {
	return Base{Values: []float64{v}, Dimension: d}
}

// Magnitude returns the magnitude packed like Adapter.Magnitude.
func (b Base) Magnitude() any {
	return Pack(b.Values, b.Array)
}

// Factory creates an adapter.
type Factory func() Adapter
