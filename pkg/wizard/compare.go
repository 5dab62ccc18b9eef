package wizard

import (
	"github.com/matzehuels/unitwiz/pkg/dimension"
	"github.com/matzehuels/unitwiz/pkg/forms"
)

// Default tolerances for AreClose.
const (
	DefaultRTol = 1e-5
	DefaultATol = 1e-8
)

// unitTolerance bounds the relative difference of two units called equal.
const unitTolerance = 1e-12

// AreEqual reports whether a and b are the same quantity or the same unit.
// Quantities are compared after expressing b in a's unit; their magnitudes
// must match exactly. Units match when one of each has the same base value.
// Values of different dimensions, or a quantity against a unit, are never
// equal.
func (w *Wizard) AreEqual(a, b any) (bool, error) {
	compatible, err := w.AreCompatible(a, b)
	if err != nil || !compatible {
		return false, err
	}
	switch {
	case w.IsQuantity(a) && w.IsQuantity(b):
		va, vb, err := w.aligned(a, b)
		if err != nil {
			return false, err
		}
		return forms.Equal(va, vb), nil
	case w.IsUnit(a) && w.IsUnit(b):
		ba, err := w.unitBase(a)
		if err != nil {
			return false, err
		}
		bb, err := w.unitBase(b)
		if err != nil {
			return false, err
		}
		return forms.Close(ba, bb, unitTolerance, 0), nil
	}
	return false, nil
}

// AreClose reports whether quantities a and b agree within
// |a - b| <= atol + rtol*|b| after expressing b in a's unit, element-wise
// for arrays. Quantities of different dimensions are not close.
func (w *Wizard) AreClose(a, b any, rtol, atol float64) (bool, error) {
	compatible, err := w.AreCompatible(a, b)
	if err != nil || !compatible {
		return false, err
	}
	va, vb, err := w.aligned(a, b)
	if err != nil {
		return false, err
	}
	return forms.Close(va, vb, rtol, atol), nil
}

// aligned returns the magnitudes of a and b, with b translated to a's form
// and converted to a's unit.
func (w *Wizard) aligned(a, b any) ([]float64, []float64, error) {
	aa, err := w.quantityOwner(a)
	if err != nil {
		return nil, nil, err
	}
	ba, err := w.quantityOwner(b)
	if err != nil {
		return nil, nil, err
	}
	if ba.Form() != aa.Form() {
		if b, err = w.translator.Translate(b, aa.Form()); err != nil {
			return nil, nil, err
		}
	}
	u, err := aa.Unit(a)
	if err != nil {
		return nil, nil, err
	}
	if b, err = aa.Convert(b, u); err != nil {
		return nil, nil, err
	}
	va, err := magnitudes(aa, a)
	if err != nil {
		return nil, nil, err
	}
	vb, err := magnitudes(aa, b)
	if err != nil {
		return nil, nil, err
	}
	return va, vb, nil
}

func magnitudes(a forms.Adapter, q any) ([]float64, error) {
	m, err := a.Magnitude(q)
	if err != nil {
		return nil, err
	}
	values, _, err := forms.Magnitudes(m)
	return values, err
}

func (w *Wizard) unitBase(u any) ([]float64, error) {
	a, err := w.registry.Owner(u)
	if err != nil {
		return nil, err
	}
	one, err := a.MakeQuantity(1.0, u)
	if err != nil {
		return nil, err
	}
	b, err := a.ToBase(one)
	if err != nil {
		return nil, err
	}
	return b.Values, nil
}

// Requirement lists properties Check tests. Zero fields are not checked.
type Requirement struct {
	// Dimension the value must have.
	Dimension *dimension.Dimension

	// Unit the value must be in (or be): unit text, parsed in the value's
	// form, or a unit object of any form.
	Unit any

	// Form the value must belong to.
	Form forms.Form

	// Array requires an array magnitude when true and a scalar when false.
	// Ignored for units.
	Array *bool

	// Len is the required number of magnitude elements. Ignored for units.
	Len int
}

// Check reports whether x is a quantity or unit meeting every requirement.
// Anything that is neither fails the check.
func (w *Wizard) Check(x any, req Requirement) bool {
	a, err := w.registry.Owner(x)
	if err != nil {
		return false
	}
	if req.Form != "" && a.Form() != req.Form {
		return false
	}
	if req.Dimension != nil {
		d, err := a.Dimension(x)
		if err != nil || d != *req.Dimension {
			return false
		}
	}

	isQuantity := a.IsQuantity(x)
	if req.Unit != nil {
		u := x
		if isQuantity {
			if u, err = a.Unit(x); err != nil {
				return false
			}
		}
		want := req.Unit
		if text, ok := want.(string); ok {
			if want, err = a.ParseUnit(text); err != nil {
				return false
			}
		}
		if equal, err := w.AreEqual(u, want); err != nil || !equal {
			return false
		}
	}

	if isQuantity && (req.Array != nil || req.Len > 0) {
		m, err := a.Magnitude(x)
		if err != nil {
			return false
		}
		values, array, err := forms.Magnitudes(m)
		if err != nil {
			return false
		}
		if req.Array != nil && array != *req.Array {
			return false
		}
		if req.Len > 0 && len(values) != req.Len {
			return false
		}
	}
	return true
}
