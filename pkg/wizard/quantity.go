package wizard

import (
	"github.com/matzehuels/unitwiz/pkg/errors"
	"github.com/matzehuels/unitwiz/pkg/forms"
)

// ParseQuantity parses text such as "1.5 kcal" in the default form, or in
// the form selected with InForm.
func (w *Wizard) ParseQuantity(text string, opts ...CallOption) (any, error) {
	a, err := w.target(opts)
	if err != nil {
		return nil, err
	}
	if err := validate(a, text); err != nil {
		return nil, err
	}
	return a.ParseQuantity(text)
}

// ParseUnit parses unit text such as "kJ" in the default form, or in the
// form selected with InForm.
func (w *Wizard) ParseUnit(text string, opts ...CallOption) (any, error) {
	a, err := w.target(opts)
	if err != nil {
		return nil, err
	}
	if err := validate(a, text); err != nil {
		return nil, err
	}
	return a.ParseUnit(text)
}

// validate rejects empty, oversized or control-character text as a
// PARSE_ERROR of form a.
func validate(a forms.Adapter, text string) error {
	if err := errors.ValidateExpression(text); err != nil {
		return errors.Parse(string(a.Form()), text, err)
	}
	return nil
}

// MakeQuantity pairs a magnitude with a unit. Unit text is parsed in the
// default form or the one selected with InForm. A unit object keeps its own
// form unless InForm names another one, in which case it is translated
// first.
func (w *Wizard) MakeQuantity(magnitude any, u any, opts ...CallOption) (any, error) {
	if s, ok := u.(string); ok {
		a, err := w.target(opts)
		if err != nil {
			return nil, err
		}
		if err := validate(a, s); err != nil {
			return nil, err
		}
		return a.MakeQuantity(magnitude, u)
	}

	a, err := w.registry.Owner(u)
	if err != nil {
		return nil, err
	}
	if len(opts) > 0 {
		dst, err := w.target(opts)
		if err != nil {
			return nil, err
		}
		if dst.Form() != a.Form() {
			if u, err = w.translator.Translate(u, dst.Form()); err != nil {
				return nil, err
			}
			a = dst
		}
	}
	return a.MakeQuantity(magnitude, u)
}

// Convert re-expresses x. The target decides what happens:
//
//   - a forms.Form translates x to that form;
//   - unit text converts x to that unit within x's form;
//   - a unit object converts x to that unit, translating the unit into x's
//     form first when they differ.
func (w *Wizard) Convert(x any, to any) (any, error) {
	if form, ok := to.(forms.Form); ok {
		return w.translator.Translate(x, form)
	}
	a, err := w.quantityOwner(x)
	if err != nil {
		return nil, err
	}
	switch u := to.(type) {
	case string:
		if err := validate(a, u); err != nil {
			return nil, err
		}
		return a.Convert(x, u)
	default:
		uf, err := w.registry.FormOf(u)
		if err != nil {
			return nil, err
		}
		if uf != a.Form() {
			if to, err = w.translator.Translate(u, a.Form()); err != nil {
				return nil, err
			}
		}
		return a.Convert(x, to)
	}
}

// GetMagnitude returns the magnitude of q as float64 or []float64.
func (w *Wizard) GetMagnitude(q any) (any, error) {
	a, err := w.quantityOwner(q)
	if err != nil {
		return nil, err
	}
	return a.Magnitude(q)
}

// GetMagnitudeIn returns the magnitude of q expressed in u.
func (w *Wizard) GetMagnitudeIn(q any, u any) (any, error) {
	c, err := w.Convert(q, u)
	if err != nil {
		return nil, err
	}
	return w.GetMagnitude(c)
}

// GetUnit returns the unit of q.
func (w *Wizard) GetUnit(q any) (any, error) {
	a, err := w.quantityOwner(q)
	if err != nil {
		return nil, err
	}
	return a.Unit(q)
}

// GetMagnitudeAndUnit returns both parts of q.
func (w *Wizard) GetMagnitudeAndUnit(q any) (any, any, error) {
	a, err := w.quantityOwner(q)
	if err != nil {
		return nil, nil, err
	}
	mag, err := a.Magnitude(q)
	if err != nil {
		return nil, nil, err
	}
	u, err := a.Unit(q)
	if err != nil {
		return nil, nil, err
	}
	return mag, u, nil
}

// ChangeMagnitude returns a quantity with q's unit and a new magnitude.
func (w *Wizard) ChangeMagnitude(q any, magnitude any) (any, error) {
	a, err := w.quantityOwner(q)
	if err != nil {
		return nil, err
	}
	u, err := a.Unit(q)
	if err != nil {
		return nil, err
	}
	return a.MakeQuantity(magnitude, u)
}
