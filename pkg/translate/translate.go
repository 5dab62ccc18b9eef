// Package translate moves quantities and units between forms.
//
// Translation is hub-and-spoke: the source adapter lowers a value to an
// Intermediate (magnitude in coherent SI base units plus its dimension) and
// the target adapter builds its own value from that. No adapter ever sees
// another adapter's objects, so adding a form needs no pairwise converters.
//
// After the value is rebuilt in target base units, the engine tries to keep
// the source display unit: if the target parses the same unit text to the
// same dimension, the result is converted to it. Otherwise the result stays
// in base units.
package translate

import (
	"time"

	"github.com/matzehuels/unitwiz/pkg/codec"
	"github.com/matzehuels/unitwiz/pkg/errors"
	"github.com/matzehuels/unitwiz/pkg/forms"
	"github.com/matzehuels/unitwiz/pkg/observability"
)

// Unit factors closer than this are treated as the same unit.
const unitTolerance = 1e-12

// Intermediate is the form-independent representation a translation passes
// through.
type Intermediate struct {
	Base forms.Base

	// Expr is the base-unit decomposition as text, e.g. "5 kg m s^-2".
	Expr string
}

// NewIntermediate wraps b and renders its text.
func NewIntermediate(b forms.Base) Intermediate {
	mag := codec.FormatMagnitude(b.Values, b.Array)
	return Intermediate{Base: b, Expr: codec.FormatQuantity(mag, b.Dimension.SIExpression())}
}

// Engine translates between the loaded forms of a registry.
type Engine struct {
	registry *forms.Registry
}

// New creates an engine over r.
func New(r *forms.Registry) *Engine {
	return &Engine{registry: r}
}

// Decompose lowers a quantity or unit to its Intermediate. Units are lowered
// as one of themselves.
func (e *Engine) Decompose(x any) (Intermediate, error) {
	src, err := e.registry.Owner(x)
	if err != nil {
		return Intermediate{}, err
	}
	q := x
	if src.IsUnit(x) {
		if q, err = src.MakeQuantity(1.0, x); err != nil {
			return Intermediate{}, err
		}
	}
	b, err := src.ToBase(q)
	if err != nil {
		return Intermediate{}, err
	}
	return NewIntermediate(b), nil
}

// Translate returns x expressed in the target form. x must be a quantity or
// unit of a loaded form and target must be loaded. Translating to the form x
// already belongs to returns x.
func (e *Engine) Translate(x any, target forms.Form) (any, error) {
	src, err := e.registry.Owner(x)
	if err != nil {
		return nil, err
	}
	dst, err := e.registry.Adapter(target)
	if err != nil {
		return nil, err
	}
	if src.Form() == target {
		return x, nil
	}

	start := time.Now()
	var out any
	if src.IsUnit(x) {
		out, err = translateUnit(src, dst, x)
	} else {
		out, err = translateQuantity(src, dst, x)
	}
	observability.Conversion().OnTranslate(string(src.Form()), string(target), time.Since(start), err)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func translateQuantity(src, dst forms.Adapter, q any) (any, error) {
	b, err := src.ToBase(q)
	if err != nil {
		return nil, err
	}
	out, err := dst.FromBase(b)
	if err != nil {
		return nil, err
	}

	u, err := src.Unit(q)
	if err != nil {
		return nil, err
	}
	if display, ok := equivalentUnit(src, dst, u, b); ok {
		if converted, err := dst.Convert(out, display); err == nil {
			return converted, nil
		}
	}
	return out, nil
}

func translateUnit(src, dst forms.Adapter, u any) (any, error) {
	one, err := src.MakeQuantity(1.0, u)
	if err != nil {
		return nil, err
	}
	b, err := src.ToBase(one)
	if err != nil {
		return nil, err
	}
	if display, ok := equivalentUnit(src, dst, u, b); ok {
		if same, err := sameScale(dst, display, b); err == nil && same {
			return display, nil
		}
	}

	out, err := dst.FromBase(b)
	if err != nil {
		return nil, err
	}
	if !forms.Close(b.Values, []float64{1}, unitTolerance, 0) {
		text, _ := src.String(u)
		return nil, errors.New(errors.ErrCodeUnsupportedUnit,
			"form %s has no unit equivalent to %q", dst.Form(), text).WithForm(string(dst.Form())).WithInput(text)
	}
	return dst.Unit(out)
}

// equivalentUnit parses the source display unit in the target form and
// accepts it when the dimensions agree.
func equivalentUnit(src, dst forms.Adapter, u any, b forms.Base) (any, bool) {
	text, err := src.String(u)
	if err != nil || text == "" {
		return nil, false
	}
	tu, err := dst.ParseUnit(text)
	if err != nil {
		return nil, false
	}
	d, err := dst.Dimension(tu)
	if err != nil || d != b.Dimension {
		return nil, false
	}
	return tu, true
}

// sameScale reports whether one of u has base value b.
func sameScale(a forms.Adapter, u any, b forms.Base) (bool, error) {
	one, err := a.MakeQuantity(1.0, u)
	if err != nil {
		return false, err
	}
	got, err := a.ToBase(one)
	if err != nil {
		return false, err
	}
	return forms.Close(got.Values, b.Values, unitTolerance, 0), nil
}
