// Package wizard is the public entry point of unitwiz.
//
// A [Wizard] bundles a form registry, a translation engine and a standard
// unit table. Code that wants isolation (tests, servers handling requests
// with different settings) creates its own with [New] or [Wizard.Clone];
// everything else uses the package-level functions, which act on a lazily
// created process-wide instance returned by [Default].
//
//	q, err := wizard.ParseQuantity("1.5 kcal")
//	if err != nil {
//	    return err
//	}
//	kj, err := wizard.Convert(q, "kJ")
//
// Quantities and units are backend objects passed as any. They are never
// built by hand: they come from parsing, from MakeQuantity, or from
// converting and translating other values.
package wizard

import (
	"github.com/matzehuels/unitwiz/pkg/dimension"
	"github.com/matzehuels/unitwiz/pkg/errors"
	"github.com/matzehuels/unitwiz/pkg/forms"
	"github.com/matzehuels/unitwiz/pkg/standard"
	"github.com/matzehuels/unitwiz/pkg/translate"
)

// Wizard is an independent unitwiz context.
type Wizard struct {
	registry   *forms.Registry
	translator *translate.Engine
	standards  *standard.Service
}

// Option configures a Wizard created by New.
type Option func(*settings)

type settings struct {
	factories map[forms.Form]forms.Factory
}

// WithFactories restricts the wizard to the given adapter factories instead
// of the package catalog.
func WithFactories(factories map[forms.Form]forms.Factory) Option {
	return func(s *settings) { s.factories = factories }
}

// New creates a wizard. Forms are discovered on first use.
func New(opts ...Option) *Wizard {
	var s settings
	for _, opt := range opts {
		opt(&s)
	}
	r := forms.NewRegistry()
	if s.factories != nil {
		r = forms.NewRegistryWith(s.factories)
	}
	return newWizard(r, nil)
}

func newWizard(r *forms.Registry, standards *standard.Service) *Wizard {
	if standards == nil {
		standards = standard.New(r)
	}
	return &Wizard{
		registry:   r,
		translator: translate.New(r),
		standards:  standards,
	}
}

// Clone returns an independent copy of w. Changing forms or standard units
// on the copy leaves w untouched.
func (w *Wizard) Clone() *Wizard {
	r := w.registry.Clone()
	return newWizard(r, w.standards.Clone(r))
}

// Registry exposes the form registry of w.
func (w *Wizard) Registry() *forms.Registry { return w.registry }

// CallOption adjusts a single call.
type CallOption func(*call)

type call struct {
	form forms.Form
}

// InForm makes a call use form instead of the default form.
func InForm(form forms.Form) CallOption {
	return func(c *call) { c.form = form }
}

func (w *Wizard) target(opts []CallOption) (forms.Adapter, error) {
	var c call
	for _, opt := range opts {
		opt(&c)
	}
	if c.form == "" {
		f, err := w.registry.Default()
		if err != nil {
			return nil, err
		}
		c.form = f
	}
	return w.registry.Adapter(c.form)
}

// DiscoverForms probes every known backend and reports which were found.
func (w *Wizard) DiscoverForms() map[forms.Form]bool {
	return w.registry.Discover()
}

// LoadForm activates a found form.
func (w *Wizard) LoadForm(form forms.Form) error {
	return w.registry.Load(form)
}

// UnloadForm deactivates a form and drops its standard units.
func (w *Wizard) UnloadForm(form forms.Form) error {
	if err := w.registry.Unload(form); err != nil {
		return err
	}
	w.standards.Reset(form)
	return nil
}

// SetDefaultForm makes form the default. The form must be loaded.
func (w *Wizard) SetDefaultForm(form forms.Form) error {
	return w.registry.SetDefault(form)
}

// GetDefaultForm returns the default form, picking one if none was set.
func (w *Wizard) GetDefaultForm() (forms.Form, error) {
	return w.registry.Default()
}

// ListFound returns the forms whose backend passed its probe.
func (w *Wizard) ListFound() []forms.Form { return w.registry.Found() }

// ListLoaded returns the loaded forms.
func (w *Wizard) ListLoaded() []forms.Form { return w.registry.Loaded() }

// ListSupported returns the loaded forms that can serve operations.
func (w *Wizard) ListSupported() []forms.Form { return w.registry.Supported() }

// GetForm returns the form owning a quantity or unit.
func (w *Wizard) GetForm(x any) (forms.Form, error) {
	return w.registry.FormOf(x)
}

// Dimensionality returns the dimension of a quantity or unit.
func (w *Wizard) Dimensionality(x any) (dimension.Dimension, error) {
	return w.standards.Dimensionality(x)
}

// IsDimensionless reports whether x has no dimension.
func (w *Wizard) IsDimensionless(x any) (bool, error) {
	d, err := w.standards.Dimensionality(x)
	if err != nil {
		return false, err
	}
	return d.IsDimensionless(), nil
}

// GetStandardUnit returns the standard unit of d in the default form, or in
// the form selected with InForm.
func (w *Wizard) GetStandardUnit(d dimension.Dimension, opts ...CallOption) (any, error) {
	a, err := w.target(opts)
	if err != nil {
		return nil, err
	}
	return w.standards.StandardUnit(d, a.Form())
}

// SetStandardUnit makes u the standard unit of d in u's form. u may also be
// unit text, parsed in the default form.
func (w *Wizard) SetStandardUnit(d dimension.Dimension, u any) error {
	if text, ok := u.(string); ok {
		parsed, err := w.ParseUnit(text)
		if err != nil {
			return err
		}
		u = parsed
	}
	return w.standards.SetStandardUnit(d, u)
}

// Standardize converts q to the standard unit of its dimension, keeping its
// form.
func (w *Wizard) Standardize(q any) (any, error) {
	return w.standards.Standardize(q)
}

// Standards returns the standard units currently set or derived for form.
func (w *Wizard) Standards(form forms.Form) map[dimension.Dimension]any {
	return w.standards.Standards(form)
}

// AreCompatible reports whether a and b have the same dimension.
func (w *Wizard) AreCompatible(a, b any) (bool, error) {
	return w.standards.AreCompatible(a, b)
}

// Translate expresses x in another form.
func (w *Wizard) Translate(x any, form forms.Form) (any, error) {
	return w.translator.Translate(x, form)
}

// Decompose returns the form-independent intermediate of x.
func (w *Wizard) Decompose(x any) (translate.Intermediate, error) {
	return w.translator.Decompose(x)
}

// ToString renders a quantity or unit in text its form parses back.
func (w *Wizard) ToString(x any) (string, error) {
	a, err := w.registry.Owner(x)
	if err != nil {
		return "", err
	}
	return a.String(x)
}

// IsQuantity reports whether x is a quantity of a loaded form.
func (w *Wizard) IsQuantity(x any) bool {
	a, err := w.registry.Owner(x)
	return err == nil && a.IsQuantity(x)
}

// IsUnit reports whether x is a unit of a loaded form.
func (w *Wizard) IsUnit(x any) bool {
	a, err := w.registry.Owner(x)
	return err == nil && a.IsUnit(x)
}

func (w *Wizard) quantityOwner(q any) (forms.Adapter, error) {
	a, err := w.registry.Owner(q)
	if err != nil {
		return nil, err
	}
	if !a.IsQuantity(q) {
		return nil, errors.New(errors.ErrCodeTypeMismatch, "%T is not a quantity", q).WithForm(string(a.Form()))
	}
	return a, nil
}
