// Package standard implements dimensionality queries and standardization.
//
// Every form has a table of standard units keyed by dimension. A dimension
// without an entry falls back to a unit the form derives itself. Derived
// units are cached until a standard unit of the same form is set:
//
//   - on forms with compound unit algebra (forms.Composer), a compound
//     dimension becomes the product of the standard units of its bases, so
//     setting length to nm and time to ps makes velocity nm ps^-1;
//   - otherwise the coherent SI unit the form builds for the dimension.
package standard

import (
	"sync"

	"github.com/matzehuels/unitwiz/pkg/dimension"
	"github.com/matzehuels/unitwiz/pkg/errors"
	"github.com/matzehuels/unitwiz/pkg/forms"
)

// Service answers dimension questions and owns the standard unit table.
type Service struct {
	registry *forms.Registry

	mu      sync.RWMutex
	table   map[forms.Form]map[dimension.Dimension]any // set explicitly
	derived map[forms.Form]map[dimension.Dimension]any
}

// New creates a service over r with an empty standard unit table.
func New(r *forms.Registry) *Service {
	return &Service{
		registry: r,
		table:    make(map[forms.Form]map[dimension.Dimension]any),
		derived:  make(map[forms.Form]map[dimension.Dimension]any),
	}
}

// Dimensionality returns the dimension of a quantity or unit of any loaded
// form.
func (s *Service) Dimensionality(x any) (dimension.Dimension, error) {
	a, err := s.registry.Owner(x)
	if err != nil {
		return dimension.Dimensionless, err
	}
	return a.Dimension(x)
}

// AreCompatible reports whether a and b have the same dimension. They may
// belong to different forms.
func (s *Service) AreCompatible(a, b any) (bool, error) {
	da, err := s.Dimensionality(a)
	if err != nil {
		return false, err
	}
	db, err := s.Dimensionality(b)
	if err != nil {
		return false, err
	}
	return da == db, nil
}

// StandardUnit returns the standard unit of d in form.
func (s *Service) StandardUnit(d dimension.Dimension, form forms.Form) (any, error) {
	if u, ok := s.lookup(form, d); ok {
		return u, nil
	}
	a, err := s.registry.Adapter(form)
	if err != nil {
		return nil, err
	}
	u, err := s.derive(a, d)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if existing, ok := s.lookupLocked(form, d); ok {
		return existing, nil
	}
	store(s.derived, form, d, u)
	return u, nil
}

func (s *Service) lookup(form forms.Form, d dimension.Dimension) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lookupLocked(form, d)
}

func (s *Service) lookupLocked(form forms.Form, d dimension.Dimension) (any, bool) {
	if u, ok := s.table[form][d]; ok {
		return u, true
	}
	u, ok := s.derived[form][d]
	return u, ok
}

func (s *Service) derive(a forms.Adapter, d dimension.Dimension) (any, error) {
	if c, ok := a.(forms.Composer); ok {
		if _, isBase := d.IsBase(); !isBase && !d.IsDimensionless() {
			comps := d.Components()
			factors := make([]forms.UnitPower, 0, len(comps))
			for _, comp := range comps {
				u, err := s.StandardUnit(dimension.Of(comp.Base, 1), a.Form())
				if err != nil {
					return nil, err
				}
				factors = append(factors, forms.UnitPower{Unit: u, Power: comp.Power})
			}
			return c.Compose(factors)
		}
	}
	q, err := a.FromBase(forms.ScalarBase(1, d))
	if err != nil {
		return nil, err
	}
	return a.Unit(q)
}

// SetStandardUnit installs u as the standard unit of d in u's own form and
// drops the form's derived units, so compound dimensions pick up the new
// base. It fails with DIMENSION_MISMATCH when u does not have dimension d.
func (s *Service) SetStandardUnit(d dimension.Dimension, u any) error {
	a, err := s.registry.Owner(u)
	if err != nil {
		return err
	}
	if !a.IsUnit(u) {
		return errors.New(errors.ErrCodeTypeMismatch, "%T is not a unit", u).WithForm(string(a.Form()))
	}
	got, err := a.Dimension(u)
	if err != nil {
		return err
	}
	if got != d {
		return errors.New(errors.ErrCodeDimensionMismatch, "unit has dimension %s, want %s", got, d).WithForm(string(a.Form()))
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	store(s.table, a.Form(), d, u)
	delete(s.derived, a.Form())
	return nil
}

func store(m map[forms.Form]map[dimension.Dimension]any, form forms.Form, d dimension.Dimension, u any) {
	t, ok := m[form]
	if !ok {
		t = make(map[dimension.Dimension]any)
		m[form] = t
	}
	t[d] = u
}

// Standardize converts q to the standard unit of its dimension in its own
// form. A unit standardizes to the standard unit of its dimension.
func (s *Service) Standardize(q any) (any, error) {
	a, err := s.registry.Owner(q)
	if err != nil {
		return nil, err
	}
	d, err := a.Dimension(q)
	if err != nil {
		return nil, err
	}
	u, err := s.StandardUnit(d, a.Form())
	if err != nil {
		return nil, err
	}
	if a.IsUnit(q) {
		return u, nil
	}
	return a.Convert(q, u)
}

// Standards returns a copy of the standard units of one form known so far,
// set or derived.
func (s *Service) Standards(form forms.Form) map[dimension.Dimension]any {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[dimension.Dimension]any, len(s.table[form])+len(s.derived[form]))
	for d, u := range s.derived[form] {
		out[d] = u
	}
	for d, u := range s.table[form] {
		out[d] = u
	}
	return out
}

// Reset drops the table of one form.
func (s *Service) Reset(form forms.Form) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.table, form)
	delete(s.derived, form)
}

// Clone returns a copy of the service bound to r. Units are immutable and
// shared.
func (s *Service) Clone(r *forms.Registry) *Service {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c := New(r)
	copyTables(c.table, s.table)
	copyTables(c.derived, s.derived)
	return c
}

func copyTables(dst, src map[forms.Form]map[dimension.Dimension]any) {
	for form, t := range src {
		ct := make(map[dimension.Dimension]any, len(t))
		for d, u := range t {
			ct[d] = u
		}
		dst[form] = ct
	}
}
