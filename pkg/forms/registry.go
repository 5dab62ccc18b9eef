package forms

import (
	"sync"

	"github.com/matzehuels/unitwiz/pkg/errors"
	"github.com/matzehuels/unitwiz/pkg/observability"
)

// Registry tracks which forms were found, which are loaded and which one is
// the default.
//
// Discovery runs lazily on first access. Reads are safe for concurrent use;
// mutations (Load, Unload, SetDefault) take a write lock but callers should
// still serialize them, since the default form is shared by every caller.
type Registry struct {
	mu   sync.RWMutex
	once sync.Once

	factories func() map[Form]Factory

	adapters map[Form]Adapter // built by discovery, probe passed
	found    map[Form]bool
	loaded   map[Form]bool
	def      Form
}

// NewRegistry creates a registry over the package catalog. The catalog is
// read at discovery time, so adapters registered after NewRegistry returns
// are still seen.
func NewRegistry() *Registry {
	return &Registry{factories: Factories}
}

// NewRegistryWith creates a registry over an explicit set of factories.
func NewRegistryWith(factories map[Form]Factory) *Registry {
	return &Registry{factories: func() map[Form]Factory { return factories }}
}

func (r *Registry) ensure() {
	r.once.Do(func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		r.discoverLocked()
	})
}

// Discover builds and probes every registered adapter and records which ones
// work. It never fails; the returned map holds the result per form. Loaded
// forms whose probe now fails are unloaded.
func (r *Registry) Discover() map[Form]bool {
	var first map[Form]bool
	r.once.Do(func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		first = r.discoverLocked()
	})
	if first != nil {
		return first
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.discoverLocked()
}

func (r *Registry) discoverLocked() map[Form]bool {
	hooks := observability.Forms()
	factories := r.factories()

	r.adapters = make(map[Form]Adapter, len(factories))
	r.found = make(map[Form]bool, len(factories))
	if r.loaded == nil {
		r.loaded = make(map[Form]bool)
	}

	result := make(map[Form]bool, len(factories))
	for form, factory := range factories {
		a, err := build(form, factory)
		ok := err == nil
		if ok {
			r.adapters[form] = a
			r.found[form] = true
		}
		result[form] = ok
		hooks.OnDiscover(string(form), ok, err)
	}

	for form := range r.loaded {
		if !r.found[form] {
			delete(r.loaded, form)
			hooks.OnUnload(string(form))
		}
	}
	if r.def != "" && !r.loaded[r.def] {
		hooks.OnDefaultChange(string(r.def), "")
		r.def = ""
	}
	return result
}

// build constructs an adapter and probes it, converting panics from the
// backend into errors.
func build(form Form, factory Factory) (a Adapter, err error) {
	defer func() {
		if p := recover(); p != nil {
			a, err = nil, errors.New(errors.ErrCodeLoad, "%s: backend panicked: %v", form, p).WithForm(string(form))
		}
	}()
	if factory == nil {
		return nil, errors.New(errors.ErrCodeLoad, "%s: no factory", form).WithForm(string(form))
	}
	a = factory()
	if a == nil {
		return nil, errors.New(errors.ErrCodeLoad, "%s: factory returned nil", form).WithForm(string(form))
	}
	if err := a.Probe(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeLoad, err, "%s: probe failed", form).WithForm(string(form))
	}
	return a, nil
}

// Load activates a found form. Loading an already loaded form is a no-op.
// It fails with LOAD_ERROR when the backend was not found.
func (r *Registry) Load(form Form) error {
	r.ensure()
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.loadLocked(form)
}

func (r *Registry) loadLocked(form Form) error {
	if !r.found[form] {
		err := errors.New(errors.ErrCodeLoad, "form %q is not available", form).WithForm(string(form))
		observability.Forms().OnLoad(string(form), err)
		return err
	}
	if r.loaded[form] {
		return nil
	}
	r.loaded[form] = true
	observability.Forms().OnLoad(string(form), nil)
	return nil
}

// Unload deactivates a loaded form. If it was the default, the default is
// cleared and picked again on next use. It fails with INVALID_FORM when the
// form is not loaded.
func (r *Registry) Unload(form Form) error {
	r.ensure()
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.loaded[form] {
		return errors.New(errors.ErrCodeInvalidForm, "form %q is not loaded", form).WithForm(string(form))
	}
	delete(r.loaded, form)
	observability.Forms().OnUnload(string(form))
	if r.def == form {
		r.def = ""
		observability.Forms().OnDefaultChange(string(form), "")
	}
	return nil
}

// SetDefault makes form the default. It fails with INVALID_FORM unless the
// form is supported.
func (r *Registry) SetDefault(form Form) error {
	r.ensure()
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.loaded[form] {
		return errors.New(errors.ErrCodeInvalidForm, "form %q is not supported; load it first", form).WithForm(string(form))
	}
	if r.def != form {
		observability.Forms().OnDefaultChange(string(r.def), string(form))
		r.def = form
	}
	return nil
}

// Default returns the default form. When none was set, every found form is
// loaded and the first supported one in priority order becomes the default.
// It fails with LOAD_ERROR when no backend is available.
func (r *Registry) Default() (Form, error) {
	r.ensure()

	r.mu.RLock()
	def := r.def
	r.mu.RUnlock()
	if def != "" {
		return def, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.def != "" {
		return r.def, nil
	}
	for _, form := range sorted(r.found) {
		_ = r.loadLocked(form)
	}
	supported := sorted(r.loaded)
	if len(supported) == 0 {
		return "", errors.New(errors.ErrCodeLoad, "no unit backend available")
	}
	r.def = supported[0]
	observability.Forms().OnDefaultChange("", string(r.def))
	return r.def, nil
}

// HasDefault reports whether a default form is currently set, without
// triggering auto-selection.
func (r *Registry) HasDefault() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.def != ""
}

// Found returns the forms whose backend was found, in priority order.
func (r *Registry) Found() []Form {
	r.ensure()
	r.mu.RLock()
	defer r.mu.RUnlock()
	return sorted(r.found)
}

// Loaded returns the loaded forms, in priority order.
func (r *Registry) Loaded() []Form {
	r.ensure()
	r.mu.RLock()
	defer r.mu.RUnlock()
	return sorted(r.loaded)
}

// Supported returns the loaded forms with a working adapter, in priority
// order. Only forms whose probe passed can be loaded, so this equals Loaded
// until the next Discover.
func (r *Registry) Supported() []Form {
	r.ensure()
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Form, 0, len(r.loaded))
	for form := range r.loaded {
		if r.adapters[form] != nil {
			out = append(out, form)
		}
	}
	sortByPriority(out)
	return out
}

// IsSupported reports whether form is supported.
func (r *Registry) IsSupported(form Form) bool {
	r.ensure()
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.loaded[form] && r.adapters[form] != nil
}

// Adapter returns the adapter of a loaded form. It fails with INVALID_FORM
// when the form is not loaded.
func (r *Registry) Adapter(form Form) (Adapter, error) {
	r.ensure()
	r.mu.RLock()
	defer r.mu.RUnlock()

	if !r.loaded[form] {
		return nil, errors.New(errors.ErrCodeInvalidForm, "form %q is not loaded", form).WithForm(string(form))
	}
	return r.adapters[form], nil
}

// FormOf returns the loaded form that owns x. It fails with TYPE_MISMATCH
// when no loaded adapter recognizes x as a quantity or unit.
func (r *Registry) FormOf(x any) (Form, error) {
	a, err := r.Owner(x)
	if err != nil {
		return "", err
	}
	return a.Form(), nil
}

// Owner returns the adapter of the loaded form that owns x.
func (r *Registry) Owner(x any) (Adapter, error) {
	r.ensure()
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, form := range sorted(r.loaded) {
		a := r.adapters[form]
		if a.IsQuantity(x) || a.IsUnit(x) {
			return a, nil
		}
	}
	return nil, errors.New(errors.ErrCodeTypeMismatch, "%T is not a quantity or unit of any loaded form", x)
}

// Clone returns an independent copy of the registry state. Adapters are
// shared; they hold no mutable state.
func (r *Registry) Clone() *Registry {
	r.ensure()
	r.mu.RLock()
	defer r.mu.RUnlock()

	c := &Registry{
		factories: r.factories,
		adapters:  make(map[Form]Adapter, len(r.adapters)),
		found:     make(map[Form]bool, len(r.found)),
		loaded:    make(map[Form]bool, len(r.loaded)),
		def:       r.def,
	}
	for f, a := range r.adapters {
		c.adapters[f] = a
	}
	for f := range r.found {
		c.found[f] = true
	}
	for f := range r.loaded {
		c.loaded[f] = true
	}
	c.once.Do(func() {})
	return c
}

func sorted(set map[Form]bool) []Form {
	out := make([]Form, 0, len(set))
	for f, ok := range set {
		if ok {
			out = append(out, f)
		}
	}
	sortByPriority(out)
	return out
}
