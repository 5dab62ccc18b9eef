package forms

import "sync"

// catalog holds the adapter factories compiled into the binary.
var (
	catalogMu sync.RWMutex
	catalog   = make(map[Form]Factory)
)

// Register adds an adapter factory to the catalog.
// This is typically called from init() functions in adapter packages.
// If a form with the same name is already registered, it is replaced.
func Register(form Form, factory Factory) {
	catalogMu.Lock()
	defer catalogMu.Unlock()
	catalog[form] = factory
}

// Unregister removes a form from the catalog.
// This is useful for testing.
func Unregister(form Form) {
	catalogMu.Lock()
	defer catalogMu.Unlock()
	delete(catalog, form)
}

// Known returns the registered forms in priority order.
func Known() []Form {
	catalogMu.RLock()
	defer catalogMu.RUnlock()

	out := make([]Form, 0, len(catalog))
	for f := range catalog {
		out = append(out, f)
	}
	sortByPriority(out)
	return out
}

// Factories returns a copy of the catalog.
func Factories() map[Form]Factory {
	catalogMu.RLock()
	defer catalogMu.RUnlock()

	out := make(map[Form]Factory, len(catalog))
	for f, fn := range catalog {
		out[f] = fn
	}
	return out
}
