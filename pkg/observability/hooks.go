// Package observability provides hooks for logging and metrics.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers can register hooks at startup
// to receive events about form discovery, parsing, conversion and translation.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// Libraries never log on their own. The unitwiz CLI installs hooks that
// forward events to its logger at debug level.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetFormHooks(&myFormHooks{})
//	    observability.SetConversionHooks(&myConversionHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	start := time.Now()
//	q, err := adapter.ParseQuantity(text)
//	observability.Conversion().OnParse(form, text, time.Since(start), err)
package observability

import (
	"sync"
	"time"
)

// =============================================================================
// Form Hooks
// =============================================================================

// FormHooks receives events from the form registry.
type FormHooks interface {
	// OnDiscover records the probe result of one form during discovery.
	OnDiscover(form string, found bool, err error)

	// OnLoad records an explicit or automatic load.
	OnLoad(form string, err error)

	// OnUnload records an unload.
	OnUnload(form string)

	// OnDefaultChange records a change of the default form. from is empty
	// when no default was set.
	OnDefaultChange(from, to string)
}

// =============================================================================
// Conversion Hooks
// =============================================================================

// ConversionHooks receives events from parsing, conversion and translation.
type ConversionHooks interface {
	// OnParse records parsing text under a form.
	OnParse(form, text string, duration time.Duration, err error)

	// OnConvert records a same-form unit conversion.
	OnConvert(form, from, to string, duration time.Duration, err error)

	// OnTranslate records a cross-form translation.
	OnTranslate(from, to string, duration time.Duration, err error)
}

// =============================================================================
// Cache Hooks
// =============================================================================

// CacheHooks receives events from the expression cache.
type CacheHooks interface {
	// OnCacheHit records a cache hit.
	OnCacheHit(keyType string)

	// OnCacheMiss records a cache miss.
	OnCacheMiss(keyType string)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopFormHooks is a no-op implementation of FormHooks.
type NoopFormHooks struct{}

func (NoopFormHooks) OnDiscover(string, bool, error) {}
func (NoopFormHooks) OnLoad(string, error)           {}
func (NoopFormHooks) OnUnload(string)                {}
func (NoopFormHooks) OnDefaultChange(string, string) {}

// NoopConversionHooks is a no-op implementation of ConversionHooks.
type NoopConversionHooks struct{}

func (NoopConversionHooks) OnParse(string, string, time.Duration, error)           {}
func (NoopConversionHooks) OnConvert(string, string, string, time.Duration, error) {}
func (NoopConversionHooks) OnTranslate(string, string, time.Duration, error)       {}

// NoopCacheHooks is a no-op implementation of CacheHooks.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(string)  {}
func (NoopCacheHooks) OnCacheMiss(string) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	formHooks       FormHooks       = NoopFormHooks{}
	conversionHooks ConversionHooks = NoopConversionHooks{}
	cacheHooks      CacheHooks      = NoopCacheHooks{}
	hooksMu         sync.RWMutex
)

// SetFormHooks registers custom form registry hooks.
// This should be called once at application startup before any registry operations.
func SetFormHooks(h FormHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		formHooks = h
	}
}

// SetConversionHooks registers custom conversion hooks.
func SetConversionHooks(h ConversionHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		conversionHooks = h
	}
}

// SetCacheHooks registers custom cache hooks.
func SetCacheHooks(h CacheHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		cacheHooks = h
	}
}

// Forms returns the registered form hooks.
func Forms() FormHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return formHooks
}

// Conversion returns the registered conversion hooks.
func Conversion() ConversionHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return conversionHooks
}

// Cache returns the registered cache hooks.
func Cache() CacheHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return cacheHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	formHooks = NoopFormHooks{}
	conversionHooks = NoopConversionHooks{}
	cacheHooks = NoopCacheHooks{}
}
