package observability

import (
	"errors"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	// Form hooks
	f := NoopFormHooks{}
	f.OnDiscover("gonum", true, nil)
	f.OnLoad("gounits", errors.New("probe failed"))
	f.OnUnload("lindhe")
	f.OnDefaultChange("", "gonum")

	// Conversion hooks
	c := NoopConversionHooks{}
	c.OnParse("gonum", "10 m", time.Millisecond, nil)
	c.OnConvert("gonum", "kcal", "kJ", time.Millisecond, nil)
	c.OnTranslate("gonum", "gounits", time.Millisecond, nil)

	// Cache hooks
	k := NoopCacheHooks{}
	k.OnCacheHit("expression")
	k.OnCacheMiss("expression")
}

func TestGlobalHooksRegistry(t *testing.T) {
	// Reset to known state
	Reset()

	// Verify defaults are noop
	if _, ok := Forms().(NoopFormHooks); !ok {
		t.Error("Forms() should return NoopFormHooks by default")
	}
	if _, ok := Conversion().(NoopConversionHooks); !ok {
		t.Error("Conversion() should return NoopConversionHooks by default")
	}
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Error("Cache() should return NoopCacheHooks by default")
	}

	// Set custom hooks
	customForms := &testFormHooks{}
	SetFormHooks(customForms)
	if Forms() != customForms {
		t.Error("SetFormHooks should set custom hooks")
	}

	customConversion := &testConversionHooks{}
	SetConversionHooks(customConversion)
	if Conversion() != customConversion {
		t.Error("SetConversionHooks should set custom hooks")
	}

	customCache := &testCacheHooks{}
	SetCacheHooks(customCache)
	if Cache() != customCache {
		t.Error("SetCacheHooks should set custom hooks")
	}

	// Reset and verify
	Reset()
	if _, ok := Forms().(NoopFormHooks); !ok {
		t.Error("Reset() should restore NoopFormHooks")
	}
	if _, ok := Conversion().(NoopConversionHooks); !ok {
		t.Error("Reset() should restore NoopConversionHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()

	custom := &testConversionHooks{}
	SetConversionHooks(custom)

	// Setting nil should be ignored
	SetConversionHooks(nil)

	if Conversion() != custom {
		t.Error("SetConversionHooks(nil) should be ignored")
	}

	Reset()
}

// Test implementations
type testFormHooks struct{ NoopFormHooks }
type testConversionHooks struct{ NoopConversionHooks }
type testCacheHooks struct{ NoopCacheHooks }
