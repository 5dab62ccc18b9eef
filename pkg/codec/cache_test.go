package codec

import "testing"

func TestMemoryCache(t *testing.T) {
	c := NewMemoryCache(2)

	if _, hit := c.Get("10 m"); hit {
		t.Error("empty cache should miss")
	}

	e1, err := Cached(c, "10 m")
	if err != nil {
		t.Fatalf("Cached error: %v", err)
	}
	e2, err := Cached(c, "10 m")
	if err != nil {
		t.Fatalf("Cached error: %v", err)
	}
	if e1 != e2 {
		t.Error("second lookup should return the cached expression")
	}
	if c.Len() != 1 {
		t.Errorf("Len() = %d, want 1", c.Len())
	}

	// Filling past the limit resets the cache.
	Cached(c, "2 s")
	Cached(c, "3 kg")
	if c.Len() != 1 {
		t.Errorf("Len() after overflow = %d, want 1", c.Len())
	}
}

func TestMemoryCacheSkipsErrors(t *testing.T) {
	c := NewMemoryCache(0)
	if _, err := Cached(c, "10 m^"); err == nil {
		t.Fatal("expected parse error")
	}
	if c.Len() != 0 {
		t.Errorf("Len() = %d, want 0", c.Len())
	}
}

func TestNullCache(t *testing.T) {
	var c NullCache
	if _, err := Cached(c, "10 m"); err != nil {
		t.Fatalf("Cached error: %v", err)
	}
	if _, hit := c.Get("10 m"); hit {
		t.Error("NullCache should not store data")
	}
	if c.Len() != 0 {
		t.Errorf("Len() = %d, want 0", c.Len())
	}
}

func TestCachedNil(t *testing.T) {
	if _, err := Cached(nil, "1 J"); err != nil {
		t.Errorf("Cached(nil) error: %v", err)
	}
}
