package codec

import (
	"sync"

	"github.com/matzehuels/unitwiz/pkg/observability"
)

// Cache memoizes parsed expressions keyed by their input text.
// Cached expressions are shared and must be treated as read-only.
type Cache interface {
	// Get returns the cached expression for text, if present.
	Get(text string) (*Expression, bool)

	// Put stores expr under text.
	Put(text string, expr *Expression)

	// Len returns the number of cached entries.
	Len() int
}

// DefaultCacheSize is the entry limit used by NewMemoryCache when size <= 0.
const DefaultCacheSize = 1024

// MemoryCache is an in-process Cache bounded by entry count. When full, the
// whole cache is dropped and refilled on demand.
type MemoryCache struct {
	mu      sync.RWMutex
	entries map[string]*Expression
	size    int
}

// NewMemoryCache creates a cache holding at most size entries.
func NewMemoryCache(size int) *MemoryCache {
	if size <= 0 {
		size = DefaultCacheSize
	}
	return &MemoryCache{entries: make(map[string]*Expression), size: size}
}

// Get returns the cached expression for text.
func (c *MemoryCache) Get(text string) (*Expression, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.entries[text]
	return e, ok
}

// Put stores expr under text.
func (c *MemoryCache) Put(text string, expr *Expression) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.entries) >= c.size {
		c.entries = make(map[string]*Expression)
	}
	c.entries[text] = expr
}

// Len returns the number of cached entries.
func (c *MemoryCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// NullCache is a no-op cache that never stores anything.
type NullCache struct{}

// Get always returns a cache miss.
func (NullCache) Get(string) (*Expression, bool) { return nil, false }

// Put does nothing.
func (NullCache) Put(string, *Expression) {}

// Len always returns 0.
func (NullCache) Len() int { return 0 }

// Ensure implementations satisfy Cache.
var (
	_ Cache = (*MemoryCache)(nil)
	_ Cache = NullCache{}
)

// Cached parses text through cache.
func Cached(cache Cache, text string) (*Expression, error) {
	if cache == nil {
		return Parse(text)
	}
	if e, ok := cache.Get(text); ok {
		observability.Cache().OnCacheHit("expression")
		return e, nil
	}
	observability.Cache().OnCacheMiss("expression")
	e, err := Parse(text)
	if err != nil {
		return nil, err
	}
	cache.Put(text, e)
	return e, nil
}
