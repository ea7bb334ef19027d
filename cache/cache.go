// Package cache provides a thread-safe LRU cache of per-file analysis
// results, keyed by content hash, so identical inputs in a multi-file run are
// analyzed once.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"sync"

	"github.com/golang/groupcache/lru"

	"github.com/TFMV/cyclo/types"
)

// ResultCache caches the complexity records computed for a source blob.
type ResultCache struct {
	mu    sync.RWMutex
	cache *lru.Cache
}

// NewResultCache creates a ResultCache holding up to size entries.
func NewResultCache(size int) *ResultCache {
	return &ResultCache{
		cache: lru.New(size),
	}
}

// Key derives the cache key for a source blob.
func Key(src []byte) string {
	sum := sha256.Sum256(src)
	return hex.EncodeToString(sum[:])
}

// Get returns the cached records for key, if present.
func (c *ResultCache) Get(key string) ([]types.FunctionComplexity, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if val, ok := c.cache.Get(key); ok {
		return val.([]types.FunctionComplexity), true
	}
	return nil, false
}

// Put stores the records for key.
func (c *ResultCache) Put(key string, records []types.FunctionComplexity) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cache.Add(key, records)
}

// Clear empties the cache.
func (c *ResultCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cache.Clear()
}
