package page

import (
	"sync"

	"colorbook/internal/raster"
)

// Cache is a concurrency-safe cache of decoded pages keyed by source
// (file path or data URI). Cached buffers are shared: clone before painting.
type Cache struct {
	mu    sync.RWMutex
	items map[string]*cacheEntry
	open  func(string) (*raster.Buffer, error)
}

type cacheEntry struct {
	buf *raster.Buffer
	err error
}

// NewCache creates an empty page cache.
func NewCache() *Cache {
	return &Cache{
		items: make(map[string]*cacheEntry),
		open:  Open,
	}
}

// Get decodes src once and returns the shared buffer. Decode failures are
// cached too so a broken page is not re-read by every job that names it.
func (c *Cache) Get(src string) (*raster.Buffer, error) {
	// Fast path: read lock
	c.mu.RLock()
	if entry, exists := c.items[src]; exists {
		c.mu.RUnlock()
		return entry.buf, entry.err
	}
	c.mu.RUnlock()

	// Slow path: decode
	buf, err := c.open(src)

	// Write lock with double-check
	c.mu.Lock()
	defer c.mu.Unlock()
	if entry, exists := c.items[src]; exists {
		return entry.buf, entry.err
	}
	c.items[src] = &cacheEntry{buf: buf, err: err}
	return buf, err
}

// Len returns the number of cached sources.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}
