package api

import "sync"

type cacheEntry struct {
	resource Resource
	body     []byte
}

// tagCache stores raw response bodies keyed by request, each tagged with its
// resource. Invalidation drops every entry sharing a tag, which forces the
// next read on that resource back to the network.
type tagCache struct {
	mu      sync.Mutex
	entries map[string]cacheEntry
}

func newTagCache() *tagCache {
	return &tagCache{entries: map[string]cacheEntry{}}
}

func (c *tagCache) Get(key string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	entry, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	return entry.body, true
}

func (c *tagCache) Put(key string, resource Resource, body []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	copied := make([]byte, len(body))
	copy(copied, body)
	c.entries[key] = cacheEntry{resource: resource, body: copied}
}

// Invalidate removes every entry tagged with the resource and reports how
// many were dropped.
func (c *tagCache) Invalidate(resource Resource) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	dropped := 0
	for key, entry := range c.entries {
		if entry.resource == resource {
			delete(c.entries, key)
			dropped++
		}
	}
	return dropped
}

func (c *tagCache) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = map[string]cacheEntry{}
}
