package cache

import "sync"

// Revalidator marks cached renderings of a path stale.
type Revalidator interface {
	RevalidatePath(path string)
}

// PathCache keeps at most one rendered payload per path.
type PathCache struct {
	mu      sync.RWMutex
	entries map[string][]byte
}

func NewPathCache() *PathCache {
	return &PathCache{entries: make(map[string][]byte)}
}

func (c *PathCache) Get(path string) ([]byte, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	payload, ok := c.entries[path]
	return payload, ok
}

func (c *PathCache) Put(path string, payload []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[path] = payload
}

// RevalidatePath drops the cached rendering so the next read recomputes it.
func (c *PathCache) RevalidatePath(path string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, path)
}
