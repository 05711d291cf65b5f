package dashboard

import (
	"sync"

	"tradedash/trades"
)

// Cache memoizes snapshots by fetch key so repeated refreshes with an
// unchanged (refresh token, last transaction id) pair never hit the
// network again. Invalidation is caller-triggered and coarse: Clear
// drops everything, there is no partial eviction.
type Cache struct {
	mu    sync.RWMutex
	snaps map[trades.Key]trades.Snapshot
}

// NewCache creates an empty snapshot cache.
func NewCache() *Cache {
	return &Cache{snaps: make(map[trades.Key]trades.Snapshot)}
}

// Get returns the cached snapshot for the key, if any.
func (c *Cache) Get(key trades.Key) (trades.Snapshot, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	snap, ok := c.snaps[key]
	return snap, ok
}

// Put stores a snapshot under its own key.
func (c *Cache) Put(snap trades.Snapshot) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.snaps[snap.Key] = snap
}

// Clear drops every cached snapshot.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.snaps = make(map[trades.Key]trades.Snapshot)
}

// Len reports the number of cached snapshots.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.snaps)
}
