// Package cart holds the in-memory shopping carts. Cart state is
// process-local and intentionally non-durable: it exists for the browsing
// session and dies with the process, unlike the order history.
package cart

import (
	"sync"

	"gamestore-api/pkg/models"
)

// Container maps session ids to ordered cart entry sequences. The mutex
// serializes mutations; each operation is a single discrete event.
type Container struct {
	mu    sync.Mutex
	carts map[string][]models.CartEntry
}

func NewContainer() *Container {
	return &Container{
		carts: make(map[string][]models.CartEntry),
	}
}

var container *Container

// Init installs the shared container. Must run during startup before any
// handler touches a cart.
func Init() {
	container = NewContainer()
}

// Use returns the shared container. Calling it before Init is a wiring
// mistake and fails loudly rather than handing back an empty cart.
func Use() *Container {
	if container == nil {
		panic("cart: Use called before Init; cart container is not available")
	}
	return container
}

// Add appends the entry to the session's cart unconditionally: no
// deduplication, no stock check. Length grows by exactly one.
func (c *Container) Add(sessionID string, entry models.CartEntry) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.carts[sessionID] = append(c.carts[sessionID], entry)
}

// Remove drops every entry whose catalog id matches. An id with no matches
// is a silent no-op.
func (c *Container) Remove(sessionID, id string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entries := c.carts[sessionID]
	kept := entries[:0]
	for _, e := range entries {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	c.carts[sessionID] = kept
}

// Clear empties the session's cart unconditionally.
func (c *Container) Clear(sessionID string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.carts, sessionID)
}

// Items returns a copy of the cart in insertion order.
func (c *Container) Items(sessionID string) []models.CartEntry {
	c.mu.Lock()
	defer c.mu.Unlock()

	entries := c.carts[sessionID]
	items := make([]models.CartEntry, len(entries))
	copy(items, entries)
	return items
}

// Len reports the number of entries in the session's cart.
func (c *Container) Len(sessionID string) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.carts[sessionID])
}
