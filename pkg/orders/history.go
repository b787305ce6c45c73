// Package orders converts cart contents into durable order records. The
// history lives in a single local JSON slot, read fully on startup and
// rewritten fully on every mutation; that is acceptable because history
// stays small, and it keeps recorded orders independent of the remote
// record store and of process restarts.
package orders

import (
	"encoding/json"
	"errors"
	"io/fs"
	"log"
	"os"
	"sync"

	"gamestore-api/pkg/models"
)

var (
	ErrEmptyCart     = errors.New("cart is empty")
	ErrOrderNotFound = errors.New("order not found")
)

// History is the durable order record store, newest order first.
type History struct {
	mu     sync.Mutex
	path   string
	orders []models.Order
}

// Load reads the history slot. A missing file yields an empty history, not
// an error.
func Load(path string) (*History, error) {
	h := &History{path: path}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return h, nil
		}
		return nil, err
	}

	if err := json.Unmarshal(data, &h.orders); err != nil {
		return nil, err
	}

	return h, nil
}

var history *History

// Init loads the shared history from the given slot during startup.
func Init(path string) error {
	h, err := Load(path)
	if err != nil {
		return err
	}
	history = h
	return nil
}

// InitOnStartup is Init for main: a corrupt or unreadable slot is fatal.
func InitOnStartup(path string) {
	if err := Init(path); err != nil {
		log.Fatalf("Failed to load order history from %s: %v", path, err)
	}
}

// Use returns the shared history. Calling it before Init is a wiring mistake.
func Use() *History {
	if history == nil {
		panic("orders: Use called before Init; order history is not available")
	}
	return history
}

// Orders returns a copy of the history, newest first.
func (h *History) Orders() []models.Order {
	h.mu.Lock()
	defer h.mu.Unlock()

	orders := make([]models.Order, len(h.orders))
	copy(orders, h.orders)
	return orders
}

// Delete filters out the order with the given id and rewrites the slot in
// full. Returns ErrOrderNotFound when no order matches.
func (h *History) Delete(id string) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	kept := make([]models.Order, 0, len(h.orders))
	found := false
	for _, o := range h.orders {
		if o.ID == id {
			found = true
			continue
		}
		kept = append(kept, o)
	}
	if !found {
		return ErrOrderNotFound
	}

	if err := h.persist(kept); err != nil {
		return err
	}
	h.orders = kept
	return nil
}

// persist rewrites the whole slot. Callers hold the mutex and commit the
// in-memory list only after the write succeeds.
func (h *History) persist(orders []models.Order) error {
	data, err := json.Marshal(orders)
	if err != nil {
		return err
	}
	return os.WriteFile(h.path, data, 0o644)
}
