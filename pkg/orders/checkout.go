package orders

import (
	"time"

	"github.com/google/uuid"

	"gamestore-api/pkg/cart"
	"gamestore-api/pkg/models"
)

// Checkout converts the session's cart into a durable order:
//
//  1. An empty cart aborts with ErrEmptyCart; no order is created.
//  2. The total is the plain float sum of entry prices, the same value the
//     cart view displays.
//  3. Purchaser identity comes from the session when present, placeholder
//     values otherwise.
//  4. The order is prepended to history and the slot is rewritten before the
//     cart is cleared; a failed write leaves both history and cart untouched
//     so the user can retry.
//
// The returned order doubles as the receipt shown to the user.
func (h *History) Checkout(c *cart.Container, sessionID string, identity *models.Identity) (*models.Order, error) {
	items := c.Items(sessionID)
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	name := models.NoNamePlaceholder
	email := models.NoEmailPlaceholder
	if identity != nil {
		if identity.DisplayName != "" {
			name = identity.DisplayName
		}
		if identity.Email != "" {
			email = identity.Email
		}
	}

	order := models.Order{
		ID:    uuid.NewString(),
		Date:  models.OrderDate(time.Now()),
		Name:  name,
		Email: email,
		Items: items,
		Total: models.CartTotal(items),
	}

	h.mu.Lock()
	updated := make([]models.Order, 0, len(h.orders)+1)
	updated = append(updated, order)
	updated = append(updated, h.orders...)

	if err := h.persist(updated); err != nil {
		h.mu.Unlock()
		return nil, err
	}
	h.orders = updated
	h.mu.Unlock()

	c.Clear(sessionID)

	return &order, nil
}
