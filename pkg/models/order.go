package models

import "time"

// Order is a completed checkout. Immutable once created except for deletion;
// items are a value snapshot of the cart at checkout time.
type Order struct {
	ID    string      `json:"id"`
	Date  string      `json:"date"`
	Name  string      `json:"name"`
	Email string      `json:"email"`
	Items []CartEntry `json:"items"`
	Total float64     `json:"total"`
}

// Placeholder purchaser values recorded when no session identity is present.
const (
	NoNamePlaceholder  = "No Name"
	NoEmailPlaceholder = "No Email"
)

// OrderDate renders the checkout timestamp in the textual form stored on orders.
func OrderDate(t time.Time) string {
	return t.Format(time.RFC1123)
}

// ItemCount returns the number of line items on the order.
func (o *Order) ItemCount() int {
	return len(o.Items)
}
