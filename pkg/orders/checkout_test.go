package orders

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gamestore-api/pkg/cart"
	"gamestore-api/pkg/models"
)

func newTestHistory(t *testing.T) *History {
	t.Helper()
	h, err := Load(filepath.Join(t.TempDir(), "history.json"))
	require.NoError(t, err)
	return h
}

func TestCheckoutEmptyCart(t *testing.T) {
	h := newTestHistory(t)
	c := cart.NewContainer()

	order, err := h.Checkout(c, "s1", nil)

	assert.ErrorIs(t, err, ErrEmptyCart)
	assert.Nil(t, order)
	assert.Empty(t, h.Orders())
	assert.Equal(t, 0, c.Len("s1"))
}

func TestCheckoutRecordsOrderAndClearsCart(t *testing.T) {
	h := newTestHistory(t)
	c := cart.NewContainer()

	c.Add("s1", models.CartEntry{ID: "1", Title: "Test Game", Price: 19.99})

	order, err := h.Checkout(c, "s1", nil)
	require.NoError(t, err)

	history := h.Orders()
	require.Len(t, history, 1)
	assert.Equal(t, order.ID, history[0].ID)
	assert.Equal(t, 19.99, history[0].Total)
	assert.Len(t, history[0].Items, 1)
	assert.Equal(t, "Test Game", history[0].Items[0].Title)
	assert.Equal(t, 0, c.Len("s1"))
}

func TestCheckoutTotalIsSumOfPrices(t *testing.T) {
	h := newTestHistory(t)
	c := cart.NewContainer()

	c.Add("s1", models.CartEntry{ID: "1", Price: 10.50})
	c.Add("s1", models.CartEntry{ID: "2", Price: 20.25})
	c.Add("s1", models.CartEntry{ID: "1", Price: 10.50})

	order, err := h.Checkout(c, "s1", nil)
	require.NoError(t, err)

	assert.Equal(t, 10.50+20.25+10.50, order.Total)
	assert.Len(t, order.Items, 3)
}

func TestCheckoutPrependsNewestFirst(t *testing.T) {
	h := newTestHistory(t)
	c := cart.NewContainer()

	c.Add("s1", models.CartEntry{ID: "1", Title: "First", Price: 5})
	first, err := h.Checkout(c, "s1", nil)
	require.NoError(t, err)

	c.Add("s1", models.CartEntry{ID: "2", Title: "Second", Price: 7})
	second, err := h.Checkout(c, "s1", nil)
	require.NoError(t, err)

	history := h.Orders()
	require.Len(t, history, 2)
	assert.Equal(t, second.ID, history[0].ID)
	assert.Equal(t, first.ID, history[1].ID)
}

func TestCheckoutWithoutIdentityUsesPlaceholders(t *testing.T) {
	h := newTestHistory(t)
	c := cart.NewContainer()

	c.Add("s1", models.CartEntry{ID: "1", Price: 1})

	order, err := h.Checkout(c, "s1", nil)
	require.NoError(t, err)

	assert.Equal(t, models.NoNamePlaceholder, order.Name)
	assert.Equal(t, models.NoEmailPlaceholder, order.Email)
}

func TestCheckoutUsesSessionIdentity(t *testing.T) {
	h := newTestHistory(t)
	c := cart.NewContainer()

	c.Add("s1", models.CartEntry{ID: "1", Price: 1})

	identity := &models.Identity{
		AccountID:   "acc-1",
		DisplayName: "Ada Lovelace",
		Email:       "ada@example.com",
	}
	order, err := h.Checkout(c, "s1", identity)
	require.NoError(t, err)

	assert.Equal(t, "Ada Lovelace", order.Name)
	assert.Equal(t, "ada@example.com", order.Email)
}

func TestCheckoutSnapshotIsIndependentOfCart(t *testing.T) {
	h := newTestHistory(t)
	c := cart.NewContainer()

	c.Add("s1", models.CartEntry{ID: "1", Title: "Snapshot Me", Price: 3})
	order, err := h.Checkout(c, "s1", nil)
	require.NoError(t, err)

	// New cart activity after checkout must not touch the recorded order
	c.Add("s1", models.CartEntry{ID: "9", Title: "Later", Price: 99})

	require.Len(t, order.Items, 1)
	assert.Equal(t, "Snapshot Me", order.Items[0].Title)
	assert.Equal(t, 3.0, h.Orders()[0].Total)
}

func TestCheckoutGeneratesDistinctOrderIDs(t *testing.T) {
	h := newTestHistory(t)
	c := cart.NewContainer()

	seen := make(map[string]bool)
	for i := 0; i < 10; i++ {
		c.Add("s1", models.CartEntry{ID: "1", Price: 1})
		order, err := h.Checkout(c, "s1", nil)
		require.NoError(t, err)
		assert.False(t, seen[order.ID], "duplicate order id %s", order.ID)
		seen[order.ID] = true
	}
}
