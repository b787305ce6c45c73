package orders

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gamestore-api/pkg/cart"
	"gamestore-api/pkg/models"
)

func TestLoadMissingFileYieldsEmptyHistory(t *testing.T) {
	h, err := Load(filepath.Join(t.TempDir(), "does-not-exist.json"))

	require.NoError(t, err)
	assert.Empty(t, h.Orders())
}

func TestLoadRejectsCorruptSlot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestHistorySurvivesReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.json")
	h, err := Load(path)
	require.NoError(t, err)

	c := cart.NewContainer()
	c.Add("s1", models.CartEntry{ID: "1", Title: "Test Game", Genre: "Action", Rating: 4.5, Price: 19.99})
	c.Add("s1", models.CartEntry{ID: "2", Title: "Another", Price: 5.00})
	_, err = h.Checkout(c, "s1", &models.Identity{DisplayName: "Ada", Email: "ada@example.com"})
	require.NoError(t, err)

	c.Add("s1", models.CartEntry{ID: "3", Title: "Third", Price: 1.25})
	_, err = h.Checkout(c, "s1", nil)
	require.NoError(t, err)

	before := h.Orders()

	reloaded, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, before, reloaded.Orders())
}

func TestDeleteRemovesExactlyOneOrder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.json")
	h, err := Load(path)
	require.NoError(t, err)

	c := cart.NewContainer()
	var ids []string
	for i := 0; i < 3; i++ {
		c.Add("s1", models.CartEntry{ID: "1", Price: 1})
		order, err := h.Checkout(c, "s1", nil)
		require.NoError(t, err)
		ids = append(ids, order.ID)
	}
	// history is newest first: ids[2], ids[1], ids[0]

	require.NoError(t, h.Delete(ids[1]))

	remaining := h.Orders()
	require.Len(t, remaining, 2)
	assert.Equal(t, ids[2], remaining[0].ID)
	assert.Equal(t, ids[0], remaining[1].ID)

	// The rewrite must hit the slot, not just memory
	reloaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, remaining, reloaded.Orders())
}

func TestDeleteUnknownOrder(t *testing.T) {
	h, err := Load(filepath.Join(t.TempDir(), "history.json"))
	require.NoError(t, err)

	assert.ErrorIs(t, h.Delete("nope"), ErrOrderNotFound)
}

func TestUseBeforeInitPanics(t *testing.T) {
	saved := history
	history = nil
	defer func() { history = saved }()

	assert.Panics(t, func() { Use() })

	require.NoError(t, Init(filepath.Join(t.TempDir(), "history.json")))
	assert.NotNil(t, Use())
}
