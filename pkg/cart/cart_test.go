package cart

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gamestore-api/pkg/models"
)

func sampleEntry(id string) models.CartEntry {
	return models.CartEntry{
		ID:     id,
		Title:  "Test Game",
		Genre:  "Action",
		Rating: 4.5,
		Price:  29.99,
	}
}

func TestAddGrowsCartByOne(t *testing.T) {
	c := NewContainer()

	for i := 1; i <= 5; i++ {
		c.Add("s1", sampleEntry(fmt.Sprintf("%d", i)))
		assert.Equal(t, i, c.Len("s1"))
	}
}

func TestAddPreservesInsertionOrder(t *testing.T) {
	c := NewContainer()

	c.Add("s1", sampleEntry("1"))
	c.Add("s1", sampleEntry("2"))
	c.Add("s1", sampleEntry("3"))

	items := c.Items("s1")
	require.Len(t, items, 3)
	assert.Equal(t, "1", items[0].ID)
	assert.Equal(t, "2", items[1].ID)
	assert.Equal(t, "3", items[2].ID)
}

func TestAddDoesNotDeduplicate(t *testing.T) {
	c := NewContainer()

	c.Add("s1", sampleEntry("1"))
	c.Add("s1", sampleEntry("1"))

	assert.Equal(t, 2, c.Len("s1"))
}

func TestRemoveDropsEveryMatchingEntry(t *testing.T) {
	c := NewContainer()

	c.Add("s1", sampleEntry("1"))
	c.Add("s1", sampleEntry("2"))
	c.Add("s1", sampleEntry("1"))

	c.Remove("s1", "1")

	items := c.Items("s1")
	require.Len(t, items, 1)
	assert.Equal(t, "2", items[0].ID)
}

func TestRemoveAbsentIDIsNoOp(t *testing.T) {
	c := NewContainer()

	c.Add("s1", sampleEntry("1"))
	c.Remove("s1", "does-not-exist")

	assert.Equal(t, 1, c.Len("s1"))
}

func TestClearAlwaysEmpties(t *testing.T) {
	c := NewContainer()

	c.Clear("s1") // already empty
	assert.Equal(t, 0, c.Len("s1"))

	c.Add("s1", sampleEntry("1"))
	c.Add("s1", sampleEntry("2"))
	c.Clear("s1")

	assert.Equal(t, 0, c.Len("s1"))
	assert.Empty(t, c.Items("s1"))
}

func TestCartsAreIsolatedBySession(t *testing.T) {
	c := NewContainer()

	c.Add("s1", sampleEntry("1"))
	c.Add("s2", sampleEntry("2"))

	assert.Equal(t, 1, c.Len("s1"))
	assert.Equal(t, 1, c.Len("s2"))

	c.Clear("s1")
	assert.Equal(t, 0, c.Len("s1"))
	assert.Equal(t, 1, c.Len("s2"))
}

func TestItemsReturnsACopy(t *testing.T) {
	c := NewContainer()

	c.Add("s1", sampleEntry("1"))

	items := c.Items("s1")
	items[0].ID = "mutated"

	assert.Equal(t, "1", c.Items("s1")[0].ID)
}

func TestUseBeforeInitPanics(t *testing.T) {
	saved := container
	container = nil
	defer func() { container = saved }()

	assert.Panics(t, func() { Use() })

	Init()
	assert.NotNil(t, Use())
}
