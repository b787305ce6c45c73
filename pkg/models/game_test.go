package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func catalog() []Game {
	return []Game{
		{Title: "Halo", Genre: "Shooter", Price: 59.99},
		{Title: "Civilization", Genre: "Strategy", Price: 49.99},
		{Title: "Doom", Genre: "Shooter", Price: 19.99},
		{Title: "Stardew Valley", Genre: "Simulation", Price: 14.99},
	}
}

func TestFilterGamesByGenre(t *testing.T) {
	games := catalog()

	shooters := FilterGamesByGenre(games, "Shooter")
	require.Len(t, shooters, 2)
	assert.Equal(t, "Halo", shooters[0].Title)
	assert.Equal(t, "Doom", shooters[1].Title)

	assert.Empty(t, FilterGamesByGenre(games, "Racing"))
}

func TestFilterGamesByGenreAllRestoresFullSet(t *testing.T) {
	games := catalog()

	assert.Equal(t, games, FilterGamesByGenre(games, "All"))
	assert.Equal(t, games, FilterGamesByGenre(games, ""))
}

func TestUniqueGenres(t *testing.T) {
	genres := UniqueGenres(catalog())

	assert.Equal(t, []string{"All", "Shooter", "Strategy", "Simulation"}, genres)
}

func TestUniqueGenresEmptyCatalog(t *testing.T) {
	assert.Equal(t, []string{"All"}, UniqueGenres(nil))
}

func TestCartTotal(t *testing.T) {
	entries := []CartEntry{
		{ID: "1", Price: 19.99},
		{ID: "2", Price: 5.01},
	}

	assert.Equal(t, 19.99+5.01, CartTotal(entries))
	assert.Equal(t, 0.0, CartTotal(nil))
}

func TestToCartEntryCopiesValues(t *testing.T) {
	game := Game{
		ID:       bson.NewObjectID(),
		Title:    "Test Game",
		Genre:    "Action",
		Rating:   4.5,
		Price:    29.99,
		ImageURL: "/uploads/cover.png",
	}

	entry := game.ToCartEntry()

	assert.Equal(t, game.ID.Hex(), entry.ID)
	assert.Equal(t, game.Title, entry.Title)
	assert.Equal(t, game.Price, entry.Price)

	// The entry is a snapshot; mutating the game must not affect it
	game.Price = 0.99
	assert.Equal(t, 29.99, entry.Price)
}
