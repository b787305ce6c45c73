package models

import (
	"go.mongodb.org/mongo-driver/v2/bson"
)

// Game represents a catalog entry in the games collection
type Game struct {
	ID       bson.ObjectID `json:"id" bson:"_id,omitempty"`
	Title    string        `json:"title" bson:"title" validate:"required,min=1,max=200"`
	Genre    string        `json:"genre" bson:"genre" validate:"required,min=1,max=100"`
	Rating   float64       `json:"rating" bson:"rating"`
	Price    float64       `json:"price" bson:"price" validate:"gte=0"`
	ImageURL string        `json:"image_url,omitempty" bson:"image_url,omitempty"`
	OwnerID  string        `json:"owner_id,omitempty" bson:"owner_id,omitempty"`
}

// ToCartEntry copies the catalog fields into a cart entry. The cart holds
// values, not references, so later catalog edits never touch a cart.
func (g *Game) ToCartEntry() CartEntry {
	return CartEntry{
		ID:       g.ID.Hex(),
		Title:    g.Title,
		Genre:    g.Genre,
		Rating:   g.Rating,
		Price:    g.Price,
		ImageURL: g.ImageURL,
	}
}

// FilterGamesByGenre returns the games whose genre equals the selection.
// An empty selection or the literal "All" restores the full set.
func FilterGamesByGenre(games []Game, genre string) []Game {
	if genre == "" || genre == "All" {
		return games
	}
	filtered := make([]Game, 0, len(games))
	for _, g := range games {
		if g.Genre == genre {
			filtered = append(filtered, g)
		}
	}
	return filtered
}

// UniqueGenres returns "All" followed by each distinct genre in first-seen order.
func UniqueGenres(games []Game) []string {
	genres := []string{"All"}
	seen := make(map[string]bool)
	for _, g := range games {
		if !seen[g.Genre] {
			seen[g.Genre] = true
			genres = append(genres, g.Genre)
		}
	}
	return genres
}
