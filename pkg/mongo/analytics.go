package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type GenreStat struct {
	Genre     string  `json:"genre" bson:"_id"`
	GameCount int     `json:"game_count" bson:"count"`
	AvgRating float64 `json:"avg_rating" bson:"avg_rating"`
	AvgPrice  float64 `json:"avg_price" bson:"avg_price"`
	MinPrice  float64 `json:"min_price" bson:"min_price"`
	MaxPrice  float64 `json:"max_price" bson:"max_price"`
}

type GenreStatsResult struct {
	Genres     []GenreStat `json:"genres"`
	TotalGames int         `json:"total_games"`
}

// GetGenreStats groups the catalog by genre with per-genre rating and price
// aggregates, largest genres first.
func GetGenreStats(ctx context.Context) (*GenreStatsResult, error) {
	collection := GetCollection("games")

	pipeline := bson.A{
		bson.D{
			{Key: "$group", Value: bson.D{
				{Key: "_id", Value: "$genre"},
				{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
				{Key: "avg_rating", Value: bson.D{{Key: "$avg", Value: "$rating"}}},
				{Key: "avg_price", Value: bson.D{{Key: "$avg", Value: "$price"}}},
				{Key: "min_price", Value: bson.D{{Key: "$min", Value: "$price"}}},
				{Key: "max_price", Value: bson.D{{Key: "$max", Value: "$price"}}},
			}},
		},
		bson.D{
			{Key: "$project", Value: bson.D{
				{Key: "count", Value: 1},
				{Key: "avg_rating", Value: bson.D{{Key: "$round", Value: bson.A{"$avg_rating", 2}}}},
				{Key: "avg_price", Value: bson.D{{Key: "$round", Value: bson.A{"$avg_price", 2}}}},
				{Key: "min_price", Value: 1},
				{Key: "max_price", Value: 1},
			}},
		},
		bson.D{
			{Key: "$sort", Value: bson.D{{Key: "count", Value: -1}}},
		},
	}

	cursor, err := collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var stats []GenreStat
	if err := cursor.All(ctx, &stats); err != nil {
		return nil, err
	}

	totalGames := 0
	for _, stat := range stats {
		totalGames += stat.GameCount
	}

	result := &GenreStatsResult{
		Genres:     stats,
		TotalGames: totalGames,
	}

	return result, nil
}
