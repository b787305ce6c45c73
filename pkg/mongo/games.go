package mongo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"gamestore-api/pkg/models"
)

// GetAllGames lists every record in the games collection.
func GetAllGames(ctx context.Context) ([]models.Game, error) {
	collection := GetCollection("games")

	cursor, err := collection.Find(ctx, bson.D{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var games []models.Game
	if err := cursor.All(ctx, &games); err != nil {
		return nil, err
	}

	return games, nil
}

// GetGameByID fetches a single game record.
func GetGameByID(ctx context.Context, id bson.ObjectID) (*models.Game, error) {
	collection := GetCollection("games")

	var game models.Game
	err := collection.FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&game)
	if err != nil {
		return nil, err
	}

	return &game, nil
}

// CreateGame inserts a new game record and returns it with the assigned id.
func CreateGame(ctx context.Context, game *models.Game) (*models.Game, error) {
	collection := GetCollection("games")

	game.ID = bson.NewObjectID()
	if _, err := collection.InsertOne(ctx, game); err != nil {
		return nil, err
	}

	return game, nil
}

// UpdateGameByID applies a partial field update and returns the updated record.
// Returns mongo.ErrNoDocuments when no game has the given id.
func UpdateGameByID(ctx context.Context, id bson.ObjectID, updates map[string]interface{}) (*models.Game, error) {
	collection := GetCollection("games")

	setFields := bson.D{}
	for field, value := range updates {
		setFields = append(setFields, bson.E{Key: field, Value: value})
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated models.Game
	err := collection.FindOneAndUpdate(ctx,
		bson.D{{Key: "_id", Value: id}},
		bson.D{{Key: "$set", Value: setFields}},
		opts,
	).Decode(&updated)
	if err != nil {
		return nil, err
	}

	return &updated, nil
}

// DeleteGameByID removes a game record and returns the deleted document so
// callers can clean up derived state (cache entries, image files).
func DeleteGameByID(ctx context.Context, id bson.ObjectID) (*models.Game, error) {
	collection := GetCollection("games")

	var deleted models.Game
	err := collection.FindOneAndDelete(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&deleted)
	if err != nil {
		return nil, err
	}

	return &deleted, nil
}

// IsNoDocuments reports whether err means the lookup matched nothing.
func IsNoDocuments(err error) bool {
	return errors.Is(err, mongo.ErrNoDocuments)
}
