package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"gamestore-api/pkg/models"
)

// GetAllUsers lists every record in the users collection.
func GetAllUsers(ctx context.Context) ([]models.StoreUser, error) {
	collection := GetCollection("users")

	cursor, err := collection.Find(ctx, bson.D{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var users []models.StoreUser
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}

	return users, nil
}

// CreateUser inserts a new user record and returns it with the assigned id.
func CreateUser(ctx context.Context, user *models.StoreUser) (*models.StoreUser, error) {
	collection := GetCollection("users")

	user.ID = bson.NewObjectID()
	if _, err := collection.InsertOne(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// UpdateUserByID applies a partial field update and returns the updated record.
// Returns mongo.ErrNoDocuments when no user has the given id.
func UpdateUserByID(ctx context.Context, id bson.ObjectID, updates map[string]interface{}) (*models.StoreUser, error) {
	collection := GetCollection("users")

	setFields := bson.D{}
	for field, value := range updates {
		setFields = append(setFields, bson.E{Key: field, Value: value})
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated models.StoreUser
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

// DeleteUserByID removes a user record, returning the deleted document.
func DeleteUserByID(ctx context.Context, id bson.ObjectID) (*models.StoreUser, error) {
	collection := GetCollection("users")

	var deleted models.StoreUser
	err := collection.FindOneAndDelete(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&deleted)
	if err != nil {
		return nil, err
	}

	return &deleted, nil
}
