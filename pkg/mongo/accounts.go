package mongo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"gamestore-api/pkg/models"
)

var (
	ErrEmailExists     = errors.New("email already exists")
	ErrAccountNotFound = errors.New("account not found")
)

// CreateAccount inserts sign-up credentials. The password must already be
// hashed by the caller. Returns ErrEmailExists on a duplicate email.
func CreateAccount(ctx context.Context, account *models.Account) (*models.Account, error) {
	collection := GetCollection("accounts")

	count, err := collection.CountDocuments(ctx, bson.D{{Key: "email", Value: account.Email}})
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrEmailExists
	}

	account.ID = bson.NewObjectID()
	if _, err := collection.InsertOne(ctx, account); err != nil {
		// The unique index is the real guard; the pre-check only gives a
		// cleaner error on the common path.
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrEmailExists
		}
		return nil, err
	}

	return account, nil
}

// GetAccountByEmail fetches credentials for sign-in.
func GetAccountByEmail(ctx context.Context, email string) (*models.Account, error) {
	collection := GetCollection("accounts")

	var account models.Account
	err := collection.FindOne(ctx, bson.D{{Key: "email", Value: email}}).Decode(&account)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}

	return &account, nil
}
