package mongo

import (
	"log"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"gamestore-api/pkg/global"
)

type IndexConfig struct {
	CollectionName string
	IndexModel     mongo.IndexModel
}

var requiredIndexes = []IndexConfig{
	// Accounts Collection Indexes
	{
		CollectionName: "accounts",
		IndexModel: mongo.IndexModel{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("idx_account_email_unique"),
		},
	},

	// Games Collection Indexes
	// Single-field index on genre for filtering and analytics
	{
		CollectionName: "games",
		IndexModel: mongo.IndexModel{
			Keys:    bson.D{{Key: "genre", Value: 1}},
			Options: options.Index().SetName("idx_genre"),
		},
	},
	// Compound index on genre and price for sorted listings per genre
	{
		CollectionName: "games",
		IndexModel: mongo.IndexModel{
			Keys: bson.D{
				{Key: "genre", Value: 1},
				{Key: "price", Value: -1},
			},
			Options: options.Index().SetName("idx_genre_price"),
		},
	},
	// Owner lookup for records created by a given account
	{
		CollectionName: "games",
		IndexModel: mongo.IndexModel{
			Keys:    bson.D{{Key: "owner_id", Value: 1}},
			Options: options.Index().SetName("idx_owner"),
		},
	},
}

func EnsureIndexes() error {
	log.Println("Starting index creation...")

	for _, idxConfig := range requiredIndexes {
		collection := GetCollection(idxConfig.CollectionName)
		ctx, cancel := global.GetDefaultTimer()
		defer cancel()

		indexName, err := collection.Indexes().CreateOne(ctx, idxConfig.IndexModel)
		if err != nil {
			log.Printf("Error creating index on collection %s: %v",
				idxConfig.CollectionName, err)
			return err
		}

		log.Printf("Created index '%s' on collection '%s'", indexName, idxConfig.CollectionName)
	}

	log.Println("All indexes created successfully")
	return nil
}

func EnsureIndexesOnStartup() {
	if err := EnsureIndexes(); err != nil {
		log.Fatalf("Failed to ensure indexes: %v", err)
	}
}
