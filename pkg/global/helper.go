package global

import (
	"context"
	"log"
	"os"
	"time"
)

func GetEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func GetDefaultTimer() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 10*time.Second)
}

func GetMongoURI() string {
	mongoURI := os.Getenv("MONGODB_URI")
	if mongoURI == "" {
		log.Fatal("MONGODB_URI is not set in environment variables")
	}
	return mongoURI
}

func GetDatabaseName() string {
	dbName := GetEnvOrDefault("MONGODB_DATABASE", "gamestore")
	return dbName
}

// GetOrderHistoryPath returns the file slot holding the serialized order history.
func GetOrderHistoryPath() string {
	return GetEnvOrDefault("ORDER_HISTORY_FILE", "order_history.json")
}

// GetUploadDir returns the directory uploaded game images are written to.
func GetUploadDir() string {
	return GetEnvOrDefault("UPLOAD_DIR", "uploads")
}
