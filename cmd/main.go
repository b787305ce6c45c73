package main

import (
	"log"

	"github.com/joho/godotenv"

	"gamestore-api/internal/router"
	"gamestore-api/pkg/ai"
	"gamestore-api/pkg/cart"
	"gamestore-api/pkg/global"
	"gamestore-api/pkg/mongo"
	"gamestore-api/pkg/orders"
)

func main() {

	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}

	mongo.InitMongoDB()
	mongo.EnsureIndexesOnStartup()

	cart.Init()
	orders.InitOnStartup(global.GetOrderHistoryPath())
	ai.InitializeAIService()

	router.InitEngine()
	router.InitializeRoutes()

	port := global.GetEnvOrDefault("PORT", "8000")
	log.Printf("Server is running on port %s", port)

	if err := router.Router.Run(":" + port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
