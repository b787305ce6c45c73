package router

import (
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"gamestore-api/pkg/global"
)

var Router *gin.Engine

func InitEngine() {
	Router = gin.Default()
	if os.Getenv("ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	Router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length", "X-Total-Count"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
}

func InitializeRoutes() {
	// Uploaded game images are served straight from the blob directory
	Router.Static("/uploads", global.GetUploadDir())

	api := Router.Group("/api")
	{
		api.GET("/health", HealthCheck)

		auth := api.Group("/auth")
		{
			auth.POST("/register", Register)
			auth.POST("/login", Login)
			auth.POST("/logout", Logout)
			auth.GET("/session", CurrentSession)
		}

		games := api.Group("/games")
		{
			games.GET("/", GetAllGames)
			games.GET("/:id", GetGameByID)
			games.POST("/", AuthRequired(), CreateGame)
			games.PUT("/:id", AuthRequired(), EditGameByID)
			games.DELETE("/:id", AuthRequired(), DeleteGameByID)
		}

		genres := api.Group("/genres")
		{
			genres.GET("/", GetGenres)
		}

		users := api.Group("/users")
		users.Use(AuthRequired())
		{
			users.GET("/", GetAllUsers)
			users.POST("/", CreateUser)
			users.PUT("/:id", EditUserByID)
			users.DELETE("/:id", DeleteUserByID)
		}

		cart := api.Group("/cart")
		{
			cart.GET("/:sessionId", GetCart)
			cart.POST("/:sessionId/items", AddToCart)
			cart.DELETE("/:sessionId/items/:id", RemoveFromCart)
			cart.DELETE("/:sessionId/clear", ClearCart)
		}

		api.POST("/checkout/:sessionId", SessionOptional(), Checkout)

		orders := api.Group("/orders")
		{
			orders.GET("/", GetOrderHistory)
			orders.DELETE("/:id", DeleteOrder)
		}

		analytics := api.Group("/analytics")
		{
			analytics.GET("/genres", GetGenreAnalytics)

			// AI-powered analytics endpoints
			aiAnalytics := analytics.Group("/ai")
			{
				aiAnalytics.GET("/catalog-report", GenerateAICatalogReport)
				aiAnalytics.GET("/sales-report", GenerateAISalesReport)
			}
		}
	}
}
