package router

import (
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/v2/bson"

	"gamestore-api/pkg/global"
	"gamestore-api/pkg/models"
	"gamestore-api/pkg/mongo"
	"gamestore-api/pkg/redis"
	"gamestore-api/pkg/storage"
)

func HealthCheck(c *gin.Context) {
	db := mongo.GetDatabase()
	if err := db.Client().Ping(c, nil); err != nil {
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Database connection failed", nil))
		return
	}
	c.JSON(http.StatusOK, global.SuccessResponse(map[string]string{"status": "OK", "database": "Connected"}))
}

// GetAllGames lists the catalog, optionally restricted to a single genre via
// ?genre=. The genre list in the response always reflects the full set.
func GetAllGames(c *gin.Context) {
	games, err := mongo.GetAllGames(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Failed to get games", nil))
		return
	}

	genre := c.Query("genre")
	filtered := models.FilterGamesByGenre(games, genre)

	c.JSON(http.StatusOK, global.SuccessResponse(map[string]interface{}{
		"games":  filtered,
		"genres": models.UniqueGenres(games),
		"count":  len(filtered),
	}))
}

// GetGenres returns the distinct genre list for the filter dropdown.
func GetGenres(c *gin.Context) {
	games, err := mongo.GetAllGames(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Failed to get genres", nil))
		return
	}

	c.JSON(http.StatusOK, global.SuccessResponse(models.UniqueGenres(games)))
}

// GetGameByID retrieves a single game with Redis caching
func GetGameByID(c *gin.Context) {
	id := c.Param("id")

	objectID, err := bson.ObjectIDFromHex(id)
	if err != nil {
		c.JSON(http.StatusBadRequest, global.ErrorResponse("Invalid game ID format", []global.ValidationError{
			{Field: "id", Message: "Must be a valid MongoDB ObjectID", Code: "invalid_format"},
		}))
		return
	}

	ctx := c.Request.Context()

	// Try Redis cache first
	game, err := redis.GetGameFromCache(ctx, id)
	if err == nil {
		c.Header("X-Cache", "HIT")
		c.JSON(http.StatusOK, global.SuccessResponse(game))
		return
	}

	// Cache miss, check MongoDB
	game, err = mongo.GetGameByID(ctx, objectID)
	if err != nil {
		if mongo.IsNoDocuments(err) {
			c.JSON(http.StatusNotFound, global.ErrorResponse("Game not found", []global.ValidationError{
				{Field: "id", Message: "No game exists with this ID", Code: "not_found"},
			}))
			return
		}
		log.Printf("Error fetching game from MongoDB: %v", err)
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Failed to fetch game", nil))
		return
	}

	if cacheErr := redis.CacheGame(ctx, game); cacheErr != nil {
		// Log cache error but don't fail the request
		log.Printf("Warning: Failed to cache game in Redis: %v", cacheErr)
	}

	c.Header("X-Cache", "MISS")
	c.JSON(http.StatusOK, global.SuccessResponse(game))
}

// CreateGame adds a catalog record from a multipart form: title and genre are
// required, rating/price optional, and an optional image file goes through
// blob storage. Nothing is written remotely until validation passes.
func CreateGame(c *gin.Context) {
	title := strings.TrimSpace(c.PostForm("title"))
	genre := strings.TrimSpace(c.PostForm("genre"))

	var validationErrors []global.ValidationError
	if title == "" {
		validationErrors = append(validationErrors, global.ValidationError{
			Field: "title", Message: "Title is required", Code: "required",
		})
	}
	if genre == "" {
		validationErrors = append(validationErrors, global.ValidationError{
			Field: "genre", Message: "Genre is required", Code: "required",
		})
	}
	if len(validationErrors) > 0 {
		c.JSON(http.StatusBadRequest, global.ErrorResponse("Title and genre required", validationErrors))
		return
	}

	rating, err := parseOptionalFloat(c.PostForm("rating"))
	if err != nil {
		c.JSON(http.StatusBadRequest, global.ErrorResponse("Invalid rating", []global.ValidationError{
			{Field: "rating", Message: "Rating must be a number", Code: "invalid_format"},
		}))
		return
	}
	price, err := parseOptionalFloat(c.PostForm("price"))
	if err != nil {
		c.JSON(http.StatusBadRequest, global.ErrorResponse("Invalid price", []global.ValidationError{
			{Field: "price", Message: "Price must be a number", Code: "invalid_format"},
		}))
		return
	}

	imageURL := storage.DefaultImageURL
	if file, err := c.FormFile("image"); err == nil {
		imageURL, err = storage.SaveImage(file)
		if err != nil {
			log.Printf("Error saving game image: %v", err)
			c.JSON(http.StatusInternalServerError, global.ErrorResponse("Failed to save image", nil))
			return
		}
	}

	game := &models.Game{
		Title:    title,
		Genre:    genre,
		Rating:   rating,
		Price:    price,
		ImageURL: imageURL,
	}
	if identity := identityFromContext(c); identity != nil {
		game.OwnerID = identity.AccountID
	}

	createdGame, err := mongo.CreateGame(c.Request.Context(), game)
	if err != nil {
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Failed to add game", nil))
		return
	}

	if cacheErr := redis.CacheGame(c.Request.Context(), createdGame); cacheErr != nil {
		log.Printf("Warning: Failed to cache game in Redis: %v", cacheErr)
	}

	c.JSON(http.StatusCreated, global.SuccessResponse(createdGame))
}

// EditGameByID applies a partial field update. The cache is refreshed only
// after MongoDB accepts the write, so clients never see state the record
// store does not hold.
func EditGameByID(c *gin.Context) {
	id := c.Param("id")

	objectID, err := bson.ObjectIDFromHex(id)
	if err != nil {
		c.JSON(http.StatusBadRequest, global.ErrorResponse("Invalid game ID format", []global.ValidationError{
			{Field: "id", Message: "Must be a valid MongoDB ObjectID", Code: "invalid_format"},
		}))
		return
	}

	var updates map[string]interface{}
	if err := c.ShouldBindJSON(&updates); err != nil {
		c.JSON(http.StatusBadRequest, global.ErrorResponse("Invalid JSON format", []global.ValidationError{
			{Field: "body", Message: err.Error(), Code: "json_parse_error"},
		}))
		return
	}

	// Immutable fields are stripped rather than rejected
	immutableFields := []string{"_id", "id", "owner_id"}
	for _, field := range immutableFields {
		if _, exists := updates[field]; exists {
			delete(updates, field)
			log.Printf("Warning: Removed immutable field '%s' from update request", field)
		}
	}

	if len(updates) == 0 {
		c.JSON(http.StatusBadRequest, global.ErrorResponse("No updates provided", []global.ValidationError{
			{Field: "body", Message: "Request body must contain at least one updatable field", Code: "empty_updates"},
		}))
		return
	}

	updatedGame, err := mongo.UpdateGameByID(c.Request.Context(), objectID, updates)
	if err != nil {
		if mongo.IsNoDocuments(err) {
			c.JSON(http.StatusNotFound, global.ErrorResponse("Game not found", []global.ValidationError{
				{Field: "id", Message: "No game exists with this ID", Code: "not_found"},
			}))
			return
		}
		log.Printf("Error updating game in MongoDB: %v", err)
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Failed to update game", nil))
		return
	}

	if cacheErr := redis.CacheGame(c.Request.Context(), updatedGame); cacheErr != nil {
		log.Printf("Warning: Failed to update game cache in Redis: %v", cacheErr)
	}

	c.JSON(http.StatusOK, global.SuccessResponse(updatedGame))
}

// DeleteGameByID removes a game from the record store and the cache.
func DeleteGameByID(c *gin.Context) {
	id := c.Param("id")

	objectID, err := bson.ObjectIDFromHex(id)
	if err != nil {
		c.JSON(http.StatusBadRequest, global.ErrorResponse("Invalid game ID format", []global.ValidationError{
			{Field: "id", Message: "Must be a valid MongoDB ObjectID", Code: "invalid_format"},
		}))
		return
	}

	deletedGame, err := mongo.DeleteGameByID(c.Request.Context(), objectID)
	if err != nil {
		if mongo.IsNoDocuments(err) {
			c.JSON(http.StatusNotFound, global.ErrorResponse("Game not found", []global.ValidationError{
				{Field: "id", Message: "No game exists with this ID", Code: "not_found"},
			}))
			return
		}
		log.Printf("Error deleting game from MongoDB: %v", err)
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Failed to delete game", nil))
		return
	}

	if cacheErr := redis.RemoveGameFromCache(c.Request.Context(), deletedGame); cacheErr != nil {
		log.Printf("Warning: Failed to remove game from Redis cache: %v", cacheErr)
	}

	c.JSON(http.StatusOK, global.SuccessResponse(map[string]interface{}{
		"deleted_game": deletedGame,
		"message":      "Game successfully deleted",
	}))
}

func parseOptionalFloat(value string) (float64, error) {
	if strings.TrimSpace(value) == "" {
		return 0, nil
	}
	return strconv.ParseFloat(strings.TrimSpace(value), 64)
}
