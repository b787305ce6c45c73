package router

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/v2/bson"

	"gamestore-api/pkg/global"
	"gamestore-api/pkg/models"
	"gamestore-api/pkg/mongo"
)

func GetAllUsers(c *gin.Context) {
	users, err := mongo.GetAllUsers(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Failed to get users", nil))
		return
	}

	c.JSON(http.StatusOK, global.SuccessResponse(users))
}

func CreateUser(c *gin.Context) {
	var req models.CreateUserRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, global.ErrorResponse("Invalid request data", []global.ValidationError{
			{Field: "request", Message: err.Error(), Code: "validation_error"},
		}))
		return
	}

	createdUser, err := mongo.CreateUser(c.Request.Context(), req.ToStoreUser())
	if err != nil {
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Failed to create user", nil))
		return
	}

	c.JSON(http.StatusCreated, global.SuccessResponse(createdUser))
}

// EditUserByID applies a partial name/age update to a user record.
func EditUserByID(c *gin.Context) {
	id := c.Param("id")

	objectID, err := bson.ObjectIDFromHex(id)
	if err != nil {
		c.JSON(http.StatusBadRequest, global.ErrorResponse("Invalid user ID format", []global.ValidationError{
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

	immutableFields := []string{"_id", "id"}
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

	updatedUser, err := mongo.UpdateUserByID(c.Request.Context(), objectID, updates)
	if err != nil {
		if mongo.IsNoDocuments(err) {
			c.JSON(http.StatusNotFound, global.ErrorResponse("User not found", []global.ValidationError{
				{Field: "id", Message: "No user exists with this ID", Code: "not_found"},
			}))
			return
		}
		log.Printf("Error updating user in MongoDB: %v", err)
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Failed to update user", nil))
		return
	}

	c.JSON(http.StatusOK, global.SuccessResponse(updatedUser))
}

func DeleteUserByID(c *gin.Context) {
	id := c.Param("id")

	objectID, err := bson.ObjectIDFromHex(id)
	if err != nil {
		c.JSON(http.StatusBadRequest, global.ErrorResponse("Invalid user ID format", []global.ValidationError{
			{Field: "id", Message: "Must be a valid MongoDB ObjectID", Code: "invalid_format"},
		}))
		return
	}

	deletedUser, err := mongo.DeleteUserByID(c.Request.Context(), objectID)
	if err != nil {
		if mongo.IsNoDocuments(err) {
			c.JSON(http.StatusNotFound, global.ErrorResponse("User not found", []global.ValidationError{
				{Field: "id", Message: "No user exists with this ID", Code: "not_found"},
			}))
			return
		}
		log.Printf("Error deleting user from MongoDB: %v", err)
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Failed to delete user", nil))
		return
	}

	c.JSON(http.StatusOK, global.SuccessResponse(map[string]interface{}{
		"deleted_user": deletedUser,
		"message":      "User successfully deleted",
	}))
}
