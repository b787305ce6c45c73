package router

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"gamestore-api/pkg/global"
	"gamestore-api/pkg/models"
	"gamestore-api/pkg/mongo"
	"gamestore-api/pkg/session"
)

// Register creates an account and signs it straight in: the client lands in
// the authenticated area immediately after sign-up.
func Register(c *gin.Context) {
	var req models.RegisterRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, global.ErrorResponse("Invalid request data", []global.ValidationError{
			{Field: "request", Message: err.Error(), Code: "validation_error"},
		}))
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Failed to process password", nil))
		return
	}

	displayName := req.DisplayName
	if displayName == "" {
		displayName = req.Email
	}

	account := &models.Account{
		Email:       req.Email,
		Password:    string(hashedPassword),
		DisplayName: displayName,
	}

	createdAccount, err := mongo.CreateAccount(c.Request.Context(), account)
	if err != nil {
		if errors.Is(err, mongo.ErrEmailExists) {
			c.JSON(http.StatusConflict, global.ErrorResponse("Email already registered", []global.ValidationError{
				{Field: "email", Message: "This email is already in use", Code: "duplicate_email"},
			}))
			return
		}
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Failed to create account", nil))
		return
	}

	identity := createdAccount.ToIdentity()
	token, err := session.Create(c.Request.Context(), identity)
	if err != nil {
		log.Printf("Error creating session after registration: %v", err)
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Account created but sign-in failed", nil))
		return
	}

	c.JSON(http.StatusCreated, global.SuccessResponse(map[string]interface{}{
		"token":    token,
		"identity": identity,
	}))
}

// Login verifies credentials and issues a session token.
func Login(c *gin.Context) {
	var req models.LoginRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, global.ErrorResponse("Invalid request data", []global.ValidationError{
			{Field: "request", Message: err.Error(), Code: "validation_error"},
		}))
		return
	}

	account, err := mongo.GetAccountByEmail(c.Request.Context(), req.Email)
	if err != nil {
		if errors.Is(err, mongo.ErrAccountNotFound) {
			c.JSON(http.StatusUnauthorized, global.ErrorResponse("Invalid email or password", nil))
			return
		}
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Failed to sign in", nil))
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.Password), []byte(req.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, global.ErrorResponse("Invalid email or password", nil))
		return
	}

	identity := account.ToIdentity()
	token, err := session.Create(c.Request.Context(), identity)
	if err != nil {
		log.Printf("Error creating session: %v", err)
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Failed to sign in", nil))
		return
	}

	c.JSON(http.StatusOK, global.SuccessResponse(map[string]interface{}{
		"token":    token,
		"identity": identity,
	}))
}

// Logout clears the session. Unknown tokens sign out silently.
func Logout(c *gin.Context) {
	token := sessionToken(c)
	if token == "" {
		c.JSON(http.StatusBadRequest, global.ErrorResponse("No session token provided", []global.ValidationError{
			{Field: "authorization", Message: "A session token is required to sign out", Code: "required"},
		}))
		return
	}

	if err := session.Delete(c.Request.Context(), token); err != nil {
		log.Printf("Error deleting session: %v", err)
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Failed to sign out", nil))
		return
	}

	c.JSON(http.StatusOK, global.SuccessResponse(map[string]string{"message": "Signed out"}))
}

// CurrentSession returns the identity behind the presented token, or 401
// when the session is absent so the client can redirect to login.
func CurrentSession(c *gin.Context) {
	token := sessionToken(c)
	if token == "" {
		c.JSON(http.StatusUnauthorized, global.ErrorResponse("No active session", nil))
		return
	}

	identity, err := session.Get(c.Request.Context(), token)
	if err != nil {
		if errors.Is(err, session.ErrSessionNotFound) {
			c.JSON(http.StatusUnauthorized, global.ErrorResponse("No active session", nil))
			return
		}
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Failed to resolve session", nil))
		return
	}

	c.JSON(http.StatusOK, global.SuccessResponse(identity))
}
