package models

import (
	"go.mongodb.org/mongo-driver/v2/bson"
)

// StoreUser is a record in the users collection (name/age directory shown on
// the add-item page).
type StoreUser struct {
	ID   bson.ObjectID `json:"id" bson:"_id,omitempty"`
	Name string        `json:"name" bson:"name" validate:"required,min=1,max=100"`
	Age  int           `json:"age" bson:"age" validate:"gte=0"`
}

type CreateUserRequest struct {
	Name string `json:"name" binding:"required"`
	Age  int    `json:"age" binding:"gte=0"`
}

func (req *CreateUserRequest) ToStoreUser() *StoreUser {
	return &StoreUser{
		Name: req.Name,
		Age:  req.Age,
	}
}

// Account holds sign-in credentials for the auth provider.
type Account struct {
	ID          bson.ObjectID `json:"id" bson:"_id,omitempty"`
	Email       string        `json:"email" bson:"email" validate:"required,email"`
	Password    string        `json:"-" bson:"password" validate:"required,min=6"` // bcrypt hash, never exposed
	DisplayName string        `json:"display_name" bson:"display_name"`
}

// Identity is the session-visible slice of an account.
type Identity struct {
	AccountID   string `json:"account_id"`
	DisplayName string `json:"display_name"`
	Email       string `json:"email"`
}

// ToIdentity projects the account into its session identity.
func (a *Account) ToIdentity() Identity {
	return Identity{
		AccountID:   a.ID.Hex(),
		DisplayName: a.DisplayName,
		Email:       a.Email,
	}
}

type RegisterRequest struct {
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=6"`
	DisplayName string `json:"display_name"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}
