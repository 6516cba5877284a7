package types

import (
	"time"

	"github.com/google/uuid"
)

// RegisterRequest is the request body for creating an API user.
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// LoginRequest is the login request body.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// User is the API-facing user shape. The password hash never leaves the
// db package.
type User struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// AuthResponse carries the user plus a signed bearer token, returned by
// both register and login.
type AuthResponse struct {
	User  *User  `json:"user"`
	Token string `json:"token"`
}
