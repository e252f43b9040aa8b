package dto

import (
	"time"

	"github.com/google/uuid"
)

// UserRead is a read-optimized DTO for user queries and API responses.
type UserRead struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// UserCreate is a DTO for registering a new user.
type UserCreate struct {
	Username string `json:"username" validate:"required,min=3,max=64"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}
