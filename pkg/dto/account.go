// Package dto defines the data-transfer objects exchanged between the service
// layer, the repositories, and the HTTP surface. Create/update DTOs carry
// go-playground/validator tags; read DTOs are shaped for responses.
package dto

import (
	"time"

	"github.com/google/uuid"
)

// AccountRead is a read-optimized DTO for account queries and API responses.
type AccountRead struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Name      string    `json:"name"`
	Kind      string    `json:"kind"`
	Balance   float64   `json:"balance"`
	Currency  string    `json:"currency"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AccountCreate is a DTO for creating a new account.
type AccountCreate struct {
	UserID   uuid.UUID `json:"-"`
	Name     string    `json:"name" validate:"required,max=128"`
	Kind     string    `json:"kind" validate:"required,oneof=checking savings credit_card investment cash"`
	Currency string    `json:"currency" validate:"omitempty,len=3"`
}
