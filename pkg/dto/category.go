package dto

import (
	"time"

	"github.com/google/uuid"
)

// CategoryRead is a read-optimized DTO for category queries.
type CategoryRead struct {
	ID        uuid.UUID  `json:"id"`
	UserID    uuid.UUID  `json:"user_id"`
	Name      string     `json:"name"`
	Kind      string     `json:"kind"`
	ParentID  *uuid.UUID `json:"parent_id,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

// CategoryCreate is a DTO for creating a category.
type CategoryCreate struct {
	UserID   uuid.UUID  `json:"-"`
	Name     string     `json:"name" validate:"required,max=64"`
	Kind     string     `json:"kind" validate:"required,oneof=income expense"`
	ParentID *uuid.UUID `json:"parent_id,omitempty"`
}

// BudgetRead is a read-optimized DTO for budget queries.
type BudgetRead struct {
	ID         uuid.UUID `json:"id"`
	UserID     uuid.UUID `json:"user_id"`
	CategoryID uuid.UUID `json:"category_id"`
	Amount     float64   `json:"amount"`
	Currency   string    `json:"currency"`
	StartDate  time.Time `json:"start_date"`
	EndDate    time.Time `json:"end_date"`
	CreatedAt  time.Time `json:"created_at"`
}

// BudgetCreate is a DTO for creating a budget.
type BudgetCreate struct {
	UserID     uuid.UUID `json:"-"`
	CategoryID uuid.UUID `json:"category_id" validate:"required"`
	Amount     float64   `json:"amount" validate:"required,gt=0"`
	StartDate  time.Time `json:"start_date" validate:"required"`
	EndDate    time.Time `json:"end_date" validate:"required,gtfield=StartDate"`
}
