package dto

import (
	"time"

	"github.com/google/uuid"
)

// TransactionRead is a read-optimized DTO for transaction queries and API responses.
type TransactionRead struct {
	ID         uuid.UUID  `json:"id"`
	AccountID  uuid.UUID  `json:"account_id"`
	CategoryID *uuid.UUID `json:"category_id,omitempty"`
	OccurredOn time.Time  `json:"occurred_on"`
	Amount     float64    `json:"amount"`
	Currency   string     `json:"currency"`
	Direction  string     `json:"direction"`
	Merchant   string     `json:"merchant,omitempty"`
	Note       string     `json:"note,omitempty"`
	Recurring  bool       `json:"recurring"`
	CreatedAt  time.Time  `json:"created_at"`
}

// TransactionCreate is a DTO for creating a new transaction.
// Amount is a display amount (e.g. dollars) and must be strictly positive;
// the direction alone encodes the sign.
type TransactionCreate struct {
	AccountID  uuid.UUID  `json:"account_id" validate:"required"`
	CategoryID *uuid.UUID `json:"category_id,omitempty"`
	OccurredOn time.Time  `json:"occurred_on" validate:"required"`
	Amount     float64    `json:"amount" validate:"required,gt=0"`
	Direction  string     `json:"direction" validate:"required,oneof=debit credit"`
	Merchant   string     `json:"merchant" validate:"max=128"`
	Note       string     `json:"note" validate:"max=512"`
	Recurring  bool       `json:"recurring"`
}

// TransactionUpdate is a DTO for updating one or more fields of a
// transaction. Nil fields are left untouched.
type TransactionUpdate struct {
	AccountID  *uuid.UUID `json:"account_id,omitempty"`
	CategoryID *uuid.UUID `json:"category_id,omitempty"`
	OccurredOn *time.Time `json:"occurred_on,omitempty"`
	Amount     *float64   `json:"amount,omitempty" validate:"omitempty,gt=0"`
	Direction  *string    `json:"direction,omitempty" validate:"omitempty,oneof=debit credit"`
	Merchant   *string    `json:"merchant,omitempty" validate:"omitempty,max=128"`
	Note       *string    `json:"note,omitempty" validate:"omitempty,max=512"`
}
