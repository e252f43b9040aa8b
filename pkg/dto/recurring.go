package dto

import (
	"time"

	"github.com/google/uuid"
)

// RecurringRead is a read-optimized DTO for recurring definition queries.
type RecurringRead struct {
	ID             uuid.UUID  `json:"id"`
	AccountID      uuid.UUID  `json:"account_id"`
	CategoryID     *uuid.UUID `json:"category_id,omitempty"`
	Amount         float64    `json:"amount"`
	Currency       string     `json:"currency"`
	Merchant       string     `json:"merchant,omitempty"`
	Note           string     `json:"note,omitempty"`
	Cadence        string     `json:"cadence"`
	StartDate      time.Time  `json:"start_date"`
	EndDate        *time.Time `json:"end_date,omitempty"`
	NextOccurrence time.Time  `json:"next_occurrence"`
	Active         bool       `json:"active"`
	CreatedAt      time.Time  `json:"created_at"`
}

// RecurringCreate is a DTO for creating a recurring definition.
// Recurring definitions model outgoing obligations only: every occurrence
// materializes as a debit.
type RecurringCreate struct {
	AccountID  uuid.UUID  `json:"account_id" validate:"required"`
	CategoryID *uuid.UUID `json:"category_id,omitempty"`
	Amount     float64    `json:"amount" validate:"required,gt=0"`
	Merchant   string     `json:"merchant" validate:"max=128"`
	Note       string     `json:"note" validate:"max=512"`
	Cadence    string     `json:"cadence" validate:"required,oneof=daily weekly biweekly monthly quarterly yearly"`
	StartDate  time.Time  `json:"start_date" validate:"required"`
	EndDate    *time.Time `json:"end_date,omitempty"`
}

// ProcessDueResult reports one scheduler run over the due definitions.
type ProcessDueResult struct {
	AsOf      time.Time          `json:"as_of"`
	Processed int                `json:"processed"`
	Failures  []ProcessDueFailed `json:"failures,omitempty"`
}

// ProcessDueFailed reports one definition whose materialization failed and
// was left unadvanced for retry on the next run.
type ProcessDueFailed struct {
	DefinitionID uuid.UUID `json:"definition_id"`
	Reason       string    `json:"reason"`
}
