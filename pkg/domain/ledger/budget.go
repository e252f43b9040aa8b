package ledger

import (
	"errors"
	"time"

	"github.com/adamfarahx/finance-analytics-db/pkg/domain/money"
	"github.com/google/uuid"
)

var (
	// ErrBudgetNotFound is returned when a budget cannot be found.
	ErrBudgetNotFound = errors.New("budget not found")
	// ErrBudgetDateRange is returned when a budget's end date does not follow
	// its start date.
	ErrBudgetDateRange = errors.New("budget end date must be after start date")
)

// Budget caps spending for a user and category over a date range.
type Budget struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	CategoryID uuid.UUID
	Amount     money.Money
	StartDate  time.Time
	EndDate    time.Time
	CreatedAt  time.Time
}

// Validate checks the amount and date-range invariants.
func (b *Budget) Validate() error {
	if !b.Amount.IsPositive() {
		return ErrAmountMustBePositive
	}
	if !b.EndDate.After(b.StartDate) {
		return ErrBudgetDateRange
	}
	return nil
}
