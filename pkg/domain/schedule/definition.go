package schedule

import (
	"errors"
	"time"

	"github.com/adamfarahx/finance-analytics-db/pkg/domain/money"
	"github.com/google/uuid"
)

var (
	// ErrDefinitionNotFound is returned when a recurring definition cannot be found.
	ErrDefinitionNotFound = errors.New("recurring definition not found")
	// ErrInvalidCadence is returned when a cadence is outside the enumeration.
	ErrInvalidCadence = errors.New("invalid cadence")
	// ErrAmountMustBePositive is returned when a definition amount is not positive.
	ErrAmountMustBePositive = errors.New("recurring amount must be positive")
)

// Definition is a recurring obligation (bill, subscription) that the
// scheduler materializes into concrete debit transactions.
//
// Invariants:
//   - Amount is strictly positive.
//   - NextOccurrence never moves backward; it is advanced exclusively by the
//     scheduler after a successful materialization.
//   - Definitions are deactivated, never deleted; deactivation does not touch
//     already-materialized transactions.
type Definition struct {
	ID             uuid.UUID
	AccountID      uuid.UUID
	CategoryID     *uuid.UUID
	Amount         money.Money
	Merchant       string
	Note           string
	Cadence        Cadence
	StartDate      time.Time
	EndDate        *time.Time
	NextOccurrence time.Time
	Active         bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Validate checks the amount and cadence invariants.
func (d *Definition) Validate() error {
	if !d.Amount.IsPositive() {
		return ErrAmountMustBePositive
	}
	if !d.Cadence.Valid() {
		return ErrInvalidCadence
	}
	return nil
}

// DueAsOf reports whether the definition should be materialized for asOf:
// it must be active, its next occurrence must not be in the future, and its
// end date (when present) must not have passed.
func (d *Definition) DueAsOf(asOf time.Time) bool {
	if !d.Active {
		return false
	}
	if d.NextOccurrence.After(asOf) {
		return false
	}
	if d.EndDate != nil && d.EndDate.Before(asOf) {
		return false
	}
	return true
}

// Advance moves NextOccurrence forward by one cadence step. For an
// unrecognized cadence the date is left unchanged and false is returned;
// the caller decides whether to surface that.
func (d *Definition) Advance() bool {
	next, ok := d.Cadence.Next(d.NextOccurrence)
	if !ok {
		return false
	}
	d.NextOccurrence = next
	return true
}
