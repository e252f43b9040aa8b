package ledger

import (
	"errors"
	"time"

	"github.com/adamfarahx/finance-analytics-db/pkg/domain/money"
	"github.com/google/uuid"
)

var (
	// ErrTransactionNotFound is returned when a transaction cannot be found.
	ErrTransactionNotFound = errors.New("transaction not found")
	// ErrAmountMustBePositive is returned when a transaction amount is zero or
	// negative. Direction alone encodes sign; amounts are always positive.
	ErrAmountMustBePositive = errors.New("transaction amount must be positive")
	// ErrInvalidDirection is returned when a direction is neither debit nor credit.
	ErrInvalidDirection = errors.New("direction must be debit or credit")
	// ErrDuplicateTransaction is returned when the (account, date, amount,
	// merchant) duplicate-import guard rejects a transaction.
	ErrDuplicateTransaction = errors.New("duplicate transaction")
)

// Direction encodes which way a transaction moves an account balance.
type Direction string

const (
	// Debit decreases the account balance (money out).
	Debit Direction = "debit"
	// Credit increases the account balance (money in).
	Credit Direction = "credit"
)

// Valid reports whether the direction is one of the two defined values.
func (d Direction) Valid() bool {
	return d == Debit || d == Credit
}

// Sign returns +1 for credit and -1 for debit.
func (d Direction) Sign() int64 {
	if d == Credit {
		return 1
	}
	return -1
}

// Transaction is a single ledger entry against exactly one account.
//
// Invariants:
//   - Amount is strictly positive; Direction encodes the sign.
//   - (AccountID, OccurredOn, Amount, Merchant) is unique. This is the sole
//     duplicate-import guard and is enforced by the storage layer.
type Transaction struct {
	ID         uuid.UUID
	AccountID  uuid.UUID
	CategoryID *uuid.UUID
	OccurredOn time.Time // business date, distinct from CreatedAt
	Amount     money.Money
	Direction  Direction
	Merchant   string
	Note       string
	Recurring  bool // true when materialized from a recurring definition
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// SignedAmount returns the balance delta this transaction implies, in
// smallest currency units: positive for credit, negative for debit.
func (t *Transaction) SignedAmount() int64 {
	return t.Direction.Sign() * t.Amount.Amount()
}

// Validate checks the amount and direction invariants.
func (t *Transaction) Validate() error {
	if !t.Amount.IsPositive() {
		return ErrAmountMustBePositive
	}
	if !t.Direction.Valid() {
		return ErrInvalidDirection
	}
	return nil
}

// SignedSum folds a set of transactions into the balance they imply.
func SignedSum(txs []*Transaction) int64 {
	var sum int64
	for _, tx := range txs {
		sum += tx.SignedAmount()
	}
	return sum
}
