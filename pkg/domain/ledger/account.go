// Package ledger contains the account and transaction aggregate of the
// personal-finance core: account kinds, transaction direction semantics, and
// the reconciliation report produced when a stored balance is audited against
// the signed sum of its transactions.
package ledger

import (
	"errors"
	"time"

	"github.com/adamfarahx/finance-analytics-db/pkg/currency"
	"github.com/adamfarahx/finance-analytics-db/pkg/domain/common"
	"github.com/adamfarahx/finance-analytics-db/pkg/domain/money"
	"github.com/google/uuid"
)

var (
	// ErrAccountNotFound is returned when an account cannot be found.
	ErrAccountNotFound = errors.New("account not found")
	// ErrAccountInactive is returned when a mutation targets a deactivated account.
	ErrAccountInactive = errors.New("account is deactivated")
	// ErrInvalidAccountKind is returned when an account kind is outside the enumeration.
	ErrInvalidAccountKind = errors.New("invalid account kind")
	// ErrNilUserID is returned when an account is built without an owner.
	ErrNilUserID = errors.New("account must have an owner")
)

// Kind enumerates the supported account kinds.
type Kind string

const (
	KindChecking   Kind = "checking"
	KindSavings    Kind = "savings"
	KindCreditCard Kind = "credit_card"
	KindInvestment Kind = "investment"
	KindCash       Kind = "cash"
)

// Valid reports whether the kind is part of the enumeration.
func (k Kind) Valid() bool {
	switch k {
	case KindChecking, KindSavings, KindCreditCard, KindInvestment, KindCash:
		return true
	}
	return false
}

// Account represents a user's financial account.
//
// Invariants:
//   - An account always has a valid owner (UserID) and a valid Kind.
//   - Balance equals the signed sum of all transactions applied to it through
//     the ledger service; it is never mutated directly by callers.
//   - Accounts are deactivated rather than deleted so history survives.
type Account struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Name      string
	Kind      Kind
	Balance   money.Money
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Builder provides a fluent API for constructing Account instances so that
// only valid accounts can be built.
type Builder struct {
	id        uuid.UUID
	userID    uuid.UUID
	name      string
	kind      Kind
	balance   int64
	currency  currency.Code
	active    bool
	createdAt time.Time
	updatedAt time.Time
}

// NewAccount creates a Builder with sensible defaults: a fresh UUID, the
// default currency, a checking kind, and the active flag set.
func NewAccount() *Builder {
	return &Builder{
		id:        uuid.New(),
		kind:      KindChecking,
		currency:  currency.DefaultCurrency,
		active:    true,
		createdAt: time.Now(),
	}
}

// WithID sets the ID for the account being built.
func (b *Builder) WithID(id uuid.UUID) *Builder {
	b.id = id
	return b
}

// WithUserID sets the owning user. Mandatory.
func (b *Builder) WithUserID(userID uuid.UUID) *Builder {
	b.userID = userID
	return b
}

// WithName sets the display name for the account.
func (b *Builder) WithName(name string) *Builder {
	b.name = name
	return b
}

// WithKind sets the account kind.
func (b *Builder) WithKind(kind Kind) *Builder {
	b.kind = kind
	return b
}

// WithCurrency sets the account currency. An empty code keeps the default.
func (b *Builder) WithCurrency(code currency.Code) *Builder {
	if code != "" {
		b.currency = code
	}
	return b
}

// WithBalance sets the balance in smallest currency units. Only for hydrating
// an existing account from the data store or for test setup.
func (b *Builder) WithBalance(balance int64) *Builder {
	b.balance = balance
	return b
}

// WithActive sets the active flag. Only for hydration.
func (b *Builder) WithActive(active bool) *Builder {
	b.active = active
	return b
}

// WithCreatedAt sets the creation timestamp. Only for hydration.
func (b *Builder) WithCreatedAt(t time.Time) *Builder {
	b.createdAt = t
	return b
}

// WithUpdatedAt sets the last-updated timestamp. Only for hydration.
func (b *Builder) WithUpdatedAt(t time.Time) *Builder {
	b.updatedAt = t
	return b
}

// Build validates all invariants and returns the Account.
func (b *Builder) Build() (*Account, error) {
	if b.userID == uuid.Nil {
		return nil, ErrNilUserID
	}
	if !b.kind.Valid() {
		return nil, ErrInvalidAccountKind
	}
	if !currency.IsValidCurrencyFormat(string(b.currency)) {
		return nil, common.ErrInvalidCurrencyCode
	}
	if !currency.IsSupported(string(b.currency)) {
		return nil, common.ErrUnsupportedCurrency
	}
	balance, err := money.NewFromSmallestUnit(b.balance, b.currency)
	if err != nil {
		return nil, err
	}
	return &Account{
		ID:        b.id,
		UserID:    b.userID,
		Name:      b.name,
		Kind:      b.kind,
		Balance:   balance,
		Active:    b.active,
		CreatedAt: b.createdAt,
		UpdatedAt: b.updatedAt,
	}, nil
}
