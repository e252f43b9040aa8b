// Package repository defines the data-access contracts consumed by the
// service layer. Implementations live under infra/repository.
package repository

import (
	"context"
	"time"

	"github.com/adamfarahx/finance-analytics-db/pkg/domain/ledger"
	"github.com/adamfarahx/finance-analytics-db/pkg/domain/schedule"
	"github.com/adamfarahx/finance-analytics-db/pkg/domain/user"
	"github.com/google/uuid"
)

// AccountRepository defines the interface for account data access operations.
type AccountRepository interface {
	Get(ctx context.Context, id uuid.UUID) (*ledger.Account, error)
	Create(ctx context.Context, account *ledger.Account) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*ledger.Account, error)
	// AdjustBalance applies a signed delta (smallest currency units) to the
	// stored balance in a single atomic statement, also bumping the account's
	// last-modified timestamp. Concurrent adjustments to the same account
	// serialize on the row.
	AdjustBalance(ctx context.Context, id uuid.UUID, delta int64) error
	// Deactivate soft-deletes the account, preserving its history.
	Deactivate(ctx context.Context, id uuid.UUID) error
}

// TransactionRepository defines the interface for transaction data access operations.
type TransactionRepository interface {
	Get(ctx context.Context, id uuid.UUID) (*ledger.Transaction, error)
	Create(ctx context.Context, tx *ledger.Transaction) error
	Update(ctx context.Context, tx *ledger.Transaction) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListByAccount(ctx context.Context, accountID uuid.UUID) ([]*ledger.Transaction, error)
	// SumSigned independently recomputes the signed sum of all transactions
	// for an account (credit positive, debit negative), in smallest currency
	// units. Used by reconciliation, never by the write path.
	SumSigned(ctx context.Context, accountID uuid.UUID) (int64, error)
}

// RecurringRepository defines the interface for recurring definition data access.
type RecurringRepository interface {
	Get(ctx context.Context, id uuid.UUID) (*schedule.Definition, error)
	Create(ctx context.Context, def *schedule.Definition) error
	Update(ctx context.Context, def *schedule.Definition) error
	ListByAccount(ctx context.Context, accountID uuid.UUID) ([]*schedule.Definition, error)
	// ListDue returns the active definitions whose next occurrence is due as
	// of the given date and whose end date, if any, has not passed.
	ListDue(ctx context.Context, asOf time.Time) ([]*schedule.Definition, error)
	Deactivate(ctx context.Context, id uuid.UUID) error
}

// CategoryRepository defines the interface for category data access operations.
type CategoryRepository interface {
	Get(ctx context.Context, id uuid.UUID) (*ledger.Category, error)
	Create(ctx context.Context, category *ledger.Category) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*ledger.Category, error)
}

// BudgetRepository defines the interface for budget data access operations.
type BudgetRepository interface {
	Get(ctx context.Context, id uuid.UUID) (*ledger.Budget, error)
	Create(ctx context.Context, budget *ledger.Budget) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*ledger.Budget, error)
}

// UserRepository defines the interface for user data access operations.
type UserRepository interface {
	Get(ctx context.Context, id uuid.UUID) (*user.User, error)
	GetByUsername(ctx context.Context, username string) (*user.User, error)
	GetByEmail(ctx context.Context, email string) (*user.User, error)
	Create(ctx context.Context, u *user.User) error
}
