package repository

import "context"

// UnitOfWork provides a transactional boundary plus repository access in one
// abstraction. Every repository obtained inside Do shares the same storage
// session, so a transaction row mutation and its compensating balance
// adjustment commit or roll back together — never one without the other.
type UnitOfWork interface {
	// Do runs fn inside a storage transaction. The UnitOfWork passed to fn
	// hands out repositories bound to that transaction. Returning an error
	// rolls everything back.
	Do(ctx context.Context, fn func(uow UnitOfWork) error) error

	AccountRepository() (AccountRepository, error)
	TransactionRepository() (TransactionRepository, error)
	RecurringRepository() (RecurringRepository, error)
	CategoryRepository() (CategoryRepository, error)
	BudgetRepository() (BudgetRepository, error)
	UserRepository() (UserRepository, error)
}
