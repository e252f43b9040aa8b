// Package repository provides the GORM implementations of the data-access
// contracts in pkg/repository, plus the unit-of-work that binds them to one
// transaction.
package repository

import (
	"context"

	"github.com/adamfarahx/finance-analytics-db/infra/repository/account"
	"github.com/adamfarahx/finance-analytics-db/infra/repository/budget"
	"github.com/adamfarahx/finance-analytics-db/infra/repository/category"
	"github.com/adamfarahx/finance-analytics-db/infra/repository/recurring"
	"github.com/adamfarahx/finance-analytics-db/infra/repository/transaction"
	"github.com/adamfarahx/finance-analytics-db/infra/repository/user"
	"github.com/adamfarahx/finance-analytics-db/pkg/repository"
	"gorm.io/gorm"
)

// UoW provides transaction boundary and repository access in one abstraction.
//
// All repositories handed out inside Do share the same *gorm.DB transaction,
// which is what makes "mutate transaction row + adjust account balance" an
// indivisible step: either both commit or both roll back.
type UoW struct {
	db *gorm.DB
	tx *gorm.DB
}

// NewUoW creates a new UoW for the given *gorm.DB.
func NewUoW(db *gorm.DB) *UoW {
	return &UoW{db: db}
}

// Do runs the given function in a transaction boundary, providing a UoW whose
// repositories are bound to that transaction.
func (u *UoW) Do(ctx context.Context, fn func(uow repository.UnitOfWork) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&UoW{db: u.db, tx: tx})
	})
}

// session returns the transaction when inside Do, the base connection otherwise.
func (u *UoW) session() *gorm.DB {
	if u.tx != nil {
		return u.tx
	}
	return u.db
}

// AccountRepository returns an account repository bound to the current session.
func (u *UoW) AccountRepository() (repository.AccountRepository, error) {
	return account.New(u.session()), nil
}

// TransactionRepository returns a transaction repository bound to the current session.
func (u *UoW) TransactionRepository() (repository.TransactionRepository, error) {
	return transaction.New(u.session()), nil
}

// RecurringRepository returns a recurring-definition repository bound to the current session.
func (u *UoW) RecurringRepository() (repository.RecurringRepository, error) {
	return recurring.New(u.session()), nil
}

// CategoryRepository returns a category repository bound to the current session.
func (u *UoW) CategoryRepository() (repository.CategoryRepository, error) {
	return category.New(u.session()), nil
}

// BudgetRepository returns a budget repository bound to the current session.
func (u *UoW) BudgetRepository() (repository.BudgetRepository, error) {
	return budget.New(u.session()), nil
}

// UserRepository returns a user repository bound to the current session.
func (u *UoW) UserRepository() (repository.UserRepository, error) {
	return user.New(u.session()), nil
}
