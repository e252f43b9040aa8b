package repository

import (
	"github.com/adamfarahx/finance-analytics-db/infra/repository/account"
	"github.com/adamfarahx/finance-analytics-db/infra/repository/budget"
	"github.com/adamfarahx/finance-analytics-db/infra/repository/category"
	"github.com/adamfarahx/finance-analytics-db/infra/repository/recurring"
	"github.com/adamfarahx/finance-analytics-db/infra/repository/transaction"
	"github.com/adamfarahx/finance-analytics-db/infra/repository/user"
	"gorm.io/gorm"
)

// Migrate creates or updates the schema for all persistence models. The
// resulting constraints (unique indexes, checks, foreign keys) are the first
// line of defense; the service layer re-validates on top of them.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&user.User{},
		&account.Account{},
		&category.Category{},
		&transaction.Transaction{},
		&recurring.Definition{},
		&budget.Budget{},
	)
}
