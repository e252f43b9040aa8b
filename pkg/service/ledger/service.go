// Package ledger implements the balance-maintenance service: every
// transaction create, update, or delete runs inside one unit of work that
// also applies the compensating balance adjustment to the owning account, so
// the stored balance always tracks the signed sum of the account's
// transactions without callers ever recomputing it.
package ledger

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/adamfarahx/finance-analytics-db/pkg/currency"
	"github.com/adamfarahx/finance-analytics-db/pkg/domain"
	"github.com/adamfarahx/finance-analytics-db/pkg/domain/ledger"
	"github.com/adamfarahx/finance-analytics-db/pkg/domain/money"
	"github.com/adamfarahx/finance-analytics-db/pkg/dto"
	"github.com/adamfarahx/finance-analytics-db/pkg/repository"
	"github.com/adamfarahx/finance-analytics-db/pkg/utils"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// Service provides account and transaction operations with incremental
// balance maintenance.
type Service struct {
	uow      repository.UnitOfWork
	validate *validator.Validate
	logger   *slog.Logger
}

// New creates a ledger Service.
func New(uow repository.UnitOfWork, logger *slog.Logger) *Service {
	return &Service{
		uow:      uow,
		validate: validator.New(),
		logger:   logger,
	}
}

// validationError tags input failures so callers can match domain.ErrValidation.
func validationError(err error) error {
	return fmt.Errorf("%w: %v", domain.ErrValidation, err)
}

// CreateAccount creates a new account for a user.
func (s *Service) CreateAccount(ctx context.Context, create dto.AccountCreate) (a *ledger.Account, err error) {
	if err = s.validate.Struct(create); err != nil {
		return nil, validationError(err)
	}
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.AccountRepository()
		if err != nil {
			return err
		}
		a, err = ledger.NewAccount().
			WithUserID(create.UserID).
			WithName(create.Name).
			WithKind(ledger.Kind(create.Kind)).
			WithCurrency(currency.Code(create.Currency)).
			Build()
		if err != nil {
			return err
		}
		return repo.Create(ctx, a)
	})
	if err != nil {
		a = nil
		return
	}
	s.logger.Info("account created", "account_id", a.ID, "user_id", a.UserID, "kind", a.Kind)
	return
}

// GetAccount fetches a single account.
func (s *Service) GetAccount(ctx context.Context, id uuid.UUID) (*ledger.Account, error) {
	repo, err := s.uow.AccountRepository()
	if err != nil {
		return nil, err
	}
	return repo.Get(ctx, id)
}

// ListAccounts lists a user's accounts.
func (s *Service) ListAccounts(ctx context.Context, userID uuid.UUID) ([]*ledger.Account, error) {
	repo, err := s.uow.AccountRepository()
	if err != nil {
		return nil, err
	}
	return repo.ListByUser(ctx, userID)
}

// GetBalance returns the stored balance of an account.
func (s *Service) GetBalance(ctx context.Context, id uuid.UUID) (money.Money, error) {
	a, err := s.GetAccount(ctx, id)
	if err != nil {
		return money.Money{}, err
	}
	return a.Balance, nil
}

// DeactivateAccount soft-deletes an account, preserving its transaction history.
func (s *Service) DeactivateAccount(ctx context.Context, id uuid.UUID) error {
	err := s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.AccountRepository()
		if err != nil {
			return err
		}
		return repo.Deactivate(ctx, id)
	})
	if err != nil {
		return err
	}
	s.logger.Info("account deactivated", "account_id", id)
	return nil
}

// CreateTransaction records a transaction and adjusts the owning account's
// balance in one unit of work. A rejected transaction leaves the balance
// exactly as it was.
func (s *Service) CreateTransaction(ctx context.Context, create dto.TransactionCreate) (tx *ledger.Transaction, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		tx, err = s.CreateTransactionWith(ctx, uow, create)
		return err
	})
	if err != nil {
		tx = nil
	}
	return
}

// CreateTransactionWith runs the create step inside a caller-held unit of
// work. The recurring scheduler uses this so that materialized transactions
// flow through the exact same balance-adjustment path as manual entries.
func (s *Service) CreateTransactionWith(ctx context.Context, uow repository.UnitOfWork, create dto.TransactionCreate) (*ledger.Transaction, error) {
	if err := s.validate.Struct(create); err != nil {
		return nil, validationError(err)
	}

	accounts, err := uow.AccountRepository()
	if err != nil {
		return nil, err
	}
	transactions, err := uow.TransactionRepository()
	if err != nil {
		return nil, err
	}

	acct, err := accounts.Get(ctx, create.AccountID)
	if err != nil {
		return nil, err
	}
	if !acct.Active {
		return nil, ledger.ErrAccountInactive
	}

	amount, err := money.New(create.Amount, acct.Balance.Currency())
	if err != nil {
		return nil, validationError(err)
	}
	tx := &ledger.Transaction{
		ID:         uuid.New(),
		AccountID:  create.AccountID,
		CategoryID: create.CategoryID,
		OccurredOn: utils.DateOnly(create.OccurredOn),
		Amount:     amount,
		Direction:  ledger.Direction(create.Direction),
		Merchant:   create.Merchant,
		Note:       create.Note,
		Recurring:  create.Recurring,
	}
	if err := tx.Validate(); err != nil {
		return nil, validationError(err)
	}

	if err := transactions.Create(ctx, tx); err != nil {
		return nil, err
	}
	if err := accounts.AdjustBalance(ctx, tx.AccountID, tx.SignedAmount()); err != nil {
		return nil, err
	}

	s.logger.Info("transaction recorded",
		"transaction_id", tx.ID,
		"account_id", tx.AccountID,
		"direction", tx.Direction,
		"amount", tx.Amount.String(),
		"recurring", tx.Recurring,
	)
	return tx, nil
}

// UpdateTransaction changes a transaction's amount, direction, account,
// occurrence date, category, merchant, or note. The prior adjustment is
// reversed against the prior account and the new adjustment applied against
// the new account as one indivisible step; if anything fails neither
// account's balance changes.
func (s *Service) UpdateTransaction(ctx context.Context, id uuid.UUID, update dto.TransactionUpdate) (tx *ledger.Transaction, err error) {
	if err = s.validate.Struct(update); err != nil {
		return nil, validationError(err)
	}
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		accounts, err := uow.AccountRepository()
		if err != nil {
			return err
		}
		transactions, err := uow.TransactionRepository()
		if err != nil {
			return err
		}

		prior, err := transactions.Get(ctx, id)
		if err != nil {
			return err
		}
		priorAccountID := prior.AccountID
		priorSigned := prior.SignedAmount()

		next := *prior
		if update.AccountID != nil {
			next.AccountID = *update.AccountID
		}
		if update.CategoryID != nil {
			next.CategoryID = update.CategoryID
		}
		if update.OccurredOn != nil {
			next.OccurredOn = utils.DateOnly(*update.OccurredOn)
		}
		if update.Direction != nil {
			next.Direction = ledger.Direction(*update.Direction)
		}
		if update.Merchant != nil {
			next.Merchant = *update.Merchant
		}
		if update.Note != nil {
			next.Note = *update.Note
		}

		acct, err := accounts.Get(ctx, next.AccountID)
		if err != nil {
			return err
		}
		if next.AccountID != priorAccountID && !acct.Active {
			return ledger.ErrAccountInactive
		}
		if update.Amount != nil {
			amount, err := money.New(*update.Amount, acct.Balance.Currency())
			if err != nil {
				return validationError(err)
			}
			next.Amount = amount
		}
		if err := next.Validate(); err != nil {
			return validationError(err)
		}

		if err := transactions.Update(ctx, &next); err != nil {
			return err
		}

		// Reverse the prior adjustment, apply the new one. Same-account
		// updates collapse into a single delta.
		if next.AccountID == priorAccountID {
			if delta := next.SignedAmount() - priorSigned; delta != 0 {
				if err := accounts.AdjustBalance(ctx, priorAccountID, delta); err != nil {
					return err
				}
			}
		} else {
			if err := accounts.AdjustBalance(ctx, priorAccountID, -priorSigned); err != nil {
				return err
			}
			if err := accounts.AdjustBalance(ctx, next.AccountID, next.SignedAmount()); err != nil {
				return err
			}
		}

		tx = &next
		return nil
	})
	if err != nil {
		tx = nil
		return
	}
	s.logger.Info("transaction updated", "transaction_id", id, "account_id", tx.AccountID)
	return
}

// DeleteTransaction removes a transaction and reverses its balance
// adjustment in one unit of work.
func (s *Service) DeleteTransaction(ctx context.Context, id uuid.UUID) error {
	err := s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		accounts, err := uow.AccountRepository()
		if err != nil {
			return err
		}
		transactions, err := uow.TransactionRepository()
		if err != nil {
			return err
		}

		tx, err := transactions.Get(ctx, id)
		if err != nil {
			return err
		}
		if err := transactions.Delete(ctx, id); err != nil {
			return err
		}
		return accounts.AdjustBalance(ctx, tx.AccountID, -tx.SignedAmount())
	})
	if err != nil {
		return err
	}
	s.logger.Info("transaction deleted", "transaction_id", id)
	return nil
}

// ListTransactions lists an account's transactions in occurrence order.
func (s *Service) ListTransactions(ctx context.Context, accountID uuid.UUID) ([]*ledger.Transaction, error) {
	repo, err := s.uow.TransactionRepository()
	if err != nil {
		return nil, err
	}
	return repo.ListByAccount(ctx, accountID)
}
