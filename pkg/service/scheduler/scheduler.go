// Package scheduler materializes due recurring definitions into concrete
// debit transactions and advances their schedule. It is invoked by an
// external job runner (cron) which supplies the as-of date, keeping runs
// deterministic and testable.
package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/adamfarahx/finance-analytics-db/pkg/domain"
	"github.com/adamfarahx/finance-analytics-db/pkg/domain/money"
	"github.com/adamfarahx/finance-analytics-db/pkg/domain/schedule"
	"github.com/adamfarahx/finance-analytics-db/pkg/dto"
	"github.com/adamfarahx/finance-analytics-db/pkg/repository"
	ledgersvc "github.com/adamfarahx/finance-analytics-db/pkg/service/ledger"
	"github.com/adamfarahx/finance-analytics-db/pkg/utils"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// Service manages recurring definitions and runs the due-processing batch.
type Service struct {
	uow      repository.UnitOfWork
	ledger   *ledgersvc.Service
	validate *validator.Validate
	logger   *slog.Logger
}

// New creates a scheduler Service. The ledger service is required so that
// materialized transactions run through the same balance-maintenance path as
// manually entered ones.
func New(uow repository.UnitOfWork, ledger *ledgersvc.Service, logger *slog.Logger) *Service {
	return &Service{
		uow:      uow,
		ledger:   ledger,
		validate: validator.New(),
		logger:   logger,
	}
}

// CreateDefinition registers a recurring obligation. The first occurrence is
// the start date.
func (s *Service) CreateDefinition(ctx context.Context, create dto.RecurringCreate) (def *schedule.Definition, err error) {
	if err = s.validate.Struct(create); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		accounts, err := uow.AccountRepository()
		if err != nil {
			return err
		}
		recurring, err := uow.RecurringRepository()
		if err != nil {
			return err
		}

		acct, err := accounts.Get(ctx, create.AccountID)
		if err != nil {
			return err
		}
		amount, err := money.New(create.Amount, acct.Balance.Currency())
		if err != nil {
			return fmt.Errorf("%w: %v", domain.ErrValidation, err)
		}

		start := utils.DateOnly(create.StartDate)
		var end *time.Time
		if create.EndDate != nil {
			e := utils.DateOnly(*create.EndDate)
			end = &e
		}
		def = &schedule.Definition{
			ID:             uuid.New(),
			AccountID:      create.AccountID,
			CategoryID:     create.CategoryID,
			Amount:         amount,
			Merchant:       create.Merchant,
			Note:           create.Note,
			Cadence:        schedule.Cadence(create.Cadence),
			StartDate:      start,
			EndDate:        end,
			NextOccurrence: start,
			Active:         true,
		}
		if err := def.Validate(); err != nil {
			return fmt.Errorf("%w: %v", domain.ErrValidation, err)
		}
		return recurring.Create(ctx, def)
	})
	if err != nil {
		def = nil
		return
	}
	s.logger.Info("recurring definition created",
		"definition_id", def.ID,
		"account_id", def.AccountID,
		"cadence", def.Cadence,
		"next_occurrence", def.NextOccurrence.Format(time.DateOnly),
	)
	return
}

// ListDefinitions lists the recurring definitions for an account.
func (s *Service) ListDefinitions(ctx context.Context, accountID uuid.UUID) ([]*schedule.Definition, error) {
	repo, err := s.uow.RecurringRepository()
	if err != nil {
		return nil, err
	}
	return repo.ListByAccount(ctx, accountID)
}

// DeactivateDefinition cancels a recurring obligation. Already-materialized
// transactions are untouched.
func (s *Service) DeactivateDefinition(ctx context.Context, id uuid.UUID) error {
	err := s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.RecurringRepository()
		if err != nil {
			return err
		}
		return repo.Deactivate(ctx, id)
	})
	if err != nil {
		return err
	}
	s.logger.Info("recurring definition deactivated", "definition_id", id)
	return nil
}

// ProcessDue materializes one occurrence for every due recurring definition
// and advances its next-occurrence date. Each definition runs in its own unit
// of work: a failed materialization (a duplicate occurrence, a missing
// account) leaves that definition unadvanced so the next run retries the same
// occurrence, and the rest of the batch continues. The duplicate-transaction
// guard makes those retries idempotent.
func (s *Service) ProcessDue(ctx context.Context, asOf time.Time) (*dto.ProcessDueResult, error) {
	asOf = utils.DateOnly(asOf)
	logger := s.logger.With("as_of", asOf.Format(time.DateOnly))

	repo, err := s.uow.RecurringRepository()
	if err != nil {
		return nil, err
	}
	due, err := repo.ListDue(ctx, asOf)
	if err != nil {
		return nil, err
	}
	logger.Info("processing due recurring definitions", "due", len(due))

	result := &dto.ProcessDueResult{AsOf: asOf}
	for _, def := range due {
		if err := s.processOne(ctx, def); err != nil {
			logger.Warn("recurring materialization failed; definition left unadvanced",
				"definition_id", def.ID,
				"account_id", def.AccountID,
				"occurrence", def.NextOccurrence.Format(time.DateOnly),
				"error", err,
			)
			result.Failures = append(result.Failures, dto.ProcessDueFailed{
				DefinitionID: def.ID,
				Reason:       err.Error(),
			})
			continue
		}
		result.Processed++
	}

	logger.Info("recurring run complete",
		"processed", result.Processed,
		"failed", len(result.Failures),
	)
	return result, nil
}

// processOne materializes a single definition's next occurrence and advances
// its schedule inside one unit of work, so the new transaction, its balance
// adjustment, and the date advancement commit or roll back together.
func (s *Service) processOne(ctx context.Context, def *schedule.Definition) error {
	return s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		// Recurring definitions model outgoing obligations only, so every
		// occurrence is a debit.
		_, err := s.ledger.CreateTransactionWith(ctx, uow, dto.TransactionCreate{
			AccountID:  def.AccountID,
			CategoryID: def.CategoryID,
			OccurredOn: def.NextOccurrence,
			Amount:     def.Amount.AmountFloat(),
			Direction:  "debit",
			Merchant:   def.Merchant,
			Note:       def.Note,
			Recurring:  true,
		})
		if err != nil {
			return err
		}

		if !def.Advance() {
			// Unrecognized cadence: keep the date, surface it, carry on.
			s.logger.Warn("unrecognized cadence; next occurrence left unchanged",
				"definition_id", def.ID,
				"cadence", def.Cadence,
			)
		}

		recurring, err := uow.RecurringRepository()
		if err != nil {
			return err
		}
		return recurring.Update(ctx, def)
	})
}
