// Package budget provides category and budget management. Both are foreign
// key targets for the ledger core; the service enforces the invariants the
// schema cannot express cheaply (acyclic category tree, kind agreement).
package budget

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/adamfarahx/finance-analytics-db/pkg/domain"
	"github.com/adamfarahx/finance-analytics-db/pkg/domain/ledger"
	"github.com/adamfarahx/finance-analytics-db/pkg/domain/money"
	"github.com/adamfarahx/finance-analytics-db/pkg/dto"
	"github.com/adamfarahx/finance-analytics-db/pkg/repository"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// Service provides category and budget operations.
type Service struct {
	uow      repository.UnitOfWork
	validate *validator.Validate
	logger   *slog.Logger
}

// New creates a budget Service.
func New(uow repository.UnitOfWork, logger *slog.Logger) *Service {
	return &Service{
		uow:      uow,
		validate: validator.New(),
		logger:   logger,
	}
}

// CreateCategory creates a category, rejecting parent assignments that would
// close a cycle in the tree.
func (s *Service) CreateCategory(ctx context.Context, create dto.CategoryCreate) (c *ledger.Category, err error) {
	if err = s.validate.Struct(create); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.CategoryRepository()
		if err != nil {
			return err
		}
		c = &ledger.Category{
			ID:       uuid.New(),
			UserID:   create.UserID,
			Name:     create.Name,
			Kind:     ledger.CategoryKind(create.Kind),
			ParentID: create.ParentID,
		}
		if c.ParentID != nil {
			if err := checkNoCycle(ctx, repo, c.ID, *c.ParentID); err != nil {
				return err
			}
		}
		return repo.Create(ctx, c)
	})
	if err != nil {
		c = nil
		return
	}
	s.logger.Info("category created", "category_id", c.ID, "name", c.Name, "kind", c.Kind)
	return
}

// ListCategories lists a user's categories.
func (s *Service) ListCategories(ctx context.Context, userID uuid.UUID) ([]*ledger.Category, error) {
	repo, err := s.uow.CategoryRepository()
	if err != nil {
		return nil, err
	}
	return repo.ListByUser(ctx, userID)
}

// CreateBudget creates a budget for a user and category over a date range.
func (s *Service) CreateBudget(ctx context.Context, create dto.BudgetCreate) (b *ledger.Budget, err error) {
	if err = s.validate.Struct(create); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		categories, err := uow.CategoryRepository()
		if err != nil {
			return err
		}
		budgets, err := uow.BudgetRepository()
		if err != nil {
			return err
		}

		if _, err := categories.Get(ctx, create.CategoryID); err != nil {
			return err
		}
		amount, err := money.New(create.Amount, "")
		if err != nil {
			return fmt.Errorf("%w: %v", domain.ErrValidation, err)
		}
		b = &ledger.Budget{
			ID:         uuid.New(),
			UserID:     create.UserID,
			CategoryID: create.CategoryID,
			Amount:     amount,
			StartDate:  create.StartDate,
			EndDate:    create.EndDate,
		}
		if err := b.Validate(); err != nil {
			return fmt.Errorf("%w: %v", domain.ErrValidation, err)
		}
		return budgets.Create(ctx, b)
	})
	if err != nil {
		b = nil
		return
	}
	s.logger.Info("budget created", "budget_id", b.ID, "category_id", b.CategoryID)
	return
}

// ListBudgets lists a user's budgets.
func (s *Service) ListBudgets(ctx context.Context, userID uuid.UUID) ([]*ledger.Budget, error) {
	repo, err := s.uow.BudgetRepository()
	if err != nil {
		return nil, err
	}
	return repo.ListByUser(ctx, userID)
}

// checkNoCycle walks up from the proposed parent; finding the new category's
// own ID on the way means the assignment would close a cycle.
func checkNoCycle(ctx context.Context, repo repository.CategoryRepository, id, parentID uuid.UUID) error {
	seen := map[uuid.UUID]bool{id: true}
	current := parentID
	for {
		if seen[current] {
			return ledger.ErrCategoryCycle
		}
		seen[current] = true
		parent, err := repo.Get(ctx, current)
		if err != nil {
			return err
		}
		if parent.ParentID == nil {
			return nil
		}
		current = *parent.ParentID
	}
}
