package budget_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/adamfarahx/finance-analytics-db/pkg/domain"
	"github.com/adamfarahx/finance-analytics-db/pkg/domain/ledger"
	"github.com/adamfarahx/finance-analytics-db/pkg/dto"
	budgetsvc "github.com/adamfarahx/finance-analytics-db/pkg/service/budget"
	"github.com/adamfarahx/finance-analytics-db/pkg/testutils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService(t *testing.T) (*budgetsvc.Service, *testutils.FakeUoW) {
	t.Helper()
	uow := testutils.NewFakeUoW()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return budgetsvc.New(uow, logger), uow
}

func TestCreateCategory(t *testing.T) {
	svc, _ := newService(t)
	userID := uuid.New()

	parent, err := svc.CreateCategory(context.Background(), dto.CategoryCreate{
		UserID: userID,
		Name:   "Housing",
		Kind:   "expense",
	})
	require.NoError(t, err)

	child, err := svc.CreateCategory(context.Background(), dto.CategoryCreate{
		UserID:   userID,
		Name:     "Utilities",
		Kind:     "expense",
		ParentID: &parent.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, parent.ID, *child.ParentID)

	_, err = svc.CreateCategory(context.Background(), dto.CategoryCreate{
		UserID: userID,
		Name:   "Misc",
		Kind:   "sideways",
	})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestCreateCategory_CycleRejected(t *testing.T) {
	svc, uow := newService(t)
	userID := uuid.New()

	// two categories already pointing at each other
	a := &ledger.Category{ID: uuid.New(), UserID: userID, Name: "A", Kind: ledger.CategoryExpense}
	b := &ledger.Category{ID: uuid.New(), UserID: userID, Name: "B", Kind: ledger.CategoryExpense, ParentID: &a.ID}
	a.ParentID = &b.ID
	uow.CategoryRepo.Seed(a)
	uow.CategoryRepo.Seed(b)

	_, err := svc.CreateCategory(context.Background(), dto.CategoryCreate{
		UserID:   userID,
		Name:     "C",
		Kind:     "expense",
		ParentID: &a.ID,
	})
	assert.ErrorIs(t, err, ledger.ErrCategoryCycle)
}

func TestCreateBudget(t *testing.T) {
	svc, _ := newService(t)
	userID := uuid.New()

	cat, err := svc.CreateCategory(context.Background(), dto.CategoryCreate{
		UserID: userID,
		Name:   "Groceries",
		Kind:   "expense",
	})
	require.NoError(t, err)

	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	b, err := svc.CreateBudget(context.Background(), dto.BudgetCreate{
		UserID:     userID,
		CategoryID: cat.ID,
		Amount:     600.00,
		StartDate:  start,
		EndDate:    start.AddDate(0, 1, 0),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(60000), b.Amount.Amount())

	got, err := svc.ListBudgets(context.Background(), userID)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestCreateBudget_UnknownCategory(t *testing.T) {
	svc, _ := newService(t)
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	_, err := svc.CreateBudget(context.Background(), dto.BudgetCreate{
		UserID:     uuid.New(),
		CategoryID: uuid.New(),
		Amount:     600.00,
		StartDate:  start,
		EndDate:    start.AddDate(0, 1, 0),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreateBudget_BadDateRange(t *testing.T) {
	svc, _ := newService(t)
	userID := uuid.New()
	cat, err := svc.CreateCategory(context.Background(), dto.CategoryCreate{
		UserID: userID,
		Name:   "Dining",
		Kind:   "expense",
	})
	require.NoError(t, err)

	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	_, err = svc.CreateBudget(context.Background(), dto.BudgetCreate{
		UserID:     userID,
		CategoryID: cat.ID,
		Amount:     600.00,
		StartDate:  start,
		EndDate:    start.AddDate(0, -1, 0),
	})
	assert.ErrorIs(t, err, domain.ErrValidation)
}
