package ledger_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/adamfarahx/finance-analytics-db/pkg/domain"
	domainledger "github.com/adamfarahx/finance-analytics-db/pkg/domain/ledger"
	"github.com/adamfarahx/finance-analytics-db/pkg/dto"
	ledgersvc "github.com/adamfarahx/finance-analytics-db/pkg/service/ledger"
	"github.com/adamfarahx/finance-analytics-db/pkg/testutils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService(t *testing.T) (*ledgersvc.Service, *testutils.FakeUoW) {
	t.Helper()
	uow := testutils.NewFakeUoW()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return ledgersvc.New(uow, logger), uow
}

func seedAccount(t *testing.T, uow *testutils.FakeUoW, balanceUnits int64) *domainledger.Account {
	t.Helper()
	a, err := domainledger.NewAccount().
		WithUserID(uuid.New()).
		WithName("Everyday Checking").
		WithBalance(balanceUnits).
		Build()
	require.NoError(t, err)
	uow.AccountRepo.Seed(a)
	return a
}

func balanceOf(t *testing.T, uow *testutils.FakeUoW, id uuid.UUID) int64 {
	t.Helper()
	a, err := uow.AccountRepo.Get(context.Background(), id)
	require.NoError(t, err)
	return a.Balance.Amount()
}

func TestCreateAccount(t *testing.T) {
	svc, _ := newService(t)

	a, err := svc.CreateAccount(context.Background(), dto.AccountCreate{
		UserID:   uuid.New(),
		Name:     "Savings",
		Kind:     "savings",
		Currency: "USD",
	})
	require.NoError(t, err)
	assert.Equal(t, domainledger.KindSavings, a.Kind)
	assert.True(t, a.Balance.IsZero())
	assert.True(t, a.Active)
}

func TestCreateAccount_InvalidKind(t *testing.T) {
	svc, _ := newService(t)

	_, err := svc.CreateAccount(context.Background(), dto.AccountCreate{
		UserID: uuid.New(),
		Name:   "Sock Drawer",
		Kind:   "mattress",
	})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestCreateTransaction_AdjustsBalance(t *testing.T) {
	svc, uow := newService(t)
	acct := seedAccount(t, uow, 100000) // 1000.00 USD

	tx, err := svc.CreateTransaction(context.Background(), dto.TransactionCreate{
		AccountID:  acct.ID,
		OccurredOn: time.Date(2024, 3, 5, 14, 30, 0, 0, time.UTC),
		Amount:     75.50,
		Direction:  "debit",
		Merchant:   "Corner Grocery",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(-7550), tx.SignedAmount())
	assert.Equal(t, int64(92450), balanceOf(t, uow, acct.ID))

	// occurrence date is truncated to the business day
	assert.Equal(t, time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), tx.OccurredOn)
}

func TestCreateTransaction_ZeroAmountRejected(t *testing.T) {
	svc, uow := newService(t)
	acct := seedAccount(t, uow, 100000)

	_, err := svc.CreateTransaction(context.Background(), dto.TransactionCreate{
		AccountID:  acct.ID,
		OccurredOn: time.Now(),
		Amount:     0,
		Direction:  "debit",
	})
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Equal(t, int64(100000), balanceOf(t, uow, acct.ID))
}

func TestCreateTransaction_UnknownAccount(t *testing.T) {
	svc, _ := newService(t)

	_, err := svc.CreateTransaction(context.Background(), dto.TransactionCreate{
		AccountID:  uuid.New(),
		OccurredOn: time.Now(),
		Amount:     10.00,
		Direction:  "credit",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreateTransaction_InactiveAccount(t *testing.T) {
	svc, uow := newService(t)
	acct := seedAccount(t, uow, 0)
	require.NoError(t, uow.AccountRepo.Deactivate(context.Background(), acct.ID))

	_, err := svc.CreateTransaction(context.Background(), dto.TransactionCreate{
		AccountID:  acct.ID,
		OccurredOn: time.Now(),
		Amount:     10.00,
		Direction:  "credit",
	})
	assert.ErrorIs(t, err, domainledger.ErrAccountInactive)
}

func TestCreateTransaction_DuplicateRejected(t *testing.T) {
	svc, uow := newService(t)
	acct := seedAccount(t, uow, 100000)

	create := dto.TransactionCreate{
		AccountID:  acct.ID,
		OccurredOn: time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC),
		Amount:     75.50,
		Direction:  "debit",
		Merchant:   "Corner Grocery",
	}
	_, err := svc.CreateTransaction(context.Background(), create)
	require.NoError(t, err)

	_, err = svc.CreateTransaction(context.Background(), create)
	assert.ErrorIs(t, err, domain.ErrAlreadyExists)
	// the replay changed nothing
	assert.Equal(t, int64(92450), balanceOf(t, uow, acct.ID))
	txs, err := svc.ListTransactions(context.Background(), acct.ID)
	require.NoError(t, err)
	assert.Len(t, txs, 1)
}

func TestDeleteTransaction_ReversesBalance(t *testing.T) {
	svc, uow := newService(t)
	acct := seedAccount(t, uow, 100000)

	tx, err := svc.CreateTransaction(context.Background(), dto.TransactionCreate{
		AccountID:  acct.ID,
		OccurredOn: time.Now(),
		Amount:     75.50,
		Direction:  "debit",
		Merchant:   "Corner Grocery",
	})
	require.NoError(t, err)
	require.Equal(t, int64(92450), balanceOf(t, uow, acct.ID))

	require.NoError(t, svc.DeleteTransaction(context.Background(), tx.ID))
	assert.Equal(t, int64(100000), balanceOf(t, uow, acct.ID))

	err = svc.DeleteTransaction(context.Background(), tx.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdateTransaction_SameAccountDelta(t *testing.T) {
	svc, uow := newService(t)
	acct := seedAccount(t, uow, 100000)

	tx, err := svc.CreateTransaction(context.Background(), dto.TransactionCreate{
		AccountID:  acct.ID,
		OccurredOn: time.Now(),
		Amount:     75.50,
		Direction:  "debit",
		Merchant:   "Corner Grocery",
	})
	require.NoError(t, err)

	newAmount := 100.00
	updated, err := svc.UpdateTransaction(context.Background(), tx.ID, dto.TransactionUpdate{
		Amount: &newAmount,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(-10000), updated.SignedAmount())
	assert.Equal(t, int64(90000), balanceOf(t, uow, acct.ID))
}

func TestUpdateTransaction_DirectionFlip(t *testing.T) {
	svc, uow := newService(t)
	acct := seedAccount(t, uow, 100000)

	tx, err := svc.CreateTransaction(context.Background(), dto.TransactionCreate{
		AccountID:  acct.ID,
		OccurredOn: time.Now(),
		Amount:     50.00,
		Direction:  "debit",
	})
	require.NoError(t, err)
	require.Equal(t, int64(95000), balanceOf(t, uow, acct.ID))

	credit := "credit"
	_, err = svc.UpdateTransaction(context.Background(), tx.ID, dto.TransactionUpdate{
		Direction: &credit,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(105000), balanceOf(t, uow, acct.ID))
}

func TestUpdateTransaction_MoveBetweenAccounts(t *testing.T) {
	svc, uow := newService(t)
	src := seedAccount(t, uow, 100000)
	dst := seedAccount(t, uow, 50000)

	tx, err := svc.CreateTransaction(context.Background(), dto.TransactionCreate{
		AccountID:  src.ID,
		OccurredOn: time.Now(),
		Amount:     75.50,
		Direction:  "debit",
	})
	require.NoError(t, err)
	require.Equal(t, int64(92450), balanceOf(t, uow, src.ID))

	_, err = svc.UpdateTransaction(context.Background(), tx.ID, dto.TransactionUpdate{
		AccountID: &dst.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(100000), balanceOf(t, uow, src.ID))
	assert.Equal(t, int64(42450), balanceOf(t, uow, dst.ID))
}

func TestUpdateTransaction_CrossAccountFailureRollsBackBoth(t *testing.T) {
	svc, uow := newService(t)
	src := seedAccount(t, uow, 100000)
	dst := seedAccount(t, uow, 50000)

	tx, err := svc.CreateTransaction(context.Background(), dto.TransactionCreate{
		AccountID:  src.ID,
		OccurredOn: time.Now(),
		Amount:     75.50,
		Direction:  "debit",
	})
	require.NoError(t, err)
	require.Equal(t, int64(92450), balanceOf(t, uow, src.ID))

	// Fail the adjustment against the destination after the source reversal
	// already ran inside the same unit of work.
	uow.AccountRepo.FailAdjust = func(id uuid.UUID, delta int64) error {
		if id == dst.ID {
			return domainledger.ErrAccountNotFound
		}
		return nil
	}
	_, err = svc.UpdateTransaction(context.Background(), tx.ID, dto.TransactionUpdate{
		AccountID: &dst.ID,
	})
	require.Error(t, err)

	uow.AccountRepo.FailAdjust = nil
	assert.Equal(t, int64(92450), balanceOf(t, uow, src.ID))
	assert.Equal(t, int64(50000), balanceOf(t, uow, dst.ID))
	stored, err := uow.TransactionRepo.Get(context.Background(), tx.ID)
	require.NoError(t, err)
	assert.Equal(t, src.ID, stored.AccountID)
}

func TestDeactivateAccount_PreservesHistory(t *testing.T) {
	svc, uow := newService(t)
	acct := seedAccount(t, uow, 100000)

	_, err := svc.CreateTransaction(context.Background(), dto.TransactionCreate{
		AccountID:  acct.ID,
		OccurredOn: time.Now(),
		Amount:     25.00,
		Direction:  "debit",
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeactivateAccount(context.Background(), acct.ID))

	got, err := svc.GetAccount(context.Background(), acct.ID)
	require.NoError(t, err)
	assert.False(t, got.Active)
	txs, err := svc.ListTransactions(context.Background(), acct.ID)
	require.NoError(t, err)
	assert.Len(t, txs, 1)
}

func TestGetBalance(t *testing.T) {
	svc, uow := newService(t)
	acct := seedAccount(t, uow, 12345)

	m, err := svc.GetBalance(context.Background(), acct.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(12345), m.Amount())

	_, err = svc.GetBalance(context.Background(), uuid.New())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
