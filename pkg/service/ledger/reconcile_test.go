package ledger_test

import (
	"context"
	"testing"
	"time"

	"github.com/adamfarahx/finance-analytics-db/pkg/domain"
	"github.com/adamfarahx/finance-analytics-db/pkg/dto"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReconcile_MaintainedBalanceAgrees(t *testing.T) {
	svc, uow := newService(t)
	acct := seedAccount(t, uow, 0)

	entries := []dto.TransactionCreate{
		{AccountID: acct.ID, OccurredOn: time.Now(), Amount: 1000.00, Direction: "credit", Merchant: "Payroll"},
		{AccountID: acct.ID, OccurredOn: time.Now().AddDate(0, 0, 1), Amount: 75.50, Direction: "debit", Merchant: "Corner Grocery"},
		{AccountID: acct.ID, OccurredOn: time.Now().AddDate(0, 0, 2), Amount: 12.34, Direction: "debit", Merchant: "Coffee Cart"},
	}
	for _, e := range entries {
		_, err := svc.CreateTransaction(context.Background(), e)
		require.NoError(t, err)
	}

	report, err := svc.Reconcile(context.Background(), acct.ID)
	require.NoError(t, err)
	assert.True(t, report.Reconciled)
	assert.True(t, report.Difference.IsZero())
	assert.Equal(t, int64(91216), report.Stored.Amount())
	assert.Equal(t, int64(91216), report.Computed.Amount())
}

func TestReconcile_ReadOnlyAndRepeatable(t *testing.T) {
	svc, uow := newService(t)
	acct := seedAccount(t, uow, 0)
	_, err := svc.CreateTransaction(context.Background(), dto.TransactionCreate{
		AccountID:  acct.ID,
		OccurredOn: time.Now(),
		Amount:     500.00,
		Direction:  "credit",
	})
	require.NoError(t, err)

	first, err := svc.Reconcile(context.Background(), acct.ID)
	require.NoError(t, err)
	second, err := svc.Reconcile(context.Background(), acct.ID)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, int64(50000), balanceOf(t, uow, acct.ID))
}

func TestReconcile_DetectsDriftWithoutCorrecting(t *testing.T) {
	svc, uow := newService(t)
	acct := seedAccount(t, uow, 0)
	_, err := svc.CreateTransaction(context.Background(), dto.TransactionCreate{
		AccountID:  acct.ID,
		OccurredOn: time.Now(),
		Amount:     500.00,
		Direction:  "credit",
	})
	require.NoError(t, err)

	// an out-of-band write drifts the stored balance
	require.NoError(t, uow.AccountRepo.AdjustBalance(context.Background(), acct.ID, 250))

	report, err := svc.Reconcile(context.Background(), acct.ID)
	require.NoError(t, err)
	assert.False(t, report.Reconciled)
	assert.Equal(t, int64(250), report.Difference.Amount())
	assert.Equal(t, int64(50250), report.Stored.Amount())
	assert.Equal(t, int64(50000), report.Computed.Amount())

	// drift is reported, never repaired
	assert.Equal(t, int64(50250), balanceOf(t, uow, acct.ID))
}

func TestReconcile_ToleratesOneMinorUnit(t *testing.T) {
	svc, uow := newService(t)
	acct := seedAccount(t, uow, 0)
	_, err := svc.CreateTransaction(context.Background(), dto.TransactionCreate{
		AccountID:  acct.ID,
		OccurredOn: time.Now(),
		Amount:     500.00,
		Direction:  "credit",
	})
	require.NoError(t, err)
	require.NoError(t, uow.AccountRepo.AdjustBalance(context.Background(), acct.ID, -1))

	report, err := svc.Reconcile(context.Background(), acct.ID)
	require.NoError(t, err)
	assert.True(t, report.Reconciled)
	assert.Equal(t, int64(-1), report.Difference.Amount())
}

func TestReconcile_UnknownAccount(t *testing.T) {
	svc, _ := newService(t)
	_, err := svc.Reconcile(context.Background(), uuid.New())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
