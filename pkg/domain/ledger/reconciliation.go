package ledger

import (
	"github.com/adamfarahx/finance-analytics-db/pkg/domain/money"
	"github.com/google/uuid"
)

// ReconciliationTolerance is the absolute difference, in smallest currency
// units, below which a stored balance is considered in agreement with the
// recomputed balance. One minor unit absorbs accumulated rounding.
const ReconciliationTolerance = 1

// Reconciliation is the result of independently recomputing an account's
// balance from its transactions and comparing it to the stored value.
// It is a finding, not an exception: drift is surfaced to an operator and
// never auto-corrected, since auto-correction could mask a genuine bug.
type Reconciliation struct {
	AccountID  uuid.UUID
	Stored     money.Money
	Computed   money.Money
	Difference money.Money
	Reconciled bool
}

// NewReconciliation builds the report for an account given its stored balance
// and the independently recomputed signed sum of its transactions.
func NewReconciliation(accountID uuid.UUID, stored money.Money, computedUnits int64) Reconciliation {
	computed := money.NewFromData(computedUnits, stored.Currency().String())
	diff := money.NewFromData(stored.Amount()-computedUnits, stored.Currency().String())
	return Reconciliation{
		AccountID:  accountID,
		Stored:     stored,
		Computed:   computed,
		Difference: diff,
		Reconciled: diff.Abs().Amount() <= ReconciliationTolerance,
	}
}
