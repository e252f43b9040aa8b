package ledger

import (
	"context"

	"github.com/adamfarahx/finance-analytics-db/pkg/domain/ledger"
	"github.com/adamfarahx/finance-analytics-db/pkg/repository"
	"github.com/google/uuid"
)

// Reconcile independently recomputes the signed sum of an account's
// transactions and compares it to the stored balance, within a one-minor-unit
// tolerance. It is a read-only audit: drift is reported, never auto-corrected,
// because silently rewriting the stored balance could mask a real bug in the
// maintenance path or an out-of-band write.
func (s *Service) Reconcile(ctx context.Context, accountID uuid.UUID) (report *ledger.Reconciliation, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		accounts, err := uow.AccountRepository()
		if err != nil {
			return err
		}
		transactions, err := uow.TransactionRepository()
		if err != nil {
			return err
		}

		acct, err := accounts.Get(ctx, accountID)
		if err != nil {
			return err
		}
		computed, err := transactions.SumSigned(ctx, accountID)
		if err != nil {
			return err
		}

		r := ledger.NewReconciliation(accountID, acct.Balance, computed)
		report = &r
		return nil
	})
	if err != nil {
		return nil, err
	}
	if !report.Reconciled {
		s.logger.Warn("reconciliation mismatch",
			"account_id", accountID,
			"stored", report.Stored.String(),
			"computed", report.Computed.String(),
			"difference", report.Difference.String(),
		)
	}
	return report, nil
}
