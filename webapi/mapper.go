package webapi

import (
	"github.com/adamfarahx/finance-analytics-db/pkg/domain/ledger"
	"github.com/adamfarahx/finance-analytics-db/pkg/domain/schedule"
	domainuser "github.com/adamfarahx/finance-analytics-db/pkg/domain/user"
	"github.com/adamfarahx/finance-analytics-db/pkg/dto"
)

func toAccountRead(a *ledger.Account) dto.AccountRead {
	return dto.AccountRead{
		ID:        a.ID,
		UserID:    a.UserID,
		Name:      a.Name,
		Kind:      string(a.Kind),
		Balance:   a.Balance.AmountFloat(),
		Currency:  a.Balance.Currency().String(),
		Active:    a.Active,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

func toAccountReads(accounts []*ledger.Account) []dto.AccountRead {
	out := make([]dto.AccountRead, 0, len(accounts))
	for _, a := range accounts {
		out = append(out, toAccountRead(a))
	}
	return out
}

func toTransactionRead(t *ledger.Transaction) dto.TransactionRead {
	return dto.TransactionRead{
		ID:         t.ID,
		AccountID:  t.AccountID,
		CategoryID: t.CategoryID,
		OccurredOn: t.OccurredOn,
		Amount:     t.Amount.AmountFloat(),
		Currency:   t.Amount.Currency().String(),
		Direction:  string(t.Direction),
		Merchant:   t.Merchant,
		Note:       t.Note,
		Recurring:  t.Recurring,
		CreatedAt:  t.CreatedAt,
	}
}

func toTransactionReads(txs []*ledger.Transaction) []dto.TransactionRead {
	out := make([]dto.TransactionRead, 0, len(txs))
	for _, t := range txs {
		out = append(out, toTransactionRead(t))
	}
	return out
}

func toRecurringRead(d *schedule.Definition) dto.RecurringRead {
	return dto.RecurringRead{
		ID:             d.ID,
		AccountID:      d.AccountID,
		CategoryID:     d.CategoryID,
		Amount:         d.Amount.AmountFloat(),
		Currency:       d.Amount.Currency().String(),
		Merchant:       d.Merchant,
		Note:           d.Note,
		Cadence:        string(d.Cadence),
		StartDate:      d.StartDate,
		EndDate:        d.EndDate,
		NextOccurrence: d.NextOccurrence,
		Active:         d.Active,
		CreatedAt:      d.CreatedAt,
	}
}

func toRecurringReads(defs []*schedule.Definition) []dto.RecurringRead {
	out := make([]dto.RecurringRead, 0, len(defs))
	for _, d := range defs {
		out = append(out, toRecurringRead(d))
	}
	return out
}

func toCategoryRead(c *ledger.Category) dto.CategoryRead {
	return dto.CategoryRead{
		ID:        c.ID,
		UserID:    c.UserID,
		Name:      c.Name,
		Kind:      string(c.Kind),
		ParentID:  c.ParentID,
		CreatedAt: c.CreatedAt,
	}
}

func toBudgetRead(b *ledger.Budget) dto.BudgetRead {
	return dto.BudgetRead{
		ID:         b.ID,
		UserID:     b.UserID,
		CategoryID: b.CategoryID,
		Amount:     b.Amount.AmountFloat(),
		Currency:   b.Amount.Currency().String(),
		StartDate:  b.StartDate,
		EndDate:    b.EndDate,
		CreatedAt:  b.CreatedAt,
	}
}

func toUserRead(u *domainuser.User) dto.UserRead {
	return dto.UserRead{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}
