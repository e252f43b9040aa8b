// Package testutils provides in-memory fakes of the repository contracts for
// service-level tests. The fake unit of work snapshots all repository state
// before running a transactional function and restores it when the function
// fails, so tests exercise the same commit-or-rollback-together guarantee the
// database implementation provides.
package testutils

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/adamfarahx/finance-analytics-db/pkg/domain"
	"github.com/adamfarahx/finance-analytics-db/pkg/domain/ledger"
	"github.com/adamfarahx/finance-analytics-db/pkg/domain/money"
	"github.com/adamfarahx/finance-analytics-db/pkg/domain/schedule"
	"github.com/adamfarahx/finance-analytics-db/pkg/domain/user"
	"github.com/adamfarahx/finance-analytics-db/pkg/repository"
	"github.com/google/uuid"
)

// FakeUoW is an in-memory repository.UnitOfWork backed by maps.
type FakeUoW struct {
	AccountRepo     *FakeAccountRepository
	TransactionRepo *FakeTransactionRepository
	RecurringRepo   *FakeRecurringRepository
	CategoryRepo    *FakeCategoryRepository
	BudgetRepo      *FakeBudgetRepository
	UserRepo        *FakeUserRepository
}

// NewFakeUoW creates a fake unit of work with empty repositories.
func NewFakeUoW() *FakeUoW {
	return &FakeUoW{
		AccountRepo:     &FakeAccountRepository{rows: map[uuid.UUID]ledger.Account{}},
		TransactionRepo: &FakeTransactionRepository{rows: map[uuid.UUID]ledger.Transaction{}},
		RecurringRepo:   &FakeRecurringRepository{rows: map[uuid.UUID]schedule.Definition{}},
		CategoryRepo:    &FakeCategoryRepository{rows: map[uuid.UUID]ledger.Category{}},
		BudgetRepo:      &FakeBudgetRepository{rows: map[uuid.UUID]ledger.Budget{}},
		UserRepo:        &FakeUserRepository{rows: map[uuid.UUID]user.User{}},
	}
}

type fakeSnapshot struct {
	accounts     map[uuid.UUID]ledger.Account
	transactions map[uuid.UUID]ledger.Transaction
	definitions  map[uuid.UUID]schedule.Definition
	categories   map[uuid.UUID]ledger.Category
	budgets      map[uuid.UUID]ledger.Budget
	users        map[uuid.UUID]user.User
}

func (u *FakeUoW) snapshot() fakeSnapshot {
	return fakeSnapshot{
		accounts:     copyMap(u.AccountRepo.rows),
		transactions: copyMap(u.TransactionRepo.rows),
		definitions:  copyMap(u.RecurringRepo.rows),
		categories:   copyMap(u.CategoryRepo.rows),
		budgets:      copyMap(u.BudgetRepo.rows),
		users:        copyMap(u.UserRepo.rows),
	}
}

func (u *FakeUoW) restore(s fakeSnapshot) {
	u.AccountRepo.rows = s.accounts
	u.TransactionRepo.rows = s.transactions
	u.RecurringRepo.rows = s.definitions
	u.CategoryRepo.rows = s.categories
	u.BudgetRepo.rows = s.budgets
	u.UserRepo.rows = s.users
}

func copyMap[K comparable, V any](m map[K]V) map[K]V {
	out := make(map[K]V, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// Do implements repository.UnitOfWork. State is snapshotted before fn and
// restored when fn returns an error.
func (u *FakeUoW) Do(ctx context.Context, fn func(uow repository.UnitOfWork) error) error {
	snap := u.snapshot()
	if err := fn(u); err != nil {
		u.restore(snap)
		return err
	}
	return nil
}

func (u *FakeUoW) AccountRepository() (repository.AccountRepository, error) {
	return u.AccountRepo, nil
}

func (u *FakeUoW) TransactionRepository() (repository.TransactionRepository, error) {
	return u.TransactionRepo, nil
}

func (u *FakeUoW) RecurringRepository() (repository.RecurringRepository, error) {
	return u.RecurringRepo, nil
}

func (u *FakeUoW) CategoryRepository() (repository.CategoryRepository, error) {
	return u.CategoryRepo, nil
}

func (u *FakeUoW) BudgetRepository() (repository.BudgetRepository, error) {
	return u.BudgetRepo, nil
}

func (u *FakeUoW) UserRepository() (repository.UserRepository, error) {
	return u.UserRepo, nil
}

// FakeAccountRepository is an in-memory repository.AccountRepository.
// FailAdjust, when set, is consulted before every AdjustBalance so tests can
// force a failure partway through a unit of work.
type FakeAccountRepository struct {
	rows       map[uuid.UUID]ledger.Account
	FailAdjust func(id uuid.UUID, delta int64) error
}

// Seed stores an account directly, bypassing Create.
func (r *FakeAccountRepository) Seed(a *ledger.Account) {
	r.rows[a.ID] = *a
}

func (r *FakeAccountRepository) Get(ctx context.Context, id uuid.UUID) (*ledger.Account, error) {
	row, ok := r.rows[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &row, nil
}

func (r *FakeAccountRepository) Create(ctx context.Context, a *ledger.Account) error {
	if _, ok := r.rows[a.ID]; ok {
		return domain.ErrAlreadyExists
	}
	r.rows[a.ID] = *a
	return nil
}

func (r *FakeAccountRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*ledger.Account, error) {
	var out []*ledger.Account
	for _, row := range r.rows {
		if row.UserID == userID {
			a := row
			out = append(out, &a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r *FakeAccountRepository) AdjustBalance(ctx context.Context, id uuid.UUID, delta int64) error {
	if r.FailAdjust != nil {
		if err := r.FailAdjust(id, delta); err != nil {
			return err
		}
	}
	row, ok := r.rows[id]
	if !ok {
		return ledger.ErrAccountNotFound
	}
	row.Balance = money.NewFromData(row.Balance.Amount()+delta, row.Balance.Currency().String())
	row.UpdatedAt = time.Now()
	r.rows[id] = row
	return nil
}

func (r *FakeAccountRepository) Deactivate(ctx context.Context, id uuid.UUID) error {
	row, ok := r.rows[id]
	if !ok {
		return ledger.ErrAccountNotFound
	}
	row.Active = false
	r.rows[id] = row
	return nil
}

// FakeTransactionRepository is an in-memory repository.TransactionRepository.
// Create enforces the same uniqueness the database does on account, date,
// amount and merchant, so duplicate materializations fail here too.
type FakeTransactionRepository struct {
	rows map[uuid.UUID]ledger.Transaction
}

func dedupKey(tx *ledger.Transaction) string {
	return fmt.Sprintf("%s|%s|%d|%s",
		tx.AccountID, tx.OccurredOn.Format(time.DateOnly), tx.Amount.Amount(), tx.Merchant)
}

// Seed stores a transaction directly, bypassing Create.
func (r *FakeTransactionRepository) Seed(tx *ledger.Transaction) {
	r.rows[tx.ID] = *tx
}

func (r *FakeTransactionRepository) Get(ctx context.Context, id uuid.UUID) (*ledger.Transaction, error) {
	row, ok := r.rows[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &row, nil
}

func (r *FakeTransactionRepository) Create(ctx context.Context, tx *ledger.Transaction) error {
	if _, ok := r.rows[tx.ID]; ok {
		return domain.ErrAlreadyExists
	}
	key := dedupKey(tx)
	for _, row := range r.rows {
		if dedupKey(&row) == key {
			return domain.ErrAlreadyExists
		}
	}
	r.rows[tx.ID] = *tx
	return nil
}

func (r *FakeTransactionRepository) Update(ctx context.Context, tx *ledger.Transaction) error {
	if _, ok := r.rows[tx.ID]; !ok {
		return domain.ErrNotFound
	}
	r.rows[tx.ID] = *tx
	return nil
}

func (r *FakeTransactionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := r.rows[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.rows, id)
	return nil
}

func (r *FakeTransactionRepository) ListByAccount(ctx context.Context, accountID uuid.UUID) ([]*ledger.Transaction, error) {
	var out []*ledger.Transaction
	for _, row := range r.rows {
		if row.AccountID == accountID {
			tx := row
			out = append(out, &tx)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].OccurredOn.Before(out[j].OccurredOn) })
	return out, nil
}

func (r *FakeTransactionRepository) SumSigned(ctx context.Context, accountID uuid.UUID) (int64, error) {
	var sum int64
	for _, row := range r.rows {
		if row.AccountID == accountID {
			sum += row.SignedAmount()
		}
	}
	return sum, nil
}

// FakeRecurringRepository is an in-memory repository.RecurringRepository.
type FakeRecurringRepository struct {
	rows map[uuid.UUID]schedule.Definition
}

// Seed stores a definition directly, bypassing Create.
func (r *FakeRecurringRepository) Seed(def *schedule.Definition) {
	r.rows[def.ID] = *def
}

func (r *FakeRecurringRepository) Get(ctx context.Context, id uuid.UUID) (*schedule.Definition, error) {
	row, ok := r.rows[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &row, nil
}

func (r *FakeRecurringRepository) Create(ctx context.Context, def *schedule.Definition) error {
	if _, ok := r.rows[def.ID]; ok {
		return domain.ErrAlreadyExists
	}
	r.rows[def.ID] = *def
	return nil
}

func (r *FakeRecurringRepository) Update(ctx context.Context, def *schedule.Definition) error {
	if _, ok := r.rows[def.ID]; !ok {
		return domain.ErrNotFound
	}
	r.rows[def.ID] = *def
	return nil
}

func (r *FakeRecurringRepository) ListByAccount(ctx context.Context, accountID uuid.UUID) ([]*schedule.Definition, error) {
	var out []*schedule.Definition
	for _, row := range r.rows {
		if row.AccountID == accountID {
			def := row
			out = append(out, &def)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r *FakeRecurringRepository) ListDue(ctx context.Context, asOf time.Time) ([]*schedule.Definition, error) {
	var out []*schedule.Definition
	for _, row := range r.rows {
		if row.Active && !row.NextOccurrence.After(asOf) &&
			(row.EndDate == nil || !row.EndDate.Before(asOf)) {
			def := row
			out = append(out, &def)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].NextOccurrence.Before(out[j].NextOccurrence)
	})
	return out, nil
}

func (r *FakeRecurringRepository) Deactivate(ctx context.Context, id uuid.UUID) error {
	row, ok := r.rows[id]
	if !ok {
		return schedule.ErrDefinitionNotFound
	}
	row.Active = false
	r.rows[id] = row
	return nil
}

// FakeCategoryRepository is an in-memory repository.CategoryRepository.
type FakeCategoryRepository struct {
	rows map[uuid.UUID]ledger.Category
}

// Seed stores a category directly, bypassing Create.
func (r *FakeCategoryRepository) Seed(c *ledger.Category) {
	r.rows[c.ID] = *c
}

func (r *FakeCategoryRepository) Get(ctx context.Context, id uuid.UUID) (*ledger.Category, error) {
	row, ok := r.rows[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &row, nil
}

func (r *FakeCategoryRepository) Create(ctx context.Context, c *ledger.Category) error {
	if _, ok := r.rows[c.ID]; ok {
		return domain.ErrAlreadyExists
	}
	r.rows[c.ID] = *c
	return nil
}

func (r *FakeCategoryRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*ledger.Category, error) {
	var out []*ledger.Category
	for _, row := range r.rows {
		if row.UserID == userID {
			c := row
			out = append(out, &c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// FakeBudgetRepository is an in-memory repository.BudgetRepository.
type FakeBudgetRepository struct {
	rows map[uuid.UUID]ledger.Budget
}

func (r *FakeBudgetRepository) Get(ctx context.Context, id uuid.UUID) (*ledger.Budget, error) {
	row, ok := r.rows[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &row, nil
}

func (r *FakeBudgetRepository) Create(ctx context.Context, b *ledger.Budget) error {
	if _, ok := r.rows[b.ID]; ok {
		return domain.ErrAlreadyExists
	}
	r.rows[b.ID] = *b
	return nil
}

func (r *FakeBudgetRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*ledger.Budget, error) {
	var out []*ledger.Budget
	for _, row := range r.rows {
		if row.UserID == userID {
			b := row
			out = append(out, &b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartDate.Before(out[j].StartDate) })
	return out, nil
}

// FakeUserRepository is an in-memory repository.UserRepository.
type FakeUserRepository struct {
	rows map[uuid.UUID]user.User
}

// Seed stores a user directly, bypassing Create.
func (r *FakeUserRepository) Seed(u *user.User) {
	r.rows[u.ID] = *u
}

func (r *FakeUserRepository) Get(ctx context.Context, id uuid.UUID) (*user.User, error) {
	row, ok := r.rows[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &row, nil
}

func (r *FakeUserRepository) GetByUsername(ctx context.Context, username string) (*user.User, error) {
	for _, row := range r.rows {
		if row.Username == username {
			u := row
			return &u, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *FakeUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	for _, row := range r.rows {
		if row.Email == email {
			u := row
			return &u, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *FakeUserRepository) Create(ctx context.Context, u *user.User) error {
	if _, ok := r.rows[u.ID]; ok {
		return domain.ErrAlreadyExists
	}
	for _, row := range r.rows {
		if row.Username == u.Username || row.Email == u.Email {
			return domain.ErrAlreadyExists
		}
	}
	r.rows[u.ID] = *u
	return nil
}

var _ repository.UnitOfWork = (*FakeUoW)(nil)
