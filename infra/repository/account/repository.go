package account

import (
	"context"
	"time"

	"github.com/adamfarahx/finance-analytics-db/infra/repository/gormerr"
	"github.com/adamfarahx/finance-analytics-db/pkg/currency"
	"github.com/adamfarahx/finance-analytics-db/pkg/domain/ledger"
	repo "github.com/adamfarahx/finance-analytics-db/pkg/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type repository struct {
	db *gorm.DB
}

// New creates an account repository using the provided *gorm.DB.
func New(db *gorm.DB) repo.AccountRepository {
	return &repository{db: db}
}

// Get implements repository.AccountRepository.
func (r *repository) Get(ctx context.Context, id uuid.UUID) (*ledger.Account, error) {
	var row Account
	if err := r.db.WithContext(ctx).First(&row, "id = ?", id).Error; err != nil {
		return nil, gormerr.ToDomain(err)
	}
	return mapRowToDomain(&row)
}

// Create implements repository.AccountRepository.
func (r *repository) Create(ctx context.Context, a *ledger.Account) error {
	row := mapDomainToRow(a)
	return gormerr.Wrap(func() error {
		return r.db.WithContext(ctx).Create(&row).Error
	})
}

// ListByUser implements repository.AccountRepository.
func (r *repository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*ledger.Account, error) {
	var rows []Account
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at").
		Find(&rows).Error; err != nil {
		return nil, gormerr.ToDomain(err)
	}
	result := make([]*ledger.Account, 0, len(rows))
	for i := range rows {
		a, err := mapRowToDomain(&rows[i])
		if err != nil {
			return nil, err
		}
		result = append(result, a)
	}
	return result, nil
}

// AdjustBalance implements repository.AccountRepository. The delta is applied
// in a single UPDATE so concurrent writers to the same account serialize on
// the row instead of interleaving a read-modify-write.
func (r *repository) AdjustBalance(ctx context.Context, id uuid.UUID, delta int64) error {
	res := r.db.WithContext(ctx).Model(&Account{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"balance":    gorm.Expr("balance + ?", delta),
			"updated_at": time.Now(),
		})
	if res.Error != nil {
		return gormerr.ToDomain(res.Error)
	}
	if res.RowsAffected == 0 {
		return ledger.ErrAccountNotFound
	}
	return nil
}

// Deactivate implements repository.AccountRepository.
func (r *repository) Deactivate(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Model(&Account{}).
		Where("id = ?", id).
		Update("active", false)
	if res.Error != nil {
		return gormerr.ToDomain(res.Error)
	}
	if res.RowsAffected == 0 {
		return ledger.ErrAccountNotFound
	}
	return nil
}

// mapDomainToRow maps the domain aggregate to the persistence model.
func mapDomainToRow(a *ledger.Account) Account {
	return Account{
		ID:        a.ID,
		UserID:    a.UserID,
		Name:      a.Name,
		Kind:      string(a.Kind),
		Balance:   a.Balance.Amount(),
		Currency:  a.Balance.Currency().String(),
		Active:    a.Active,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

// mapRowToDomain hydrates the domain aggregate from the persistence model.
func mapRowToDomain(row *Account) (*ledger.Account, error) {
	return ledger.NewAccount().
		WithID(row.ID).
		WithUserID(row.UserID).
		WithName(row.Name).
		WithKind(ledger.Kind(row.Kind)).
		WithBalance(row.Balance).
		WithCurrency(currency.Code(row.Currency)).
		WithActive(row.Active).
		WithCreatedAt(row.CreatedAt).
		WithUpdatedAt(row.UpdatedAt).
		Build()
}
