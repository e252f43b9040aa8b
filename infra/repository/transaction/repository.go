package transaction

import (
	"context"

	"github.com/adamfarahx/finance-analytics-db/infra/repository/gormerr"
	"github.com/adamfarahx/finance-analytics-db/pkg/domain/ledger"
	"github.com/adamfarahx/finance-analytics-db/pkg/domain/money"
	repo "github.com/adamfarahx/finance-analytics-db/pkg/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type repository struct {
	db *gorm.DB
}

// New creates a transaction repository using the provided *gorm.DB.
func New(db *gorm.DB) repo.TransactionRepository {
	return &repository{db: db}
}

// Get implements repository.TransactionRepository.
func (r *repository) Get(ctx context.Context, id uuid.UUID) (*ledger.Transaction, error) {
	var row Transaction
	if err := r.db.WithContext(ctx).First(&row, "id = ?", id).Error; err != nil {
		return nil, gormerr.ToDomain(err)
	}
	return mapRowToDomain(&row), nil
}

// Create implements repository.TransactionRepository.
func (r *repository) Create(ctx context.Context, tx *ledger.Transaction) error {
	row := mapDomainToRow(tx)
	return gormerr.Wrap(func() error {
		return r.db.WithContext(ctx).Create(&row).Error
	})
}

// Update implements repository.TransactionRepository.
func (r *repository) Update(ctx context.Context, tx *ledger.Transaction) error {
	row := mapDomainToRow(tx)
	res := r.db.WithContext(ctx).Model(&Transaction{}).
		Where("id = ?", tx.ID).
		Updates(map[string]any{
			"account_id":  row.AccountID,
			"category_id": row.CategoryID,
			"occurred_on": row.OccurredOn,
			"amount":      row.Amount,
			"direction":   row.Direction,
			"merchant":    row.Merchant,
			"note":        row.Note,
		})
	if res.Error != nil {
		return gormerr.ToDomain(res.Error)
	}
	if res.RowsAffected == 0 {
		return ledger.ErrTransactionNotFound
	}
	return nil
}

// Delete implements repository.TransactionRepository.
func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&Transaction{}, "id = ?", id)
	if res.Error != nil {
		return gormerr.ToDomain(res.Error)
	}
	if res.RowsAffected == 0 {
		return ledger.ErrTransactionNotFound
	}
	return nil
}

// ListByAccount implements repository.TransactionRepository.
func (r *repository) ListByAccount(ctx context.Context, accountID uuid.UUID) ([]*ledger.Transaction, error) {
	var rows []Transaction
	if err := r.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("occurred_on, created_at").
		Find(&rows).Error; err != nil {
		return nil, gormerr.ToDomain(err)
	}
	result := make([]*ledger.Transaction, 0, len(rows))
	for i := range rows {
		result = append(result, mapRowToDomain(&rows[i]))
	}
	return result, nil
}

// SumSigned implements repository.TransactionRepository. The sum is computed
// by the database, independent of the incrementally maintained balance.
func (r *repository) SumSigned(ctx context.Context, accountID uuid.UUID) (int64, error) {
	var sum int64
	err := r.db.WithContext(ctx).Model(&Transaction{}).
		Select("COALESCE(SUM(CASE WHEN direction = 'credit' THEN amount ELSE -amount END), 0)").
		Where("account_id = ?", accountID).
		Scan(&sum).Error
	if err != nil {
		return 0, gormerr.ToDomain(err)
	}
	return sum, nil
}

// mapDomainToRow maps the domain entity to the persistence model.
func mapDomainToRow(tx *ledger.Transaction) Transaction {
	return Transaction{
		ID:         tx.ID,
		AccountID:  tx.AccountID,
		CategoryID: tx.CategoryID,
		OccurredOn: tx.OccurredOn,
		Amount:     tx.Amount.Amount(),
		Currency:   tx.Amount.Currency().String(),
		Direction:  string(tx.Direction),
		Merchant:   tx.Merchant,
		Note:       tx.Note,
		Recurring:  tx.Recurring,
		CreatedAt:  tx.CreatedAt,
		UpdatedAt:  tx.UpdatedAt,
	}
}

// mapRowToDomain hydrates the domain entity from the persistence model.
func mapRowToDomain(row *Transaction) *ledger.Transaction {
	return &ledger.Transaction{
		ID:         row.ID,
		AccountID:  row.AccountID,
		CategoryID: row.CategoryID,
		OccurredOn: row.OccurredOn,
		Amount:     money.NewFromData(row.Amount, row.Currency),
		Direction:  ledger.Direction(row.Direction),
		Merchant:   row.Merchant,
		Note:       row.Note,
		Recurring:  row.Recurring,
		CreatedAt:  row.CreatedAt,
		UpdatedAt:  row.UpdatedAt,
	}
}
