package budget

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

// New creates a budget repository using the provided *gorm.DB.
func New(db *gorm.DB) repo.BudgetRepository {
	return &repository{db: db}
}

// Get implements repository.BudgetRepository.
func (r *repository) Get(ctx context.Context, id uuid.UUID) (*ledger.Budget, error) {
	var row Budget
	if err := r.db.WithContext(ctx).First(&row, "id = ?", id).Error; err != nil {
		return nil, gormerr.ToDomain(err)
	}
	return mapRowToDomain(&row), nil
}

// Create implements repository.BudgetRepository.
func (r *repository) Create(ctx context.Context, b *ledger.Budget) error {
	row := Budget{
		ID:         b.ID,
		UserID:     b.UserID,
		CategoryID: b.CategoryID,
		Amount:     b.Amount.Amount(),
		Currency:   b.Amount.Currency().String(),
		StartDate:  b.StartDate,
		EndDate:    b.EndDate,
		CreatedAt:  b.CreatedAt,
	}
	return gormerr.Wrap(func() error {
		return r.db.WithContext(ctx).Create(&row).Error
	})
}

// ListByUser implements repository.BudgetRepository.
func (r *repository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*ledger.Budget, error) {
	var rows []Budget
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("start_date").
		Find(&rows).Error; err != nil {
		return nil, gormerr.ToDomain(err)
	}
	result := make([]*ledger.Budget, 0, len(rows))
	for i := range rows {
		result = append(result, mapRowToDomain(&rows[i]))
	}
	return result, nil
}

func mapRowToDomain(row *Budget) *ledger.Budget {
	return &ledger.Budget{
		ID:         row.ID,
		UserID:     row.UserID,
		CategoryID: row.CategoryID,
		Amount:     money.NewFromData(row.Amount, row.Currency),
		StartDate:  row.StartDate,
		EndDate:    row.EndDate,
		CreatedAt:  row.CreatedAt,
	}
}
