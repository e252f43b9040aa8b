package category

import (
	"context"

	"github.com/adamfarahx/finance-analytics-db/infra/repository/gormerr"
	"github.com/adamfarahx/finance-analytics-db/pkg/domain/ledger"
	repo "github.com/adamfarahx/finance-analytics-db/pkg/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type repository struct {
	db *gorm.DB
}

// New creates a category repository using the provided *gorm.DB.
func New(db *gorm.DB) repo.CategoryRepository {
	return &repository{db: db}
}

// Get implements repository.CategoryRepository.
func (r *repository) Get(ctx context.Context, id uuid.UUID) (*ledger.Category, error) {
	var row Category
	if err := r.db.WithContext(ctx).First(&row, "id = ?", id).Error; err != nil {
		return nil, gormerr.ToDomain(err)
	}
	return mapRowToDomain(&row), nil
}

// Create implements repository.CategoryRepository.
func (r *repository) Create(ctx context.Context, c *ledger.Category) error {
	row := Category{
		ID:        c.ID,
		UserID:    c.UserID,
		Name:      c.Name,
		Kind:      string(c.Kind),
		ParentID:  c.ParentID,
		CreatedAt: c.CreatedAt,
	}
	return gormerr.Wrap(func() error {
		return r.db.WithContext(ctx).Create(&row).Error
	})
}

// ListByUser implements repository.CategoryRepository.
func (r *repository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*ledger.Category, error) {
	var rows []Category
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("name").
		Find(&rows).Error; err != nil {
		return nil, gormerr.ToDomain(err)
	}
	result := make([]*ledger.Category, 0, len(rows))
	for i := range rows {
		result = append(result, mapRowToDomain(&rows[i]))
	}
	return result, nil
}

func mapRowToDomain(row *Category) *ledger.Category {
	return &ledger.Category{
		ID:        row.ID,
		UserID:    row.UserID,
		Name:      row.Name,
		Kind:      ledger.CategoryKind(row.Kind),
		ParentID:  row.ParentID,
		CreatedAt: row.CreatedAt,
	}
}
