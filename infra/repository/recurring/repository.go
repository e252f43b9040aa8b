package recurring

import (
	"context"
	"time"

	"github.com/adamfarahx/finance-analytics-db/infra/repository/gormerr"
	"github.com/adamfarahx/finance-analytics-db/pkg/domain/money"
	"github.com/adamfarahx/finance-analytics-db/pkg/domain/schedule"
	repo "github.com/adamfarahx/finance-analytics-db/pkg/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type repository struct {
	db *gorm.DB
}

// New creates a recurring-definition repository using the provided *gorm.DB.
func New(db *gorm.DB) repo.RecurringRepository {
	return &repository{db: db}
}

// Get implements repository.RecurringRepository.
func (r *repository) Get(ctx context.Context, id uuid.UUID) (*schedule.Definition, error) {
	var row Definition
	if err := r.db.WithContext(ctx).First(&row, "id = ?", id).Error; err != nil {
		return nil, gormerr.ToDomain(err)
	}
	return mapRowToDomain(&row), nil
}

// Create implements repository.RecurringRepository.
func (r *repository) Create(ctx context.Context, def *schedule.Definition) error {
	row := mapDomainToRow(def)
	return gormerr.Wrap(func() error {
		return r.db.WithContext(ctx).Create(&row).Error
	})
}

// Update implements repository.RecurringRepository.
func (r *repository) Update(ctx context.Context, def *schedule.Definition) error {
	row := mapDomainToRow(def)
	res := r.db.WithContext(ctx).Model(&Definition{}).
		Where("id = ?", def.ID).
		Updates(map[string]any{
			"amount":          row.Amount,
			"merchant":        row.Merchant,
			"note":            row.Note,
			"cadence":         row.Cadence,
			"end_date":        row.EndDate,
			"next_occurrence": row.NextOccurrence,
			"active":          row.Active,
		})
	if res.Error != nil {
		return gormerr.ToDomain(res.Error)
	}
	if res.RowsAffected == 0 {
		return schedule.ErrDefinitionNotFound
	}
	return nil
}

// ListByAccount implements repository.RecurringRepository.
func (r *repository) ListByAccount(ctx context.Context, accountID uuid.UUID) ([]*schedule.Definition, error) {
	var rows []Definition
	if err := r.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("next_occurrence").
		Find(&rows).Error; err != nil {
		return nil, gormerr.ToDomain(err)
	}
	return mapRowsToDomain(rows), nil
}

// ListDue implements repository.RecurringRepository.
func (r *repository) ListDue(ctx context.Context, asOf time.Time) ([]*schedule.Definition, error) {
	var rows []Definition
	if err := r.db.WithContext(ctx).
		Where("active = ?", true).
		Where("next_occurrence <= ?", asOf).
		Where("end_date IS NULL OR end_date >= ?", asOf).
		Order("next_occurrence").
		Find(&rows).Error; err != nil {
		return nil, gormerr.ToDomain(err)
	}
	return mapRowsToDomain(rows), nil
}

// Deactivate implements repository.RecurringRepository.
func (r *repository) Deactivate(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Model(&Definition{}).
		Where("id = ?", id).
		Update("active", false)
	if res.Error != nil {
		return gormerr.ToDomain(res.Error)
	}
	if res.RowsAffected == 0 {
		return schedule.ErrDefinitionNotFound
	}
	return nil
}

func mapDomainToRow(def *schedule.Definition) Definition {
	return Definition{
		ID:             def.ID,
		AccountID:      def.AccountID,
		CategoryID:     def.CategoryID,
		Amount:         def.Amount.Amount(),
		Currency:       def.Amount.Currency().String(),
		Merchant:       def.Merchant,
		Note:           def.Note,
		Cadence:        string(def.Cadence),
		StartDate:      def.StartDate,
		EndDate:        def.EndDate,
		NextOccurrence: def.NextOccurrence,
		Active:         def.Active,
		CreatedAt:      def.CreatedAt,
		UpdatedAt:      def.UpdatedAt,
	}
}

func mapRowToDomain(row *Definition) *schedule.Definition {
	return &schedule.Definition{
		ID:             row.ID,
		AccountID:      row.AccountID,
		CategoryID:     row.CategoryID,
		Amount:         money.NewFromData(row.Amount, row.Currency),
		Merchant:       row.Merchant,
		Note:           row.Note,
		Cadence:        schedule.Cadence(row.Cadence),
		StartDate:      row.StartDate,
		EndDate:        row.EndDate,
		NextOccurrence: row.NextOccurrence,
		Active:         row.Active,
		CreatedAt:      row.CreatedAt,
		UpdatedAt:      row.UpdatedAt,
	}
}

func mapRowsToDomain(rows []Definition) []*schedule.Definition {
	result := make([]*schedule.Definition, 0, len(rows))
	for i := range rows {
		result = append(result, mapRowToDomain(&rows[i]))
	}
	return result
}
