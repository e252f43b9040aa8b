package budget

import (
	"time"

	"github.com/google/uuid"
)

// Budget represents a budget record for a user and category over a date range.
type Budget struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;index"`
	CategoryID uuid.UUID `gorm:"type:uuid;not null"`
	Amount     int64     `gorm:"not null;check:amount > 0"`
	Currency   string    `gorm:"type:varchar(3);not null;default:'USD'"`
	StartDate  time.Time `gorm:"type:date;not null"`
	EndDate    time.Time `gorm:"type:date;not null;check:end_date > start_date"`
	CreatedAt  time.Time
}

// TableName specifies the table name for the Budget model.
func (Budget) TableName() string {
	return "budgets"
}
