package recurring

import (
	"time"

	"github.com/google/uuid"
)

// Definition represents a persisted recurring-transaction definition.
// NextOccurrence is advanced exclusively by the scheduler.
type Definition struct {
	ID             uuid.UUID  `gorm:"type:uuid;primary_key"`
	AccountID      uuid.UUID  `gorm:"type:uuid;not null;index"`
	CategoryID     *uuid.UUID `gorm:"type:uuid"`
	Amount         int64      `gorm:"not null;check:amount > 0"`
	Currency       string     `gorm:"type:varchar(3);not null;default:'USD'"`
	Merchant       string     `gorm:"type:varchar(128);not null;default:''"`
	Note           string     `gorm:"type:varchar(512);not null;default:''"`
	Cadence        string     `gorm:"type:varchar(16);not null"`
	StartDate      time.Time  `gorm:"type:date;not null"`
	EndDate        *time.Time `gorm:"type:date"`
	NextOccurrence time.Time  `gorm:"type:date;not null;index"`
	Active         bool       `gorm:"not null;default:true;index"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName specifies the table name for the Definition model.
func (Definition) TableName() string {
	return "recurring_transactions"
}
