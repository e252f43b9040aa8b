package account

import (
	"time"

	"github.com/google/uuid"
)

// Account represents an account record in the database. Balance is stored in
// smallest currency units and only ever mutated through AdjustBalance.
type Account struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Name      string    `gorm:"type:varchar(128);not null"`
	Kind      string    `gorm:"type:varchar(16);not null"`
	Balance   int64     `gorm:"not null;default:0"`
	Currency  string    `gorm:"type:varchar(3);not null;default:'USD'"`
	Active    bool      `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the table name for the Account model.
func (Account) TableName() string {
	return "accounts"
}
