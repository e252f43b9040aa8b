package transaction

import (
	"time"

	"github.com/google/uuid"
)

// Transaction represents a persisted ledger entry. The composite unique
// index on (account_id, occurred_on, amount, merchant) is the sole
// duplicate-import guard; merchant defaults to the empty string so the index
// never has to compare NULLs.
type Transaction struct {
	ID         uuid.UUID  `gorm:"type:uuid;primary_key"`
	AccountID  uuid.UUID  `gorm:"type:uuid;not null;index;uniqueIndex:idx_tx_dedup"`
	CategoryID *uuid.UUID `gorm:"type:uuid;index"`
	OccurredOn time.Time  `gorm:"type:date;not null;uniqueIndex:idx_tx_dedup"`
	Amount     int64      `gorm:"not null;uniqueIndex:idx_tx_dedup;check:amount > 0"`
	Currency   string     `gorm:"type:varchar(3);not null;default:'USD'"`
	Direction  string     `gorm:"type:varchar(6);not null;check:direction IN ('debit','credit')"`
	Merchant   string     `gorm:"type:varchar(128);not null;default:'';uniqueIndex:idx_tx_dedup"`
	Note       string     `gorm:"type:varchar(512);not null;default:''"`
	Recurring  bool       `gorm:"not null;default:false"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName specifies the table name for the Transaction model.
func (Transaction) TableName() string {
	return "transactions"
}
