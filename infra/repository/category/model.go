package category

import (
	"time"

	"github.com/google/uuid"
)

// Category represents a category record. ParentID forms a tree; the service
// layer keeps it acyclic.
type Category struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key"`
	UserID    uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_category_name"`
	Name      string     `gorm:"type:varchar(64);not null;uniqueIndex:idx_category_name"`
	Kind      string     `gorm:"type:varchar(8);not null;check:kind IN ('income','expense')"`
	ParentID  *uuid.UUID `gorm:"type:uuid"`
	CreatedAt time.Time
}

// TableName specifies the table name for the Category model.
func (Category) TableName() string {
	return "categories"
}
