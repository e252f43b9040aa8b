package ledger

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrCategoryNotFound is returned when a category cannot be found.
	ErrCategoryNotFound = errors.New("category not found")
	// ErrInvalidCategoryKind is returned when a category kind is neither income nor expense.
	ErrInvalidCategoryKind = errors.New("category kind must be income or expense")
	// ErrCategoryCycle is returned when a parent assignment would close a cycle
	// in the category tree.
	ErrCategoryCycle = errors.New("category parent would create a cycle")
)

// CategoryKind splits categories into income and expense.
type CategoryKind string

const (
	CategoryIncome  CategoryKind = "income"
	CategoryExpense CategoryKind = "expense"
)

// Valid reports whether the kind is income or expense.
func (k CategoryKind) Valid() bool {
	return k == CategoryIncome || k == CategoryExpense
}

// Category labels transactions and budgets. Categories form a tree through
// ParentID; the tree must stay acyclic.
type Category struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Name      string
	Kind      CategoryKind
	ParentID  *uuid.UUID
	CreatedAt time.Time
}
