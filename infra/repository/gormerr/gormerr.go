// Package gormerr maps GORM errors onto domain errors so that database
// concerns stay inside the infrastructure layer.
package gormerr

import (
	"errors"

	"github.com/adamfarahx/finance-analytics-db/pkg/domain"
	"gorm.io/gorm"
)

// ToDomain converts GORM errors to domain errors, traversing the error chain
// because GORM wraps driver errors. Unmapped errors pass through unchanged.
func ToDomain(err error) error {
	if err == nil {
		return nil
	}

	currentErr := err
	for currentErr != nil {
		switch {
		case errors.Is(currentErr, gorm.ErrDuplicatedKey):
			return domain.ErrAlreadyExists
		case errors.Is(currentErr, gorm.ErrRecordNotFound):
			return domain.ErrNotFound
		case errors.Is(currentErr, gorm.ErrForeignKeyViolated):
			return domain.ErrNotFound
		}
		currentErr = errors.Unwrap(currentErr)
	}

	return err
}

// Wrap runs a GORM operation and maps its error.
//
// Usage:
//
//	err := gormerr.Wrap(func() error {
//	    return r.db.WithContext(ctx).Create(row).Error
//	})
func Wrap(op func() error) error {
	return ToDomain(op())
}
