package gormerr_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/adamfarahx/finance-analytics-db/infra/repository/gormerr"
	"github.com/adamfarahx/finance-analytics-db/pkg/domain"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestToDomain(t *testing.T) {
	tests := []struct {
		name string
		in   error
		want error
	}{
		{"duplicate key", gorm.ErrDuplicatedKey, domain.ErrAlreadyExists},
		{"record not found", gorm.ErrRecordNotFound, domain.ErrNotFound},
		{"foreign key violation", gorm.ErrForeignKeyViolated, domain.ErrNotFound},
		{"wrapped duplicate", fmt.Errorf("create: %w", gorm.ErrDuplicatedKey), domain.ErrAlreadyExists},
		{"nil", nil, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := gormerr.ToDomain(tt.in)
			if tt.want == nil {
				assert.NoError(t, got)
				return
			}
			assert.ErrorIs(t, got, tt.want)
		})
	}

	t.Run("unknown errors pass through", func(t *testing.T) {
		boom := errors.New("boom")
		assert.ErrorIs(t, gormerr.ToDomain(boom), boom)
	})
}

func TestWrap(t *testing.T) {
	err := gormerr.Wrap(func() error { return gorm.ErrDuplicatedKey })
	assert.ErrorIs(t, err, domain.ErrAlreadyExists)
	assert.NoError(t, gormerr.Wrap(func() error { return nil }))
}
