package user_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/adamfarahx/finance-analytics-db/pkg/domain"
	"github.com/adamfarahx/finance-analytics-db/pkg/dto"
	usersvc "github.com/adamfarahx/finance-analytics-db/pkg/service/user"
	"github.com/adamfarahx/finance-analytics-db/pkg/testutils"
	"github.com/adamfarahx/finance-analytics-db/pkg/utils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService(t *testing.T) (*usersvc.Service, *testutils.FakeUoW) {
	t.Helper()
	uow := testutils.NewFakeUoW()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return usersvc.New(uow, logger), uow
}

func TestRegister(t *testing.T) {
	svc, _ := newService(t)

	u, err := svc.Register(context.Background(), dto.UserCreate{
		Username: "jordan",
		Email:    "jordan@example.com",
		Password: "hunter2hunter2",
	})
	require.NoError(t, err)
	assert.NotEqual(t, "hunter2hunter2", u.Password)
	assert.True(t, utils.CheckPasswordHash("hunter2hunter2", u.Password))

	got, err := svc.Get(context.Background(), u.ID)
	require.NoError(t, err)
	assert.Equal(t, "jordan", got.Username)
}

func TestRegister_Invalid(t *testing.T) {
	svc, _ := newService(t)

	tests := []struct {
		name   string
		create dto.UserCreate
	}{
		{"short password", dto.UserCreate{Username: "jordan", Email: "jordan@example.com", Password: "short"}},
		{"bad email", dto.UserCreate{Username: "jordan", Email: "not-an-email", Password: "hunter2hunter2"}},
		{"missing username", dto.UserCreate{Email: "jordan@example.com", Password: "hunter2hunter2"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Register(context.Background(), tt.create)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestRegister_DuplicateUsername(t *testing.T) {
	svc, _ := newService(t)

	_, err := svc.Register(context.Background(), dto.UserCreate{
		Username: "jordan",
		Email:    "jordan@example.com",
		Password: "hunter2hunter2",
	})
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), dto.UserCreate{
		Username: "jordan",
		Email:    "jordan2@example.com",
		Password: "hunter2hunter2",
	})
	assert.ErrorIs(t, err, domain.ErrAlreadyExists)
}

func TestGet_Unknown(t *testing.T) {
	svc, _ := newService(t)
	_, err := svc.Get(context.Background(), uuid.New())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
