// Package user provides user registration and lookup.
package user

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/adamfarahx/finance-analytics-db/pkg/domain"
	domainuser "github.com/adamfarahx/finance-analytics-db/pkg/domain/user"
	"github.com/adamfarahx/finance-analytics-db/pkg/dto"
	"github.com/adamfarahx/finance-analytics-db/pkg/repository"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// Service provides user operations.
type Service struct {
	uow      repository.UnitOfWork
	validate *validator.Validate
	logger   *slog.Logger
}

// New creates a user Service.
func New(uow repository.UnitOfWork, logger *slog.Logger) *Service {
	return &Service{
		uow:      uow,
		validate: validator.New(),
		logger:   logger,
	}
}

// Register creates a new user with a bcrypt-hashed password.
func (s *Service) Register(ctx context.Context, create dto.UserCreate) (u *domainuser.User, err error) {
	if err = s.validate.Struct(create); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.UserRepository()
		if err != nil {
			return err
		}
		u, err = domainuser.New(create.Username, create.Email, create.Password)
		if err != nil {
			return fmt.Errorf("%w: %v", domain.ErrValidation, err)
		}
		return repo.Create(ctx, u)
	})
	if err != nil {
		u = nil
		return
	}
	s.logger.Info("user registered", "user_id", u.ID, "username", u.Username)
	return
}

// Get fetches a user by ID.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domainuser.User, error) {
	repo, err := s.uow.UserRepository()
	if err != nil {
		return nil, err
	}
	return repo.Get(ctx, id)
}
