package user

import (
	"context"

	"github.com/adamfarahx/finance-analytics-db/infra/repository/gormerr"
	domainuser "github.com/adamfarahx/finance-analytics-db/pkg/domain/user"
	repo "github.com/adamfarahx/finance-analytics-db/pkg/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type repository struct {
	db *gorm.DB
}

// New creates a user repository using the provided *gorm.DB.
func New(db *gorm.DB) repo.UserRepository {
	return &repository{db: db}
}

// Get implements repository.UserRepository.
func (r *repository) Get(ctx context.Context, id uuid.UUID) (*domainuser.User, error) {
	return r.getBy(ctx, "id = ?", id)
}

// GetByUsername implements repository.UserRepository.
func (r *repository) GetByUsername(ctx context.Context, username string) (*domainuser.User, error) {
	return r.getBy(ctx, "username = ?", username)
}

// GetByEmail implements repository.UserRepository.
func (r *repository) GetByEmail(ctx context.Context, email string) (*domainuser.User, error) {
	return r.getBy(ctx, "email = ?", email)
}

// Create implements repository.UserRepository.
func (r *repository) Create(ctx context.Context, u *domainuser.User) error {
	row := User{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Password:  u.Password,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
	return gormerr.Wrap(func() error {
		return r.db.WithContext(ctx).Create(&row).Error
	})
}

func (r *repository) getBy(ctx context.Context, query string, arg any) (*domainuser.User, error) {
	var row User
	if err := r.db.WithContext(ctx).First(&row, query, arg).Error; err != nil {
		return nil, gormerr.ToDomain(err)
	}
	return domainuser.NewFromData(
		row.ID,
		row.Username,
		row.Email,
		row.Password,
		row.CreatedAt,
		row.UpdatedAt,
	), nil
}
