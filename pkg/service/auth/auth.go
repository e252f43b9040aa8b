// Package auth provides credential checks and JWT issuing for the HTTP
// surface.
package auth

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/adamfarahx/finance-analytics-db/config"
	"github.com/adamfarahx/finance-analytics-db/pkg/domain"
	domainuser "github.com/adamfarahx/finance-analytics-db/pkg/domain/user"
	"github.com/adamfarahx/finance-analytics-db/pkg/repository"
	"github.com/adamfarahx/finance-analytics-db/pkg/utils"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Service authenticates users and issues tokens.
type Service struct {
	uow    repository.UnitOfWork
	cfg    config.JwtConfig
	logger *slog.Logger
}

// New creates an auth Service.
func New(uow repository.UnitOfWork, cfg config.JwtConfig, logger *slog.Logger) *Service {
	return &Service{uow: uow, cfg: cfg, logger: logger}
}

// Login checks the identity (username or email) and password and returns a
// signed JWT on success.
func (s *Service) Login(ctx context.Context, identity, password string) (string, error) {
	repo, err := s.uow.UserRepository()
	if err != nil {
		return "", err
	}

	u, err := repo.GetByUsername(ctx, identity)
	if errors.Is(err, domain.ErrNotFound) && utils.IsEmail(identity) {
		u, err = repo.GetByEmail(ctx, identity)
	}
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", domainuser.ErrUserUnauthorized
		}
		return "", err
	}

	if !utils.CheckPasswordHash(password, u.Password) {
		s.logger.Warn("login rejected", "identity", identity)
		return "", domainuser.ErrUserUnauthorized
	}
	return s.generateToken(u)
}

// generateToken signs a token carrying the user ID and expiry.
func (s *Service) generateToken(u *domainuser.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id":  u.ID.String(),
		"username": u.Username,
		"exp":      time.Now().Add(s.cfg.Expiry).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.Secret))
}

// CurrentUserID extracts the authenticated user's ID from a verified token.
func CurrentUserID(token *jwt.Token) (uuid.UUID, error) {
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return uuid.Nil, domainuser.ErrUserUnauthorized
	}
	raw, ok := claims["user_id"].(string)
	if !ok {
		return uuid.Nil, domainuser.ErrUserUnauthorized
	}
	return uuid.Parse(raw)
}
