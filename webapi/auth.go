package webapi

import (
	"github.com/adamfarahx/finance-analytics-db/infra/initializer"
	"github.com/adamfarahx/finance-analytics-db/pkg/dto"
	authsvc "github.com/adamfarahx/finance-analytics-db/pkg/service/auth"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// LoginRequest carries username-or-email plus password.
type LoginRequest struct {
	Identity string `json:"identity" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// AuthRoutes registers registration and login.
func AuthRoutes(app *fiber.App, deps *initializer.Deps) {
	app.Post("/auth/register", Register(deps))
	app.Post("/auth/login", Login(deps))
}

// Register creates a new user.
func Register(deps *initializer.Deps) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := BindAndValidate[dto.UserCreate](c)
		if input == nil {
			return err
		}
		u, err := deps.User.Register(c.UserContext(), *input)
		if err != nil {
			return DomainErrorResponse(c, "Failed to register user", err)
		}
		return SuccessResponseJSON(c, fiber.StatusCreated, "User registered", toUserRead(u))
	}
}

// Login checks credentials and returns a JWT.
func Login(deps *initializer.Deps) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := BindAndValidate[LoginRequest](c)
		if input == nil {
			return err
		}
		token, err := deps.Auth.Login(c.UserContext(), input.Identity, input.Password)
		if err != nil {
			return DomainErrorResponse(c, "Login failed", err)
		}
		return SuccessResponseJSON(c, fiber.StatusOK, "Login successful", fiber.Map{"token": token})
	}
}

// currentUserID pulls the authenticated user's ID out of the verified token.
func currentUserID(c *fiber.Ctx) (uuid.UUID, error) {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok {
		return uuid.Nil, fiber.ErrUnauthorized
	}
	return authsvc.CurrentUserID(token)
}
