package webapi

import (
	"github.com/adamfarahx/finance-analytics-db/infra/initializer"
	"github.com/adamfarahx/finance-analytics-db/pkg/dto"
	"github.com/gofiber/fiber/v2"
)

// BudgetRoutes registers category and budget management.
func BudgetRoutes(app *fiber.App, deps *initializer.Deps) {
	protected := JwtProtected(deps.Config.Jwt)
	app.Post("/category", protected, CreateCategory(deps))
	app.Get("/category", protected, ListCategories(deps))
	app.Post("/budget", protected, CreateBudget(deps))
	app.Get("/budget", protected, ListBudgets(deps))
}

// CreateCategory creates a category for the authenticated user.
func CreateCategory(deps *initializer.Deps) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := currentUserID(c)
		if err != nil {
			return DomainErrorResponse(c, "Unauthorized", err)
		}
		input, err := BindAndValidate[dto.CategoryCreate](c)
		if input == nil {
			return err
		}
		input.UserID = userID
		category, err := deps.Budget.CreateCategory(c.UserContext(), *input)
		if err != nil {
			return DomainErrorResponse(c, "Failed to create category", err)
		}
		return SuccessResponseJSON(c, fiber.StatusCreated, "Category created", toCategoryRead(category))
	}
}

// ListCategories lists the authenticated user's categories.
func ListCategories(deps *initializer.Deps) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := currentUserID(c)
		if err != nil {
			return DomainErrorResponse(c, "Unauthorized", err)
		}
		categories, err := deps.Budget.ListCategories(c.UserContext(), userID)
		if err != nil {
			return DomainErrorResponse(c, "Failed to list categories", err)
		}
		out := make([]dto.CategoryRead, 0, len(categories))
		for _, cat := range categories {
			out = append(out, toCategoryRead(cat))
		}
		return SuccessResponseJSON(c, fiber.StatusOK, "Categories", out)
	}
}

// CreateBudget creates a budget for the authenticated user.
func CreateBudget(deps *initializer.Deps) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := currentUserID(c)
		if err != nil {
			return DomainErrorResponse(c, "Unauthorized", err)
		}
		input, err := BindAndValidate[dto.BudgetCreate](c)
		if input == nil {
			return err
		}
		input.UserID = userID
		b, err := deps.Budget.CreateBudget(c.UserContext(), *input)
		if err != nil {
			return DomainErrorResponse(c, "Failed to create budget", err)
		}
		return SuccessResponseJSON(c, fiber.StatusCreated, "Budget created", toBudgetRead(b))
	}
}

// ListBudgets lists the authenticated user's budgets.
func ListBudgets(deps *initializer.Deps) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := currentUserID(c)
		if err != nil {
			return DomainErrorResponse(c, "Unauthorized", err)
		}
		budgets, err := deps.Budget.ListBudgets(c.UserContext(), userID)
		if err != nil {
			return DomainErrorResponse(c, "Failed to list budgets", err)
		}
		out := make([]dto.BudgetRead, 0, len(budgets))
		for _, b := range budgets {
			out = append(out, toBudgetRead(b))
		}
		return SuccessResponseJSON(c, fiber.StatusOK, "Budgets", out)
	}
}
