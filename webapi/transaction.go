package webapi

import (
	"github.com/adamfarahx/finance-analytics-db/infra/initializer"
	"github.com/adamfarahx/finance-analytics-db/pkg/dto"
	"github.com/gofiber/fiber/v2"
)

// TransactionRoutes registers transaction mutations. Every mutation runs
// through the balance-maintenance path.
func TransactionRoutes(app *fiber.App, deps *initializer.Deps) {
	protected := JwtProtected(deps.Config.Jwt)
	app.Post("/transaction", protected, CreateTransaction(deps))
	app.Put("/transaction/:id", protected, UpdateTransaction(deps))
	app.Delete("/transaction/:id", protected, DeleteTransaction(deps))
}

// CreateTransaction records a transaction and adjusts the account balance.
func CreateTransaction(deps *initializer.Deps) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := BindAndValidate[dto.TransactionCreate](c)
		if input == nil {
			return err
		}
		// Manual entries never carry the recurring-origin flag.
		input.Recurring = false
		tx, err := deps.Ledger.CreateTransaction(c.UserContext(), *input)
		if err != nil {
			return DomainErrorResponse(c, "Failed to create transaction", err)
		}
		return SuccessResponseJSON(c, fiber.StatusCreated, "Transaction created", toTransactionRead(tx))
	}
}

// UpdateTransaction changes a transaction; prior and new balance adjustments
// are applied atomically.
func UpdateTransaction(deps *initializer.Deps) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseIDParam(c)
		if err != nil {
			return err
		}
		input, err := BindAndValidate[dto.TransactionUpdate](c)
		if input == nil {
			return err
		}
		tx, err := deps.Ledger.UpdateTransaction(c.UserContext(), id, *input)
		if err != nil {
			return DomainErrorResponse(c, "Failed to update transaction", err)
		}
		return SuccessResponseJSON(c, fiber.StatusOK, "Transaction updated", toTransactionRead(tx))
	}
}

// DeleteTransaction removes a transaction and reverses its adjustment.
func DeleteTransaction(deps *initializer.Deps) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseIDParam(c)
		if err != nil {
			return err
		}
		if err := deps.Ledger.DeleteTransaction(c.UserContext(), id); err != nil {
			return DomainErrorResponse(c, "Failed to delete transaction", err)
		}
		return SuccessResponseJSON(c, fiber.StatusOK, "Transaction deleted", nil)
	}
}
