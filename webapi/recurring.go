package webapi

import (
	"time"

	"github.com/adamfarahx/finance-analytics-db/infra/initializer"
	"github.com/adamfarahx/finance-analytics-db/pkg/dto"
	"github.com/gofiber/fiber/v2"
)

// RecurringRoutes registers recurring-definition management and the batch
// processing endpoint invoked by the external job runner.
func RecurringRoutes(app *fiber.App, deps *initializer.Deps) {
	protected := JwtProtected(deps.Config.Jwt)
	app.Post("/recurring", protected, CreateRecurring(deps))
	app.Get("/account/:id/recurring", protected, ListRecurring(deps))
	app.Delete("/recurring/:id", protected, DeactivateRecurring(deps))
	app.Post("/recurring/process", protected, ProcessDueRecurring(deps))
}

// CreateRecurring registers a recurring obligation.
func CreateRecurring(deps *initializer.Deps) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := BindAndValidate[dto.RecurringCreate](c)
		if input == nil {
			return err
		}
		def, err := deps.Scheduler.CreateDefinition(c.UserContext(), *input)
		if err != nil {
			return DomainErrorResponse(c, "Failed to create recurring definition", err)
		}
		return SuccessResponseJSON(c, fiber.StatusCreated, "Recurring definition created", toRecurringRead(def))
	}
}

// ListRecurring lists an account's recurring definitions.
func ListRecurring(deps *initializer.Deps) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseIDParam(c)
		if err != nil {
			return err
		}
		defs, err := deps.Scheduler.ListDefinitions(c.UserContext(), id)
		if err != nil {
			return DomainErrorResponse(c, "Failed to list recurring definitions", err)
		}
		return SuccessResponseJSON(c, fiber.StatusOK, "Recurring definitions", toRecurringReads(defs))
	}
}

// DeactivateRecurring cancels a recurring obligation without touching
// already-materialized transactions.
func DeactivateRecurring(deps *initializer.Deps) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseIDParam(c)
		if err != nil {
			return err
		}
		if err := deps.Scheduler.DeactivateDefinition(c.UserContext(), id); err != nil {
			return DomainErrorResponse(c, "Failed to deactivate recurring definition", err)
		}
		return SuccessResponseJSON(c, fiber.StatusOK, "Recurring definition deactivated", nil)
	}
}

// ProcessDueRecurring runs one scheduler pass. The as_of query parameter
// (YYYY-MM-DD, default today) supplies the clock so runs stay deterministic.
func ProcessDueRecurring(deps *initializer.Deps) fiber.Handler {
	return func(c *fiber.Ctx) error {
		asOf := time.Now()
		if raw := c.Query("as_of"); raw != "" {
			parsed, err := time.Parse(time.DateOnly, raw)
			if err != nil {
				return ErrorResponseJSON(c, fiber.StatusBadRequest, "Invalid as_of date", err.Error())
			}
			asOf = parsed
		}
		result, err := deps.Scheduler.ProcessDue(c.UserContext(), asOf)
		if err != nil {
			return DomainErrorResponse(c, "Failed to process due recurring definitions", err)
		}
		return SuccessResponseJSON(c, fiber.StatusOK, "Recurring definitions processed", result)
	}
}
