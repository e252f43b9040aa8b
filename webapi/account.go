package webapi

import (
	"github.com/adamfarahx/finance-analytics-db/infra/initializer"
	"github.com/adamfarahx/finance-analytics-db/pkg/dto"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// AccountRoutes registers account management plus the reconciliation audit
// endpoint. All routes require authentication.
func AccountRoutes(app *fiber.App, deps *initializer.Deps) {
	protected := JwtProtected(deps.Config.Jwt)
	app.Post("/account", protected, CreateAccount(deps))
	app.Get("/account", protected, ListAccounts(deps))
	app.Get("/account/:id", protected, GetAccount(deps))
	app.Delete("/account/:id", protected, DeactivateAccount(deps))
	app.Get("/account/:id/balance", protected, GetBalance(deps))
	app.Get("/account/:id/transactions", protected, ListAccountTransactions(deps))
	app.Get("/account/:id/reconciliation", protected, ReconcileAccount(deps))
}

// CreateAccount creates a new account owned by the authenticated user.
func CreateAccount(deps *initializer.Deps) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := currentUserID(c)
		if err != nil {
			return DomainErrorResponse(c, "Unauthorized", err)
		}
		input, err := BindAndValidate[dto.AccountCreate](c)
		if input == nil {
			return err
		}
		input.UserID = userID
		a, err := deps.Ledger.CreateAccount(c.UserContext(), *input)
		if err != nil {
			return DomainErrorResponse(c, "Failed to create account", err)
		}
		return SuccessResponseJSON(c, fiber.StatusCreated, "Account created", toAccountRead(a))
	}
}

// ListAccounts lists the authenticated user's accounts.
func ListAccounts(deps *initializer.Deps) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := currentUserID(c)
		if err != nil {
			return DomainErrorResponse(c, "Unauthorized", err)
		}
		accounts, err := deps.Ledger.ListAccounts(c.UserContext(), userID)
		if err != nil {
			return DomainErrorResponse(c, "Failed to list accounts", err)
		}
		return SuccessResponseJSON(c, fiber.StatusOK, "Accounts", toAccountReads(accounts))
	}
}

// GetAccount fetches one account.
func GetAccount(deps *initializer.Deps) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseIDParam(c)
		if err != nil {
			return err
		}
		a, err := deps.Ledger.GetAccount(c.UserContext(), id)
		if err != nil {
			return DomainErrorResponse(c, "Failed to get account", err)
		}
		return SuccessResponseJSON(c, fiber.StatusOK, "Account", toAccountRead(a))
	}
}

// DeactivateAccount soft-deletes an account; history stays readable.
func DeactivateAccount(deps *initializer.Deps) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseIDParam(c)
		if err != nil {
			return err
		}
		if err := deps.Ledger.DeactivateAccount(c.UserContext(), id); err != nil {
			return DomainErrorResponse(c, "Failed to deactivate account", err)
		}
		return SuccessResponseJSON(c, fiber.StatusOK, "Account deactivated", nil)
	}
}

// GetBalance returns the stored balance.
func GetBalance(deps *initializer.Deps) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseIDParam(c)
		if err != nil {
			return err
		}
		balance, err := deps.Ledger.GetBalance(c.UserContext(), id)
		if err != nil {
			return DomainErrorResponse(c, "Failed to get balance", err)
		}
		return SuccessResponseJSON(c, fiber.StatusOK, "Balance", fiber.Map{
			"balance":  balance.AmountFloat(),
			"currency": balance.Currency().String(),
		})
	}
}

// ListAccountTransactions lists an account's transactions.
func ListAccountTransactions(deps *initializer.Deps) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseIDParam(c)
		if err != nil {
			return err
		}
		txs, err := deps.Ledger.ListTransactions(c.UserContext(), id)
		if err != nil {
			return DomainErrorResponse(c, "Failed to list transactions", err)
		}
		return SuccessResponseJSON(c, fiber.StatusOK, "Transactions", toTransactionReads(txs))
	}
}

// ReconcileAccount audits the stored balance against the recomputed signed
// sum of the account's transactions.
func ReconcileAccount(deps *initializer.Deps) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseIDParam(c)
		if err != nil {
			return err
		}
		report, err := deps.Ledger.Reconcile(c.UserContext(), id)
		if err != nil {
			return DomainErrorResponse(c, "Failed to reconcile account", err)
		}
		return SuccessResponseJSON(c, fiber.StatusOK, "Reconciliation", fiber.Map{
			"account_id": report.AccountID,
			"stored":     report.Stored.AmountFloat(),
			"computed":   report.Computed.AmountFloat(),
			"difference": report.Difference.AmountFloat(),
			"reconciled": report.Reconciled,
		})
	}
}

// parseIDParam parses the :id path parameter. The returned fiber.Error is
// rendered by the app-level error handler.
func parseIDParam(c *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "invalid id parameter")
	}
	return id, nil
}
