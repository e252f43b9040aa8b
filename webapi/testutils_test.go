package webapi

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/adamfarahx/finance-analytics-db/config"
	"github.com/adamfarahx/finance-analytics-db/infra/initializer"
	authsvc "github.com/adamfarahx/finance-analytics-db/pkg/service/auth"
	budgetsvc "github.com/adamfarahx/finance-analytics-db/pkg/service/budget"
	ledgersvc "github.com/adamfarahx/finance-analytics-db/pkg/service/ledger"
	schedulersvc "github.com/adamfarahx/finance-analytics-db/pkg/service/scheduler"
	usersvc "github.com/adamfarahx/finance-analytics-db/pkg/service/user"
	"github.com/adamfarahx/finance-analytics-db/pkg/testutils"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

func setupTestApp(t *testing.T) (*fiber.App, *testutils.FakeUoW) {
	t.Helper()

	uow := testutils.NewFakeUoW()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.AppConfig{
		Env: "test",
		Jwt: config.JwtConfig{Secret: "test-secret", Expiry: time.Hour},
		RateLimit: config.RateLimitConfig{
			MaxRequests: 1000,
			Window:      time.Minute,
		},
	}

	ledger := ledgersvc.New(uow, logger)
	deps := &initializer.Deps{
		Config:    cfg,
		Logger:    logger,
		Uow:       uow,
		Ledger:    ledger,
		Scheduler: schedulersvc.New(uow, ledger, logger),
		Budget:    budgetsvc.New(uow, logger),
		User:      usersvc.New(uow, logger),
		Auth:      authsvc.New(uow, cfg.Jwt, logger),
	}
	return NewApp(deps), uow
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body any) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()
	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

// registerAndLogin creates a user through the API and returns a bearer token.
func registerAndLogin(t *testing.T, app *fiber.App) string {
	t.Helper()
	resp := doJSON(t, app, "POST", "/auth/register", "", map[string]any{
		"username": "jordan",
		"email":    "jordan@example.com",
		"password": "hunter2hunter2",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, "POST", "/auth/login", "", map[string]any{
		"identity": "jordan",
		"password": "hunter2hunter2",
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	data, ok := body["data"].(map[string]any)
	require.True(t, ok)
	token, ok := data["token"].(string)
	require.True(t, ok)
	return token
}
