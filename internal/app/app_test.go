package app

import (
	"context"
	"net/http"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"payroll/internal/domain/auth"
	"payroll/internal/platform/apitest"
	"payroll/internal/platform/config"
	"payroll/internal/platform/logging"
)

func testConfig(t *testing.T, apiURL string) config.Config {
	t.Helper()
	t.Setenv("PAYROLL_API_URL", apiURL)
	t.Setenv("PAYROLL_SESSION_FILE", filepath.Join(t.TempDir(), "session.json"))
	cfg, err := config.Load()
	require.NoError(t, err)
	return cfg
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := testConfig(t, "not a url")
	_, err := New(cfg, Options{Logger: logging.Discard()})
	assert.Error(t, err)
}

func TestExpiredSessionClearsAndLandsOnLogin(t *testing.T) {
	srv := apitest.New(t)
	srv.Reply(http.MethodGet, "/api/org/profile", http.StatusUnauthorized, nil)
	srv.Reply(http.MethodGet, "/api/org/employees", http.StatusOK, []any{})
	srv.Reply(http.MethodGet, "/api/org/payment-requests", http.StatusOK, []any{})
	srv.Reply(http.MethodGet, "/api/org/concerns", http.StatusOK, []any{})

	a, err := New(testConfig(t, srv.URL+"/api"), Options{Logger: logging.Discard()})
	require.NoError(t, err)
	require.NoError(t, a.Session.Save("stale", auth.User{UserID: 2, Email: "hr@acme.test", Role: auth.RoleOrganization}))

	page, err := a.Open(context.Background(), "/organization/dashboard")
	require.NoError(t, err)
	assert.Equal(t, auth.LoginPath, page.Path)
	assert.False(t, a.Session.LoggedIn())

	alert, ok := a.Alerts.Last()
	require.True(t, ok)
	assert.Equal(t, "Unauthorized", alert.Message)
}
