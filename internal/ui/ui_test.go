package ui

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"payroll/internal/domain/auth"
	"payroll/internal/domain/concerns"
	"payroll/internal/domain/dashboard"
	"payroll/internal/domain/employees"
	"payroll/internal/domain/organizations"
	"payroll/internal/domain/payments"
	"payroll/internal/domain/salary"
	"payroll/internal/notify"
	"payroll/internal/platform/apitest"
	"payroll/internal/platform/media"
	"payroll/internal/transport/http/api"
	"payroll/internal/transport/http/shared"
)

type identity struct {
	user auth.User
	ok   bool
}

func (i *identity) User() (auth.User, bool) { return i.user, i.ok }

type harness struct {
	srv    *apitest.Server
	nav    *Navigator
	who    *identity
	center *notify.Center
}

func newHarness(t *testing.T, role auth.Role) harness {
	t.Helper()
	srv := apitest.New(t)
	client, err := api.New(srv.URL + "/api")
	require.NoError(t, err)
	policy, err := auth.NewRoutePolicy()
	require.NoError(t, err)

	center := notify.New(nil)
	who := &identity{}
	if role != "" {
		who = &identity{user: auth.User{UserID: 1, Email: "u@example.com", Role: role}, ok: true}
	}

	staff := employees.NewStore(client)
	salaries := salary.NewStore(client)
	pay := payments.NewStore(client)
	tickets := concerns.NewStore(client)
	orgs := organizations.NewStore(client)
	services := Services{
		Employees:     employees.NewService(staff, shared.AlwaysConfirm, center, nil, nil),
		Salary:        salary.NewService(salaries, staff, shared.AlwaysConfirm, center, nil),
		AdminPayments: payments.NewAdminService(pay, shared.AlwaysConfirm, center, nil),
		Concerns:      concerns.NewService(tickets, media.DefaultRules, center, nil),
		Organizations: organizations.NewService(orgs, shared.AlwaysConfirm, center, nil),
		Dashboard:     dashboard.NewService(orgs, pay, staff, tickets, salaries),
	}
	router := NewRouter(services, Options{Identity: who, Policy: policy, Notifier: center, PageSize: 2})
	nav := NewNavigator(router, nil)
	client.SetUnauthorizedHandler(nav.ForceLogin)
	return harness{srv: srv, nav: nav, who: who, center: center}
}

func (h harness) replyOrgDashboard() {
	h.srv.Reply(http.MethodGet, "/api/org/profile", http.StatusOK, map[string]any{"id": 3, "name": "Acme", "verified": true})
	h.srv.Reply(http.MethodGet, "/api/org/employees", http.StatusOK, []map[string]any{
		{"id": 1, "name": "Asha", "status": "ACTIVE", "accountVerificationStatus": "VERIFIED", "currentSalary": 40000},
		{"id": 2, "name": "Ravi", "status": "ON_LEAVE", "accountVerificationStatus": "PENDING"},
	})
	h.srv.Reply(http.MethodGet, "/api/org/payment-requests", http.StatusOK, []map[string]any{
		{"id": 5, "status": "PENDING", "totalAmount": 40000},
	})
	h.srv.Reply(http.MethodGet, "/api/org/concerns", http.StatusOK, []map[string]any{
		{"id": 9, "subject": "Late pay", "status": "OPEN", "priority": "CRITICAL"},
	})
}

func TestEmptyAndUnknownPathsLandOnLogin(t *testing.T) {
	h := newHarness(t, "")
	for _, target := range []string{"", "/", "/nowhere/at/all"} {
		page, err := h.nav.Navigate(context.Background(), target)
		require.NoError(t, err)
		assert.Equal(t, auth.LoginPath, page.Path, target)
		assert.Contains(t, page.Body, "Sign in")
	}
}

func TestAnonymousProtectedRouteRedirectsToLogin(t *testing.T) {
	h := newHarness(t, "")
	page, err := h.nav.Navigate(context.Background(), "/employee/profile")
	require.NoError(t, err)
	assert.Equal(t, auth.LoginPath, page.Path)
	assert.Equal(t, []string{"/employee/profile", auth.LoginPath}, page.Trail)
	assert.Empty(t, h.srv.Calls())
	alert, ok := h.center.Last()
	require.True(t, ok)
	assert.Equal(t, notify.LevelError, alert.Level)
	assert.Contains(t, alert.Message, "Access Denied")
}

func TestRoleMismatchLandsOnOwnDashboard(t *testing.T) {
	h := newHarness(t, auth.RoleOrganization)
	h.replyOrgDashboard()

	page, err := h.nav.Navigate(context.Background(), "/admin/payment-requests/5")
	require.NoError(t, err)
	assert.Equal(t, "/organization/dashboard", page.Path)
	assert.Empty(t, h.srv.CallsTo(http.MethodGet, "/api/admin/payment-requests/5"))

	alert, ok := h.center.Last()
	require.True(t, ok)
	assert.Equal(t, notify.LevelError, alert.Level)
	assert.Contains(t, alert.Message, "Access Denied")

	assert.Contains(t, page.Body, "Acme dashboard")
	assert.Contains(t, page.Body, "Critical concerns:")
}

func TestUnauthorizedDuringRenderForcesLogin(t *testing.T) {
	h := newHarness(t, auth.RoleEmployee)
	h.srv.Reply(http.MethodGet, "/api/employee/profile", http.StatusUnauthorized, map[string]any{"message": "Token expired"})

	page, err := h.nav.Navigate(context.Background(), "/employee/profile")
	require.NoError(t, err)
	assert.Equal(t, auth.LoginPath, page.Path)
	assert.Equal(t, []string{"/employee/profile", auth.LoginPath}, page.Trail)
}

func TestSalaryHistoryYearQuery(t *testing.T) {
	h := newHarness(t, auth.RoleEmployee)
	h.srv.Reply(http.MethodGet, "/api/salary-payments/my-history", http.StatusOK, []map[string]any{
		{"id": 1, "month": "JANUARY", "year": 2025, "netSalary": 1000, "status": "COMPLETED", "paymentDate": "2025-01-31"},
		{"id": 2, "month": "FEBRUARY", "year": 2025, "netSalary": 1000, "status": "FAILED", "paymentDate": "2025-02-28"},
	})

	page, err := h.nav.Navigate(context.Background(), "/employee/salary-history?year=2025")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, page.Status)
	assert.Contains(t, page.Body, "Salary history 2025")
	assert.Contains(t, page.Body, "Total paid: 1000.00")

	calls := h.srv.CallsTo(http.MethodGet, "/api/salary-payments/my-history")
	require.Len(t, calls, 1)
	assert.Equal(t, "2025", calls[0].Query.Get("year"))
}

func TestAdminOrganizationsFilterAndPaging(t *testing.T) {
	h := newHarness(t, auth.RoleBankAdmin)
	h.srv.Reply(http.MethodGet, "/api/admin/organizations/pending", http.StatusOK, []map[string]any{
		{"id": 1, "name": "Acme", "userStatus": "PENDING"},
		{"id": 2, "name": "Bolt", "userStatus": "PENDING"},
		{"id": 3, "name": "Core", "userStatus": "PENDING"},
	})

	page, err := h.nav.Navigate(context.Background(), "/admin/organizations?filter=PENDING&page=2")
	require.NoError(t, err)
	assert.Contains(t, page.Body, "Core")
	assert.NotContains(t, page.Body, "Acme")
	assert.Contains(t, page.Body, "2 pages")
}

func TestBadPathIDIsBadRequest(t *testing.T) {
	h := newHarness(t, auth.RoleBankAdmin)
	page, err := h.nav.Navigate(context.Background(), "/admin/organizations/abc")
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, page.Status)
	assert.Empty(t, h.srv.Calls())
}

func TestBackendErrorRendersMessage(t *testing.T) {
	h := newHarness(t, auth.RoleBankAdmin)
	h.srv.Reply(http.MethodGet, "/api/admin/payment-requests/4", http.StatusInternalServerError, map[string]any{"message": "boom"})

	page, err := h.nav.Navigate(context.Background(), "/admin/payment-requests/4")
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadGateway, page.Status)
	assert.Equal(t, "Error: boom\n", page.Body)
}

func TestMissingServiceIsUnavailable(t *testing.T) {
	h := newHarness(t, auth.RoleOrganization)
	page, err := h.nav.Navigate(context.Background(), "/organization/vendors")
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, page.Status)
}

func TestRedirectLoopIsBounded(t *testing.T) {
	loop := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/again", http.StatusFound)
	})
	_, err := NewNavigator(loop, nil).Navigate(context.Background(), "/start")
	assert.ErrorIs(t, err, ErrTooManyRedirects)
}

func TestPaginate(t *testing.T) {
	list := []int{1, 2, 3, 4, 5}
	got, pages := paginate(list, 3, 2)
	assert.Equal(t, []int{5}, got)
	assert.Equal(t, 3, pages)

	got, _ = paginate(list, 99, 2)
	assert.Equal(t, []int{5}, got)

	got, pages = paginate(list, 0, 0)
	assert.Equal(t, list, got)
	assert.Equal(t, 1, pages)
}
