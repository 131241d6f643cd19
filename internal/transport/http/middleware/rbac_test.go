package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"payroll/internal/domain/auth"
	"payroll/internal/requestctx"
)

type recordingNotifier struct{ messages []string }

func (r *recordingNotifier) Error(message string) { r.messages = append(r.messages, message) }

func guarded(t *testing.T, user *auth.User, required auth.Role, path string) (*httptest.ResponseRecorder, *recordingNotifier, bool) {
	t.Helper()
	policy, err := auth.NewRoutePolicy()
	require.NoError(t, err)
	notifier := &recordingNotifier{}
	rendered := false
	view := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { rendered = true })

	identity := staticIdentity{}
	if user != nil {
		identity = staticIdentity{user: *user, ok: true}
	}
	handler := Auth(identity)(RequireRole(required, policy, notifier)(view))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec, notifier, rendered
}

func TestRequireRoleAllowsMatchingRole(t *testing.T) {
	rec, notifier, rendered := guarded(t, &auth.User{Role: auth.RoleBankAdmin}, auth.RoleBankAdmin, "/admin/organizations/4")
	assert.True(t, rendered)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, notifier.messages)
}

func TestRequireRoleRedirectsMismatch(t *testing.T) {
	cases := map[auth.Role]string{
		auth.RoleOrganization: "/organization/dashboard",
		auth.RoleEmployee:     "/employee/dashboard",
		"AUDITOR":             "/login",
	}
	for role, landing := range cases {
		t.Run(string(role), func(t *testing.T) {
			rec, notifier, rendered := guarded(t, &auth.User{Role: role}, auth.RoleBankAdmin, "/admin/dashboard")
			assert.False(t, rendered)
			assert.Equal(t, http.StatusFound, rec.Code)
			assert.Equal(t, landing, rec.Header().Get("Location"))
			assert.Equal(t, []string{accessDenied}, notifier.messages)
		})
	}
}

func TestRequireRoleAnonymousGoesToLogin(t *testing.T) {
	for _, required := range []auth.Role{auth.RoleEmployee, auth.RoleBankAdmin} {
		t.Run(string(required), func(t *testing.T) {
			rec, notifier, rendered := guarded(t, nil, required, "/employee/profile")
			assert.False(t, rendered)
			assert.Equal(t, http.StatusFound, rec.Code)
			assert.Equal(t, auth.LoginPath, rec.Header().Get("Location"))
			assert.Equal(t, []string{accessDenied}, notifier.messages)
		})
	}
}

func TestRequestIDReachesHandler(t *testing.T) {
	var seen string
	handler := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = requestctx.GetRequestID(r.Context())
	}))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/login", nil))
	assert.NotEmpty(t, seen)
}
