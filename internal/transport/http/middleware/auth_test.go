package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"payroll/internal/domain/auth"
)

type staticIdentity struct {
	user auth.User
	ok   bool
}

func (s staticIdentity) User() (auth.User, bool) { return s.user, s.ok }

func TestAuthMiddlewareSetsUser(t *testing.T) {
	identity := staticIdentity{user: auth.User{UserID: 7, Email: "hr@acme.test", Role: auth.RoleOrganization}, ok: true}

	called := false
	handler := Auth(identity)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		user, ok := GetUser(r.Context())
		if !ok {
			t.Fatal("expected user in context")
		}
		if user.UserID != 7 || user.Role != auth.RoleOrganization {
			t.Fatalf("unexpected user: %+v", user)
		}
	}))

	req := httptest.NewRequest(http.MethodGet, "/organization/dashboard", nil)
	handler.ServeHTTP(httptest.NewRecorder(), req)
	if !called {
		t.Fatal("expected handler to run")
	}
}

func TestAuthMiddlewareMissingSession(t *testing.T) {
	handler := Auth(staticIdentity{})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := GetUser(r.Context()); ok {
			t.Fatal("did not expect user in context")
		}
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	handler.ServeHTTP(httptest.NewRecorder(), req)
}
