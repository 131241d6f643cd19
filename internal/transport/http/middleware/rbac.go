package middleware

import (
	"net/http"

	"payroll/internal/domain/auth"
)

const accessDenied = "Access Denied: You do not have permission to access this page"

type RoutePolicy interface {
	Allowed(role auth.Role, path string) (bool, error)
}

type Notifier interface {
	Error(message string)
}

// RequireRole lets the request through only when the signed-in role is
// required and the policy grants it the path. Everyone else gets an error
// notification and is sent to their own dashboard, or to the login view
// when nobody is signed in.
func RequireRole(required auth.Role, policy RoutePolicy, notifier Notifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, ok := GetUser(r.Context())
			allowed := ok && user.Role == required
			if allowed && policy != nil {
				var err error
				allowed, err = policy.Allowed(user.Role, r.URL.Path)
				if err != nil {
					http.Error(w, "permission check failed", http.StatusInternalServerError)
					return
				}
			}
			if !allowed {
				if notifier != nil {
					notifier.Error(accessDenied)
				}
				http.Redirect(w, r, auth.DashboardPath(user.Role), http.StatusFound)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
