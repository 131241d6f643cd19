package middleware

import (
	"context"
	"net/http"

	"payroll/internal/domain/auth"
)

type ctxKey int

const ctxKeyUser ctxKey = iota

// Identity reports the signed-in user, if any.
type Identity interface {
	User() (auth.User, bool)
}

// Auth attaches the session's user to the request context. Requests
// without a session pass through anonymously.
func Auth(identity Identity) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if identity == nil {
				next.ServeHTTP(w, r)
				return
			}
			user, ok := identity.User()
			if !ok {
				next.ServeHTTP(w, r)
				return
			}
			ctx := context.WithValue(r.Context(), ctxKeyUser, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func GetUser(ctx context.Context) (auth.User, bool) {
	user, ok := ctx.Value(ctxKeyUser).(auth.User)
	return user, ok
}
