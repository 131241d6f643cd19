package middleware

import (
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"payroll/internal/requestctx"
)

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

// RequestID gives every navigation a request id that the backend calls it
// makes will reuse.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, _ := requestctx.EnsureRequestID(r.Context())
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func Logger(logger *logrus.Entry) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(recorder, r)

			fields := logrus.Fields{
				"path":       r.URL.Path,
				"status":     recorder.status,
				"durationMs": time.Since(start).Milliseconds(),
				"requestId":  requestctx.GetRequestID(r.Context()),
			}
			if location := recorder.Header().Get("Location"); location != "" {
				fields["redirect"] = location
			}
			logger.WithFields(fields).Debug("view")
		})
	}
}
