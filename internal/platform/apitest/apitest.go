// Package apitest runs an in-process fake of the payroll backend for tests.
package apitest

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
)

// Call is one request the fake backend received.
type Call struct {
	Method string
	Path   string
	Query  url.Values
	Header http.Header
	Body   []byte
}

// DecodeBody unmarshals the recorded JSON body into out.
func (c Call) DecodeBody(t testing.TB, out any) {
	t.Helper()
	if err := json.Unmarshal(c.Body, out); err != nil {
		t.Fatalf("decode %s %s body: %v", c.Method, c.Path, err)
	}
}

type Server struct {
	*httptest.Server
	router chi.Router

	mu    sync.Mutex
	calls []Call
}

// New starts a fake backend that is closed when t finishes. Unregistered
// routes answer 404 with the backend's error body.
func New(t testing.TB) *Server {
	t.Helper()
	s := &Server{router: chi.NewRouter()}
	s.router.Use(s.record)
	s.router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		WriteJSON(w, http.StatusNotFound, map[string]any{"status": http.StatusNotFound, "error": "Not Found"})
	})
	s.Server = httptest.NewServer(s.router)
	t.Cleanup(s.Close)
	return s
}

// Handle registers fn for method and a chi pattern such as
// "/org/employees/{id}".
func (s *Server) Handle(method, pattern string, fn http.HandlerFunc) {
	s.router.MethodFunc(method, pattern, fn)
}

// Reply registers a handler that always answers status with body as JSON.
func (s *Server) Reply(method, pattern string, status int, body any) {
	s.Handle(method, pattern, func(w http.ResponseWriter, r *http.Request) {
		WriteJSON(w, status, body)
	})
}

func (s *Server) Calls() []Call {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Call, len(s.calls))
	copy(out, s.calls)
	return out
}

// CallsTo filters recorded calls by method and exact path.
func (s *Server) CallsTo(method, path string) []Call {
	var out []Call
	for _, call := range s.Calls() {
		if call.Method == method && call.Path == path {
			out = append(out, call)
		}
	}
	return out
}

func (s *Server) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		_ = r.Body.Close()
		r.Body = io.NopCloser(bytes.NewReader(body))

		s.mu.Lock()
		s.calls = append(s.calls, Call{
			Method: r.Method,
			Path:   r.URL.Path,
			Query:  r.URL.Query(),
			Header: r.Header.Clone(),
			Body:   body,
		})
		s.mu.Unlock()

		next.ServeHTTP(w, r)
	})
}

func WriteJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body != nil {
		_ = json.NewEncoder(w).Encode(body)
	}
}
