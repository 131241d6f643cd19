package ui

import (
	"context"
	"net/http"
	"sync/atomic"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"payroll/internal/domain/auth"
)

// MaxHops bounds how many redirects one navigation may follow.
const MaxHops = 8

var ErrTooManyRedirects = errors.New("too many redirects")

// Navigator resolves a path to a rendered view, following guard
// redirects.
type Navigator struct {
	handler http.Handler
	logger  *logrus.Entry
	forced  atomic.Bool
}

func NewNavigator(handler http.Handler, logger *logrus.Entry) *Navigator {
	if logger == nil {
		logger = logrus.NewEntry(logrus.StandardLogger())
	}
	return &Navigator{handler: handler, logger: logger}
}

// ForceLogin makes the current or next navigation end on the login view.
// It is the API client's 401 hook.
func (n *Navigator) ForceLogin(context.Context) {
	n.forced.Store(true)
	n.logger.Info("session expired, redirecting to login")
}

func (n *Navigator) Navigate(ctx context.Context, target string) (Page, error) {
	if target == "" {
		target = "/"
	}
	trail := make([]string, 0, 2)
	for hop := 0; hop <= MaxHops; hop++ {
		if n.forced.Swap(false) {
			target = auth.LoginPath
		}
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
		if err != nil {
			return Page{}, errors.Wrapf(err, "navigate to %q", target)
		}
		w := newPageWriter()
		n.handler.ServeHTTP(w, req)
		trail = append(trail, req.URL.Path)

		if n.forced.Swap(false) {
			target = auth.LoginPath
			continue
		}
		if status := w.statusCode(); isRedirect(status) {
			target = w.header.Get("Location")
			continue
		}
		return Page{
			Path:   req.URL.Path,
			Status: w.statusCode(),
			Body:   w.body.String(),
			Trail:  trail,
		}, nil
	}
	return Page{Trail: trail}, errors.Wrapf(ErrTooManyRedirects, "after %d hops", MaxHops)
}
