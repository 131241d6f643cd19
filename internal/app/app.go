// Package app wires configuration, the session, the backend client and the
// domain services into one object the CLI drives.
package app

import (
	"context"
	"net/http"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"payroll/internal/domain/auth"
	"payroll/internal/domain/concerns"
	"payroll/internal/domain/dashboard"
	"payroll/internal/domain/employees"
	"payroll/internal/domain/organizations"
	"payroll/internal/domain/payments"
	"payroll/internal/domain/reports"
	"payroll/internal/domain/salary"
	"payroll/internal/domain/vendors"
	"payroll/internal/notify"
	"payroll/internal/platform/config"
	cryptoutil "payroll/internal/platform/crypto"
	"payroll/internal/platform/logging"
	"payroll/internal/platform/media"
	"payroll/internal/platform/metrics"
	"payroll/internal/session"
	"payroll/internal/transport/http/api"
	"payroll/internal/transport/http/shared"
	"payroll/internal/ui"
)

type App struct {
	Config    config.Config
	Logger    *logrus.Logger
	Alerts    *notify.Center
	Metrics   *metrics.Collector
	Session   *session.Store
	Client    *api.Client
	Media     *media.Service
	Auth      *auth.Service
	Services  ui.Services
	Navigator *ui.Navigator
}

type Options struct {
	Logger  *logrus.Logger
	Confirm shared.Confirmer
	// HTTPClient overrides the transport for backend and media calls.
	HTTPClient *http.Client
}

func New(cfg config.Config, opts Options) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.New(cfg.LogLevel, nil)
	}
	hc := opts.HTTPClient
	if hc == nil {
		hc = &http.Client{}
	}

	crypto, err := cryptoutil.New(cfg.SessionKey)
	if err != nil {
		return nil, errors.Wrap(err, "session key")
	}
	store, err := session.Open(cfg.SessionFile, crypto, logging.Component(logger, "session"))
	if err != nil {
		return nil, err
	}

	alerts := notify.New(logging.Component(logger, "notify"))
	collector := metrics.New()
	client, err := api.New(cfg.APIURL,
		api.WithHTTPClient(hc),
		api.WithTokenSource(store),
		api.WithNotifier(alerts),
		api.WithMetrics(collector),
		api.WithLogger(logging.Component(logger, "api")),
	)
	if err != nil {
		return nil, err
	}

	uploader, err := media.NewUploader(cfg.Media, hc)
	if err != nil {
		return nil, err
	}
	mediaSvc := media.NewService(uploader, media.RulesFrom(cfg.Media), alerts, logging.Component(logger, "media"))

	staff := employees.NewStore(client)
	salaries := salary.NewStore(client)
	suppliers := vendors.NewStore(client)
	pay := payments.NewStore(client)
	tickets := concerns.NewStore(client)
	orgs := organizations.NewStore(client)

	services := ui.Services{
		Employees:     employees.NewService(staff, opts.Confirm, alerts, mediaSvc, logging.Component(logger, "employees")),
		Salary:        salary.NewService(salaries, staff, opts.Confirm, alerts, logging.Component(logger, "salary")),
		Vendors:       vendors.NewService(suppliers, opts.Confirm, alerts),
		Payments:      payments.NewService(pay, staff, suppliers, opts.Confirm, alerts, logging.Component(logger, "payments")),
		AdminPayments: payments.NewAdminService(pay, opts.Confirm, alerts, logging.Component(logger, "payments")),
		Concerns:      concerns.NewService(tickets, mediaSvc.Rules(), alerts, logging.Component(logger, "concerns")),
		Organizations: organizations.NewService(orgs, opts.Confirm, alerts, logging.Component(logger, "organizations")),
		Reports:       reports.NewService(reports.NewStore(client), alerts, logging.Component(logger, "reports")),
		Dashboard:     dashboard.NewService(orgs, pay, staff, tickets, salaries),
	}

	policy, err := auth.NewRoutePolicy()
	if err != nil {
		return nil, err
	}
	router := ui.NewRouter(services, ui.Options{
		Identity: store,
		Policy:   policy,
		Notifier: alerts,
		Logger:   logging.Component(logger, "ui"),
		PageSize: cfg.PageSize,
	})
	navigator := ui.NewNavigator(router, logging.Component(logger, "navigator"))
	client.SetUnauthorizedHandler(navigator.ForceLogin)

	return &App{
		Config:    cfg,
		Logger:    logger,
		Alerts:    alerts,
		Metrics:   collector,
		Session:   store,
		Client:    client,
		Media:     mediaSvc,
		Auth:      auth.NewService(auth.NewStore(client), store, mediaSvc, alerts, logging.Component(logger, "auth")),
		Services:  services,
		Navigator: navigator,
	}, nil
}

// Open navigates to path and returns the rendered view.
func (a *App) Open(ctx context.Context, path string) (ui.Page, error) {
	return a.Navigator.Navigate(ctx, path)
}
