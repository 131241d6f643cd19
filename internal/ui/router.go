// Package ui is the headless view layer: a chi route table rendered to text
// and guarded per role.
package ui

import (
	"bytes"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
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
	"payroll/internal/transport/http/api"
	"payroll/internal/transport/http/middleware"
	"payroll/internal/transport/http/shared"
)

// Services are the domain services views read from. A nil service makes
// its views fail with a 500.
type Services struct {
	Employees     *employees.Service
	Salary        *salary.Service
	Vendors       *vendors.Service
	Payments      *payments.Service
	AdminPayments *payments.AdminService
	Concerns      *concerns.Service
	Organizations *organizations.Service
	Reports       *reports.Service
	Dashboard     *dashboard.Service
}

type Options struct {
	Identity middleware.Identity
	Policy   middleware.RoutePolicy
	Notifier middleware.Notifier
	Logger   *logrus.Entry
	PageSize int
}

type views struct {
	svc      Services
	pageSize int
	logger   *logrus.Entry
}

// viewFunc renders one view. Returned errors are mapped to a status and a
// one-line message.
type viewFunc func(w io.Writer, r *http.Request) error

var errUnavailable = errors.New("view is not available in this session")

func NewRouter(svc Services, opts Options) chi.Router {
	logger := opts.Logger
	if logger == nil {
		logger = logrus.NewEntry(logrus.StandardLogger())
	}
	v := &views{svc: svc, pageSize: opts.PageSize, logger: logger.WithField("component", "ui")}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(v.logger))
	r.Use(middleware.Auth(opts.Identity))

	toLogin := func(w http.ResponseWriter, req *http.Request) {
		http.Redirect(w, req, auth.LoginPath, http.StatusFound)
	}
	r.NotFound(toLogin)
	r.Get("/", toLogin)

	r.Get("/login", v.page(v.login))
	r.Get("/register/organization", v.page(v.registerOrganization))
	r.Get("/register/employee", v.page(v.registerEmployee))
	r.Get("/forgot-password", v.page(v.forgotPassword))

	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireRole(auth.RoleBankAdmin, opts.Policy, opts.Notifier))
		r.Get("/admin/dashboard", v.page(v.adminDashboard))
		r.Get("/admin/organizations", v.page(v.adminOrganizations))
		r.Get("/admin/organizations/{id}", v.page(v.adminOrganization))
		r.Get("/admin/payment-requests", v.page(v.adminPaymentRequests))
		r.Get("/admin/payment-requests/{id}", v.page(v.adminPaymentRequest))
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireRole(auth.RoleOrganization, opts.Policy, opts.Notifier))
		r.Get("/organization/dashboard", v.page(v.orgDashboard))
		r.Get("/organization/employees", v.page(v.orgEmployees))
		r.Get("/organization/employees/{id}", v.page(v.orgEmployee))
		r.Get("/organization/salary-structure", v.page(v.orgSalaryOverview))
		r.Get("/organization/salary-structure/employee/{employeeId}", v.page(v.orgSalaryStructure))
		r.Get("/organization/payment-requests", v.page(v.orgPaymentRequests))
		r.Get("/organization/payment-requests/{id}", v.page(v.orgPaymentRequest))
		r.Get("/organization/vendors", v.page(v.orgVendors))
		r.Get("/organization/vendors/{id}", v.page(v.orgVendor))
		r.Get("/organization/concerns", v.page(v.orgConcerns))
		r.Get("/organization/concerns/{id}", v.page(v.orgConcern))
		r.Get("/organization/reports", v.page(v.orgReports))
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireRole(auth.RoleEmployee, opts.Policy, opts.Notifier))
		r.Get("/employee/dashboard", v.page(v.employeeDashboard))
		r.Get("/employee/profile", v.page(v.employeeProfile))
		r.Get("/employee/salary-history", v.page(v.employeeSalaryHistory))
		r.Get("/employee/concerns", v.page(v.employeeConcerns))
		r.Get("/employee/concerns/{id}", v.page(v.employeeConcern))
	})

	return r
}

func (v *views) page(fn viewFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body bytes.Buffer
		err := fn(&body, r)
		if err == nil {
			w.Header().Set("Content-Type", "text/plain; charset=utf-8")
			_, _ = w.Write(body.Bytes())
			return
		}

		if api.IsUnauthorized(err) {
			http.Redirect(w, r, auth.LoginPath, http.StatusFound)
			return
		}
		status, message := http.StatusInternalServerError, err.Error()
		var validation *shared.ValidationError
		switch {
		case errors.As(err, &validation):
			status = http.StatusBadRequest
		case api.IsNotFound(err):
			status = http.StatusNotFound
		default:
			if apiErr, ok := api.AsError(err); ok {
				status, message = http.StatusBadGateway, apiErr.Message
			}
		}
		v.logger.WithError(err).WithField("path", r.URL.Path).Warn("view failed")
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, "Error: "+message+"\n")
	}
}

func pathID(r *http.Request, name string) (int64, error) {
	raw := chi.URLParam(r, name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, &shared.ValidationError{Issues: []shared.ValidationIssue{{Field: name, Reason: "must be a positive number"}}}
	}
	return id, nil
}

func queryInt(r *http.Request, name string) int {
	n, err := strconv.Atoi(r.URL.Query().Get(name))
	if err != nil {
		return 0
	}
	return n
}
