package dashboard

import (
	"context"

	"golang.org/x/sync/errgroup"

	"payroll/internal/domain/concerns"
	"payroll/internal/domain/employees"
	"payroll/internal/domain/organizations"
	"payroll/internal/domain/payments"
	"payroll/internal/domain/salary"
)

// Service joins the independent reads behind each dashboard. The counts
// come from separate calls and are not a consistent snapshot. A failed
// read does not cancel the others.
type Service struct {
	organizations *organizations.Store
	payments      *payments.Store
	employees     *employees.Store
	concerns      *concerns.Store
	salary        *salary.Store
}

func NewService(orgs *organizations.Store, pay *payments.Store, staff *employees.Store, tickets *concerns.Store, sal *salary.Store) *Service {
	return &Service{
		organizations: orgs,
		payments:      pay,
		employees:     staff,
		concerns:      tickets,
		salary:        sal,
	}
}

func (s *Service) Admin(ctx context.Context) (Admin, error) {
	var (
		out       Admin
		processed int64
	)
	var g errgroup.Group
	g.Go(func() (err error) {
		out.Organizations, err = s.organizations.List(ctx, organizations.FilterAll)
		return err
	})
	g.Go(func() (err error) {
		out.PaymentRequests, err = s.payments.AdminList(ctx)
		return err
	})
	g.Go(func() (err error) {
		processed, err = s.payments.ProcessedCount(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return Admin{}, err
	}
	out.Stats = AdminSummary(out.Organizations, out.PaymentRequests, processed)
	return out, nil
}

func (s *Service) Organization(ctx context.Context) (Organization, error) {
	var out Organization
	var g errgroup.Group
	g.Go(func() (err error) {
		out.Profile, err = s.organizations.Profile(ctx)
		return err
	})
	g.Go(func() (err error) {
		out.Employees, err = s.employees.List(ctx)
		return err
	})
	g.Go(func() (err error) {
		out.PaymentRequests, err = s.payments.List(ctx)
		return err
	})
	g.Go(func() (err error) {
		out.Concerns, err = s.concerns.List(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return Organization{}, err
	}
	out.Stats = OrgSummary(out.Employees, out.PaymentRequests, out.Concerns)
	return out, nil
}

func (s *Service) Employee(ctx context.Context) (Employee, error) {
	var out Employee
	var g errgroup.Group
	g.Go(func() (err error) {
		out.Profile, err = s.employees.Profile(ctx)
		return err
	})
	g.Go(func() (err error) {
		out.History, err = s.salary.MyHistory(ctx, 0)
		return err
	})
	if err := g.Wait(); err != nil {
		return Employee{}, err
	}
	out.TotalPaid = salary.TotalPaid(out.History)
	out.LastPaid = lastCompleted(out.History)
	return out, nil
}
