package payments

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"payroll/internal/domain/employees"
	"payroll/internal/domain/vendors"
	"payroll/internal/transport/http/shared"
)

type EmployeeLister interface {
	List(ctx context.Context) ([]employees.Summary, error)
}

type VendorLister interface {
	List(ctx context.Context) ([]vendors.Summary, error)
}

// Service is the organization side of payment requests.
type Service struct {
	Store     *Store
	employees EmployeeLister
	vendors   VendorLister
	confirm   shared.Confirmer
	notifier  shared.Notifier
	logger    *logrus.Entry
	now       func() time.Time
}

func NewService(store *Store, roster EmployeeLister, vendorList VendorLister, confirm shared.Confirmer, notifier shared.Notifier, logger *logrus.Entry) *Service {
	if logger == nil {
		logger = logrus.NewEntry(logrus.StandardLogger())
	}
	return &Service{
		Store:     store,
		employees: roster,
		vendors:   vendorList,
		confirm:   confirm,
		notifier:  shared.NotifierOrNop(notifier),
		logger:    logger,
		now:       time.Now,
	}
}

func (s *Service) List(ctx context.Context, status string) ([]Summary, error) {
	list, err := s.Store.List(ctx)
	if err != nil {
		return nil, err
	}
	return FilterByStatus(list, status)
}

func (s *Service) Get(ctx context.Context, id int64) (PaymentRequest, error) {
	return s.Store.Get(ctx, id)
}

// NewDraft loads the employee roster and vendor list for a new request.
func (s *Service) NewDraft(ctx context.Context) (*Draft, error) {
	roster, err := s.employees.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "load employees")
	}
	vendorList, err := s.vendors.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "load vendors")
	}
	return NewDraft(s.now(), roster, vendorList), nil
}

// Submit validates the draft and issues exactly one create call. Nothing
// is sent when the draft is incomplete.
func (s *Service) Submit(ctx context.Context, d *Draft) (PaymentRequest, error) {
	req, err := d.Build(s.now())
	if err != nil {
		s.notifier.Error(submitMessage(err))
		return PaymentRequest{}, err
	}
	out, err := s.Store.Create(ctx, req)
	if err != nil {
		return PaymentRequest{}, err
	}
	s.logger.WithFields(logrus.Fields{
		"requestType": req.RequestType,
		"total":       req.TotalAmount.StringFixed(2),
		"month":       req.Month,
		"year":        req.Year,
	}).Info("payment request submitted")
	s.notifier.Success("Payment request submitted successfully")
	return out, nil
}

func submitMessage(err error) string {
	switch {
	case errors.Is(err, ErrNoEmployees):
		return "Please select at least one employee"
	case errors.Is(err, ErrNoVendor):
		return "Please select a vendor"
	default:
		return "Please fill all required fields"
	}
}

// Delete withdraws a pending request.
func (s *Service) Delete(ctx context.Context, id int64) error {
	current, err := s.Store.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := checkTransition("delete", current.Status, CanDelete); err != nil {
		return err
	}
	if err := shared.Ask(s.confirm, "Are you sure you want to delete this payment request?"); err != nil {
		return err
	}
	if err := s.Store.Delete(ctx, id); err != nil {
		return err
	}
	s.notifier.Success("Payment request deleted successfully")
	return nil
}
