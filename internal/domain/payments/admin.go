package payments

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"payroll/internal/transport/http/shared"
)

// AdminService drives the approval side of payment requests. Every
// transition is a single call followed by a reload; nothing is mutated
// locally.
type AdminService struct {
	Store    *Store
	confirm  shared.Confirmer
	notifier shared.Notifier
	logger   *logrus.Entry
}

func NewAdminService(store *Store, confirm shared.Confirmer, notifier shared.Notifier, logger *logrus.Entry) *AdminService {
	if logger == nil {
		logger = logrus.NewEntry(logrus.StandardLogger())
	}
	return &AdminService{
		Store:    store,
		confirm:  confirm,
		notifier: shared.NotifierOrNop(notifier),
		logger:   logger,
	}
}

func (s *AdminService) List(ctx context.Context, status string) ([]Summary, error) {
	list, err := s.Store.AdminList(ctx)
	if err != nil {
		return nil, err
	}
	return FilterByStatus(list, status)
}

func (s *AdminService) Get(ctx context.Context, id int64) (PaymentRequest, error) {
	return s.Store.AdminGet(ctx, id)
}

func (s *AdminService) ProcessedCount(ctx context.Context) (int64, error) {
	return s.Store.ProcessedCount(ctx)
}

func (s *AdminService) Approve(ctx context.Context, id int64) (PaymentRequest, error) {
	current, err := s.Store.AdminGet(ctx, id)
	if err != nil {
		return PaymentRequest{}, err
	}
	if err := checkTransition("approve", current.Status, CanApprove); err != nil {
		return PaymentRequest{}, err
	}
	if err := shared.Ask(s.confirm, "Are you sure you want to APPROVE this payment request? This action cannot be undone."); err != nil {
		return PaymentRequest{}, err
	}
	if err := s.Store.Approve(ctx, id); err != nil {
		return PaymentRequest{}, err
	}
	s.logTransition(id, current.Status, StatusApproved)
	s.notifier.Success("Payment request approved successfully")
	return s.Store.AdminGet(ctx, id)
}

func (s *AdminService) Reject(ctx context.Context, id int64, reason string) (PaymentRequest, error) {
	reason = strings.TrimSpace(reason)
	if err := ValidateRejection(reason); err != nil {
		return PaymentRequest{}, err
	}
	current, err := s.Store.AdminGet(ctx, id)
	if err != nil {
		return PaymentRequest{}, err
	}
	if err := checkTransition("reject", current.Status, CanReject); err != nil {
		return PaymentRequest{}, err
	}
	if err := s.Store.Reject(ctx, id, reason); err != nil {
		return PaymentRequest{}, err
	}
	s.logTransition(id, current.Status, StatusRejected)
	s.notifier.Success("Payment request rejected")
	return s.Store.AdminGet(ctx, id)
}

// Process disburses an approved request. It returns the reloaded request
// and how many salary payments were created.
func (s *AdminService) Process(ctx context.Context, id int64) (PaymentRequest, int, error) {
	current, err := s.Store.AdminGet(ctx, id)
	if err != nil {
		return PaymentRequest{}, 0, err
	}
	if err := checkTransition("process", current.Status, CanProcess); err != nil {
		return PaymentRequest{}, 0, err
	}
	if err := shared.Ask(s.confirm, "Are you sure you want to PROCESS this payment? This will disburse salaries to all employees and cannot be undone."); err != nil {
		return PaymentRequest{}, 0, err
	}
	created, err := s.Store.Process(ctx, id)
	if err != nil {
		return PaymentRequest{}, 0, err
	}
	s.logTransition(id, current.Status, StatusProcessing)
	s.notifier.Success(fmt.Sprintf("Payment processed successfully for %d employees", len(created)))
	reloaded, err := s.Store.AdminGet(ctx, id)
	return reloaded, len(created), err
}

func (s *AdminService) logTransition(id int64, from, to Status) {
	s.logger.WithFields(logrus.Fields{"paymentRequestId": id, "from": from, "to": to}).Info("payment request transition")
}
