package payments

import (
	"context"
	"fmt"

	"payroll/internal/domain/salary"
	"payroll/internal/transport/http/api"
)

type Store struct {
	API api.Caller
}

func NewStore(caller api.Caller) *Store {
	return &Store{API: caller}
}

func (s *Store) List(ctx context.Context) ([]Summary, error) {
	var out []Summary
	err := s.API.Get(ctx, "/org/payment-requests", nil, &out)
	return out, err
}

func (s *Store) Get(ctx context.Context, id int64) (PaymentRequest, error) {
	var out PaymentRequest
	err := s.API.Get(ctx, fmt.Sprintf("/org/payment-requests/%d", id), nil, &out)
	return out, err
}

func (s *Store) Create(ctx context.Context, req CreateRequest) (PaymentRequest, error) {
	var out PaymentRequest
	err := s.API.Post(ctx, "/org/payment-requests", req, &out)
	return out, err
}

func (s *Store) Delete(ctx context.Context, id int64) error {
	return s.API.Delete(ctx, fmt.Sprintf("/org/payment-requests/%d", id))
}

func (s *Store) AdminList(ctx context.Context) ([]Summary, error) {
	var out []Summary
	err := s.API.Get(ctx, "/admin/payment-requests", nil, &out)
	return out, err
}

func (s *Store) AdminGet(ctx context.Context, id int64) (PaymentRequest, error) {
	var out PaymentRequest
	err := s.API.Get(ctx, fmt.Sprintf("/admin/payment-requests/%d", id), nil, &out)
	return out, err
}

func (s *Store) ProcessedCount(ctx context.Context) (int64, error) {
	var out countBody
	err := s.API.Get(ctx, "/admin/payment-requests/processed/count", nil, &out)
	return out.Count, err
}

func (s *Store) Approve(ctx context.Context, id int64) error {
	return s.API.Post(ctx, fmt.Sprintf("/admin/payment-requests/%d/approve", id), struct{}{}, nil)
}

func (s *Store) Reject(ctx context.Context, id int64, reason string) error {
	return s.API.Post(ctx, fmt.Sprintf("/admin/payment-requests/%d/reject", id), rejectBody{RejectionReason: reason}, nil)
}

// Process disburses an approved request and returns the payments created.
func (s *Store) Process(ctx context.Context, id int64) ([]salary.Payment, error) {
	var out []salary.Payment
	err := s.API.Post(ctx, fmt.Sprintf("/salary-payments/process/%d", id), struct{}{}, &out)
	return out, err
}
