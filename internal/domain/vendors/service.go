package vendors

import (
	"context"
	"fmt"

	"payroll/internal/transport/http/shared"
)

type Service struct {
	Store    *Store
	confirm  shared.Confirmer
	notifier shared.Notifier
}

func NewService(store *Store, confirm shared.Confirmer, notifier shared.Notifier) *Service {
	return &Service{Store: store, confirm: confirm, notifier: shared.NotifierOrNop(notifier)}
}

func (s *Service) List(ctx context.Context) ([]Summary, error) {
	return s.Store.List(ctx)
}

// Selectable lists the vendors a payment request may target.
func (s *Service) Selectable(ctx context.Context) ([]Summary, error) {
	list, err := s.Store.List(ctx)
	if err != nil {
		return nil, err
	}
	return Active(list), nil
}

func (s *Service) Get(ctx context.Context, id int64) (Vendor, error) {
	return s.Store.Get(ctx, id)
}

func (s *Service) Create(ctx context.Context, req Request) (Vendor, error) {
	req = Normalize(req)
	if err := ValidateRequest(req); err != nil {
		return Vendor{}, err
	}
	out, err := s.Store.Create(ctx, req)
	if err != nil {
		return Vendor{}, err
	}
	s.notifier.Success("Vendor created successfully")
	return out, nil
}

// ChangeStatus returns the reloaded vendor.
func (s *Service) ChangeStatus(ctx context.Context, id int64, next Status) (Vendor, error) {
	if !next.Valid() {
		return Vendor{}, ErrUnknownStatus
	}
	if err := shared.Ask(s.confirm, fmt.Sprintf("Change vendor status to %s?", next)); err != nil {
		return Vendor{}, err
	}
	if err := s.Store.SetStatus(ctx, id, next); err != nil {
		return Vendor{}, err
	}
	s.notifier.Success("Vendor status updated successfully")
	return s.Store.Get(ctx, id)
}

func (s *Service) Delete(ctx context.Context, id int64, name string) error {
	if err := shared.Ask(s.confirm, fmt.Sprintf("Are you sure you want to delete vendor %q?", name)); err != nil {
		return err
	}
	if err := s.Store.Delete(ctx, id); err != nil {
		return err
	}
	s.notifier.Success("Vendor deleted successfully")
	return nil
}
