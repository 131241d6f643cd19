package vendors

import (
	"context"
	"fmt"
	"net/url"

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
	err := s.API.Get(ctx, "/org/vendors", nil, &out)
	return out, err
}

func (s *Store) Get(ctx context.Context, id int64) (Vendor, error) {
	var out Vendor
	err := s.API.Get(ctx, fmt.Sprintf("/org/vendors/%d", id), nil, &out)
	return out, err
}

func (s *Store) Create(ctx context.Context, req Request) (Vendor, error) {
	var out Vendor
	err := s.API.Post(ctx, "/org/vendors", req, &out)
	return out, err
}

func (s *Store) SetStatus(ctx context.Context, id int64, status Status) error {
	query := url.Values{"status": []string{string(status)}}
	return s.API.Put(ctx, fmt.Sprintf("/org/vendors/%d/status", id), query, struct{}{}, nil)
}

func (s *Store) Delete(ctx context.Context, id int64) error {
	return s.API.Delete(ctx, fmt.Sprintf("/org/vendors/%d", id))
}
