package organizations

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

// List fetches organizations for filter; status filtering happens on the
// backend.
func (s *Store) List(ctx context.Context, filter string) ([]Summary, error) {
	path := "/admin/organizations"
	var query url.Values
	switch filter {
	case "", FilterAll:
	case FilterVerified:
		path += "/status"
		query = url.Values{"verified": []string{"true"}}
	case FilterPending:
		path += "/pending"
	case FilterRejected:
		path += "/rejected"
	default:
		return nil, ErrUnknownFilter
	}
	var out []Summary
	err := s.API.Get(ctx, path, query, &out)
	return out, err
}

func (s *Store) Get(ctx context.Context, id int64) (Organization, error) {
	var out Organization
	err := s.API.Get(ctx, fmt.Sprintf("/admin/organizations/%d", id), nil, &out)
	return out, err
}

func (s *Store) Verify(ctx context.Context, id int64, req VerifyRequest) error {
	return s.API.Post(ctx, fmt.Sprintf("/admin/organizations/%d/verify", id), req, nil)
}

// Profile is the signed-in organization's own record.
func (s *Store) Profile(ctx context.Context) (Organization, error) {
	var out Organization
	err := s.API.Get(ctx, "/org/profile", nil, &out)
	return out, err
}
