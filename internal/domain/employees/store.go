package employees

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
	err := s.API.Get(ctx, "/org/employees", nil, &out)
	return out, err
}

func (s *Store) Get(ctx context.Context, id int64) (Employee, error) {
	var out Employee
	err := s.API.Get(ctx, fmt.Sprintf("/org/employees/%d", id), nil, &out)
	return out, err
}

func (s *Store) Create(ctx context.Context, req Request) (Employee, error) {
	var out Employee
	err := s.API.Post(ctx, "/org/employees", req, &out)
	return out, err
}

func (s *Store) Update(ctx context.Context, id int64, req Request) (Employee, error) {
	var out Employee
	err := s.API.Put(ctx, fmt.Sprintf("/org/employees/%d", id), nil, req, &out)
	return out, err
}

func (s *Store) Delete(ctx context.Context, id int64) error {
	return s.API.Delete(ctx, fmt.Sprintf("/org/employees/%d", id))
}

func (s *Store) SetStatus(ctx context.Context, id int64, status Status) error {
	query := url.Values{"status": []string{string(status)}}
	return s.API.Put(ctx, fmt.Sprintf("/org/employees/%d/status", id), query, struct{}{}, nil)
}

func (s *Store) VerifyAccount(ctx context.Context, id int64) error {
	return s.API.Post(ctx, fmt.Sprintf("/org/employees/%d/verify-account", id), struct{}{}, nil)
}

func (s *Store) Profile(ctx context.Context) (Profile, error) {
	var out Profile
	err := s.API.Get(ctx, "/employee/profile", nil, &out)
	return out, err
}

func (s *Store) SetProfilePicture(ctx context.Context, pictureURL string) error {
	return s.API.Put(ctx, "/employee/profile/picture", nil, map[string]string{"profilePictureUrl": pictureURL}, nil)
}
