package auth

import (
	"context"

	"payroll/internal/transport/http/api"
)

// Store reaches the backend's /auth endpoints.
type Store struct {
	API api.Caller
}

func NewStore(caller api.Caller) *Store {
	return &Store{API: caller}
}

func (s *Store) Captcha(ctx context.Context) (Captcha, error) {
	var out Captcha
	err := s.API.Get(ctx, "/auth/captcha", nil, &out)
	return out, err
}

func (s *Store) Login(ctx context.Context, req LoginRequest) (LoginResponse, error) {
	var out LoginResponse
	err := s.API.Post(ctx, "/auth/login", req, &out)
	return out, err
}

func (s *Store) RegisterOrganization(ctx context.Context, form *api.Multipart) (LoginResponse, error) {
	var out LoginResponse
	err := s.API.PostMultipart(ctx, "/auth/register/organization", form, &out)
	return out, err
}

func (s *Store) RegisterEmployee(ctx context.Context, req EmployeeRegistration) (MessageResponse, error) {
	var out MessageResponse
	err := s.API.Post(ctx, "/auth/register/employee", req, &out)
	return out, err
}

func (s *Store) ForgotPassword(ctx context.Context, email string) (MessageResponse, error) {
	var out MessageResponse
	err := s.API.Post(ctx, "/auth/forgot-password", map[string]string{"email": email}, &out)
	return out, err
}

func (s *Store) ResetPassword(ctx context.Context, req ResetPasswordRequest) (MessageResponse, error) {
	var out MessageResponse
	err := s.API.Post(ctx, "/auth/reset-password", req, &out)
	return out, err
}
