package concerns

import (
	"context"
	"fmt"

	"payroll/internal/platform/media"
	"payroll/internal/transport/http/api"
)

type Store struct {
	API api.Caller
}

func NewStore(caller api.Caller) *Store {
	return &Store{API: caller}
}

func (s *Store) Create(ctx context.Context, req CreateRequest) (Concern, error) {
	var out Concern
	err := s.API.Post(ctx, "/employee/concerns", req, &out)
	return out, err
}

func (s *Store) Mine(ctx context.Context) ([]Summary, error) {
	var out []Summary
	err := s.API.Get(ctx, "/employee/concerns", nil, &out)
	return out, err
}

func (s *Store) GetMine(ctx context.Context, id int64) (Concern, error) {
	var out Concern
	err := s.API.Get(ctx, fmt.Sprintf("/employee/concerns/%d", id), nil, &out)
	return out, err
}

func (s *Store) List(ctx context.Context) ([]Summary, error) {
	var out []Summary
	err := s.API.Get(ctx, "/org/concerns", nil, &out)
	return out, err
}

func (s *Store) Get(ctx context.Context, id int64) (Concern, error) {
	var out Concern
	err := s.API.Get(ctx, fmt.Sprintf("/org/concerns/%d", id), nil, &out)
	return out, err
}

func (s *Store) SetStatus(ctx context.Context, id int64, status Status) error {
	return s.API.Put(ctx, fmt.Sprintf("/org/concerns/%d/status", id), nil, statusBody{Status: status}, nil)
}

func (s *Store) Respond(ctx context.Context, id int64, response string) error {
	return s.API.Post(ctx, fmt.Sprintf("/org/concerns/%d/respond", id), respondBody{Response: response}, nil)
}

// UploadAttachment hands the file to the backend, which stores it and
// returns its URL.
func (s *Store) UploadAttachment(ctx context.Context, f media.File) (string, error) {
	form := api.NewMultipart().File("file", f.Name, f.ContentType, f.Data)
	var out uploadResponse
	err := s.API.PostMultipart(ctx, "/files/upload/concern-attachment", form, &out)
	return out.FileURL, err
}
