package salary

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"payroll/internal/transport/http/api"
)

type Store struct {
	API api.Caller
}

func NewStore(caller api.Caller) *Store {
	return &Store{API: caller}
}

func (s *Store) Active(ctx context.Context, employeeID int64) (Structure, error) {
	var out Structure
	err := s.API.Get(ctx, fmt.Sprintf("/org/salary-structure/employee/%d", employeeID), nil, &out)
	return out, err
}

func (s *Store) History(ctx context.Context, employeeID int64) ([]Structure, error) {
	var out []Structure
	err := s.API.Get(ctx, fmt.Sprintf("/org/salary-structure/employee/%d/history", employeeID), nil, &out)
	return out, err
}

func (s *Store) Get(ctx context.Context, id int64) (Structure, error) {
	var out Structure
	err := s.API.Get(ctx, fmt.Sprintf("/org/salary-structure/%d", id), nil, &out)
	return out, err
}

func (s *Store) Create(ctx context.Context, employeeID int64, req StructureRequest) (Structure, error) {
	var out Structure
	err := s.API.Post(ctx, fmt.Sprintf("/org/salary-structure/employee/%d", employeeID), req, &out)
	return out, err
}

func (s *Store) Update(ctx context.Context, id int64, req StructureRequest) (Structure, error) {
	var out Structure
	err := s.API.Put(ctx, fmt.Sprintf("/org/salary-structure/%d", id), nil, req, &out)
	return out, err
}

func (s *Store) Delete(ctx context.Context, id int64) error {
	return s.API.Delete(ctx, fmt.Sprintf("/org/salary-structure/%d", id))
}

// MyHistory lists the caller's own payments. year 0 means all years.
func (s *Store) MyHistory(ctx context.Context, year int) ([]HistoryEntry, error) {
	var query url.Values
	if year > 0 {
		query = url.Values{"year": []string{strconv.Itoa(year)}}
	}
	var out []HistoryEntry
	err := s.API.Get(ctx, "/salary-payments/my-history", query, &out)
	return out, err
}
