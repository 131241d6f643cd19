package reports

import (
	"context"
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

func (s *Store) EmployeeList(ctx context.Context) (Report, error) {
	var out Report
	err := s.API.Get(ctx, "/reports/employees/excel", nil, &out)
	return out, err
}

func (s *Store) DownloadEmployeeList(ctx context.Context) ([]byte, error) {
	data, _, err := s.API.Download(ctx, "/reports/employees/excel/download", nil)
	return data, err
}

func (s *Store) SalaryReport(ctx context.Context, format Format, p Period) (Report, error) {
	var out Report
	err := s.API.Get(ctx, "/reports/salary-report/"+string(format), periodQuery(p), &out)
	return out, err
}

func (s *Store) DownloadSalaryReport(ctx context.Context, format Format, p Period) ([]byte, error) {
	data, _, err := s.API.Download(ctx, "/reports/salary-report/"+string(format)+"/download", periodQuery(p))
	return data, err
}

func periodQuery(p Period) url.Values {
	return url.Values{
		"month": []string{p.Month},
		"year":  []string{strconv.Itoa(p.Year)},
	}
}
