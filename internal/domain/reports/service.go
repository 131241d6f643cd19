package reports

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"payroll/internal/domain/payments"
	"payroll/internal/transport/http/shared"
)

// HistoryYears bounds how far back salary reports can be requested.
const HistoryYears = 5

type Service struct {
	Store    *Store
	notifier shared.Notifier
	logger   *logrus.Entry
	now      func() time.Time
}

func NewService(store *Store, notifier shared.Notifier, logger *logrus.Entry) *Service {
	if logger == nil {
		logger = logrus.NewEntry(logrus.StandardLogger())
	}
	return &Service{Store: store, notifier: shared.NotifierOrNop(notifier), logger: logger, now: time.Now}
}

// YearOptions is the current year and the four before it.
func (s *Service) YearOptions() []int {
	now := s.now()
	out := make([]int, 0, HistoryYears)
	for i := 0; i < HistoryYears; i++ {
		out = append(out, now.Year()-i)
	}
	return out
}

func (s *Service) validatePeriod(format Format, p Period) error {
	if format != FormatExcel && format != FormatPDF {
		return ErrUnknownFormat
	}
	v := shared.NewValidator()
	valid := false
	for _, m := range payments.Months {
		if p.Month == m {
			valid = true
		}
	}
	if !valid {
		v.Add("month", "Please select a month")
	}
	inRange := false
	for _, y := range s.YearOptions() {
		if p.Year == y {
			inRange = true
		}
	}
	if !inRange {
		v.Add("year", fmt.Sprintf("must be within the last %d years", HistoryYears))
	}
	return v.Err()
}

func (s *Service) GenerateEmployeeList(ctx context.Context) (Report, error) {
	out, err := s.Store.EmployeeList(ctx)
	if err != nil {
		return Report{}, err
	}
	s.notifier.Success("Employee list generated successfully!")
	return out, nil
}

// DownloadEmployeeList saves the employee workbook in dir and returns its
// path.
func (s *Service) DownloadEmployeeList(ctx context.Context, dir string) (string, error) {
	data, err := s.Store.DownloadEmployeeList(ctx)
	if err != nil {
		return "", err
	}
	path, err := save(dir, "employee_list.xlsx", data)
	if err != nil {
		return "", err
	}
	s.notifier.Success("Employee list downloaded successfully!")
	return path, nil
}

func (s *Service) GenerateSalaryReport(ctx context.Context, format Format, p Period) (Report, error) {
	if err := s.validatePeriod(format, p); err != nil {
		return Report{}, err
	}
	out, err := s.Store.SalaryReport(ctx, format, p)
	if err != nil {
		return Report{}, err
	}
	s.notifier.Success("Salary report generated successfully!")
	return out, nil
}

func (s *Service) DownloadSalaryReport(ctx context.Context, format Format, p Period, dir string) (string, error) {
	if err := s.validatePeriod(format, p); err != nil {
		return "", err
	}
	data, err := s.Store.DownloadSalaryReport(ctx, format, p)
	if err != nil {
		return "", err
	}
	name := fmt.Sprintf("salary_report_%s_%d%s", p.Month, p.Year, format.Extension())
	path, err := save(dir, name, data)
	if err != nil {
		return "", err
	}
	s.notifier.Success("Salary report downloaded successfully!")
	return path, nil
}

// ExportPaymentRequests writes list as an XLSX workbook at path.
func (s *Service) ExportPaymentRequests(list []payments.Summary, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create export file")
	}
	if err := WritePaymentRequests(f, list); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return errors.Wrap(err, "close export file")
	}
	s.logger.WithFields(logrus.Fields{"path": path, "rows": len(list)}).Info("payment requests exported")
	return nil
}

func save(dir, name string, data []byte) (string, error) {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", errors.Wrap(err, "create download dir")
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", errors.Wrap(err, "write download")
	}
	return path, nil
}
