package salary

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"payroll/internal/domain/employees"
	"payroll/internal/transport/http/shared"
)

// EmployeeLister supplies the roster for the salary overview.
type EmployeeLister interface {
	List(ctx context.Context) ([]employees.Summary, error)
}

type Service struct {
	Store     *Store
	employees EmployeeLister
	confirm   shared.Confirmer
	notifier  shared.Notifier
	logger    *logrus.Entry
	now       func() time.Time
}

func NewService(store *Store, roster EmployeeLister, confirm shared.Confirmer, notifier shared.Notifier, logger *logrus.Entry) *Service {
	if logger == nil {
		logger = logrus.NewEntry(logrus.StandardLogger())
	}
	return &Service{
		Store:     store,
		employees: roster,
		confirm:   confirm,
		notifier:  shared.NotifierOrNop(notifier),
		logger:    logger,
		now:       time.Now,
	}
}

// ActiveStructure returns the employee's active structure, taken from the
// history list so that an employee without one is not reported as an
// error. ok is false in that case.
func (s *Service) ActiveStructure(ctx context.Context, employeeID int64) (Structure, bool, error) {
	history, err := s.Store.History(ctx, employeeID)
	if err != nil {
		return Structure{}, false, err
	}
	active, ok := Active(history)
	return active, ok, nil
}

func (s *Service) History(ctx context.Context, employeeID int64) ([]Structure, error) {
	return s.Store.History(ctx, employeeID)
}

func (s *Service) Get(ctx context.Context, id int64) (Structure, error) {
	return s.Store.Get(ctx, id)
}

// Create stores a new structure for the employee; the backend deactivates
// the previous one.
func (s *Service) Create(ctx context.Context, employeeID int64, req StructureRequest) (Structure, error) {
	req.EmployeeID = employeeID
	if err := ValidateStructure(req, s.now()); err != nil {
		return Structure{}, err
	}
	out, err := s.Store.Create(ctx, employeeID, req)
	if err != nil {
		return Structure{}, err
	}
	_, _, net := Compute(req)
	s.logger.WithFields(logrus.Fields{"employeeId": employeeID, "net": net.StringFixed(2)}).Info("salary structure created")
	s.notifier.Success("Salary structure created successfully")
	return out, nil
}

func (s *Service) Update(ctx context.Context, id int64, req StructureRequest) (Structure, error) {
	if err := ValidateStructure(req, time.Time{}); err != nil {
		return Structure{}, err
	}
	out, err := s.Store.Update(ctx, id, req)
	if err != nil {
		return Structure{}, err
	}
	s.notifier.Success("Salary structure updated successfully")
	return out, nil
}

func (s *Service) Deactivate(ctx context.Context, id int64) error {
	if err := shared.Ask(s.confirm, "Are you sure you want to deactivate this salary structure?"); err != nil {
		return err
	}
	if err := s.Store.Delete(ctx, id); err != nil {
		return err
	}
	s.notifier.Success("Salary structure deactivated successfully")
	return nil
}

func (s *Service) Overview(ctx context.Context, search string) ([]OverviewRow, error) {
	list, err := s.employees.List(ctx)
	if err != nil {
		return nil, err
	}
	return Overview(list, search), nil
}

// PaymentHistory is an employee's salary history for one year (0 for all)
// together with the total paid out.
type PaymentHistory struct {
	Year      int
	Entries   []HistoryEntry
	TotalPaid decimal.Decimal
}

func (s *Service) MyHistory(ctx context.Context, year int) (PaymentHistory, error) {
	entries, err := s.Store.MyHistory(ctx, year)
	if err != nil {
		return PaymentHistory{}, err
	}
	return PaymentHistory{Year: year, Entries: entries, TotalPaid: TotalPaid(entries)}, nil
}

func (s *Service) YearOptions() []int {
	return HistoryYearOptions(s.now())
}
