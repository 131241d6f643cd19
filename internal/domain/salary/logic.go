package salary

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"payroll/internal/domain/employees"
	"payroll/internal/transport/http/shared"
)

// ValidateStructure checks component bounds. When today is non-zero,
// effectiveFrom must not precede it (new structures only).
func ValidateStructure(req StructureRequest, today time.Time) error {
	v := shared.NewValidator()
	if req.BasicSalary.LessThan(decimal.NewFromInt(1)) {
		v.Add("basicSalary", "must be at least 1")
	}
	nonNegative := map[string]decimal.Decimal{
		"hra":               req.HRA,
		"dearnessAllowance": req.DearnessAllowance,
		"providentFund":     req.ProvidentFund,
		"otherAllowances":   req.OtherAllowances,
	}
	for field, amount := range nonNegative {
		if amount.IsNegative() {
			v.Add(field, "must be at least 0")
		}
	}
	if strings.TrimSpace(req.EffectiveFrom) == "" {
		v.Add("effectiveFrom", "is required")
	} else if effective, ok := v.Date("effectiveFrom", req.EffectiveFrom); ok && !today.IsZero() {
		day := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
		if effective.Before(day) {
			v.Add("effectiveFrom", "cannot be in the past")
		}
	}
	if _, _, net := Compute(req); net.IsNegative() {
		v.Add("providentFund", "must not exceed gross salary")
	}
	return v.Err()
}

// Overview lists every employee with their current salary, optionally
// filtered by a case-insensitive match on name or department.
func Overview(list []employees.Summary, search string) []OverviewRow {
	search = strings.ToLower(strings.TrimSpace(search))
	out := make([]OverviewRow, 0, len(list))
	for _, e := range list {
		if search != "" &&
			!strings.Contains(strings.ToLower(e.Name), search) &&
			!strings.Contains(strings.ToLower(e.Department), search) {
			continue
		}
		row := OverviewRow{
			EmployeeID:   e.ID,
			EmployeeName: e.Name,
			Department:   e.Department,
			Designation:  e.Designation,
			Status:       string(e.Status),
		}
		if e.CurrentSalary.Valid {
			row.CurrentSalary = e.CurrentSalary.Decimal
			row.HasActiveSalary = e.CurrentSalary.Decimal.IsPositive()
		}
		out = append(out, row)
	}
	return out
}

// HistoryYearOptions lists the current year and the years before it.
func HistoryYearOptions(now time.Time) []int {
	out := make([]int, 0, HistoryYears)
	for i := 0; i < HistoryYears; i++ {
		out = append(out, now.Year()-i)
	}
	return out
}
