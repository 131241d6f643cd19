package salary

import "github.com/shopspring/decimal"

type Structure struct {
	ID                int64           `json:"id"`
	EmployeeID        int64           `json:"employeeId"`
	EmployeeName      string          `json:"employeeName"`
	BasicSalary       decimal.Decimal `json:"basicSalary"`
	HRA               decimal.Decimal `json:"hra"`
	DearnessAllowance decimal.Decimal `json:"dearnessAllowance"`
	ProvidentFund     decimal.Decimal `json:"providentFund"`
	OtherAllowances   decimal.Decimal `json:"otherAllowances"`
	GrossSalary       decimal.Decimal `json:"grossSalary"`
	NetSalary         decimal.Decimal `json:"netSalary"`
	EffectiveFrom     string          `json:"effectiveFrom"`
	IsActive          bool            `json:"isActive"`
	CreatedAt         string          `json:"createdAt"`
}

type StructureRequest struct {
	EmployeeID        int64           `json:"employeeId"`
	BasicSalary       decimal.Decimal `json:"basicSalary"`
	HRA               decimal.Decimal `json:"hra"`
	DearnessAllowance decimal.Decimal `json:"dearnessAllowance"`
	ProvidentFund     decimal.Decimal `json:"providentFund"`
	OtherAllowances   decimal.Decimal `json:"otherAllowances"`
	EffectiveFrom     string          `json:"effectiveFrom"`
}

// RequestFrom prefills an update body from a loaded structure.
func RequestFrom(s Structure) StructureRequest {
	return StructureRequest{
		EmployeeID:        s.EmployeeID,
		BasicSalary:       s.BasicSalary,
		HRA:               s.HRA,
		DearnessAllowance: s.DearnessAllowance,
		ProvidentFund:     s.ProvidentFund,
		OtherAllowances:   s.OtherAllowances,
		EffectiveFrom:     s.EffectiveFrom,
	}
}

// Payment is one disbursed salary, as created by processing a payment
// request.
type Payment struct {
	ID                int64           `json:"id"`
	EmployeeID        int64           `json:"employeeId"`
	EmployeeName      string          `json:"employeeName"`
	Amount            decimal.Decimal `json:"amount"`
	Month             string          `json:"month"`
	Year              int             `json:"year"`
	PaymentDate       string          `json:"paymentDate"`
	Status            PaymentStatus   `json:"status"`
	TransactionID     string          `json:"transactionId"`
	SalarySlipURL     string          `json:"salarySlipUrl,omitempty"`
	BasicSalary       decimal.Decimal `json:"basicSalary"`
	HRA               decimal.Decimal `json:"hra"`
	DearnessAllowance decimal.Decimal `json:"dearnessAllowance"`
	ProvidentFund     decimal.Decimal `json:"providentFund"`
	OtherAllowances   decimal.Decimal `json:"otherAllowances"`
	GrossSalary       decimal.Decimal `json:"grossSalary"`
	NetSalary         decimal.Decimal `json:"netSalary"`
	CreatedAt         string          `json:"createdAt"`
}

type HistoryEntry struct {
	ID            int64           `json:"id"`
	Month         string          `json:"month"`
	Year          int             `json:"year"`
	Amount        decimal.Decimal `json:"amount"`
	NetSalary     decimal.Decimal `json:"netSalary"`
	PaymentDate   string          `json:"paymentDate"`
	Status        PaymentStatus   `json:"status"`
	SalarySlipURL string          `json:"salarySlipUrl,omitempty"`
}

type OverviewRow struct {
	EmployeeID      int64           `json:"employeeId"`
	EmployeeName    string          `json:"employeeName"`
	Department      string          `json:"department"`
	Designation     string          `json:"designation"`
	Status          string          `json:"status"`
	CurrentSalary   decimal.Decimal `json:"currentSalary"`
	HasActiveSalary bool            `json:"hasActiveSalary"`
}
