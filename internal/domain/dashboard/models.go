package dashboard

import (
	"github.com/shopspring/decimal"

	"payroll/internal/domain/concerns"
	"payroll/internal/domain/employees"
	"payroll/internal/domain/organizations"
	"payroll/internal/domain/payments"
	"payroll/internal/domain/salary"
)

type AdminStats struct {
	PendingOrgs       int   `json:"pendingOrgs"`
	VerifiedOrgs      int   `json:"verifiedOrgs"`
	PendingPayments   int   `json:"pendingPayments"`
	ProcessedPayments int64 `json:"processedPayments"`
}

type Admin struct {
	Stats           AdminStats
	Organizations   []organizations.Summary
	PaymentRequests []payments.Summary
}

type OrgStats struct {
	TotalEmployees       int `json:"totalEmployees"`
	ActiveEmployees      int `json:"activeEmployees"`
	PendingPayments      int `json:"pendingPayments"`
	OpenConcerns         int `json:"openConcerns"`
	VerifiedEmployees    int `json:"verifiedEmployees"`
	PendingVerifications int `json:"pendingVerifications"`
	CompletedPayments    int `json:"completedPayments"`
	CriticalConcerns     int `json:"criticalConcerns"`
}

type Organization struct {
	Stats           OrgStats
	Profile         organizations.Organization
	Employees       []employees.Summary
	PaymentRequests []payments.Summary
	Concerns        []concerns.Summary
}

type Employee struct {
	Profile   employees.Profile
	History   []salary.HistoryEntry
	TotalPaid decimal.Decimal
	LastPaid  *salary.HistoryEntry
}
