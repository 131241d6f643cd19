package payments

import "time"

type RequestType string

const (
	TypeSalary RequestType = "SALARY_DISBURSEMENT"
	TypeVendor RequestType = "VENDOR_PAYMENT"
)

type Status string

const (
	StatusPending    Status = "PENDING"
	StatusApproved   Status = "APPROVED"
	StatusRejected   Status = "REJECTED"
	StatusProcessing Status = "PROCESSING"
	StatusCompleted  Status = "COMPLETED"
)

var Statuses = []Status{StatusPending, StatusApproved, StatusRejected, StatusProcessing, StatusCompleted}

func (s Status) Valid() bool {
	for _, candidate := range Statuses {
		if s == candidate {
			return true
		}
	}
	return false
}

// Terminal reports whether no further transition is possible.
func (s Status) Terminal() bool {
	return s == StatusRejected || s == StatusCompleted
}

var Months = []string{
	"JANUARY", "FEBRUARY", "MARCH", "APRIL", "MAY", "JUNE",
	"JULY", "AUGUST", "SEPTEMBER", "OCTOBER", "NOVEMBER", "DECEMBER",
}

// MonthOf names t's month the way the backend expects it.
func MonthOf(t time.Time) string {
	return Months[t.Month()-1]
}

func validMonth(month string) bool {
	for _, m := range Months {
		if m == month {
			return true
		}
	}
	return false
}

// YearOptions is the current year and the two before it.
func YearOptions(now time.Time) []int {
	return []int{now.Year(), now.Year() - 1, now.Year() - 2}
}

const minRejectionReason = 10

// FilterAll disables status filtering in list views.
const FilterAll = "ALL"
