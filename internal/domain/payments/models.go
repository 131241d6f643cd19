package payments

import "github.com/shopspring/decimal"

type PaymentRequest struct {
	ID               int64           `json:"id"`
	OrganizationID   int64           `json:"organizationId"`
	OrganizationName string          `json:"organizationName"`
	RequestType      RequestType     `json:"requestType"`
	TotalAmount      decimal.Decimal `json:"totalAmount"`
	EmployeeCount    *int            `json:"employeeCount,omitempty"`
	Month            string          `json:"month"`
	Year             int             `json:"year"`
	Status           Status          `json:"status"`
	Remarks          string          `json:"remarks,omitempty"`
	RejectionReason  string          `json:"rejectionReason,omitempty"`
	ApprovedBy       *int64          `json:"approvedBy,omitempty"`
	ApprovedByName   string          `json:"approvedByName,omitempty"`
	ApprovedAt       string          `json:"approvedAt,omitempty"`
	CreatedAt        string          `json:"createdAt"`
	UpdatedAt        string          `json:"updatedAt"`
}

type Summary struct {
	ID               int64           `json:"id"`
	OrganizationName string          `json:"organizationName"`
	RequestType      RequestType     `json:"requestType"`
	TotalAmount      decimal.Decimal `json:"totalAmount"`
	Month            string          `json:"month"`
	Year             int             `json:"year"`
	Status           Status          `json:"status"`
	CreatedAt        string          `json:"createdAt"`
}

// CreateRequest is the submission body. EmployeeCount and Remarks are
// sent as null when absent.
type CreateRequest struct {
	RequestType   RequestType     `json:"requestType"`
	Month         string          `json:"month"`
	Year          int             `json:"year"`
	TotalAmount   decimal.Decimal `json:"totalAmount"`
	EmployeeCount *int            `json:"employeeCount"`
	Remarks       *string         `json:"remarks"`
}

type rejectBody struct {
	RejectionReason string `json:"rejectionReason"`
}

type countBody struct {
	Count int64 `json:"count"`
}

// Counts tallies a request list by status.
type Counts struct {
	Total     int
	Pending   int
	Approved  int
	Rejected  int
	Completed int
}
