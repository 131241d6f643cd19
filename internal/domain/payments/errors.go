package payments

import "errors"

var (
	ErrInvalidTransition = errors.New("payment request is not in a state that allows this action")
	ErrNoEmployees       = errors.New("select at least one employee")
	ErrNoVendor          = errors.New("select a vendor")
	ErrVendorInactive    = errors.New("only active vendors can be paid")
	ErrNotCandidate      = errors.New("employee is not eligible for salary disbursement")
	ErrUnknownStatus     = errors.New("unknown payment request status")
)
