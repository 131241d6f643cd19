package employees

import "errors"

var (
	ErrTerminated    = errors.New("employee is terminated; only reactivation is allowed")
	ErrUnknownStatus = errors.New("unknown employee status")
)
