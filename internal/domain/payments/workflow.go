package payments

import (
	"strings"

	"github.com/pkg/errors"

	"payroll/internal/transport/http/shared"
)

// PENDING -> APPROVED | REJECTED, APPROVED -> PROCESSING -> COMPLETED.

func CanApprove(s Status) bool { return s == StatusPending }
func CanReject(s Status) bool  { return s == StatusPending }
func CanProcess(s Status) bool { return s == StatusApproved }

// CanDelete reports whether the organization may withdraw the request.
func CanDelete(s Status) bool { return s == StatusPending }

func checkTransition(action string, current Status, allowed func(Status) bool) error {
	if !allowed(current) {
		return errors.Wrapf(ErrInvalidTransition, "%s %s request", action, strings.ToLower(string(current)))
	}
	return nil
}

func ValidateRejection(reason string) error {
	v := shared.NewValidator()
	if strings.TrimSpace(reason) == "" {
		v.Add("rejectionReason", "is required")
	} else {
		v.MinLength("rejectionReason", reason, minRejectionReason)
	}
	return v.Err()
}
