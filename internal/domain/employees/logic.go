package employees

import (
	"strings"

	"github.com/shopspring/decimal"

	"payroll/internal/transport/http/shared"
)

// Eligible reports whether e can be paid in a salary disbursement.
func Eligible(e Summary) bool {
	if e.Status != StatusActive && e.Status != StatusOnLeave {
		return false
	}
	if e.AccountVerificationStatus != VerificationVerified {
		return false
	}
	return e.CurrentSalary.Valid && e.CurrentSalary.Decimal.GreaterThan(decimal.Zero)
}

// FilterEligible keeps list order.
func FilterEligible(list []Summary) []Summary {
	out := make([]Summary, 0, len(list))
	for _, e := range list {
		if Eligible(e) {
			out = append(out, e)
		}
	}
	return out
}

func ValidateRequest(req Request) error {
	v := shared.NewValidator()
	v.Struct(normalize(req))
	if req.DateOfJoining != "" {
		v.Date("dateOfJoining", req.DateOfJoining)
	}
	return v.Err()
}

func normalize(req Request) Request {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	req.IFSCCode = strings.ToUpper(strings.TrimSpace(req.IFSCCode))
	return req
}

// CanChangeStatus enforces that a terminated employee can only be
// reactivated.
func CanChangeStatus(current, next Status) error {
	if !next.Valid() {
		return ErrUnknownStatus
	}
	if current == StatusTerminated && next != StatusActive {
		return ErrTerminated
	}
	return nil
}

// StatusPrompt is the confirmation text for moving to next.
func StatusPrompt(next Status) string {
	if next == StatusTerminated {
		return "Are you sure you want to TERMINATE this employee? This revokes their system access, account verification and salary management. You can reactivate them later."
	}
	if next == StatusActive {
		return "Are you sure you want to change status to ACTIVE? They will regain access to the system."
	}
	return "Are you sure you want to change status to " + string(next) + "?"
}
