package employees

type Status string

const (
	StatusActive     Status = "ACTIVE"
	StatusInactive   Status = "INACTIVE"
	StatusTerminated Status = "TERMINATED"
	StatusOnLeave    Status = "ON_LEAVE"
)

var Statuses = []Status{StatusActive, StatusInactive, StatusTerminated, StatusOnLeave}

type Verification string

const (
	VerificationPending  Verification = "PENDING"
	VerificationVerified Verification = "VERIFIED"
	VerificationRejected Verification = "REJECTED"
)

func (s Status) Valid() bool {
	for _, candidate := range Statuses {
		if s == candidate {
			return true
		}
	}
	return false
}
