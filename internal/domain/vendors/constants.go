package vendors

type Status string

const (
	StatusActive      Status = "ACTIVE"
	StatusInactive    Status = "INACTIVE"
	StatusBlacklisted Status = "BLACKLISTED"
)

var Statuses = []Status{StatusActive, StatusInactive, StatusBlacklisted}

func (s Status) Valid() bool {
	for _, candidate := range Statuses {
		if s == candidate {
			return true
		}
	}
	return false
}

var ServiceTypes = []string{
	"IT Services",
	"Cleaning Services",
	"Security Services",
	"Catering",
	"Maintenance",
	"Consulting",
	"Transportation",
	"Other",
}
