package concerns

type Status string

const (
	StatusOpen       Status = "OPEN"
	StatusInProgress Status = "IN_PROGRESS"
	StatusResolved   Status = "RESOLVED"
	StatusClosed     Status = "CLOSED"
)

var Statuses = []Status{StatusOpen, StatusInProgress, StatusResolved, StatusClosed}

func (s Status) Valid() bool {
	for _, candidate := range Statuses {
		if s == candidate {
			return true
		}
	}
	return false
}

type Priority string

const (
	PriorityLow      Priority = "LOW"
	PriorityMedium   Priority = "MEDIUM"
	PriorityHigh     Priority = "HIGH"
	PriorityCritical Priority = "CRITICAL"
)

// Rank orders priorities from most to least urgent. Unknown values rank
// after every known one.
func (p Priority) Rank() int {
	switch p {
	case PriorityCritical:
		return 0
	case PriorityHigh:
		return 1
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 3
	default:
		return 4
	}
}

// List filters.
const (
	FilterAll        = "ALL"
	FilterCritical   = "CRITICAL"
	FilterHigh       = "HIGH"
	FilterPending    = "PENDING"
	FilterInProgress = "IN_PROGRESS"
	FilterResolved   = "RESOLVED"
)

var Filters = []string{FilterAll, FilterCritical, FilterHigh, FilterPending, FilterInProgress, FilterResolved}

const (
	minSubject     = 5
	minDescription = 20
	minResponse    = 20
)
