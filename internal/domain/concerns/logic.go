package concerns

import (
	"sort"
	"strings"

	"payroll/internal/transport/http/shared"
)

// Filter applies a list filter and sorts the result by priority. Items of
// equal priority keep their original order.
func Filter(list []Summary, filter string) ([]Summary, error) {
	var keep func(Summary) bool
	switch filter {
	case "", FilterAll:
		keep = func(Summary) bool { return true }
	case FilterCritical:
		keep = func(c Summary) bool { return c.Priority == PriorityCritical }
	case FilterHigh:
		keep = func(c Summary) bool { return c.Priority == PriorityHigh }
	case FilterPending:
		keep = func(c Summary) bool { return c.Status == StatusOpen }
	case FilterInProgress:
		keep = func(c Summary) bool { return c.Status == StatusInProgress }
	case FilterResolved:
		keep = func(c Summary) bool { return c.Status == StatusResolved }
	default:
		return nil, ErrUnknownFilter
	}
	out := make([]Summary, 0, len(list))
	for _, c := range list {
		if keep(c) {
			out = append(out, c)
		}
	}
	SortByPriority(out)
	return out, nil
}

func SortByPriority(list []Summary) {
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].Priority.Rank() < list[j].Priority.Rank()
	})
}

func ComputeStats(list []Summary) Stats {
	stats := Stats{Total: len(list)}
	for _, c := range list {
		switch c.Status {
		case StatusOpen:
			stats.Pending++
		case StatusInProgress:
			stats.InProgress++
		case StatusResolved:
			stats.Resolved++
		}
		switch c.Priority {
		case PriorityCritical:
			stats.Critical++
		case PriorityHigh:
			stats.High++
		}
	}
	return stats
}

func validateCreate(req CreateRequest) error {
	v := shared.NewValidator()
	v.Required("subject", req.Subject, "is required")
	if strings.TrimSpace(req.Subject) != "" {
		v.MinLength("subject", req.Subject, minSubject)
	}
	v.Required("description", req.Description, "is required")
	if strings.TrimSpace(req.Description) != "" {
		v.MinLength("description", req.Description, minDescription)
	}
	if req.Priority.Rank() > PriorityLow.Rank() {
		v.Add("priority", "must be one of LOW, MEDIUM, HIGH, CRITICAL")
	}
	return v.Err()
}

func validateResponse(response string) error {
	v := shared.NewValidator()
	v.Required("response", response, "is required")
	if strings.TrimSpace(response) != "" {
		v.MinLength("response", response, minResponse)
	}
	return v.Err()
}
