package payments

import "github.com/shopspring/decimal"

// FilterByStatus keeps the requests in status; FilterAll or "" keeps all.
func FilterByStatus(list []Summary, status string) ([]Summary, error) {
	if status == "" || status == FilterAll {
		return list, nil
	}
	if !Status(status).Valid() {
		return nil, ErrUnknownStatus
	}
	out := make([]Summary, 0, len(list))
	for _, r := range list {
		if string(r.Status) == status {
			out = append(out, r)
		}
	}
	return out, nil
}

func CountByStatus(list []Summary) Counts {
	c := Counts{Total: len(list)}
	for _, r := range list {
		switch r.Status {
		case StatusPending:
			c.Pending++
		case StatusApproved:
			c.Approved++
		case StatusRejected:
			c.Rejected++
		case StatusCompleted:
			c.Completed++
		}
	}
	return c
}

// PendingTotal sums the amounts still awaiting a decision.
func PendingTotal(list []Summary) decimal.Decimal {
	total := decimal.Zero
	for _, r := range list {
		if r.Status == StatusPending {
			total = total.Add(r.TotalAmount)
		}
	}
	return total
}
