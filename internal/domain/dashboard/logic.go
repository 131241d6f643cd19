package dashboard

import (
	"payroll/internal/domain/concerns"
	"payroll/internal/domain/employees"
	"payroll/internal/domain/organizations"
	"payroll/internal/domain/payments"
	"payroll/internal/domain/salary"
)

func AdminSummary(orgs []organizations.Summary, requests []payments.Summary, processed int64) AdminStats {
	counts := organizations.Count(orgs)
	return AdminStats{
		PendingOrgs:       counts.Pending,
		VerifiedOrgs:      counts.Verified,
		PendingPayments:   payments.CountByStatus(requests).Pending,
		ProcessedPayments: processed,
	}
}

func OrgSummary(staff []employees.Summary, requests []payments.Summary, tickets []concerns.Summary) OrgStats {
	var stats OrgStats
	for _, e := range staff {
		switch e.Status {
		case employees.StatusActive:
			stats.TotalEmployees++
			stats.ActiveEmployees++
		case employees.StatusOnLeave:
			stats.TotalEmployees++
		}
		switch e.AccountVerificationStatus {
		case employees.VerificationVerified:
			stats.VerifiedEmployees++
		case employees.VerificationPending:
			stats.PendingVerifications++
		}
	}
	paymentCounts := payments.CountByStatus(requests)
	stats.PendingPayments = paymentCounts.Pending
	stats.CompletedPayments = paymentCounts.Completed
	ticketStats := concerns.ComputeStats(tickets)
	stats.OpenConcerns = ticketStats.Pending + ticketStats.InProgress
	stats.CriticalConcerns = ticketStats.Critical
	return stats
}

// lastCompleted is the first completed entry; history arrives newest
// first.
func lastCompleted(history []salary.HistoryEntry) *salary.HistoryEntry {
	for i := range history {
		if history[i].Status == salary.PaymentCompleted {
			entry := history[i]
			return &entry
		}
	}
	return nil
}
