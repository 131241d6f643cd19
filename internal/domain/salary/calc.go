package salary

import "github.com/shopspring/decimal"

// Compute derives gross and net pay from a structure's components.
// Provident fund is the only deduction.
func Compute(req StructureRequest) (gross, deductions, net decimal.Decimal) {
	gross = req.BasicSalary.
		Add(req.HRA).
		Add(req.DearnessAllowance).
		Add(req.OtherAllowances)
	deductions = req.ProvidentFund
	net = gross.Sub(deductions)
	return gross, deductions, net
}

// TotalPaid sums net pay over completed payments.
func TotalPaid(history []HistoryEntry) decimal.Decimal {
	total := decimal.Zero
	for _, entry := range history {
		if entry.Status == PaymentCompleted {
			total = total.Add(entry.NetSalary)
		}
	}
	return total
}

// Active picks the active structure from a history list.
func Active(history []Structure) (Structure, bool) {
	for _, s := range history {
		if s.IsActive {
			return s, true
		}
	}
	return Structure{}, false
}
