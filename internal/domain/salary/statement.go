package salary

import (
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf"
	"github.com/pkg/errors"

	"payroll/internal/transport/http/shared"
)

// Statement is the header printed above an employee's salary history.
type Statement struct {
	EmployeeName string
	Email        string
	Department   string
	Designation  string
}

// WriteStatement renders history as a one-page PDF statement.
func WriteStatement(w io.Writer, st Statement, history PaymentHistory) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Salary Statement")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Employee: %s", st.EmployeeName))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Email: %s", st.Email))
	pdf.Ln(7)
	if st.Department != "" {
		pdf.Cell(0, 8, fmt.Sprintf("Department: %s / %s", st.Department, st.Designation))
		pdf.Ln(7)
	}
	period := "All years"
	if history.Year > 0 {
		period = fmt.Sprintf("Year %d", history.Year)
	}
	pdf.Cell(0, 8, "Period: "+period)
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 11)
	widths := []float64{40, 20, 40, 40, 40}
	for i, title := range []string{"Month", "Year", "Net Salary", "Paid On", "Status"} {
		pdf.CellFormat(widths[i], 8, title, "1", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)
	pdf.SetFont("Helvetica", "", 11)
	for _, entry := range history.Entries {
		row := []string{
			entry.Month,
			fmt.Sprintf("%d", entry.Year),
			entry.NetSalary.StringFixed(2),
			shared.FormatDate(entry.PaymentDate),
			string(entry.Status),
		}
		for i, cell := range row {
			pdf.CellFormat(widths[i], 8, cell, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}
	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Total paid: %s", history.TotalPaid.StringFixed(2)))

	if err := pdf.Output(w); err != nil {
		return errors.Wrap(err, "render salary statement")
	}
	return nil
}
