package reports

import (
	"io"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"

	"payroll/internal/domain/payments"
	"payroll/internal/transport/http/shared"
)

const paymentSheet = "Payment Requests"

var paymentHeader = []any{"ID", "Organization", "Type", "Month", "Year", "Amount", "Status", "Created"}

// WritePaymentRequests exports a payment request list as an XLSX workbook
// with one row per request and a total row for the amounts.
func WritePaymentRequests(w io.Writer, list []payments.Summary) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", paymentSheet); err != nil {
		return errors.Wrap(err, "name sheet")
	}
	if err := f.SetSheetRow(paymentSheet, "A1", &paymentHeader); err != nil {
		return errors.Wrap(err, "write header")
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return errors.Wrap(err, "create header style")
	}
	if err := f.SetCellStyle(paymentSheet, "A1", "H1", bold); err != nil {
		return errors.Wrap(err, "style header")
	}

	for i, r := range list {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		amount, _ := r.TotalAmount.Float64()
		row := []any{r.ID, r.OrganizationName, string(r.RequestType), r.Month, r.Year, amount, string(r.Status), shared.FormatDate(r.CreatedAt)}
		if err := f.SetSheetRow(paymentSheet, cell, &row); err != nil {
			return errors.Wrapf(err, "write row %d", i+2)
		}
	}

	if len(list) > 0 {
		totalRow := len(list) + 2
		label, _ := excelize.CoordinatesToCellName(5, totalRow)
		sum, _ := excelize.CoordinatesToCellName(6, totalRow)
		last, _ := excelize.CoordinatesToCellName(6, totalRow-1)
		if err := f.SetCellValue(paymentSheet, label, "Total"); err != nil {
			return err
		}
		if err := f.SetCellFormula(paymentSheet, sum, "SUM(F2:"+last+")"); err != nil {
			return errors.Wrap(err, "write total")
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return errors.Wrap(err, "write workbook")
	}
	return nil
}
