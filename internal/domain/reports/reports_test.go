package reports

import (
	"bytes"
	"context"
	"net/http"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"payroll/internal/domain/payments"
	"payroll/internal/notify"
	"payroll/internal/platform/apitest"
	"payroll/internal/transport/http/api"
	"payroll/internal/transport/http/shared"
)

func newService(t *testing.T) (*Service, *apitest.Server) {
	t.Helper()
	srv := apitest.New(t)
	client, err := api.New(srv.URL)
	require.NoError(t, err)
	svc := NewService(NewStore(client), notify.New(nil), nil)
	svc.now = func() time.Time { return time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC) }
	return svc, srv
}

func TestGenerateSalaryReportSendsPeriod(t *testing.T) {
	svc, srv := newService(t)
	srv.Reply(http.MethodGet, "/reports/salary-report/pdf", http.StatusOK, map[string]any{
		"message": "Report generated", "reportUrl": "https://files.test/r.pdf", "fileName": "r.pdf", "type": "PDF", "reportType": "SALARY", "month": "MAY", "year": "2026",
	})

	report, err := svc.GenerateSalaryReport(context.Background(), FormatPDF, Period{Month: "MAY", Year: 2026})
	require.NoError(t, err)
	assert.Equal(t, "https://files.test/r.pdf", report.ReportURL)
	call := srv.Calls()[0]
	assert.Equal(t, "MAY", call.Query.Get("month"))
	assert.Equal(t, "2026", call.Query.Get("year"))
}

func TestSalaryReportPeriodValidation(t *testing.T) {
	svc, srv := newService(t)

	_, err := svc.GenerateSalaryReport(context.Background(), FormatExcel, Period{Year: 2026})
	var verr *shared.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.True(t, verr.Has("month"))

	_, err = svc.GenerateSalaryReport(context.Background(), FormatExcel, Period{Month: "MAY", Year: 2021})
	require.ErrorAs(t, err, &verr)
	assert.True(t, verr.Has("year"))

	_, err = svc.GenerateSalaryReport(context.Background(), "csv", Period{Month: "MAY", Year: 2026})
	assert.ErrorIs(t, err, ErrUnknownFormat)
	assert.Empty(t, srv.Calls())
	assert.Equal(t, []int{2026, 2025, 2024, 2023, 2022}, svc.YearOptions())
}

func TestDownloadSalaryReportWritesFile(t *testing.T) {
	svc, srv := newService(t)
	srv.Handle(http.MethodGet, "/reports/salary-report/excel/download", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("xlsx"))
	})
	dir := t.TempDir()

	path, err := svc.DownloadSalaryReport(context.Background(), FormatExcel, Period{Month: "APRIL", Year: 2025}, dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "salary_report_APRIL_2025.xlsx"), path)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "xlsx", string(data))
}

func TestDownloadEmployeeList(t *testing.T) {
	svc, srv := newService(t)
	srv.Handle(http.MethodGet, "/reports/employees/excel/download", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("employees"))
	})
	dir := filepath.Join(t.TempDir(), "nested")

	path, err := svc.DownloadEmployeeList(context.Background(), dir)
	require.NoError(t, err)
	assert.Equal(t, "employee_list.xlsx", filepath.Base(path))
}

func TestWritePaymentRequests(t *testing.T) {
	list := []payments.Summary{
		{ID: 1, OrganizationName: "Acme", RequestType: payments.TypeSalary, Month: "MAY", Year: 2026, TotalAmount: decimal.RequireFromString("75000.5"), Status: payments.StatusPending, CreatedAt: "2026-05-20T10:00:00"},
		{ID: 2, OrganizationName: "Acme", RequestType: payments.TypeVendor, Month: "MAY", Year: 2026, TotalAmount: decimal.RequireFromString("5000"), Status: payments.StatusApproved, CreatedAt: "2026-05-21"},
	}
	var buf bytes.Buffer
	require.NoError(t, WritePaymentRequests(&buf, list))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows(paymentSheet)
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, "Organization", rows[0][1])
	assert.Equal(t, "SALARY_DISBURSEMENT", rows[1][2])
	assert.Equal(t, "75000.5", rows[1][5])
	assert.Equal(t, "2026-05-20", rows[1][7])
	assert.Equal(t, "Total", rows[3][4])

	formula, err := f.GetCellFormula(paymentSheet, "F4")
	require.NoError(t, err)
	assert.Equal(t, "SUM(F2:F3)", formula)
}
