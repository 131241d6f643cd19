package salary

import (
	"bytes"
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"payroll/internal/domain/employees"
	"payroll/internal/notify"
	"payroll/internal/platform/apitest"
	"payroll/internal/transport/http/api"
	"payroll/internal/transport/http/shared"
)

var fixedNow = time.Date(2026, time.March, 10, 9, 30, 0, 0, time.UTC)

func validRequest() StructureRequest {
	return StructureRequest{
		BasicSalary:       d("30000"),
		HRA:               d("12000"),
		DearnessAllowance: d("3000"),
		ProvidentFund:     d("3600"),
		OtherAllowances:   d("0"),
		EffectiveFrom:     "2026-04-01",
	}
}

func newService(t *testing.T, confirm shared.Confirmer) (*Service, *apitest.Server, *notify.Center) {
	t.Helper()
	srv := apitest.New(t)
	client, err := api.New(srv.URL)
	require.NoError(t, err)
	center := notify.New(nil)
	svc := NewService(NewStore(client), employees.NewStore(client), confirm, center, nil)
	svc.now = func() time.Time { return fixedNow }
	return svc, srv, center
}

func TestValidateStructure(t *testing.T) {
	require.NoError(t, ValidateStructure(validRequest(), fixedNow))

	cases := map[string]struct {
		mutate func(*StructureRequest)
		field  string
	}{
		"basic below one":  {func(r *StructureRequest) { r.BasicSalary = d("0.5") }, "basicSalary"},
		"negative hra":     {func(r *StructureRequest) { r.HRA = d("-1") }, "hra"},
		"negative other":   {func(r *StructureRequest) { r.OtherAllowances = d("-0.01") }, "otherAllowances"},
		"missing date":     {func(r *StructureRequest) { r.EffectiveFrom = " " }, "effectiveFrom"},
		"bad date":         {func(r *StructureRequest) { r.EffectiveFrom = "01-04-2026" }, "effectiveFrom"},
		"past date":        {func(r *StructureRequest) { r.EffectiveFrom = "2026-03-09" }, "effectiveFrom"},
		"pf exceeds gross": {func(r *StructureRequest) { r.ProvidentFund = d("50000") }, "providentFund"},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			req := validRequest()
			tc.mutate(&req)
			err := ValidateStructure(req, fixedNow)
			var verr *shared.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.True(t, verr.Has(tc.field), verr.Error())
		})
	}
}

func TestValidateStructureTodayIsAllowed(t *testing.T) {
	req := validRequest()
	req.EffectiveFrom = "2026-03-10"
	assert.NoError(t, ValidateStructure(req, fixedNow))

	req.EffectiveFrom = "2020-01-01"
	assert.NoError(t, ValidateStructure(req, time.Time{}), "updates may keep an old effective date")
}

func TestCreateInvalidSendsNothing(t *testing.T) {
	svc, srv, _ := newService(t, shared.AlwaysConfirm)
	req := validRequest()
	req.BasicSalary = d("0")

	_, err := svc.Create(context.Background(), 7, req)
	require.Error(t, err)
	assert.Empty(t, srv.Calls())
}

func TestCreatePostsDecimalsAsNumbers(t *testing.T) {
	svc, srv, center := newService(t, shared.AlwaysConfirm)
	srv.Reply(http.MethodPost, "/org/salary-structure/employee/{id}", http.StatusCreated, map[string]any{"id": 11, "employeeId": 7, "isActive": true})

	out, err := svc.Create(context.Background(), 7, validRequest())
	require.NoError(t, err)
	assert.Equal(t, int64(11), out.ID)

	calls := srv.CallsTo(http.MethodPost, "/org/salary-structure/employee/7")
	require.Len(t, calls, 1)
	var body map[string]any
	calls[0].DecodeBody(t, &body)
	assert.Equal(t, float64(7), body["employeeId"])
	assert.Equal(t, float64(30000), body["basicSalary"])
	assert.Equal(t, "2026-04-01", body["effectiveFrom"])

	last, _ := center.Last()
	assert.Equal(t, "Salary structure created successfully", last.Message)
}

func TestActiveStructureWithoutOne(t *testing.T) {
	svc, srv, center := newService(t, nil)
	srv.Reply(http.MethodGet, "/org/salary-structure/employee/{id}/history", http.StatusOK, []map[string]any{
		{"id": 1, "isActive": false},
	})

	_, ok, err := svc.ActiveStructure(context.Background(), 3)
	require.NoError(t, err)
	assert.False(t, ok)
	_, notified := center.Last()
	assert.False(t, notified)
}

func TestDeactivateNeedsConfirmation(t *testing.T) {
	svc, srv, _ := newService(t, shared.ConfirmFunc(func(string) bool { return false }))
	require.ErrorIs(t, svc.Deactivate(context.Background(), 4), shared.ErrNotConfirmed)
	assert.Empty(t, srv.Calls())

	svc, srv, _ = newService(t, shared.AlwaysConfirm)
	srv.Reply(http.MethodDelete, "/org/salary-structure/{id}", http.StatusNoContent, nil)
	require.NoError(t, svc.Deactivate(context.Background(), 4))
	assert.Len(t, srv.CallsTo(http.MethodDelete, "/org/salary-structure/4"), 1)
}

func TestOverviewSearch(t *testing.T) {
	svc, srv, _ := newService(t, nil)
	srv.Reply(http.MethodGet, "/org/employees", http.StatusOK, []map[string]any{
		{"id": 1, "name": "Asha Rao", "department": "Finance", "currentSalary": 42000},
		{"id": 2, "name": "Vikram Shah", "department": "Engineering", "currentSalary": nil},
		{"id": 3, "name": "Meera Iyer", "department": "Finance Ops", "currentSalary": 0},
	})

	all, err := svc.Overview(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.True(t, all[0].HasActiveSalary)
	assert.False(t, all[1].HasActiveSalary)
	assert.False(t, all[2].HasActiveSalary)

	finance, err := svc.Overview(context.Background(), "  FINANCE ")
	require.NoError(t, err)
	require.Len(t, finance, 2)
	assert.Equal(t, int64(3), finance[1].EmployeeID)

	byName, err := svc.Overview(context.Background(), "vikram")
	require.NoError(t, err)
	require.Len(t, byName, 1)
}

func TestMyHistoryYearFilterAndTotal(t *testing.T) {
	svc, srv, _ := newService(t, nil)
	srv.Reply(http.MethodGet, "/salary-payments/my-history", http.StatusOK, []map[string]any{
		{"id": 1, "month": "JANUARY", "year": 2026, "netSalary": 41000.25, "status": "COMPLETED"},
		{"id": 2, "month": "FEBRUARY", "year": 2026, "netSalary": 41000.25, "status": "PROCESSING"},
	})

	history, err := svc.MyHistory(context.Background(), 2026)
	require.NoError(t, err)
	assert.Len(t, history.Entries, 2)
	assert.Equal(t, "41000.25", history.TotalPaid.String())
	assert.Equal(t, "2026", srv.Calls()[0].Query.Get("year"))

	_, err = svc.MyHistory(context.Background(), 0)
	require.NoError(t, err)
	assert.Empty(t, srv.Calls()[1].Query.Get("year"))

	assert.Equal(t, []int{2026, 2025, 2024, 2023, 2022}, svc.YearOptions())
}

func TestWriteStatement(t *testing.T) {
	history := PaymentHistory{
		Year: 2026,
		Entries: []HistoryEntry{
			{Month: "JANUARY", Year: 2026, NetSalary: d("41000.25"), PaymentDate: "2026-01-31T10:00:00", Status: PaymentCompleted},
		},
		TotalPaid: d("41000.25"),
	}
	var buf bytes.Buffer
	require.NoError(t, WriteStatement(&buf, Statement{EmployeeName: "Asha Rao", Email: "asha@acme.test"}, history))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
}
