package payments

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"payroll/internal/domain/employees"
	"payroll/internal/domain/vendors"
	"payroll/internal/notify"
	"payroll/internal/platform/apitest"
	"payroll/internal/transport/http/api"
	"payroll/internal/transport/http/shared"
)

var fixedNow = time.Date(2026, time.May, 20, 12, 0, 0, 0, time.UTC)

func d(v string) decimal.Decimal { return decimal.RequireFromString(v) }

type harness struct {
	org    *Service
	admin  *AdminService
	srv    *apitest.Server
	center *notify.Center
}

func newHarness(t *testing.T, confirm shared.Confirmer) harness {
	t.Helper()
	srv := apitest.New(t)
	client, err := api.New(srv.URL + "/api")
	require.NoError(t, err)
	center := notify.New(nil)
	store := NewStore(client)
	org := NewService(store, employees.NewStore(client), vendors.NewStore(client), confirm, center, nil)
	org.now = func() time.Time { return fixedNow }
	srv.Reply(http.MethodGet, "/api/org/employees", http.StatusOK, []map[string]any{
		{"id": 1, "status": "ACTIVE", "accountVerificationStatus": "VERIFIED", "currentSalary": 45000},
		{"id": 2, "status": "ON_LEAVE", "accountVerificationStatus": "VERIFIED", "currentSalary": 30000.5},
		{"id": 3, "status": "INACTIVE", "accountVerificationStatus": "VERIFIED", "currentSalary": 10000},
	})
	srv.Reply(http.MethodGet, "/api/org/vendors", http.StatusOK, []map[string]any{
		{"id": 7, "name": "CleanCo", "status": "ACTIVE"},
		{"id": 8, "name": "Shady Ltd", "status": "BLACKLISTED"},
	})
	return harness{
		org:    org,
		admin:  NewAdminService(store, confirm, center, nil),
		srv:    srv,
		center: center,
	}
}

func TestVendorDraftMissingInvoiceSendsNothing(t *testing.T) {
	h := newHarness(t, shared.AlwaysConfirm)
	draft, err := h.org.NewDraft(context.Background())
	require.NoError(t, err)

	draft.SetType(TypeVendor)
	require.NoError(t, draft.SelectVendor(7))
	draft.Invoice = Invoice{Amount: d("5000"), Date: "2026-05-18"}

	_, err = h.org.Submit(context.Background(), draft)
	var verr *shared.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.True(t, verr.Has("invoiceNumber"))
	assert.Empty(t, h.srv.CallsTo(http.MethodPost, "/api/org/payment-requests"))
	last, _ := h.center.Last()
	assert.Equal(t, "Please fill all required fields", last.Message)
}

func TestVendorDraftSubmitsOnce(t *testing.T) {
	h := newHarness(t, shared.AlwaysConfirm)
	h.srv.Reply(http.MethodPost, "/api/org/payment-requests", http.StatusCreated, map[string]any{"id": 31, "status": "PENDING"})
	draft, err := h.org.NewDraft(context.Background())
	require.NoError(t, err)

	draft.SetType(TypeVendor)
	assert.ErrorIs(t, draft.SelectVendor(8), ErrVendorInactive)
	require.NoError(t, draft.SelectVendor(7))
	draft.Invoice = Invoice{Amount: d("5000"), Number: "INV-204", Date: "2026-05-18", Description: "May cleaning"}

	out, err := h.org.Submit(context.Background(), draft)
	require.NoError(t, err)
	assert.Equal(t, int64(31), out.ID)

	calls := h.srv.CallsTo(http.MethodPost, "/api/org/payment-requests")
	require.Len(t, calls, 1)
	assert.JSONEq(t, `{
		"requestType": "VENDOR_PAYMENT",
		"month": "MAY",
		"year": 2026,
		"totalAmount": 5000,
		"employeeCount": null,
		"remarks": "Vendor: CleanCo | Invoice: INV-204 | May cleaning"
	}`, string(calls[0].Body))
	last, _ := h.center.Last()
	assert.Equal(t, "Payment request submitted successfully", last.Message)
}

func TestSalaryDraft(t *testing.T) {
	h := newHarness(t, shared.AlwaysConfirm)
	h.srv.Reply(http.MethodPost, "/api/org/payment-requests", http.StatusCreated, map[string]any{"id": 32})
	draft, err := h.org.NewDraft(context.Background())
	require.NoError(t, err)
	require.Len(t, draft.Employees.Candidates(), 2)

	_, err = h.org.Submit(context.Background(), draft)
	require.ErrorIs(t, err, ErrNoEmployees)
	assert.Empty(t, h.srv.CallsTo(http.MethodPost, "/api/org/payment-requests"))

	draft.Employees.ToggleAll()
	assert.Equal(t, "75000.5", draft.Total().String())
	_, err = h.org.Submit(context.Background(), draft)
	require.NoError(t, err)

	calls := h.srv.CallsTo(http.MethodPost, "/api/org/payment-requests")
	require.Len(t, calls, 1)
	assert.JSONEq(t, `{
		"requestType": "SALARY_DISBURSEMENT",
		"month": "MAY",
		"year": 2026,
		"totalAmount": 75000.5,
		"employeeCount": 2,
		"remarks": null
	}`, string(calls[0].Body))
}

func TestSetTypeResetsSelection(t *testing.T) {
	h := newHarness(t, nil)
	draft, err := h.org.NewDraft(context.Background())
	require.NoError(t, err)

	require.NoError(t, draft.Employees.Toggle(1))
	draft.SetType(TypeVendor)
	assert.Zero(t, draft.Employees.Count())
	assert.True(t, draft.Total().IsZero())

	require.NoError(t, draft.SelectVendor(7))
	draft.Invoice.Amount = d("10")
	draft.SetType(TypeSalary)
	_, ok := draft.Vendor()
	assert.False(t, ok)
	assert.True(t, draft.Invoice.Amount.IsZero())
}

func TestDraftRejectsOutOfRangeYear(t *testing.T) {
	h := newHarness(t, nil)
	draft, err := h.org.NewDraft(context.Background())
	require.NoError(t, err)
	require.NoError(t, draft.Employees.Toggle(1))

	draft.Year = 2023
	_, err = draft.Build(fixedNow)
	var verr *shared.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.True(t, verr.Has("year"))

	draft.Year = 2024
	draft.Month = "Smarch"
	_, err = draft.Build(fixedNow)
	require.ErrorAs(t, err, &verr)
	assert.True(t, verr.Has("month"))
	assert.Equal(t, []int{2026, 2025, 2024}, YearOptions(fixedNow))
}

func TestDeleteOnlyPending(t *testing.T) {
	h := newHarness(t, shared.AlwaysConfirm)
	h.srv.Reply(http.MethodGet, "/api/org/payment-requests/{id}", http.StatusOK, map[string]any{"id": 5, "status": "APPROVED"})

	err := h.org.Delete(context.Background(), 5)
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.Empty(t, h.srv.CallsTo(http.MethodDelete, "/api/org/payment-requests/5"))
}

func stateful(h harness, status *string) {
	h.srv.Handle(http.MethodGet, "/api/admin/payment-requests/{id}", func(w http.ResponseWriter, r *http.Request) {
		apitest.WriteJSON(w, http.StatusOK, map[string]any{"id": 9, "status": *status, "totalAmount": 75000.5})
	})
}

func TestApproveReloads(t *testing.T) {
	h := newHarness(t, shared.AlwaysConfirm)
	status := "PENDING"
	stateful(h, &status)
	h.srv.Handle(http.MethodPost, "/api/admin/payment-requests/{id}/approve", func(w http.ResponseWriter, r *http.Request) {
		status = "APPROVED"
		w.WriteHeader(http.StatusOK)
	})

	got, err := h.admin.Approve(context.Background(), 9)
	require.NoError(t, err)
	assert.Equal(t, StatusApproved, got.Status)
	require.Len(t, h.srv.CallsTo(http.MethodPost, "/api/admin/payment-requests/9/approve"), 1)
	assert.Equal(t, "{}", string(h.srv.CallsTo(http.MethodPost, "/api/admin/payment-requests/9/approve")[0].Body))

	_, err = h.admin.Approve(context.Background(), 9)
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.Len(t, h.srv.CallsTo(http.MethodPost, "/api/admin/payment-requests/9/approve"), 1)
}

func TestApproveDeclined(t *testing.T) {
	h := newHarness(t, shared.ConfirmFunc(func(string) bool { return false }))
	status := "PENDING"
	stateful(h, &status)

	_, err := h.admin.Approve(context.Background(), 9)
	assert.ErrorIs(t, err, shared.ErrNotConfirmed)
	assert.Empty(t, h.srv.CallsTo(http.MethodPost, "/api/admin/payment-requests/9/approve"))
}

func TestRejectNeedsReason(t *testing.T) {
	h := newHarness(t, shared.AlwaysConfirm)
	status := "PENDING"
	stateful(h, &status)
	h.srv.Handle(http.MethodPost, "/api/admin/payment-requests/{id}/reject", func(w http.ResponseWriter, r *http.Request) {
		status = "REJECTED"
		w.WriteHeader(http.StatusOK)
	})

	_, err := h.admin.Reject(context.Background(), 9, "  no  ")
	require.Error(t, err)
	assert.Empty(t, h.srv.Calls())

	got, err := h.admin.Reject(context.Background(), 9, "\n  Amounts do not match the roster  ")
	require.NoError(t, err)
	assert.Equal(t, StatusRejected, got.Status)
	var body map[string]string
	h.srv.CallsTo(http.MethodPost, "/api/admin/payment-requests/9/reject")[0].DecodeBody(t, &body)
	assert.Equal(t, "Amounts do not match the roster", body["rejectionReason"])
}

func TestProcessReportsCount(t *testing.T) {
	h := newHarness(t, shared.AlwaysConfirm)
	status := "PENDING"
	stateful(h, &status)
	h.srv.Handle(http.MethodPost, "/api/salary-payments/process/{id}", func(w http.ResponseWriter, r *http.Request) {
		status = "COMPLETED"
		apitest.WriteJSON(w, http.StatusOK, []map[string]any{{"id": 1}, {"id": 2}})
	})

	_, _, err := h.admin.Process(context.Background(), 9)
	require.ErrorIs(t, err, ErrInvalidTransition)

	status = "APPROVED"
	got, count, err := h.admin.Process(context.Background(), 9)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
	assert.Equal(t, StatusCompleted, got.Status)
	last, _ := h.center.Last()
	assert.Equal(t, "Payment processed successfully for 2 employees", last.Message)
}

func TestProcessedCount(t *testing.T) {
	h := newHarness(t, nil)
	h.srv.Reply(http.MethodGet, "/api/admin/payment-requests/processed/count", http.StatusOK, map[string]any{"count": 12})

	count, err := h.admin.ProcessedCount(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(12), count)
}

func TestListRejectsUnknownStatus(t *testing.T) {
	h := newHarness(t, nil)
	h.srv.Reply(http.MethodGet, "/api/admin/payment-requests", http.StatusOK, []map[string]any{
		{"id": 1, "status": "PENDING"},
		{"id": 2, "status": "APPROVED"},
	})

	_, err := h.admin.List(context.Background(), "approved")
	assert.ErrorIs(t, err, ErrUnknownStatus)

	list, err := h.admin.List(context.Background(), "APPROVED")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, int64(2), list[0].ID)
}
