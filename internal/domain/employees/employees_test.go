package employees

import (
	"context"
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"payroll/internal/notify"
	"payroll/internal/platform/apitest"
	"payroll/internal/platform/media"
	"payroll/internal/transport/http/api"
	"payroll/internal/transport/http/shared"
)

func salary(v string) decimal.NullDecimal {
	return decimal.NewNullDecimal(decimal.RequireFromString(v))
}

func TestEligible(t *testing.T) {
	cases := map[string]struct {
		e    Summary
		want bool
	}{
		"active verified paid": {Summary{Status: StatusActive, AccountVerificationStatus: VerificationVerified, CurrentSalary: salary("50000")}, true},
		"on leave counts":      {Summary{Status: StatusOnLeave, AccountVerificationStatus: VerificationVerified, CurrentSalary: salary("1")}, true},
		"inactive":             {Summary{Status: StatusInactive, AccountVerificationStatus: VerificationVerified, CurrentSalary: salary("50000")}, false},
		"terminated":           {Summary{Status: StatusTerminated, AccountVerificationStatus: VerificationVerified, CurrentSalary: salary("50000")}, false},
		"pending verification": {Summary{Status: StatusActive, AccountVerificationStatus: VerificationPending, CurrentSalary: salary("50000")}, false},
		"no salary":            {Summary{Status: StatusActive, AccountVerificationStatus: VerificationVerified}, false},
		"zero salary":          {Summary{Status: StatusActive, AccountVerificationStatus: VerificationVerified, CurrentSalary: salary("0")}, false},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, Eligible(tc.e))
		})
	}
}

func TestValidateRequest(t *testing.T) {
	good := Request{
		Name: "Asha Rao", Email: "asha@acme.test", Phone: "9876543210", Address: "12 Park Rd",
		Department: "Finance", Designation: "Analyst", DateOfJoining: "2024-04-01",
		BankAccountNumber: "123456789012", BankName: "State Bank", IFSCCode: "SBIN0001234",
	}
	require.NoError(t, ValidateRequest(good))

	bad := good
	bad.Phone = "12345"
	bad.BankAccountNumber = "12ab"
	bad.IFSCCode = "SBIN1001234"
	bad.DateOfJoining = "01/04/2024"
	err := ValidateRequest(bad)
	var verr *shared.ValidationError
	require.ErrorAs(t, err, &verr)
	for _, field := range []string{"phone", "bankAccountNumber", "ifscCode", "dateOfJoining"} {
		assert.True(t, verr.Has(field), field)
	}
}

func TestCanChangeStatus(t *testing.T) {
	assert.NoError(t, CanChangeStatus(StatusActive, StatusTerminated))
	assert.NoError(t, CanChangeStatus(StatusTerminated, StatusActive))
	assert.ErrorIs(t, CanChangeStatus(StatusTerminated, StatusOnLeave), ErrTerminated)
	assert.ErrorIs(t, CanChangeStatus(StatusActive, "FIRED"), ErrUnknownStatus)
}

type stubPictures struct{ calls int }

func (s *stubPictures) UploadProfilePicture(context.Context, media.File) (string, error) {
	s.calls++
	return "https://cdn.test/me.png", nil
}

func newService(t *testing.T, confirm shared.Confirmer) (*Service, *apitest.Server, *notify.Center, *stubPictures) {
	t.Helper()
	srv := apitest.New(t)
	client, err := api.New(srv.URL)
	require.NoError(t, err)
	center := notify.New(nil)
	pictures := &stubPictures{}
	return NewService(NewStore(client), confirm, center, pictures, nil), srv, center, pictures
}

func TestServiceEligibleFiltersList(t *testing.T) {
	svc, srv, _, _ := newService(t, shared.AlwaysConfirm)
	srv.Reply(http.MethodGet, "/org/employees", http.StatusOK, []map[string]any{
		{"id": 1, "status": "ACTIVE", "accountVerificationStatus": "VERIFIED", "currentSalary": 40000},
		{"id": 2, "status": "ACTIVE", "accountVerificationStatus": "PENDING", "currentSalary": 40000},
		{"id": 3, "status": "ON_LEAVE", "accountVerificationStatus": "VERIFIED", "currentSalary": 25000.5},
		{"id": 4, "status": "ACTIVE", "accountVerificationStatus": "VERIFIED", "currentSalary": nil},
	})

	list, err := svc.Eligible(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, int64(1), list[0].ID)
	assert.Equal(t, "25000.5", list[1].CurrentSalary.Decimal.String())
}

func TestChangeStatusReloads(t *testing.T) {
	svc, srv, center, _ := newService(t, shared.AlwaysConfirm)
	status := "TERMINATED"
	srv.Handle(http.MethodGet, "/org/employees/{id}", func(w http.ResponseWriter, r *http.Request) {
		apitest.WriteJSON(w, http.StatusOK, map[string]any{"id": 5, "status": status})
	})
	srv.Handle(http.MethodPut, "/org/employees/{id}/status", func(w http.ResponseWriter, r *http.Request) {
		status = r.URL.Query().Get("status")
		w.WriteHeader(http.StatusOK)
	})

	_, err := svc.ChangeStatus(context.Background(), 5, StatusOnLeave)
	require.ErrorIs(t, err, ErrTerminated)
	assert.Empty(t, srv.CallsTo(http.MethodPut, "/org/employees/5/status"))

	got, err := svc.ChangeStatus(context.Background(), 5, StatusActive)
	require.NoError(t, err)
	assert.Equal(t, StatusActive, got.Status)
	last, _ := center.Last()
	assert.Equal(t, "Employee reactivated successfully", last.Message)
}

func TestDeclinedConfirmationSendsNothing(t *testing.T) {
	svc, srv, _, _ := newService(t, shared.ConfirmFunc(func(string) bool { return false }))
	srv.Reply(http.MethodGet, "/org/employees/{id}", http.StatusOK, map[string]any{"id": 5, "status": "ACTIVE"})

	err := svc.Delete(context.Background(), 5, "Asha")
	assert.ErrorIs(t, err, shared.ErrNotConfirmed)
	_, err = svc.VerifyAccount(context.Background(), 5)
	assert.ErrorIs(t, err, shared.ErrNotConfirmed)

	for _, call := range srv.Calls() {
		assert.Equal(t, http.MethodGet, call.Method)
	}
}

func TestVerifyTerminatedIsBlocked(t *testing.T) {
	svc, srv, center, _ := newService(t, shared.AlwaysConfirm)
	srv.Reply(http.MethodGet, "/org/employees/{id}", http.StatusOK, map[string]any{"id": 5, "status": "TERMINATED"})

	_, err := svc.VerifyAccount(context.Background(), 5)
	require.ErrorIs(t, err, ErrTerminated)
	last, _ := center.Last()
	assert.Equal(t, notify.LevelError, last.Level)
	assert.Empty(t, srv.CallsTo(http.MethodPost, "/org/employees/5/verify-account"))
}

func TestUpdateProfilePicture(t *testing.T) {
	svc, srv, _, pictures := newService(t, nil)
	srv.Reply(http.MethodPut, "/employee/profile/picture", http.StatusOK, nil)

	url, err := svc.UpdateProfilePicture(context.Background(), media.NewFile("me.png", "image/png", []byte("x")))
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.test/me.png", url)
	assert.Equal(t, 1, pictures.calls)

	var body map[string]string
	srv.Calls()[0].DecodeBody(t, &body)
	assert.Equal(t, map[string]string{"profilePictureUrl": "https://cdn.test/me.png"}, body)
}
