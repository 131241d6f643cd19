package salary

import (
	"testing"

	"github.com/shopspring/decimal"
)

func d(v string) decimal.Decimal { return decimal.RequireFromString(v) }

func TestCompute(t *testing.T) {
	req := StructureRequest{
		BasicSalary:       d("30000"),
		HRA:               d("12000"),
		DearnessAllowance: d("3000.50"),
		ProvidentFund:     d("3600"),
		OtherAllowances:   d("1500"),
	}

	gross, deductions, net := Compute(req)
	if !gross.Equal(d("46500.50")) {
		t.Fatalf("expected gross 46500.50, got %v", gross)
	}
	if !deductions.Equal(d("3600")) {
		t.Fatalf("expected deductions 3600, got %v", deductions)
	}
	if !net.Equal(d("42900.50")) {
		t.Fatalf("expected net 42900.50, got %v", net)
	}
}

func TestTotalPaidCountsCompletedOnly(t *testing.T) {
	history := []HistoryEntry{
		{NetSalary: d("42900.50"), Status: PaymentCompleted},
		{NetSalary: d("42900.50"), Status: PaymentCompleted},
		{NetSalary: d("42900.50"), Status: PaymentFailed},
		{NetSalary: d("42900.50"), Status: PaymentPending},
	}
	if got := TotalPaid(history); !got.Equal(d("85801")) {
		t.Fatalf("expected 85801, got %v", got)
	}
	if got := TotalPaid(nil); !got.IsZero() {
		t.Fatalf("expected zero for empty history, got %v", got)
	}
}

func TestActive(t *testing.T) {
	history := []Structure{{ID: 1}, {ID: 2, IsActive: true}, {ID: 3}}
	active, ok := Active(history)
	if !ok || active.ID != 2 {
		t.Fatalf("expected structure 2 to be active, got %+v (ok=%v)", active, ok)
	}
	if _, ok := Active(history[:1]); ok {
		t.Fatal("expected no active structure")
	}
}
