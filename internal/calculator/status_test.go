package calculator

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestMemberPaymentStatus(t *testing.T) {
	tests := []struct {
		name        string
		payments    []string
		wantPaid    string
		wantRemain  string
		wantFull    bool
		wantPartial bool
	}{
		{"nothing paid", nil, "0", "1000", false, false},
		{"partial", []string{"600"}, "600", "400", false, true},
		{"two partials settle", []string{"600", "400"}, "1000", "0", true, false},
		{"single full", []string{"1000"}, "1000", "0", true, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sol := newTestSol(4, 1, "1000")
			for _, p := range tt.payments {
				pay(sol, "m2", 1, p)
			}
			pay(sol, "m2", 2, "50") // other rounds don't count

			st := MemberPaymentStatus(sol, "m2", 1)
			if !st.TotalPaid.Equal(decimal.RequireFromString(tt.wantPaid)) {
				t.Errorf("TotalPaid = %s, want %s", st.TotalPaid, tt.wantPaid)
			}
			if !st.Remaining.Equal(decimal.RequireFromString(tt.wantRemain)) {
				t.Errorf("Remaining = %s, want %s", st.Remaining, tt.wantRemain)
			}
			if st.IsPaidInFull != tt.wantFull {
				t.Errorf("IsPaidInFull = %v, want %v", st.IsPaidInFull, tt.wantFull)
			}
			if st.HasPartialPayment != tt.wantPartial {
				t.Errorf("HasPartialPayment = %v, want %v", st.HasPartialPayment, tt.wantPartial)
			}
			if st.IsPaidInFull && st.HasPartialPayment {
				t.Error("status cannot be both full and partial")
			}
		})
	}
}

func TestPayersAndCollection(t *testing.T) {
	sol := newTestSol(4, 1, "100")

	payers := Payers(sol, 1)
	if len(payers) != 3 {
		t.Fatalf("got %d payers, want 3", len(payers))
	}
	for _, m := range payers {
		if m.ID == "m1" {
			t.Error("recipient listed as payer")
		}
	}

	if CollectionComplete(sol, 1) {
		t.Error("collection should be incomplete")
	}
	for _, id := range []string{"m2", "m3", "m4"} {
		pay(sol, id, 1, "100")
	}
	if !CollectionComplete(sol, 1) {
		t.Error("collection should be complete")
	}
}

func TestPaidOut(t *testing.T) {
	sol := newTestSol(4, 2, "100")
	payout(sol, "m1", 1, "100")
	pay(sol, "m2", 1, "100")

	got := PaidOut(sol, 1)
	if !got["m1"] || got["m2"] || len(got) != 1 {
		t.Errorf("PaidOut = %v", got)
	}
	if len(PaidOut(sol, 2)) != 0 {
		t.Error("round 2 has no payouts")
	}
}
