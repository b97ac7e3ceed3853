package calculator

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestSummarize(t *testing.T) {
	sol := newTestSol(4, 1, "100")
	pay(sol, "m2", 1, "100")
	pay(sol, "m3", 1, "50")
	payout(sol, "m1", 1, "120")

	s := Summarize(sol)

	if s.Round != 1 {
		t.Errorf("Round = %d", s.Round)
	}
	checks := []struct {
		name string
		got  decimal.Decimal
		want string
	}{
		{"TotalExpected", s.TotalExpected, "300"},
		{"TotalCollected", s.TotalCollected, "150"},
		{"TotalToDistribute", s.TotalToDistribute, "300"},
		{"TotalDistributed", s.TotalDistributed, "120"},
		{"RemainingBalance", s.RemainingBalance, "30"},
	}
	for _, c := range checks {
		if !c.got.Equal(decimal.RequireFromString(c.want)) {
			t.Errorf("%s = %s, want %s", c.name, c.got, c.want)
		}
	}
	if s.CollectionProgress != 50 {
		t.Errorf("CollectionProgress = %v, want 50", s.CollectionProgress)
	}
	if s.DistributionProgress != 40 {
		t.Errorf("DistributionProgress = %v, want 40", s.DistributionProgress)
	}
	if len(s.Members) != 4 {
		t.Errorf("Members: got %d, want 4", len(s.Members))
	}
}

func TestSummarizeNegativeBalance(t *testing.T) {
	sol := newTestSol(3, 1, "100")
	payout(sol, "m1", 1, "200")

	s := Summarize(sol)
	if !s.RemainingBalance.Equal(decimal.NewFromInt(-200)) {
		t.Errorf("RemainingBalance = %s, want -200", s.RemainingBalance)
	}
}

func TestSummarizeEmptyPool(t *testing.T) {
	// Everyone receives in the single round, so nobody pays.
	sol := newTestSol(3, 3, "100")

	s := Summarize(sol)
	if !s.TotalExpected.IsZero() {
		t.Errorf("TotalExpected = %s, want 0", s.TotalExpected)
	}
	if s.CollectionProgress != 0 || s.DistributionProgress != 0 {
		t.Errorf("progress should be 0 with an empty pool, got %v/%v",
			s.CollectionProgress, s.DistributionProgress)
	}
}

func TestClampPercent(t *testing.T) {
	tests := []struct{ in, want float64 }{
		{-5, 0}, {0, 0}, {42.5, 42.5}, {100, 100}, {133.3, 100},
	}
	for _, tt := range tests {
		if got := ClampPercent(tt.in); got != tt.want {
			t.Errorf("ClampPercent(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
