package calculator

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/mmynk/soltracker/internal/models"
)

func TestSchedule(t *testing.T) {
	sol := newTestSol(6, 2, "250")
	sol.CurrentRound = 2
	pay(sol, "m3", 1, "100")

	entries, ok := Schedule(sol, "m3")
	if !ok {
		t.Fatal("member not found")
	}
	if len(entries) != 3 {
		t.Fatalf("got %d entries, want 3", len(entries))
	}

	if !entries[0].Paid.Equal(decimal.NewFromInt(100)) {
		t.Errorf("round 1 paid = %s, want 100", entries[0].Paid)
	}
	if !entries[0].AmountDue.Equal(decimal.NewFromInt(250)) {
		t.Errorf("round 1 due = %s, want 250", entries[0].AmountDue)
	}

	payoutEntry := entries[1]
	if !payoutEntry.IsPayoutRound || !payoutEntry.AmountDue.IsZero() {
		t.Errorf("round 2 should be the payout round with nothing due: %+v", payoutEntry)
	}
	if !payoutEntry.IsCurrent {
		t.Error("round 2 should be current")
	}
	if want := testStart.AddDate(0, 0, 14); !entries[2].DueDate.Equal(want) {
		t.Errorf("round 3 due date = %v, want %v", entries[2].DueDate, want)
	}
}

func TestScheduleUnknownMember(t *testing.T) {
	sol := newTestSol(3, 1, "100")
	if _, ok := Schedule(sol, "nobody"); ok {
		t.Error("expected unknown member to be reported")
	}
}

func TestOverviewOf(t *testing.T) {
	a := newTestSol(10, 2, "100")
	a.CurrentRound = 3
	b := newTestSol(4, 1, "50")
	b.Status = models.StatusPaused
	c := newTestSol(3, 1, "20")
	c.Status = models.StatusCompleted
	c.CurrentRound = 3

	got := OverviewOf([]*models.Sol{a, b, c})
	want := Overview{
		TotalSols:        3,
		ActiveSols:       1,
		TotalMembers:     17,
		CurrentRoundsSum: 7,
		TotalRoundsSum:   12,
	}
	if got != want {
		t.Errorf("OverviewOf = %+v, want %+v", got, want)
	}

	if empty := OverviewOf(nil); empty != (Overview{}) {
		t.Errorf("empty overview = %+v", empty)
	}
}
