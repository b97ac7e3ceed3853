package ledger

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/mmynk/soltracker/internal/models"
)

// EventFilter narrows an event listing. Zero values match everything.
type EventFilter struct {
	Round    int
	MemberID string
	Type     models.EventType
}

func (f EventFilter) match(e models.SolEvent) bool {
	if f.Round != 0 && e.Round != f.Round {
		return false
	}
	if f.MemberID != "" && e.MemberID != f.MemberID {
		return false
	}
	if f.Type != "" && e.Type != f.Type {
		return false
	}
	return true
}

// Events returns the matching events newest first. Events with the same date
// keep reverse insertion order. The returned slice is a copy.
func Events(sol *models.Sol, filter EventFilter) []models.SolEvent {
	out := make([]models.SolEvent, 0, len(sol.Events))
	for i := len(sol.Events) - 1; i >= 0; i-- {
		if filter.match(sol.Events[i]) {
			out = append(out, sol.Events[i])
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date)
	})
	return out
}

type memberRound struct {
	memberID string
	round    int
}

// CheckConsistency verifies that the payment history and the payment events
// describe the same contributions.
func CheckConsistency(sol *models.Sol) error {
	type tally struct {
		count int
		total decimal.Decimal
	}
	payments := make(map[memberRound]tally)
	for _, p := range sol.Payments {
		k := memberRound{p.MemberID, p.Round}
		t := payments[k]
		payments[k] = tally{t.count + 1, t.total.Add(p.AmountPaid)}
	}
	events := make(map[memberRound]tally)
	for _, e := range sol.Events {
		if e.Type != models.EventPayment {
			continue
		}
		k := memberRound{e.MemberID, e.Round}
		t := events[k]
		events[k] = tally{t.count + 1, t.total.Add(e.Amount)}
	}

	if len(payments) != len(events) {
		return fmt.Errorf("sol %s: %d member rounds with payments but %d with payment events",
			sol.ID, len(payments), len(events))
	}
	for k, p := range payments {
		e, ok := events[k]
		if !ok || e.count != p.count || !e.total.Equal(p.total) {
			return fmt.Errorf("sol %s: payments of member %s in round %d do not match their events",
				sol.ID, k.memberID, k.round)
		}
	}
	return nil
}
