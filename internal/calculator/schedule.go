package calculator

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/mmynk/soltracker/internal/models"
)

// ScheduleEntry is one round of a member's payment schedule.
type ScheduleEntry struct {
	Round   int       `json:"round"`
	DueDate time.Time `json:"dueDate"`

	// AmountDue is what the member is expected to contribute; zero in the
	// member's own payout round.
	AmountDue decimal.Decimal `json:"amountDue"`
	Paid      decimal.Decimal `json:"paid"`

	IsPayoutRound bool `json:"isPayoutRound"`
	IsCurrent     bool `json:"isCurrent"`
}

// Schedule lays out a member's contributions and payout across all rounds.
// It returns false if the member does not belong to the Sol.
func Schedule(sol *models.Sol, memberID string) ([]ScheduleEntry, bool) {
	member, ok := sol.Member(memberID)
	if !ok {
		return nil, false
	}
	payoutRound := RoundOf(member.Position, sol.WinnersPerRound)

	rounds := RoundsForSol(sol)
	entries := make([]ScheduleEntry, 0, len(rounds))
	for _, r := range rounds {
		due := sol.Amount
		if r.Number == payoutRound {
			due = decimal.Zero
		}
		entries = append(entries, ScheduleEntry{
			Round:         r.Number,
			DueDate:       r.ScheduledDate,
			AmountDue:     due,
			Paid:          PaidInRound(sol, memberID, r.Number),
			IsPayoutRound: r.Number == payoutRound,
			IsCurrent:     r.Number == sol.CurrentRound,
		})
	}
	return entries, true
}
