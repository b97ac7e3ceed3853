package ledger

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mmynk/soltracker/internal/calculator"
	"github.com/mmynk/soltracker/internal/models"
)

// PayoutOutcome describes an accepted payout.
type PayoutOutcome struct {
	Event         models.SolEvent
	PreviousRound int
	CurrentRound  int
	Advanced      bool // the round closed and CurrentRound moved on
	Completed     bool // the final round closed
}

// RecordPayout pays a recipient of the current round its share of the pool and
// advances the round once every recipient has been paid.
//
// The round pool is Amount * (MemberCount - WinnersPerRound), split equally
// between the round's recipients and rounded down to cents; the payout that
// closes the round receives whatever is left of the pool, so a fully paid out
// round always distributes exactly the pool.
func (l *Ledger) RecordPayout(sol *models.Sol, memberID string, date time.Time) (*models.Sol, PayoutOutcome, error) {
	if err := requireActive(sol); err != nil {
		return nil, PayoutOutcome{}, err
	}
	member, ok := sol.Member(memberID)
	if !ok {
		return nil, PayoutOutcome{}, &NotFoundError{Kind: "member", ID: memberID}
	}

	round := sol.CurrentRound
	recipients := calculator.CurrentRecipients(sol)
	if !containsMember(recipients, memberID) {
		return nil, PayoutOutcome{}, &InvalidRecipientError{
			MemberID: memberID,
			Round:    round,
			Reason:   "not a recipient of the current round",
		}
	}
	paidOut := calculator.PaidOut(sol, round)
	if paidOut[memberID] {
		return nil, PayoutOutcome{}, &InvalidRecipientError{
			MemberID: memberID,
			Round:    round,
			Reason:   "already paid out",
		}
	}
	if l.policy.RequireFullCollectionBeforeAdvance {
		if outstanding := outstandingPayers(sol, round); len(outstanding) > 0 {
			return nil, PayoutOutcome{}, &CollectionIncompleteError{Round: round, Outstanding: outstanding}
		}
	}

	waiting := 0
	for _, r := range recipients {
		if !paidOut[r.ID] {
			waiting++
		}
	}
	amount := payoutShare(sol, len(recipients), waiting == 1)

	date = l.dateOr(date)
	event := models.SolEvent{
		ID:          l.newID(),
		Type:        models.EventPayout,
		MemberID:    memberID,
		Amount:      amount,
		Date:        date,
		Round:       round,
		Description: fmt.Sprintf("%s received a payout of %s for round %d", member.Name, amount, round),
	}

	next := sol.Clone()
	next.Events = append(next.Events, event)

	outcome := PayoutOutcome{Event: event, PreviousRound: round, CurrentRound: round}
	if waiting == 1 {
		if round < calculator.TotalRoundsForSol(next) {
			next.CurrentRound = round + 1
			outcome.Advanced = true
		} else {
			next.Status = models.StatusCompleted
			outcome.Completed = true
		}
		outcome.CurrentRound = next.CurrentRound
	}

	return next, outcome, nil
}

// payoutShare returns one recipient's share of the current round's pool.
func payoutShare(sol *models.Sol, recipients int, closesRound bool) decimal.Decimal {
	pool := calculator.RoundPool(sol)
	if closesRound {
		return pool.Sub(calculator.DistributedInRound(sol, sol.CurrentRound))
	}
	return pool.Div(decimal.NewFromInt(int64(recipients))).RoundDown(2)
}

func outstandingPayers(sol *models.Sol, round int) []string {
	var ids []string
	for _, m := range calculator.Payers(sol, round) {
		if !calculator.MemberPaymentStatus(sol, m.ID, round).IsPaidInFull {
			ids = append(ids, m.ID)
		}
	}
	return ids
}

func containsMember(members []models.Member, id string) bool {
	for _, m := range members {
		if m.ID == id {
			return true
		}
	}
	return false
}
