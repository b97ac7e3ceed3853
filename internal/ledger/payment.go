package ledger

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mmynk/soltracker/internal/calculator"
	"github.com/mmynk/soltracker/internal/models"
)

// PaymentOutcome describes an accepted payment.
type PaymentOutcome struct {
	Payment        models.Payment
	Event          models.SolEvent
	RemainingAfter decimal.Decimal
	IsPaidInFull   bool
}

// RecordPayment applies a member's contribution to the current round.
//
// The amount must be positive and may not exceed what the member still owes for
// the round; larger amounts fail with an OverpaymentError rather than being
// clamped. The payment and its audit event are appended together.
func (l *Ledger) RecordPayment(sol *models.Sol, memberID string, amount decimal.Decimal, date time.Time) (*models.Sol, PaymentOutcome, error) {
	if err := requireActive(sol); err != nil {
		return nil, PaymentOutcome{}, err
	}
	member, ok := sol.Member(memberID)
	if !ok {
		return nil, PaymentOutcome{}, &NotFoundError{Kind: "member", ID: memberID}
	}
	if !amount.IsPositive() {
		return nil, PaymentOutcome{}, &ValidationError{Field: "amount", Reason: "must be greater than 0"}
	}

	round := sol.CurrentRound
	remainingBefore := sol.Amount.Sub(calculator.PaidInRound(sol, memberID, round))
	if amount.GreaterThan(remainingBefore) {
		return nil, PaymentOutcome{}, &OverpaymentError{
			MemberID:  memberID,
			Round:     round,
			Attempted: amount,
			Remaining: remainingBefore,
		}
	}

	date = l.dateOr(date)
	remainingAfter := remainingBefore.Sub(amount)

	payment := models.Payment{
		ID:         l.newID(),
		MemberID:   memberID,
		Round:      round,
		AmountPaid: amount,
		AmountDue:  remainingAfter,
		Date:       date,
	}
	event := models.SolEvent{
		ID:          l.newID(),
		Type:        models.EventPayment,
		MemberID:    memberID,
		Amount:      amount,
		Date:        date,
		Round:       round,
		Description: paymentDescription(member.Name, amount, round, remainingAfter),
	}

	next := sol.Clone()
	next.Payments = append(next.Payments, payment)
	next.Events = append(next.Events, event)

	return next, PaymentOutcome{
		Payment:        payment,
		Event:          event,
		RemainingAfter: remainingAfter,
		IsPaidInFull:   !remainingAfter.IsPositive(),
	}, nil
}

func paymentDescription(name string, amount decimal.Decimal, round int, remaining decimal.Decimal) string {
	if !remaining.IsPositive() {
		return fmt.Sprintf("%s paid %s for round %d (paid in full)", name, amount, round)
	}
	return fmt.Sprintf("%s paid %s for round %d (%s remaining)", name, amount, round, remaining)
}

func requireActive(sol *models.Sol) error {
	if sol.Status != models.StatusActive {
		return &NotActiveError{SolID: sol.ID, Status: sol.Status}
	}
	return nil
}
