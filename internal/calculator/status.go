package calculator

import (
	"github.com/shopspring/decimal"

	"github.com/mmynk/soltracker/internal/models"
)

// MemberStatus is a member's contribution state for one round.
type MemberStatus struct {
	MemberID          string          `json:"memberId"`
	Round             int             `json:"round"`
	TotalPaid         decimal.Decimal `json:"totalPaid"`
	Remaining         decimal.Decimal `json:"remaining"` // Amount - TotalPaid
	IsPaidInFull      bool            `json:"isPaidInFull"`
	HasPartialPayment bool            `json:"hasPartialPayment"`
}

// PaidInRound sums the payments a member made towards the given round.
func PaidInRound(sol *models.Sol, memberID string, round int) decimal.Decimal {
	total := decimal.Zero
	for _, p := range sol.Payments {
		if p.MemberID == memberID && p.Round == round {
			total = total.Add(p.AmountPaid)
		}
	}
	return total
}

// MemberPaymentStatus derives a member's status for a round from the payment
// records alone, so it is correct regardless of call order.
func MemberPaymentStatus(sol *models.Sol, memberID string, round int) MemberStatus {
	paid := PaidInRound(sol, memberID, round)
	remaining := sol.Amount.Sub(paid)
	return MemberStatus{
		MemberID:          memberID,
		Round:             round,
		TotalPaid:         paid,
		Remaining:         remaining,
		IsPaidInFull:      !remaining.IsPositive(),
		HasPartialPayment: paid.IsPositive() && remaining.IsPositive(),
	}
}

// PaidOut returns the ids of members with a payout event in the given round.
func PaidOut(sol *models.Sol, round int) map[string]bool {
	ids := make(map[string]bool)
	for _, e := range sol.Events {
		if e.Type == models.EventPayout && e.Round == round {
			ids[e.MemberID] = true
		}
	}
	return ids
}

// Payers returns the members expected to contribute in a round: everyone who is
// not a recipient of it.
func Payers(sol *models.Sol, round int) []models.Member {
	recipients := make(map[string]bool)
	for _, m := range RecipientsOf(sol, round) {
		recipients[m.ID] = true
	}
	payers := make([]models.Member, 0, len(sol.Members))
	for _, m := range sol.Members {
		if !recipients[m.ID] {
			payers = append(payers, m)
		}
	}
	return payers
}

// CollectionComplete reports whether every payer of the round is paid in full.
func CollectionComplete(sol *models.Sol, round int) bool {
	for _, m := range Payers(sol, round) {
		if !MemberPaymentStatus(sol, m.ID, round).IsPaidInFull {
			return false
		}
	}
	return true
}
