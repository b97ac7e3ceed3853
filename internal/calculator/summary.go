package calculator

import (
	"github.com/shopspring/decimal"

	"github.com/mmynk/soltracker/internal/models"
)

var hundred = decimal.NewFromInt(100)

// FinancialSummary aggregates collection and distribution for the current round.
type FinancialSummary struct {
	Round             int             `json:"round"`
	TotalExpected     decimal.Decimal `json:"totalExpected"`
	TotalCollected    decimal.Decimal `json:"totalCollected"`
	TotalToDistribute decimal.Decimal `json:"totalToDistribute"`
	TotalDistributed  decimal.Decimal `json:"totalDistributed"`

	// RemainingBalance is collected minus distributed; negative when payouts ran
	// ahead of collection.
	RemainingBalance decimal.Decimal `json:"remainingBalance"`

	// Progress values are percentages and are not clamped. Use ClampPercent for
	// display.
	CollectionProgress   float64 `json:"collectionProgress"`
	DistributionProgress float64 `json:"distributionProgress"`

	Members []MemberStatus `json:"members"`
}

// RoundPool is the amount contributed in one round by the members who are not
// receiving it: Amount * (MemberCount - WinnersPerRound). It is also the total
// paid out over the round.
func RoundPool(sol *models.Sol) decimal.Decimal {
	return sol.Amount.Mul(decimal.NewFromInt(int64(sol.MemberCount - sol.WinnersPerRound)))
}

// CollectedInRound sums every payment recorded against the round.
func CollectedInRound(sol *models.Sol, round int) decimal.Decimal {
	total := decimal.Zero
	for _, p := range sol.Payments {
		if p.Round == round {
			total = total.Add(p.AmountPaid)
		}
	}
	return total
}

// DistributedInRound sums the payout events of the round.
func DistributedInRound(sol *models.Sol, round int) decimal.Decimal {
	total := decimal.Zero
	for _, e := range sol.Events {
		if e.Type == models.EventPayout && e.Round == round {
			total = total.Add(e.Amount)
		}
	}
	return total
}

// Summarize computes the FinancialSummary of the Sol's current round.
func Summarize(sol *models.Sol) FinancialSummary {
	round := sol.CurrentRound
	expected := RoundPool(sol)
	collected := CollectedInRound(sol, round)
	distributed := DistributedInRound(sol, round)

	members := make([]MemberStatus, 0, len(sol.Members))
	for _, m := range sol.Members {
		members = append(members, MemberPaymentStatus(sol, m.ID, round))
	}

	return FinancialSummary{
		Round:                round,
		TotalExpected:        expected,
		TotalCollected:       collected,
		TotalToDistribute:    expected,
		TotalDistributed:     distributed,
		RemainingBalance:     collected.Sub(distributed),
		CollectionProgress:   percent(collected, expected),
		DistributionProgress: percent(distributed, expected),
		Members:              members,
	}
}

// percent returns part/whole*100, or 0 when there is nothing to collect.
func percent(part, whole decimal.Decimal) float64 {
	if whole.IsZero() {
		return 0
	}
	return part.Mul(hundred).Div(whole).InexactFloat64()
}

// ClampPercent bounds a progress value to [0, 100] for rendering.
func ClampPercent(p float64) float64 {
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}
