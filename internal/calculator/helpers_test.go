package calculator

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mmynk/soltracker/internal/models"
)

var testStart = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func newTestSol(memberCount, winnersPerRound int, amount string) *models.Sol {
	members := make([]models.Member, memberCount)
	for i := range members {
		members[i] = models.Member{
			ID:       fmt.Sprintf("m%d", i+1),
			Name:     fmt.Sprintf("Member %d", i+1),
			Position: i + 1,
		}
	}
	return &models.Sol{
		ID:              "sol-1",
		Name:            "Test",
		Frequency:       models.FrequencyWeekly,
		Amount:          decimal.RequireFromString(amount),
		MemberCount:     memberCount,
		WinnersPerRound: winnersPerRound,
		Members:         members,
		CurrentRound:    1,
		StartDate:       testStart,
		Status:          models.StatusActive,
		Payments:        []models.Payment{},
		Events:          []models.SolEvent{},
	}
}

func pay(sol *models.Sol, memberID string, round int, amount string) {
	a := decimal.RequireFromString(amount)
	sol.Payments = append(sol.Payments, models.Payment{
		ID: fmt.Sprintf("p%d", len(sol.Payments)+1), MemberID: memberID, Round: round, AmountPaid: a,
	})
	sol.Events = append(sol.Events, models.SolEvent{
		ID: fmt.Sprintf("e%d", len(sol.Events)+1), Type: models.EventPayment, MemberID: memberID, Round: round, Amount: a,
	})
}

func payout(sol *models.Sol, memberID string, round int, amount string) {
	sol.Events = append(sol.Events, models.SolEvent{
		ID:       fmt.Sprintf("e%d", len(sol.Events)+1),
		Type:     models.EventPayout,
		MemberID: memberID,
		Round:    round,
		Amount:   decimal.RequireFromString(amount),
	})
}
