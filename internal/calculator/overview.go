package calculator

import "github.com/mmynk/soltracker/internal/models"

// Overview aggregates all Sols for the dashboard.
type Overview struct {
	TotalSols        int `json:"totalSols"`
	ActiveSols       int `json:"activeSols"`
	TotalMembers     int `json:"totalMembers"`
	CurrentRoundsSum int `json:"currentRoundsSum"` // sum of CurrentRound over all Sols
	TotalRoundsSum   int `json:"totalRoundsSum"`   // sum of TotalRounds over all Sols
}

// OverviewOf computes dashboard totals.
func OverviewOf(sols []*models.Sol) Overview {
	var o Overview
	for _, sol := range sols {
		o.TotalSols++
		if sol.Status == models.StatusActive {
			o.ActiveSols++
		}
		o.TotalMembers += sol.MemberCount
		o.CurrentRoundsSum += sol.CurrentRound
		o.TotalRoundsSum += TotalRoundsForSol(sol)
	}
	return o
}
