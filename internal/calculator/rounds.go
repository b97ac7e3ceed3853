package calculator

import (
	"sort"
	"time"

	"github.com/mmynk/soltracker/internal/models"
)

// Round is one payment cycle of a Sol. Rounds are always derived, never stored.
type Round struct {
	Number        int             `json:"roundNumber"`
	Members       []models.Member `json:"members"` // recipients, in position order
	ScheduledDate time.Time       `json:"scheduledDate"`
}

// periodDays is the fixed length of one round. Monthly is a flat 30 days, not a
// calendar month; stored schedules depend on it.
var periodDays = map[models.Frequency]int{
	models.FrequencyDaily:    1,
	models.FrequencyWeekly:   7,
	models.FrequencyBiweekly: 14,
	models.FrequencyMonthly:  30,
}

// PeriodDays returns the number of days between two rounds. Unknown
// frequencies fall back to a week.
func PeriodDays(f models.Frequency) int {
	if d, ok := periodDays[f]; ok {
		return d
	}
	return 7
}

// TotalRounds is ceil(memberCount / winnersPerRound).
func TotalRounds(memberCount, winnersPerRound int) int {
	if memberCount <= 0 || winnersPerRound <= 0 {
		return 0
	}
	return (memberCount + winnersPerRound - 1) / winnersPerRound
}

// RoundOf returns the round in which the member at position receives a payout.
func RoundOf(position, winnersPerRound int) int {
	if position <= 0 || winnersPerRound <= 0 {
		return 0
	}
	return (position + winnersPerRound - 1) / winnersPerRound
}

// ScheduledDate returns startDate + (round-1) periods.
func ScheduledDate(startDate time.Time, frequency models.Frequency, round int) time.Time {
	if round < 1 {
		round = 1
	}
	return startDate.AddDate(0, 0, (round-1)*PeriodDays(frequency))
}

// Rounds partitions members into payout rounds.
//
// Round n holds the members at indexes [(n-1)*winnersPerRound, n*winnersPerRound)
// of the position-ordered list, clipped to memberCount, so the last round may be
// short. The result does not alias members.
func Rounds(memberCount, winnersPerRound int, members []models.Member, startDate time.Time, frequency models.Frequency) []Round {
	total := TotalRounds(memberCount, winnersPerRound)
	if total == 0 {
		return nil
	}

	ordered := append([]models.Member(nil), members...)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Position < ordered[j].Position
	})
	if len(ordered) > memberCount {
		ordered = ordered[:memberCount]
	}

	rounds := make([]Round, 0, total)
	for n := 1; n <= total; n++ {
		lo := (n - 1) * winnersPerRound
		hi := n * winnersPerRound
		if hi > len(ordered) {
			hi = len(ordered)
		}
		var slice []models.Member
		if lo < hi {
			slice = append([]models.Member(nil), ordered[lo:hi]...)
		}
		rounds = append(rounds, Round{
			Number:        n,
			Members:       slice,
			ScheduledDate: ScheduledDate(startDate, frequency, n),
		})
	}
	return rounds
}

// RoundsForSol derives the rounds of a Sol from its configuration.
func RoundsForSol(sol *models.Sol) []Round {
	return Rounds(sol.MemberCount, sol.WinnersPerRound, sol.Members, sol.StartDate, sol.Frequency)
}

// TotalRoundsForSol is TotalRounds for the Sol's configuration.
func TotalRoundsForSol(sol *models.Sol) int {
	return TotalRounds(sol.MemberCount, sol.WinnersPerRound)
}

// RecipientsOf returns the members paid out in the given round.
func RecipientsOf(sol *models.Sol, round int) []models.Member {
	rounds := RoundsForSol(sol)
	if round < 1 || round > len(rounds) {
		return nil
	}
	return rounds[round-1].Members
}

// CurrentRecipients returns the members paid out in the Sol's current round.
func CurrentRecipients(sol *models.Sol) []models.Member {
	return RecipientsOf(sol, sol.CurrentRound)
}

// IsRecipient reports whether memberID is paid out in the given round.
func IsRecipient(sol *models.Sol, memberID string, round int) bool {
	for _, m := range RecipientsOf(sol, round) {
		if m.ID == memberID {
			return true
		}
	}
	return false
}

// NextPaymentDate is the scheduled date of the current round.
func NextPaymentDate(sol *models.Sol) time.Time {
	return ScheduledDate(sol.StartDate, sol.Frequency, sol.CurrentRound)
}
