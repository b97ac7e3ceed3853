package models

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// Stored records carry amounts as JSON numbers ("amount": 1000), not strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// Frequency is how often members contribute.
type Frequency string

const (
	FrequencyDaily    Frequency = "daily"
	FrequencyWeekly   Frequency = "weekly"
	FrequencyBiweekly Frequency = "biweekly"
	FrequencyMonthly  Frequency = "monthly"
)

// Valid reports whether f is one of the known frequencies.
func (f Frequency) Valid() bool {
	switch f {
	case FrequencyDaily, FrequencyWeekly, FrequencyBiweekly, FrequencyMonthly:
		return true
	}
	return false
}

// Status is the lifecycle state of a Sol.
type Status string

const (
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
	StatusPaused    Status = "paused"
)

// Sol represents a rotating savings group together with its ledger.
//
// Everything except CurrentRound, Status, Payments and Events is fixed when the
// group is created.
type Sol struct {
	// ID is the unique identifier for the group (UUID format).
	ID string `json:"id"`

	// Name is the display name of the group (e.g., "Sòl Fanmi").
	Name string `json:"name"`

	// Frequency is the contribution schedule.
	Frequency Frequency `json:"frequency"`

	// Amount is the contribution due from each member every round.
	Amount decimal.Decimal `json:"amount"`

	// MemberCount always equals len(Members).
	MemberCount int `json:"memberCount"`

	// WinnersPerRound is how many members receive a payout each round.
	// 1 <= WinnersPerRound <= MemberCount.
	WinnersPerRound int `json:"winnersPerRound"`

	// Members in position order. Positions are 1..MemberCount.
	Members []Member `json:"members"`

	// CurrentRound is the round being collected and paid out (1-based).
	CurrentRound int `json:"currentRound"`

	// StartDate is the scheduled date of round 1.
	StartDate time.Time `json:"startDate"`

	Status Status `json:"status"`

	// Payments is the append-only contribution history.
	Payments []Payment `json:"payments"`

	// Events is the append-only audit trail of payments and payouts.
	Events []SolEvent `json:"events"`
}

// Member is a participant of a Sol.
type Member struct {
	ID   string `json:"id"`
	Name string `json:"name"`

	// Position determines payout order; position p is paid in round
	// ceil(p / WinnersPerRound).
	Position int `json:"position"`
}

// Member returns the member with the given ID.
func (s *Sol) Member(memberID string) (Member, bool) {
	for _, m := range s.Members {
		if m.ID == memberID {
			return m, true
		}
	}
	return Member{}, false
}

// Clone returns a deep copy of the Sol. Engine operations mutate the clone and
// hand it back, leaving the caller's snapshot untouched.
func (s *Sol) Clone() *Sol {
	if s == nil {
		return nil
	}
	c := *s
	c.Members = append([]Member(nil), s.Members...)
	c.Payments = append([]Payment(nil), s.Payments...)
	c.Events = append([]SolEvent(nil), s.Events...)
	if c.Payments == nil {
		c.Payments = []Payment{}
	}
	if c.Events == nil {
		c.Events = []SolEvent{}
	}
	return &c
}
