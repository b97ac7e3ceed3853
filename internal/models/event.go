package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// EventType distinguishes entries in the audit trail.
type EventType string

const (
	EventPayment EventType = "payment"
	EventPayout  EventType = "payout"
)

// SolEvent is one entry in a Sol's audit trail. Events are never edited;
// corrections are recorded as new events.
type SolEvent struct {
	ID       string          `json:"id"`
	Type     EventType       `json:"type"`
	MemberID string          `json:"memberId"`
	Amount   decimal.Decimal `json:"amount"`
	Date     time.Time       `json:"date"`
	Round    int             `json:"round"`

	// Description is rendered when the event is written and never re-derived.
	Description string `json:"description"`
}
