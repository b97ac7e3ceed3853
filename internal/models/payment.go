package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment is a single contribution by a member towards one round.
type Payment struct {
	// ID is the unique identifier for the payment (UUID format).
	ID string `json:"id"`

	// MemberID references a Member of the same Sol.
	MemberID string `json:"memberId"`

	// Round is the Sol's CurrentRound at the time the payment was recorded.
	Round int `json:"round"`

	// AmountPaid is always positive.
	AmountPaid decimal.Decimal `json:"amountPaid"`

	// AmountDue is what the member still owes for the round after this payment.
	AmountDue decimal.Decimal `json:"amountDue"`

	Date time.Time `json:"date"`
}
