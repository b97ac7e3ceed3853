package ledger

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/mmynk/soltracker/internal/models"
)

// ValidationError reports malformed input. Nothing is changed.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return "validation failed: " + e.Reason
	}
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// NotFoundError reports a Sol or member id that does not exist.
type NotFoundError struct {
	Kind string // "sol" or "member"
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Kind, e.ID)
}

// OverpaymentError is returned when a payment would take a member's total for
// the round above the contribution amount.
type OverpaymentError struct {
	MemberID  string
	Round     int
	Attempted decimal.Decimal
	Remaining decimal.Decimal
}

func (e *OverpaymentError) Error() string {
	return fmt.Sprintf("payment of %s by member %s exceeds the %s still due for round %d",
		e.Attempted, e.MemberID, e.Remaining, e.Round)
}

// InvalidRecipientError is returned when a payout targets a member who is not
// owed one in the current round.
type InvalidRecipientError struct {
	MemberID string
	Round    int
	Reason   string
}

func (e *InvalidRecipientError) Error() string {
	return fmt.Sprintf("member %s cannot receive a payout in round %d: %s", e.MemberID, e.Round, e.Reason)
}

// CollectionIncompleteError is returned by payouts when the ledger requires full
// collection before a round can close and some payers still owe money.
type CollectionIncompleteError struct {
	Round       int
	Outstanding []string // member ids
}

func (e *CollectionIncompleteError) Error() string {
	return fmt.Sprintf("round %d still has outstanding contributions from %s",
		e.Round, strings.Join(e.Outstanding, ", "))
}

// NotActiveError is returned when writing to a paused or completed Sol.
type NotActiveError struct {
	SolID  string
	Status models.Status
}

func (e *NotActiveError) Error() string {
	return fmt.Sprintf("sol %s is %s", e.SolID, e.Status)
}
