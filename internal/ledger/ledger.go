// Package ledger is the round and payment engine of a Sol.
//
// Every operation takes the current Sol snapshot and returns a new one; the
// input is never modified. A rejected operation returns a typed error and no
// snapshot, so a payment and its audit event are always written together or
// not at all.
package ledger

import (
	"time"

	"github.com/google/uuid"
)

// Policy holds the configurable rules of the engine.
type Policy struct {
	// RequireFullCollectionBeforeAdvance rejects payouts while any payer of the
	// current round still owes part of their contribution. When false, rounds
	// advance on payouts alone.
	RequireFullCollectionBeforeAdvance bool
}

// Ledger applies payments and payouts to Sol snapshots.
type Ledger struct {
	policy Policy
	newID  func() string
	now    func() time.Time
}

// Option configures a Ledger.
type Option func(*Ledger)

// WithPolicy sets the engine policy.
func WithPolicy(p Policy) Option {
	return func(l *Ledger) { l.policy = p }
}

// WithIDGenerator replaces the UUID generator, mostly for tests.
func WithIDGenerator(fn func() string) Option {
	return func(l *Ledger) { l.newID = fn }
}

// WithClock replaces time.Now.
func WithClock(fn func() time.Time) Option {
	return func(l *Ledger) { l.now = fn }
}

// New creates a Ledger.
func New(opts ...Option) *Ledger {
	l := &Ledger{
		newID: func() string { return uuid.New().String() },
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Policy returns the policy the ledger was built with.
func (l *Ledger) Policy() Policy {
	return l.policy
}

func (l *Ledger) dateOr(date time.Time) time.Time {
	if date.IsZero() {
		return l.now().UTC()
	}
	return date
}
