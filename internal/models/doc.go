// Package models defines the core domain models for Soltracker.
//
// # Models
//
//   - Sol: a rotating savings group (sòl / tontine) and its full ledger
//   - Member: a participant with a fixed payout position
//   - Payment: one contribution by a member towards a round
//   - SolEvent: one entry in the append-only audit trail (payments and payouts)
//
// Rounds are not a model: they are derived from a Sol by the calculator package
// every time they are needed.
//
// # Design Principles
//
// 1. **Stored shape is the interchange format**: JSON tags match the records already
// saved by the web client, field for field.
// 2. **Append-only history**: Payments and Events are never edited or removed.
// 3. **Avoid circular references**: relationships use ID strings instead of pointers.
// 4. **Snapshots**: engine operations work on a Clone and return it, they never mutate
// the Sol they were given.
package models
