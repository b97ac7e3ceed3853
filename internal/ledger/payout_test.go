package ledger

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/soltracker/internal/calculator"
	"github.com/mmynk/soltracker/internal/models"
)

func TestRecordPayoutAdvancesRound(t *testing.T) {
	l := newTestLedger()
	sol := mustCreate(t, l, 4, 1, "100")
	first := memberAt(sol, 1)

	next, out, err := l.RecordPayout(sol, first, time.Time{})
	require.NoError(t, err)
	assert.True(t, out.Advanced)
	assert.False(t, out.Completed)
	assert.Equal(t, 1, out.PreviousRound)
	assert.Equal(t, 2, out.CurrentRound)
	assert.Equal(t, 2, next.CurrentRound)
	assert.Equal(t, models.EventPayout, out.Event.Type)
	assert.Equal(t, 1, out.Event.Round)
	assert.True(t, out.Event.Amount.Equal(dec("300")))
	assert.Equal(t, 1, sol.CurrentRound, "input must not change")

	// The round-1 recipient is no longer a recipient of the current round.
	again, _, err := l.RecordPayout(next, first, time.Time{})
	assert.Nil(t, again)
	var recErr *InvalidRecipientError
	require.ErrorAs(t, err, &recErr)
	assert.Equal(t, 2, recErr.Round)
}

func TestRecordPayoutWaitsForAllRecipients(t *testing.T) {
	l := newTestLedger()
	sol := mustCreate(t, l, 10, 3, "100")
	a, b, c := memberAt(sol, 1), memberAt(sol, 2), memberAt(sol, 3)

	sol, out, err := l.RecordPayout(sol, a, time.Time{})
	require.NoError(t, err)
	assert.False(t, out.Advanced)
	assert.Equal(t, 1, sol.CurrentRound)
	assert.True(t, out.Event.Amount.Equal(dec("233.33")))

	_, _, err = l.RecordPayout(sol, a, time.Time{})
	var recErr *InvalidRecipientError
	require.ErrorAs(t, err, &recErr)
	assert.Equal(t, "already paid out", recErr.Reason)

	sol, _, err = l.RecordPayout(sol, b, time.Time{})
	require.NoError(t, err)
	sol, out, err = l.RecordPayout(sol, c, time.Time{})
	require.NoError(t, err)
	assert.True(t, out.Advanced)
	assert.Equal(t, 2, sol.CurrentRound)
	assert.True(t, out.Event.Amount.Equal(dec("233.34")), "closing payout takes the remainder")

	assert.True(t, calculator.DistributedInRound(sol, 1).Equal(calculator.RoundPool(sol)))
}

func TestRecordPayoutRejectsNonRecipient(t *testing.T) {
	l := newTestLedger()
	sol := mustCreate(t, l, 4, 1, "100")

	next, _, err := l.RecordPayout(sol, memberAt(sol, 3), time.Time{})
	assert.Nil(t, next)
	var recErr *InvalidRecipientError
	require.ErrorAs(t, err, &recErr)
	assert.Equal(t, 1, sol.CurrentRound)
	assert.Empty(t, sol.Events)

	_, _, err = l.RecordPayout(sol, "ghost", time.Time{})
	var nfErr *NotFoundError
	require.ErrorAs(t, err, &nfErr)
}

func TestRecordPayoutCompletesSol(t *testing.T) {
	l := newTestLedger()
	sol := mustCreate(t, l, 5, 2, "100")
	total := calculator.TotalRoundsForSol(sol)
	require.Equal(t, 3, total)

	var out PayoutOutcome
	var err error
	for pos := 1; pos <= 5; pos++ {
		sol, out, err = l.RecordPayout(sol, memberAt(sol, pos), time.Time{})
		require.NoError(t, err, "position %d", pos)
		assert.LessOrEqual(t, sol.CurrentRound, total)
	}
	assert.True(t, out.Completed)
	assert.False(t, out.Advanced)
	assert.Equal(t, models.StatusCompleted, sol.Status)
	assert.Equal(t, total, sol.CurrentRound)

	// Writes are rejected once completed.
	_, _, err = l.RecordPayment(sol, memberAt(sol, 1), dec("1"), time.Time{})
	var inactive *NotActiveError
	require.ErrorAs(t, err, &inactive)
	_, _, err = l.RecordPayout(sol, memberAt(sol, 5), time.Time{})
	require.ErrorAs(t, err, &inactive)
}

func TestRecordPayoutRequireFullCollection(t *testing.T) {
	l := newTestLedger(WithPolicy(Policy{RequireFullCollectionBeforeAdvance: true}))
	sol := mustCreate(t, l, 3, 1, "50")
	recipient := memberAt(sol, 1)

	_, _, err := l.RecordPayout(sol, recipient, time.Time{})
	var incomplete *CollectionIncompleteError
	require.ErrorAs(t, err, &incomplete)
	assert.ElementsMatch(t, []string{memberAt(sol, 2), memberAt(sol, 3)}, incomplete.Outstanding)

	sol, _, err = l.RecordPayment(sol, memberAt(sol, 2), dec("50"), time.Time{})
	require.NoError(t, err)
	sol, _, err = l.RecordPayment(sol, memberAt(sol, 3), dec("20"), time.Time{})
	require.NoError(t, err)

	_, _, err = l.RecordPayout(sol, recipient, time.Time{})
	require.ErrorAs(t, err, &incomplete)
	assert.Equal(t, []string{memberAt(sol, 3)}, incomplete.Outstanding)

	sol, _, err = l.RecordPayment(sol, memberAt(sol, 3), dec("30"), time.Time{})
	require.NoError(t, err)

	sol, out, err := l.RecordPayout(sol, recipient, time.Time{})
	require.NoError(t, err)
	assert.True(t, out.Advanced)
	assert.Equal(t, 2, sol.CurrentRound)
}

func TestFullCycleBalances(t *testing.T) {
	l := newTestLedger(WithPolicy(Policy{RequireFullCollectionBeforeAdvance: true}))
	sol := mustCreate(t, l, 4, 2, "250")

	for round := 1; round <= 2; round++ {
		for _, m := range calculator.Payers(sol, round) {
			var err error
			sol, _, err = l.RecordPayment(sol, m.ID, dec("250"), time.Time{})
			require.NoError(t, err)
		}
		for _, m := range calculator.CurrentRecipients(sol) {
			var err error
			sol, _, err = l.RecordPayout(sol, m.ID, time.Time{})
			require.NoError(t, err)
		}
		assert.True(t, calculator.CollectedInRound(sol, round).Equal(calculator.DistributedInRound(sol, round)),
			"round %d", round)
	}
	assert.Equal(t, models.StatusCompleted, sol.Status)
	assert.NoError(t, CheckConsistency(sol))
}
