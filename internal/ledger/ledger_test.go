package ledger

import (
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/soltracker/internal/models"
)

var (
	testStart = time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	testNow   = time.Date(2024, 3, 5, 12, 0, 0, 0, time.UTC)
)

func newTestLedger(opts ...Option) *Ledger {
	n := 0
	base := []Option{
		WithIDGenerator(func() string {
			n++
			return fmt.Sprintf("id-%d", n)
		}),
		WithClock(func() time.Time { return testNow }),
	}
	return New(append(base, opts...)...)
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func names(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("Member %d", i+1)
	}
	return out
}

func mustCreate(t *testing.T, l *Ledger, memberCount, winners int, amount string) *models.Sol {
	t.Helper()
	sol, err := l.NewSol(CreateSolInput{
		Name:            "Tontine",
		Frequency:       models.FrequencyWeekly,
		Amount:          dec(amount),
		MemberCount:     memberCount,
		WinnersPerRound: winners,
		Members:         names(memberCount),
		StartDate:       testStart,
	})
	require.NoError(t, err)
	return sol
}

// memberAt returns the id of the member at a 1-based position.
func memberAt(sol *models.Sol, position int) string {
	for _, m := range sol.Members {
		if m.Position == position {
			return m.ID
		}
	}
	return ""
}
