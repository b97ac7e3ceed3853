package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/soltracker/internal/models"
)

func TestNewSol(t *testing.T) {
	l := newTestLedger()
	sol, err := l.NewSol(CreateSolInput{
		Name:            "  Family Sol ",
		Frequency:       models.FrequencyMonthly,
		Amount:          dec("1000"),
		MemberCount:     3,
		WinnersPerRound: 1,
		Members:         []string{"Ana", " Ben ", "Carla"},
		StartDate:       testStart,
	})
	require.NoError(t, err)

	assert.Equal(t, "Family Sol", sol.Name)
	assert.Equal(t, models.StatusActive, sol.Status)
	assert.Equal(t, 1, sol.CurrentRound)
	assert.Equal(t, testStart, sol.StartDate)
	assert.Empty(t, sol.Payments)
	assert.Empty(t, sol.Events)
	require.Len(t, sol.Members, 3)

	ids := make(map[string]bool)
	for i, m := range sol.Members {
		assert.Equal(t, i+1, m.Position)
		assert.NotEmpty(t, m.ID)
		ids[m.ID] = true
	}
	assert.Len(t, ids, 3, "member ids must be unique")
	assert.Equal(t, "Ben", sol.Members[1].Name)
	assert.NotContains(t, ids, sol.ID)
}

func TestNewSolDefaultsStartDate(t *testing.T) {
	l := newTestLedger()
	sol, err := l.NewSol(CreateSolInput{
		Name:            "No date",
		Frequency:       models.FrequencyDaily,
		Amount:          dec("10"),
		MemberCount:     2,
		WinnersPerRound: 1,
		Members:         []string{"A", "B"},
	})
	require.NoError(t, err)
	assert.Equal(t, testNow, sol.StartDate)
}

func TestNewSolValidation(t *testing.T) {
	valid := func() CreateSolInput {
		return CreateSolInput{
			Name:            "Sol",
			Frequency:       models.FrequencyWeekly,
			Amount:          dec("100"),
			MemberCount:     3,
			WinnersPerRound: 1,
			Members:         []string{"A", "B", "C"},
			StartDate:       testStart,
		}
	}

	tests := []struct {
		name  string
		edit  func(*CreateSolInput)
		field string
	}{
		{"empty name", func(in *CreateSolInput) { in.Name = "   " }, "name"},
		{"unknown frequency", func(in *CreateSolInput) { in.Frequency = "yearly" }, "frequency"},
		{"zero amount", func(in *CreateSolInput) { in.Amount = dec("0") }, "amount"},
		{"negative amount", func(in *CreateSolInput) { in.Amount = dec("-5") }, "amount"},
		{"one member", func(in *CreateSolInput) {
			in.MemberCount = 1
			in.Members = []string{"A"}
		}, "memberCount"},
		{"zero winners", func(in *CreateSolInput) { in.WinnersPerRound = 0 }, "winnersPerRound"},
		{"more winners than members", func(in *CreateSolInput) { in.WinnersPerRound = 4 }, "winnersPerRound"},
		{"member count mismatch", func(in *CreateSolInput) { in.Members = []string{"A", "B"} }, "members"},
		{"blank member name", func(in *CreateSolInput) { in.Members = []string{"A", " ", "C"} }, "members[1]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := valid()
			tt.edit(&in)

			sol, err := newTestLedger().NewSol(in)
			assert.Nil(t, sol)

			var vErr *ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tt.field, vErr.Field)
		})
	}
}
