package service

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/mmynk/soltracker/internal/calculator"
	"github.com/mmynk/soltracker/internal/models"
)

// SolServiceName is the fully-qualified name of the SolService.
const SolServiceName = "sol.v1.SolService"

// Procedure paths of the SolService.
const (
	CreateSolProcedure       = "/" + SolServiceName + "/CreateSol"
	GetSolProcedure          = "/" + SolServiceName + "/GetSol"
	ListSolsProcedure        = "/" + SolServiceName + "/ListSols"
	DeleteSolProcedure       = "/" + SolServiceName + "/DeleteSol"
	RecordPaymentProcedure   = "/" + SolServiceName + "/RecordPayment"
	RecordPayoutProcedure    = "/" + SolServiceName + "/RecordPayout"
	GetRoundsProcedure       = "/" + SolServiceName + "/GetRounds"
	GetScheduleProcedure     = "/" + SolServiceName + "/GetSchedule"
	GetMemberStatusProcedure = "/" + SolServiceName + "/GetMemberStatus"
	GetSummaryProcedure      = "/" + SolServiceName + "/GetSummary"
	ListEventsProcedure      = "/" + SolServiceName + "/ListEvents"
	PauseSolProcedure        = "/" + SolServiceName + "/PauseSol"
	ResumeSolProcedure       = "/" + SolServiceName + "/ResumeSol"
	GetOverviewProcedure     = "/" + SolServiceName + "/GetOverview"
)

type CreateSolRequest struct {
	Name            string           `json:"name"`
	Frequency       models.Frequency `json:"frequency"`
	Amount          decimal.Decimal  `json:"amount"`
	MemberCount     int              `json:"memberCount"`
	WinnersPerRound int              `json:"winnersPerRound"`
	Members         []string         `json:"members"` // names in payout order
	StartDate       time.Time        `json:"startDate"`
}

// SolRequest addresses a single Sol.
type SolRequest struct {
	SolID string `json:"solId"`
}

// SolResponse carries a Sol with the values the dashboard derives from it.
type SolResponse struct {
	Sol             *models.Sol `json:"sol"`
	TotalRounds     int         `json:"totalRounds"`
	NextPaymentDate time.Time   `json:"nextPaymentDate"`
}

type ListSolsRequest struct{}

type ListSolsResponse struct {
	Sols []SolResponse `json:"sols"`
}

type DeleteSolResponse struct{}

type RecordPaymentRequest struct {
	SolID    string          `json:"solId"`
	MemberID string          `json:"memberId"`
	Amount   decimal.Decimal `json:"amount"`
	Date     time.Time       `json:"date"` // zero means now
}

type RecordPaymentResponse struct {
	Sol            *models.Sol     `json:"sol"`
	Payment        models.Payment  `json:"payment"`
	RemainingAfter decimal.Decimal `json:"remainingAfter"`
	IsPaidInFull   bool            `json:"isPaidInFull"`
}

type RecordPayoutRequest struct {
	SolID    string    `json:"solId"`
	MemberID string    `json:"memberId"`
	Date     time.Time `json:"date"` // zero means now
}

type RecordPayoutResponse struct {
	Sol          *models.Sol     `json:"sol"`
	Event        models.SolEvent `json:"event"`
	Advanced     bool            `json:"advanced"`
	Completed    bool            `json:"completed"`
	CurrentRound int             `json:"currentRound"`
}

// RoundView is a derived round with its payout progress.
type RoundView struct {
	calculator.Round
	PaidOut   []string `json:"paidOut"` // member ids
	IsCurrent bool     `json:"isCurrent"`
}

type GetRoundsResponse struct {
	TotalRounds  int         `json:"totalRounds"`
	CurrentRound int         `json:"currentRound"`
	Rounds       []RoundView `json:"rounds"`
}

// MemberRequest addresses one member of a Sol.
type MemberRequest struct {
	SolID    string `json:"solId"`
	MemberID string `json:"memberId"`
}

type GetScheduleResponse struct {
	Member  models.Member              `json:"member"`
	Entries []calculator.ScheduleEntry `json:"entries"`
}

type GetMemberStatusRequest struct {
	SolID    string `json:"solId"`
	MemberID string `json:"memberId"`
	Round    int    `json:"round"` // zero means the current round
}

type GetSummaryResponse struct {
	calculator.FinancialSummary
	TotalRounds int `json:"totalRounds"`
}

type ListEventsRequest struct {
	SolID    string           `json:"solId"`
	Round    int              `json:"round"`
	MemberID string           `json:"memberId"`
	Type     models.EventType `json:"type"`
}

type ListEventsResponse struct {
	Events []models.SolEvent `json:"events"`
}

type GetOverviewRequest struct{}
