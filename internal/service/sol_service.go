package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"connectrpc.com/connect"

	"github.com/mmynk/soltracker/internal/calculator"
	"github.com/mmynk/soltracker/internal/ledger"
	"github.com/mmynk/soltracker/internal/metrics"
	"github.com/mmynk/soltracker/internal/models"
	"github.com/mmynk/soltracker/internal/storage"
)

// SolService exposes the ledger engine over Connect. Every write loads the Sol,
// applies one engine operation and saves the new snapshot while holding the
// Sol's lock.
type SolService struct {
	store        storage.Store
	ledger       *ledger.Ledger
	metrics      *metrics.Metrics
	storeTimeout time.Duration
	locks        *solLocks
}

// Option configures a SolService.
type Option func(*SolService)

// WithLedger replaces the default engine.
func WithLedger(l *ledger.Ledger) Option {
	return func(s *SolService) { s.ledger = l }
}

// WithMetrics records service metrics into m.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *SolService) { s.metrics = m }
}

// WithStoreTimeout bounds every storage call. Zero disables the bound.
func WithStoreTimeout(d time.Duration) Option {
	return func(s *SolService) { s.storeTimeout = d }
}

// NewSolService creates a new SolService with the given storage backend.
func NewSolService(store storage.Store, opts ...Option) *SolService {
	s := &SolService{
		store:  store,
		ledger: ledger.New(),
		locks:  newSolLocks(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.metrics == nil {
		s.metrics = metrics.New(nil)
	}
	return s
}

// CreateSol validates the configuration and stores a new group.
func (s *SolService) CreateSol(ctx context.Context, req *connect.Request[CreateSolRequest]) (*connect.Response[SolResponse], error) {
	msg := req.Msg
	slog.Info("CreateSol request received",
		"name", msg.Name,
		"frequency", msg.Frequency,
		"members_count", len(msg.Members),
		"winners_per_round", msg.WinnersPerRound,
	)

	sol, err := s.ledger.NewSol(ledger.CreateSolInput{
		Name:            msg.Name,
		Frequency:       msg.Frequency,
		Amount:          msg.Amount,
		MemberCount:     msg.MemberCount,
		WinnersPerRound: msg.WinnersPerRound,
		Members:         msg.Members,
		StartDate:       msg.StartDate,
	})
	if err != nil {
		return nil, s.reject("CreateSol", "", err)
	}

	if err := s.save(ctx, sol); err != nil {
		return nil, s.reject("CreateSol", sol.ID, err)
	}
	s.metrics.SolsCreated.Inc()

	slog.Info("Sol created", "sol_id", sol.ID, "total_rounds", calculator.TotalRoundsForSol(sol))
	return connect.NewResponse(solResponse(sol)), nil
}

// GetSol retrieves a Sol by ID.
func (s *SolService) GetSol(ctx context.Context, req *connect.Request[SolRequest]) (*connect.Response[SolResponse], error) {
	slog.Info("GetSol request received", "sol_id", req.Msg.SolID)

	sol, err := s.load(ctx, req.Msg.SolID)
	if err != nil {
		return nil, s.reject("GetSol", req.Msg.SolID, err)
	}
	return connect.NewResponse(solResponse(sol)), nil
}

// ListSols retrieves all Sols.
func (s *SolService) ListSols(ctx context.Context, req *connect.Request[ListSolsRequest]) (*connect.Response[ListSolsResponse], error) {
	slog.Info("ListSols request received")

	sols, err := s.listAll(ctx)
	if err != nil {
		return nil, s.reject("ListSols", "", err)
	}

	resp := &ListSolsResponse{Sols: make([]SolResponse, len(sols))}
	for i, sol := range sols {
		resp.Sols[i] = *solResponse(sol)
	}

	slog.Info("ListSols successful", "count", len(sols))
	return connect.NewResponse(resp), nil
}

// DeleteSol removes a Sol and its history.
func (s *SolService) DeleteSol(ctx context.Context, req *connect.Request[SolRequest]) (*connect.Response[DeleteSolResponse], error) {
	id := req.Msg.SolID
	slog.Info("DeleteSol request received", "sol_id", id)

	unlock := s.locks.lock(id)
	defer unlock()

	ctx, cancel := s.storeContext(ctx)
	defer cancel()
	if err := s.store.DeleteSol(ctx, id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			err = &ledger.NotFoundError{Kind: "sol", ID: id}
		}
		return nil, s.reject("DeleteSol", id, err)
	}

	slog.Info("Sol deleted", "sol_id", id)
	return connect.NewResponse(&DeleteSolResponse{}), nil
}

// RecordPayment applies a member's contribution to the current round.
func (s *SolService) RecordPayment(ctx context.Context, req *connect.Request[RecordPaymentRequest]) (*connect.Response[RecordPaymentResponse], error) {
	msg := req.Msg
	slog.Info("RecordPayment request received",
		"sol_id", msg.SolID,
		"member_id", msg.MemberID,
		"amount", msg.Amount.String(),
	)

	var outcome ledger.PaymentOutcome
	sol, err := s.update(ctx, msg.SolID, func(sol *models.Sol) (*models.Sol, error) {
		next, out, err := s.ledger.RecordPayment(sol, msg.MemberID, msg.Amount, msg.Date)
		outcome = out
		return next, err
	})
	if err != nil {
		return nil, s.reject("RecordPayment", msg.SolID, err)
	}
	s.metrics.PaymentsRecorded.WithLabelValues(strconv.FormatBool(outcome.IsPaidInFull)).Inc()

	slog.Info("Payment recorded",
		"sol_id", sol.ID,
		"member_id", msg.MemberID,
		"round", outcome.Payment.Round,
		"remaining", outcome.RemainingAfter.String(),
	)
	return connect.NewResponse(&RecordPaymentResponse{
		Sol:            sol,
		Payment:        outcome.Payment,
		RemainingAfter: outcome.RemainingAfter,
		IsPaidInFull:   outcome.IsPaidInFull,
	}), nil
}

// RecordPayout pays a recipient of the current round and advances the round
// once all of its recipients are paid.
func (s *SolService) RecordPayout(ctx context.Context, req *connect.Request[RecordPayoutRequest]) (*connect.Response[RecordPayoutResponse], error) {
	msg := req.Msg
	slog.Info("RecordPayout request received", "sol_id", msg.SolID, "member_id", msg.MemberID)

	var outcome ledger.PayoutOutcome
	sol, err := s.update(ctx, msg.SolID, func(sol *models.Sol) (*models.Sol, error) {
		next, out, err := s.ledger.RecordPayout(sol, msg.MemberID, msg.Date)
		outcome = out
		return next, err
	})
	if err != nil {
		return nil, s.reject("RecordPayout", msg.SolID, err)
	}

	s.metrics.PayoutsRecorded.Inc()
	if outcome.Advanced {
		s.metrics.RoundsAdvanced.Inc()
		slog.Info("Round advanced", "sol_id", sol.ID, "from", outcome.PreviousRound, "to", outcome.CurrentRound)
	}
	if outcome.Completed {
		s.metrics.SolsCompleted.Inc()
		slog.Info("Sol completed", "sol_id", sol.ID)
	}

	return connect.NewResponse(&RecordPayoutResponse{
		Sol:          sol,
		Event:        outcome.Event,
		Advanced:     outcome.Advanced,
		Completed:    outcome.Completed,
		CurrentRound: outcome.CurrentRound,
	}), nil
}

// GetRounds derives the round structure of a Sol.
func (s *SolService) GetRounds(ctx context.Context, req *connect.Request[SolRequest]) (*connect.Response[GetRoundsResponse], error) {
	slog.Info("GetRounds request received", "sol_id", req.Msg.SolID)

	sol, err := s.load(ctx, req.Msg.SolID)
	if err != nil {
		return nil, s.reject("GetRounds", req.Msg.SolID, err)
	}

	rounds := calculator.RoundsForSol(sol)
	views := make([]RoundView, len(rounds))
	for i, r := range rounds {
		paidOut := calculator.PaidOut(sol, r.Number)
		ids := []string{}
		for _, m := range r.Members {
			if paidOut[m.ID] {
				ids = append(ids, m.ID)
			}
		}
		views[i] = RoundView{Round: r, PaidOut: ids, IsCurrent: r.Number == sol.CurrentRound}
	}

	return connect.NewResponse(&GetRoundsResponse{
		TotalRounds:  len(rounds),
		CurrentRound: sol.CurrentRound,
		Rounds:       views,
	}), nil
}

// GetSchedule returns a member's payment schedule across all rounds.
func (s *SolService) GetSchedule(ctx context.Context, req *connect.Request[MemberRequest]) (*connect.Response[GetScheduleResponse], error) {
	msg := req.Msg
	slog.Info("GetSchedule request received", "sol_id", msg.SolID, "member_id", msg.MemberID)

	sol, err := s.load(ctx, msg.SolID)
	if err != nil {
		return nil, s.reject("GetSchedule", msg.SolID, err)
	}
	member, ok := sol.Member(msg.MemberID)
	if !ok {
		return nil, s.reject("GetSchedule", msg.SolID, &ledger.NotFoundError{Kind: "member", ID: msg.MemberID})
	}
	entries, _ := calculator.Schedule(sol, msg.MemberID)

	return connect.NewResponse(&GetScheduleResponse{Member: member, Entries: entries}), nil
}

// GetMemberStatus reports a member's contribution state for a round.
func (s *SolService) GetMemberStatus(ctx context.Context, req *connect.Request[GetMemberStatusRequest]) (*connect.Response[calculator.MemberStatus], error) {
	msg := req.Msg
	slog.Info("GetMemberStatus request received", "sol_id", msg.SolID, "member_id", msg.MemberID, "round", msg.Round)

	sol, err := s.load(ctx, msg.SolID)
	if err != nil {
		return nil, s.reject("GetMemberStatus", msg.SolID, err)
	}
	if _, ok := sol.Member(msg.MemberID); !ok {
		return nil, s.reject("GetMemberStatus", msg.SolID, &ledger.NotFoundError{Kind: "member", ID: msg.MemberID})
	}
	round := msg.Round
	if round == 0 {
		round = sol.CurrentRound
	}
	if total := calculator.TotalRoundsForSol(sol); round < 1 || round > total {
		return nil, s.reject("GetMemberStatus", msg.SolID,
			&ledger.ValidationError{Field: "round", Reason: fmt.Sprintf("must be between 1 and %d", total)})
	}

	status := calculator.MemberPaymentStatus(sol, msg.MemberID, round)
	return connect.NewResponse(&status), nil
}

// GetSummary returns the financial summary of the current round.
func (s *SolService) GetSummary(ctx context.Context, req *connect.Request[SolRequest]) (*connect.Response[GetSummaryResponse], error) {
	slog.Info("GetSummary request received", "sol_id", req.Msg.SolID)

	sol, err := s.load(ctx, req.Msg.SolID)
	if err != nil {
		return nil, s.reject("GetSummary", req.Msg.SolID, err)
	}

	return connect.NewResponse(&GetSummaryResponse{
		FinancialSummary: calculator.Summarize(sol),
		TotalRounds:      calculator.TotalRoundsForSol(sol),
	}), nil
}

// ListEvents returns the audit trail newest first.
func (s *SolService) ListEvents(ctx context.Context, req *connect.Request[ListEventsRequest]) (*connect.Response[ListEventsResponse], error) {
	msg := req.Msg
	slog.Info("ListEvents request received",
		"sol_id", msg.SolID,
		"round", msg.Round,
		"member_id", msg.MemberID,
		"type", msg.Type,
	)

	sol, err := s.load(ctx, msg.SolID)
	if err != nil {
		return nil, s.reject("ListEvents", msg.SolID, err)
	}
	events := ledger.Events(sol, ledger.EventFilter{
		Round:    msg.Round,
		MemberID: msg.MemberID,
		Type:     msg.Type,
	})

	return connect.NewResponse(&ListEventsResponse{Events: events}), nil
}

// PauseSol stops a Sol from accepting payments and payouts.
func (s *SolService) PauseSol(ctx context.Context, req *connect.Request[SolRequest]) (*connect.Response[SolResponse], error) {
	slog.Info("PauseSol request received", "sol_id", req.Msg.SolID)

	sol, err := s.update(ctx, req.Msg.SolID, s.ledger.Pause)
	if err != nil {
		return nil, s.reject("PauseSol", req.Msg.SolID, err)
	}
	slog.Info("Sol paused", "sol_id", sol.ID)
	return connect.NewResponse(solResponse(sol)), nil
}

// ResumeSol reactivates a paused Sol.
func (s *SolService) ResumeSol(ctx context.Context, req *connect.Request[SolRequest]) (*connect.Response[SolResponse], error) {
	slog.Info("ResumeSol request received", "sol_id", req.Msg.SolID)

	sol, err := s.update(ctx, req.Msg.SolID, s.ledger.Resume)
	if err != nil {
		return nil, s.reject("ResumeSol", req.Msg.SolID, err)
	}
	slog.Info("Sol resumed", "sol_id", sol.ID)
	return connect.NewResponse(solResponse(sol)), nil
}

// GetOverview aggregates every Sol for the dashboard.
func (s *SolService) GetOverview(ctx context.Context, req *connect.Request[GetOverviewRequest]) (*connect.Response[calculator.Overview], error) {
	slog.Info("GetOverview request received")

	sols, err := s.listAll(ctx)
	if err != nil {
		return nil, s.reject("GetOverview", "", err)
	}
	overview := calculator.OverviewOf(sols)
	return connect.NewResponse(&overview), nil
}

// update runs one engine operation against the stored Sol under its lock and
// persists the result. Nothing is written when fn fails.
func (s *SolService) update(ctx context.Context, id string, fn func(*models.Sol) (*models.Sol, error)) (*models.Sol, error) {
	unlock := s.locks.lock(id)
	defer unlock()

	sol, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	next, err := fn(sol)
	if err != nil {
		return nil, err
	}
	if err := s.save(ctx, next); err != nil {
		return nil, err
	}
	return next, nil
}

func (s *SolService) load(ctx context.Context, id string) (*models.Sol, error) {
	if id == "" {
		return nil, &ledger.ValidationError{Field: "solId", Reason: "is required"}
	}
	ctx, cancel := s.storeContext(ctx)
	defer cancel()

	sol, err := s.store.GetSol(ctx, id)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, &ledger.NotFoundError{Kind: "sol", ID: id}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load sol: %w", err)
	}
	if err := ledger.CheckConsistency(sol); err != nil {
		slog.Warn("Stored sol is inconsistent", "sol_id", id, "error", err)
	}
	return sol, nil
}

func (s *SolService) listAll(ctx context.Context) ([]*models.Sol, error) {
	ctx, cancel := s.storeContext(ctx)
	defer cancel()

	sols, err := s.store.ListSols(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list sols: %w", err)
	}
	return sols, nil
}

func (s *SolService) save(ctx context.Context, sol *models.Sol) error {
	ctx, cancel := s.storeContext(ctx)
	defer cancel()

	if err := s.store.SaveSol(ctx, sol); err != nil {
		return fmt.Errorf("failed to save sol: %w", err)
	}
	return nil
}

func (s *SolService) storeContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.storeTimeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, s.storeTimeout)
}

// reject logs a failed operation, counts it and converts it for the client.
func (s *SolService) reject(op, solID string, err error) *connect.Error {
	if reason := rejectionReason(err); reason != "" {
		s.metrics.Rejections.WithLabelValues(reason).Inc()
		slog.Warn(op+" rejected", "sol_id", solID, "reason", reason, "error", err)
	} else {
		slog.Error(op+" failed", "sol_id", solID, "error", err)
	}
	return toConnectError(err)
}

func solResponse(sol *models.Sol) *SolResponse {
	return &SolResponse{
		Sol:             sol,
		TotalRounds:     calculator.TotalRoundsForSol(sol),
		NextPaymentDate: calculator.NextPaymentDate(sol),
	}
}
