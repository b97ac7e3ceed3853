package service

import (
	"context"
	"net/http"

	"connectrpc.com/connect"

	"github.com/mmynk/soltracker/internal/calculator"
)

// NewSolServiceHandler builds an HTTP handler serving every SolService
// procedure. It returns the path prefix to mount the handler on.
func NewSolServiceHandler(svc *SolService, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{connect.WithCodec(JSONCodec{})}, opts...)

	mux := http.NewServeMux()
	mux.Handle(CreateSolProcedure, connect.NewUnaryHandler(CreateSolProcedure, svc.CreateSol, opts...))
	mux.Handle(GetSolProcedure, connect.NewUnaryHandler(GetSolProcedure, svc.GetSol, opts...))
	mux.Handle(ListSolsProcedure, connect.NewUnaryHandler(ListSolsProcedure, svc.ListSols, opts...))
	mux.Handle(DeleteSolProcedure, connect.NewUnaryHandler(DeleteSolProcedure, svc.DeleteSol, opts...))
	mux.Handle(RecordPaymentProcedure, connect.NewUnaryHandler(RecordPaymentProcedure, svc.RecordPayment, opts...))
	mux.Handle(RecordPayoutProcedure, connect.NewUnaryHandler(RecordPayoutProcedure, svc.RecordPayout, opts...))
	mux.Handle(GetRoundsProcedure, connect.NewUnaryHandler(GetRoundsProcedure, svc.GetRounds, opts...))
	mux.Handle(GetScheduleProcedure, connect.NewUnaryHandler(GetScheduleProcedure, svc.GetSchedule, opts...))
	mux.Handle(GetMemberStatusProcedure, connect.NewUnaryHandler(GetMemberStatusProcedure, svc.GetMemberStatus, opts...))
	mux.Handle(GetSummaryProcedure, connect.NewUnaryHandler(GetSummaryProcedure, svc.GetSummary, opts...))
	mux.Handle(ListEventsProcedure, connect.NewUnaryHandler(ListEventsProcedure, svc.ListEvents, opts...))
	mux.Handle(PauseSolProcedure, connect.NewUnaryHandler(PauseSolProcedure, svc.PauseSol, opts...))
	mux.Handle(ResumeSolProcedure, connect.NewUnaryHandler(ResumeSolProcedure, svc.ResumeSol, opts...))
	mux.Handle(GetOverviewProcedure, connect.NewUnaryHandler(GetOverviewProcedure, svc.GetOverview, opts...))

	return "/" + SolServiceName + "/", mux
}

// SolServiceClient calls a SolService over HTTP.
type SolServiceClient struct {
	createSol       *connect.Client[CreateSolRequest, SolResponse]
	getSol          *connect.Client[SolRequest, SolResponse]
	listSols        *connect.Client[ListSolsRequest, ListSolsResponse]
	deleteSol       *connect.Client[SolRequest, DeleteSolResponse]
	recordPayment   *connect.Client[RecordPaymentRequest, RecordPaymentResponse]
	recordPayout    *connect.Client[RecordPayoutRequest, RecordPayoutResponse]
	getRounds       *connect.Client[SolRequest, GetRoundsResponse]
	getSchedule     *connect.Client[MemberRequest, GetScheduleResponse]
	getMemberStatus *connect.Client[GetMemberStatusRequest, calculator.MemberStatus]
	getSummary      *connect.Client[SolRequest, GetSummaryResponse]
	listEvents      *connect.Client[ListEventsRequest, ListEventsResponse]
	pauseSol        *connect.Client[SolRequest, SolResponse]
	resumeSol       *connect.Client[SolRequest, SolResponse]
	getOverview     *connect.Client[GetOverviewRequest, calculator.Overview]
}

// NewSolServiceClient creates a client for the SolService at baseURL.
func NewSolServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) *SolServiceClient {
	opts = append([]connect.ClientOption{connect.WithCodec(JSONCodec{})}, opts...)
	return &SolServiceClient{
		createSol:       connect.NewClient[CreateSolRequest, SolResponse](httpClient, baseURL+CreateSolProcedure, opts...),
		getSol:          connect.NewClient[SolRequest, SolResponse](httpClient, baseURL+GetSolProcedure, opts...),
		listSols:        connect.NewClient[ListSolsRequest, ListSolsResponse](httpClient, baseURL+ListSolsProcedure, opts...),
		deleteSol:       connect.NewClient[SolRequest, DeleteSolResponse](httpClient, baseURL+DeleteSolProcedure, opts...),
		recordPayment:   connect.NewClient[RecordPaymentRequest, RecordPaymentResponse](httpClient, baseURL+RecordPaymentProcedure, opts...),
		recordPayout:    connect.NewClient[RecordPayoutRequest, RecordPayoutResponse](httpClient, baseURL+RecordPayoutProcedure, opts...),
		getRounds:       connect.NewClient[SolRequest, GetRoundsResponse](httpClient, baseURL+GetRoundsProcedure, opts...),
		getSchedule:     connect.NewClient[MemberRequest, GetScheduleResponse](httpClient, baseURL+GetScheduleProcedure, opts...),
		getMemberStatus: connect.NewClient[GetMemberStatusRequest, calculator.MemberStatus](httpClient, baseURL+GetMemberStatusProcedure, opts...),
		getSummary:      connect.NewClient[SolRequest, GetSummaryResponse](httpClient, baseURL+GetSummaryProcedure, opts...),
		listEvents:      connect.NewClient[ListEventsRequest, ListEventsResponse](httpClient, baseURL+ListEventsProcedure, opts...),
		pauseSol:        connect.NewClient[SolRequest, SolResponse](httpClient, baseURL+PauseSolProcedure, opts...),
		resumeSol:       connect.NewClient[SolRequest, SolResponse](httpClient, baseURL+ResumeSolProcedure, opts...),
		getOverview:     connect.NewClient[GetOverviewRequest, calculator.Overview](httpClient, baseURL+GetOverviewProcedure, opts...),
	}
}

func (c *SolServiceClient) CreateSol(ctx context.Context, req *connect.Request[CreateSolRequest]) (*connect.Response[SolResponse], error) {
	return c.createSol.CallUnary(ctx, req)
}

func (c *SolServiceClient) GetSol(ctx context.Context, req *connect.Request[SolRequest]) (*connect.Response[SolResponse], error) {
	return c.getSol.CallUnary(ctx, req)
}

func (c *SolServiceClient) ListSols(ctx context.Context, req *connect.Request[ListSolsRequest]) (*connect.Response[ListSolsResponse], error) {
	return c.listSols.CallUnary(ctx, req)
}

func (c *SolServiceClient) DeleteSol(ctx context.Context, req *connect.Request[SolRequest]) (*connect.Response[DeleteSolResponse], error) {
	return c.deleteSol.CallUnary(ctx, req)
}

func (c *SolServiceClient) RecordPayment(ctx context.Context, req *connect.Request[RecordPaymentRequest]) (*connect.Response[RecordPaymentResponse], error) {
	return c.recordPayment.CallUnary(ctx, req)
}

func (c *SolServiceClient) RecordPayout(ctx context.Context, req *connect.Request[RecordPayoutRequest]) (*connect.Response[RecordPayoutResponse], error) {
	return c.recordPayout.CallUnary(ctx, req)
}

func (c *SolServiceClient) GetRounds(ctx context.Context, req *connect.Request[SolRequest]) (*connect.Response[GetRoundsResponse], error) {
	return c.getRounds.CallUnary(ctx, req)
}

func (c *SolServiceClient) GetSchedule(ctx context.Context, req *connect.Request[MemberRequest]) (*connect.Response[GetScheduleResponse], error) {
	return c.getSchedule.CallUnary(ctx, req)
}

func (c *SolServiceClient) GetMemberStatus(ctx context.Context, req *connect.Request[GetMemberStatusRequest]) (*connect.Response[calculator.MemberStatus], error) {
	return c.getMemberStatus.CallUnary(ctx, req)
}

func (c *SolServiceClient) GetSummary(ctx context.Context, req *connect.Request[SolRequest]) (*connect.Response[GetSummaryResponse], error) {
	return c.getSummary.CallUnary(ctx, req)
}

func (c *SolServiceClient) ListEvents(ctx context.Context, req *connect.Request[ListEventsRequest]) (*connect.Response[ListEventsResponse], error) {
	return c.listEvents.CallUnary(ctx, req)
}

func (c *SolServiceClient) PauseSol(ctx context.Context, req *connect.Request[SolRequest]) (*connect.Response[SolResponse], error) {
	return c.pauseSol.CallUnary(ctx, req)
}

func (c *SolServiceClient) ResumeSol(ctx context.Context, req *connect.Request[SolRequest]) (*connect.Response[SolResponse], error) {
	return c.resumeSol.CallUnary(ctx, req)
}

func (c *SolServiceClient) GetOverview(ctx context.Context, req *connect.Request[GetOverviewRequest]) (*connect.Response[calculator.Overview], error) {
	return c.getOverview.CallUnary(ctx, req)
}
