// Package metrics exposes Prometheus instruments for the ledger service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "soltracker"

// Metrics groups the counters and histograms recorded by the service.
type Metrics struct {
	PaymentsRecorded *prometheus.CounterVec
	PayoutsRecorded  prometheus.Counter
	RoundsAdvanced   prometheus.Counter
	SolsCompleted    prometheus.Counter
	SolsCreated      prometheus.Counter
	Rejections       *prometheus.CounterVec
	RPCDuration      *prometheus.HistogramVec
}

// New creates the instruments and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		PaymentsRecorded: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "payments_recorded_total",
			Help:      "Contributions accepted, by whether they settled the member's round.",
		}, []string{"settled"}),
		PayoutsRecorded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "payouts_recorded_total",
			Help:      "Payouts recorded to round recipients.",
		}),
		RoundsAdvanced: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rounds_advanced_total",
			Help:      "Rounds closed after every recipient was paid out.",
		}),
		SolsCompleted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sols_completed_total",
			Help:      "Groups whose final round was paid out.",
		}),
		SolsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sols_created_total",
			Help:      "Groups created.",
		}),
		Rejections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rejections_total",
			Help:      "Ledger operations rejected, by reason.",
		}, []string{"reason"}),
		RPCDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "rpc_duration_seconds",
			Help:      "RPC latency by procedure and result code.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"procedure", "code"}),
	}

	if reg != nil {
		reg.MustRegister(
			m.PaymentsRecorded,
			m.PayoutsRecorded,
			m.RoundsAdvanced,
			m.SolsCompleted,
			m.SolsCreated,
			m.Rejections,
			m.RPCDuration,
		)
	}
	return m
}
