package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus collectors for the charging service.
type Metrics struct {
	ChargeVersionsCreated    *prometheus.CounterVec
	ChargeVersionsSuperseded prometheus.Counter
	WorkflowDecisions        *prometheus.CounterVec
	AgreementHistoryQueries  prometheus.Counter
	AgreementHistorySegments prometheus.Histogram
}

// New registers the collectors with reg. Pass prometheus.DefaultRegisterer in
// production and a fresh registry in tests.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		ChargeVersionsCreated: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "wrls_charge_versions_created_total",
			Help: "Charge versions promoted to current, by origin",
		}, []string{"origin"}),
		ChargeVersionsSuperseded: factory.NewCounter(prometheus.CounterOpts{
			Name: "wrls_charge_versions_superseded_total",
			Help: "Existing charge versions superseded by a new version with the same start date",
		}),
		WorkflowDecisions: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "wrls_charge_version_workflow_decisions_total",
			Help: "Review decisions on charge version workflows",
		}, []string{"decision"}),
		AgreementHistoryQueries: factory.NewCounter(prometheus.CounterOpts{
			Name: "wrls_agreement_history_queries_total",
			Help: "Agreement history segmentations computed",
		}),
		AgreementHistorySegments: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "wrls_agreement_history_segments",
			Help:    "Number of segments returned per agreement history query",
			Buckets: []float64{1, 2, 3, 5, 8, 13},
		}),
	}
}

func (m *Metrics) ObserveChargeVersionCreated(origin string, superseded int) {
	if m == nil {
		return
	}
	m.ChargeVersionsCreated.WithLabelValues(origin).Inc()
	m.ChargeVersionsSuperseded.Add(float64(superseded))
}

func (m *Metrics) ObserveWorkflowDecision(decision string) {
	if m == nil {
		return
	}
	m.WorkflowDecisions.WithLabelValues(decision).Inc()
}

func (m *Metrics) ObserveAgreementHistory(segments int) {
	if m == nil {
		return
	}
	m.AgreementHistoryQueries.Inc()
	m.AgreementHistorySegments.Observe(float64(segments))
}
