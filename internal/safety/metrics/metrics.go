package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics counts safety-domain activity.
type Metrics struct {
	ContentChecks  *prometheus.CounterVec
	IssuesReported prometheus.Counter
	ControlsSaved  prometheus.Counter
}

func New() *Metrics {
	return &Metrics{
		ContentChecks: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "trailtail_safety_content_checks_total",
			Help: "Content checks performed, by verdict",
		}, []string{"verdict"}),
		IssuesReported: promauto.NewCounter(prometheus.CounterOpts{
			Name: "trailtail_safety_issues_reported_total",
			Help: "Safety issues reported on routes",
		}),
		ControlsSaved: promauto.NewCounter(prometheus.CounterOpts{
			Name: "trailtail_safety_parental_controls_updates_total",
			Help: "Parental control updates persisted",
		}),
	}
}

func (m *Metrics) ObserveContentCheck(verdict string) {
	m.ContentChecks.WithLabelValues(verdict).Inc()
}

func (m *Metrics) IncrementIssuesReported() {
	m.IssuesReported.Inc()
}

func (m *Metrics) IncrementControlsSaved() {
	m.ControlsSaved.Inc()
}
