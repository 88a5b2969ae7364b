package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics counts family account activity.
type Metrics struct {
	FamiliesRegistered prometheus.Counter
	RoutesCompleted    prometheus.Counter
}

func New() *Metrics {
	return &Metrics{
		FamiliesRegistered: promauto.NewCounter(prometheus.CounterOpts{
			Name: "trailtail_families_registered_total",
			Help: "Family registrations accepted",
		}),
		RoutesCompleted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "trailtail_routes_completed_total",
			Help: "Route completions recorded",
		}),
	}
}

func (m *Metrics) IncrementRegistered() {
	m.FamiliesRegistered.Inc()
}

func (m *Metrics) IncrementCompleted() {
	m.RoutesCompleted.Inc()
}
