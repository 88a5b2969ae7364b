package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics counts route generation activity.
type Metrics struct {
	RoutesGenerated *prometheus.CounterVec
}

func New() *Metrics {
	return &Metrics{
		RoutesGenerated: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "trailtail_routes_generated_total",
			Help: "Routes generated, by difficulty",
		}, []string{"difficulty"}),
	}
}

func (m *Metrics) IncrementGenerated(difficulty string) {
	m.RoutesGenerated.WithLabelValues(difficulty).Inc()
}
