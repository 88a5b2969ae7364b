package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics counts AR encounter activity.
type Metrics struct {
	EncountersGenerated *prometheus.CounterVec
	DetailLookups       prometheus.Counter
}

func New() *Metrics {
	return &Metrics{
		EncountersGenerated: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "trailtail_encounters_generated_total",
			Help: "AR encounters generated, by narrative mode",
		}, []string{"mode"}),
		DetailLookups: promauto.NewCounter(prometheus.CounterOpts{
			Name: "trailtail_encounter_detail_lookups_total",
			Help: "Encounter detail lookups served",
		}),
	}
}

func (m *Metrics) AddGenerated(mode string, count int) {
	m.EncountersGenerated.WithLabelValues(mode).Add(float64(count))
}

func (m *Metrics) IncrementDetailLookups() {
	m.DetailLookups.Inc()
}
