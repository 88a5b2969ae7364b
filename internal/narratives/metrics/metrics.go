package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics counts narrative activity.
type Metrics struct {
	NarrativesGenerated *prometheus.CounterVec
	PreviewsServed      prometheus.Counter
}

func New() *Metrics {
	return &Metrics{
		NarrativesGenerated: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "trailtail_narratives_generated_total",
			Help: "Narrative sets generated, by mode and age band",
		}, []string{"mode", "age_band"}),
		PreviewsServed: promauto.NewCounter(prometheus.CounterOpts{
			Name: "trailtail_narrative_previews_total",
			Help: "Parent previews served",
		}),
	}
}

func (m *Metrics) IncrementGenerated(mode, band string) {
	m.NarrativesGenerated.WithLabelValues(mode, band).Inc()
}

func (m *Metrics) IncrementPreviews() {
	m.PreviewsServed.Inc()
}
