// Package metrics exposes Prometheus metrics for the chat server.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "jobscout"

// Manager holds all service metrics on its own registry, so tests can
// create managers freely without duplicate-registration panics. All
// record methods are nil-safe; a nil manager records nothing.
type Manager struct {
	registry *prometheus.Registry

	connectionsActive     prometheus.Gauge
	connectionsTotal      *prometheus.CounterVec
	messagesTotal         *prometheus.CounterVec
	protocolErrorsTotal   prometheus.Counter
	skillsExtractedTotal  prometheus.Counter
	recommendationsTotal  prometheus.Counter
	ingestDurationSeconds prometheus.Histogram
}

// New creates a Manager with a fresh registry.
func New() *Manager {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Manager{
		registry: reg,
		connectionsActive: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "connections_active",
			Help:      "Currently open chat connections.",
		}),
		connectionsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "connections_total",
			Help:      "Chat connections accepted, by platform.",
		}, []string{"platform"}),
		messagesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "messages_total",
			Help:      "Inbound chat messages handled, by platform.",
		}, []string{"platform"}),
		protocolErrorsTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "protocol_errors_total",
			Help:      "Inbound frames rejected as malformed or unrecognized.",
		}),
		skillsExtractedTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "skills_extracted_total",
			Help:      "New skills added to sessions by extraction.",
		}),
		recommendationsTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "recommendations_served_total",
			Help:      "Recommendations included in chat replies.",
		}),
		ingestDurationSeconds: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "ingest_duration_seconds",
			Help:      "Time spent handling one conversation turn.",
			Buckets:   prometheus.DefBuckets,
		}),
	}
}

// Handler returns the exposition endpoint for this manager's registry.
func (m *Manager) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Manager) IncConnections(platform string) {
	if m == nil {
		return
	}
	m.connectionsActive.Inc()
	m.connectionsTotal.WithLabelValues(platform).Inc()
}

func (m *Manager) DecConnections() {
	if m == nil {
		return
	}
	m.connectionsActive.Dec()
}

func (m *Manager) IncMessages(platform string) {
	if m == nil {
		return
	}
	m.messagesTotal.WithLabelValues(platform).Inc()
}

func (m *Manager) IncProtocolErrors() {
	if m == nil {
		return
	}
	m.protocolErrorsTotal.Inc()
}

func (m *Manager) AddSkillsExtracted(n int) {
	if m == nil || n <= 0 {
		return
	}
	m.skillsExtractedTotal.Add(float64(n))
}

func (m *Manager) AddRecommendationsServed(n int) {
	if m == nil || n <= 0 {
		return
	}
	m.recommendationsTotal.Add(float64(n))
}

func (m *Manager) ObserveIngest(d time.Duration) {
	if m == nil {
		return
	}
	m.ingestDurationSeconds.Observe(d.Seconds())
}
