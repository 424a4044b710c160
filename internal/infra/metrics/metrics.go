// Package metrics exposes Prometheus instrumentation for the telemetry pipeline.
// All recording methods are safe on a nil *Metrics so components can run uninstrumented in tests.
package metrics

import (
	"database/sql"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "tracker"

// Telemetry message outcomes.
const (
	ResultProcessed = "processed"
	ResultMalformed = "malformed"
	ResultFailed    = "failed"
	ResultIgnored   = "ignored"
)

// Alert outcomes.
const (
	AlertDispatched = "dispatched"
	AlertSuppressed = "suppressed"
	AlertFailed     = "failed"
)

type Metrics struct {
	registry *prometheus.Registry

	sessionsActive     prometheus.Gauge
	telemetryMessages  *prometheus.CounterVec
	statusTransitions  *prometheus.CounterVec
	alerts             *prometheus.CounterVec
	eventsPublished    *prometheus.CounterVec
	eventsDropped      *prometheus.CounterVec
	pushClients        prometheus.Gauge
	pushFramesDropped  prometheus.Counter
	brokerReconnects   prometheus.Counter
	notificationsSaved prometheus.Counter
}

// New registers every collector on a dedicated registry.
func New() *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,
		sessionsActive: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "sessions_active",
			Help:      "Number of devices with an open broker session",
		}),
		telemetryMessages: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "telemetry_messages_total",
			Help:      "Telemetry messages received, by topic kind and outcome",
		}, []string{"kind", "result"}),
		statusTransitions: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "device_status_transitions_total",
			Help:      "Persisted device liveness transitions, by new status",
		}, []string{"status"}),
		alerts: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "alerts_total",
			Help:      "Alerts by notification type and outcome",
		}, []string{"type", "result"}),
		eventsPublished: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "events_published_total",
			Help:      "Events published on the internal bus, by kind",
		}, []string{"kind"}),
		eventsDropped: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "events_dropped_total",
			Help:      "Events not enqueued because a subscriber queue stayed full",
		}, []string{"subscriber"}),
		pushClients: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "push_clients",
			Help:      "Registered websocket clients",
		}),
		pushFramesDropped: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "push_frames_dropped_total",
			Help:      "Push frames dropped because the client send buffer was full",
		}),
		brokerReconnects: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "broker_reconnect_attempts_total",
			Help:      "Broker connection attempts made after a failure or lost link",
		}),
		notificationsSaved: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "notifications_saved_total",
			Help:      "Notifications persisted by the dispatcher",
		}),
	}
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return promhttp.Handler()
	}

	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// RegisterDBStats exports the connection pool statistics of db.
func (m *Metrics) RegisterDBStats(db *sql.DB, name string) error {
	if m == nil || db == nil {
		return nil
	}

	return m.registry.Register(collectors.NewDBStatsCollector(db, name))
}

// Gatherer exposes the registry for tests and custom exporters.
func (m *Metrics) Gatherer() prometheus.Gatherer {
	return m.registry
}

func (m *Metrics) SessionOpened() {
	if m == nil {
		return
	}
	m.sessionsActive.Inc()
}

func (m *Metrics) SessionClosed() {
	if m == nil {
		return
	}
	m.sessionsActive.Dec()
}

func (m *Metrics) TelemetryMessage(kind, result string) {
	if m == nil {
		return
	}
	m.telemetryMessages.WithLabelValues(kind, result).Inc()
}

func (m *Metrics) StatusTransition(status string) {
	if m == nil {
		return
	}
	m.statusTransitions.WithLabelValues(status).Inc()
}

func (m *Metrics) Alert(notificationType, result string) {
	if m == nil {
		return
	}
	m.alerts.WithLabelValues(notificationType, result).Inc()
}

func (m *Metrics) EventPublished(kind string) {
	if m == nil {
		return
	}
	m.eventsPublished.WithLabelValues(kind).Inc()
}

func (m *Metrics) EventDropped(subscriber string) {
	if m == nil {
		return
	}
	m.eventsDropped.WithLabelValues(subscriber).Inc()
}

func (m *Metrics) PushClientRegistered() {
	if m == nil {
		return
	}
	m.pushClients.Inc()
}

func (m *Metrics) PushClientUnregistered() {
	if m == nil {
		return
	}
	m.pushClients.Dec()
}

func (m *Metrics) PushFrameDropped() {
	if m == nil {
		return
	}
	m.pushFramesDropped.Inc()
}

func (m *Metrics) BrokerReconnect() {
	if m == nil {
		return
	}
	m.brokerReconnects.Inc()
}

func (m *Metrics) NotificationSaved() {
	if m == nil {
		return
	}
	m.notificationsSaved.Inc()
}
