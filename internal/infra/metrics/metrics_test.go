package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_NilReceiverIsNoop(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.SessionOpened()
		m.SessionClosed()
		m.TelemetryMessage("location", ResultProcessed)
		m.StatusTransition("active")
		m.Alert("Geofence Alert", AlertSuppressed)
		m.EventPublished("dangerAlert")
		m.EventDropped("push")
		m.PushClientRegistered()
		m.PushClientUnregistered()
		m.PushFrameDropped()
		m.BrokerReconnect()
		m.NotificationSaved()
	})
}

func TestMetrics_RecordsCounters(t *testing.T) {
	m := New()

	m.SessionOpened()
	m.SessionOpened()
	m.SessionClosed()
	m.Alert("Geofence Alert", AlertSuppressed)
	m.Alert("Geofence Alert", AlertSuppressed)
	m.TelemetryMessage("danger", ResultMalformed)

	assert.InDelta(t, 1.0, testutil.ToFloat64(m.sessionsActive), 1e-9)
	assert.InDelta(t, 2.0, testutil.ToFloat64(m.alerts.WithLabelValues("Geofence Alert", AlertSuppressed)), 1e-9)
	assert.InDelta(t, 1.0, testutil.ToFloat64(m.telemetryMessages.WithLabelValues("danger", ResultMalformed)), 1e-9)
}

func TestMetrics_HandlerServesRegistry(t *testing.T) {
	m := New()
	m.BrokerReconnect()

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "tracker_broker_reconnect_attempts_total 1")
}
