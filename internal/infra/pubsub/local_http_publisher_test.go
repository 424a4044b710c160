package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"tracker/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEvent() *service.NotificationEvent {
	return &service.NotificationEvent{
		RequestID:      "req-1",
		NotificationID: "n-1",
		UserID:         "u-1",
		Type:           "Geofence Alert",
		Data:           map[string]any{"deviceId": "d-1"},
		CreatedAt:      time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

func TestLocalHTTPPublisher_Publish(t *testing.T) {
	var received PubSubPushMessage
	var requestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, discardLogger())

	require.NoError(t, publisher.PublishNotificationEvent(context.Background(), testEvent()))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, localSubscription, received.Subscription)
	assert.Equal(t, "n-1", received.Message.MessageID)
	assert.Equal(t, map[string]string{
		"notification_id": "n-1",
		"user_id":         "u-1",
		"type":            "Geofence Alert",
		"request_id":      "req-1",
	}, received.Message.Attributes)

	raw, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)
	var event service.NotificationEvent
	require.NoError(t, json.Unmarshal(raw, &event))
	assert.Equal(t, "u-1", event.UserID)
	assert.Equal(t, "d-1", event.Data["deviceId"])
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, discardLogger())

	err := publisher.PublishNotificationEvent(context.Background(), testEvent())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}

func TestEventAttributes_OmitsEmptyRequestID(t *testing.T) {
	event := testEvent()
	event.RequestID = ""

	attributes := eventAttributes(event)

	assert.NotContains(t, attributes, "request_id")
	assert.Equal(t, "u-1", attributes["user_id"])
}
