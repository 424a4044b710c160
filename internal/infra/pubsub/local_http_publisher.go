package pubsub

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"tracker/internal/domain/service"

	"github.com/pkg/errors"
)

const (
	localSubscription = "projects/local/subscriptions/tracker-notifications"
	localPushTimeout  = 5 * time.Second
)

// localHTTPPublisher posts each notification to an endpoint in the Pub/Sub
// push subscription format, so consumers can be developed without GCP.
type localHTTPPublisher struct {
	endpoint   string
	httpClient *http.Client
	logger     *slog.Logger
}

// PubSubPushMessage is the body Google Pub/Sub sends to push endpoints.
type PubSubPushMessage struct {
	Message      PushedMessage `json:"message"`
	Subscription string        `json:"subscription"`
}

type PushedMessage struct {
	Data        string            `json:"data"` // base64 of the JSON event
	Attributes  map[string]string `json:"attributes,omitempty"`
	MessageID   string            `json:"messageId"`
	PublishTime string            `json:"publishTime"`
}

// NewLocalHTTPPublisher creates a new local HTTP publisher for development
func NewLocalHTTPPublisher(endpoint string, logger *slog.Logger) service.EventPublisher {
	return &localHTTPPublisher{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: localPushTimeout},
		logger:     logger,
	}
}

func (p *localHTTPPublisher) PublishNotificationEvent(ctx context.Context, event *service.NotificationEvent) error {
	body, err := newPushBody(event, time.Now())
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if event.RequestID != "" {
		req.Header.Set("X-Request-Id", event.RequestID)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "post notification")
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return errors.Errorf("push endpoint returned non-success status: %d", resp.StatusCode)
	}

	p.logger.Debug("[LocalPubSub] Notification exported",
		slog.String("notification_id", event.NotificationID),
	)

	return nil
}

func (p *localHTTPPublisher) Close() error {
	return nil
}

func newPushBody(event *service.NotificationEvent, now time.Time) ([]byte, error) {
	data, attributes, err := encodeEvent(event)
	if err != nil {
		return nil, err
	}

	body, err := json.Marshal(PubSubPushMessage{
		Message: PushedMessage{
			Data:        base64.StdEncoding.EncodeToString(data),
			Attributes:  attributes,
			MessageID:   event.NotificationID,
			PublishTime: now.UTC().Format(time.RFC3339),
		},
		Subscription: localSubscription,
	})

	return body, errors.WithStack(err)
}
