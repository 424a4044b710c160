package pubsub

import (
	"encoding/json"

	"tracker/internal/domain/service"

	"github.com/pkg/errors"
)

// encodeEvent returns the message body and the attributes subscribers filter on.
func encodeEvent(event *service.NotificationEvent) ([]byte, map[string]string, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "encode notification %s", event.NotificationID)
	}

	return data, eventAttributes(event), nil
}

func eventAttributes(event *service.NotificationEvent) map[string]string {
	attributes := map[string]string{
		"notification_id": event.NotificationID,
		"user_id":         event.UserID,
		"type":            event.Type,
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return attributes
}
