package broker

import (
	"strings"

	"tracker/internal/domain/service"
)

const (
	locationSegment = "location/"
	dangerSegment   = "danger/"
)

// LocationTopic returns the topic a device publishes positions on.
func LocationTopic(prefix, deviceName string) string {
	return prefix + locationSegment + deviceName
}

// DangerTopic returns the topic a device publishes danger signals on.
func DangerTopic(prefix, deviceName string) string {
	return prefix + dangerSegment + deviceName
}

// KindOf classifies a received topic. Topics outside the prefix map to zero.
func KindOf(prefix, topic string) service.TelemetryKind {
	rest, ok := strings.CutPrefix(topic, prefix)
	if !ok {
		return 0
	}

	switch {
	case strings.HasPrefix(rest, locationSegment):
		return service.TelemetryLocation
	case strings.HasPrefix(rest, dangerSegment):
		return service.TelemetryDanger
	default:
		return 0
	}
}
