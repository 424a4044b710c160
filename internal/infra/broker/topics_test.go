package broker

import (
	"testing"

	"tracker/internal/domain/service"

	"github.com/stretchr/testify/assert"
)

func TestTopics(t *testing.T) {
	assert.Equal(t, "tracking/location/kid-1", LocationTopic("tracking/", "kid-1"))
	assert.Equal(t, "tracking/danger/kid-1", DangerTopic("tracking/", "kid-1"))
	assert.Equal(t, "location/kid-1", LocationTopic("", "kid-1"))
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		name   string
		prefix string
		topic  string
		want   service.TelemetryKind
	}{
		{name: "location", prefix: "tracking/", topic: "tracking/location/kid-1", want: service.TelemetryLocation},
		{name: "danger", prefix: "tracking/", topic: "tracking/danger/kid-1", want: service.TelemetryDanger},
		{name: "no prefix", prefix: "", topic: "danger/kid-1", want: service.TelemetryDanger},
		{name: "wrong prefix", prefix: "tracking/", topic: "other/location/kid-1", want: 0},
		{name: "unknown segment", prefix: "tracking/", topic: "tracking/battery/kid-1", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KindOf(tt.prefix, tt.topic))
		})
	}
}
