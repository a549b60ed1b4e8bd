package metrics

import "github.com/spaceshare/spaceshare/core/events"

// MetricsSink records grouping runs for observability purposes.
type MetricsSink interface {
	RecordGrouping(ev events.GroupingEvent) error
}

// NotificationRecorder is implemented by sinks that also track messages.
type NotificationRecorder interface {
	RecordNotification(ev events.NotificationEvent) error
}

// NopSink implements MetricsSink with no-op methods.
type NopSink struct{}

func (NopSink) RecordGrouping(events.GroupingEvent) error         { return nil }
func (NopSink) RecordNotification(events.NotificationEvent) error { return nil }
