package metrics

import (
	"errors"

	"github.com/spaceshare/spaceshare/core/events"
)

// MultiSink fans events out to several sinks. Every sink is called even when
// an earlier one fails; the errors are joined.
type MultiSink struct {
	Sinks []MetricsSink
}

// NewMultiSink creates a MultiSink with the provided sinks.
func NewMultiSink(sinks ...MetricsSink) *MultiSink {
	return &MultiSink{Sinks: sinks}
}

func (m *MultiSink) RecordGrouping(ev events.GroupingEvent) error {
	var errs []error
	for _, s := range m.Sinks {
		if err := s.RecordGrouping(ev); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (m *MultiSink) RecordNotification(ev events.NotificationEvent) error {
	var errs []error
	for _, s := range m.Sinks {
		if rec, ok := s.(NotificationRecorder); ok {
			if err := rec.RecordNotification(ev); err != nil {
				errs = append(errs, err)
			}
		}
	}
	return errors.Join(errs...)
}
