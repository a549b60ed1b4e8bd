package metrics

import (
	"context"

	"github.com/spaceshare/spaceshare/core/events"
	coremetrics "github.com/spaceshare/spaceshare/core/metrics"
	"github.com/spaceshare/spaceshare/infra/logger"
	"github.com/spaceshare/spaceshare/internal/eventbus"
)

// CollectorBuffer is the bus subscription capacity of the event collector.
// A run publishes one event per kind and one per message.
const CollectorBuffer = 1024

// StartEventCollector subscribes to the bus and forwards events to the sink
// until the context is canceled or the bus is closed. The returned channel
// is closed once the collector has stopped.
func StartEventCollector(ctx context.Context, bus *eventbus.Bus[events.Event], sink coremetrics.MetricsSink, log logger.Logger) <-chan struct{} {
	done := make(chan struct{})
	if bus == nil || sink == nil {
		close(done)
		return done
	}
	if log == nil {
		log = logger.NopLogger{}
	}
	sub := bus.SubscribeBuffered(CollectorBuffer)
	go func() {
		defer close(done)
		defer bus.Unsubscribe(sub)
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-sub:
				if !ok {
					return
				}
				var err error
				switch e := ev.(type) {
				case events.GroupingEvent:
					err = sink.RecordGrouping(e)
				case events.NotificationEvent:
					if r, ok := sink.(coremetrics.NotificationRecorder); ok {
						err = r.RecordNotification(e)
					}
				}
				if err != nil {
					log.Warnf("record %s event: %v", events.Name(ev), err)
				}
			}
		}
	}()
	return done
}
