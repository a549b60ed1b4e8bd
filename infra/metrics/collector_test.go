package metrics

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/spaceshare/spaceshare/core/events"
	"github.com/spaceshare/spaceshare/core/model"
	"github.com/spaceshare/spaceshare/infra/logger"
	"github.com/spaceshare/spaceshare/internal/eventbus"
)

type countingSink struct {
	groupings     chan events.GroupingEvent
	notifications chan events.NotificationEvent
}

func newCountingSink() *countingSink {
	return &countingSink{
		groupings:     make(chan events.GroupingEvent, 4),
		notifications: make(chan events.NotificationEvent, 4),
	}
}

func (c *countingSink) RecordGrouping(ev events.GroupingEvent) error {
	c.groupings <- ev
	return nil
}

func (c *countingSink) RecordNotification(ev events.NotificationEvent) error {
	c.notifications <- ev
	return nil
}

func TestStartEventCollector(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	bus := eventbus.New[events.Event]()
	sink := newCountingSink()
	done := StartEventCollector(ctx, bus, sink, logger.NopLogger{})

	bus.Publish(events.GroupingEvent{Kind: model.KindDeparture, Groups: 2})
	bus.Publish(events.NotificationEvent{Kind: model.KindArrival, Group: 1})

	select {
	case ev := <-sink.groupings:
		assert.Equal(t, 2, ev.Groups)
	case <-time.After(time.Second):
		t.Fatal("grouping event not recorded")
	}
	select {
	case ev := <-sink.notifications:
		assert.Equal(t, 1, ev.Group)
	case <-time.After(time.Second):
		t.Fatal("notification event not recorded")
	}

	bus.Close()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("collector did not stop after bus close")
	}
}

func TestStartEventCollectorNilBus(t *testing.T) {
	done := StartEventCollector(context.Background(), nil, newCountingSink(), nil)
	_, ok := <-done
	assert.False(t, ok)
}
