package metrics

import (
	"errors"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spaceshare/spaceshare/core/events"
	"github.com/spaceshare/spaceshare/core/model"
)

func newTestPromSink(t *testing.T) *PromSink {
	t.Helper()
	sinkIf, err := NewPromSinkWithRegistry(prometheus.NewRegistry())
	require.NoError(t, err)
	sink, ok := sinkIf.(*PromSink)
	require.True(t, ok, "expected *PromSink, got %T", sinkIf)
	return sink
}

func TestPromSink_RecordGrouping(t *testing.T) {
	sink := newTestPromSink(t)
	ev := events.GroupingEvent{
		Kind:       model.KindArrival,
		Groups:     3,
		Splits:     1,
		GroupSizes: []int{3, 2, 2},
		Spreads:    []float64{0, 0.2, 0.4},
	}
	require.NoError(t, sink.RecordGrouping(ev))

	expected := `
# HELP rideshare_groups_total Number of ride groups formed
# TYPE rideshare_groups_total counter
rideshare_groups_total{kind="arrival"} 3
`
	assert.NoError(t, testutil.CollectAndCompare(sink.groups, strings.NewReader(expected)))
	assert.Equal(t, 1.0, testutil.ToFloat64(sink.splits.WithLabelValues("arrival")))
	assert.Equal(t, 1.0, testutil.ToFloat64(sink.runs.WithLabelValues("arrival")))
	assert.Equal(t, 1, testutil.CollectAndCount(sink.size))
	assert.Equal(t, 1, testutil.CollectAndCount(sink.spread))
}

func TestPromSink_RecordNotification(t *testing.T) {
	sink := newTestPromSink(t)
	require.NoError(t, sink.RecordNotification(events.NotificationEvent{Kind: model.KindDeparture}))
	require.NoError(t, sink.RecordNotification(events.NotificationEvent{Kind: model.KindDeparture, Err: errors.New("x")}))
	assert.Equal(t, 1.0, testutil.ToFloat64(sink.notifications.WithLabelValues("departure", "true")))
	assert.Equal(t, 1.0, testutil.ToFloat64(sink.notifications.WithLabelValues("departure", "false")))
}

func TestPromSink_SharedRegistry(t *testing.T) {
	reg := prometheus.NewRegistry()
	first, err := NewPromSinkWithRegistry(reg)
	require.NoError(t, err)
	second, err := NewPromSinkWithRegistry(reg)
	require.NoError(t, err)

	require.NoError(t, first.RecordGrouping(events.GroupingEvent{Kind: model.KindArrival, Groups: 1}))
	require.NoError(t, second.RecordGrouping(events.GroupingEvent{Kind: model.KindArrival, Groups: 1}))
	assert.Equal(t, 2.0, testutil.ToFloat64(first.(*PromSink).groups.WithLabelValues("arrival")))
}
