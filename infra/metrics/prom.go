package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/spaceshare/spaceshare/core/events"
	coremetrics "github.com/spaceshare/spaceshare/core/metrics"
)

// PromSink records grouping runs in Prometheus metrics.
type PromSink struct {
	runs          *prometheus.CounterVec
	groups        *prometheus.CounterVec
	splits        *prometheus.CounterVec
	size          *prometheus.HistogramVec
	spread        *prometheus.HistogramVec
	notifications *prometheus.CounterVec
}

// NewPromSink registers the grouping metrics on the default registerer.
func NewPromSink() (coremetrics.MetricsSink, error) {
	return NewPromSinkWithRegistry(prometheus.DefaultRegisterer)
}

// NewPromSinkWithRegistry registers metrics on the provided registerer.
// A nil registerer defaults to the global Prometheus registerer.
func NewPromSinkWithRegistry(reg prometheus.Registerer) (coremetrics.MetricsSink, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	s := &PromSink{
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "rideshare_grouping_runs_total",
			Help: "Number of grouping runs",
		}, []string{"kind"}),
		groups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "rideshare_groups_total",
			Help: "Number of ride groups formed",
		}, []string{"kind"}),
		splits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "rideshare_splits_total",
			Help: "Number of clusters split because they exceeded car capacity",
		}, []string{"kind"}),
		size: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "rideshare_group_size",
			Help:    "Members per ride group",
			Buckets: prometheus.LinearBuckets(1, 1, 8),
		}, []string{"kind"}),
		spread: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "rideshare_group_spread_hours",
			Help:    "Time between earliest and latest member of a ride group",
			Buckets: []float64{0, 0.1, 0.25, 0.5, 0.75, 1, 2, 4},
		}, []string{"kind"}),
		notifications: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "rideshare_notifications_total",
			Help: "Group messages handed to the sender",
		}, []string{"kind", "sent"}),
	}
	var err error
	if s.runs, err = register(reg, s.runs); err != nil {
		return nil, err
	}
	if s.groups, err = register(reg, s.groups); err != nil {
		return nil, err
	}
	if s.splits, err = register(reg, s.splits); err != nil {
		return nil, err
	}
	if s.size, err = register(reg, s.size); err != nil {
		return nil, err
	}
	if s.spread, err = register(reg, s.spread); err != nil {
		return nil, err
	}
	if s.notifications, err = register(reg, s.notifications); err != nil {
		return nil, err
	}
	return s, nil
}

// register returns the already registered collector when an identical one
// exists, so that several sinks can share the default registry.
func register[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	if err := reg.Register(c); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing, nil
			}
		}
		return c, err
	}
	return c, nil
}

// RecordGrouping updates counters and histograms for one run.
func (s *PromSink) RecordGrouping(ev events.GroupingEvent) error {
	kind := ev.Kind.String()
	s.runs.WithLabelValues(kind).Inc()
	s.groups.WithLabelValues(kind).Add(float64(ev.Groups))
	s.splits.WithLabelValues(kind).Add(float64(ev.Splits))
	for _, n := range ev.GroupSizes {
		s.size.WithLabelValues(kind).Observe(float64(n))
	}
	for _, sp := range ev.Spreads {
		s.spread.WithLabelValues(kind).Observe(sp)
	}
	return nil
}

// RecordNotification counts sent and failed messages.
func (s *PromSink) RecordNotification(ev events.NotificationEvent) error {
	s.notifications.WithLabelValues(ev.Kind.String(), strconv.FormatBool(ev.Err == nil)).Inc()
	return nil
}
