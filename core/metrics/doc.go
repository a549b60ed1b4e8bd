// Package metrics defines the sink interface grouping runs are reported to.
// Concrete sinks (Prometheus, InfluxDB) live in infra/metrics and register
// themselves with RegisterMetricsSink; NewMetricsSink builds the configured
// set and wraps several sinks in a MultiSink.
package metrics
