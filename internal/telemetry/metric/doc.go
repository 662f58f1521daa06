// Package metric provides Prometheus metrics for sfsession.
//
// This package implements metrics collection and exposition:
//
//   - prometheus.go: Prometheus registry and HTTP handler
//   - collector.go: Custom collectors (build information)
//
// Metrics include:
//
//   - Login/logout exchange counters labeled by result
//   - Exchange latency histograms
//   - Recovered listener panic counter
//   - Active session gauge
//
// Metrics are exposed at /metrics in Prometheus format when the
// daemon's metrics endpoint is enabled.
package metric
