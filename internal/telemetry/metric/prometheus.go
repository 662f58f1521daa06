// Package metric provides Prometheus metrics for sfsession.
//
// It exposes metrics in Prometheus format for monitoring login and
// logout exchanges, their latencies, and listener health.
package metric

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "sfsession"

// Registry holds all application metrics.
//
// A nil *Registry is valid: every observation method is a no-op, so
// callers that run without metrics pass nil instead of branching.
type Registry struct {
	reg *prometheus.Registry

	// Exchange metrics
	LoginsTotal    *prometheus.CounterVec
	LogoutsTotal   *prometheus.CounterVec
	LoginDuration  prometheus.Histogram
	LogoutDuration prometheus.Histogram

	// Listener metrics
	ListenerPanics prometheus.Counter

	// Session state
	SessionActive prometheus.Gauge
}

// NewRegistry creates a new metrics registry with all metrics registered.
func NewRegistry() *Registry {
	reg := prometheus.NewRegistry()

	r := &Registry{
		reg: reg,

		LoginsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "logins_total",
			Help:      "Total number of login exchanges by result.",
		}, []string{"result"}),

		LogoutsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "logouts_total",
			Help:      "Total number of logout exchanges by result.",
		}, []string{"result"}),

		LoginDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "login_duration_seconds",
			Help:      "Wall-clock duration of login exchanges.",
			Buckets:   prometheus.DefBuckets,
		}),

		LogoutDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "logout_duration_seconds",
			Help:      "Wall-clock duration of logout exchanges.",
			Buckets:   prometheus.DefBuckets,
		}),

		ListenerPanics: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "listener_panics_total",
			Help:      "Total number of panics recovered from session listeners.",
		}),

		SessionActive: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "session_active",
			Help:      "Whether a session credential is currently held (1) or not (0).",
		}),
	}

	reg.MustRegister(
		r.LoginsTotal,
		r.LogoutsTotal,
		r.LoginDuration,
		r.LogoutDuration,
		r.ListenerPanics,
		r.SessionActive,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return r
}

// Handler returns an HTTP handler for the /metrics endpoint.
func (r *Registry) Handler() http.Handler {
	if r == nil {
		return promhttp.Handler()
	}
	return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{})
}

// Register adds a collector to the underlying Prometheus registry.
func (r *Registry) Register(c prometheus.Collector) error {
	if r == nil {
		return nil
	}
	return r.reg.Register(c)
}

// ObserveLogin records the outcome and duration of a login exchange.
func (r *Registry) ObserveLogin(result string, d time.Duration) {
	if r == nil {
		return
	}
	r.LoginsTotal.WithLabelValues(result).Inc()
	r.LoginDuration.Observe(d.Seconds())
}

// ObserveLogout records the outcome and duration of a logout exchange.
func (r *Registry) ObserveLogout(result string, d time.Duration) {
	if r == nil {
		return
	}
	r.LogoutsTotal.WithLabelValues(result).Inc()
	r.LogoutDuration.Observe(d.Seconds())
}

// RecordListenerPanic counts a panic recovered from a listener.
func (r *Registry) RecordListenerPanic() {
	if r == nil {
		return
	}
	r.ListenerPanics.Inc()
}

// SetSessionActive records whether a credential is currently held.
func (r *Registry) SetSessionActive(active bool) {
	if r == nil {
		return
	}
	if active {
		r.SessionActive.Set(1)
	} else {
		r.SessionActive.Set(0)
	}
}
