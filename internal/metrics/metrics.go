// Package metrics holds the Prometheus collectors of the wallet daemon.
//
// Every recording method is safe on a nil *Metrics so components can be
// constructed without instrumentation in tests.
package metrics

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Options configures the collectors.
type Options struct {
	Registerer prometheus.Registerer
	Gatherer   prometheus.Gatherer
	Namespace  string
	Buckets    []float64
}

// Metrics exposes the collectors recorded by the engine and the control API.
type Metrics struct {
	EngineEvents     *prometheus.CounterVec
	UnknownEvents    *prometheus.CounterVec
	HandlerPanics    prometheus.Counter
	PINAttempts      *prometheus.CounterVec
	NetworkInits     *prometheus.CounterVec
	SessionOpen      prometheus.Gauge
	HTTPRequests     *prometheus.CounterVec
	HTTPDuration     *prometheus.HistogramVec
	TimeOffsetSecond prometheus.Gauge

	gatherer prometheus.Gatherer
}

// New constructs the collectors and registers them with opts.Registerer.
// Collectors already registered under the same name are reused.
func New(opts Options) (*Metrics, error) {
	namespace := opts.Namespace
	if namespace == "" {
		namespace = "walletd"
	}

	reg := opts.Registerer
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	gatherer := opts.Gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}

	buckets := opts.Buckets
	if len(buckets) == 0 {
		buckets = prometheus.DefBuckets
	}

	var err error
	m := &Metrics{gatherer: gatherer}

	if m.EngineEvents, err = register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "engine",
		Name:      "events_total",
		Help:      "Chain engine events partitioned by kind and event name.",
	}, []string{"kind", "event"})); err != nil {
		return nil, err
	}

	if m.UnknownEvents, err = register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "engine",
		Name:      "unknown_events_total",
		Help:      "Chain engine events the aggregator did not recognise.",
	}, []string{"kind"})); err != nil {
		return nil, err
	}

	if m.HandlerPanics, err = register(reg, prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "engine",
		Name:      "handler_panics_total",
		Help:      "Panics recovered while handling chain engine events.",
	})); err != nil {
		return nil, err
	}

	if m.PINAttempts, err = register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "auth",
		Name:      "pin_attempts_total",
		Help:      "PIN verification attempts partitioned by result.",
	}, []string{"result"})); err != nil {
		return nil, err
	}

	if m.NetworkInits, err = register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "engine",
		Name:      "network_initializations_total",
		Help:      "Network initialization outcomes partitioned by network and state.",
	}, []string{"network", "state"})); err != nil {
		return nil, err
	}

	if m.SessionOpen, err = register(reg, prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "engine",
		Name:      "session_open",
		Help:      "1 while the synchronization session is open.",
	})); err != nil {
		return nil, err
	}

	if m.HTTPRequests, err = register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Total number of control API requests partitioned by method, route, and status code.",
	}, []string{"method", "route", "status"})); err != nil {
		return nil, err
	}

	if m.HTTPDuration, err = register(reg, prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "Histogram of control API latencies in seconds partitioned by method and route.",
		Buckets:   buckets,
	}, []string{"method", "route"})); err != nil {
		return nil, err
	}

	if m.TimeOffsetSecond, err = register(reg, prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "clock",
		Name:      "trusted_offset_seconds",
		Help:      "Offset between the trusted backend clock and the local clock.",
	})); err != nil {
		return nil, err
	}

	return m, nil
}

// NewIsolated returns collectors bound to a private registry.
func NewIsolated() *Metrics {
	reg := prometheus.NewRegistry()
	m, err := New(Options{Registerer: reg, Gatherer: reg})
	if err != nil {
		// a fresh registry never reports duplicates
		panic(err)
	}
	return m
}

func register[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	if err := reg.Register(c); err != nil {
		var already prometheus.AlreadyRegisteredError
		if !errors.As(err, &already) {
			return c, fmt.Errorf("register collector: %w", err)
		}
		existing, ok := already.ExistingCollector.(C)
		if !ok {
			return c, fmt.Errorf("existing collector has unexpected type %T", already.ExistingCollector)
		}
		return existing, nil
	}
	return c, nil
}

func (m *Metrics) EngineEvent(kind, name string) {
	if m == nil {
		return
	}
	m.EngineEvents.WithLabelValues(kind, name).Inc()
}

func (m *Metrics) UnknownEvent(kind string) {
	if m == nil {
		return
	}
	m.UnknownEvents.WithLabelValues(kind).Inc()
}

func (m *Metrics) HandlerPanic() {
	if m == nil {
		return
	}
	m.HandlerPanics.Inc()
}

// PINAttempt records a verification result: "success", "failure" or
// "locked_out".
func (m *Metrics) PINAttempt(result string) {
	if m == nil {
		return
	}
	m.PINAttempts.WithLabelValues(result).Inc()
}

func (m *Metrics) NetworkInitialized(network, state string) {
	if m == nil {
		return
	}
	m.NetworkInits.WithLabelValues(network, state).Inc()
}

func (m *Metrics) SetSessionOpen(open bool) {
	if m == nil {
		return
	}
	if open {
		m.SessionOpen.Set(1)
		return
	}
	m.SessionOpen.Set(0)
}

func (m *Metrics) SetTimeOffset(offset time.Duration) {
	if m == nil {
		return
	}
	m.TimeOffsetSecond.Set(offset.Seconds())
}

// Handler serves the collected metrics.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return promhttp.Handler()
	}
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}

// Middleware records request count and latency per chi route pattern.
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	if m == nil {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		route := r.URL.Path
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if pattern := rctx.RoutePattern(); pattern != "" {
				route = pattern
			}
		}

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}

		m.HTTPRequests.WithLabelValues(r.Method, route, strconv.Itoa(status)).Inc()
		m.HTTPDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
	})
}
