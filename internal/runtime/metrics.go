package runtime

import (
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	loggingpkg "github.com/fancast/fancast/internal/runtime/logging"
)

// routerMetrics holds the Prometheus counters for a router instance.
type routerMetrics struct {
	published      *prometheus.CounterVec
	delivered      *prometheus.CounterVec
	decodeFailures *prometheus.CounterVec
}

func newRouterMetrics(reg prometheus.Registerer) (*routerMetrics, error) {
	m := &routerMetrics{
		published: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "fancast",
			Name:      "published_total",
			Help:      "Messages handed to the outbound transport, per channel (broadcast duplicates counted on the all channel).",
		}, []string{"channel"}),
		delivered: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "fancast",
			Name:      "delivered_total",
			Help:      "Listener callback invocations, per channel.",
		}, []string{"channel"}),
		decodeFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "fancast",
			Name:      "decode_failures_total",
			Help:      "Inbound messages dropped because the codec could not decode them, per channel.",
		}, []string{"channel"}),
	}

	for _, c := range []*prometheus.CounterVec{m.published, m.delivered, m.decodeFailures} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("failed to register router metrics: %w", err)
		}
	}
	return m, nil
}

func (m *routerMetrics) publishInc(channel string) {
	if m == nil {
		return
	}
	m.published.WithLabelValues(channel).Inc()
}

func (m *routerMetrics) deliverInc(channel string) {
	if m == nil {
		return
	}
	m.delivered.WithLabelValues(channel).Inc()
}

func (m *routerMetrics) decodeFailureInc(channel string) {
	if m == nil {
		return
	}
	m.decodeFailures.WithLabelValues(channel).Inc()
}

// startMetricsServer exposes /metrics on the configured port. Failures are
// logged, not fatal: metrics are an observability aid, not part of the
// delivery contract.
func startMetricsServer(port int, gatherer prometheus.Gatherer, log loggingpkg.ServiceLogger) {
	addr := fmt.Sprintf(":%d", port)
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	log.Info("Starting metrics server", loggingpkg.LogFields{"address": addr})
	go func() {
		if err := http.ListenAndServe(addr, mux); err != nil {
			log.Error("Failed to start metrics server", err, loggingpkg.LogFields{"address": addr})
		}
	}()
}
