package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "jurisdiction_gateway"

var (
	// GatewayInvocations counts contract invocations by outcome.
	GatewayInvocations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "invocations_total",
			Help:      "Contract invocations through the gateway.",
		},
		[]string{"contract", "operation", "kind", "outcome"},
	)

	// GatewayInvocationDuration observes invocation latency, network round trip included.
	GatewayInvocationDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "invocation_duration_seconds",
			Help:      "Latency of contract invocations.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"kind"},
	)

	// ChainIDLookups counts chain id resolutions by source.
	ChainIDLookups = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "chain_id_lookups_total",
			Help:      "Chain id lookups, by result (cache_hit, rpc, error).",
		},
		[]string{"result"},
	)

	// HTTPRequests counts API requests.
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests handled by the API.",
		},
		[]string{"method", "route", "status"},
	)

	// HTTPRequestDuration observes API latency.
	HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Latency of HTTP requests.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	registerOnce sync.Once
)

// MustRegisterMetrics registers every collector with the default registry. Safe to call more than once.
func MustRegisterMetrics() {
	registerOnce.Do(func() {
		prometheus.MustRegister(
			GatewayInvocations,
			GatewayInvocationDuration,
			ChainIDLookups,
			HTTPRequests,
			HTTPRequestDuration,
		)
	})
}
