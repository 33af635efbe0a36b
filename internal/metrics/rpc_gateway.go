package metrics

import (
	"time"

	"github.com/goodnatureofminers/blockinsight7000-ledger/internal/ledger/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	rpcGatewayCallsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "rpc_gateway",
		Name:      "calls_total",
		Help:      "Count of node JSON-RPC calls.",
	}, []string{"method", "coin", "network", "status"})
	rpcGatewayCallDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "rpc_gateway",
		Name:      "call_duration_seconds",
		Help:      "Duration of node JSON-RPC calls, including rate limiter waits.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "coin", "network", "status"})
)

// RPCGateway tracks metrics for JSON-RPC calls to a blockchain node.
type RPCGateway struct {
	coin    string
	network string
}

// NewRPCGateway constructs a metrics collector for RPC calls.
func NewRPCGateway(coin model.Coin, network model.Network) *RPCGateway {
	return &RPCGateway{coin: orUnknown(coin), network: orUnknown(network)}
}

// Observe records a single RPC call outcome and duration.
func (m RPCGateway) Observe(method string, err error, started time.Time) {
	s := status(err)
	rpcGatewayCallsTotal.WithLabelValues(method, m.coin, m.network, s).Inc()
	rpcGatewayCallDuration.WithLabelValues(method, m.coin, m.network, s).Observe(time.Since(started).Seconds())
}
