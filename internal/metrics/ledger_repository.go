package metrics

import (
	"time"

	"github.com/goodnatureofminers/blockinsight7000-ledger/internal/ledger/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ledgerRepositoryRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "ledger_repository",
		Name:      "operations_total",
		Help:      "Count of ledger store operations.",
	}, []string{"backend", "operation", "coin", "network", "status"})
	ledgerRepositoryRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "ledger_repository",
		Name:      "operation_duration_seconds",
		Help:      "Duration of ledger store operations.",
		Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 30},
	}, []string{"backend", "operation", "coin", "network", "status"})
)

// LedgerRepository tracks metrics for Ledger Store operations of one backend.
type LedgerRepository struct {
	backend string
}

// NewLedgerRepository creates a LedgerRepository metrics collector for backend (clickhouse, postgres, memory).
func NewLedgerRepository(backend string) *LedgerRepository {
	return &LedgerRepository{backend: orUnknown(backend)}
}

// Observe records duration and status of a store operation.
func (m LedgerRepository) Observe(operation string, coin model.Coin, network model.Network, err error, started time.Time) {
	labels := []string{m.backend, operation, orUnknown(coin), orUnknown(network), status(err)}
	ledgerRepositoryRequestsTotal.WithLabelValues(labels...).Inc()
	ledgerRepositoryRequestDuration.WithLabelValues(labels...).Observe(time.Since(started).Seconds())
}
