package metrics

import (
	"time"

	"github.com/goodnatureofminers/blockinsight7000-ledger/internal/ledger/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	syncerIterationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "syncer",
		Name:      "iterations_total",
		Help:      "Count of sync loop iterations.",
	}, []string{"coin", "network", "status"})

	syncerProcessBlockTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "syncer",
		Name:      "process_block_total",
		Help:      "Count of per-block procedures by outcome.",
	}, []string{"coin", "network", "status"})

	syncerProcessBlockDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "syncer",
		Name:      "process_block_duration_seconds",
		Help:      "Duration of the per-block procedure.",
		Buckets:   []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 30, 60, 120},
	}, []string{"coin", "network", "status"})

	syncerSkippedTransactionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "syncer",
		Name:      "skipped_transactions_total",
		Help:      "Transactions skipped or only partially resolved.",
	}, []string{"coin", "network"})

	syncerReorgsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "syncer",
		Name:      "reorgs_total",
		Help:      "Count of rollbacks performed by the reorg detector.",
	}, []string{"coin", "network"})

	syncerCatchUpBatchSize = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "syncer",
		Name:      "catch_up_batch_size",
		Help:      "Number of heights dispatched per parallel catch-up batch.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 14),
	}, []string{"coin", "network"})

	syncerHeight = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "syncer",
		Name:      "height",
		Help:      "Last observed heights (remote chain and local cursor).",
	}, []string{"coin", "network", "source"})
)

// Syncer tracks metrics of the sync engine.
type Syncer struct {
	coin    string
	network string
}

// NewSyncer constructs a Syncer collector.
func NewSyncer(coin model.Coin, network model.Network) *Syncer {
	return &Syncer{coin: orUnknown(coin), network: orUnknown(network)}
}

// ObserveIteration records one loop iteration.
func (m Syncer) ObserveIteration(err error) {
	syncerIterationsTotal.WithLabelValues(m.coin, m.network, status(err)).Inc()
}

// ObserveHeights records the remote chain height and the local cursor.
func (m Syncer) ObserveHeights(local, remote uint64) {
	syncerHeight.WithLabelValues(m.coin, m.network, "local").Set(float64(local))
	syncerHeight.WithLabelValues(m.coin, m.network, "remote").Set(float64(remote))
}

// ObserveProcessBlock records the outcome of the per-block procedure.
// recorded is false when the block was left for a later retry.
func (m Syncer) ObserveProcessBlock(err error, recorded bool, started time.Time) {
	s := status(err)
	if err == nil && !recorded {
		s = "deferred"
	}
	syncerProcessBlockTotal.WithLabelValues(m.coin, m.network, s).Inc()
	syncerProcessBlockDuration.WithLabelValues(m.coin, m.network, s).Observe(time.Since(started).Seconds())
}

// ObserveSkippedTransaction counts a transaction that could not be fully resolved.
func (m Syncer) ObserveSkippedTransaction() {
	syncerSkippedTransactionsTotal.WithLabelValues(m.coin, m.network).Inc()
}

// ObserveReorg counts a rollback.
func (m Syncer) ObserveReorg() {
	syncerReorgsTotal.WithLabelValues(m.coin, m.network).Inc()
}

// ObserveCatchUp records the size of a parallel catch-up batch.
func (m Syncer) ObserveCatchUp(heights int) {
	syncerCatchUpBatchSize.WithLabelValues(m.coin, m.network).Observe(float64(heights))
}
