package syncer

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/blockinsight7000-ledger/internal/ledger/model"
)

// ReorgDetector compares the highest recorded block with the node's block at that height.
// It only looks at that single height and never reverses address deltas.
type ReorgDetector struct {
	source  BlockSource
	store   LedgerStore
	coin    model.Coin
	network model.Network
	metrics Metrics
	logger  *zap.Logger
}

// NewReorgDetector constructs a ReorgDetector.
func NewReorgDetector(source BlockSource, store LedgerStore, coin model.Coin, network model.Network, metrics Metrics, logger *zap.Logger) *ReorgDetector {
	return &ReorgDetector{
		source:  source,
		store:   store,
		coin:    coin,
		network: network,
		metrics: metrics,
		logger:  logger.Named("reorgDetector"),
	}
}

// CheckAndRollback deletes every block record at or above the local tip when the tip's hash
// no longer matches the node. It reports whether a rollback happened.
func (d *ReorgDetector) CheckAndRollback(ctx context.Context) (bool, error) {
	_, rolledBack, err := d.checkAndRollback(ctx)
	return rolledBack, err
}

func (d *ReorgDetector) checkAndRollback(ctx context.Context) (uint64, bool, error) {
	tip, found, err := d.store.MaxBlock(ctx, d.coin, d.network)
	if err != nil {
		return 0, false, fmt.Errorf("load local tip: %w", err)
	}
	if !found {
		return 0, false, nil
	}

	remoteHash, err := d.source.BlockHash(ctx, tip.Height)
	if err != nil {
		return 0, false, fmt.Errorf("fetch remote hash at height %d: %w", tip.Height, err)
	}
	if remoteHash == tip.Hash {
		return 0, false, nil
	}

	d.logger.Warn("chain reorg detected, rolling back block records",
		zap.Uint64("height", tip.Height),
		zap.String("local_hash", tip.Hash),
		zap.String("remote_hash", remoteHash),
	)
	if err := d.store.DeleteBlocksFrom(ctx, d.coin, d.network, tip.Height); err != nil {
		return 0, false, fmt.Errorf("roll back from height %d: %w", tip.Height, err)
	}
	d.metrics.ObserveReorg()
	return tip.Height, true, nil
}
