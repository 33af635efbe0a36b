package syncer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/btcsuite/btcd/btcjson"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/blockinsight7000-ledger/internal/ledger/model"
)

// ErrIncompleteBlock marks a block left unrecorded because a transaction could not be fully resolved.
var ErrIncompleteBlock = errors.New("block not fully resolved")

// blockProcessor runs the per-block procedure: fetch, resolve, apply, record.
// Fetch failures and incomplete blocks are logged and leave the height unrecorded.
// Store failures are returned.
type blockProcessor struct {
	coin    model.Coin
	network model.Network
	strict  bool
	metrics Metrics
	logger  *zap.Logger
	now     func() time.Time
}

// Process handles height on h and reports whether the block record was written.
func (p *blockProcessor) Process(ctx context.Context, h Handles, height uint64) (recorded bool, err error) {
	started := time.Now()
	defer func() { p.metrics.ObserveProcessBlock(err, recorded, started) }()

	logger := p.logger.With(zap.Uint64("height", height))

	hash, err := h.Source.BlockHash(ctx, height)
	if err != nil {
		logger.Error("fetch block hash failed", zap.Error(err))
		return false, nil
	}
	block, err := h.Source.Block(ctx, hash)
	if err != nil {
		logger.Error("fetch block failed", zap.String("hash", hash), zap.Error(err))
		return false, nil
	}

	ledger := NewAddressLedger(h.Store, p.coin, p.network)
	var skipped int
	if p.strict {
		skipped, err = p.applyAll(ctx, h, ledger, block, logger)
	} else {
		skipped, err = p.applyEach(ctx, h, ledger, block, logger)
	}
	if errors.Is(err, ErrIncompleteBlock) {
		logger.Warn("block left for retry", zap.String("hash", hash), zap.Error(err))
		return false, nil
	}
	if err != nil {
		return false, err
	}

	if err := h.Store.InsertBlock(ctx, model.Block{
		Coin:       p.coin,
		Network:    p.network,
		Height:     height,
		Hash:       hash,
		RecordedAt: p.now().UTC(),
	}); err != nil {
		return false, fmt.Errorf("record block %d: %w", height, err)
	}

	logger.Info("block applied",
		zap.String("hash", hash),
		zap.Int("txs", len(block.Tx)),
		zap.Int("skipped_txs", skipped),
	)
	return true, nil
}

// applyEach applies every transaction as soon as it is resolved. Unresolvable parts are skipped.
func (p *blockProcessor) applyEach(
	ctx context.Context,
	h Handles,
	ledger *AddressLedger,
	block *btcjson.GetBlockVerboseResult,
	logger *zap.Logger,
) (int, error) {
	var skipped int
	for _, txid := range block.Tx {
		if err := ctx.Err(); err != nil {
			return skipped, err
		}
		deltas, err := p.resolve(ctx, h, txid)
		if err != nil {
			logger.Error("transaction not fully resolved, applying the rest", zap.String("txid", txid), zap.Error(err))
			p.metrics.ObserveSkippedTransaction()
			skipped++
		}
		for _, delta := range deltas {
			if err := ledger.Apply(ctx, delta); err != nil {
				return skipped, fmt.Errorf("tx %s: %w", txid, err)
			}
		}
	}
	return skipped, nil
}

// applyAll resolves the whole block before touching the store.
func (p *blockProcessor) applyAll(
	ctx context.Context,
	h Handles,
	ledger *AddressLedger,
	block *btcjson.GetBlockVerboseResult,
	logger *zap.Logger,
) (int, error) {
	var all []model.Delta
	for _, txid := range block.Tx {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		deltas, err := p.resolve(ctx, h, txid)
		if err != nil {
			p.metrics.ObserveSkippedTransaction()
			return 0, fmt.Errorf("%w: tx %s: %w", ErrIncompleteBlock, txid, err)
		}
		all = append(all, deltas...)
	}

	logger.Debug("block resolved", zap.Int("deltas", len(all)))
	for _, delta := range all {
		if err := ledger.Apply(ctx, delta); err != nil {
			return 0, fmt.Errorf("tx %s: %w", delta.TxID, err)
		}
	}
	return 0, nil
}

func (p *blockProcessor) resolve(ctx context.Context, h Handles, txid string) ([]model.Delta, error) {
	tx, err := h.Source.Transaction(ctx, txid)
	if err != nil {
		return nil, fmt.Errorf("fetch transaction: %w", err)
	}
	return h.Resolver.Resolve(ctx, *tx)
}
