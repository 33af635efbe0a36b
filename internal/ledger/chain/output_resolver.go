package chain

import (
	"context"
	"errors"
	"fmt"

	"github.com/goodnatureofminers/blockinsight7000-ledger/internal/ledger/model"
	"go.uber.org/zap"
)

// ErrOutputIndex is returned when a previous transaction has no output at the referenced index.
var ErrOutputIndex = errors.New("previous output index out of range")

// OutputResolver resolves previous outputs by re-fetching the referenced transaction.
// A cache, when set, memoizes every output of each fetched transaction.
type OutputResolver struct {
	source    TransactionSource
	converter OutputConverter
	cache     OutputCache
	logger    *zap.Logger
}

// NewOutputResolver constructs an OutputResolver. cache may be nil.
func NewOutputResolver(source TransactionSource, converter OutputConverter, cache OutputCache, logger *zap.Logger) *OutputResolver {
	return &OutputResolver{
		source:    source,
		converter: converter,
		cache:     cache,
		logger:    logger.Named("outputResolver"),
	}
}

// Resolve returns output index of transaction txid.
func (r *OutputResolver) Resolve(ctx context.Context, txid string, index uint32) (model.Output, error) {
	if r.cache != nil {
		out, ok, err := r.cache.Get(ctx, txid, index)
		if err != nil {
			r.logger.Warn("output cache lookup failed", zap.String("txid", txid), zap.Uint32("index", index), zap.Error(err))
		}
		if ok {
			return out, nil
		}
	}

	tx, err := r.source.Transaction(ctx, txid)
	if err != nil {
		return model.Output{}, fmt.Errorf("fetch previous tx %s: %w", txid, err)
	}
	outputs, convErr := r.converter.Outputs(*tx)

	if r.cache != nil && len(outputs) > 0 {
		if err := r.cache.Put(ctx, outputs); err != nil {
			r.logger.Warn("output cache store failed", zap.String("txid", txid), zap.Error(err))
		}
	}

	for _, out := range outputs {
		if out.Index == index {
			return out, nil
		}
	}
	if convErr != nil {
		return model.Output{}, fmt.Errorf("convert previous tx %s: %w", txid, convErr)
	}
	return model.Output{}, fmt.Errorf("%w: %s:%d", ErrOutputIndex, txid, index)
}
