// Package chain turns decoded transactions into address ledger deltas.
package chain

import (
	"context"
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/btcjson"
	"github.com/goodnatureofminers/blockinsight7000-ledger/internal/ledger/model"
	"go.uber.org/zap"
)

// TransactionResolver resolves the debits and credits of one transaction.
type TransactionResolver struct {
	prevOutputs PrevOutputResolver
	converter   OutputConverter
	logger      *zap.Logger
}

// NewTransactionResolver constructs a TransactionResolver.
func NewTransactionResolver(prevOutputs PrevOutputResolver, converter OutputConverter, logger *zap.Logger) *TransactionResolver {
	return &TransactionResolver{
		prevOutputs: prevOutputs,
		converter:   converter,
		logger:      logger.Named("transactionResolver"),
	}
}

// Resolve returns one debit per resolvable input followed by one credit per output with an address.
// Inputs and outputs are resolved in two independent passes: a failed input never suppresses
// the outputs. The error joins every input or output that could not be resolved; the deltas
// returned alongside it are still valid. Inputs without a previous txid (coinbase) and
// outputs without an address are skipped without error.
func (r *TransactionResolver) Resolve(ctx context.Context, tx btcjson.TxRawResult) ([]model.Delta, error) {
	deltas := make([]model.Delta, 0, len(tx.Vin)+len(tx.Vout))
	var errs []error

	for i, vin := range tx.Vin {
		if vin.Txid == "" {
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		prev, err := r.prevOutputs.Resolve(ctx, vin.Txid, vin.Vout)
		if err != nil {
			errs = append(errs, fmt.Errorf("resolve input %d of tx %s: %w", i, tx.Txid, err))
			continue
		}
		if prev.Address == "" {
			r.logger.Warn("previous output has no address",
				zap.String("txid", tx.Txid), zap.Int("input", i),
				zap.String("prev_txid", vin.Txid), zap.Uint32("prev_index", vin.Vout))
			continue
		}
		deltas = append(deltas, model.Delta{
			TxID:      tx.Txid,
			Address:   prev.Address,
			Amount:    prev.Value,
			Direction: model.Debit,
		})
	}

	outputs, err := r.converter.Outputs(tx)
	if err != nil {
		errs = append(errs, fmt.Errorf("convert outputs of tx %s: %w", tx.Txid, err))
	}
	for _, out := range outputs {
		if out.Address == "" {
			r.logger.Warn("output has no address", zap.String("txid", tx.Txid), zap.Uint32("index", out.Index))
			continue
		}
		deltas = append(deltas, model.Delta{
			TxID:      tx.Txid,
			Address:   out.Address,
			Amount:    out.Value,
			Direction: model.Credit,
		})
	}

	return deltas, errors.Join(errs...)
}
