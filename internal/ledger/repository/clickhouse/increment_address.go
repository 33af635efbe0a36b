package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-ledger/internal/ledger/model"
	"github.com/shopspring/decimal"
)

// IncrementAddress adds balanceDelta and receivedDelta to address, creating it on first sight.
func (r *Repository) IncrementAddress(ctx context.Context, coin model.Coin, network model.Network, address string, balanceDelta, receivedDelta decimal.Decimal) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("increment_address", coin, network, err, start)
	}()

	const query = `
INSERT INTO ledger_addresses (coin, network, address, balance, total_received)
SELECT ?, ?, ?, toDecimal128(?, 8), toDecimal128(?, 8)`

	if err = r.conn.Exec(ctx, query, string(coin), string(network), address, balanceDelta.String(), receivedDelta.String()); err != nil {
		return fmt.Errorf("increment address %s: %w", address, err)
	}
	return nil
}
