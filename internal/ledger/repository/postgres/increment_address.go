package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/goodnatureofminers/blockinsight7000-ledger/internal/ledger/model"
)

// IncrementAddress adds balanceDelta and receivedDelta to address in one atomic upsert.
func (r *Repository) IncrementAddress(ctx context.Context, coin model.Coin, network model.Network, address string, balanceDelta, receivedDelta decimal.Decimal) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("increment_address", coin, network, err, start)
	}()

	const query = `
INSERT INTO ledger_addresses (coin, network, address, balance, total_received)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (coin, network, address) DO UPDATE SET
	balance = ledger_addresses.balance + EXCLUDED.balance,
	total_received = ledger_addresses.total_received + EXCLUDED.total_received`

	if _, err = r.db.ExecContext(ctx, query, string(coin), string(network), address, balanceDelta, receivedDelta); err != nil {
		return fmt.Errorf("increment address %s: %w", address, err)
	}
	return nil
}
