package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-ledger/internal/ledger/model"
)

// Address returns the ledger entry of address.
func (r *Repository) Address(ctx context.Context, coin model.Coin, network model.Network, address string) (model.Address, bool, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("address", coin, network, err, start)
	}()

	const query = `
SELECT sum(balance) AS balance, sum(total_received) AS total_received
FROM ledger_addresses
WHERE coin = ? AND network = ? AND address = ?
GROUP BY address`

	rows, err := r.conn.Query(ctx, query, string(coin), string(network), address)
	if err != nil {
		return model.Address{}, false, fmt.Errorf("query address: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return model.Address{}, false, fmt.Errorf("iterate address: %w", err)
		}
		return model.Address{}, false, nil
	}

	result := model.Address{Coin: coin, Network: network, Address: address}
	if err = rows.Scan(&result.Balance, &result.TotalReceived); err != nil {
		return model.Address{}, false, fmt.Errorf("scan address: %w", err)
	}
	return result, true, nil
}
