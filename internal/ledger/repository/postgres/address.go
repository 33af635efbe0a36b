package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/goodnatureofminers/blockinsight7000-ledger/internal/ledger/model"
)

type addressRow struct {
	Balance       decimal.Decimal `db:"balance"`
	TotalReceived decimal.Decimal `db:"total_received"`
}

// Address returns the ledger entry of address.
func (r *Repository) Address(ctx context.Context, coin model.Coin, network model.Network, address string) (model.Address, bool, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("address", coin, network, err, start)
	}()

	const query = `
SELECT balance, total_received
FROM ledger_addresses
WHERE coin = $1 AND network = $2 AND address = $3`

	var row addressRow
	if err = r.db.GetContext(ctx, &row, query, string(coin), string(network), address); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			err = nil
			return model.Address{}, false, nil
		}
		return model.Address{}, false, fmt.Errorf("query address: %w", err)
	}

	return model.Address{
		Coin:          coin,
		Network:       network,
		Address:       address,
		Balance:       row.Balance,
		TotalReceived: row.TotalReceived,
	}, true, nil
}
