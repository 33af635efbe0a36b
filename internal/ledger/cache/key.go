// Package cache memoizes previous transaction outputs keyed by (txid, index).
package cache

import (
	"encoding/json"
	"fmt"

	"github.com/goodnatureofminers/blockinsight7000-ledger/internal/ledger/model"
)

const keyPrefix = "ledger:prevout"

func outputKey(coin model.Coin, network model.Network, txid string, index uint32) string {
	return fmt.Sprintf("%s:%s:%s:%s:%d", keyPrefix, coin, network, txid, index)
}

func decodeOutput(raw []byte) (model.Output, error) {
	var out model.Output
	if err := json.Unmarshal(raw, &out); err != nil {
		return model.Output{}, fmt.Errorf("decode cached output: %w", err)
	}
	return out, nil
}
