package node

import (
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/btcjson"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/goodnatureofminers/blockinsight7000-ledger/internal/ledger/model"
	"github.com/shopspring/decimal"
)

// coinExponent is the number of decimal places of one coin unit.
const coinExponent = -8

// CoinsToDecimal converts a node amount to an exact decimal rounded to the smallest unit.
func CoinsToDecimal(value float64) (decimal.Decimal, error) {
	amt, err := btcutil.NewAmount(value)
	if err != nil {
		return decimal.Zero, err
	}
	if amt < 0 {
		return decimal.Zero, fmt.Errorf("negative amount: %d", amt)
	}
	return decimal.New(int64(amt), coinExponent), nil
}

// OutputConverter reduces decoded outputs to ledger outputs.
type OutputConverter struct {
	decoder ScriptDecoder
}

// NewOutputConverter constructs a converter using decoder for address selection.
func NewOutputConverter(decoder ScriptDecoder) *OutputConverter {
	return &OutputConverter{decoder: decoder}
}

// Outputs converts every output of tx. Outputs with an unusable value or script are left
// out and reported in the joined error; the rest are still returned.
func (c *OutputConverter) Outputs(tx btcjson.TxRawResult) ([]model.Output, error) {
	outputs := make([]model.Output, 0, len(tx.Vout))
	var errs []error
	for _, vout := range tx.Vout {
		value, err := CoinsToDecimal(vout.Value)
		if err != nil {
			errs = append(errs, fmt.Errorf("tx %s output %d value: %w", tx.Txid, vout.N, err))
			continue
		}
		address, err := c.decoder.DecodeAddress(vout)
		if err != nil {
			errs = append(errs, fmt.Errorf("decode address for tx %s output %d: %w", tx.Txid, vout.N, err))
			continue
		}
		outputs = append(outputs, model.Output{
			TxID:    tx.Txid,
			Index:   vout.N,
			Address: address,
			Value:   value,
		})
	}
	return outputs, errors.Join(errs...)
}
