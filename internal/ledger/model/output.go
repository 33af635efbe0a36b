package model

import "github.com/shopspring/decimal"

// Output is a transaction output reduced to what the ledger needs.
// Address is empty when the output script carries no address.
type Output struct {
	TxID    string          `json:"txid"`
	Index   uint32          `json:"index"`
	Address string          `json:"address,omitempty"`
	Value   decimal.Decimal `json:"value"`
}
