package model

import "github.com/shopspring/decimal"

// Address is the running ledger entry of one address.
// Balance may be negative: debits are applied independently of the credits they spend.
type Address struct {
	Coin          Coin
	Network       Network
	Address       string
	Balance       decimal.Decimal
	TotalReceived decimal.Decimal
}
