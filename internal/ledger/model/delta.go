package model

import "github.com/shopspring/decimal"

// Direction tells whether a delta spends from or pays to an address.
type Direction string

var (
	// Debit is produced by a transaction input spending a previous output.
	Debit Direction = "debit"
	// Credit is produced by a transaction output.
	Credit Direction = "credit"
)

// Delta is one resolved balance change of a transaction.
type Delta struct {
	TxID      string
	Address   string
	Amount    decimal.Decimal
	Direction Direction
}

// BalanceChange returns the signed amount applied to the balance.
func (d Delta) BalanceChange() decimal.Decimal {
	if d.Direction == Debit {
		return d.Amount.Neg()
	}
	return d.Amount
}

// ReceivedChange returns the amount added to total_received.
func (d Delta) ReceivedChange() decimal.Decimal {
	if d.Direction == Credit {
		return d.Amount
	}
	return decimal.Zero
}
