// Package model defines domain models for the address ledger.
package model

import "time"

// Block is the record of a block whose transactions have been applied to the ledger.
// At most one record exists per (coin, network, height).
type Block struct {
	Coin       Coin
	Network    Network
	Height     uint64
	Hash       string
	RecordedAt time.Time
}
