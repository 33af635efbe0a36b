// Package repository holds what the Ledger Store adapters share.
package repository

import "errors"

// ErrDuplicateBlock is returned by stores that enforce one block record per height.
var ErrDuplicateBlock = errors.New("block already recorded")
