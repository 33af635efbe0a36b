// Package memory is a process-local Ledger Store used by tests and --store=memory.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/goodnatureofminers/blockinsight7000-ledger/internal/ledger/model"
	"github.com/goodnatureofminers/blockinsight7000-ledger/internal/ledger/repository"
)

type scope struct {
	coin    model.Coin
	network model.Network
}

// Store keeps blocks and addresses in maps guarded by one mutex.
type Store struct {
	mu        sync.Mutex
	blocks    map[scope]map[uint64]model.Block
	addresses map[scope]map[string]model.Address
	now       func() time.Time
}

// NewStore returns an empty Store.
func NewStore() *Store {
	return &Store{
		blocks:    make(map[scope]map[uint64]model.Block),
		addresses: make(map[scope]map[string]model.Address),
		now:       time.Now,
	}
}

func (s *Store) InsertBlock(_ context.Context, block model.Block) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := scope{block.Coin, block.Network}
	byHeight, ok := s.blocks[key]
	if !ok {
		byHeight = make(map[uint64]model.Block)
		s.blocks[key] = byHeight
	}
	if _, dup := byHeight[block.Height]; dup {
		return fmt.Errorf("insert block %d: %w", block.Height, repository.ErrDuplicateBlock)
	}
	if block.RecordedAt.IsZero() {
		block.RecordedAt = s.now().UTC()
	}
	byHeight[block.Height] = block
	return nil
}

func (s *Store) DeleteBlocksFrom(_ context.Context, coin model.Coin, network model.Network, height uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for h := range s.blocks[scope{coin, network}] {
		if h >= height {
			delete(s.blocks[scope{coin, network}], h)
		}
	}
	return nil
}

func (s *Store) MaxBlock(_ context.Context, coin model.Coin, network model.Network) (model.Block, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var (
		top   model.Block
		found bool
	)
	for h, b := range s.blocks[scope{coin, network}] {
		if !found || h > top.Height {
			top, found = b, true
		}
	}
	return top, found, nil
}

func (s *Store) MaxContiguousBlockHeight(_ context.Context, coin model.Coin, network model.Network, from uint64) (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	byHeight := s.blocks[scope{coin, network}]
	height := from
	for {
		if _, ok := byHeight[height+1]; !ok {
			return height, nil
		}
		height++
	}
}

func (s *Store) MissingBlockHeights(_ context.Context, coin model.Coin, network model.Network, from, to, limit uint64) ([]uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	byHeight := s.blocks[scope{coin, network}]
	var heights []uint64
	for h := from + 1; h <= to && uint64(len(heights)) < limit; h++ {
		if _, ok := byHeight[h]; !ok {
			heights = append(heights, h)
		}
	}
	return heights, nil
}

func (s *Store) IncrementAddress(_ context.Context, coin model.Coin, network model.Network, address string, balanceDelta, receivedDelta decimal.Decimal) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := scope{coin, network}
	byAddress, ok := s.addresses[key]
	if !ok {
		byAddress = make(map[string]model.Address)
		s.addresses[key] = byAddress
	}
	entry, ok := byAddress[address]
	if !ok {
		entry = model.Address{Coin: coin, Network: network, Address: address}
	}
	entry.Balance = entry.Balance.Add(balanceDelta)
	entry.TotalReceived = entry.TotalReceived.Add(receivedDelta)
	byAddress[address] = entry
	return nil
}

func (s *Store) Address(_ context.Context, coin model.Coin, network model.Network, address string) (model.Address, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.addresses[scope{coin, network}][address]
	return entry, ok, nil
}

// Heights returns every recorded height in ascending order.
func (s *Store) Heights(coin model.Coin, network model.Network) []uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	heights := make([]uint64, 0, len(s.blocks[scope{coin, network}]))
	for h := range s.blocks[scope{coin, network}] {
		heights = append(heights, h)
	}
	sort.Slice(heights, func(i, j int) bool { return heights[i] < heights[j] })
	return heights
}
