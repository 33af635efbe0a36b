// Package node reads blocks and transactions from a Bitcoin-family node.
package node

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/btcjson"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/blockinsight7000-ledger/pkg/safe"
)

// Source issues typed calls over the RPC gateway.
type Source struct {
	rpc Caller
}

// NewSource creates a Source on top of rpc.
func NewSource(rpc Caller) *Source {
	return &Source{rpc: rpc}
}

// BlockCount returns the height of the node's best chain.
func (s *Source) BlockCount(ctx context.Context) (uint64, error) {
	var count int64
	if err := s.call(ctx, &count, "getblockcount"); err != nil {
		return 0, err
	}
	height, err := safe.Uint64(count)
	if err != nil {
		return 0, fmt.Errorf("block count overflow: %w", err)
	}
	return height, nil
}

// BlockHash returns the hash of the best-chain block at height.
func (s *Source) BlockHash(ctx context.Context, height uint64) (string, error) {
	h, err := safe.Int64(height)
	if err != nil {
		return "", fmt.Errorf("block height %d exceeds rpc limit: %w", height, err)
	}
	var hash string
	if err := s.call(ctx, &hash, "getblockhash", h); err != nil {
		return "", err
	}
	parsed, err := chainhash.NewHashFromStr(hash)
	if err != nil {
		return "", fmt.Errorf("parse block hash at height %d: %w", height, err)
	}
	return parsed.String(), nil
}

// Block fetches the block with hash. Transactions are returned as ids.
func (s *Source) Block(ctx context.Context, hash string) (*btcjson.GetBlockVerboseResult, error) {
	if _, err := chainhash.NewHashFromStr(hash); err != nil {
		return nil, fmt.Errorf("parse block hash %q: %w", hash, err)
	}
	var block btcjson.GetBlockVerboseResult
	if err := s.call(ctx, &block, "getblock", hash, true); err != nil {
		return nil, err
	}
	if block.Hash != hash {
		return nil, fmt.Errorf("node returned block %s for %s", block.Hash, hash)
	}
	return &block, nil
}

// Transaction fetches the raw transaction txid and decodes it on the node.
func (s *Source) Transaction(ctx context.Context, txid string) (*btcjson.TxRawResult, error) {
	var raw string
	if err := s.call(ctx, &raw, "getrawtransaction", txid); err != nil {
		return nil, err
	}
	if raw == "" {
		return nil, fmt.Errorf("empty raw transaction %s", txid)
	}
	var tx btcjson.TxRawResult
	if err := s.call(ctx, &tx, "decoderawtransaction", raw); err != nil {
		return nil, err
	}
	if tx.Txid == "" {
		tx.Txid = txid
	}
	return &tx, nil
}

func (s *Source) call(ctx context.Context, dest any, method string, params ...any) error {
	result, err := s.rpc.Call(ctx, method, params...)
	if err != nil {
		return err
	}
	if len(result) == 0 || string(result) == "null" {
		return errors.New(method + ": empty result")
	}
	if err := json.Unmarshal(result, dest); err != nil {
		return fmt.Errorf("decode %s result: %w", method, err)
	}
	return nil
}
