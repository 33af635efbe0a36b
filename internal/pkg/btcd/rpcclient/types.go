package rpcclient

import (
	"encoding/json"
	"time"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// RPCMetrics records metrics for RPC calls.
	RPCMetrics interface {
		Observe(method string, err error, started time.Time)
	}
	// RawClient issues one JSON-RPC request and returns its result field.
	// *rpcclient.Client from btcd satisfies it.
	RawClient interface {
		RawRequest(method string, params []json.RawMessage) (json.RawMessage, error)
	}
)
