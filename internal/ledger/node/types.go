package node

import (
	"context"
	"encoding/json"

	"github.com/btcsuite/btcd/btcjson"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Caller issues one JSON-RPC call and returns its result field.
	Caller interface {
		Call(ctx context.Context, method string, params ...any) (json.RawMessage, error)
	}
	// ScriptDecoder picks the address an output pays to. An empty address with a nil
	// error means the output carries none.
	ScriptDecoder interface {
		DecodeAddress(vout btcjson.Vout) (string, error)
	}
)
