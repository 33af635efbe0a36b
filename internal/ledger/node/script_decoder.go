package node

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/btcjson"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/txscript"
	"github.com/goodnatureofminers/blockinsight7000-ledger/internal/ledger/model"
)

// scriptDecoder extracts the first address of a ScriptPubKey result.
// params is nil for chains btcd has no parameters for; the script itself is then never parsed.
type scriptDecoder struct {
	params *chaincfg.Params
}

// NewScriptDecoder initializes a decoder for coin and network.
func NewScriptDecoder(coin model.Coin, network model.Network) (ScriptDecoder, error) {
	if coin != model.BTC {
		return &scriptDecoder{}, nil
	}
	params, err := chainParamsForNetwork(network)
	if err != nil {
		return nil, err
	}
	return &scriptDecoder{params: params}, nil
}

// DecodeAddress returns the first listed address. Multi-address outputs are not split.
func (d *scriptDecoder) DecodeAddress(vout btcjson.Vout) (string, error) {
	if len(vout.ScriptPubKey.Addresses) > 0 {
		return vout.ScriptPubKey.Addresses[0], nil
	}
	if vout.ScriptPubKey.Address != "" {
		return vout.ScriptPubKey.Address, nil
	}
	if d.params == nil || vout.ScriptPubKey.Hex == "" {
		return "", nil
	}

	scriptBytes, err := hex.DecodeString(vout.ScriptPubKey.Hex)
	if err != nil {
		return "", err
	}
	_, addrs, _, err := txscript.ExtractPkScriptAddrs(scriptBytes, d.params)
	if err != nil {
		return "", err
	}
	if len(addrs) == 0 {
		return "", nil
	}
	return addrs[0].EncodeAddress(), nil
}

func chainParamsForNetwork(network model.Network) (*chaincfg.Params, error) {
	switch strings.ToLower(string(network)) {
	case "main", "mainnet", "bitcoin":
		return &chaincfg.MainNetParams, nil
	case "testnet", "testnet3":
		return &chaincfg.TestNet3Params, nil
	case "regtest":
		return &chaincfg.RegressionNetParams, nil
	case "signet":
		return &chaincfg.SigNetParams, nil
	default:
		return nil, fmt.Errorf("unsupported network %q", network)
	}
}
