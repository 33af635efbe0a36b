package model

type Coin string
type Network string

var (
	DOGE Coin = "DOGE"
	BTC  Coin = "BTC"
	LTC  Coin = "LTC"
)

var (
	Testnet Network = "testnet"
	Mainnet Network = "mainnet"
	Regtest Network = "regtest"
)
