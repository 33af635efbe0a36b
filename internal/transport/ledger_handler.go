// Package transport exposes the address ledger over HTTP.
package transport

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/blockinsight7000-ledger/internal/ledger/model"
)

// LedgerHandler serves read-only ledger queries. Requests default to the configured coin and
// network; the coin and network query parameters select another scope.
type LedgerHandler struct {
	reader  LedgerReader
	coin    model.Coin
	network model.Network
	logger  *zap.Logger
}

// NewLedgerHandler returns a LedgerHandler instance.
func NewLedgerHandler(reader LedgerReader, coin model.Coin, network model.Network, logger *zap.Logger) *LedgerHandler {
	return &LedgerHandler{
		reader:  reader,
		coin:    coin,
		network: network,
		logger:  logger.Named("ledgerHandler"),
	}
}

type addressResponse struct {
	Coin          model.Coin      `json:"coin"`
	Network       model.Network   `json:"network"`
	Address       string          `json:"address"`
	Balance       decimal.Decimal `json:"balance"`
	TotalReceived decimal.Decimal `json:"total_received"`
}

type tipResponse struct {
	Coin       model.Coin    `json:"coin"`
	Network    model.Network `json:"network"`
	Height     uint64        `json:"height"`
	Hash       string        `json:"hash"`
	RecordedAt time.Time     `json:"recorded_at"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Register mounts the handler's routes on router.
func (h *LedgerHandler) Register(router *mux.Router) {
	router.HandleFunc("/v1/addresses/{address}", h.Address).Methods(http.MethodGet)
	router.HandleFunc("/v1/blocks/tip", h.Tip).Methods(http.MethodGet)
	router.HandleFunc("/healthz", h.Health).Methods(http.MethodGet)
}

// Address reports the balance and total received of one address.
// Unknown addresses are reported with zero amounts.
func (h *LedgerHandler) Address(w http.ResponseWriter, r *http.Request) {
	address := mux.Vars(r)["address"]
	if address == "" {
		h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "address is required"})
		return
	}
	coin, network := h.scope(r)

	entry, found, err := h.reader.Address(r.Context(), coin, network, address)
	if err != nil {
		h.logger.Error("load address failed", zap.String("address", address), zap.Error(err))
		h.writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "ledger unavailable"})
		return
	}
	if !found {
		entry = model.Address{Coin: coin, Network: network, Address: address}
	}
	h.writeJSON(w, http.StatusOK, addressResponse{
		Coin:          coin,
		Network:       network,
		Address:       address,
		Balance:       entry.Balance,
		TotalReceived: entry.TotalReceived,
	})
}

// Tip reports the highest recorded block.
func (h *LedgerHandler) Tip(w http.ResponseWriter, r *http.Request) {
	coin, network := h.scope(r)

	block, found, err := h.reader.MaxBlock(r.Context(), coin, network)
	if err != nil {
		h.logger.Error("load tip failed", zap.Error(err))
		h.writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "ledger unavailable"})
		return
	}
	if !found {
		h.writeJSON(w, http.StatusNotFound, errorResponse{Error: "no blocks recorded"})
		return
	}
	h.writeJSON(w, http.StatusOK, tipResponse{
		Coin:       coin,
		Network:    network,
		Height:     block.Height,
		Hash:       block.Hash,
		RecordedAt: block.RecordedAt.UTC(),
	})
}

// Health reports server health.
func (h *LedgerHandler) Health(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func (h *LedgerHandler) scope(r *http.Request) (model.Coin, model.Network) {
	coin, network := h.coin, h.network
	if v := r.URL.Query().Get("coin"); v != "" {
		coin = model.Coin(v)
	}
	if v := r.URL.Query().Get("network"); v != "" {
		network = model.Network(v)
	}
	return coin, network
}

func (h *LedgerHandler) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Warn("write response failed", zap.Error(err))
	}
}
