package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/ltnguyen/folio/internal/models"
	"github.com/ltnguyen/folio/internal/services"
	"github.com/ltnguyen/folio/internal/store"
)

// LedgerHandler exposes the ledger engine over HTTP
type LedgerHandler struct {
	store  *store.Store
	logger *zap.Logger
}

// NewLedgerHandler creates a new ledger handler
func NewLedgerHandler(st *store.Store, logger *zap.Logger) *LedgerHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LedgerHandler{store: st, logger: logger}
}

type ledgerRequest struct {
	Transactions    []*models.Transaction      `json:"transactions"`
	OpeningBalances map[string]decimal.Decimal `json:"opening_balances"`
}

type ledgerResponse struct {
	Entries         []*models.LedgerEntry      `json:"entries"`
	ClosingBalances map[string]decimal.Decimal `json:"closing_balances"`
	Assets          []string                   `json:"assets"`
}

// HandleBuildLedger handles POST /api/ledger with caller-supplied
// transactions and optional opening balances
func (h *LedgerHandler) HandleBuildLedger(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req ledgerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}
	for _, tx := range req.Transactions {
		if err := tx.Validate(); err != nil {
			http.Error(w, "Invalid transaction: "+err.Error(), http.StatusBadRequest)
			return
		}
	}

	h.respondWithLedger(w, req.Transactions, req.OpeningBalances)
}

// HandleAccountLedger handles GET /api/accounts/{id}/ledger using the
// stored transactions
func (h *LedgerHandler) HandleAccountLedger(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	accountID := mux.Vars(r)["id"]

	txs, err := h.store.ListTransactions(r.Context(), accountID)
	if err != nil {
		h.logger.Error("failed to load transactions", zap.String("account", accountID), zap.Error(err))
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	h.respondWithLedger(w, txs, nil)
}

// HandleCreateTransactions handles POST /api/transactions, ingesting a
// batch of raw transactions
func (h *LedgerHandler) HandleCreateTransactions(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var txs []*models.Transaction
	if err := json.NewDecoder(r.Body).Decode(&txs); err != nil {
		http.Error(w, "Invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}
	if len(txs) == 0 {
		http.Error(w, "No transactions provided", http.StatusBadRequest)
		return
	}

	if err := h.store.SaveTransactions(r.Context(), txs); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(txs)
}

func (h *LedgerHandler) respondWithLedger(w http.ResponseWriter, txs []*models.Transaction, opening map[string]decimal.Decimal) {
	ledger := services.NewLedger(txs, opening)
	ledger.FillBalances()

	closing, err := ledger.ClosingBalances()
	if err != nil {
		// Unreachable after FillBalances; surface it loudly if it happens.
		h.logger.Error("closing balances unavailable", zap.Error(err))
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	json.NewEncoder(w).Encode(&ledgerResponse{
		Entries:         ledger.Entries(),
		ClosingBalances: closing,
		Assets:          ledger.Assets(),
	})
}
