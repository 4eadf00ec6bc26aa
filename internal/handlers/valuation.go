package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/ltnguyen/folio/internal/models"
	"github.com/ltnguyen/folio/internal/services"
	"github.com/ltnguyen/folio/internal/store"
)

// ValuationHandler exposes the valuation engine over HTTP. It only
// assembles in-memory collections and shapes responses; pricing logic
// lives in the service.
type ValuationHandler struct {
	service services.ValuationService
	store   *store.Store
	logger  *zap.Logger
}

// NewValuationHandler creates a new valuation handler
func NewValuationHandler(service services.ValuationService, st *store.Store, logger *zap.Logger) *ValuationHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ValuationHandler{service: service, store: st, logger: logger}
}

type valuationRequest struct {
	BaseCurrency string                         `json:"base_currency"`
	Holdings     []*models.Holding              `json:"holdings"`
	Prices       map[string]*models.MarketPrice `json:"prices"`
}

type valuationResponse struct {
	BaseCurrency string                   `json:"base_currency"`
	Rows         []*models.AssetValuation `json:"rows"`
	Gaps         []*models.PriceGap       `json:"gaps,omitempty"`
}

// HandleValuate handles POST /api/valuation with caller-supplied
// holdings and a price snapshot
func (h *ValuationHandler) HandleValuate(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req valuationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}
	if req.BaseCurrency == "" {
		req.BaseCurrency = models.CurrencyUSD
	}
	for _, holding := range req.Holdings {
		if err := holding.Validate(); err != nil {
			http.Error(w, "Invalid holding: "+err.Error(), http.StatusBadRequest)
			return
		}
	}

	rows, gaps := h.service.Valuate(req.Holdings, req.Prices, req.BaseCurrency)

	json.NewEncoder(w).Encode(&valuationResponse{
		BaseCurrency: req.BaseCurrency,
		Rows:         rows,
		Gaps:         gaps,
	})
}

// HandleAccountValuation handles GET /api/accounts/{id}/valuation using
// the stored holdings and the current price snapshot
func (h *ValuationHandler) HandleAccountValuation(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	accountID := mux.Vars(r)["id"]

	baseCurrency := r.URL.Query().Get("base")
	if baseCurrency == "" {
		baseCurrency = models.CurrencyUSD
	}

	holdings, err := h.store.ListHoldings(r.Context(), accountID)
	if err != nil {
		h.logger.Error("failed to load holdings", zap.String("account", accountID), zap.Error(err))
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	prices, err := h.store.PriceSnapshot(r.Context())
	if err != nil {
		h.logger.Error("failed to load price snapshot", zap.Error(err))
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	rows, gaps := h.service.Valuate(holdings, prices, baseCurrency)

	json.NewEncoder(w).Encode(&valuationResponse{
		BaseCurrency: baseCurrency,
		Rows:         rows,
		Gaps:         gaps,
	})
}
