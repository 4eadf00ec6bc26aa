package services

import (
	"github.com/ltnguyen/folio/internal/models"
)

// ValuationService defines the interface for portfolio valuation. It is a
// pure computation over caller-owned snapshots; implementations perform
// no I/O and keep no state between calls.
type ValuationService interface {
	Valuate(holdings []*models.Holding, prices map[string]*models.MarketPrice, baseCurrency string) ([]*models.AssetValuation, []*models.PriceGap)
}
