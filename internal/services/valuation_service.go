package services

import (
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/ltnguyen/folio/internal/models"
)

// invertedRateScale is the precision forex quotes are rounded to when
// derived by inverting the reverse pair. Direct quotes keep full precision.
const invertedRateScale = 4

var one = decimal.NewFromInt(1)

// valuationService implements the ValuationService interface
type valuationService struct {
	logger *zap.Logger
}

// NewValuationService creates a new valuation service
func NewValuationService(logger *zap.Logger) ValuationService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &valuationService{logger: logger}
}

// Valuate computes the value of every holding in baseCurrency. Missing
// market data never aborts the batch: the affected row degrades to zero
// (forex path) or stays in USD terms (missing USD cross rate), and the
// degradation is reported as a PriceGap alongside the result.
func (s *valuationService) Valuate(holdings []*models.Holding, prices map[string]*models.MarketPrice, baseCurrency string) ([]*models.AssetValuation, []*models.PriceGap) {
	rows := make([]*models.AssetValuation, 0, len(holdings))
	var gaps []*models.PriceGap

	for _, h := range holdings {
		price, gap := s.resolvePrice(h, prices, baseCurrency)
		if gap != nil {
			gaps = append(gaps, gap)
			s.logger.Warn("degraded valuation for holding",
				zap.String("asset", h.AssetName),
				zap.String("symbol", h.Symbol),
				zap.String("asset_type", string(h.AssetType)),
				zap.String("base_currency", baseCurrency),
				zap.String("reason", gap.Reason))
		}

		rows = append(rows, &models.AssetValuation{
			AssetName:                h.AssetName,
			Symbol:                   h.Symbol,
			AssetType:                h.AssetType,
			Quantity:                 h.TotalBalance,
			PriceInBaseCurrency:      price,
			TotalValueInBaseCurrency: price.Mul(h.TotalBalance),
		})
	}

	return rows, gaps
}

func (s *valuationService) resolvePrice(h *models.Holding, prices map[string]*models.MarketPrice, baseCurrency string) (decimal.Decimal, *models.PriceGap) {
	if h.AssetType == models.AssetTypeForex {
		return s.resolveForexPrice(h, prices, baseCurrency)
	}

	quote, ok := prices[models.PriceKey(h.Symbol, h.AssetType)]
	if !ok {
		return decimal.Zero, newGap(h, models.GapReasonMissingPrice)
	}
	if baseCurrency == models.CurrencyUSD {
		return quote.Price, nil
	}

	// Non-forex quotes are in USD, so converting to another base always
	// crosses through the USD/{base} pair. A missing cross rate keeps the
	// USD figure rather than zeroing it.
	cross, ok := prices[models.ForexPairKey(models.CurrencyUSD, baseCurrency)]
	if !ok {
		return quote.Price, newGap(h, models.GapReasonMissingUSDCross)
	}
	return quote.Price.Mul(cross.Price), nil
}

// resolveForexPrice values a holding that is itself a currency:
// identity if the symbol is the base currency, then the direct pair,
// then the inverted reverse pair, then zero.
func (s *valuationService) resolveForexPrice(h *models.Holding, prices map[string]*models.MarketPrice, baseCurrency string) (decimal.Decimal, *models.PriceGap) {
	if h.Symbol == baseCurrency {
		return one, nil
	}

	if direct, ok := prices[models.ForexPairKey(h.Symbol, baseCurrency)]; ok {
		return direct.Price, nil
	}

	if reverse, ok := prices[models.ForexPairKey(baseCurrency, h.Symbol)]; ok && !reverse.Price.IsZero() {
		return one.Div(reverse.Price).Round(invertedRateScale), nil
	}

	return decimal.Zero, newGap(h, models.GapReasonMissingForexPair)
}

func newGap(h *models.Holding, reason string) *models.PriceGap {
	return &models.PriceGap{
		AssetName: h.AssetName,
		Symbol:    h.Symbol,
		AssetType: h.AssetType,
		Reason:    reason,
	}
}
