package models

import (
	"errors"

	"github.com/shopspring/decimal"
)

// AssetType classifies an instrument for market-data lookups
type AssetType string

// Supported asset classes
const (
	AssetTypeStock     AssetType = "STOCK"
	AssetTypeCrypto    AssetType = "CRYPTO"
	AssetTypeForex     AssetType = "FOREX"
	AssetTypeCommodity AssetType = "COMMODITY"
	AssetTypeBond      AssetType = "BOND"
)

// Common currencies
const (
	CurrencyUSD = "USD"
	CurrencyEUR = "EUR"
	CurrencyVND = "VND"
	CurrencyGBP = "GBP"
	CurrencyJPY = "JPY"
)

// AssetIdentity ties the portfolio-level asset name to the key used for
// market prices. Within one account a name maps to exactly one
// (symbol, type) pair at any given time.
type AssetIdentity struct {
	Name   string    `json:"name"`
	Symbol string    `json:"symbol"`
	Type   AssetType `json:"type"`
}

// Holding represents the current position of one asset in an account
type Holding struct {
	AccountID    string          `json:"account_id" gorm:"column:account_id;type:varchar(255);primaryKey"`
	AssetName    string          `json:"asset_name" gorm:"column:asset_name;type:varchar(255);primaryKey"`
	Symbol       string          `json:"symbol" gorm:"column:symbol;type:varchar(50);not null"`
	AssetType    AssetType       `json:"asset_type" gorm:"column:asset_type;type:varchar(20);not null"`
	Unit         string          `json:"unit" gorm:"column:unit;type:varchar(50)"`
	TotalBalance decimal.Decimal `json:"total_balance" gorm:"column:total_balance;type:decimal(30,18);not null"`
}

// TableName returns the table name for the Holding model
func (Holding) TableName() string {
	return "holdings"
}

// Identity returns the asset identity of the holding
func (h *Holding) Identity() AssetIdentity {
	return AssetIdentity{Name: h.AssetName, Symbol: h.Symbol, Type: h.AssetType}
}

// Validate validates the holding data
func (h *Holding) Validate() error {
	if h.AccountID == "" {
		return errors.New("account_id is required")
	}
	if h.AssetName == "" {
		return errors.New("asset_name is required")
	}
	if h.Symbol == "" {
		return errors.New("symbol is required")
	}
	if h.AssetType == "" {
		return errors.New("asset_type is required")
	}
	return nil
}

// MarketPrice is a point-in-time quote for one symbol. Non-forex prices
// are quoted in USD; forex symbols carry the pair as "BASE/QUOTE".
type MarketPrice struct {
	Symbol    string          `json:"symbol" gorm:"column:symbol;type:varchar(50);primaryKey"`
	AssetType AssetType       `json:"asset_type" gorm:"column:asset_type;type:varchar(20);primaryKey"`
	Price     decimal.Decimal `json:"price" gorm:"column:price;type:decimal(30,18);not null"`
}

// TableName returns the table name for the MarketPrice model
func (MarketPrice) TableName() string {
	return "market_prices"
}

// Key returns the snapshot lookup key for the price
func (p *MarketPrice) Key() string {
	return PriceKey(p.Symbol, p.AssetType)
}

// Validate validates the market price data
func (p *MarketPrice) Validate() error {
	if p.Symbol == "" {
		return errors.New("symbol is required")
	}
	if p.AssetType == "" {
		return errors.New("asset_type is required")
	}
	if p.Price.IsNegative() {
		return errors.New("price must be non-negative")
	}
	return nil
}

// AssetValuation is one row of a portfolio valuation, expressed in the
// requested base currency. It is a computed view and is never persisted.
type AssetValuation struct {
	AssetName                string          `json:"asset_name"`
	Symbol                   string          `json:"symbol"`
	AssetType                AssetType       `json:"asset_type"`
	Quantity                 decimal.Decimal `json:"quantity"`
	PriceInBaseCurrency      decimal.Decimal `json:"price_in_base_currency"`
	TotalValueInBaseCurrency decimal.Decimal `json:"total_value_in_base_currency"`
}

// Reasons a valuation row was degraded
const (
	GapReasonMissingPrice     = "missing_price"
	GapReasonMissingForexPair = "missing_forex_pair"
	GapReasonMissingUSDCross  = "missing_usd_cross_rate"
)

// PriceGap reports a single holding whose value was degraded because
// market data was absent from the snapshot. Gaps are warnings, not
// errors; the valuation batch always completes.
type PriceGap struct {
	AssetName string    `json:"asset_name"`
	Symbol    string    `json:"symbol"`
	AssetType AssetType `json:"asset_type"`
	Reason    string    `json:"reason"`
}
