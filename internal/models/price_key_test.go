package models

import "testing"

func TestPriceKey(t *testing.T) {
	tests := []struct {
		name      string
		symbol    string
		assetType AssetType
		want      string
	}{
		{name: "stock", symbol: "AAPL", assetType: AssetTypeStock, want: "AAPL-STOCK"},
		{name: "crypto", symbol: "BTC", assetType: AssetTypeCrypto, want: "BTC-CRYPTO"},
		{name: "commodity", symbol: "XAU", assetType: AssetTypeCommodity, want: "XAU-COMMODITY"},
		{name: "bond", symbol: "US10Y", assetType: AssetTypeBond, want: "US10Y-BOND"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PriceKey(tt.symbol, tt.assetType); got != tt.want {
				t.Errorf("PriceKey(%q, %q) = %q, want %q", tt.symbol, tt.assetType, got, tt.want)
			}
		})
	}
}

func TestForexPairKey(t *testing.T) {
	tests := []struct {
		name  string
		base  string
		quote string
		want  string
	}{
		{name: "usd to eur", base: "USD", quote: "EUR", want: "USD/EUR-FOREX"},
		{name: "eur to usd", base: "EUR", quote: "USD", want: "EUR/USD-FOREX"},
		{name: "gbp to jpy", base: "GBP", quote: "JPY", want: "GBP/JPY-FOREX"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ForexPairKey(tt.base, tt.quote); got != tt.want {
				t.Errorf("ForexPairKey(%q, %q) = %q, want %q", tt.base, tt.quote, got, tt.want)
			}
		})
	}
}

func TestMarketPriceKeyMatchesPairKeyForForex(t *testing.T) {
	p := &MarketPrice{Symbol: "USD/EUR", AssetType: AssetTypeForex}
	if got, want := p.Key(), ForexPairKey("USD", "EUR"); got != want {
		t.Errorf("forex price key = %q, want %q", got, want)
	}
}
