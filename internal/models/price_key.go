package models

// Price snapshot keys are a wire contract with the market-data feed.
// The exact separators and the literal FOREX token must not change.

// PriceKey returns the snapshot key for a non-forex instrument,
// formatted as "{symbol}-{assetType}".
func PriceKey(symbol string, assetType AssetType) string {
	return symbol + "-" + string(assetType)
}

// ForexPairKey returns the snapshot key for a currency pair,
// formatted as "{base}/{quote}-FOREX".
func ForexPairKey(base, quote string) string {
	return base + "/" + quote + "-" + string(AssetTypeForex)
}
