package cache

// InstrumentsKey names the cached instrument list in the TTL cache.
const InstrumentsKey = "instruments"

// TradesKey identifies a trades listing by its limit.
type TradesKey struct {
	Limit uint16
}

// Trades clamps limit into the key's range.
func Trades(limit int) TradesKey {
	if limit < 0 {
		limit = 0
	}
	if limit > 65535 {
		limit = 65535
	}
	return TradesKey{Limit: uint16(limit)}
}

// PortfolioKey identifies the single portfolio listing.
type PortfolioKey struct{}
