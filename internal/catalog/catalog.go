package catalog

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/AaravAsthana/Bajaj-SDK/internal/domain"
	"github.com/AaravAsthana/Bajaj-SDK/internal/models"
)

// Catalog is the read-only instrument table. It is built once at startup
// and safe for concurrent reads without locking.
type Catalog struct {
	bySymbol map[string]models.Instrument
	ordered  []models.Instrument
}

// New builds a catalog from the given instruments, ordered by symbol.
func New(instruments []models.Instrument) *Catalog {
	c := &Catalog{
		bySymbol: make(map[string]models.Instrument, len(instruments)),
		ordered:  make([]models.Instrument, len(instruments)),
	}
	copy(c.ordered, instruments)
	sort.Slice(c.ordered, func(i, j int) bool { return c.ordered[i].Symbol < c.ordered[j].Symbol })
	for _, in := range c.ordered {
		c.bySymbol[in.Symbol] = in
	}
	return c
}

// NewDefault returns the catalog seeded with the mock NSE equity table.
func NewDefault() *Catalog {
	return New(seed())
}

// List returns all instruments ordered by symbol.
func (c *Catalog) List() []models.Instrument {
	out := make([]models.Instrument, len(c.ordered))
	copy(out, c.ordered)
	return out
}

// Get looks up a single instrument by symbol.
func (c *Catalog) Get(symbol string) (models.Instrument, error) {
	in, ok := c.bySymbol[symbol]
	if !ok {
		return models.Instrument{}, domain.ErrInstrumentNotFound
	}
	return in, nil
}

func seed() []models.Instrument {
	price := func(s string) decimal.Decimal {
		d, _ := decimal.NewFromString(s)
		return d
	}
	mk := func(symbol, ltp string) models.Instrument {
		return models.Instrument{
			Symbol:          symbol,
			Exchange:        "NSE",
			InstrumentType:  domain.InstrumentEquity,
			LastTradedPrice: price(ltp),
		}
	}
	return []models.Instrument{
		mk("RELIANCE", "2450.75"),
		mk("TCS", "3567.50"),
		mk("INFY", "1520.40"),
		mk("HDFCBANK", "1493.30"),
		mk("ICICIBANK", "1088.65"),
		mk("SBIN", "818.90"),
		mk("WIPRO", "470.15"),
		mk("ITC", "435.60"),
	}
}
