package portfolio

import (
	"sort"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/AaravAsthana/Bajaj-SDK/internal/catalog"
	"github.com/AaravAsthana/Bajaj-SDK/internal/domain"
	"github.com/AaravAsthana/Bajaj-SDK/internal/models"
)

// position is the stored part of a holding. Current value is derived at
// read time from the catalog price, never cached here.
type position struct {
	quantity     int64
	averagePrice decimal.Decimal
}

// Aggregator folds executed trades into per-symbol holdings. Mutation
// happens only through Apply, driven by the execution engine.
type Aggregator struct {
	mu      sync.RWMutex
	catalog *catalog.Catalog
	open    map[string]position
}

func New(c *catalog.Catalog) *Aggregator {
	return &Aggregator{catalog: c, open: make(map[string]position)}
}

// Apply folds one trade into the holdings. BUY re-weights the average
// cost over the combined quantity; SELL reduces quantity and leaves the
// cost basis of the remaining shares untouched. The engine guarantees a
// SELL never exceeds the open quantity.
func (a *Aggregator) Apply(t models.Trade) {
	a.mu.Lock()
	defer a.mu.Unlock()
	p := a.open[t.Symbol]
	switch t.Side {
	case domain.SideBuy:
		oldCost := p.averagePrice.Mul(decimal.NewFromInt(p.quantity))
		newCost := t.Price.Mul(decimal.NewFromInt(t.Quantity))
		total := p.quantity + t.Quantity
		p.averagePrice = oldCost.Add(newCost).Div(decimal.NewFromInt(total))
		p.quantity = total
	case domain.SideSell:
		p.quantity -= t.Quantity
	}
	a.open[t.Symbol] = p
}

// Quantity returns the open quantity for a symbol, zero when the symbol
// has never traded.
func (a *Aggregator) Quantity(symbol string) int64 {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.open[symbol].quantity
}

// Holding returns the derived holding for one symbol. Symbols with no
// trades yield a zero-quantity, zero-price holding.
func (a *Aggregator) Holding(symbol string) models.Holding {
	a.mu.RLock()
	p := a.open[symbol]
	a.mu.RUnlock()
	return a.derive(symbol, p)
}

// List returns every holding that has traded, ordered by symbol.
func (a *Aggregator) List() []models.Holding {
	a.mu.RLock()
	symbols := make([]string, 0, len(a.open))
	for sym := range a.open {
		symbols = append(symbols, sym)
	}
	positions := make(map[string]position, len(a.open))
	for sym, p := range a.open {
		positions[sym] = p
	}
	a.mu.RUnlock()

	sort.Strings(symbols)
	out := make([]models.Holding, 0, len(symbols))
	for _, sym := range symbols {
		out = append(out, a.derive(sym, positions[sym]))
	}
	return out
}

func (a *Aggregator) derive(symbol string, p position) models.Holding {
	h := models.Holding{
		Symbol:       symbol,
		Quantity:     p.quantity,
		AveragePrice: p.averagePrice,
	}
	if in, err := a.catalog.Get(symbol); err == nil {
		h.CurrentValue = in.LastTradedPrice.Mul(decimal.NewFromInt(p.quantity))
	}
	return h
}
