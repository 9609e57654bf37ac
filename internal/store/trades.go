package store

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/shopspring/decimal"

	"github.com/AaravAsthana/Bajaj-SDK/internal/models"
)

// TradeLedger is the append-only record of executed trades. Entries are
// immutable once appended and listed in execution order.
type TradeLedger struct {
	mu   sync.RWMutex
	seq  atomic.Int64
	rows []models.Trade
}

func NewTradeLedger() *TradeLedger {
	return &TradeLedger{}
}

// Append records the fill for an executed order at the given execution
// price and returns the new trade. Called only by the execution engine.
func (l *TradeLedger) Append(o models.Order, price decimal.Decimal) models.Trade {
	now := time.Now().UTC()
	if now.Before(o.CreatedAt) {
		now = o.CreatedAt
	}
	t := models.Trade{
		TradeID:    fmt.Sprintf("TRD-%d", l.seq.Add(1)),
		OrderID:    o.OrderID,
		Symbol:     o.Symbol,
		Side:       o.Side,
		Quantity:   o.Quantity,
		Price:      price,
		ExecutedAt: now,
	}
	l.mu.Lock()
	l.rows = append(l.rows, t)
	l.mu.Unlock()
	return t
}

// List returns trades in execution order. A positive limit restricts the
// result to the most recent entries, still oldest first.
func (l *TradeLedger) List(limit int) []models.Trade {
	l.mu.RLock()
	defer l.mu.RUnlock()
	rows := l.rows
	if limit > 0 && len(rows) > limit {
		rows = rows[len(rows)-limit:]
	}
	out := make([]models.Trade, len(rows))
	copy(out, rows)
	return out
}

// Len reports the number of trades in the ledger.
func (l *TradeLedger) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.rows)
}
