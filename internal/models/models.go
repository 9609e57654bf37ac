package models

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/AaravAsthana/Bajaj-SDK/internal/domain"
)

// Instrument is a tradeable listing. The catalog is seeded once at startup
// and instruments are immutable for the process lifetime.
type Instrument struct {
	Symbol          string                `json:"symbol"`
	Exchange        string                `json:"exchange"`
	InstrumentType  domain.InstrumentType `json:"instrument_type"`
	LastTradedPrice decimal.Decimal       `json:"last_traded_price"`
}

// Order is a client instruction to buy or sell. Price carries the limit
// price for LIMIT orders; for MARKET orders it is set to the instrument's
// last traded price at placement.
type Order struct {
	OrderID   string             `json:"order_id"`
	Symbol    string             `json:"symbol"`
	Side      domain.Side        `json:"side"`
	OrderType domain.OrderType   `json:"order_type"`
	Quantity  int64              `json:"quantity"`
	Price     decimal.Decimal    `json:"price"`
	Status    domain.OrderStatus `json:"status"`
	CreatedAt time.Time          `json:"created_at"`
}

// Trade is an executed fill. Exactly one trade exists per executed order;
// trades are append-only and never mutated.
type Trade struct {
	TradeID    string          `json:"trade_id"`
	OrderID    string          `json:"order_id"`
	Symbol     string          `json:"symbol"`
	Side       domain.Side     `json:"side"`
	Quantity   int64           `json:"quantity"`
	Price      decimal.Decimal `json:"price"`
	ExecutedAt time.Time       `json:"executed_at"`
}

// Holding is the derived position for one symbol: open quantity, the
// volume-weighted average cost of that quantity, and its value at the
// instrument's current last traded price.
type Holding struct {
	Symbol       string          `json:"symbol"`
	Quantity     int64           `json:"quantity"`
	AveragePrice decimal.Decimal `json:"average_price"`
	CurrentValue decimal.Decimal `json:"current_value"`
}
