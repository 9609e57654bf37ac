package domain

import "strings"

// Side is the direction of an order.
type Side string

const (
	SideBuy  Side = "BUY"
	SideSell Side = "SELL"
)

func (s Side) String() string { return string(s) }
func (s Side) Valid() bool    { return s == SideBuy || s == SideSell }

func ParseSide(s string) (Side, bool) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "BUY":
		return SideBuy, true
	case "SELL":
		return SideSell, true
	default:
		return "", false
	}
}

// OrderType distinguishes market orders from limit orders.
type OrderType string

const (
	OrderTypeMarket OrderType = "MARKET"
	OrderTypeLimit  OrderType = "LIMIT"
)

func (t OrderType) String() string { return string(t) }
func (t OrderType) Valid() bool    { return t == OrderTypeMarket || t == OrderTypeLimit }

func ParseOrderType(s string) (OrderType, bool) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "MARKET":
		return OrderTypeMarket, true
	case "LIMIT":
		return OrderTypeLimit, true
	default:
		return "", false
	}
}

// OrderStatus is the lifecycle state of an order. Transitions only move
// forward: NEW → PLACED → EXECUTED or NEW → PLACED → CANCELLED.
type OrderStatus string

const (
	StatusNew       OrderStatus = "NEW"
	StatusPlaced    OrderStatus = "PLACED"
	StatusExecuted  OrderStatus = "EXECUTED"
	StatusCancelled OrderStatus = "CANCELLED"
)

func (s OrderStatus) String() string { return string(s) }

// Terminal reports whether no further transition is allowed from s.
func (s OrderStatus) Terminal() bool {
	return s == StatusExecuted || s == StatusCancelled
}

// CanTransition reports whether moving from s to next is a legal forward
// step in the order lifecycle.
func (s OrderStatus) CanTransition(next OrderStatus) bool {
	switch s {
	case StatusNew:
		return next == StatusPlaced
	case StatusPlaced:
		return next == StatusExecuted || next == StatusCancelled
	default:
		return false
	}
}

// InstrumentType classifies a catalog instrument.
type InstrumentType string

const (
	InstrumentEquity InstrumentType = "EQUITY"
)

func (t InstrumentType) Valid() bool { return t == InstrumentEquity }
