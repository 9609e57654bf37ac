package engine

import (
	"sync"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/AaravAsthana/Bajaj-SDK/internal/catalog"
	"github.com/AaravAsthana/Bajaj-SDK/internal/domain"
	"github.com/AaravAsthana/Bajaj-SDK/internal/models"
	"github.com/AaravAsthana/Bajaj-SDK/internal/portfolio"
	"github.com/AaravAsthana/Bajaj-SDK/internal/store"
)

// Engine is the single entry point for all state mutation. One mutex
// spans the whole place path so that order creation, trade append, and
// the holdings update are atomic with respect to each other.
type Engine struct {
	mu        sync.Mutex
	catalog   *catalog.Catalog
	orders    *store.OrderStore
	ledger    *store.TradeLedger
	portfolio *portfolio.Aggregator
	logger    *zap.Logger
}

// PlaceRequest carries an already-parsed order instruction. Price is the
// limit price and ignored for MARKET orders.
type PlaceRequest struct {
	Symbol    string
	Side      domain.Side
	OrderType domain.OrderType
	Quantity  int64
	Price     decimal.Decimal
}

// Result is the outcome of a successful Place call. Trade is nil when a
// LIMIT order rested as PLACED instead of executing.
type Result struct {
	Order models.Order
	Trade *models.Trade
}

func New(c *catalog.Catalog, orders *store.OrderStore, ledger *store.TradeLedger, pf *portfolio.Aggregator, logger *zap.Logger) *Engine {
	return &Engine{
		catalog:   c,
		orders:    orders,
		ledger:    ledger,
		portfolio: pf,
		logger:    logger,
	}
}

// Place validates and executes an order request. Validation runs fully
// before any mutation, so a rejected request leaves no trace. MARKET
// orders fill at the instrument's last traded price. LIMIT orders fill
// immediately when the price condition holds against the last traded
// price; otherwise the order rests as PLACED with no trade (there is no
// background matching, so it rests indefinitely).
func (e *Engine) Place(req PlaceRequest) (Result, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if req.Quantity <= 0 {
		return Result{}, domain.Validation("quantity", "must be a positive integer")
	}
	in, err := e.catalog.Get(req.Symbol)
	if err != nil {
		return Result{}, err
	}
	if req.OrderType == domain.OrderTypeLimit && !req.Price.IsPositive() {
		return Result{}, domain.Validation("price", "limit orders require a positive price")
	}
	if req.Side == domain.SideSell && e.portfolio.Quantity(req.Symbol) < req.Quantity {
		return Result{}, domain.ErrInsufficientHoldings
	}

	ltp := in.LastTradedPrice
	orderPrice := req.Price
	if req.OrderType == domain.OrderTypeMarket {
		orderPrice = ltp
	}

	ord := e.orders.Create(req.Symbol, req.Side, req.OrderType, req.Quantity, orderPrice, domain.StatusPlaced)

	if !executable(req, ltp) {
		e.logger.Info("order resting",
			zap.String("order_id", ord.OrderID),
			zap.String("symbol", ord.Symbol),
			zap.String("limit_price", req.Price.String()),
			zap.String("last_traded_price", ltp.String()),
		)
		return Result{Order: ord}, nil
	}

	ord, err = e.orders.SetStatus(ord.OrderID, domain.StatusExecuted)
	if err != nil {
		return Result{}, err
	}
	trade := e.ledger.Append(ord, ltp)
	e.portfolio.Apply(trade)

	e.logger.Info("order executed",
		zap.String("order_id", ord.OrderID),
		zap.String("trade_id", trade.TradeID),
		zap.String("symbol", trade.Symbol),
		zap.String("side", trade.Side.String()),
		zap.Int64("quantity", trade.Quantity),
		zap.String("price", trade.Price.String()),
	)
	return Result{Order: ord, Trade: &trade}, nil
}

// executable decides whether the request fills now at the last traded
// price. MARKET always fills; BUY LIMIT fills when ltp <= limit, SELL
// LIMIT when ltp >= limit.
func executable(req PlaceRequest, ltp decimal.Decimal) bool {
	if req.OrderType == domain.OrderTypeMarket {
		return true
	}
	if req.Side == domain.SideBuy {
		return ltp.LessThanOrEqual(req.Price)
	}
	return ltp.GreaterThanOrEqual(req.Price)
}
