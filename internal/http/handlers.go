package http

import (
	"errors"
	"net/http"
	"strconv"

	gin "github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/AaravAsthana/Bajaj-SDK/internal/cache"
	"github.com/AaravAsthana/Bajaj-SDK/internal/domain"
	"github.com/AaravAsthana/Bajaj-SDK/internal/engine"
	"github.com/AaravAsthana/Bajaj-SDK/internal/models"
)

// --- Helpers ---

func (s *Server) badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, apiError{Code: "bad_request", Message: msg})
}

func (s *Server) notFound(c *gin.Context, msg string) {
	c.JSON(http.StatusNotFound, apiError{Code: "not_found", Message: msg})
}

func (s *Server) internalError(c *gin.Context, where string, err error) {
	s.Logger.Error("internal_error", zap.String("where", where), zap.Error(err))
	c.JSON(http.StatusInternalServerError, apiError{Code: "internal_server_error", Message: "internal server error"})
}

func parseLimit(v string, def, min, max int) int {
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < min || n > max {
		return def
	}
	return n
}

// --- Handlers ---

func (s *Server) getInstruments(c *gin.Context) {
	if rows, ok := s.ResponseCache.Get(cache.InstrumentsKey); ok {
		c.JSON(http.StatusOK, rows)
		return
	}
	rows := s.Catalog.List()
	s.ResponseCache.Set(cache.InstrumentsKey, rows)
	c.JSON(http.StatusOK, rows)
}

type placeOrderRequest struct {
	Symbol    string           `json:"symbol" binding:"required"`
	Side      string           `json:"side" binding:"required"`
	OrderType string           `json:"order_type" binding:"required"`
	Quantity  int64            `json:"quantity"`
	Price     *decimal.Decimal `json:"price"`
}

func (s *Server) placeOrder(c *gin.Context) {
	var req placeOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.badRequest(c, "invalid order payload")
		return
	}

	side, ok := domain.ParseSide(req.Side)
	if !ok {
		s.badRequest(c, "invalid side (use BUY or SELL)")
		return
	}
	orderType, ok := domain.ParseOrderType(req.OrderType)
	if !ok {
		s.badRequest(c, "invalid order_type (use MARKET or LIMIT)")
		return
	}

	place := engine.PlaceRequest{
		Symbol:    req.Symbol,
		Side:      side,
		OrderType: orderType,
		Quantity:  req.Quantity,
	}
	if req.Price != nil {
		place.Price = *req.Price
	}

	res, err := s.Engine.Place(place)
	if err != nil {
		switch {
		case domain.IsValidation(err):
			c.JSON(http.StatusBadRequest, apiError{Code: "validation_error", Message: err.Error()})
		case errors.Is(err, domain.ErrInsufficientHoldings):
			c.JSON(http.StatusBadRequest, apiError{Code: "insufficient_holdings", Message: "sell quantity exceeds current holding"})
		case domain.IsNotFound(err):
			s.notFound(c, "unknown symbol: "+req.Symbol)
		default:
			s.internalError(c, "Place", err)
		}
		return
	}

	if res.Trade != nil {
		s.TradesCache.Clear()
		s.PortfolioCache.Clear()
		s.Publisher.Publish(c.Request.Context(), *res.Trade)
	}

	c.JSON(http.StatusCreated, res.Order)
}

func (s *Server) listOrders(c *gin.Context) {
	rows := s.Orders.List()
	if rows == nil {
		rows = []models.Order{}
	}
	c.JSON(http.StatusOK, rows)
}

func (s *Server) getOrder(c *gin.Context) {
	ord, err := s.Orders.Get(c.Param("order_id"))
	if err != nil {
		if domain.IsNotFound(err) {
			s.notFound(c, "unknown order: "+c.Param("order_id"))
			return
		}
		s.internalError(c, "GetOrder", err)
		return
	}
	c.JSON(http.StatusOK, ord)
}

func (s *Server) getTrades(c *gin.Context) {
	limit := parseLimit(c.Query("limit"), 100, 1, 1000)

	key := cache.Trades(limit)
	if rows, ok := s.TradesCache.Get(key); ok && rows != nil {
		c.JSON(http.StatusOK, tradesResponse{Rows: rows})
		return
	}

	rows := s.Ledger.List(limit)
	if rows == nil {
		rows = []models.Trade{}
	}
	s.TradesCache.Set(key, rows)
	c.JSON(http.StatusOK, tradesResponse{Rows: rows})
}

func (s *Server) getPortfolio(c *gin.Context) {
	key := cache.PortfolioKey{}
	if rows, ok := s.PortfolioCache.Get(key); ok && rows != nil {
		c.JSON(http.StatusOK, rows)
		return
	}

	rows := s.Portfolio.List()
	if rows == nil {
		rows = []models.Holding{}
	}
	s.PortfolioCache.Set(key, rows)
	c.JSON(http.StatusOK, rows)
}
