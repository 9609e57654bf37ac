package http

import (
	"net/http"
	"time"

	gin "github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/AaravAsthana/Bajaj-SDK/internal/cache"
	"github.com/AaravAsthana/Bajaj-SDK/internal/catalog"
	"github.com/AaravAsthana/Bajaj-SDK/internal/engine"
	"github.com/AaravAsthana/Bajaj-SDK/internal/events"
	"github.com/AaravAsthana/Bajaj-SDK/internal/models"
	"github.com/AaravAsthana/Bajaj-SDK/internal/portfolio"
	"github.com/AaravAsthana/Bajaj-SDK/internal/store"
)

type Server struct {
	R              *gin.Engine
	Engine         *engine.Engine
	Catalog        *catalog.Catalog
	Orders         *store.OrderStore
	Ledger         *store.TradeLedger
	Portfolio      *portfolio.Aggregator
	Publisher      *events.Publisher
	ResponseCache  *cache.Cache
	TradesCache    *cache.MapCache[cache.TradesKey, []models.Trade]
	PortfolioCache *cache.MapCache[cache.PortfolioKey, []models.Holding]
	Logger         *zap.Logger

	apiKey string
}

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type tradesResponse struct {
	Rows []models.Trade `json:"rows"`
}

// NewServer wires the router, core services, caches, and middleware.
func NewServer(eng *engine.Engine, cat *catalog.Catalog, orders *store.OrderStore, ledger *store.TradeLedger, pf *portfolio.Aggregator, pub *events.Publisher, rc *cache.Cache, logger *zap.Logger, apiKey, corsOrigin string) *Server {
	g := gin.New()

	// Request ID + logging
	g.Use(func(cn *gin.Context) {
		reqID := cn.GetHeader("X-Request-ID")
		if reqID == "" {
			reqID = uuid.NewString()
		}
		cn.Writer.Header().Set("X-Request-ID", reqID)
		start := time.Now()
		cn.Next()
		logger.Info("http_request",
			zap.String("request_id", reqID),
			zap.String("method", cn.Request.Method),
			zap.String("path", cn.Request.URL.Path),
			zap.Int("status", cn.Writer.Status()),
			zap.String("ip", cn.ClientIP()),
			zap.Duration("latency", time.Since(start)),
		)
	})

	g.Use(gin.Recovery())

	// CORS
	g.Use(func(cn *gin.Context) {
		origin := cn.GetHeader("Origin")
		cn.Writer.Header().Set("Vary", "Origin")
		cn.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, X-API-Key")
		cn.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		cn.Writer.Header().Set("Access-Control-Max-Age", "86400")
		if corsOrigin == "*" {
			cn.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		} else if origin != "" && origin == corsOrigin {
			cn.Writer.Header().Set("Access-Control-Allow-Origin", corsOrigin)
		}
		if cn.Request.Method == http.MethodOptions {
			cn.AbortWithStatus(http.StatusNoContent)
			return
		}
		cn.Next()
	})

	s := &Server{
		R:              g,
		Engine:         eng,
		Catalog:        cat,
		Orders:         orders,
		Ledger:         ledger,
		Portfolio:      pf,
		Publisher:      pub,
		ResponseCache:  rc,
		TradesCache:    cache.NewMapCache[cache.TradesKey, []models.Trade](),
		PortfolioCache: cache.NewMapCache[cache.PortfolioKey, []models.Holding](),
		Logger:         logger,
		apiKey:         apiKey,
	}

	g.GET("/health", func(cn *gin.Context) { cn.JSON(http.StatusOK, gin.H{"ok": true}) })

	api := g.Group("/api", s.requireAPIKey)
	api.GET("/instruments", s.getInstruments)
	api.POST("/orders", s.placeOrder)
	api.GET("/orders", s.listOrders)
	api.GET("/orders/:order_id", s.getOrder)
	api.GET("/trades", s.getTrades)
	api.GET("/portfolio", s.getPortfolio)

	return s
}

// requireAPIKey rejects requests without the mocked key before they
// reach the core; the core never inspects credentials.
func (s *Server) requireAPIKey(c *gin.Context) {
	if c.GetHeader("X-API-Key") != s.apiKey {
		c.AbortWithStatusJSON(http.StatusUnauthorized, apiError{Code: "unauthorized", Message: "missing or invalid API key"})
		return
	}
	c.Next()
}
