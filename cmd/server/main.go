package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/AaravAsthana/Bajaj-SDK/internal/cache"
	"github.com/AaravAsthana/Bajaj-SDK/internal/catalog"
	"github.com/AaravAsthana/Bajaj-SDK/internal/config"
	"github.com/AaravAsthana/Bajaj-SDK/internal/engine"
	"github.com/AaravAsthana/Bajaj-SDK/internal/events"
	"github.com/AaravAsthana/Bajaj-SDK/internal/portfolio"
	"github.com/AaravAsthana/Bajaj-SDK/internal/store"
	httpserver "github.com/AaravAsthana/Bajaj-SDK/internal/http"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	cat := catalog.NewDefault()
	orders := store.NewOrderStore()
	ledger := store.NewTradeLedger()
	pf := portfolio.New(cat)
	eng := engine.New(cat, orders, ledger, pf, logger)

	rc, err := cache.New(1<<24 /* ~16MB */, cfg.CacheTTL)
	if err != nil {
		logger.Fatal("cache", zap.Error(err))
	}

	pub := events.NewPublisher(cfg.Brokers(), cfg.KafkaTopic, logger)
	defer func() {
		if err := pub.Close(); err != nil {
			logger.Warn("publisher close", zap.Error(err))
		}
	}()

	s := httpserver.NewServer(eng, cat, orders, ledger, pf, pub, rc, logger, cfg.APIKey, cfg.CORSOrigin)

	server := &http.Server{Addr: ":" + cfg.Port, Handler: s.R}
	go func() {
		logger.Info("http listening", zap.String("port", cfg.Port))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("http", zap.Error(err))
		}
	}()

	// graceful shutdown
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	ctxShut, cancelShut := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShut()
	_ = server.Shutdown(ctxShut)
	logger.Info("shutdown complete")
}
