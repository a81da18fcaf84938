package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/navid-fn/radar-ticker/configs"
	"github.com/navid-fn/radar-ticker/internal/drivers/bittrex"
	"github.com/navid-fn/radar-ticker/internal/handler"
	"github.com/navid-fn/radar-ticker/internal/logger"
	"github.com/navid-fn/radar-ticker/internal/router"
	"github.com/navid-fn/radar-ticker/internal/server"
	"github.com/navid-fn/radar-ticker/internal/service"
)

func main() {
	cfg := configs.AppLoad()

	log := logger.New(cfg.Log)
	gin.SetMode(cfg.Server.GinMode)

	client := bittrex.NewClient(&cfg.Ticker, log)
	tickerService := service.NewTickerService(client)
	tickerHandler := handler.NewTickerHandler(tickerService, log)

	r, err := router.NewRouter(&router.Config{
		TickerHandler: tickerHandler,
		Logger:        log,
	})
	if err != nil {
		log.Fatalf("Failed to build router: %v", err)
	}

	// Setup graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.WithField("upstream", cfg.Ticker.URL).Info("Starting ticker API")
	if err := server.New(cfg.Server, r, log).Run(ctx); err != nil {
		log.Fatalf("Server stopped with error: %v", err)
	}
	log.Info("Ticker API stopped gracefully")
}
