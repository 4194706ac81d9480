package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/jwaldner/optionslab/internal/config"
	"github.com/jwaldner/optionslab/internal/handlers"
	"github.com/jwaldner/optionslab/internal/logger"
	"github.com/jwaldner/optionslab/internal/marketdata"

	"github.com/gorilla/mux"
)

func main() {
	cfg := config.Load()

	// Initialize proper logging with config level and file path
	if err := logger.InitWithConfig(cfg.Logging.LogLevel, cfg.Logging.LogFile); err != nil {
		log.Fatalf("Failed to initialize logging: %v", err)
	}
	logger.Infof("🚀 OptionsLab starting - Port: %s", cfg.Port)

	if cfg.Logging.LogLevel == "verbose" {
		fmt.Printf("⚠️  VERBOSE LOGGING ENABLED - Detailed pricing and simulation traces will be logged to %s\n", cfg.Logging.LogFile)
	}

	logger.Infof("🔧 Model defaults: S=%.2f K=%.2f r=%.4f vol=%.4f T=%.2fy",
		cfg.Model.Spot, cfg.Model.Strike, cfg.Model.Rate, cfg.Model.Volatility, cfg.Model.Horizon)
	logger.Infof("🔧 Simulation defaults: %d paths x %d steps",
		cfg.Simulation.PathCount, cfg.Simulation.StepCount)

	// Market data clients are optional; pricing works fine without them.
	var rates *marketdata.RateClient
	var quotes *marketdata.QuoteClient
	if cfg.MarketData.Enabled {
		logger.Infof("📡 Market data enabled - quote symbol %s", cfg.MarketData.QuoteSymbol)
		rates = marketdata.NewRateClient(cfg.MarketData.TreasuryBaseURL)
		quotes = marketdata.NewQuoteClient(cfg.MarketData.QuoteBaseURL)
	} else {
		logger.Infof("📡 Market data disabled - using configured model inputs")
	}

	labHandler := handlers.NewLabHandler(cfg, rates, quotes)

	// Setup router
	r := mux.NewRouter()

	r.HandleFunc("/", labHandler.IndexHandler).Methods("GET")
	r.HandleFunc("/api/price", labHandler.PriceHandler).Methods("POST", "OPTIONS")
	r.HandleFunc("/api/simulate", labHandler.SimulateHandler).Methods("POST", "OPTIONS")
	r.HandleFunc("/api/hedge", labHandler.HedgeHandler).Methods("POST", "OPTIONS")
	r.HandleFunc("/api/chart/paths.png", labHandler.PathsChartHandler).Methods("GET")
	r.HandleFunc("/api/chart/wiener.png", labHandler.WienerChartHandler).Methods("GET")
	r.HandleFunc("/api/market/snapshot", labHandler.SnapshotHandler).Methods("GET")

	// Start server
	fmt.Printf("🌐 Server starting on http://localhost:%s\n", cfg.Port)
	logger.Infof("🌐 HTTP server started on port %s", cfg.Port)

	if err := http.ListenAndServe("0.0.0.0:"+cfg.Port, r); err != nil {
		log.Fatal("Server failed to start:", err)
	}
}
