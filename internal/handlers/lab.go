package handlers

import (
	"encoding/json"
	"fmt"
	"html/template"
	"net/http"
	"strconv"
	"time"

	"github.com/jwaldner/optionslab/internal/charts"
	"github.com/jwaldner/optionslab/internal/config"
	"github.com/jwaldner/optionslab/internal/hedging"
	"github.com/jwaldner/optionslab/internal/logger"
	"github.com/jwaldner/optionslab/internal/marketdata"
	"github.com/jwaldner/optionslab/internal/models"
	"github.com/jwaldner/optionslab/internal/pricing"
	"github.com/jwaldner/optionslab/internal/simulation"
)

// LabHandler handles pricing and simulation requests - DUMB HTTP layer only
type LabHandler struct {
	config *config.Config
	rates  *marketdata.RateClient
	quotes *marketdata.QuoteClient
}

// NewLabHandler creates a new lab handler - just HTTP routing
func NewLabHandler(cfg *config.Config, rates *marketdata.RateClient, quotes *marketdata.QuoteClient) *LabHandler {
	return &LabHandler{
		config: cfg,
		rates:  rates,
		quotes: quotes,
	}
}

const indexTemplate = `<!DOCTYPE html>
<html>
<head><title>{{appTitle}}</title></head>
<body>
<h1>{{appTitle}}</h1>
<p>Black-Scholes pricing and GBM simulation lab.</p>
<ul>
<li><code>POST /api/price</code> - price a European call (spot, strike, rate, volatility, horizon)</li>
<li><code>POST /api/simulate</code> - simulate a GBM ensemble (path_count, step_count, seed)</li>
<li><code>POST /api/hedge</code> - replay a daily delta hedge on one simulated path</li>
<li><code>GET /api/chart/paths.png</code> - render simulated paths as a PNG chart</li>
<li><code>GET /api/chart/wiener.png</code> - render a Wiener process realization</li>
<li><code>GET /api/market/snapshot</code> - live spot and risk-free rate inputs</li>
</ul>
</body>
</html>`

// IndexHandler serves the main web interface
func (h *LabHandler) IndexHandler(w http.ResponseWriter, r *http.Request) {
	funcMap := template.FuncMap{
		"appTitle": func() string {
			return "🧪 OptionsLab - Pricing & Simulation"
		},
	}

	tmpl, err := template.New("index").Funcs(funcMap).Parse(indexTemplate)
	if err != nil {
		logger.Errorf("❌ Failed to parse index template: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tmpl.Execute(w, nil); err != nil {
		logger.Errorf("❌ Failed to render index template: %v", err)
	}
}

// PriceHandler prices a European call and reports its Greeks
func (h *LabHandler) PriceHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	w.Header().Set("Content-Type", "application/json")

	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return
	}
	if r.Method != http.MethodPost {
		h.writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var req models.PriceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	params := pricing.ModelParameters{
		Spot:       req.Spot,
		Strike:     req.Strike,
		Rate:       req.Rate,
		Volatility: req.Volatility,
		Horizon:    req.Horizon,
	}

	logger.Debugf("💰 PRICE REQUEST: S=%.4f K=%.4f r=%.4f vol=%.4f T=%.4f",
		req.Spot, req.Strike, req.Rate, req.Volatility, req.Horizon)

	startTime := time.Now()

	result, err := pricing.PriceCall(params)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	greeks, err := pricing.Greeks(params)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	duration := time.Since(startTime)
	logger.Infof("💰 Priced call: %.4f (delta %.4f) in %v", result.Price, result.Delta, duration)
	if result.Degenerate {
		logger.Warnf("⚠️ Zero volatility: price is the discounted forward payoff")
	}

	response := models.PriceResponse{
		Success: true,
		Data: models.FormattedResult{
			"price": h.formatCurrency(result.Price),
			"delta": h.formatNumber(result.Delta),
			"gamma": h.formatNumber(greeks.Gamma),
			"vega":  h.formatNumber(greeks.Vega),
			"theta": h.formatNumber(greeks.Theta),
			"rho":   h.formatNumber(greeks.Rho),
		},
		Meta: models.ResponseMetadata{
			Timestamp:      time.Now().Format(time.RFC3339),
			ProcessingTime: duration.Seconds(),
			Degenerate:     result.Degenerate,
		},
	}

	json.NewEncoder(w).Encode(response)
}

// SimulateHandler runs a GBM ensemble and summarizes terminal prices
func (h *LabHandler) SimulateHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	w.Header().Set("Content-Type", "application/json")

	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return
	}
	if r.Method != http.MethodPost {
		h.writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var req models.SimulateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	params := pricing.ModelParameters{
		Spot:       req.Spot,
		Strike:     req.Strike,
		Rate:       req.Rate,
		Volatility: req.Volatility,
		Horizon:    req.Horizon,
	}
	simCfg := simulation.Config{
		PathCount: req.PathCount,
		StepCount: req.StepCount,
		Seed:      req.Seed,
	}
	if simCfg.PathCount == 0 {
		simCfg.PathCount = h.config.Simulation.PathCount
	}
	if simCfg.StepCount == 0 {
		simCfg.StepCount = h.config.Simulation.StepCount
	}

	logger.Debugf("📈 SIMULATE REQUEST: paths=%d steps=%d seeded=%v",
		simCfg.PathCount, simCfg.StepCount, simCfg.Seed != nil)

	startTime := time.Now()

	ensemble, err := simulation.Simulate(params, simCfg)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	summary, err := ensemble.Summarize()
	if err != nil {
		logger.Errorf("❌ Failed to summarize ensemble: %v", err)
		h.writeError(w, http.StatusInternalServerError, "Failed to summarize ensemble")
		return
	}

	duration := time.Since(startTime)
	logger.Infof("📈 Simulated %d paths x %d steps in %v (terminal mean %.4f)",
		simCfg.PathCount, simCfg.StepCount, duration, summary.Mean)

	response := models.SimulateResponse{
		Success: true,
		Summary: models.FormattedResult{
			"mean":          h.formatCurrency(summary.Mean),
			"median":        h.formatCurrency(summary.Median),
			"min":           h.formatCurrency(summary.Min),
			"max":           h.formatCurrency(summary.Max),
			"percentile_5":  h.formatCurrency(summary.P05),
			"percentile_95": h.formatCurrency(summary.P95),
		},
		Meta: models.ResponseMetadata{
			Timestamp:      time.Now().Format(time.RFC3339),
			ProcessingTime: duration.Seconds(),
			PathCount:      simCfg.PathCount,
			StepCount:      simCfg.StepCount,
			Seeded:         simCfg.Seed != nil,
		},
	}
	if req.IncludePaths {
		response.Paths = ensemble
	}

	json.NewEncoder(w).Encode(response)
}

// HedgeHandler replays a daily delta hedge on one simulated path
func (h *LabHandler) HedgeHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	w.Header().Set("Content-Type", "application/json")

	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return
	}
	if r.Method != http.MethodPost {
		h.writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var req models.HedgeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	params := pricing.ModelParameters{
		Spot:       req.Spot,
		Strike:     req.Strike,
		Rate:       req.Rate,
		Volatility: req.Volatility,
		Horizon:    req.Horizon,
	}
	hedgeCfg := hedging.Config{
		StepCount: req.StepCount,
		Seed:      req.Seed,
	}
	if hedgeCfg.StepCount == 0 {
		hedgeCfg.StepCount = h.config.Simulation.StepCount
	}

	startTime := time.Now()

	result, err := hedging.Replay(params, hedgeCfg)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	premium, err := pricing.PriceCall(params)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	duration := time.Since(startTime)
	logger.Infof("🛡️ Hedge replay: final error %.4f vs premium %.4f over %d steps",
		result.FinalError, premium.Price, hedgeCfg.StepCount)

	response := models.HedgeResponse{
		Success: true,
		Data: models.FormattedResult{
			"final_error":    h.formatCurrency(result.FinalError),
			"premium":        h.formatCurrency(premium.Price),
			"terminal_price": h.formatCurrency(result.Path[len(result.Path)-1]),
		},
		CumulativePnL: result.CumulativePnL,
		Meta: models.ResponseMetadata{
			Timestamp:      time.Now().Format(time.RFC3339),
			ProcessingTime: duration.Seconds(),
			StepCount:      hedgeCfg.StepCount,
			Seeded:         hedgeCfg.Seed != nil,
		},
	}

	json.NewEncoder(w).Encode(response)
}

// PathsChartHandler renders a simulated ensemble as a PNG line chart
func (h *LabHandler) PathsChartHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		h.writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	params := pricing.ModelParameters{
		Spot:       h.queryFloat(r, "spot", h.config.Model.Spot),
		Strike:     h.queryFloat(r, "strike", h.config.Model.Strike),
		Rate:       h.queryFloat(r, "rate", h.config.Model.Rate),
		Volatility: h.queryFloat(r, "volatility", h.config.Model.Volatility),
		Horizon:    h.queryFloat(r, "horizon", h.config.Model.Horizon),
	}
	simCfg := simulation.Config{
		PathCount: h.queryInt(r, "paths", h.config.Simulation.PathCount),
		StepCount: h.queryInt(r, "steps", h.config.Simulation.StepCount),
	}
	if raw := r.URL.Query().Get("seed"); raw != "" {
		seed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			h.writeError(w, http.StatusBadRequest, "Invalid seed")
			return
		}
		simCfg.Seed = &seed
	}

	ensemble, err := simulation.Simulate(params, simCfg)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	title := fmt.Sprintf("GBM paths (S=%.0f, vol=%.0f%%, T=%.2fy)",
		params.Spot, params.Volatility*100, params.Horizon)
	png, err := charts.RenderPaths(ensemble, title)
	if err != nil {
		logger.Errorf("❌ Failed to render paths chart: %v", err)
		h.writeError(w, http.StatusInternalServerError, "Failed to render chart")
		return
	}

	logger.Infof("🖼️ Rendered paths chart: %d paths, %d bytes", simCfg.PathCount, len(png))
	w.Header().Set("Content-Type", "image/png")
	w.Write(png)
}

// WienerChartHandler renders a single Wiener process realization as a PNG
func (h *LabHandler) WienerChartHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		h.writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	horizon := h.queryFloat(r, "horizon", h.config.Model.Horizon)
	steps := h.queryInt(r, "steps", h.config.Simulation.StepCount)

	var seed *int64
	if raw := r.URL.Query().Get("seed"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			h.writeError(w, http.StatusBadRequest, "Invalid seed")
			return
		}
		seed = &parsed
	}

	realization, err := simulation.Wiener(horizon, steps, seed)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	title := fmt.Sprintf("Wiener process (T=%.2fy, %d steps)", horizon, steps)
	png, err := charts.RenderWiener(realization, title)
	if err != nil {
		logger.Errorf("❌ Failed to render Wiener chart: %v", err)
		h.writeError(w, http.StatusInternalServerError, "Failed to render chart")
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Write(png)
}

// SnapshotHandler reports live spot and risk-free rate model inputs
func (h *LabHandler) SnapshotHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if r.Method != http.MethodGet {
		h.writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}
	if h.rates == nil || h.quotes == nil {
		h.writeError(w, http.StatusServiceUnavailable, "Market data is disabled")
		return
	}

	startTime := time.Now()

	symbol := r.URL.Query().Get("symbol")
	if symbol == "" {
		symbol = h.config.MarketData.QuoteSymbol
	}

	spot, err := h.quotes.Spot(symbol)
	if err != nil {
		logger.Errorf("❌ Failed to fetch spot for %s: %v", symbol, err)
		h.writeError(w, http.StatusBadGateway, fmt.Sprintf("Failed to fetch spot for %s", symbol))
		return
	}
	rate := h.rates.RiskFreeRateOrLastKnown(h.config.Model.Rate)

	duration := time.Since(startTime)
	logger.Infof("📡 Snapshot for %s: spot %.2f, rate %.4f", symbol, spot, rate)

	response := models.SnapshotResponse{
		Success: true,
		Data: models.FormattedResult{
			"symbol": h.formatText(symbol),
			"spot":   h.formatCurrency(spot),
			"rate":   h.formatPercentage(rate),
		},
		Meta: models.ResponseMetadata{
			Timestamp:      time.Now().Format(time.RFC3339),
			ProcessingTime: duration.Seconds(),
		},
	}

	json.NewEncoder(w).Encode(response)
}

func (h *LabHandler) writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(models.ErrorResponse{
		Success: false,
		Error:   message,
	})
}

func (h *LabHandler) queryFloat(r *http.Request, key string, fallback float64) float64 {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return fallback
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		logger.Warnf("⚠️ Ignoring invalid %s=%q, using %.4f", key, raw, fallback)
		return fallback
	}
	return value
}

func (h *LabHandler) queryInt(r *http.Request, key string, fallback int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		logger.Warnf("⚠️ Ignoring invalid %s=%q, using %d", key, raw, fallback)
		return fallback
	}
	return value
}

// Formatter methods for dual format response
func (h *LabHandler) formatCurrency(value float64) models.FieldValue {
	return models.FieldValue{
		Raw:     value,
		Display: fmt.Sprintf("$%.2f", value),
		Type:    "currency",
	}
}

func (h *LabHandler) formatPercentage(value float64) models.FieldValue {
	return models.FieldValue{
		Raw:     value,
		Display: fmt.Sprintf("%.2f%%", value*100),
		Type:    "percentage",
	}
}

func (h *LabHandler) formatNumber(value float64) models.FieldValue {
	return models.FieldValue{
		Raw:     value,
		Display: fmt.Sprintf("%.4f", value),
		Type:    "number",
	}
}

func (h *LabHandler) formatText(value string) models.FieldValue {
	return models.FieldValue{
		Raw:     value,
		Display: value,
		Type:    "text",
	}
}
