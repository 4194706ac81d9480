// Package marketdata holds the external data collaborators that can seed
// model parameters with live values: a Treasury rate feed for the risk-free
// rate and a quote feed for the spot price. The pricing and simulation cores
// never import this package; callers wire fetched values in themselves.
package marketdata

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/jwaldner/optionslab/internal/logger"
)

const defaultTreasuryBaseURL = "https://api.fiscaldata.treasury.gov/services/api/fiscal_service"

// RateClient fetches the most recent Treasury Bill average rate and keeps
// the last successful value around so a flaky feed degrades gracefully.
type RateClient struct {
	httpClient    *http.Client
	baseURL       string
	lastKnownRate float64
	lastFetchTime time.Time
}

type treasuryResponse struct {
	Data []treasuryRate `json:"data"`
}

type treasuryRate struct {
	RecordDate            string `json:"record_date"`
	SecurityDesc          string `json:"security_desc"`
	AvgInterestRateAmount string `json:"avg_interest_rate_amt"`
}

// NewRateClient builds a client against the public fiscal data API. An empty
// baseURL selects the production endpoint; tests point it at a local server.
func NewRateClient(baseURL string) *RateClient {
	if baseURL == "" {
		baseURL = defaultTreasuryBaseURL
	}
	return &RateClient{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    baseURL,
	}
}

// RiskFreeRate fetches the latest Treasury Bill rate as a decimal and
// refreshes the cache on success.
func (rc *RateClient) RiskFreeRate() (float64, error) {
	url := fmt.Sprintf("%s/v2/accounting/od/avg_interest_rates?fields=avg_interest_rate_amt,record_date&filter=security_desc:eq:Treasury%%20Bills&sort=-record_date&page[size]=1", rc.baseURL)

	resp, err := rc.httpClient.Get(url)
	if err != nil {
		return 0, fmt.Errorf("failed to fetch Treasury rate: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("Treasury API returned status %d", resp.StatusCode)
	}

	var payload treasuryResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return 0, fmt.Errorf("failed to decode Treasury response: %w", err)
	}
	if len(payload.Data) == 0 {
		return 0, fmt.Errorf("no Treasury rate data returned")
	}

	// Percentage string to decimal: "3.983" -> 0.03983.
	rate, err := strconv.ParseFloat(payload.Data[0].AvgInterestRateAmount, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse rate %s: %w", payload.Data[0].AvgInterestRateAmount, err)
	}
	rate /= 100.0

	rc.lastKnownRate = rate
	rc.lastFetchTime = time.Now()
	logger.Infof("🏛️ Fetched Treasury Bill rate: %.3f%% (%.6f decimal)", rate*100, rate)

	return rate, nil
}

// RiskFreeRateOrLastKnown tries a fresh fetch and falls back to the cached
// value (or the supplied default when nothing was ever fetched).
func (rc *RateClient) RiskFreeRateOrLastKnown(fallback float64) float64 {
	if rate, err := rc.RiskFreeRate(); err == nil {
		return rate
	}

	if rc.lastFetchTime.IsZero() {
		logger.Warnf("⚠️ Treasury API unavailable and no cached rate, using default %.4f", fallback)
		return fallback
	}

	age := time.Since(rc.lastFetchTime)
	logger.Warnf("⚠️ Treasury API failed, using last known rate %.6f from %v ago", rc.lastKnownRate, age.Round(time.Minute))
	return rc.lastKnownRate
}
