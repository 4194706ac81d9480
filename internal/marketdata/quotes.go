package marketdata

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const defaultQuoteBaseURL = "https://query1.finance.yahoo.com"

// QuoteClient fetches the latest traded price of a symbol from the Yahoo
// chart API. It exists solely to populate ModelParameters.Spot with a live
// value for experimentation; nothing in the core depends on it.
type QuoteClient struct {
	httpClient *http.Client
	baseURL    string
}

type chartResponse struct {
	Chart struct {
		Result []struct {
			Meta struct {
				Symbol             string  `json:"symbol"`
				RegularMarketPrice float64 `json:"regularMarketPrice"`
			} `json:"meta"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

// NewQuoteClient builds a quote client. An empty baseURL selects the public
// endpoint; tests point it at a local server.
func NewQuoteClient(baseURL string) *QuoteClient {
	if baseURL == "" {
		baseURL = defaultQuoteBaseURL
	}
	return &QuoteClient{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    baseURL,
	}
}

// Spot returns the most recent market price for the symbol.
func (qc *QuoteClient) Spot(symbol string) (float64, error) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	if symbol == "" {
		return 0, fmt.Errorf("empty symbol")
	}

	url := fmt.Sprintf("%s/v8/finance/chart/%s?range=1d&interval=1d", qc.baseURL, symbol)
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return 0, err
	}
	// The chart endpoint rejects the default Go user agent.
	req.Header.Set("User-Agent", "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7)")
	req.Header.Set("Accept", "application/json")

	resp, err := qc.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("failed to fetch quote for %s: %w", symbol, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, fmt.Errorf("failed to read quote response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		preview := string(body)
		if len(preview) > 120 {
			preview = preview[:120]
		}
		return 0, fmt.Errorf("quote API returned %d for %s: %s", resp.StatusCode, symbol, preview)
	}

	var payload chartResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return 0, fmt.Errorf("failed to parse quote json for %s: %w", symbol, err)
	}
	if payload.Chart.Error != nil {
		return 0, fmt.Errorf("quote API error for %s: %s", symbol, payload.Chart.Error.Description)
	}
	if len(payload.Chart.Result) == 0 {
		return 0, fmt.Errorf("no quote data returned for %s", symbol)
	}

	price := payload.Chart.Result[0].Meta.RegularMarketPrice
	if price <= 0 {
		return 0, fmt.Errorf("quote API returned non-positive price %g for %s", price, symbol)
	}
	return price, nil
}
