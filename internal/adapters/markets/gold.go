package markets

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/shopspring/decimal"
)

const (
	goldPriceURL = "https://data-asg.goldprice.org/dbXRates/USD"
	yahooGoldURL = "https://query1.finance.yahoo.com/v7/finance/quote?symbols=GC=F"
)

// NewGoldChain builds the gold price fallback chain: goldprice.org first,
// Yahoo Finance futures quote second.
func NewGoldChain(timeout time.Duration) *Chain {
	return NewChain("gold",
		NewGoldPriceProvider(timeout),
		NewYahooGoldProvider(timeout),
	)
}

// GoldPriceProvider fetches the XAU/USD rate from goldprice.org
type GoldPriceProvider struct {
	baseURL string
	client  *http.Client
}

// NewGoldPriceProvider creates new goldprice.org provider
func NewGoldPriceProvider(timeout time.Duration) *GoldPriceProvider {
	return &GoldPriceProvider{
		baseURL: goldPriceURL,
		client:  &http.Client{Timeout: timeout},
	}
}

func (p *GoldPriceProvider) Name() string {
	return "goldprice"
}

func (p *GoldPriceProvider) Fetch(ctx context.Context) (decimal.Decimal, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL, http.NoBody)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return decimal.Zero, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return decimal.Zero, fmt.Errorf("API error %d", resp.StatusCode)
	}

	var result struct {
		Items []struct {
			XAUPrice float64 `json:"xauPrice"`
		} `json:"items"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return decimal.Zero, fmt.Errorf("failed to decode response: %w", err)
	}

	if len(result.Items) == 0 || result.Items[0].XAUPrice == 0 {
		return decimal.Zero, fmt.Errorf("gold price missing in response")
	}

	return decimal.NewFromFloat(result.Items[0].XAUPrice).Round(2), nil
}

// YahooGoldProvider fetches the gold futures quote from Yahoo Finance
type YahooGoldProvider struct {
	baseURL string
	client  *http.Client
}

// NewYahooGoldProvider creates new Yahoo Finance gold provider
func NewYahooGoldProvider(timeout time.Duration) *YahooGoldProvider {
	return &YahooGoldProvider{
		baseURL: yahooGoldURL,
		client:  &http.Client{Timeout: timeout},
	}
}

func (p *YahooGoldProvider) Name() string {
	return "yahoo"
}

func (p *YahooGoldProvider) Fetch(ctx context.Context) (decimal.Decimal, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL, http.NoBody)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return decimal.Zero, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return decimal.Zero, fmt.Errorf("API error %d", resp.StatusCode)
	}

	var result struct {
		QuoteResponse struct {
			Result []struct {
				RegularMarketPrice float64 `json:"regularMarketPrice"`
			} `json:"result"`
		} `json:"quoteResponse"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return decimal.Zero, fmt.Errorf("failed to decode response: %w", err)
	}

	quotes := result.QuoteResponse.Result
	if len(quotes) == 0 || quotes[0].RegularMarketPrice == 0 {
		return decimal.Zero, fmt.Errorf("gold quote missing in response")
	}

	return decimal.NewFromFloat(quotes[0].RegularMarketPrice).Round(2), nil
}
