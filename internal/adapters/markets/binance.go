package markets

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/shopspring/decimal"
)

const binanceTickerURL = "https://api.binance.com/api/v3/ticker/price?symbol=%s"

// BinanceProvider fetches a spot price from the Binance public ticker
type BinanceProvider struct {
	baseURL string
	symbol  string
	client  *http.Client
}

// NewBinanceProvider creates new Binance ticker provider for the given symbol
func NewBinanceProvider(symbol string, timeout time.Duration) *BinanceProvider {
	return &BinanceProvider{
		baseURL: binanceTickerURL,
		symbol:  symbol,
		client:  &http.Client{Timeout: timeout},
	}
}

func (p *BinanceProvider) Name() string {
	return "binance"
}

func (p *BinanceProvider) Fetch(ctx context.Context) (decimal.Decimal, error) {
	url := fmt.Sprintf(p.baseURL, p.symbol)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
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
		Symbol string `json:"symbol"`
		Price  string `json:"price"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return decimal.Zero, fmt.Errorf("failed to decode response: %w", err)
	}

	price, err := decimal.NewFromString(result.Price)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid price %q: %w", result.Price, err)
	}

	return price.Round(2), nil
}
