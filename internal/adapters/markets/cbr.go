package markets

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/shopspring/decimal"
)

const cbrDailyURL = "https://www.cbr-xml-daily.ru/daily_json.js"

// CBRProvider fetches the official USD/RUB rate from the Central Bank daily feed
type CBRProvider struct {
	baseURL string
	client  *http.Client
}

// NewCBRProvider creates new CBR rate provider
func NewCBRProvider(timeout time.Duration) *CBRProvider {
	return &CBRProvider{
		baseURL: cbrDailyURL,
		client:  &http.Client{Timeout: timeout},
	}
}

func (p *CBRProvider) Name() string {
	return "cbr"
}

func (p *CBRProvider) Fetch(ctx context.Context) (decimal.Decimal, error) {
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
		Valute struct {
			USD struct {
				Value float64 `json:"Value"`
			} `json:"USD"`
		} `json:"Valute"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return decimal.Zero, fmt.Errorf("failed to decode response: %w", err)
	}

	if result.Valute.USD.Value == 0 {
		return decimal.Zero, fmt.Errorf("USD rate missing in response")
	}

	return decimal.NewFromFloat(result.Valute.USD.Value).Round(2), nil
}
