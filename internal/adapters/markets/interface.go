package markets

import (
	"context"

	"github.com/shopspring/decimal"
)

// Provider returns one auxiliary market value (exchange rate, asset price).
// A failed fetch leaves the value unavailable for the current refresh cycle;
// it is retried naturally on the next one.
type Provider interface {
	// Name returns provider name for logging
	Name() string

	// Fetch retrieves the current value
	Fetch(ctx context.Context) (decimal.Decimal, error)
}

// Chain tries providers in order and returns the first success
type Chain struct {
	name      string
	providers []Provider
}

// NewChain creates an ordered fallback chain of providers
func NewChain(name string, providers ...Provider) *Chain {
	return &Chain{name: name, providers: providers}
}

func (c *Chain) Name() string {
	return c.name
}

func (c *Chain) Fetch(ctx context.Context) (decimal.Decimal, error) {
	var lastErr error
	for _, p := range c.providers {
		value, err := p.Fetch(ctx)
		if err == nil {
			return value, nil
		}
		lastErr = err
	}
	return decimal.Zero, lastErr
}
