package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Snapshot is one fully-built cache generation: market values plus the
// deduplicated, translated headline set. Snapshots are immutable once
// published; the refresh worker builds a new one each cycle and swaps it in
// as a single unit so readers never observe a half-updated refresh.
type Snapshot struct {
	USDRate   *decimal.Decimal `json:"usd_rate,omitempty"`
	BTCPrice  *decimal.Decimal `json:"btc_price,omitempty"`
	GoldPrice *decimal.Decimal `json:"gold_price,omitempty"`
	Items     []Item           `json:"items"`
	UpdatedAt time.Time        `json:"updated_at"`
}

// HasData reports whether at least one successful refresh has happened
func (s *Snapshot) HasData() bool {
	return s != nil && !s.UpdatedAt.IsZero()
}
