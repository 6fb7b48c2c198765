package digest

import (
	"testing"

	"github.com/crypsidex/digest-bot/pkg/models"
)

func TestDedupe(t *testing.T) {
	tests := []struct {
		name     string
		items    []models.Item
		maxItems int
		want     []string // expected original texts in order
	}{
		{
			name: "case insensitive first wins",
			items: []models.Item{
				{Source: "S1", OriginalText: "Fed raises interest rate"},
				{Source: "S2", OriginalText: "Major exchange hack reported"},
				{Source: "S1", OriginalText: "fed raises interest rate"},
			},
			maxItems: 25,
			want:     []string{"Fed raises interest rate", "Major exchange hack reported"},
		},
		{
			name: "cap cuts excess items",
			items: []models.Item{
				{OriginalText: "a"},
				{OriginalText: "b"},
				{OriginalText: "c"},
			},
			maxItems: 2,
			want:     []string{"a", "b"},
		},
		{
			name: "duplicates across sources keep first source",
			items: []models.Item{
				{Source: "Reuters", OriginalText: "Gold hits record high"},
				{Source: "FT", OriginalText: "Gold Hits Record High"},
				{Source: "FT", OriginalText: "Oil drops"},
			},
			maxItems: 25,
			want:     []string{"Gold hits record high", "Oil drops"},
		},
		{
			name:     "empty input",
			items:    nil,
			maxItems: 25,
			want:     []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Dedupe(tt.items, tt.maxItems)

			if len(got) != len(tt.want) {
				t.Fatalf("expected %d items, got %d", len(tt.want), len(got))
			}
			for i, item := range got {
				if item.OriginalText != tt.want[i] {
					t.Errorf("item %d: expected %q, got %q", i, tt.want[i], item.OriginalText)
				}
			}
		})
	}
}

func TestDedupeKeepsFirstSource(t *testing.T) {
	items := []models.Item{
		{Source: "Reuters", OriginalText: "Bitcoin ETF approved"},
		{Source: "CoinDesk", OriginalText: "bitcoin etf approved"},
	}

	got := Dedupe(items, 25)

	if len(got) != 1 {
		t.Fatalf("expected 1 item, got %d", len(got))
	}
	if got[0].Source != "Reuters" {
		t.Errorf("expected first-seen source Reuters, got %q", got[0].Source)
	}
}
