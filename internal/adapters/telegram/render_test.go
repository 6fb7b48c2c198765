package telegram

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/crypsidex/digest-bot/pkg/models"
)

func decimalPtr(v float64) *decimal.Decimal {
	d := decimal.NewFromFloat(v)
	return &d
}

func TestRenderRates(t *testing.T) {
	snap := &models.Snapshot{
		USDRate:   decimalPtr(92.46),
		BTCPrice:  decimalPtr(64250.14),
		GoldPrice: decimalPtr(2412.79),
		UpdatedAt: time.Date(2026, 8, 29, 12, 30, 0, 0, time.UTC),
	}

	got := renderRates(snap)

	for _, want := range []string{"92.46", "64250.14", "2412.79", "2026-08-29 12:30 UTC"} {
		if !strings.Contains(got, want) {
			t.Errorf("expected rates message to contain %q, got:\n%s", want, got)
		}
	}
}

func TestRenderRatesUnavailableValues(t *testing.T) {
	got := renderRates(&models.Snapshot{UpdatedAt: time.Now().UTC()})

	if strings.Count(got, unavailable) != 3 {
		t.Errorf("expected three unavailable placeholders, got:\n%s", got)
	}
}

func TestRenderRatesEmptySnapshot(t *testing.T) {
	got := renderRates(&models.Snapshot{})

	// No refresh yet: values and the timestamp all render as placeholders
	if strings.Count(got, unavailable) != 4 {
		t.Errorf("expected four unavailable placeholders, got:\n%s", got)
	}
}

func TestRenderDigest(t *testing.T) {
	d := models.Digest{
		Ranked: []models.ScoredItem{
			{Item: models.Item{Source: "Reuters", TranslatedText: "ФРС повышает ставку"}, Score: 4},
			{Item: models.Item{Source: "CoinDesk", TranslatedText: "Взлом биржи"}, Score: 2},
		},
		Report: models.AnalysisReport{
			GeneratedAt:     time.Date(2026, 8, 29, 12, 30, 0, 0, time.UTC),
			TopTheme:        "rate",
			TopEntities:     []string{"trump", "musk"},
			SecurityRisk:    true,
			Recommendations: []string{"первая рекомендация", "вторая рекомендация"},
			Forecast:        "прогноз",
		},
	}

	got := renderDigest(d)

	for _, want := range []string{
		"1. [Reuters] ФРС повышает ставку",
		"2. [CoinDesk] Взлом биржи",
		"«rate»",
		"TRUMP, MUSK",
		"🔐",
		"- первая рекомендация",
		"- вторая рекомендация",
		"прогноз",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("expected digest to contain %q, got:\n%s", want, got)
		}
	}

	if strings.Contains(got, "⚠️") {
		t.Error("geo risk line must be absent when the flag is off")
	}
}

func TestRenderReportNoTheme(t *testing.T) {
	got := renderReport(models.AnalysisReport{
		GeneratedAt:     time.Now().UTC(),
		Recommendations: []string{"r"},
		Forecast:        "f",
	})

	if !strings.Contains(got, "неявная") {
		t.Errorf("expected mixed-news theme line, got:\n%s", got)
	}
	if strings.Contains(got, "👥") {
		t.Error("entities line must be absent when nothing was mentioned")
	}
}

func TestFormatValue(t *testing.T) {
	if got := formatValue(nil); got != unavailable {
		t.Errorf("expected placeholder for nil, got %q", got)
	}
	if got := formatValue(decimalPtr(92.4)); got != "92.40" {
		t.Errorf("expected fixed two decimals, got %q", got)
	}
}
