package digest

import (
	"reflect"
	"testing"

	"github.com/crypsidex/digest-bot/pkg/models"
)

func scoredFrom(titles ...string) []models.ScoredItem {
	items := make([]models.Item, 0, len(titles))
	for _, title := range titles {
		items = append(items, models.Item{OriginalText: title})
	}
	return ScoreAll(items, testKeywords())
}

func testKeywords() models.KeywordSet {
	return models.KeywordSet{
		Market:     []string{"tariff", "trade", "sanction", "inflation", "rate", "fed", "cpi", "hack"},
		Entities:   []string{"trump", "musk", "putin"},
		Escalation: []string{"war", "invasion", "hack"},
	}
}

func testForecast() models.ForecastKeywords {
	return models.ForecastKeywords{
		Crypto: []string{"bitcoin", "btc"},
		Metal:  []string{"gold"},
	}
}

func TestAnalyzeRiskFlags(t *testing.T) {
	tests := []struct {
		name         string
		titles       []string
		wantGeo      bool
		wantSecurity bool
	}{
		{
			name:         "invasion raises geo flag",
			titles:       []string{"Invasion fears rattle markets"},
			wantGeo:      true,
			wantSecurity: false,
		},
		{
			name:         "hack raises security flag",
			titles:       []string{"Exchange hack drains wallets"},
			wantGeo:      false,
			wantSecurity: true,
		},
		{
			name:         "breach raises security flag",
			titles:       []string{"Data breach at custodian"},
			wantGeo:      false,
			wantSecurity: true,
		},
		{
			name:         "calm news raises nothing",
			titles:       []string{"Quarterly earnings beat estimates"},
			wantGeo:      false,
			wantSecurity: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := Analyze(scoredFrom(tt.titles...), testKeywords(), testForecast())

			if report.GeoRisk != tt.wantGeo {
				t.Errorf("geo risk: expected %v, got %v", tt.wantGeo, report.GeoRisk)
			}
			if report.SecurityRisk != tt.wantSecurity {
				t.Errorf("security risk: expected %v, got %v", tt.wantSecurity, report.SecurityRisk)
			}
		})
	}
}

func TestAnalyzeRecommendations(t *testing.T) {
	tests := []struct {
		name   string
		titles []string
		want   []string
	}{
		{
			name:   "tariff theme fires hedge line",
			titles: []string{"New tariff round announced"},
			want:   []string{recTariffHedge},
		},
		{
			name:   "rate theme fires rate line",
			titles: []string{"Fed raises interest rate"},
			want:   []string{recRateRisk},
		},
		{
			name:   "security fires cold wallet line",
			titles: []string{"Exchange hack drains wallets"},
			want:   []string{recColdWallet},
		},
		{
			name:   "geo fires defensive line",
			titles: []string{"Border conflict escalates"},
			want:   []string{recDefensive},
		},
		{
			name:   "multiple rules fire in fixed order",
			titles: []string{"Tariff war and rate hike amid exchange hack"},
			want:   []string{recTariffHedge, recRateRisk, recColdWallet, recDefensive},
		},
		{
			name:   "fallback when nothing matches",
			titles: []string{"Quiet day on the markets"},
			want:   []string{recDiversify},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := Analyze(scoredFrom(tt.titles...), testKeywords(), testForecast())

			if !reflect.DeepEqual(report.Recommendations, tt.want) {
				t.Errorf("expected recommendations %v, got %v", tt.want, report.Recommendations)
			}
		})
	}
}

func TestAnalyzeTopTheme(t *testing.T) {
	tests := []struct {
		name   string
		titles []string
		want   string
	}{
		{
			name: "highest frequency wins",
			titles: []string{
				"Rate decision looms",
				"Rate cut priced in",
				"Tariff threat returns",
			},
			want: "rate",
		},
		{
			name: "tie resolves to earlier canonical term",
			titles: []string{
				"Tariff threat returns",
				"Rate decision looms",
			},
			want: "tariff",
		},
		{
			name:   "empty when nothing matched",
			titles: []string{"Nothing notable today"},
			want:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := Analyze(scoredFrom(tt.titles...), testKeywords(), testForecast())
			if report.TopTheme != tt.want {
				t.Errorf("expected top theme %q, got %q", tt.want, report.TopTheme)
			}
		})
	}
}

func TestAnalyzeTopEntities(t *testing.T) {
	report := Analyze(scoredFrom(
		"Putin speech moves markets",
		"Putin meets delegation",
		"Musk teases new product",
		"Trump rally scheduled",
	), testKeywords(), testForecast())

	// putin twice, then canonical order among the single mentions
	want := []string{"putin", "trump", "musk"}
	if !reflect.DeepEqual(report.TopEntities, want) {
		t.Errorf("expected entities %v, got %v", want, report.TopEntities)
	}
}

func TestAnalyzeTopEntitiesLimit(t *testing.T) {
	report := Analyze(scoredFrom(
		"Trump statement",
		"Musk statement",
		"Putin statement",
		"Trump again",
	), models.KeywordSet{
		Entities: []string{"trump", "musk", "elon", "putin", "biden"},
	}, testForecast())

	if len(report.TopEntities) > 3 {
		t.Errorf("expected at most 3 entities, got %d", len(report.TopEntities))
	}
	if report.TopEntities[0] != "trump" {
		t.Errorf("expected trump first, got %q", report.TopEntities[0])
	}
}

func TestSelectForecast(t *testing.T) {
	tests := []struct {
		name   string
		titles []string
		want   string
	}{
		{
			name:   "crypto branch",
			titles: []string{"Bitcoin rallies past resistance"},
			want:   forecastCrypto,
		},
		{
			name:   "metal branch",
			titles: []string{"Gold hits record high"},
			want:   forecastMetal,
		},
		{
			name:   "crypto wins over metal",
			titles: []string{"Gold steady while bitcoin surges"},
			want:   forecastCrypto,
		},
		{
			name:   "generic fallback",
			titles: []string{"Rates unchanged, markets quiet"},
			want:   forecastGeneric,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := Analyze(scoredFrom(tt.titles...), testKeywords(), testForecast())
			if report.Forecast != tt.want {
				t.Errorf("expected forecast %q, got %q", tt.want, report.Forecast)
			}
		})
	}
}

func TestSelectForecastWindowLimits(t *testing.T) {
	// Put the only bitcoin mention on a zero-score headline and fill the top
	// window with higher-scoring ones; the mention must fall outside the
	// inspected window.
	titles := make([]string, 0, forecastWindow+1)
	for i := 0; i < forecastWindow; i++ {
		titles = append(titles, "Rate watch update "+string(rune('a'+i)))
	}
	titles = append(titles, "Bitcoin miner anniversary")

	report := Analyze(scoredFrom(titles...), testKeywords(), testForecast())

	if report.Forecast != forecastGeneric {
		t.Errorf("expected generic forecast when crypto mention is outside the window, got %q", report.Forecast)
	}
}
