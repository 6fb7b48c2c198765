package digest

import (
	"strings"
	"time"

	"github.com/crypsidex/digest-bot/pkg/models"
)

// Fixed risk word sets. Any match in a headline's combined text raises the
// corresponding flag for the whole report.
var (
	geoRiskWords      = []string{"war", "invasion", "conflict", "attack"}
	securityRiskWords = []string{"hack", "breach", "leak"}
)

// forecastWindow is how many of the highest-scoring headlines feed the
// forecast branch selection
const forecastWindow = 12

// Recommendation rule table. Rules are evaluated in order and fire
// independently; when none fires the generic diversification line is the
// single recommendation.
var (
	tariffThemes = []string{"tariff", "sanction", "trade"}
	rateThemes   = []string{"rate", "fed", "inflation", "cpi"}

	recTariffHedge = "Пересмотреть экспозицию на импортозависимые активы; подумать о хеджах против пошлин."
	recRateRisk    = "Долгосрочные облигации и чувствительные к ставкам активы — под угрозой; рассмотрите защиту портфеля."
	recColdWallet  = "Ограничьте хранение средств на биржах; используйте холодные кошельки/мульти-sig."
	recDefensive   = "Держать часть капитала в защитных активах (золото, стабильные валюты)."
	recDiversify   = "Сохранять диверсификацию. Не паниковать — выбирать позиции по риск-менеджменту."

	forecastCrypto  = "повышенная волатильность на крипто; возможны быстрые отскоки."
	forecastMetal   = "повышенный спрос на золото как защитный актив."
	forecastGeneric = "рынок может реагировать на новости — следите за топ-3 событиями."
)

// Analyze aggregates theme and entity frequencies and risk flags across the
// full scored headline set and synthesizes the heuristic report. Every field
// is derived fresh per call.
func Analyze(scored []models.ScoredItem, ks models.KeywordSet, fc models.ForecastKeywords) models.AnalysisReport {
	themeCounts := make(map[string]int)
	entityCounts := make(map[string]int)
	geoRisk := false
	securityRisk := false

	for _, item := range scored {
		text := item.CombinedText()

		for _, kw := range ks.Market {
			if strings.Contains(text, strings.ToLower(kw)) {
				themeCounts[kw]++
			}
		}
		for _, kw := range ks.Entities {
			if strings.Contains(text, strings.ToLower(kw)) {
				entityCounts[kw]++
			}
		}
		if containsAny(text, geoRiskWords) {
			geoRisk = true
		}
		if containsAny(text, securityRiskWords) {
			securityRisk = true
		}
	}

	report := models.AnalysisReport{
		GeneratedAt:  time.Now().UTC(),
		TopTheme:     topTheme(ks.Market, themeCounts),
		GeoRisk:      geoRisk,
		SecurityRisk: securityRisk,
	}
	report.TopEntities = topEntities(ks.Entities, entityCounts, 3)

	// Rule table, fixed order, each rule appends independently
	if anyThemePresent(themeCounts, tariffThemes) {
		report.Recommendations = append(report.Recommendations, recTariffHedge)
	}
	if anyThemePresent(themeCounts, rateThemes) {
		report.Recommendations = append(report.Recommendations, recRateRisk)
	}
	if securityRisk {
		report.Recommendations = append(report.Recommendations, recColdWallet)
	}
	if geoRisk {
		report.Recommendations = append(report.Recommendations, recDefensive)
	}
	if len(report.Recommendations) == 0 {
		report.Recommendations = append(report.Recommendations, recDiversify)
	}

	report.Forecast = selectForecast(scored, fc)

	return report
}

// topTheme returns the market term with the highest count; ties resolve to
// the term appearing earlier in the canonical list. Empty when nothing
// matched anywhere.
func topTheme(canonical []string, counts map[string]int) string {
	best := ""
	bestCount := 0
	for _, kw := range canonical {
		if counts[kw] > bestCount {
			best = kw
			bestCount = counts[kw]
		}
	}
	return best
}

// topEntities returns up to limit entity terms ordered by descending
// frequency, ties broken by canonical term order.
func topEntities(canonical []string, counts map[string]int, limit int) []string {
	present := make([]string, 0, len(canonical))
	for _, kw := range canonical {
		if counts[kw] > 0 {
			present = append(present, kw)
		}
	}

	// Stable selection keeps canonical order inside equal counts
	for i := 1; i < len(present); i++ {
		for j := i; j > 0 && counts[present[j]] > counts[present[j-1]]; j-- {
			present[j], present[j-1] = present[j-1], present[j]
		}
	}

	if len(present) > limit {
		present = present[:limit]
	}
	return present
}

// selectForecast inspects the combined text of the highest-scoring window
// and picks exactly one forecast line: crypto first, then metal, then generic.
func selectForecast(scored []models.ScoredItem, fc models.ForecastKeywords) string {
	ranked := Rank(scored)
	window := TopN(ranked, forecastWindow)

	var b strings.Builder
	for _, item := range window {
		b.WriteString(item.CombinedText())
		b.WriteString(" ")
	}
	text := b.String()

	if containsAny(text, fc.Crypto) {
		return forecastCrypto
	}
	if containsAny(text, fc.Metal) {
		return forecastMetal
	}
	return forecastGeneric
}

func anyThemePresent(counts map[string]int, themes []string) bool {
	for _, t := range themes {
		if counts[t] > 0 {
			return true
		}
	}
	return false
}

func containsAny(text string, words []string) bool {
	for _, w := range words {
		if strings.Contains(text, strings.ToLower(w)) {
			return true
		}
	}
	return false
}
