package telegram

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/crypsidex/digest-bot/pkg/models"
)

const (
	welcomeMessage = "Привет 👋\nЯ CrypSideX — минималистичный бот для курсов и инсайдов.\nНажми кнопку ниже:"
	noNewsMessage  = "Новости пока недоступны — попробуйте позже."

	unavailable = "—"
)

// renderRates formats the quick market summary from the latest snapshot.
// Unavailable values render as a placeholder, never as an error.
func renderRates(snap *models.Snapshot) string {
	updated := unavailable
	if snap.HasData() {
		updated = snap.UpdatedAt.Format("2006-01-02 15:04 UTC")
	}

	return fmt.Sprintf(
		"📊 <b>Курсы (быстрая сводка)</b>\n\n"+
			"💵 USD (ЦБ) = <b>%s</b> ₽\n"+
			"₿ BTC = <b>%s</b> $\n"+
			"🥇 Gold (1 oz) = <b>%s</b> $\n\n"+
			"🕘 обновлено: %s",
		formatValue(snap.USDRate),
		formatValue(snap.BTCPrice),
		formatValue(snap.GoldPrice),
		updated,
	)
}

// renderDigest formats the ranked insights and the analysis report
func renderDigest(d models.Digest) string {
	var b strings.Builder

	b.WriteString("<b>🧠 Топ инсайдов (собраны и переведены):</b>\n\n")
	for i, item := range d.Ranked {
		b.WriteString(fmt.Sprintf("%d. [%s] %s\n", i+1, item.Source, item.TranslatedText))
	}

	b.WriteString("\n<b>🤖 Краткая аналитика:</b>\n")
	b.WriteString(renderReport(d.Report))

	return b.String()
}

// renderReport formats the heuristic analysis section line by line
func renderReport(r models.AnalysisReport) string {
	lines := make([]string, 0, 8)

	lines = append(lines, "⏱ Обновление: "+r.GeneratedAt.Format("2006-01-02 15:04 UTC"))

	if r.TopTheme != "" {
		lines = append(lines, fmt.Sprintf("🔎 Топ тема в новостях: «%s» (часто встречается)", r.TopTheme))
	} else {
		lines = append(lines, "🔎 Топ тема: неявная — смешанные новости")
	}

	if len(r.TopEntities) > 0 {
		upper := make([]string, len(r.TopEntities))
		for i, e := range r.TopEntities {
			upper[i] = strings.ToUpper(e)
		}
		lines = append(lines, "👥 Персоны, которых упоминают чаще: "+strings.Join(upper, ", "))
	}

	if r.GeoRisk {
		lines = append(lines, "⚠️ Риск геополитической эскалации — может поднять волатильность на сырьевых рынках и валюте.")
	}
	if r.SecurityRisk {
		lines = append(lines, "🔐 Риски безопасности (взломы/утечки) — потенциальный удар по биржам/ликвидности.")
	}

	lines = append(lines, "📈 Краткий прогноз: "+r.Forecast)

	recs := make([]string, 0, len(r.Recommendations))
	for _, rec := range r.Recommendations {
		recs = append(recs, "- "+rec)
	}
	lines = append(lines, "💡 Рекомендации:\n"+strings.Join(recs, "\n"))

	return strings.Join(lines, "\n")
}

func formatValue(v *decimal.Decimal) string {
	if v == nil {
		return unavailable
	}
	return v.StringFixed(2)
}
