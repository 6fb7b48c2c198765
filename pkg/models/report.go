package models

import "time"

// AnalysisReport is the heuristic summary derived from the full scored
// headline set. Recomputed fresh on every request, never cached.
type AnalysisReport struct {
	GeneratedAt     time.Time `json:"generated_at"`
	TopTheme        string    `json:"top_theme,omitempty"`
	TopEntities     []string  `json:"top_entities,omitempty"`
	GeoRisk         bool      `json:"geo_risk"`
	SecurityRisk    bool      `json:"security_risk"`
	Recommendations []string  `json:"recommendations"`
	Forecast        string    `json:"forecast"`
}

// Digest is the consumer-facing output: the ranked top-N headlines plus the
// analysis report. The presentation layer formats it for delivery.
type Digest struct {
	Ranked []ScoredItem   `json:"ranked_items"`
	Report AnalysisReport `json:"report"`
}
