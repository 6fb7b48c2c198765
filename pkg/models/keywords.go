package models

// KeywordSet holds the configured term lists driving scoring and analysis.
// Market terms weigh 2, entity terms 3, escalation terms 2. List order is
// canonical: frequency ties in the analyzer resolve to the earlier term.
// Loaded once at startup, read-only thereafter.
type KeywordSet struct {
	Market     []string `yaml:"market"`
	Entities   []string `yaml:"entities"`
	Escalation []string `yaml:"escalation"`
}

// ForecastKeywords selects the forecast branch: crypto terms are checked
// before metal terms, anything else falls to the generic forecast.
type ForecastKeywords struct {
	Crypto []string `yaml:"crypto"`
	Metal  []string `yaml:"metal"`
}
