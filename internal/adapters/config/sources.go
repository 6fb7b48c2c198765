package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/crypsidex/digest-bot/pkg/models"
)

// Source is one named headline feed
type Source struct {
	Name string `yaml:"name"`
	URL  string `yaml:"url"`
}

// SourcesFile is the YAML structure for feeds and keyword sets.
// Keyword lists left empty in the file fall back to the built-in defaults.
type SourcesFile struct {
	Feeds    []Source                `yaml:"feeds"`
	Keywords models.KeywordSet       `yaml:"keywords"`
	Forecast models.ForecastKeywords `yaml:"forecast"`
}

// defaultFeeds mirror the feed set the bot shipped with
var defaultFeeds = []Source{
	{Name: "Reuters", URL: "https://www.reuters.com/rssFeed/businessNews"},
	{Name: "Bloomberg", URL: "https://www.bloomberg.com/feed/podcast/etf-report.xml"},
	{Name: "CoinDesk", URL: "https://www.coindesk.com/arc/outboundfeeds/rss/?outputType=xml"},
	{Name: "Cointelegraph", URL: "https://cointelegraph.com/rss"},
	{Name: "FT", URL: "https://www.ft.com/?format=rss"},
	{Name: "Investing", URL: "https://www.investing.com/rss/news.rss"},
}

var defaultKeywords = models.KeywordSet{
	Market: []string{
		"tariff", "trade", "sanction", "inflation", "rate", "fed", "cpi", "gdp",
		"bank", "default", "hack", "regulation", "etf", "ipo", "halving", "merger",
		"acquisition", "crash", "collapse", "tariffs", "trade war",
	},
	Entities: []string{
		"trump", "musk", "elon", "zuckerberg", "biden", "xi", "putin", "saylor", "cz", "binance",
	},
	Escalation: []string{
		"war", "conflict", "attack", "invasion", "sanction", "tariff", "hack",
	},
}

var defaultForecast = models.ForecastKeywords{
	Crypto: []string{"bitcoin", "btc"},
	Metal:  []string{"gold", "золото"},
}

// LoadSources reads the feed list and keyword sets from the YAML file.
// A missing file is not an error: the built-in defaults apply.
func LoadSources(path string) (*SourcesFile, error) {
	sf := &SourcesFile{
		Feeds:    defaultFeeds,
		Keywords: defaultKeywords,
		Forecast: defaultForecast,
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return sf, nil
		}
		return nil, fmt.Errorf("failed to read sources file: %w", err)
	}

	var parsed SourcesFile
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse sources file: %w", err)
	}

	if len(parsed.Feeds) > 0 {
		sf.Feeds = parsed.Feeds
	}
	if len(parsed.Keywords.Market) > 0 {
		sf.Keywords.Market = parsed.Keywords.Market
	}
	if len(parsed.Keywords.Entities) > 0 {
		sf.Keywords.Entities = parsed.Keywords.Entities
	}
	if len(parsed.Keywords.Escalation) > 0 {
		sf.Keywords.Escalation = parsed.Keywords.Escalation
	}
	if len(parsed.Forecast.Crypto) > 0 {
		sf.Forecast.Crypto = parsed.Forecast.Crypto
	}
	if len(parsed.Forecast.Metal) > 0 {
		sf.Forecast.Metal = parsed.Forecast.Metal
	}

	return sf, nil
}
