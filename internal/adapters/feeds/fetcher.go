package feeds

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"
	"go.uber.org/zap"

	"github.com/crypsidex/digest-bot/internal/adapters/config"
	"github.com/crypsidex/digest-bot/pkg/logger"
	"github.com/crypsidex/digest-bot/pkg/models"
)

const userAgent = "CrypSideXBot/1.0 (+https://t.me/crypsidex)"

// Fetcher retrieves raw headlines from a configured list of named feeds.
// A failing or malformed feed is skipped; a single source failure never
// aborts the whole fetch.
type Fetcher struct {
	parser         *gofeed.Parser
	sources        []config.Source
	perSourceLimit int
	timeout        time.Duration
}

// NewFetcher creates new headline fetcher
func NewFetcher(sources []config.Source, perSourceLimit int, timeout time.Duration) *Fetcher {
	parser := gofeed.NewParser()
	parser.UserAgent = userAgent
	parser.Client = &http.Client{Timeout: timeout}

	return &Fetcher{
		parser:         parser,
		sources:        sources,
		perSourceLimit: perSourceLimit,
		timeout:        timeout,
	}
}

// FetchHeadlines fetches up to perSourceLimit titles from every source in
// order. Output order is source list order, then in-feed order. Items carry
// no translation yet.
func (f *Fetcher) FetchHeadlines(ctx context.Context) []models.Item {
	items := make([]models.Item, 0, len(f.sources)*f.perSourceLimit)
	okCount := 0

	for _, src := range f.sources {
		fetched, err := f.fetchSource(ctx, src)
		if err != nil {
			logger.Warn("failed to fetch feed",
				zap.String("source", src.Name),
				zap.Error(err),
			)
			continue
		}
		items = append(items, fetched...)
		okCount++
	}

	logger.Debug("feeds fetched",
		zap.Int("sources_ok", okCount),
		zap.Int("sources_total", len(f.sources)),
		zap.Int("headlines", len(items)),
	)

	return items
}

// SourceCount returns the number of configured sources
func (f *Fetcher) SourceCount() int {
	return len(f.sources)
}

func (f *Fetcher) fetchSource(ctx context.Context, src config.Source) ([]models.Item, error) {
	fetchCtx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	feed, err := f.parser.ParseURLWithContext(src.URL, fetchCtx)
	if err != nil {
		return nil, err
	}

	items := make([]models.Item, 0, f.perSourceLimit)
	for _, entry := range feed.Items {
		if len(items) >= f.perSourceLimit {
			break
		}
		title := strings.TrimSpace(entry.Title)
		if title == "" {
			// Malformed entry, skip it and keep the rest of the feed
			continue
		}
		items = append(items, models.Item{Source: src.Name, OriginalText: title})
	}

	return items, nil
}
