package workers

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/crypsidex/digest-bot/internal/adapters/markets"
	"github.com/crypsidex/digest-bot/internal/cache"
	"github.com/crypsidex/digest-bot/internal/digest"
	"github.com/crypsidex/digest-bot/pkg/logger"
	"github.com/crypsidex/digest-bot/pkg/models"
)

// HeadlineFetcher retrieves raw headlines from all configured sources
type HeadlineFetcher interface {
	FetchHeadlines(ctx context.Context) []models.Item
}

// Translator maps text to the target language, falling back to the original
type Translator interface {
	Translate(ctx context.Context, text string) string
}

// RefreshWorker runs one full refresh cycle per Run call: auxiliary market
// values, then fetch -> dedupe -> translate, then a single atomic publish of
// the new snapshot. Every failure inside a cycle degrades the snapshot
// instead of aborting it; Run never returns an error so the periodic loop
// never stops.
type RefreshWorker struct {
	store      *cache.Store
	fetcher    HeadlineFetcher
	translator Translator
	usd        markets.Provider
	btc        markets.Provider
	gold       markets.Provider
	maxItems   int
}

// NewRefreshWorker creates new refresh worker
func NewRefreshWorker(
	store *cache.Store,
	fetcher HeadlineFetcher,
	translator Translator,
	usd, btc, gold markets.Provider,
	maxItems int,
) *RefreshWorker {
	return &RefreshWorker{
		store:      store,
		fetcher:    fetcher,
		translator: translator,
		usd:        usd,
		btc:        btc,
		gold:       gold,
		maxItems:   maxItems,
	}
}

// Name returns worker name for logging
func (w *RefreshWorker) Name() string {
	return "refresh"
}

// Run executes one refresh cycle
func (w *RefreshWorker) Run(ctx context.Context) error {
	started := time.Now()
	result := models.CycleResult{}

	snap := &models.Snapshot{
		USDRate:   w.fetchValue(ctx, w.usd, &result),
		BTCPrice:  w.fetchValue(ctx, w.btc, &result),
		GoldPrice: w.fetchValue(ctx, w.gold, &result),
	}

	raw := w.fetcher.FetchHeadlines(ctx)
	result.Fetched = len(raw)
	if len(raw) == 0 {
		result.AddReason("no headlines fetched from any source")
	}

	unique := digest.Dedupe(raw, w.maxItems)
	for i := range unique {
		unique[i].TranslatedText = w.translator.Translate(ctx, unique[i].OriginalText)
	}
	result.Kept = len(unique)

	snap.Items = unique
	snap.UpdatedAt = time.Now().UTC()
	w.store.Publish(snap)

	result.Duration = time.Since(started)
	result.Status = classify(snap, &result)
	w.report(result)

	return nil
}

// fetchValue fetches one auxiliary market value; a failure records a reason
// and leaves the field unavailable for this cycle
func (w *RefreshWorker) fetchValue(ctx context.Context, p markets.Provider, result *models.CycleResult) *decimal.Decimal {
	value, err := p.Fetch(ctx)
	if err != nil {
		result.AddReason(p.Name() + ": " + err.Error())
		return nil
	}
	return &value
}

func classify(snap *models.Snapshot, result *models.CycleResult) models.CycleStatus {
	allValuesMissing := snap.USDRate == nil && snap.BTCPrice == nil && snap.GoldPrice == nil
	if allValuesMissing && len(snap.Items) == 0 {
		return models.CycleFailed
	}
	if len(result.Reasons) > 0 {
		return models.CyclePartial
	}
	return models.CycleSuccess
}

func (w *RefreshWorker) report(result models.CycleResult) {
	fields := []zap.Field{
		zap.String("status", string(result.Status)),
		zap.Int("fetched", result.Fetched),
		zap.Int("kept", result.Kept),
		zap.Duration("duration", result.Duration),
	}
	if len(result.Reasons) > 0 {
		fields = append(fields, zap.Strings("reasons", result.Reasons))
	}

	switch result.Status {
	case models.CycleFailed:
		logger.Error("refresh cycle failed, serving unavailable data until next cycle", fields...)
	case models.CyclePartial:
		logger.Warn("refresh cycle completed with degradations", fields...)
	default:
		logger.Info("refresh cycle completed", fields...)
	}
}
