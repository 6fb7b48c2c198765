// Package digest implements the on-demand half of the pipeline: scoring the
// cached headline set against the configured keyword sets, ranking the top
// insights and deriving the heuristic analysis report. Everything here is
// pure computation over a snapshot; nothing touches the network.
package digest

import "github.com/crypsidex/digest-bot/pkg/models"

// Build assembles the consumer-facing digest from a cache snapshot. The
// second return is false when the snapshot holds no headlines yet (no
// successful refresh has happened, or every source failed).
func Build(snap *models.Snapshot, ks models.KeywordSet, fc models.ForecastKeywords, topN int) (models.Digest, bool) {
	if snap == nil || len(snap.Items) == 0 {
		return models.Digest{}, false
	}

	scored := ScoreAll(snap.Items, ks)

	return models.Digest{
		Ranked: TopN(Rank(scored), topN),
		Report: Analyze(scored, ks, fc),
	}, true
}
