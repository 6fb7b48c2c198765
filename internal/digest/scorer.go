package digest

import (
	"sort"
	"strings"

	"github.com/crypsidex/digest-bot/pkg/models"
)

// Scoring weights per distinct matched term
const (
	marketWeight     = 2
	entityWeight     = 3
	escalationWeight = 2
)

// Score computes the relevance score of one headline against the keyword
// set. Matching is case-insensitive substring containment over the original
// and translated text combined; each distinct term counts once regardless of
// how often it occurs. Pure function of the inputs.
func Score(item models.Item, ks models.KeywordSet) int {
	text := item.CombinedText()

	score := 0
	for _, kw := range ks.Market {
		if strings.Contains(text, strings.ToLower(kw)) {
			score += marketWeight
		}
	}
	for _, kw := range ks.Entities {
		if strings.Contains(text, strings.ToLower(kw)) {
			score += entityWeight
		}
	}
	for _, kw := range ks.Escalation {
		if strings.Contains(text, strings.ToLower(kw)) {
			score += escalationWeight
		}
	}

	return score
}

// ScoreAll scores every headline, preserving input order
func ScoreAll(items []models.Item, ks models.KeywordSet) []models.ScoredItem {
	scored := make([]models.ScoredItem, 0, len(items))
	for _, item := range items {
		scored = append(scored, models.ScoredItem{Item: item, Score: Score(item, ks)})
	}
	return scored
}

// Rank sorts scored headlines by descending score. The sort is stable, so
// headlines with equal scores keep their original relative order.
func Rank(scored []models.ScoredItem) []models.ScoredItem {
	ranked := make([]models.ScoredItem, len(scored))
	copy(ranked, scored)

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	return ranked
}

// TopN returns the first n of the ranked sequence
func TopN(ranked []models.ScoredItem, n int) []models.ScoredItem {
	if len(ranked) < n {
		n = len(ranked)
	}
	return ranked[:n]
}
