package digest

import "github.com/crypsidex/digest-bot/pkg/models"

// Dedupe collapses duplicate headlines across sources by case-insensitive
// exact title match. The first occurrence wins, so earlier source order is
// preserved. Accumulation stops once maxItems unique headlines are kept; the
// result never exceeds that cap.
func Dedupe(items []models.Item, maxItems int) []models.Item {
	seen := make(map[string]struct{}, len(items))
	out := make([]models.Item, 0, maxItems)

	for _, item := range items {
		if len(out) >= maxItems {
			break
		}
		key := item.DedupKey()
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, item)
	}

	return out
}
