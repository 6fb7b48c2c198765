package models

import "strings"

// Item represents single ingested headline
type Item struct {
	Source         string `json:"source"`
	OriginalText   string `json:"original_text"`
	TranslatedText string `json:"translated_text"`
}

// DedupKey returns the identity key used to collapse duplicate headlines
// across sources (lowercased original title)
func (i Item) DedupKey() string {
	return strings.ToLower(i.OriginalText)
}

// CombinedText returns original and translated text joined for keyword matching
func (i Item) CombinedText() string {
	return strings.ToLower(i.OriginalText + " " + i.TranslatedText)
}

// ScoredItem is an Item with its relevance score attached
type ScoredItem struct {
	Item
	Score int `json:"score"`
}
