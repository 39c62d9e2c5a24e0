package parser

import (
	"regexp"
	"sort"
	"strings"

	"github.com/m-zayed5722/food-sense/internal/models"
)

// Match confidence tiers. An exact multi-word keyword is near-certain, a
// single word at a boundary slightly less, and a fuzzy token overlap is a
// last resort.
const (
	confidenceMultiWord  = 0.95
	confidenceSingleWord = 0.9
	confidenceFuzzy      = 0.6
)

// ItemMatch is one catalog item found in the text with its match confidence.
type ItemMatch struct {
	Item       *models.MenuItemTemplate
	Confidence float64
}

// keywordEntry preserves the order keywords were registered in, so that
// matching is deterministic instead of following map iteration.
type keywordEntry struct {
	keyword string
	item    *models.MenuItemTemplate
}

func buildKeywordEntries(items []*models.MenuItemTemplate) []keywordEntry {
	var entries []keywordEntry
	seen := make(map[string]bool)
	for _, item := range items {
		for _, keyword := range item.Keywords {
			key := strings.ToLower(keyword)
			if seen[key] {
				continue
			}
			seen[key] = true
			entries = append(entries, keywordEntry{keyword: key, item: item})
		}
	}
	return entries
}

// findMenuItems locates catalog items referenced by the text. When scoped
// is non-nil matching is restricted to that subset and the fuzzy tier is
// disabled; fuzzy matching against a narrowed menu produces too many false
// hits to be useful. An item found through several keywords keeps its
// highest confidence. Results sort by confidence descending with discovery
// order breaking ties.
func findMenuItems(text string, items []*models.MenuItemTemplate, scoped bool) []ItemMatch {
	entries := buildKeywordEntries(items)

	var matches []ItemMatch
	found := make(map[*models.MenuItemTemplate]bool)

	// Tier 1: exact multi-word keyword substring.
	for _, e := range entries {
		if strings.Contains(e.keyword, " ") && strings.Contains(text, e.keyword) && !found[e.item] {
			found[e.item] = true
			matches = append(matches, ItemMatch{e.item, confidenceMultiWord})
		}
	}

	// Tier 2: exact single-word keyword at a word boundary.
	for _, e := range entries {
		if strings.Contains(e.keyword, " ") || found[e.item] {
			continue
		}
		pattern := `\b` + regexp.QuoteMeta(e.keyword) + `\b`
		if matched, err := regexp.MatchString(pattern, text); err == nil && matched {
			found[e.item] = true
			matches = append(matches, ItemMatch{e.item, confidenceSingleWord})
		}
	}

	// Tier 3: fuzzy token overlap, only as a fallback on the full catalog.
	if len(matches) == 0 && !scoped {
		words := strings.Fields(text)
		for _, e := range entries {
			if found[e.item] || len(e.keyword) < 4 {
				continue
			}
			for _, word := range words {
				if len(word) < 4 {
					continue
				}
				if fuzzyOverlap(word, e.keyword) {
					found[e.item] = true
					matches = append(matches, ItemMatch{e.item, confidenceFuzzy})
					break
				}
			}
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Confidence > matches[j].Confidence
	})
	return matches
}

// fuzzyOverlap reports whether one string contains the other and the
// contained string covers at least 60% of the container's length.
func fuzzyOverlap(word, keyword string) bool {
	if strings.Contains(keyword, word) && len(word)*10 >= len(keyword)*6 {
		return true
	}
	if strings.Contains(word, keyword) && len(keyword)*10 >= len(word)*6 {
		return true
	}
	return false
}
