package parser

import (
	"strings"

	"github.com/m-zayed5722/food-sense/internal/catalog"
	"github.com/m-zayed5722/food-sense/internal/models"
)

// sizeAliases maps size words to their canonical size. Two-word aliases
// ("extra large") are checked against adjacent token pairs.
var sizeAliases = map[string]models.Size{
	"small": models.SizeSmall, "sm": models.SizeSmall, "mini": models.SizeSmall,
	"medium": models.SizeMedium, "med": models.SizeMedium, "m": models.SizeMedium,
	"regular": models.SizeMedium,
	"large":   models.SizeLarge, "lg": models.SizeLarge, "l": models.SizeLarge,
	"big": models.SizeLarge,
	"extra large": models.SizeExtraLarge, "xl": models.SizeExtraLarge,
	"jumbo": models.SizeExtraLarge, "huge": models.SizeExtraLarge,
	"super": models.SizeExtraLarge,
}

// extractSizes maps catalog keywords to the sizes the text asks for. Each
// size occurrence searches the following, then the preceding, three-token
// window and accepts only an item actually offered in that size, so "large
// wings" never sizes an item with no size variants.
func extractSizes(text string, idx *catalog.Index) map[string]models.Size {
	sizes := make(map[string]models.Size)
	words := strings.Fields(text)

	for i, word := range words {
		size, found := sizeAliases[word]

		if i+1 < len(words) {
			if twoWord, ok := sizeAliases[word+" "+words[i+1]]; ok {
				size, found = twoWord, true
			}
		}
		if !found {
			continue
		}

		ahead := i + 4
		if ahead > len(words) {
			ahead = len(words)
		}
		behind := i - 3
		if behind < 0 {
			behind = 0
		}
		windows := []string{
			strings.Join(words[i+1:ahead], " "),
			strings.Join(words[behind:i], " "),
		}

		for _, window := range windows {
			best := ""
			for _, keyword := range idx.Keywords() {
				if !strings.Contains(window, keyword) {
					continue
				}
				item, ok := idx.ItemByKeyword(keyword)
				if !ok || !item.HasSize(size) {
					continue
				}
				if len(keyword) > len(best) {
					best = keyword
				}
			}
			if best != "" {
				sizes[best] = size
				break
			}
		}
	}

	return sizes
}
