package parser

import (
	"strconv"
	"strings"

	"github.com/m-zayed5722/food-sense/internal/catalog"
)

// numberWords maps spelled-out quantities to integers.
var numberWords = map[string]int{
	"one": 1, "two": 2, "three": 3, "four": 4, "five": 5,
	"six": 6, "seven": 7, "eight": 8, "nine": 9, "ten": 10,
	"a": 1, "an": 1, "single": 1, "double": 2, "triple": 3,
}

// vagueQuantity is an implied-quantity phrase like "a couple of wings".
type vagueQuantity struct {
	phrase   string
	quantity int
}

// vagueQuantities is searched in order; "half dozen" precedes "dozen" so the
// longer phrase claims its keyword first.
var vagueQuantities = []vagueQuantity{
	{"couple", 2}, {"pair", 2}, {"few", 2},
	{"some", 1}, {"bunch", 3}, {"several", 3},
	{"half dozen", 6}, {"dozen", 12},
}

// extractQuantities maps catalog keywords to the quantities the text asks
// for. Items it leaves unmapped default to one at assembly. It never fails;
// empty input yields an empty map.
func extractQuantities(text string, idx *catalog.Index) map[string]int {
	quantities := make(map[string]int)
	words := strings.Fields(text)

	// Numeric and number-word pass: a quantity token binds to the longest
	// catalog keyword found in the following three tokens.
	for i, word := range words {
		qty := 0
		if n, err := strconv.Atoi(word); err == nil {
			qty = n
		} else if n, ok := numberWords[word]; ok {
			qty = n
		}
		if qty <= 0 || i+1 >= len(words) {
			continue
		}

		end := i + 4
		if end > len(words) {
			end = len(words)
		}
		window := strings.Join(words[i+1:end], " ")

		best := ""
		for _, keyword := range idx.Keywords() {
			if strings.Contains(window, keyword) && len(keyword) > len(best) {
				best = keyword
			}
		}
		if best != "" {
			quantities[best] = qty
		}
	}

	// Implicit pass: a vague phrase binds the nearest unassigned keyword
	// within a bounded character window around the phrase.
	for _, vq := range vagueQuantities {
		pos := strings.Index(text, vq.phrase)
		if pos < 0 {
			continue
		}
		start := pos - 20
		if start < 0 {
			start = 0
		}
		end := pos + 50
		if end > len(text) {
			end = len(text)
		}
		window := text[start:end]

		for _, keyword := range idx.Keywords() {
			if _, assigned := quantities[keyword]; assigned {
				continue
			}
			if strings.Contains(window, keyword) {
				quantities[keyword] = vq.quantity
				break
			}
		}
	}

	return quantities
}
