package parser

import (
	"regexp"
	"strings"

	"github.com/m-zayed5722/food-sense/internal/models"
)

// modPattern pairs a compiled pattern with the modification kind its capture
// produces. Go's regexp has no lookahead, so where the phrase must stop
// before a size word, connector, or digit, the terminator is matched as a
// non-capturing consumed group with an end-of-string alternative.
type modPattern struct {
	re   *regexp.Regexp
	kind models.ModificationKind
}

// standardPatterns is evaluated once each, in order. Order matters: the
// narrow "no"/"extra" single-word rules run before the phrase rules so a
// later broad capture cannot swallow their targets first.
var standardPatterns = []modPattern{
	{regexp.MustCompile(`\bno\s+(\w+)`), models.ModRemove},
	{regexp.MustCompile(`\bextra\s+(\w+)`), models.ModExtra},
	{regexp.MustCompile(`\bwith\s+([\w\s]+?)(?:\s+(?:large|medium|small|and|\d+)|$)`), models.ModAdd},
	{regexp.MustCompile(`\badd\s+([\w\s]+?)(?:\s+(?:large|medium|small|extra|no|and|\d+)|$)`), models.ModAdd},
	{regexp.MustCompile(`\binclude\s+([\w\s]+?)(?:\s+(?:large|medium|small|extra|no|and|\d+)|$)`), models.ModAdd},
	{regexp.MustCompile(`\bwithout\s+(\w+)`), models.ModRemove},
	{regexp.MustCompile(`\bhold\s+(?:the\s+)?(\w+)`), models.ModRemove},
	{regexp.MustCompile(`\bskip\s+(?:the\s+)?(\w+)`), models.ModRemove},
	{regexp.MustCompile(`([\w\s,]+?)\s+on\s+the\s+side`), models.ModOnSide},
	{regexp.MustCompile(`\bside\s+of\s+([\w\s]+)`), models.ModOnSide},
}

// sequentialConnectors are the chain words of the sequential pass, with the
// kind each chain produces.
var sequentialConnectors = []struct {
	word string
	kind models.ModificationKind
}{
	{"no", models.ModRemove},
	{"extra", models.ModExtra},
}

// chainTerminators end a sequential target: the next connector, a pattern
// word, or a size word. Digits terminate too, checked separately.
var chainTerminators = map[string]bool{
	"no": true, "extra": true, "and": true, "with": true, "add": true,
	"include": true, "without": true, "hold": true, "skip": true,
	"on": true, "side": true, "of": true, "for": true, "please": true,
	"large": true, "medium": true, "small": true, "xl": true,
	"jumbo": true, "huge": true, "super": true,
}

// condiments are added as plain additions when mentioned with no
// modification word at all ("big mac, ketchup").
var condiments = []string{
	"mayonnaise", "ketchup", "mustard", "ranch", "bbq sauce", "hot sauce",
	"tahini", "garlic sauce", "honey mustard", "blue cheese", "marinara",
	"special sauce", "buffalo sauce",
}

// leadingArticles are stripped from the front of each captured target.
var leadingArticles = []string{"the ", "a ", "some "}

// modAccumulator collects modifications with first-wins deduplication on
// the case-insensitive target.
type modAccumulator struct {
	mods []models.Modification
	seen map[string]bool
}

func newModAccumulator() *modAccumulator {
	return &modAccumulator{seen: make(map[string]bool)}
}

// add cleans one target and records it unless already present. Targets that
// arrive with their own leading connector ("extra cheese" captured by a
// broad phrase rule) are re-kinded so they deduplicate against the narrow
// rule's capture instead of double-counting at pricing time.
func (a *modAccumulator) add(target string, kind models.ModificationKind) {
	target = strings.TrimSpace(target)
	for _, article := range leadingArticles {
		target = strings.TrimPrefix(target, article)
	}

	if rest, ok := strings.CutPrefix(target, "extra "); ok {
		target, kind = rest, models.ModExtra
	} else if rest, ok := strings.CutPrefix(target, "no "); ok {
		target, kind = rest, models.ModRemove
	}

	target = strings.TrimSpace(target)
	if len(target) <= 1 {
		return
	}

	key := strings.ToLower(target)
	if a.seen[key] {
		return
	}
	a.seen[key] = true
	a.mods = append(a.mods, models.Modification{
		Kind:        kind,
		Target:      target,
		Description: string(kind) + " " + target,
	})
}

// containsTarget reports whether any recorded target contains the given
// string, used to keep the condiment pass from re-adding captured phrases.
func (a *modAccumulator) containsTarget(s string) bool {
	for _, mod := range a.mods {
		if strings.Contains(strings.ToLower(mod.Target), s) {
			return true
		}
	}
	return false
}

// extractModifications pulls every requested change out of the text in
// three ordered passes: sequential chains, standard patterns, standalone
// condiments. The result carries no prices; deltas are bound per item at
// assembly, where targets invalid for an item are silently dropped.
func extractModifications(text string) []models.Modification {
	text = strings.ToLower(text)
	acc := newModAccumulator()

	extractSequential(text, acc)

	for _, p := range standardPatterns {
		for _, match := range p.re.FindAllStringSubmatch(text, -1) {
			for _, target := range splitTargets(match[1]) {
				acc.add(target, p.kind)
			}
		}
	}

	for _, condiment := range condiments {
		if strings.Contains(text, condiment) && !acc.containsTarget(condiment) {
			acc.add(condiment, models.ModAdd)
		}
	}

	return acc.mods
}

// extractSequential handles chains like "no pickles no lettuce no onions"
// and "extra ketchup extra mayonnaise". A chain needs at least two
// occurrences of the connector; a lone "no X" belongs to the standard pass.
func extractSequential(text string, acc *modAccumulator) {
	words := strings.Fields(text)

	for _, connector := range sequentialConnectors {
		count := 0
		for _, w := range words {
			if w == connector.word {
				count++
			}
		}
		if count < 2 {
			continue
		}

		for i := 0; i < len(words); i++ {
			if words[i] != connector.word {
				continue
			}
			var target []string
			for j := i + 1; j < len(words); j++ {
				w := words[j]
				if chainTerminators[w] || isDigits(w) {
					break
				}
				target = append(target, w)
			}
			if len(target) > 0 {
				acc.add(strings.Join(target, " "), connector.kind)
			}
		}
	}
}

// splitTargets splits a captured phrase on " and " and "," into individual
// targets ("mayonnaise and ketchup" names two changes, not one).
func splitTargets(phrase string) []string {
	phrase = strings.ReplaceAll(phrase, " and ", ",")
	parts := strings.Split(phrase, ",")

	targets := parts[:0]
	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			targets = append(targets, part)
		}
	}
	return targets
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
