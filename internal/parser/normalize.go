package parser

import (
	"regexp"
	"strings"
)

// replacement is one entry of the normalization table. Entries are applied
// in table order, since an earlier substitution can produce text a later
// rule matches (e.g. "w/" becomes "with" before "with"-based extraction).
type replacement struct {
	from string
	to   string
	re   *regexp.Regexp // nil for plain substring replacement
}

func wordFix(from, to string) replacement {
	return replacement{from: from, to: to, re: regexp.MustCompile(`\b` + regexp.QuoteMeta(from) + `\b`)}
}

func literalFix(from, to string) replacement {
	return replacement{from: from, to: to}
}

// replacements fixes common typos and expands abbreviations. Word-shaped
// keys match on word boundaries so that a fix never corrupts a longer word
// ("sprit" must not rewrite "sprite"); symbol keys replace literally.
var replacements = []replacement{
	wordFix("fires", "fries"),
	wordFix("mcchiken", "mcchicken"),
	wordFix("sprit", "sprite"),
	wordFix("burgr", "burger"),
	wordFix("mayo", "mayonnaise"),
	literalFix("w/", "with"),
	literalFix("&", "and"),
	wordFix("chk", "chicken"),
	wordFix("bf", "beef"),
	wordFix("pep", "pepperoni"),
	wordFix("dq", "dairy queen"),
	wordFix("mcd", "mcdonalds"),
	wordFix("reeses", "reese's"),
	wordFix("gp", "garlic parmesan"),
	wordFix("lp", "lemon pepper"),
	wordFix("shawerma", "shawarma"),
	wordFix("shwarma", "shawarma"),
}

var (
	punctRe      = regexp.MustCompile(`[,;]`)
	whitespaceRe = regexp.MustCompile(`\s+`)
)

// Normalize lowercases and cleans raw order text. It is idempotent: running
// it on its own output is a fixed point. Empty input yields empty output.
func Normalize(text string) string {
	if text == "" {
		return ""
	}

	text = strings.ToLower(strings.TrimSpace(text))

	for _, r := range replacements {
		if r.re != nil {
			text = r.re.ReplaceAllString(text, r.to)
		} else {
			text = strings.ReplaceAll(text, r.from, r.to)
		}
	}

	text = punctRe.ReplaceAllString(text, " ")
	text = whitespaceRe.ReplaceAllString(text, " ")

	return strings.TrimSpace(text)
}
