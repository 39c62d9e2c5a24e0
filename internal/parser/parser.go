// Package parser converts free-form food order text into priced orders
// using deterministic keyword and pattern rules against a loaded catalog.
package parser

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/m-zayed5722/food-sense/internal/catalog"
	"github.com/m-zayed5722/food-sense/internal/models"
)

// Parser turns one free-text request into a structured order. The rule
// parser and the LLM parser both satisfy this; callers pick the strategy.
type Parser interface {
	Parse(ctx context.Context, text string) (*models.Order, error)
}

// noteThreshold is the text length above which the raw request is carried
// on the order as a note.
const noteThreshold = 100

// RuleParser is the deterministic rule-based parser. It holds only the
// read-only catalog index, so a single instance is safe for concurrent use;
// every call is a pure function of (text, catalog).
type RuleParser struct {
	index *catalog.Index
}

// NewRuleParser creates a rule parser over a built catalog index.
func NewRuleParser(index *catalog.Index) *RuleParser {
	return &RuleParser{index: index}
}

// Index returns the catalog index the parser matches against.
func (p *RuleParser) Index() *catalog.Index {
	return p.index
}

// Parse converts text into a priced order. It never fails on unrecognized
// input: an order with zero lines is the legitimate "could not understand
// this" outcome. The error return exists only for the Parser contract.
func (p *RuleParser) Parse(_ context.Context, text string) (*models.Order, error) {
	clean := Normalize(text)

	restaurant, confidence := p.index.Detect(clean)

	items := p.index.ItemRefs()
	scoped := false
	if restaurant != "" && confidence > catalog.ScopeConfidence {
		items = p.index.ScopedItems(restaurant)
		scoped = true
	}

	quantities := extractQuantities(clean, p.index)
	sizes := extractSizes(clean, p.index)
	mods := extractModifications(clean)

	order := &models.Order{}
	for _, match := range findMenuItems(clean, items, scoped) {
		order.Lines = append(order.Lines, assembleLine(match.Item, quantities, sizes, mods))
	}

	order.Note = buildNote(text, restaurant)
	return order, nil
}

// assembleLine merges one matched item with the extracted attributes and
// catalog pricing.
func assembleLine(item *models.MenuItemTemplate, quantities map[string]int, sizes map[string]models.Size, mods []models.Modification) models.OrderLine {
	quantity := 1
	for _, keyword := range item.Keywords {
		if q, ok := quantities[strings.ToLower(keyword)]; ok {
			quantity = q
			break
		}
	}

	var size models.Size
	for _, keyword := range item.Keywords {
		if s, ok := sizes[strings.ToLower(keyword)]; ok {
			size = s
			break
		}
	}

	basePrice := item.BasePrice
	if size != "" {
		if delta, ok := item.SizePricing[size]; ok {
			basePrice = basePrice.Add(delta)
		}
	}

	// Keep only modifications the item actually offers, and bind each
	// survivor's price delta from this item's pricing table. Invalid
	// targets are dropped for this line only, never reported as errors.
	var lineMods []models.Modification
	for _, mod := range mods {
		if !item.HasModification(mod.Target) {
			continue
		}
		mod.PriceDelta = modificationDelta(item, mod)
		lineMods = append(lineMods, mod)
	}

	return models.OrderLine{
		Name:          item.Name,
		Quantity:      quantity,
		Size:          size,
		BasePrice:     basePrice,
		Modifications: lineMods,
	}
}

// modificationDelta resolves the price delta for a bound modification. An
// "extra" modification is priced from the item's "extra <target>" entry
// when one exists, since catalogs key surcharges that way; everything else
// falls back to the plain target, defaulting to zero.
func modificationDelta(item *models.MenuItemTemplate, mod models.Modification) decimal.Decimal {
	target := strings.ToLower(mod.Target)
	if mod.Kind == models.ModExtra {
		if delta, ok := item.ModificationPricing["extra "+target]; ok {
			return delta
		}
	}
	if delta, ok := item.ModificationPricing[target]; ok {
		return delta
	}
	return decimal.Zero
}

// buildNote assembles the order note: the detected restaurant, and the raw
// request when it is long enough to be worth carrying.
func buildNote(text, restaurant string) string {
	var parts []string
	if restaurant != "" {
		parts = append(parts, fmt.Sprintf("Restaurant: %s", restaurant))
	}
	if len(text) > noteThreshold {
		parts = append(parts, text)
	}
	return strings.Join(parts, "\n")
}
