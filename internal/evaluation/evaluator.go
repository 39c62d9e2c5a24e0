// Package evaluation measures parser accuracy over labeled order requests.
package evaluation

import (
	"context"
	"log"
	"strings"

	"github.com/m-zayed5722/food-sense/internal/models"
	"github.com/m-zayed5722/food-sense/internal/parser"
)

// ExpectedLine is the labeled truth for one item in a test case.
type ExpectedLine struct {
	Name     string      `json:"name" yaml:"name"`
	Quantity int         `json:"quantity" yaml:"quantity"`
	Size     models.Size `json:"size,omitempty" yaml:"size,omitempty"`
}

// TestCase pairs an input text with the lines a correct parse produces.
type TestCase struct {
	ID       string         `json:"id" yaml:"id"`
	Text     string         `json:"text" yaml:"text"`
	Expected []ExpectedLine `json:"expected" yaml:"expected"`
}

// Result aggregates accuracy over an evaluation run.
type Result struct {
	Cases            int     `json:"cases"`
	ItemAccuracy     float64 `json:"item_accuracy"`
	QuantityAccuracy float64 `json:"quantity_accuracy"`
	SizeAccuracy     float64 `json:"size_accuracy"`
	OverallAccuracy  float64 `json:"overall_accuracy"`
}

// Evaluator runs a parser over a fixed scenario set and scores the output.
type Evaluator struct {
	cases []TestCase
}

// NewEvaluator creates an evaluator preloaded with the built-in scenarios.
func NewEvaluator() *Evaluator {
	e := &Evaluator{}
	e.loadCases()
	return e
}

// NewEvaluatorWithCases creates an evaluator over caller-supplied cases.
func NewEvaluatorWithCases(cases []TestCase) *Evaluator {
	return &Evaluator{cases: cases}
}

func (e *Evaluator) loadCases() {
	e.cases = []TestCase{
		{
			ID:   "single_item",
			Text: "one big mac please",
			Expected: []ExpectedLine{
				{Name: "Big Mac", Quantity: 1},
			},
		},
		{
			ID:   "combo",
			Text: "craving a mcchicken with large fries and medium sprite",
			Expected: []ExpectedLine{
				{Name: "McChicken", Quantity: 1},
				{Name: "French Fries", Quantity: 1, Size: models.SizeLarge},
				{Name: "Sprite", Quantity: 1, Size: models.SizeMedium},
			},
		},
		{
			ID:   "quantities",
			Text: "I want two big macs and a large coke",
			Expected: []ExpectedLine{
				{Name: "Big Mac", Quantity: 2},
				{Name: "Coca Cola", Quantity: 1, Size: models.SizeLarge},
			},
		},
		{
			ID:       "gibberish",
			Text:     "asdkfjasdf",
			Expected: nil,
		},
	}
}

// Cases returns the loaded test cases.
func (e *Evaluator) Cases() []TestCase {
	return e.cases
}

// Evaluate parses every case and scores item, quantity, and size accuracy.
func (e *Evaluator) Evaluate(ctx context.Context, p parser.Parser) Result {
	result := Result{Cases: len(e.cases)}
	if len(e.cases) == 0 {
		return result
	}

	itemHits, qtyHits, sizeHits := 0, 0, 0
	for _, tc := range e.cases {
		order, err := p.Parse(ctx, tc.Text)
		if err != nil {
			log.Printf("evaluation case %s failed to parse: %v", tc.ID, err)
			continue
		}

		items, qtys, sizes := scoreCase(tc, order)
		if items {
			itemHits++
		}
		if qtys {
			qtyHits++
		}
		if sizes {
			sizeHits++
		}
	}

	n := float64(len(e.cases))
	result.ItemAccuracy = float64(itemHits) / n
	result.QuantityAccuracy = float64(qtyHits) / n
	result.SizeAccuracy = float64(sizeHits) / n
	result.OverallAccuracy = (result.ItemAccuracy + result.QuantityAccuracy + result.SizeAccuracy) / 3
	return result
}

// scoreCase reports whether the parsed order matches the expectation on
// items, quantities, and sizes respectively.
func scoreCase(tc TestCase, order *models.Order) (items, quantities, sizes bool) {
	if len(order.Lines) != len(tc.Expected) {
		return false, false, false
	}

	byName := make(map[string]models.OrderLine, len(order.Lines))
	for _, line := range order.Lines {
		byName[strings.ToLower(line.Name)] = line
	}

	items, quantities, sizes = true, true, true
	for _, want := range tc.Expected {
		line, ok := byName[strings.ToLower(want.Name)]
		if !ok {
			return false, false, false
		}
		if want.Quantity > 0 && line.Quantity != want.Quantity {
			quantities = false
		}
		if line.Size != want.Size {
			sizes = false
		}
	}
	return items, quantities, sizes
}
