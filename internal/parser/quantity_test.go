package parser

import (
	"testing"

	"github.com/m-zayed5722/food-sense/internal/catalog"
)

func testIndex(t *testing.T) *catalog.Index {
	t.Helper()
	idx, err := catalog.NewIndex(catalog.SampleMenu(), catalog.DefaultRestaurants)
	if err != nil {
		t.Fatalf("NewIndex() failed: %v", err)
	}
	return idx
}

func TestExtractQuantities(t *testing.T) {
	idx := testIndex(t)

	cases := []struct {
		name string
		text string
		want map[string]int
	}{
		{"number word", "two big macs please", map[string]int{"big mac": 2}},
		{"digit", "3 chicken wings", map[string]int{"chicken wings": 3}},
		{"article means one", "a sprite", map[string]int{"sprite": 1}},
		{"double", "double cheeseburger", map[string]int{"cheeseburger": 2}},
		{"vague couple", "couple of wings", map[string]int{"wings": 2}},
		{"dozen", "dozen wings please", map[string]int{"wings": 12}},
		{"half dozen", "half dozen wings please", map[string]int{"wings": 6}},
		{"two items", "two big macs and 3 fries", map[string]int{"big mac": 2, "fries": 3}},
		{"no quantity", "fries please", map[string]int{}},
		{"empty", "", map[string]int{}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := extractQuantities(tc.text, idx)
			if len(got) != len(tc.want) {
				t.Fatalf("extractQuantities(%q) = %v, want %v", tc.text, got, tc.want)
			}
			for keyword, qty := range tc.want {
				if got[keyword] != qty {
					t.Errorf("extractQuantities(%q)[%q] = %d, want %d", tc.text, keyword, got[keyword], qty)
				}
			}
		})
	}
}

func TestExtractQuantitiesBindsLongestKeyword(t *testing.T) {
	idx := testIndex(t)

	// "chicken wings" and "wings" both match inside the window; the longer
	// keyword must claim the quantity so the item lookup stays unambiguous.
	got := extractQuantities("five chicken wings", idx)
	if got["chicken wings"] != 5 {
		t.Errorf(`got %v, want "chicken wings" bound to 5`, got)
	}
	if _, ok := got["wings"]; ok {
		t.Errorf(`short keyword "wings" should not be bound: %v`, got)
	}
}
