package parser

import (
	"testing"

	"github.com/m-zayed5722/food-sense/internal/models"
)

func TestExtractSizes(t *testing.T) {
	idx := testIndex(t)

	cases := []struct {
		name string
		text string
		want map[string]models.Size
	}{
		{"size before item", "large fries", map[string]models.Size{"fries": models.SizeLarge}},
		{"size after item", "sprite medium please", map[string]models.Size{"sprite": models.SizeMedium}},
		{"abbreviation", "lg fries", map[string]models.Size{"fries": models.SizeLarge}},
		{"regular means medium", "regular coke", map[string]models.Size{"coke": models.SizeMedium}},
		{"two sized items", "large fries and medium sprite", map[string]models.Size{
			"fries":  models.SizeLarge,
			"sprite": models.SizeMedium,
		}},
		{"no size words", "fries and a coke", map[string]models.Size{}},
		{"empty", "", map[string]models.Size{}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := extractSizes(tc.text, idx)
			if len(got) != len(tc.want) {
				t.Fatalf("extractSizes(%q) = %v, want %v", tc.text, got, tc.want)
			}
			for keyword, size := range tc.want {
				if got[keyword] != size {
					t.Errorf("extractSizes(%q)[%q] = %q, want %q", tc.text, keyword, got[keyword], size)
				}
			}
		})
	}
}

func TestExtractSizesRespectsAvailability(t *testing.T) {
	idx := testIndex(t)

	// "big" is a large alias but the item name swallows it; the Big Mac has
	// no size variants, so no size may be recorded.
	if got := extractSizes("big mac", idx); len(got) != 0 {
		t.Errorf("extractSizes(%q) = %v, want none", "big mac", got)
	}

	// Sprite comes in small through large only, so an extra-large request
	// must not stick.
	if got := extractSizes("huge sprite", idx); len(got) != 0 {
		t.Errorf("extractSizes(%q) = %v, want none", "huge sprite", got)
	}
}
