package parser

import (
	"testing"

	"github.com/m-zayed5722/food-sense/internal/models"
)

func modByTarget(t *testing.T, mods []models.Modification, target string) models.Modification {
	t.Helper()
	for _, mod := range mods {
		if mod.Target == target {
			return mod
		}
	}
	t.Fatalf("no modification with target %q in %v", target, mods)
	return models.Modification{}
}

func TestExtractModificationsSequentialChain(t *testing.T) {
	mods := extractModifications("burger no pickles no lettuce no onions")

	if len(mods) != 3 {
		t.Fatalf("got %d modifications (%v), want 3", len(mods), mods)
	}
	for _, target := range []string{"pickles", "lettuce", "onions"} {
		mod := modByTarget(t, mods, target)
		if mod.Kind != models.ModRemove {
			t.Errorf("%s kind = %s, want remove", target, mod.Kind)
		}
	}
}

func TestExtractModificationsExtraChain(t *testing.T) {
	mods := extractModifications("extra ketchup extra mayonnaise please")

	if len(mods) != 2 {
		t.Fatalf("got %d modifications (%v), want 2", len(mods), mods)
	}
	for _, target := range []string{"ketchup", "mayonnaise"} {
		if mod := modByTarget(t, mods, target); mod.Kind != models.ModExtra {
			t.Errorf("%s kind = %s, want extra", target, mod.Kind)
		}
	}
}

func TestExtractModificationsStandardPatterns(t *testing.T) {
	cases := []struct {
		name   string
		text   string
		kind   models.ModificationKind
		target string
	}{
		{"lone no", "no onions on my burger", models.ModRemove, "onions"},
		{"without", "without onions", models.ModRemove, "onions"},
		{"hold the", "hold the pickles", models.ModRemove, "pickles"},
		{"skip the", "skip the sauce", models.ModRemove, "sauce"},
		{"extra", "extra cheese", models.ModExtra, "cheese"},
		{"add with article", "add the cheese", models.ModAdd, "cheese"},
		{"on the side", "ranch on the side", models.ModOnSide, "ranch"},
		{"side of", "side of garlic sauce", models.ModOnSide, "garlic sauce"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			mods := extractModifications(tc.text)
			if len(mods) != 1 {
				t.Fatalf("extractModifications(%q) = %v, want exactly one", tc.text, mods)
			}
			if mods[0].Kind != tc.kind || mods[0].Target != tc.target {
				t.Errorf("got %s %q, want %s %q", mods[0].Kind, mods[0].Target, tc.kind, tc.target)
			}
		})
	}
}

func TestExtractModificationsSplitsConjunctions(t *testing.T) {
	mods := extractModifications("with mayonnaise and ketchup")

	if len(mods) != 2 {
		t.Fatalf("got %d modifications (%v), want 2", len(mods), mods)
	}
	for _, target := range []string{"mayonnaise", "ketchup"} {
		if mod := modByTarget(t, mods, target); mod.Kind != models.ModAdd {
			t.Errorf("%s kind = %s, want add", target, mod.Kind)
		}
	}
}

func TestExtractModificationsRekindsBroadCapture(t *testing.T) {
	// "with extra cheese" is captured both by the narrow extra rule and the
	// broad with rule; the result must be a single extra, never a duplicate
	// add that would double-count the surcharge.
	mods := extractModifications("burger with extra cheese")

	if len(mods) != 1 {
		t.Fatalf("got %d modifications (%v), want 1", len(mods), mods)
	}
	if mods[0].Kind != models.ModExtra || mods[0].Target != "cheese" {
		t.Errorf("got %s %q, want extra cheese", mods[0].Kind, mods[0].Target)
	}
}

func TestExtractModificationsStandaloneCondiment(t *testing.T) {
	mods := extractModifications("big mac ketchup")

	if len(mods) != 1 {
		t.Fatalf("got %d modifications (%v), want 1", len(mods), mods)
	}
	if mods[0].Kind != models.ModAdd || mods[0].Target != "ketchup" {
		t.Errorf("got %s %q, want add ketchup", mods[0].Kind, mods[0].Target)
	}
}

func TestExtractModificationsDescription(t *testing.T) {
	mods := extractModifications("no pickles")

	if len(mods) != 1 {
		t.Fatalf("got %v, want one modification", mods)
	}
	if mods[0].Description != "remove pickles" {
		t.Errorf("description = %q, want %q", mods[0].Description, "remove pickles")
	}
}

func TestExtractModificationsEmpty(t *testing.T) {
	for _, text := range []string{"", "two big macs and a coke", "asdkfjasdf"} {
		if mods := extractModifications(text); len(mods) != 0 {
			t.Errorf("extractModifications(%q) = %v, want none", text, mods)
		}
	}
}
