package parser

import (
	"testing"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"lowercases", "Big Mac With FRIES", "big mac with fries"},
		{"fixes fries typo", "large fires please", "large fries please"},
		{"expands w slash", "burger w/ cheese", "burger with cheese"},
		{"expands ampersand", "wings & fries", "wings and fries"},
		{"expands mayo", "no mayo", "no mayonnaise"},
		{"keeps mayonnaise intact", "extra mayonnaise", "extra mayonnaise"},
		{"keeps sprite intact", "medium sprite", "medium sprite"},
		{"fixes sprit typo", "a sprit please", "a sprite please"},
		{"expands dq only as a word", "dq blizzard and mcdouble", "dairy queen blizzard and mcdouble"},
		{"replaces commas", "big mac, fries, coke", "big mac fries coke"},
		{"collapses whitespace", "big   mac \t fries", "big mac fries"},
		{"empty input", "", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Normalize(tc.in); got != tc.want {
				t.Errorf("Normalize(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"craving a mcchicken with large fires and medium sprit, mayo & ketchup",
		"two big macs w/ extra cheese",
		"dq blizzard please",
		"",
	}

	for _, in := range inputs {
		once := Normalize(in)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: first %q, second %q", in, once, twice)
		}
	}
}
