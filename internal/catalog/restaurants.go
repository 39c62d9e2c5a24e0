package catalog

import (
	"regexp"
	"strings"
)

// RestaurantKeywords maps a restaurant brand to the keywords that signal it
// in free text. The slice order is the registration order: it breaks score
// ties in detection and decides item classification, so it must stay stable.
type RestaurantKeywords struct {
	Name     string
	Keywords []string
}

// DefaultRestaurants is the shared brand keyword table. The detector and the
// catalog classifier both read this one value so the two can never drift.
var DefaultRestaurants = []RestaurantKeywords{
	{"McDonald's", []string{
		"mcdonald", "mcchicken", "big mac", "quarter pounder", "mcflurry",
		"mcnugget", "mcdouble", "filet-o-fish", "happy meal", "mcpick", "mccafe",
	}},
	{"Starbucks", []string{
		"starbucks", "frappuccino", "macchiato", "americano", "latte", "venti",
		"grande", "caramel ribbon", "pike place", "blonde roast", "cold brew",
	}},
	{"Taco Bell", []string{
		"taco bell", "taco", "burrito", "quesadilla", "chalupa", "crunchwrap",
		"beefy", "nacho", "doritos locos", "mexican pizza", "cantina",
	}},
	{"KFC", []string{
		"kfc", "colonel", "popcorn chicken", "famous bowl", "zinger", "hot wings",
		"original recipe", "extra crispy", "chicken bucket",
	}},
	{"Burger King", []string{
		"burger king", "whopper", "king", "chicken fries", "impossible whopper",
		"croissanwich", "onion rings", "hershey's pie",
	}},
	{"Subway", []string{
		"subway", "footlong", "italian bmt", "meatball marinara", "turkey breast",
		"spicy italian", "veggie delite", "oven roasted",
	}},
	{"Pizza Hut", []string{
		"pizza hut", "pepperoni pizza", "meat lovers", "supreme pizza", "stuffed crust",
		"pan pizza", "thin crust", "personal pan",
	}},
	{"Chick-fil-A", []string{
		"chick-fil-a", "chick fil a", "chicken sandwich", "waffle fries", "nuggets",
		"spicy deluxe", "original chicken", "polynesian sauce",
	}},
	{"Wendy's", []string{
		"wendy", "baconator", "frosty", "spicy chicken", "dave's single",
		"jr bacon cheeseburger", "chicken go wrap",
	}},
	{"Dairy Queen", []string{
		"dairy queen", "dq", "blizzard", "dilly bar", "hot dog", "chicken strip basket",
		"oreo blizzard", "brazier burger",
	}},
	{"Five Guys", []string{
		"five guys", "cajun fries", "bacon cheeseburger", "little cheeseburger",
		"all the way", "regular fries",
	}},
	{"Chipotle", []string{
		"chipotle", "burrito bowl", "barbacoa", "carnitas", "sofritas", "guac",
		"cilantro lime", "pico de gallo",
	}},
	{"Dunkin'", []string{
		"dunkin", "donut", "iced coffee", "coolatta", "munchkins", "bagel",
		"boston kreme", "glazed donut",
	}},
	{"Popeyes", []string{
		"popeyes", "louisiana", "spicy chicken", "biscuit", "red beans",
		"chicken tender", "cajun fries",
	}},
	{"Arby's", []string{
		"arby", "roast beef", "curly fries", "beef n cheddar", "turkey gyro",
		"classic roast beef", "horsey sauce",
	}},
	{"Sonic", []string{
		"sonic", "cherry limeade", "mozzarella sticks", "corn dog", "slush",
		"ocean water", "cherry slush",
	}},
	{"Panda Express", []string{
		"panda express", "orange chicken", "chow mein", "fried rice", "beijing beef",
		"honey walnut shrimp", "teriyaki chicken",
	}},
	{"Papa John's", []string{
		"papa john", "garlic sauce", "pepperoni pizza", "the works",
		"better ingredients", "papa's pizza",
	}},
	{"Carl's Jr", []string{
		"carl's jr", "famous star", "western bacon", "hand-breaded",
		"six dollar burger", "crisscut fries",
	}},
	{"Wingstop", []string{
		"wingstop", "lemon pepper", "garlic parmesan", "atomic wings", "louisiana rub",
		"boneless wings", "original hot",
	}},
}

// ScopeConfidence is the detection confidence above which item matching is
// restricted to the detected restaurant's menu subset.
const ScopeConfidence = 0.3

// DetectRestaurant scores each restaurant's keywords against the normalized
// text and returns the best brand with a confidence in [0,1]. An empty name
// with zero confidence means no brand keyword appeared at all. Ties go to
// the restaurant registered first in the table.
func DetectRestaurant(text string, restaurants []RestaurantKeywords) (string, float64) {
	bestName := ""
	bestScore := 0.0

	for _, r := range restaurants {
		score := 0.0
		for _, keyword := range r.Keywords {
			if !strings.Contains(text, keyword) {
				continue
			}
			// Longer keywords carry more signal.
			keywordScore := float64(len(keyword)) / 10.0
			if wordBoundaryMatch(text, keyword) {
				keywordScore *= 1.5
			}
			score += keywordScore
		}
		if score > bestScore {
			bestName = r.Name
			bestScore = score
		}
	}

	if bestName == "" {
		return "", 0.0
	}
	confidence := bestScore / 2.0
	if confidence > 1.0 {
		confidence = 1.0
	}
	return bestName, confidence
}

func wordBoundaryMatch(text, keyword string) bool {
	pattern := `\b` + regexp.QuoteMeta(keyword) + `\b`
	matched, err := regexp.MatchString(pattern, text)
	return err == nil && matched
}
