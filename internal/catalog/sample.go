package catalog

import (
	"github.com/shopspring/decimal"

	"github.com/m-zayed5722/food-sense/internal/models"
)

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// SampleMenu returns the built-in demo catalog. It doubles as the seed data
// for an empty catalog store and as the fixture for tests.
func SampleMenu() []models.MenuItemTemplate {
	return []models.MenuItemTemplate{
		{
			Name:           "Big Mac",
			Category:       "Burger",
			BasePrice:      price("6.49"),
			AvailableSizes: []models.Size{models.SizeMedium},
			AvailableModifications: []string{
				"special sauce", "lettuce", "cheese", "pickles", "onions",
				"no special sauce", "extra cheese",
			},
			ModificationPricing: map[string]decimal.Decimal{
				"extra cheese":        price("0.50"),
				"extra special sauce": price("0.30"),
			},
			Keywords: []string{"big mac", "bigmac", "big-mac", "mcdonalds big mac"},
		},
		{
			Name:           "McChicken",
			Category:       "Burger",
			BasePrice:      price("4.99"),
			AvailableSizes: []models.Size{models.SizeMedium},
			AvailableModifications: []string{
				"mayonnaise", "mayo", "lettuce", "pickles", "onions", "ketchup",
				"no mayo", "extra mayo",
			},
			ModificationPricing: map[string]decimal.Decimal{
				"extra mayo":    price("0.30"),
				"extra lettuce": price("0.25"),
			},
			Keywords: []string{"mcchicken", "mc chicken", "chicken burger", "mcdonalds chicken"},
		},
		{
			Name:           "French Fries",
			Category:       "Side",
			BasePrice:      price("2.49"),
			AvailableSizes: []models.Size{models.SizeSmall, models.SizeMedium, models.SizeLarge},
			SizePricing: map[models.Size]decimal.Decimal{
				models.SizeSmall:  price("0.00"),
				models.SizeMedium: price("0.50"),
				models.SizeLarge:  price("1.00"),
			},
			AvailableModifications: []string{"salt", "no salt", "ketchup", "extra salt"},
			Keywords:               []string{"fries", "french fries", "mcdonalds fries", "mcd fries"},
		},
		{
			Name:           "Pepperoni Pizza",
			Category:       "Pizza",
			BasePrice:      price("12.99"),
			AvailableSizes: []models.Size{models.SizeSmall, models.SizeMedium, models.SizeLarge},
			SizePricing: map[models.Size]decimal.Decimal{
				models.SizeSmall:  price("0.00"),
				models.SizeMedium: price("3.00"),
				models.SizeLarge:  price("6.00"),
			},
			AvailableModifications: []string{
				"extra cheese", "extra pepperoni", "thin crust", "thick crust", "no cheese",
			},
			ModificationPricing: map[string]decimal.Decimal{
				"extra cheese":    price("1.50"),
				"extra pepperoni": price("2.00"),
				"thin crust":      price("0.00"),
				"thick crust":     price("1.00"),
			},
			Keywords: []string{"pepperoni pizza", "pepperoni", "dominos pizza", "domino's pizza", "pizza"},
		},
		{
			Name:      "Chicken Wings",
			Category:  "Appetizer",
			BasePrice: price("9.99"),
			AvailableModifications: []string{
				"buffalo sauce", "bbq sauce", "honey mustard", "ranch", "blue cheese", "hot sauce",
			},
			ModificationPricing: map[string]decimal.Decimal{
				"extra sauce": price("0.50"),
			},
			Keywords: []string{"chicken wings", "wings", "dominos wings", "buffalo wings", "bbq wings"},
		},
		{
			Name:                   "Cheesy Bread",
			Category:               "Side",
			BasePrice:              price("6.99"),
			AvailableModifications: []string{"extra cheese", "garlic", "marinara sauce", "ranch"},
			ModificationPricing: map[string]decimal.Decimal{
				"extra cheese": price("1.00"),
			},
			Keywords: []string{"cheesy bread", "cheese bread", "dominos bread", "garlic bread"},
		},
		{
			Name:      "Lemon Pepper Wings",
			Category:  "Main",
			BasePrice: price("11.99"),
			AvailableModifications: []string{
				"ranch", "blue cheese", "extra seasoning", "mild", "hot",
			},
			Keywords: []string{"lemon pepper wings", "lemon pepper", "wingstop lemon pepper", "lp wings"},
		},
		{
			Name:      "Garlic Parmesan Wings",
			Category:  "Main",
			BasePrice: price("11.99"),
			AvailableModifications: []string{
				"ranch", "blue cheese", "extra garlic", "extra parmesan",
			},
			ModificationPricing: map[string]decimal.Decimal{
				"extra parmesan": price("0.75"),
			},
			Keywords: []string{"garlic parmesan wings", "garlic parm", "gp wings", "parmesan wings", "wingstop garlic"},
		},
		{
			Name:                   "Cajun Fried Corn",
			Category:               "Side",
			BasePrice:              price("4.99"),
			AvailableModifications: []string{"extra cajun seasoning", "butter", "no seasoning"},
			Keywords:               []string{"cajun corn", "fried corn", "cajun fried corn", "wingstop corn", "corn"},
		},
		{
			Name:      "Chicken Shawarma Wrap",
			Category:  "Main",
			BasePrice: price("8.99"),
			AvailableModifications: []string{
				"tahini", "garlic sauce", "hot sauce", "pickles", "tomatoes", "onions",
				"no sauce", "extra meat",
			},
			ModificationPricing: map[string]decimal.Decimal{
				"extra meat":  price("2.50"),
				"extra sauce": price("0.50"),
			},
			Keywords: []string{"chicken shawarma", "shawarma wrap", "chicken wrap", "shawarma"},
		},
		{
			Name:      "Beef Shawarma Plate",
			Category:  "Main",
			BasePrice: price("12.99"),
			AvailableModifications: []string{
				"tahini", "garlic sauce", "hot sauce", "rice", "salad", "pita bread", "extra meat",
			},
			ModificationPricing: map[string]decimal.Decimal{
				"extra meat": price("3.00"),
				"extra rice": price("1.00"),
			},
			Keywords: []string{"beef shawarma", "shawarma plate", "beef plate", "shawarma platter", "beef shawarma plate"},
		},
		{
			Name:      "Falafel Wrap",
			Category:  "Main",
			BasePrice: price("7.99"),
			AvailableModifications: []string{
				"tahini", "hummus", "hot sauce", "pickles", "tomatoes", "cucumber", "extra falafel",
			},
			ModificationPricing: map[string]decimal.Decimal{
				"extra falafel": price("1.50"),
			},
			Keywords: []string{"falafel wrap", "falafel", "vegetarian wrap", "veg wrap", "falafel sandwich"},
		},
		{
			Name:           "Oreo Blizzard",
			Category:       "Dessert",
			BasePrice:      price("4.99"),
			AvailableSizes: []models.Size{models.SizeSmall, models.SizeMedium, models.SizeLarge},
			SizePricing: map[models.Size]decimal.Decimal{
				models.SizeSmall:  price("0.00"),
				models.SizeMedium: price("1.50"),
				models.SizeLarge:  price("2.50"),
			},
			AvailableModifications: []string{"extra oreo", "chocolate sauce", "caramel sauce"},
			ModificationPricing: map[string]decimal.Decimal{
				"extra oreo": price("0.75"),
			},
			Keywords: []string{"oreo blizzard", "blizzard", "oreo", "dq blizzard", "dairy queen oreo"},
		},
		{
			Name:           "Reese's Blizzard",
			Category:       "Dessert",
			BasePrice:      price("4.99"),
			AvailableSizes: []models.Size{models.SizeSmall, models.SizeMedium, models.SizeLarge},
			SizePricing: map[models.Size]decimal.Decimal{
				models.SizeSmall:  price("0.00"),
				models.SizeMedium: price("1.50"),
				models.SizeLarge:  price("2.50"),
			},
			AvailableModifications: []string{"extra reese's", "chocolate sauce", "peanut butter sauce"},
			ModificationPricing: map[string]decimal.Decimal{
				"extra reese's": price("0.75"),
			},
			Keywords: []string{"reeses blizzard", "reese's blizzard", "reese blizzard", "peanut butter blizzard", "dq reeses"},
		},
		{
			Name:      "DQ Cheeseburger",
			Category:  "Burger",
			BasePrice: price("5.99"),
			AvailableModifications: []string{
				"cheese", "lettuce", "tomato", "pickles", "onions", "ketchup",
				"mustard", "mayonnaise", "no cheese",
			},
			ModificationPricing: map[string]decimal.Decimal{
				"extra cheese": price("0.50"),
				"bacon":        price("1.50"),
			},
			Keywords: []string{"dq cheeseburger", "dairy queen cheeseburger", "dq burger", "cheeseburger", "dairy queen burger"},
		},
		{
			Name:      "Chicken Strip Basket",
			Category:  "Main",
			BasePrice: price("8.99"),
			AvailableModifications: []string{
				"fries", "onion rings", "honey mustard", "bbq sauce", "ranch", "extra strips",
			},
			ModificationPricing: map[string]decimal.Decimal{
				"extra strips": price("2.00"),
				"onion rings":  price("1.00"),
			},
			Keywords: []string{"chicken strips", "chicken strip basket", "dq chicken", "chicken tenders", "strips basket"},
		},
		{
			Name:           "Sprite",
			Category:       "Beverage",
			BasePrice:      price("1.99"),
			AvailableSizes: []models.Size{models.SizeSmall, models.SizeMedium, models.SizeLarge},
			SizePricing: map[models.Size]decimal.Decimal{
				models.SizeSmall:  price("0.00"),
				models.SizeMedium: price("0.30"),
				models.SizeLarge:  price("0.60"),
			},
			AvailableModifications: []string{"ice", "no ice", "extra ice", "lemon"},
			Keywords:               []string{"sprite", "lemon lime soda", "lemon-lime"},
		},
		{
			Name:           "Coca Cola",
			Category:       "Beverage",
			BasePrice:      price("1.99"),
			AvailableSizes: []models.Size{models.SizeSmall, models.SizeMedium, models.SizeLarge},
			SizePricing: map[models.Size]decimal.Decimal{
				models.SizeSmall:  price("0.00"),
				models.SizeMedium: price("0.30"),
				models.SizeLarge:  price("0.60"),
			},
			AvailableModifications: []string{"ice", "no ice", "extra ice"},
			Keywords:               []string{"coke", "coca cola", "cola", "pepsi"},
		},
	}
}
