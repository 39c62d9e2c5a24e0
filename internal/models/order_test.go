package models

import (
	"testing"

	"github.com/shopspring/decimal"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestOrderLineTotalPrice(t *testing.T) {
	line := OrderLine{
		Name:      "Big Mac",
		Quantity:  2,
		BasePrice: d("6.49"),
		Modifications: []Modification{
			{Kind: ModExtra, Target: "cheese", PriceDelta: d("0.50")},
		},
	}

	if want := d("13.98"); !line.TotalPrice().Equal(want) {
		t.Errorf("TotalPrice() = %s, want %s", line.TotalPrice(), want)
	}
}

func TestOrderLineTotalPriceNoModifications(t *testing.T) {
	line := OrderLine{Name: "Sprite", Quantity: 3, BasePrice: d("1.99")}

	if want := d("5.97"); !line.TotalPrice().Equal(want) {
		t.Errorf("TotalPrice() = %s, want %s", line.TotalPrice(), want)
	}
}

func TestOrderTotalsExact(t *testing.T) {
	order := Order{
		Lines: []OrderLine{
			{Name: "French Fries", Quantity: 1, BasePrice: d("3.49")},
			{Name: "Sprite", Quantity: 2, BasePrice: d("2.29")},
		},
	}

	if want := d("8.07"); !order.Subtotal().Equal(want) {
		t.Errorf("Subtotal() = %s, want %s", order.Subtotal(), want)
	}
	if want := d("0.6456"); !order.Tax().Equal(want) {
		t.Errorf("Tax() = %s, want %s", order.Tax(), want)
	}
	if want := d("8.7156"); !order.Total().Equal(want) {
		t.Errorf("Total() = %s, want %s", order.Total(), want)
	}
	if order.ItemCount() != 3 {
		t.Errorf("ItemCount() = %d, want 3", order.ItemCount())
	}
}

func TestEmptyOrderTotals(t *testing.T) {
	var order Order

	if !order.Subtotal().IsZero() || !order.Tax().IsZero() || !order.Total().IsZero() {
		t.Errorf("empty order totals = %s/%s/%s, want all zero",
			order.Subtotal(), order.Tax(), order.Total())
	}
	if order.ItemCount() != 0 {
		t.Errorf("ItemCount() = %d, want 0", order.ItemCount())
	}
}

func TestHasModificationCaseInsensitive(t *testing.T) {
	item := MenuItemTemplate{
		Name:                   "McChicken",
		BasePrice:              d("4.99"),
		AvailableModifications: []string{"Mayonnaise", "lettuce"},
	}

	if !item.HasModification("mayonnaise") {
		t.Error("HasModification should match regardless of case")
	}
	if item.HasModification("bacon") {
		t.Error("HasModification should reject unknown targets")
	}
}

func TestValidateMenuItem(t *testing.T) {
	cases := []struct {
		name    string
		item    MenuItemTemplate
		wantErr bool
	}{
		{"valid", MenuItemTemplate{Name: "Fries", BasePrice: d("2.49")}, false},
		{"missing name", MenuItemTemplate{BasePrice: d("2.49")}, true},
		{"negative base price", MenuItemTemplate{Name: "Fries", BasePrice: d("-1")}, true},
		{"negative size price", MenuItemTemplate{
			Name:        "Fries",
			BasePrice:   d("2.49"),
			SizePricing: map[Size]decimal.Decimal{SizeLarge: d("-0.50")},
		}, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateMenuItem(&tc.item)
			if (err != nil) != tc.wantErr {
				t.Errorf("ValidateMenuItem() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestValidateCatalogRejectsDuplicates(t *testing.T) {
	items := []MenuItemTemplate{
		{Name: "Big Mac", BasePrice: d("6.49")},
		{Name: "big mac", BasePrice: d("6.49")},
	}

	if err := ValidateCatalog(items); err == nil {
		t.Error("ValidateCatalog should reject case-insensitive duplicate names")
	}
}
