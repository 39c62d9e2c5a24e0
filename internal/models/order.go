package models

import (
	"github.com/shopspring/decimal"
)

// Size represents the size variant of a menu item
type Size string

const (
	SizeSmall      Size = "Small"
	SizeMedium     Size = "Medium"
	SizeLarge      Size = "Large"
	SizeExtraLarge Size = "Extra Large"
)

// ModificationKind represents the kind of change applied to an order line
type ModificationKind string

const (
	ModAdd        ModificationKind = "add"
	ModRemove     ModificationKind = "remove"
	ModSubstitute ModificationKind = "substitute"
	ModExtra      ModificationKind = "extra"
	ModOnSide     ModificationKind = "on_side"
)

// TaxRate is the flat tax applied to every order subtotal.
var TaxRate = decimal.NewFromFloat(0.08)

// Modification is a single change to an order line. PriceDelta stays zero
// until the modification is bound to a matched menu item, because the same
// target can cost different amounts on different items.
type Modification struct {
	Kind        ModificationKind `json:"type"`
	Target      string           `json:"item"`
	Description string           `json:"description,omitempty"`
	PriceDelta  decimal.Decimal  `json:"price_change"`
}

// OrderLine is a single priced item in a parsed order
type OrderLine struct {
	Name          string          `json:"name"`
	Quantity      int             `json:"quantity"`
	Size          Size            `json:"size,omitempty"`
	BasePrice     decimal.Decimal `json:"base_price"`
	Modifications []Modification  `json:"modifications,omitempty"`
	Note          string          `json:"special_instructions,omitempty"`
}

// TotalPrice returns the line total including modification deltas.
func (l OrderLine) TotalPrice() decimal.Decimal {
	modTotal := decimal.Zero
	for _, mod := range l.Modifications {
		modTotal = modTotal.Add(mod.PriceDelta)
	}
	return l.BasePrice.Add(modTotal).Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Order is a complete parsed order. A zero-line order is a valid result,
// meaning the input text contained nothing recognizable.
type Order struct {
	Lines            []OrderLine `json:"items"`
	Note             string      `json:"customer_notes,omitempty"`
	EstimatedMinutes int         `json:"estimated_time,omitempty"`
}

// Subtotal returns the sum of all line totals.
func (o Order) Subtotal() decimal.Decimal {
	sum := decimal.Zero
	for _, line := range o.Lines {
		sum = sum.Add(line.TotalPrice())
	}
	return sum
}

// Tax returns the tax amount on the subtotal.
func (o Order) Tax() decimal.Decimal {
	return o.Subtotal().Mul(TaxRate)
}

// Total returns the order total including tax.
func (o Order) Total() decimal.Decimal {
	return o.Subtotal().Add(o.Tax())
}

// ItemCount returns the total number of items across all lines.
func (o Order) ItemCount() int {
	count := 0
	for _, line := range o.Lines {
		count += line.Quantity
	}
	return count
}
