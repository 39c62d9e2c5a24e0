package models

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// MenuItemTemplate describes a menu item with its pricing and options.
// Templates are immutable once the catalog is loaded.
type MenuItemTemplate struct {
	Name                   string                     `json:"name" yaml:"name"`
	Category               string                     `json:"category" yaml:"category"`
	BasePrice              decimal.Decimal            `json:"base_price" yaml:"base_price"`
	AvailableSizes         []Size                     `json:"available_sizes,omitempty" yaml:"available_sizes,omitempty"`
	SizePricing            map[Size]decimal.Decimal   `json:"size_pricing,omitempty" yaml:"size_pricing,omitempty"`
	AvailableModifications []string                   `json:"available_modifications,omitempty" yaml:"available_modifications,omitempty"`
	ModificationPricing    map[string]decimal.Decimal `json:"modification_pricing,omitempty" yaml:"modification_pricing,omitempty"`
	Keywords               []string                   `json:"keywords,omitempty" yaml:"keywords,omitempty"`
}

// HasSize reports whether the item is offered in the given size.
func (m *MenuItemTemplate) HasSize(size Size) bool {
	for _, s := range m.AvailableSizes {
		if s == size {
			return true
		}
	}
	return false
}

// HasModification reports whether the named modification is valid for the
// item, matching case-insensitively.
func (m *MenuItemTemplate) HasModification(name string) bool {
	for _, mod := range m.AvailableModifications {
		if strings.EqualFold(mod, name) {
			return true
		}
	}
	return false
}

// ModificationDelta returns the price delta for a modification, or zero
// when the item has no configured price for it.
func (m *MenuItemTemplate) ModificationDelta(name string) decimal.Decimal {
	if delta, ok := m.ModificationPricing[strings.ToLower(name)]; ok {
		return delta
	}
	return decimal.Zero
}

// ValidateMenuItem validates a single menu item template.
func ValidateMenuItem(item *MenuItemTemplate) error {
	if item.Name == "" {
		return fmt.Errorf("menu item name is required")
	}
	if item.BasePrice.IsNegative() {
		return fmt.Errorf("menu item %q has negative base price", item.Name)
	}
	for size, delta := range item.SizePricing {
		if delta.IsNegative() {
			return fmt.Errorf("menu item %q has negative %s size price", item.Name, size)
		}
	}
	return nil
}

// ValidateCatalog validates a full catalog at load time. Authoring errors
// like duplicate names or negative prices fail fast here so that parsing
// never has to deal with them.
func ValidateCatalog(items []MenuItemTemplate) error {
	seen := make(map[string]bool, len(items))
	for i := range items {
		item := &items[i]
		if err := ValidateMenuItem(item); err != nil {
			return err
		}
		key := strings.ToLower(item.Name)
		if seen[key] {
			return fmt.Errorf("duplicate menu item name %q", item.Name)
		}
		seen[key] = true
	}
	return nil
}
