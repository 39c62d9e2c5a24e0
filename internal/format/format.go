// Package format renders parsed orders as deterministic human-readable
// text. It is a thin consumer of the order value, not part of parsing.
package format

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/m-zayed5722/food-sense/internal/models"
)

// Summary renders an order line by line with modifications, subtotal, tax
// and total, currency always to two decimal places.
func Summary(order *models.Order) string {
	if order == nil || len(order.Lines) == 0 {
		return "No items in order"
	}

	var b strings.Builder
	b.WriteString("ORDER SUMMARY\n")

	if restaurant := restaurantNote(order.Note); restaurant != "" {
		b.WriteString(restaurant + "\n")
	}
	b.WriteString(strings.Repeat("=", 40) + "\n")

	for _, line := range order.Lines {
		b.WriteString(fmt.Sprintf("- %dx %s", line.Quantity, line.Name))
		if line.Size != "" {
			b.WriteString(fmt.Sprintf(" (%s)", line.Size))
		}
		b.WriteString(fmt.Sprintf(" - $%s\n", line.TotalPrice().StringFixed(2)))

		for _, mod := range line.Modifications {
			b.WriteString(fmt.Sprintf("    %s %s", titleKind(mod.Kind), mod.Target))
			switch {
			case mod.PriceDelta.IsPositive():
				b.WriteString(fmt.Sprintf(" (+$%s)", mod.PriceDelta.StringFixed(2)))
			case mod.PriceDelta.IsNegative():
				b.WriteString(fmt.Sprintf(" (-$%s)", mod.PriceDelta.Abs().StringFixed(2)))
			}
			b.WriteString("\n")
		}
	}

	b.WriteString(strings.Repeat("-", 40) + "\n")
	b.WriteString(fmt.Sprintf("Items: %d\n", order.ItemCount()))
	b.WriteString(fmt.Sprintf("Subtotal: $%s\n", order.Subtotal().StringFixed(2)))
	b.WriteString(fmt.Sprintf("Tax (8%%): $%s\n", order.Tax().StringFixed(2)))
	b.WriteString(fmt.Sprintf("TOTAL: $%s", order.Total().StringFixed(2)))

	if order.EstimatedMinutes > 0 {
		b.WriteString(fmt.Sprintf("\nEstimated time: %d minutes", order.EstimatedMinutes))
	}

	return b.String()
}

// Comparison renders two parses of the same request side by side and lists
// the item and price differences between them.
func Comparison(leftLabel string, left *models.Order, rightLabel string, right *models.Order) string {
	var b strings.Builder
	b.WriteString("PARSING COMPARISON\n")
	b.WriteString(strings.Repeat("=", 80) + "\n")

	leftLines := strings.Split(Summary(left), "\n")
	rightLines := strings.Split(Summary(right), "\n")

	b.WriteString(fmt.Sprintf("%-30s|  %s\n", leftLabel, rightLabel))
	b.WriteString(strings.Repeat("-", 30) + "+" + strings.Repeat("-", 30) + "\n")

	n := len(leftLines)
	if len(rightLines) > n {
		n = len(rightLines)
	}
	for i := 0; i < n; i++ {
		b.WriteString(fmt.Sprintf("%-30s|  %s\n", pick(leftLines, i), pick(rightLines, i)))
	}

	if diffs := diff(leftLabel, left, rightLabel, right); len(diffs) > 0 {
		b.WriteString("\nKEY DIFFERENCES:\n")
		for _, d := range diffs {
			b.WriteString("  - " + d + "\n")
		}
	}

	return strings.TrimRight(b.String(), "\n")
}

func diff(leftLabel string, left *models.Order, rightLabel string, right *models.Order) []string {
	var diffs []string
	if left == nil || right == nil {
		return diffs
	}

	leftNames := lineNames(left)
	rightNames := lineNames(right)

	if only := missingFrom(leftNames, rightNames); len(only) > 0 {
		diffs = append(diffs, fmt.Sprintf("%s found extra items: %s", leftLabel, strings.Join(only, ", ")))
	}
	if only := missingFrom(rightNames, leftNames); len(only) > 0 {
		diffs = append(diffs, fmt.Sprintf("%s found extra items: %s", rightLabel, strings.Join(only, ", ")))
	}

	priceDiff := left.Total().Sub(right.Total()).Abs()
	if priceDiff.GreaterThan(significantPriceDiff) {
		diffs = append(diffs, fmt.Sprintf("Price difference: $%s", priceDiff.StringFixed(2)))
	}
	return diffs
}

// significantPriceDiff is the threshold below which two totals are treated
// as agreeing.
var significantPriceDiff = decimal.NewFromFloat(0.50)

func lineNames(order *models.Order) []string {
	names := make([]string, 0, len(order.Lines))
	for _, line := range order.Lines {
		names = append(names, strings.ToLower(line.Name))
	}
	return names
}

// missingFrom returns the entries of a not present in b, preserving order.
func missingFrom(a, b []string) []string {
	present := make(map[string]bool, len(b))
	for _, name := range b {
		present[name] = true
	}
	var only []string
	for _, name := range a {
		if !present[name] {
			only = append(only, name)
		}
	}
	return only
}

func pick(lines []string, i int) string {
	if i >= len(lines) {
		return ""
	}
	line := lines[i]
	if len(line) > 28 {
		line = line[:25] + "..."
	}
	return line
}

func restaurantNote(note string) string {
	for _, line := range strings.Split(note, "\n") {
		if strings.HasPrefix(line, "Restaurant:") {
			return line
		}
	}
	return ""
}

func titleKind(kind models.ModificationKind) string {
	s := strings.ReplaceAll(string(kind), "_", " ")
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
