package format

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/m-zayed5722/food-sense/internal/models"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func sampleOrder() *models.Order {
	return &models.Order{
		Lines: []models.OrderLine{
			{
				Name:      "Big Mac",
				Quantity:  2,
				BasePrice: d("6.49"),
				Modifications: []models.Modification{
					{Kind: models.ModExtra, Target: "cheese", PriceDelta: d("0.50")},
				},
			},
			{
				Name:      "Sprite",
				Quantity:  1,
				Size:      models.SizeMedium,
				BasePrice: d("2.29"),
			},
		},
		Note: "Restaurant: McDonald's",
	}
}

func TestSummary(t *testing.T) {
	got := Summary(sampleOrder())

	for _, want := range []string{
		"ORDER SUMMARY",
		"Restaurant: McDonald's",
		"- 2x Big Mac - $13.98",
		"    Extra cheese (+$0.50)",
		"- 1x Sprite (Medium) - $2.29",
		"Items: 3",
		"Subtotal: $16.27",
		"Tax (8%): $1.30",
		"TOTAL: $17.57",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("summary missing %q:\n%s", want, got)
		}
	}
}

func TestSummaryEstimatedTime(t *testing.T) {
	order := sampleOrder()
	order.EstimatedMinutes = 15

	if got := Summary(order); !strings.Contains(got, "Estimated time: 15 minutes") {
		t.Errorf("summary missing estimated time:\n%s", got)
	}
}

func TestSummaryEmptyOrder(t *testing.T) {
	if got := Summary(&models.Order{}); got != "No items in order" {
		t.Errorf("Summary(empty) = %q", got)
	}
	if got := Summary(nil); got != "No items in order" {
		t.Errorf("Summary(nil) = %q", got)
	}
}

func TestSummaryNegativeDelta(t *testing.T) {
	order := &models.Order{
		Lines: []models.OrderLine{
			{
				Name:      "Pepperoni Pizza",
				Quantity:  1,
				BasePrice: d("12.99"),
				Modifications: []models.Modification{
					{Kind: models.ModRemove, Target: "cheese", PriceDelta: d("-1.00")},
				},
			},
		},
	}

	if got := Summary(order); !strings.Contains(got, "Remove cheese (-$1.00)") {
		t.Errorf("summary missing negative delta:\n%s", got)
	}
}

func TestSummaryDeterministic(t *testing.T) {
	first := Summary(sampleOrder())
	for i := 0; i < 5; i++ {
		if got := Summary(sampleOrder()); got != first {
			t.Fatalf("summary output not stable:\n%s\nvs\n%s", first, got)
		}
	}
}

func TestComparisonReportsDifferences(t *testing.T) {
	left := sampleOrder()
	right := &models.Order{
		Lines: []models.OrderLine{
			{Name: "Big Mac", Quantity: 2, BasePrice: d("6.49")},
		},
	}

	got := Comparison("Rule-Based", left, "LLM", right)

	if !strings.Contains(got, "PARSING COMPARISON") {
		t.Errorf("comparison missing header:\n%s", got)
	}
	if !strings.Contains(got, "Rule-Based found extra items: sprite") {
		t.Errorf("comparison missing item difference:\n%s", got)
	}
	if !strings.Contains(got, "Price difference: $") {
		t.Errorf("comparison missing price difference:\n%s", got)
	}
}

func TestComparisonAgreement(t *testing.T) {
	got := Comparison("Rule-Based", sampleOrder(), "LLM", sampleOrder())

	if strings.Contains(got, "KEY DIFFERENCES") {
		t.Errorf("identical orders should report no differences:\n%s", got)
	}
}
