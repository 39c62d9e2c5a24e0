package llm

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/tmc/langchaingo/llms"

	"github.com/m-zayed5722/food-sense/internal/catalog"
)

// fakeModel returns canned completions in sequence, repeating the last one.
type fakeModel struct {
	completions []string
	errs        []error
	calls       int
}

func (m *fakeModel) GenerateContent(_ context.Context, _ []llms.MessageContent, _ ...llms.CallOption) (*llms.ContentResponse, error) {
	i := m.calls
	m.calls++
	if i >= len(m.completions) {
		i = len(m.completions) - 1
	}
	if m.errs != nil && m.errs[i] != nil {
		return nil, m.errs[i]
	}
	return &llms.ContentResponse{
		Choices: []*llms.ContentChoice{{Content: m.completions[i]}},
	}, nil
}

func (m *fakeModel) Call(ctx context.Context, prompt string, options ...llms.CallOption) (string, error) {
	resp, err := m.GenerateContent(ctx, nil, options...)
	if err != nil {
		return "", err
	}
	return resp.Choices[0].Content, nil
}

func llmIndex(t *testing.T) *catalog.Index {
	t.Helper()
	idx, err := catalog.NewIndex(catalog.SampleMenu(), catalog.DefaultRestaurants)
	if err != nil {
		t.Fatalf("NewIndex() failed: %v", err)
	}
	return idx
}

const orderJSON = `{"items":[{"name":"Big Mac","quantity":2,"base_price":"6.49",` +
	`"modifications":[{"type":"extra","item":"cheese","price_change":"0.50"}]}],` +
	`"customer_notes":"","estimated_time":15}`

func TestParseDecodesModelOutput(t *testing.T) {
	model := &fakeModel{completions: []string{orderJSON}}
	p := NewParserWithModel(model, llmIndex(t), DefaultConfig())

	order, err := p.Parse(context.Background(), "two big macs with extra cheese")
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if len(order.Lines) != 1 {
		t.Fatalf("got %d lines, want 1", len(order.Lines))
	}

	line := order.Lines[0]
	if line.Name != "Big Mac" || line.Quantity != 2 {
		t.Errorf("line = %s x%d, want Big Mac x2", line.Name, line.Quantity)
	}
	if len(line.Modifications) != 1 || line.Modifications[0].Target != "cheese" {
		t.Errorf("modifications = %v, want extra cheese", line.Modifications)
	}
	if order.EstimatedMinutes != 15 {
		t.Errorf("EstimatedMinutes = %d, want 15", order.EstimatedMinutes)
	}
}

func TestParseStripsSurroundingProse(t *testing.T) {
	model := &fakeModel{completions: []string{"Here is the parsed order:\n" + orderJSON + "\nLet me know!"}}
	p := NewParserWithModel(model, llmIndex(t), DefaultConfig())

	order, err := p.Parse(context.Background(), "two big macs")
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if len(order.Lines) != 1 {
		t.Errorf("got %d lines, want 1", len(order.Lines))
	}
}

func TestParseRetriesTransientFailures(t *testing.T) {
	model := &fakeModel{
		completions: []string{"", orderJSON},
		errs:        []error{errors.New("rate limited"), nil},
	}
	p := NewParserWithModel(model, llmIndex(t), DefaultConfig())

	order, err := p.Parse(context.Background(), "two big macs")
	if err != nil {
		t.Fatalf("Parse() should succeed on retry: %v", err)
	}
	if len(order.Lines) != 1 {
		t.Errorf("got %d lines, want 1", len(order.Lines))
	}
	if model.calls != 2 {
		t.Errorf("model called %d times, want 2", model.calls)
	}
}

func TestParseExhaustsRetries(t *testing.T) {
	model := &fakeModel{
		completions: []string{""},
		errs:        []error{errors.New("unavailable")},
	}
	config := DefaultConfig()
	config.MaxRetries = 1
	p := NewParserWithModel(model, llmIndex(t), config)

	if _, err := p.Parse(context.Background(), "two big macs"); err == nil {
		t.Fatal("Parse() should fail when every attempt errors")
	}
	if model.calls != 2 {
		t.Errorf("model called %d times, want 2", model.calls)
	}
}

func TestParseStopsOnCancelledContext(t *testing.T) {
	model := &fakeModel{completions: []string{orderJSON}}
	p := NewParserWithModel(model, llmIndex(t), DefaultConfig())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := p.Parse(ctx, "two big macs"); err == nil {
		t.Fatal("Parse() should fail once the caller's context is cancelled")
	}
	if model.calls != 0 {
		t.Errorf("model called %d times after cancellation, want 0", model.calls)
	}
}

func TestDecodeOrder(t *testing.T) {
	t.Run("clamps zero quantity", func(t *testing.T) {
		order, err := decodeOrder(`{"items":[{"name":"Sprite","quantity":0,"base_price":"1.99"}]}`)
		if err != nil {
			t.Fatalf("decodeOrder() failed: %v", err)
		}
		if order.Lines[0].Quantity != 1 {
			t.Errorf("quantity = %d, want clamped to 1", order.Lines[0].Quantity)
		}
	})

	t.Run("rejects prose without JSON", func(t *testing.T) {
		if _, err := decodeOrder("I could not parse that order."); err == nil {
			t.Error("decodeOrder() should fail without a JSON object")
		}
	})

	t.Run("rejects malformed JSON", func(t *testing.T) {
		if _, err := decodeOrder(`{"items": [}`); err == nil {
			t.Error("decodeOrder() should fail on malformed JSON")
		}
	})
}

func TestBuildPromptIncludesMenuAndText(t *testing.T) {
	p := NewParserWithModel(&fakeModel{completions: []string{orderJSON}}, llmIndex(t), DefaultConfig())

	prompt := p.buildPrompt("two big macs")
	for _, want := range []string{"AVAILABLE MENU ITEMS", "Big Mac", "two big macs", "Return JSON"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}
