// Package llm provides the language-model-backed alternate order parser.
// It implements the same contract as the rule parser and is selected by
// the caller; the rule-based core never depends on it.
package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"

	"github.com/m-zayed5722/food-sense/internal/catalog"
	"github.com/m-zayed5722/food-sense/internal/models"
)

// Config controls the remote inference call.
type Config struct {
	Model       string        `yaml:"model"`
	APIKey      string        `yaml:"api_key"`
	BaseURL     string        `yaml:"base_url"`
	Timeout     time.Duration `yaml:"timeout"`
	MaxRetries  int           `yaml:"max_retries"`
	Temperature float64       `yaml:"temperature"`
}

// DefaultConfig returns conservative defaults for order parsing.
func DefaultConfig() Config {
	return Config{
		Model:       "gpt-4-turbo-preview",
		Timeout:     30 * time.Second,
		MaxRetries:  2,
		Temperature: 0.1,
	}
}

// Parser asks a language model to translate order text into structured
// JSON, then decodes it into an order. Unlike the rule parser it performs
// network I/O and can fail.
type Parser struct {
	model       llms.Model
	config      Config
	menuContext string
}

// NewParser builds an LLM parser over the given catalog index.
func NewParser(index *catalog.Index, config Config) (*Parser, error) {
	opts := []openai.Option{openai.WithModel(config.Model)}
	if config.APIKey != "" {
		opts = append(opts, openai.WithToken(config.APIKey))
	}
	if config.BaseURL != "" {
		opts = append(opts, openai.WithBaseURL(config.BaseURL))
	}
	model, err := openai.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize LLM client: %w", err)
	}
	return newParser(model, index, config), nil
}

// NewParserWithModel wires an already constructed model, used by tests.
func NewParserWithModel(model llms.Model, index *catalog.Index, config Config) *Parser {
	return newParser(model, index, config)
}

func newParser(model llms.Model, index *catalog.Index, config Config) *Parser {
	return &Parser{
		model:       model,
		config:      config,
		menuContext: buildMenuContext(index),
	}
}

// Parse implements the parser contract against the remote model, retrying
// transient failures up to the configured limit with a per-call timeout.
func (p *Parser) Parse(ctx context.Context, text string) (*models.Order, error) {
	prompt := p.buildPrompt(text)

	var lastErr error
	for attempt := 0; attempt <= p.config.MaxRetries; attempt++ {
		// A cancelled caller must not burn the remaining retries.
		if err := ctx.Err(); err != nil {
			if lastErr == nil {
				lastErr = err
			}
			break
		}

		callCtx, cancel := context.WithTimeout(ctx, p.config.Timeout)
		completion, err := llms.GenerateFromSinglePrompt(callCtx, p.model, prompt,
			llms.WithTemperature(p.config.Temperature))
		cancel()

		if err != nil {
			lastErr = err
			log.Printf("LLM parse attempt %d failed: %v", attempt+1, err)
			continue
		}

		order, err := decodeOrder(completion)
		if err != nil {
			lastErr = err
			log.Printf("LLM parse attempt %d returned undecodable output: %v", attempt+1, err)
			continue
		}
		return order, nil
	}
	return nil, fmt.Errorf("LLM order parsing failed: %w", lastErr)
}

// buildMenuContext renders the catalog so the model can only pick from
// real items.
func buildMenuContext(index *catalog.Index) string {
	var b strings.Builder
	b.WriteString("AVAILABLE MENU ITEMS:\n")
	for _, item := range index.Items() {
		b.WriteString(fmt.Sprintf("- %s - $%s", item.Name, item.BasePrice.StringFixed(2)))
		if len(item.AvailableSizes) > 0 {
			sizes := make([]string, len(item.AvailableSizes))
			for i, s := range item.AvailableSizes {
				sizes[i] = string(s)
			}
			b.WriteString(fmt.Sprintf(" (Sizes: %s)", strings.Join(sizes, ", ")))
		}
		if len(item.AvailableModifications) > 0 {
			b.WriteString(fmt.Sprintf(" (Modifications: %s)", strings.Join(item.AvailableModifications, ", ")))
		}
		if len(item.Keywords) > 0 {
			b.WriteString(fmt.Sprintf(" (Also called: %s)", strings.Join(item.Keywords, ", ")))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (p *Parser) buildPrompt(text string) string {
	return fmt.Sprintf(`You are an expert restaurant order processing assistant. Parse the customer order into structured JSON.

%s

SIZES: Small, Medium, Large, Extra Large
MODIFICATION TYPES: add, remove, extra, substitute, on_side

RULES:
1. Return ONLY valid JSON with no additional text
2. Match menu items by name or keywords, tolerating spelling variations
3. Extract quantities, sizes, and modifications accurately
4. Skip items that are not on the menu
5. Price from the base prices and size/modification adjustments
6. Only include modifications that are clearly requested

Response format:
{"items":[{"name":"Menu Item Name","quantity":1,"size":"Medium","base_price":"4.99","modifications":[{"type":"add","item":"ketchup","price_change":"0.00"}]}],"customer_notes":"","estimated_time":15}

Customer order: %q

Return JSON:`, p.menuContext, text)
}

// decodeOrder extracts the first JSON object from the completion and
// decodes it. Models often wrap JSON in prose despite instructions.
func decodeOrder(completion string) (*models.Order, error) {
	start := strings.Index(completion, "{")
	end := strings.LastIndex(completion, "}")
	if start < 0 || end <= start {
		return nil, fmt.Errorf("no JSON object in completion")
	}

	var order models.Order
	if err := json.Unmarshal([]byte(completion[start:end+1]), &order); err != nil {
		return nil, fmt.Errorf("decoding order JSON: %w", err)
	}

	for i := range order.Lines {
		if order.Lines[i].Quantity < 1 {
			order.Lines[i].Quantity = 1
		}
	}
	return &order, nil
}
