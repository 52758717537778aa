package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"cartsense/internal/model"
)

// ErrExtractionUnavailable is returned whenever a structured intent could
// not be obtained: backend unreachable, no parseable payload in the reply,
// unrecognised intent tag, or a non-unknown intent without an item. Unlike
// translation this is surfaced to the caller; silently guessing an intent
// could mutate the wrong item.
var ErrExtractionUnavailable = errors.New("intent extraction unavailable")

// Extractor turns pivot-language text into a validated Intent. Implementations
// are selected by configuration (INTENT_PROVIDER); see GeminiExtractor and
// OpenAIExtractor.
type Extractor interface {
	Extract(ctx context.Context, pivotText string) (*model.Intent, error)
}

// DisabledExtractor is installed when the selected provider has no credential
// configured. The server still starts and serves; every command fails per
// request with ErrExtractionUnavailable instead.
type DisabledExtractor struct{}

// Extract always reports the missing-credential condition.
func (DisabledExtractor) Extract(ctx context.Context, pivotText string) (*model.Intent, error) {
	return nil, fmt.Errorf("no intent provider credential configured: %w", ErrExtractionUnavailable)
}

var _ Extractor = DisabledExtractor{}

// intentPayload is the raw JSON contract the LLM is instructed to emit.
type intentPayload struct {
	Intent   string         `json:"intent"`
	Item     string         `json:"item,omitempty"`
	Quantity int            `json:"quantity,omitempty"`
	Language string         `json:"language,omitempty"`
	Filters  *model.Filters `json:"filters,omitempty"`
}

// intentSystemPrompt is the deterministic instruction block shared by every
// extractor backend. It enumerates the exact output schema, covers each of
// the four categories with at least two example mappings, and tells the
// model how to handle non-English item phrases.
const intentSystemPrompt = `You are the command parser for a shopping list assistant. Parse the user's message into exactly one JSON object and nothing else.

Output JSON schema:
{
  "intent": "add" | "remove" | "search" | "unknown",
  "item": "string (lowercase English item name, omit for unknown)",
  "quantity": integer (only when the user states one),
  "language": "string (ISO 639-1 code of the user's message)",
  "filters": {
    "brand": "string",
    "min_price": number,
    "max_price": number,
    "size": "string",
    "qualifier": "string (category or descriptive tag, e.g. 'organic')"
  }
}

Rules:
- "intent" must be one of the four values above, nothing else.
- "item" is the product being acted on, translated to its common English name and lowercased.
- Omit any field the user did not specify. Only include "filters" for search intents.
- Respond ONLY with valid JSON.

Examples:
Message: "add milk to my list"
Response: {"intent": "add", "item": "milk", "language": "en"}

Message: "I need two bottles of olive oil"
Response: {"intent": "add", "item": "olive oil", "quantity": 2, "language": "en"}

Message: "remove onion"
Response: {"intent": "remove", "item": "onion", "language": "en"}

Message: "take the bread off the list"
Response: {"intent": "remove", "item": "bread", "language": "en"}

Message: "find toothpaste under $4"
Response: {"intent": "search", "item": "toothpaste", "language": "en", "filters": {"max_price": 4}}

Message: "show me organic apples from FreshFarm"
Response: {"intent": "search", "item": "apples", "language": "en", "filters": {"brand": "freshfarm", "qualifier": "organic"}}

Message: "what's the weather like"
Response: {"intent": "unknown", "language": "en"}

Message: "hello there"
Response: {"intent": "unknown", "language": "en"}

Multilingual note: the message may arrive machine-translated from another
language. If an item phrase is still not in English (e.g. "doodh", "leche"),
map it to the common English item name ("milk") and report the original
language code in "language".`

// validateIntent converts a raw payload into a model.Intent, enforcing the
// output contract. A violation is an extraction failure, not a fallback.
func validateIntent(p *intentPayload) (*model.Intent, error) {
	kind := model.IntentKind(strings.ToLower(strings.TrimSpace(p.Intent)))
	if !model.ValidIntentKind(kind) {
		return nil, fmt.Errorf("unrecognised intent %q: %w", p.Intent, ErrExtractionUnavailable)
	}

	item := strings.ToLower(strings.TrimSpace(p.Item))
	if kind == model.IntentUnknown {
		item = ""
	} else if item == "" {
		return nil, fmt.Errorf("intent %q carries no item: %w", kind, ErrExtractionUnavailable)
	}

	quantity := p.Quantity
	if quantity < 0 {
		return nil, fmt.Errorf("negative quantity %d: %w", quantity, ErrExtractionUnavailable)
	}

	return &model.Intent{
		Kind:     kind,
		Item:     item,
		Quantity: quantity,
		Language: strings.ToLower(strings.TrimSpace(p.Language)),
		Source:   "llm",
		Filters:  p.Filters,
	}, nil
}
