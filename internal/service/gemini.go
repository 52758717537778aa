package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"cartsense/internal/config"
	"cartsense/internal/model"
	"cartsense/internal/utils"
)

// GeminiExtractor implements Extractor using Google's Gemini models. This is
// the default provider.
type GeminiExtractor struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

// NewGeminiExtractor initializes a new Gemini client.
func NewGeminiExtractor(ctx context.Context, cfg *config.GeminiConfig) (*GeminiExtractor, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.APIKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	m := client.GenerativeModel(cfg.Model)

	// Force JSON responses for structured parsing; low temperature because
	// the output contract is rigid.
	m.ResponseMIMEType = "application/json"
	m.SetTemperature(float32(cfg.Temperature))

	return &GeminiExtractor{client: client, model: m}, nil
}

// Close cleans up the Gemini client resources.
func (e *GeminiExtractor) Close() {
	e.client.Close()
}

// Extract sends the pivot-language text to Gemini and validates the reply
// against the intent contract.
func (e *GeminiExtractor) Extract(ctx context.Context, pivotText string) (*model.Intent, error) {
	fullPrompt := fmt.Sprintf("%s\n\nUser Message: %s", intentSystemPrompt, pivotText)

	resp, err := e.model.GenerateContent(ctx, genai.Text(fullPrompt))
	if err != nil {
		return nil, fmt.Errorf("gemini generation error: %v: %w", err, ErrExtractionUnavailable)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil, fmt.Errorf("no response candidates from gemini: %w", ErrExtractionUnavailable)
	}

	var raw strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			raw.WriteString(string(txt))
		}
	}

	var payload intentPayload
	if err := utils.ParseAIJSON(raw.String(), &payload); err != nil {
		return nil, fmt.Errorf("no parseable intent payload: %v: %w", err, ErrExtractionUnavailable)
	}

	return validateIntent(&payload)
}

var _ Extractor = (*GeminiExtractor)(nil)
