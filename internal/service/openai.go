package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"cartsense/internal/config"
	"cartsense/internal/model"
	"cartsense/internal/utils"
)

// OpenAIExtractor implements Extractor against any OpenAI-compatible
// chat-completions endpoint, selected with INTENT_PROVIDER=openai.
type OpenAIExtractor struct {
	config     *config.OpenAIConfig
	httpClient *http.Client
}

// NewOpenAIExtractor creates a new OpenAI-compatible extractor.
func NewOpenAIExtractor(cfg *config.OpenAIConfig) *OpenAIExtractor {
	return &OpenAIExtractor{
		config: cfg,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.Timeout) * time.Second,
		},
	}
}

// ChatCompletionRequest represents a chat completion request
type ChatCompletionRequest struct {
	Model          string          `json:"model"`
	Messages       []ChatMessage   `json:"messages"`
	Temperature    float64         `json:"temperature,omitempty"`
	MaxTokens      int             `json:"max_tokens,omitempty"`
	ResponseFormat *ResponseFormat `json:"response_format,omitempty"`
}

// ChatMessage represents a single message in the conversation
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ResponseFormat specifies the format of the response
type ResponseFormat struct {
	Type string `json:"type"` // "json_object" or "text"
}

// ChatCompletionResponse represents the API response
type ChatCompletionResponse struct {
	ID      string `json:"id"`
	Model   string `json:"model"`
	Choices []struct {
		Index        int         `json:"index"`
		Message      ChatMessage `json:"message"`
		FinishReason string      `json:"finish_reason"`
	} `json:"choices"`
	Usage struct {
		PromptTokens     int `json:"prompt_tokens"`
		CompletionTokens int `json:"completion_tokens"`
		TotalTokens      int `json:"total_tokens"`
	} `json:"usage"`
}

// Extract sends the pivot-language text to the chat endpoint and validates
// the reply against the intent contract.
func (e *OpenAIExtractor) Extract(ctx context.Context, pivotText string) (*model.Intent, error) {
	if !e.config.Enabled {
		return nil, fmt.Errorf("openai API is not enabled (missing API key): %w", ErrExtractionUnavailable)
	}

	req := ChatCompletionRequest{
		Model: e.config.ChatModel,
		Messages: []ChatMessage{
			{Role: "system", Content: intentSystemPrompt},
			{Role: "user", Content: pivotText},
		},
		Temperature:    e.config.Temperature,
		MaxTokens:      e.config.MaxTokens,
		ResponseFormat: &ResponseFormat{Type: "json_object"},
	}

	resp, err := e.chatCompletion(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", err, ErrExtractionUnavailable)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("no choices in chat response: %w", ErrExtractionUnavailable)
	}

	var payload intentPayload
	if err := utils.ParseAIJSON(resp.Choices[0].Message.Content, &payload); err != nil {
		return nil, fmt.Errorf("no parseable intent payload: %v: %w", err, ErrExtractionUnavailable)
	}

	return validateIntent(&payload)
}

// chatCompletion performs a chat completion request
func (e *OpenAIExtractor) chatCompletion(ctx context.Context, req ChatCompletionRequest) (*ChatCompletionResponse, error) {
	reqBody, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/chat/completions", e.config.APIBase)
	httpReq, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewReader(reqBody))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", fmt.Sprintf("Bearer %s", e.config.APIKey))

	resp, err := e.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("API request failed with status %d: %s", resp.StatusCode, string(body))
	}

	var result ChatCompletionResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	return &result, nil
}

var _ Extractor = (*OpenAIExtractor)(nil)
