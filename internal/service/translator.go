package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"cartsense/internal/config"
)

// pivotLanguage is the language the intent extractor operates in. Every
// command is normalised to it before extraction.
const pivotLanguage = "en"

// Translator maps (text, language tag) to pivot-language text. The second
// return value reports whether a translation actually happened. Translate
// never fails: any backend problem degrades to returning the original text.
type Translator interface {
	Translate(ctx context.Context, text, languageTag string) (string, bool)
}

// supportedSourceLanguages is the set of source languages a translation
// model is registered for. Tags outside this set pass through untranslated.
var supportedSourceLanguages = map[string]bool{
	"hi": true, "es": true, "fr": true, "de": true, "pt": true,
	"it": true, "ja": true, "ko": true, "zh": true, "ar": true,
	"ru": true, "bn": true, "ta": true, "te": true, "mr": true,
}

// GoogleTranslator calls the Cloud Translation v2 REST endpoint. A missing
// API key disables it entirely; Translate then always falls back.
type GoogleTranslator struct {
	config     *config.TranslateConfig
	httpClient *http.Client
}

// NewGoogleTranslator creates a translator with a bounded round-trip time so
// a stalled backend cannot hang the pipeline.
func NewGoogleTranslator(cfg *config.TranslateConfig) *GoogleTranslator {
	return &GoogleTranslator{
		config: cfg,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.Timeout) * time.Second,
		},
	}
}

type translateRequest struct {
	Q      string `json:"q"`
	Source string `json:"source"`
	Target string `json:"target"`
	Format string `json:"format"`
}

type translateResponse struct {
	Data struct {
		Translations []struct {
			TranslatedText string `json:"translatedText"`
		} `json:"translations"`
	} `json:"data"`
}

// Translate converts text to the pivot language. Fallback (original text,
// false) applies when: the tag's primary subtag is the pivot language or
// unsupported, no credential is configured, or the backend call fails in
// any way. Failures are logged, never surfaced.
func (t *GoogleTranslator) Translate(ctx context.Context, text, languageTag string) (string, bool) {
	source := primarySubtag(languageTag)
	if source == "" || source == pivotLanguage {
		return text, false
	}
	if !supportedSourceLanguages[source] {
		log.Printf("translate: no model registered for %q, using original text", source)
		return text, false
	}
	if !t.config.Enabled {
		log.Printf("translate: no API key configured, using original text")
		return text, false
	}

	translated, err := t.call(ctx, text, source)
	if err != nil {
		log.Printf("translate: backend failure for %q: %v, using original text", source, err)
		return text, false
	}
	return translated, true
}

func (t *GoogleTranslator) call(ctx context.Context, text, source string) (string, error) {
	reqBody, err := json.Marshal(translateRequest{
		Q:      text,
		Source: source,
		Target: pivotLanguage,
		Format: "text",
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s?key=%s", t.config.APIBase, t.config.APIKey)
	httpReq, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewReader(reqBody))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := t.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("API request failed with status %d: %s", resp.StatusCode, string(body))
	}

	var result translateResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return "", fmt.Errorf("failed to unmarshal response: %w", err)
	}
	if len(result.Data.Translations) == 0 {
		return "", fmt.Errorf("no translations in response")
	}
	return result.Data.Translations[0].TranslatedText, nil
}

// primarySubtag extracts the two-letter language code from a BCP 47 tag
// ("hi-IN" -> "hi"). Returns "" for empty or malformed tags.
func primarySubtag(tag string) string {
	tag = strings.ToLower(strings.TrimSpace(tag))
	if tag == "" {
		return ""
	}
	if i := strings.IndexAny(tag, "-_"); i >= 0 {
		tag = tag[:i]
	}
	if len(tag) != 2 {
		return ""
	}
	return tag
}

var _ Translator = (*GoogleTranslator)(nil)
