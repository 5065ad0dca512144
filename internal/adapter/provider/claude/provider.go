// Package claude implements AI word lookup via the Anthropic Messages API.
// The model is asked for a complete dictionary entry as a single JSON
// object; the response is extracted, decoded and normalized into a
// provider.LookupResult the vocabulary service can pre-fill a word from.
package claude

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/promisinganuj/kids-vocabulary-app/internal/domain"
	"github.com/promisinganuj/kids-vocabulary-app/internal/provider"
)

// Provider looks up dictionary entries with the Anthropic Messages API.
type Provider struct {
	client    anthropic.Client
	model     string
	maxTokens int
	log       *slog.Logger
}

// NewProvider creates a Provider backed by the Anthropic Messages API.
// Parameters come from config.LookupConfig: APIKey, Model, MaxTokens, Timeout.
func NewProvider(apiKey, model string, maxTokens int, timeout time.Duration, logger *slog.Logger) *Provider {
	return &Provider{
		client: anthropic.NewClient(
			option.WithAPIKey(apiKey),
			option.WithHTTPClient(&http.Client{Timeout: timeout}),
		),
		model:     model,
		maxTokens: maxTokens,
		log:       logger.With("adapter", "claude"),
	}
}

// NewProviderWithURL creates a Provider pointed at a custom API endpoint (for testing).
func NewProviderWithURL(baseURL, model string, maxTokens int, logger *slog.Logger) *Provider {
	return &Provider{
		client: anthropic.NewClient(
			option.WithAPIKey("test-key"),
			option.WithBaseURL(baseURL),
			option.WithMaxRetries(0),
		),
		model:     model,
		maxTokens: maxTokens,
		log:       logger.With("adapter", "claude"),
	}
}

// lookupResponse is the JSON schema the model is instructed to produce.
type lookupResponse struct {
	Word         string   `json:"word"`
	PartOfSpeech string   `json:"part_of_speech"`
	Definition   string   `json:"definition"`
	Example      string   `json:"example"`
	Difficulty   string   `json:"difficulty"`
	RelatedWords []string `json:"related_words"`
}

// LookupWord asks the model for a dictionary entry for the given word.
func (p *Provider) LookupWord(ctx context.Context, word string) (*provider.LookupResult, error) {
	p.log.DebugContext(ctx, "claude lookup", slog.String("word", word))

	msg, err := p.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(p.model),
		MaxTokens: int64(p.maxTokens),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(buildPrompt(word))),
		},
	})
	if err != nil {
		p.log.ErrorContext(ctx, "claude request failed", slog.String("word", word), slog.String("error", err.Error()))
		return nil, fmt.Errorf("claude: lookup %q: %w", word, err)
	}

	if len(msg.Content) == 0 {
		return nil, fmt.Errorf("claude: empty response for %q", word)
	}

	jsonStr, err := extractJSON(msg.Content[0].Text)
	if err != nil {
		return nil, fmt.Errorf("claude: response for %q: %w", word, err)
	}

	var resp lookupResponse
	if err := json.Unmarshal([]byte(jsonStr), &resp); err != nil {
		return nil, fmt.Errorf("claude: decode response for %q: %w", word, err)
	}

	if strings.TrimSpace(resp.Definition) == "" {
		return nil, fmt.Errorf("claude: response for %q has no definition", word)
	}

	result := mapResponse(word, resp)

	p.log.DebugContext(ctx, "claude lookup done",
		slog.String("word", word),
		slog.String("part_of_speech", result.PartOfSpeech),
		slog.Int("related_words", len(result.RelatedWords)),
	)

	return result, nil
}

// buildPrompt creates the lookup prompt for a single word.
func buildPrompt(word string) string {
	return fmt.Sprintf(`You are a professional children's dictionary editor for a vocabulary learning app.

Given the word "%s", produce a dictionary entry in JSON format.

Output ONLY a valid JSON object matching this exact schema:
{
  "word": "<the word>",
  "part_of_speech": "<noun|verb|adjective|adverb|pronoun|preposition|conjunction|interjection|phrase|other>",
  "definition": "<clear, simple definition suitable for young learners>",
  "example": "<one natural sentence using the word>",
  "difficulty": "<easy|medium|hard>",
  "related_words": ["<synonym or closely related word>"]
}

Rules:
- Keep the definition short and friendly, one or two sentences
- The example sentence must be age-appropriate and use the word naturally
- Use lowercase part_of_speech values matching: noun, verb, adjective, adverb, pronoun, preposition, conjunction, interjection, phrase, other
- Judge difficulty from a young learner's perspective
- Provide 2-4 related words
- Output ONLY the JSON, no markdown, no explanations`, word)
}

// extractJSON finds the first complete JSON object in a string.
func extractJSON(s string) (string, error) {
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start == -1 || end == -1 || end <= start {
		return "", fmt.Errorf("no JSON object found in response")
	}
	return s[start : end+1], nil
}

// mapResponse normalizes the model output into a LookupResult. Values the
// model got wrong fall back to safe defaults rather than failing the lookup.
func mapResponse(word string, resp lookupResponse) *provider.LookupResult {
	result := &provider.LookupResult{
		Word:         strings.TrimSpace(resp.Word),
		PartOfSpeech: strings.ToLower(strings.TrimSpace(resp.PartOfSpeech)),
		Definition:   strings.TrimSpace(resp.Definition),
		Example:      strings.TrimSpace(resp.Example),
		Difficulty:   strings.ToLower(strings.TrimSpace(resp.Difficulty)),
		RelatedWords: resp.RelatedWords,
	}

	if result.Word == "" {
		result.Word = word
	}
	if !domain.PartOfSpeech(result.PartOfSpeech).IsValid() {
		result.PartOfSpeech = string(domain.PartOfSpeechOther)
	}
	if !domain.Difficulty(result.Difficulty).IsValid() {
		result.Difficulty = string(domain.DifficultyMedium)
	}
	if result.RelatedWords == nil {
		result.RelatedWords = []string{}
	}

	return result
}
