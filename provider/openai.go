package provider

import (
	"context"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"

	"github.com/LocaleKit/golingo"
)

// OpenAIProvider translates via OpenAI's chat completion API.
type OpenAIProvider struct {
	client      *openai.Client
	apiKey      string
	model       string
	temperature float32
}

// OpenAIConfig holds configuration for the OpenAI provider.
type OpenAIConfig struct {
	APIKey      string  // OpenAI API key; the provider fails closed without one
	Model       string  // Model to use (default: "gpt-4o-mini")
	Temperature float32 // Temperature for generation (default: 0.3)
	BaseURL     string  // Custom base URL (optional)
}

// NewOpenAIProvider creates a new OpenAI provider.
func NewOpenAIProvider(cfg OpenAIConfig) *OpenAIProvider {
	config := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		config.BaseURL = cfg.BaseURL
	}

	model := cfg.Model
	if model == "" {
		model = "gpt-4o-mini"
	}

	temperature := cfg.Temperature
	if temperature == 0 {
		temperature = 0.3
	}

	return &OpenAIProvider{
		client:      openai.NewClientWithConfig(config),
		apiKey:      cfg.APIKey,
		model:       model,
		temperature: temperature,
	}
}

// ID returns the provider id.
func (p *OpenAIProvider) ID() string { return "openai" }

// Name returns the display name recorded on cache entries.
func (p *OpenAIProvider) Name() string { return "OpenAI" }

// Translate issues a single chat completion. An absent API key fails
// closed as a provider failure.
func (p *OpenAIProvider) Translate(ctx context.Context, text, from, to string) (string, error) {
	if p.apiKey == "" {
		return "", &golingo.ProviderError{Provider: p.ID(), Message: "no API key configured"}
	}

	from, to = langDefaults(from, to)

	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: p.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: p.systemPrompt(from, to)},
			{Role: openai.ChatMessageRoleUser, Content: text},
		},
		Temperature: p.temperature,
	})
	if err != nil {
		return "", &golingo.ProviderError{
			Provider:  p.ID(),
			Message:   "API call failed",
			Cause:     err,
			Retryable: isRetryableError(err),
		}
	}

	if len(resp.Choices) == 0 {
		return "", &golingo.ProviderError{Provider: p.ID(), Message: "no response", Retryable: true}
	}

	translation := strings.TrimSpace(resp.Choices[0].Message.Content)
	if translation == "" {
		return "", &golingo.ProviderError{Provider: p.ID(), Message: "empty translation"}
	}
	return translation, nil
}

func (p *OpenAIProvider) systemPrompt(from, to string) string {
	target := golingo.GetLanguageName(to)
	if golingo.IsAuto(from) {
		return fmt.Sprintf("You are a translation engine. Translate the user's text to %s. Respond with only the translation, nothing else.", target)
	}
	source := golingo.GetLanguageName(from)
	return fmt.Sprintf("You are a translation engine. Translate the user's text from %s to %s. Respond with only the translation, nothing else.", source, target)
}

func isRetryableError(err error) bool {
	// Check for common retryable conditions
	errStr := strings.ToLower(err.Error())
	retryablePatterns := []string{
		"rate limit",
		"timeout",
		"connection refused",
		"temporary",
		"503",
		"502",
		"429",
	}

	for _, pattern := range retryablePatterns {
		if strings.Contains(errStr, pattern) {
			return true
		}
	}
	return false
}

// Verify OpenAIProvider implements Provider
var _ Provider = (*OpenAIProvider)(nil)
