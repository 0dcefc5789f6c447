package provider

import (
	"context"
	"errors"
	"testing"

	"github.com/LocaleKit/golingo"
)

func TestOpenAIProvider_FailsClosedWithoutKey(t *testing.T) {
	p := NewOpenAIProvider(OpenAIConfig{})

	_, err := p.Translate(context.Background(), "Hello", "en", "es")
	if err == nil {
		t.Fatal("missing API key must fail closed")
	}

	var perr *golingo.ProviderError
	if !errors.As(err, &perr) {
		t.Fatalf("error should be a ProviderError, got %T", err)
	}
	if perr.Retryable {
		t.Error("missing key is not retryable")
	}
}

func TestOpenAIProvider_Defaults(t *testing.T) {
	p := NewOpenAIProvider(OpenAIConfig{APIKey: "k"})

	if p.model != "gpt-4o-mini" {
		t.Errorf("default model = %q, want gpt-4o-mini", p.model)
	}
	if p.temperature != 0.3 {
		t.Errorf("default temperature = %v, want 0.3", p.temperature)
	}
}

func TestOpenAIProvider_SystemPrompt(t *testing.T) {
	p := NewOpenAIProvider(OpenAIConfig{APIKey: "k"})

	prompt := p.systemPrompt("en", "es")
	if prompt != "You are a translation engine. Translate the user's text from English to Spanish. Respond with only the translation, nothing else." {
		t.Errorf("unexpected prompt: %q", prompt)
	}

	auto := p.systemPrompt("auto", "es")
	if auto != "You are a translation engine. Translate the user's text to Spanish. Respond with only the translation, nothing else." {
		t.Errorf("unexpected auto prompt: %q", auto)
	}
}

func TestIsRetryableError(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		retryable bool
	}{
		{"rate limit", errors.New("429 rate limit exceeded"), true},
		{"server error", errors.New("status 503"), true},
		{"timeout", errors.New("request timeout"), true},
		{"auth error", errors.New("invalid api key"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isRetryableError(tt.err); got != tt.retryable {
				t.Errorf("isRetryableError(%v) = %v, want %v", tt.err, got, tt.retryable)
			}
		})
	}
}
