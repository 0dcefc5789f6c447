package golingo

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestWithRetry_Success(t *testing.T) {
	cfg := RetryConfig{
		MaxRetries: 3,
		BaseDelay:  10 * time.Millisecond,
		MaxDelay:   100 * time.Millisecond,
	}

	callCount := 0
	result, err := WithRetry(context.Background(), cfg, func() (string, error) {
		callCount++
		return "success", nil
	})

	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if result != "success" {
		t.Errorf("Expected 'success', got %q", result)
	}

	if callCount != 1 {
		t.Errorf("Expected 1 call, got %d", callCount)
	}
}

func TestWithRetry_RetryableError(t *testing.T) {
	cfg := RetryConfig{
		MaxRetries: 3,
		BaseDelay:  10 * time.Millisecond,
		MaxDelay:   100 * time.Millisecond,
	}

	callCount := 0
	result, err := WithRetry(context.Background(), cfg, func() (string, error) {
		callCount++
		if callCount < 3 {
			return "", &ProviderError{Message: "rate limited", Retryable: true}
		}
		return "success", nil
	})

	if err != nil {
		t.Fatalf("Expected no error after retries, got: %v", err)
	}

	if result != "success" {
		t.Errorf("Expected 'success', got %q", result)
	}

	if callCount != 3 {
		t.Errorf("Expected 3 calls, got %d", callCount)
	}
}

func TestWithRetry_NonRetryableError(t *testing.T) {
	cfg := RetryConfig{
		MaxRetries: 3,
		BaseDelay:  10 * time.Millisecond,
		MaxDelay:   100 * time.Millisecond,
	}

	callCount := 0
	_, err := WithRetry(context.Background(), cfg, func() (string, error) {
		callCount++
		return "", &ProviderError{Message: "invalid API key", Retryable: false}
	})

	if err == nil {
		t.Fatal("Expected error for non-retryable error")
	}

	// Should not retry non-retryable errors
	if callCount != 1 {
		t.Errorf("Expected 1 call for non-retryable error, got %d", callCount)
	}
}

func TestWithRetry_MaxRetriesExceeded(t *testing.T) {
	cfg := RetryConfig{
		MaxRetries: 2,
		BaseDelay:  10 * time.Millisecond,
		MaxDelay:   100 * time.Millisecond,
	}

	callCount := 0
	_, err := WithRetry(context.Background(), cfg, func() (string, error) {
		callCount++
		return "", &ProviderError{Message: "rate limited", Retryable: true}
	})

	if err == nil {
		t.Fatal("Expected error after max retries")
	}

	// Initial attempt + 2 retries = 3 calls
	if callCount != 3 {
		t.Errorf("Expected 3 calls (1 + 2 retries), got %d", callCount)
	}
}

func TestIsRetryable(t *testing.T) {
	if IsRetryable(nil) {
		t.Error("nil error is not retryable")
	}
	if !IsRetryable(&ProviderError{Message: "x", Retryable: true}) {
		t.Error("retryable ProviderError should be retryable")
	}
	if IsRetryable(&ProviderError{Message: "x", Retryable: false}) {
		t.Error("non-retryable ProviderError should not be retryable")
	}
	if IsRetryable(errors.New("plain")) {
		t.Error("plain errors are not retryable")
	}
	if IsRetryable(context.Canceled) {
		t.Error("context cancellation is not retryable")
	}
}

func TestRetryableProvider(t *testing.T) {
	inner := &flakyProvider{failures: 2}
	p := NewRetryableProvider(inner, RetryConfig{
		MaxRetries: 3,
		BaseDelay:  time.Millisecond,
		MaxDelay:   10 * time.Millisecond,
	})

	if p.ID() != "flaky" || p.Name() != "Flaky" {
		t.Error("wrapper should forward id and name")
	}

	got, err := p.Translate(context.Background(), "hello", "en", "es")
	if err != nil {
		t.Fatalf("Translate failed: %v", err)
	}
	if got != "hola" {
		t.Errorf("Translate = %q, want hola", got)
	}
	if inner.calls != 3 {
		t.Errorf("inner called %d times, want 3", inner.calls)
	}
}

// flakyProvider fails with a retryable error a fixed number of times.
type flakyProvider struct {
	failures int
	calls    int
}

func (p *flakyProvider) ID() string   { return "flaky" }
func (p *flakyProvider) Name() string { return "Flaky" }

func (p *flakyProvider) Translate(ctx context.Context, text, from, to string) (string, error) {
	p.calls++
	if p.calls <= p.failures {
		return "", &ProviderError{Message: "transient", Retryable: true}
	}
	return "hola", nil
}
