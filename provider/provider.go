// Package provider implements the translation backends: free HTTP
// endpoints tried in order (Google, MyMemory, Lingva, LibreTranslate)
// and authenticated APIs (Microsoft, OpenAI).
package provider

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/LocaleKit/golingo"
)

// Provider is the interface for translation backends.
// This is an alias to the main package interface for convenience.
type Provider = golingo.Provider

// defaultTimeout bounds every HTTP attempt so a stalled endpoint counts
// as a normal per-URL failure instead of hanging the resolver.
const defaultTimeout = 10 * time.Second

// maxResponseBytes caps response bodies read from remote endpoints.
const maxResponseBytes = 1 << 20

// BuildURL substitutes the {query}, {from} and {to} placeholders in a URL
// template. The query text is URL-encoded; language codes are inserted
// verbatim.
func BuildURL(template, text, from, to string) string {
	r := strings.NewReplacer(
		"{query}", url.QueryEscape(text),
		"{from}", from,
		"{to}", to,
	)
	return r.Replace(template)
}

// langDefaults fills in the default language codes for empty values.
func langDefaults(from, to string) (string, string) {
	if from == "" {
		from = golingo.DefaultFromLang
	}
	if to == "" {
		to = golingo.DefaultToLang
	}
	return from, to
}

func newHTTPClient(c *http.Client) *http.Client {
	if c != nil {
		return c
	}
	return &http.Client{Timeout: defaultTimeout}
}

// fetch issues one HTTP attempt and returns the body on status 200.
// Any other outcome is an error.
func fetch(ctx context.Context, client *http.Client, providerID, method, rawURL string, payload []byte, header http.Header) ([]byte, error) {
	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, rawURL, body)
	if err != nil {
		return nil, &golingo.ProviderError{Provider: providerID, Message: "building request", Cause: err}
	}

	req.Header.Set("User-Agent", golingo.UserAgent())
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Set(k, v)
		}
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, &golingo.ProviderError{Provider: providerID, Message: "request failed", Cause: err, Retryable: true}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, &golingo.ProviderError{Provider: providerID, Message: "reading response", Cause: err, Retryable: true}
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &golingo.ProviderError{
			Provider:  providerID,
			Message:   fmt.Sprintf("unexpected status %d", resp.StatusCode),
			Retryable: resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500,
		}
	}

	return data, nil
}

// tryEndpoints iterates URL templates in order, returning the first
// parsable non-empty translation. A non-200 status or an unparsable body
// advances to the next URL; when all fail the provider fails.
func tryEndpoints(ctx context.Context, client *http.Client, providerID string, endpoints []string, method string, payload func() []byte, parse func([]byte) string, text, from, to string) (string, error) {
	var lastErr error
	for _, tmpl := range endpoints {
		var data []byte
		var err error
		if method == http.MethodPost {
			data, err = fetch(ctx, client, providerID, method, BuildURL(tmpl, text, from, to), payload(), nil)
		} else {
			data, err = fetch(ctx, client, providerID, http.MethodGet, BuildURL(tmpl, text, from, to), nil, nil)
		}
		if err != nil {
			lastErr = err
			continue
		}
		if translation := parse(data); translation != "" {
			return translation, nil
		}
		lastErr = &golingo.ProviderError{Provider: providerID, Message: "no translation in response"}
	}
	if lastErr == nil {
		lastErr = &golingo.ProviderError{Provider: providerID, Message: "no endpoints configured"}
	}
	return "", lastErr
}
