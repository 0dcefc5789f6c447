package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

var myMemoryEndpoints = []string{
	"https://api.mymemory.translated.net/get?q={query}&langpair={from}|{to}",
}

// MyMemoryProvider translates via the MyMemory public API.
type MyMemoryProvider struct {
	client    *http.Client
	endpoints []string
}

// MyMemoryConfig holds configuration for the MyMemory provider.
type MyMemoryConfig struct {
	HTTPClient *http.Client // Custom HTTP client (optional)
	Endpoints  []string     // URL templates overriding the defaults (optional)
}

// NewMyMemoryProvider creates a new MyMemory provider.
func NewMyMemoryProvider(cfg MyMemoryConfig) *MyMemoryProvider {
	endpoints := cfg.Endpoints
	if len(endpoints) == 0 {
		endpoints = myMemoryEndpoints
	}
	return &MyMemoryProvider{
		client:    newHTTPClient(cfg.HTTPClient),
		endpoints: endpoints,
	}
}

// ID returns the provider id.
func (p *MyMemoryProvider) ID() string { return "mymemory" }

// Name returns the display name recorded on cache entries.
func (p *MyMemoryProvider) Name() string { return "MyMemory" }

// Translate queries the API and parses the responseData shape.
func (p *MyMemoryProvider) Translate(ctx context.Context, text, from, to string) (string, error) {
	from, to = langDefaults(from, to)
	return tryEndpoints(ctx, p.client, p.ID(), p.endpoints, http.MethodGet, nil, parseMyMemory, text, from, to)
}

// parseMyMemory extracts responseData.translatedText. MyMemory reports
// its own errors with a 200 HTTP status and a non-200 responseStatus, so
// the inner status is checked too.
func parseMyMemory(body []byte) string {
	var resp struct {
		ResponseData struct {
			TranslatedText string `json:"translatedText"`
		} `json:"responseData"`
		ResponseStatus any `json:"responseStatus"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return ""
	}

	if resp.ResponseStatus != nil {
		status := strings.Trim(fmt.Sprint(resp.ResponseStatus), `"`)
		if status != "200" {
			return ""
		}
	}
	return strings.TrimSpace(resp.ResponseData.TranslatedText)
}

// Verify MyMemoryProvider implements Provider
var _ Provider = (*MyMemoryProvider)(nil)
