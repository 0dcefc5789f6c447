package provider

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
)

// libreEndpoints lists LibreTranslate instances tried in order.
var libreEndpoints = []string{
	"https://libretranslate.com/translate",
	"https://translate.argosopentech.com/translate",
}

// LibreTranslateProvider translates via LibreTranslate instances using
// POST requests with a JSON payload.
type LibreTranslateProvider struct {
	client    *http.Client
	endpoints []string
	apiKey    string
}

// LibreTranslateConfig holds configuration for the LibreTranslate provider.
type LibreTranslateConfig struct {
	HTTPClient *http.Client // Custom HTTP client (optional)
	Endpoints  []string     // URL templates overriding the defaults (optional)
	APIKey     string       // Instance API key, included in the payload when set
}

// NewLibreTranslateProvider creates a new LibreTranslate provider.
func NewLibreTranslateProvider(cfg LibreTranslateConfig) *LibreTranslateProvider {
	endpoints := cfg.Endpoints
	if len(endpoints) == 0 {
		endpoints = libreEndpoints
	}
	return &LibreTranslateProvider{
		client:    newHTTPClient(cfg.HTTPClient),
		endpoints: endpoints,
		apiKey:    cfg.APIKey,
	}
}

// ID returns the provider id.
func (p *LibreTranslateProvider) ID() string { return "libretranslate" }

// Name returns the display name recorded on cache entries.
func (p *LibreTranslateProvider) Name() string { return "LibreTranslate" }

// Translate posts the payload to each instance in order.
func (p *LibreTranslateProvider) Translate(ctx context.Context, text, from, to string) (string, error) {
	from, to = langDefaults(from, to)

	payload := func() []byte {
		req := map[string]string{
			"q":      text,
			"source": from,
			"target": to,
			"format": "text",
		}
		if p.apiKey != "" {
			req["api_key"] = p.apiKey
		}
		data, _ := json.Marshal(req)
		return data
	}

	return tryEndpoints(ctx, p.client, p.ID(), p.endpoints, http.MethodPost, payload, parseLibreTranslate, text, from, to)
}

func parseLibreTranslate(body []byte) string {
	var resp struct {
		TranslatedText string `json:"translatedText"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return ""
	}
	return strings.TrimSpace(resp.TranslatedText)
}

// Verify LibreTranslateProvider implements Provider
var _ Provider = (*LibreTranslateProvider)(nil)
