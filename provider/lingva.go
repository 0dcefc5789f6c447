package provider

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
)

// lingvaEndpoints lists public Lingva instances tried in order.
var lingvaEndpoints = []string{
	"https://lingva.ml/api/v1/{from}/{to}/{query}",
	"https://translate.plausibility.cloud/api/v1/{from}/{to}/{query}",
}

// LingvaProvider translates via Lingva instances.
type LingvaProvider struct {
	client    *http.Client
	endpoints []string
}

// LingvaConfig holds configuration for the Lingva provider.
type LingvaConfig struct {
	HTTPClient *http.Client // Custom HTTP client (optional)
	Endpoints  []string     // URL templates overriding the defaults (optional)
}

// NewLingvaProvider creates a new Lingva provider.
func NewLingvaProvider(cfg LingvaConfig) *LingvaProvider {
	endpoints := cfg.Endpoints
	if len(endpoints) == 0 {
		endpoints = lingvaEndpoints
	}
	return &LingvaProvider{
		client:    newHTTPClient(cfg.HTTPClient),
		endpoints: endpoints,
	}
}

// ID returns the provider id.
func (p *LingvaProvider) ID() string { return "lingva" }

// Name returns the display name recorded on cache entries.
func (p *LingvaProvider) Name() string { return "Lingva" }

// Translate tries each instance in order.
func (p *LingvaProvider) Translate(ctx context.Context, text, from, to string) (string, error) {
	from, to = langDefaults(from, to)
	return tryEndpoints(ctx, p.client, p.ID(), p.endpoints, http.MethodGet, nil, parseLingva, text, from, to)
}

func parseLingva(body []byte) string {
	var resp struct {
		Translation string `json:"translation"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return ""
	}
	return strings.TrimSpace(resp.Translation)
}

// Verify LingvaProvider implements Provider
var _ Provider = (*LingvaProvider)(nil)
