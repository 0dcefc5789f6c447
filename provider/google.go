package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// googleEndpoints are the free web endpoints tried in order: the gtx JSON
// endpoint first, then the mobile HTML page.
var googleEndpoints = []string{
	"https://translate.googleapis.com/translate_a/single?client=gtx&sl={from}&tl={to}&dt=t&q={query}",
	"https://translate.google.com/m?sl={from}&tl={to}&q={query}",
}

// GoogleProvider translates via Google's unauthenticated web endpoints.
type GoogleProvider struct {
	client    *http.Client
	endpoints []string
}

// GoogleConfig holds configuration for the Google provider.
type GoogleConfig struct {
	HTTPClient *http.Client // Custom HTTP client (optional)
	Endpoints  []string     // URL templates overriding the defaults (optional)
}

// NewGoogleProvider creates a new Google provider.
func NewGoogleProvider(cfg GoogleConfig) *GoogleProvider {
	endpoints := cfg.Endpoints
	if len(endpoints) == 0 {
		endpoints = googleEndpoints
	}
	return &GoogleProvider{
		client:    newHTTPClient(cfg.HTTPClient),
		endpoints: endpoints,
	}
}

// ID returns the provider id.
func (p *GoogleProvider) ID() string { return "google" }

// Name returns the display name recorded on cache entries.
func (p *GoogleProvider) Name() string { return "Google" }

// Translate tries each endpoint in order and returns the first parsed
// translation.
func (p *GoogleProvider) Translate(ctx context.Context, text, from, to string) (string, error) {
	from, to = langDefaults(from, to)
	return tryEndpoints(ctx, p.client, p.ID(), p.endpoints, http.MethodGet, nil, parseGoogle, text, from, to)
}

// parseGoogle extracts a translation from either response shape: the gtx
// endpoint's nested JSON arrays, or the mobile page's result container
// div. An unrecognized body yields "".
func parseGoogle(body []byte) string {
	if translation := parseGoogleJSON(body); translation != "" {
		return translation
	}
	return parseGoogleHTML(body)
}

// parseGoogleJSON handles the gtx shape: [[["Hola","Hello",...],...],...].
// Segment strings are concatenated in order.
func parseGoogleJSON(body []byte) string {
	var raw []any
	if err := json.Unmarshal(body, &raw); err != nil || len(raw) == 0 {
		return ""
	}
	segments, ok := raw[0].([]any)
	if !ok {
		return ""
	}

	var b strings.Builder
	for _, s := range segments {
		segment, ok := s.([]any)
		if !ok || len(segment) == 0 {
			continue
		}
		if text, ok := segment[0].(string); ok {
			b.WriteString(text)
		}
	}
	return b.String()
}

// parseGoogleHTML handles the mobile page fragment.
func parseGoogleHTML(body []byte) string {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(doc.Find("div.result-container").First().Text())
}

// Verify GoogleProvider implements Provider
var _ Provider = (*GoogleProvider)(nil)
