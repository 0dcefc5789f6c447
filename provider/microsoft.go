package provider

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/LocaleKit/golingo"
)

const (
	microsoftAuthURL = "https://edge.microsoft.com/translate/auth"
	microsoftAPIURL  = "https://api.cognitive.microsofttranslator.com/translate"

	// tokenValidity is how long an acquired auth token is reused before
	// a fresh one is fetched.
	tokenValidity = 600 * time.Second
)

// MicrosoftProvider translates via the Microsoft Translator v3 API. It
// authenticates with a short-lived token from the Edge auth endpoint,
// cached until expiry; a subscription key, when configured, is used
// directly instead.
type MicrosoftProvider struct {
	client  *http.Client
	authURL string
	apiURL  string
	apiKey  string
	region  string
	now     func() time.Time

	mu          sync.Mutex
	token       string
	tokenExpiry time.Time
}

// MicrosoftConfig holds configuration for the Microsoft provider.
type MicrosoftConfig struct {
	HTTPClient *http.Client // Custom HTTP client (optional)
	AuthURL    string       // Token endpoint overriding the default (optional)
	APIURL     string       // Translate endpoint overriding the default (optional)
	APIKey     string       // Subscription key; when set, token acquisition is skipped
	Region     string       // Subscription region, sent with the key (optional)
}

// NewMicrosoftProvider creates a new Microsoft provider.
func NewMicrosoftProvider(cfg MicrosoftConfig) *MicrosoftProvider {
	authURL := cfg.AuthURL
	if authURL == "" {
		authURL = microsoftAuthURL
	}
	apiURL := cfg.APIURL
	if apiURL == "" {
		apiURL = microsoftAPIURL
	}
	return &MicrosoftProvider{
		client:  newHTTPClient(cfg.HTTPClient),
		authURL: authURL,
		apiURL:  apiURL,
		apiKey:  cfg.APIKey,
		region:  cfg.Region,
		now:     time.Now,
	}
}

// ID returns the provider id.
func (p *MicrosoftProvider) ID() string { return "microsoft" }

// Name returns the display name recorded on cache entries.
func (p *MicrosoftProvider) Name() string { return "Microsoft" }

// Translate issues a single API call; any failure (auth, network,
// status, parse, empty result) fails the provider without retry.
func (p *MicrosoftProvider) Translate(ctx context.Context, text, from, to string) (string, error) {
	from, to = langDefaults(from, to)

	header := http.Header{}
	if p.apiKey != "" {
		header.Set("Ocp-Apim-Subscription-Key", p.apiKey)
		if p.region != "" {
			header.Set("Ocp-Apim-Subscription-Region", p.region)
		}
	} else {
		token, err := p.authToken(ctx)
		if err != nil {
			return "", err
		}
		header.Set("Authorization", "Bearer "+token)
	}

	params := url.Values{}
	params.Set("api-version", "3.0")
	params.Set("to", to)
	if !golingo.IsAuto(from) {
		params.Set("from", from)
	}

	payload, _ := json.Marshal([]map[string]string{{"Text": text}})

	body, err := fetch(ctx, p.client, p.ID(), http.MethodPost, p.apiURL+"?"+params.Encode(), payload, header)
	if err != nil {
		return "", err
	}

	var resp []struct {
		Translations []struct {
			Text string `json:"text"`
			To   string `json:"to"`
		} `json:"translations"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", &golingo.ProviderError{Provider: p.ID(), Message: "invalid response format", Cause: err}
	}
	if len(resp) == 0 || len(resp[0].Translations) == 0 {
		return "", &golingo.ProviderError{Provider: p.ID(), Message: "no translation in response"}
	}

	translation := strings.TrimSpace(resp[0].Translations[0].Text)
	if translation == "" {
		return "", &golingo.ProviderError{Provider: p.ID(), Message: "empty translation"}
	}
	return translation, nil
}

// authToken returns the cached token, fetching a fresh one only when
// absent or expired.
func (p *MicrosoftProvider) authToken(ctx context.Context) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.token != "" && p.now().Before(p.tokenExpiry) {
		return p.token, nil
	}

	body, err := fetch(ctx, p.client, p.ID(), http.MethodGet, p.authURL, nil, nil)
	if err != nil {
		return "", &golingo.ProviderError{Provider: p.ID(), Message: "acquiring auth token", Cause: err}
	}

	token := strings.TrimSpace(string(body))
	if token == "" {
		return "", &golingo.ProviderError{Provider: p.ID(), Message: "empty auth token"}
	}

	p.token = token
	p.tokenExpiry = p.now().Add(tokenValidity)
	return token, nil
}

// Verify MicrosoftProvider implements Provider
var _ Provider = (*MicrosoftProvider)(nil)
