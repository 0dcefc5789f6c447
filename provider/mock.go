package provider

import (
	"context"

	"github.com/LocaleKit/golingo"
)

// MockProvider is a mock translation provider for testing.
type MockProvider struct {
	IDValue      string            // Provider id (default: "mock")
	NameValue    string            // Display name (default: "Mock")
	Translations map[string]string // Map of source text to translation
	Err          error             // Returned by every Translate call when set
	CallCount    int               // Number of times Translate was called
	LastText     string            // Last text received
}

// NewMockProvider creates a new mock provider with default translations.
func NewMockProvider() *MockProvider {
	return &MockProvider{
		IDValue:   "mock",
		NameValue: "Mock",
		Translations: map[string]string{
			"Hello":       "Hola",
			"World":       "Mundo",
			"Hello World": "Hola Mundo",
		},
	}
}

// ID returns the provider id.
func (m *MockProvider) ID() string {
	if m.IDValue == "" {
		return "mock"
	}
	return m.IDValue
}

// Name returns the display name.
func (m *MockProvider) Name() string {
	if m.NameValue == "" {
		return "Mock"
	}
	return m.NameValue
}

// Translate returns mock translations.
func (m *MockProvider) Translate(ctx context.Context, text, from, to string) (string, error) {
	m.CallCount++
	m.LastText = text

	if m.Err != nil {
		return "", m.Err
	}
	if translation, ok := m.Translations[text]; ok {
		return translation, nil
	}
	// Bracketed text for unknown translations
	return "[" + text + "]", nil
}

// Reset resets the call count and last text.
func (m *MockProvider) Reset() {
	m.CallCount = 0
	m.LastText = ""
}

// Verify MockProvider implements Provider
var _ golingo.Provider = (*MockProvider)(nil)
