package golingo

import "fmt"

// ProviderError indicates a translation backend failure (network error,
// non-200 status, unparsable or empty response, missing credentials).
// Provider failures are recovered by advancing to the next endpoint or
// provider; they never escape Resolve.
type ProviderError struct {
	Provider  string
	Message   string
	Cause     error
	Retryable bool // Whether the operation can be retried
}

func (e *ProviderError) Error() string {
	msg := e.Message
	if e.Provider != "" {
		msg = e.Provider + ": " + msg
	}
	if e.Cause != nil {
		return fmt.Sprintf("provider error: %s: %v", msg, e.Cause)
	}
	return fmt.Sprintf("provider error: %s", msg)
}

func (e *ProviderError) Unwrap() error {
	return e.Cause
}

// StorageError indicates a cache persistence failure. Load failures are
// recovered by starting from an empty store; save failures are logged.
type StorageError struct {
	Message string
	Cause   error
}

func (e *StorageError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("storage error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("storage error: %s", e.Message)
}

func (e *StorageError) Unwrap() error {
	return e.Cause
}

// ConfigError indicates a malformed configuration file. Callers recover by
// falling back to defaults.
type ConfigError struct {
	Message string
	Cause   error
}

func (e *ConfigError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("config error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("config error: %s", e.Message)
}

func (e *ConfigError) Unwrap() error {
	return e.Cause
}
